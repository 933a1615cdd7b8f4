package orient

import (
	"errors"
	"image"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boomtrack/contours"
)

// ellipseContour samples an ellipse with half-axes a, b centered at
// (cx, cy), rotated by rot degrees in image coordinates (y down).
func ellipseContour(cx, cy, a, b, rot float64) contours.Contour {
	rad := rot * math.Pi / 180
	c := make(contours.Contour, 0, 36)
	for i := 0; i < 36; i++ {
		t := float64(i) * 10 * math.Pi / 180
		x := a * math.Cos(t)
		y := b * math.Sin(t)
		c = append(c, image.Pt(
			int(math.Round(cx+x*math.Cos(rad)-y*math.Sin(rad))),
			int(math.Round(cy+x*math.Sin(rad)+y*math.Cos(rad))),
		))
	}
	return c
}

func TestEstimateOrientation(t *testing.T) {
	cases := []struct {
		name string
		rot  float64
		want float64
	}{
		{"horizontal", 0, 0},
		{"vertical", 90, 90},
		{"diagonal", 45, 45},
		{"folded diagonal", 135, -45},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := New().Estimate(ellipseContour(50, 50, 40, 10, tc.rot))
			require.NoError(t, err)
			if math.Abs(tc.want) == 90 {
				// The fold makes -90 and 90 the same orientation.
				assert.InDelta(t, 90, math.Abs(got), 2)
			} else {
				assert.InDelta(t, tc.want, got, 2)
			}
		})
	}
}

func TestEstimateTooFewPoints(t *testing.T) {
	short := contours.Contour{image.Pt(0, 0), image.Pt(10, 0), image.Pt(5, 5)}
	_, err := New().Estimate(short)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInsufficientPoints))
}

func TestFold(t *testing.T) {
	assert.Equal(t, 45.0, Fold(45))
	assert.Equal(t, 45.0, Fold(-135))
	assert.Equal(t, -45.0, Fold(135))
	assert.Equal(t, 90.0, Fold(-90))
	assert.Equal(t, 90.0, Fold(270))
	assert.Equal(t, 0.0, Fold(180))
}
