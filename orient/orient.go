// Package orient derives the orientation angle of a selected contour
// from a least-squares ellipse fit.
package orient

import (
	"image"
	"math"

	"github.com/pkg/errors"
	"gocv.io/x/gocv"

	"boomtrack/contours"
)

// MinEllipsePoints is the geometric minimum for a least-squares ellipse fit.
const MinEllipsePoints = 5

// ErrInsufficientPoints reports a contour too short to fit an ellipse.
var ErrInsufficientPoints = errors.New("contour has too few points for an ellipse fit")

// Estimator measures the angle between the horizontal axis and the
// major axis of the ellipse fitted to a contour.
type Estimator struct{}

func New() *Estimator {
	return &Estimator{}
}

// Estimate returns the orientation angle in degrees, folded to the
// half-open range (-90, 90] so the value does not depend on which end
// of the major axis the fit happens to report. Angles follow image
// coordinates: y grows downward, so a positive angle leans clockwise
// on screen. Fails with ErrInsufficientPoints for contours shorter
// than MinEllipsePoints.
func (e *Estimator) Estimate(c contours.Contour) (float64, error) {
	if len(c) < MinEllipsePoints {
		return 0, errors.Wrapf(ErrInsufficientPoints, "got %d points, need %d", len(c), MinEllipsePoints)
	}

	pv := gocv.NewPointVectorFromPoints([]image.Point(c))
	defer pv.Close()

	rect := gocv.BoundingRect(pv)
	cx := float64(rect.Min.X) + float64(rect.Dx())/2
	cy := float64(rect.Min.Y) + float64(rect.Dy())/2

	ex, ey := majorAxisEndpoint(gocv.FitEllipse(pv))
	angle := math.Atan2(ey-cy, ex-cx) * 180 / math.Pi
	return Fold(angle), nil
}

// majorAxisEndpoint returns one endpoint of the fitted ellipse's major
// axis. The rotated rect's width edge lies along its angle; the height
// edge along angle+90.
func majorAxisEndpoint(ell gocv.RotatedRect) (float64, float64) {
	theta := ell.Angle * math.Pi / 180
	half := float64(ell.Width) / 2
	if ell.Height > ell.Width {
		theta += math.Pi / 2
		half = float64(ell.Height) / 2
	}
	return float64(ell.Center.X) + half*math.Cos(theta),
		float64(ell.Center.Y) + half*math.Sin(theta)
}

// Fold maps an angle in degrees onto (-90, 90], the range in which the
// two geometrically equivalent major-axis directions coincide.
func Fold(deg float64) float64 {
	for deg <= -90 {
		deg += 180
	}
	for deg > 90 {
		deg -= 180
	}
	return deg
}
