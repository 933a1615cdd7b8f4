package contours

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocv.io/x/gocv"
)

// blobMask builds a zeroed mask with filled white rectangles at the
// given bounds.
func blobMask(rows, cols int, blobs ...image.Rectangle) gocv.Mat {
	mask := gocv.NewMatWithSize(rows, cols, gocv.MatTypeCV8U)
	white := color.RGBA{R: 255, G: 255, B: 255}
	for _, b := range blobs {
		gocv.Rectangle(&mask, b, white, -1)
	}
	return mask
}

func TestExtractDirect(t *testing.T) {
	mask := blobMask(100, 100, image.Rect(20, 30, 50, 45))
	defer mask.Close()

	got := NewExtractor(DefaultExtractorConfig()).Extract(mask)
	require.Len(t, got, 1)

	// OpenCV rectangles include both corners, so the traced bounds run
	// one pixel past the drawn rect.
	bounds := Bounds(got[0])
	assert.Equal(t, image.Pt(20, 30), bounds.Min)
	assert.True(t, image.Rect(20, 30, 50, 45).In(bounds))
}

func TestExtractEmptyMask(t *testing.T) {
	mask := blobMask(100, 100)
	defer mask.Close()

	got := NewExtractor(DefaultExtractorConfig()).Extract(mask)
	assert.Empty(t, got)
}

func TestExtractEdgeDetection(t *testing.T) {
	mask := blobMask(100, 100, image.Rect(20, 30, 60, 50))
	defer mask.Close()

	cfg := DefaultExtractorConfig()
	cfg.UseEdgeDetection = true
	got := NewExtractor(cfg).Extract(mask)

	// Canny plus dilation must still produce an outer boundary that
	// encloses the blob, though dilation grows it slightly.
	require.NotEmpty(t, got)
	_, ok := NewSelector(SelectorConfig{MinArea: 100, MaxArea: 10000}).Select(got)
	assert.True(t, ok)
}

func TestSelectLargest(t *testing.T) {
	mask := blobMask(200, 200,
		image.Rect(10, 10, 40, 40),     // area ~900
		image.Rect(100, 100, 180, 160), // area ~4800
	)
	defer mask.Close()

	cands := NewExtractor(DefaultExtractorConfig()).Extract(mask)
	require.Len(t, cands, 2)

	sel := NewSelector(SelectorConfig{MinArea: 100, MaxArea: 100000})
	got, ok := sel.Select(cands)
	require.True(t, ok)
	assert.Greater(t, Area(got), 4000.0)
}

func TestSelectAreaBounds(t *testing.T) {
	mask := blobMask(100, 100, image.Rect(10, 10, 40, 40)) // area ~900
	defer mask.Close()
	cands := NewExtractor(DefaultExtractorConfig()).Extract(mask)
	require.Len(t, cands, 1)

	cases := []struct {
		name    string
		cfg     SelectorConfig
		wantHit bool
	}{
		{"inside bounds", SelectorConfig{MinArea: 100, MaxArea: 10000}, true},
		{"below min", SelectorConfig{MinArea: 2000, MaxArea: 10000}, false},
		{"above max", SelectorConfig{MinArea: 10, MaxArea: 500}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := NewSelector(tc.cfg).Select(cands)
			assert.Equal(t, tc.wantHit, ok)
			if ok {
				area := Area(got)
				assert.Greater(t, area, tc.cfg.MinArea)
				assert.Less(t, area, tc.cfg.MaxArea)
			}
		})
	}
}

func TestSelectEmptyInput(t *testing.T) {
	got, ok := NewSelector(DefaultSelectorConfig()).Select(nil)
	assert.False(t, ok)
	assert.Nil(t, got)
}
