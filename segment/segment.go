// Package segment isolates the tracked object in a frame by color. The
// boomerang is painted red, and red straddles the hue seam in OpenCV's
// 0-180 hue scale, so the mask is the union of two in-range tests: one
// band just above hue 0 and one just below hue 180.
package segment

import (
	"gocv.io/x/gocv"
)

// HSV is a single threshold point in OpenCV's HSV space (H in 0-180,
// S and V in 0-255).
type HSV struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	V float64 `json:"v"`
}

func (h HSV) scalar() gocv.Scalar {
	return gocv.NewScalar(h.H, h.S, h.V, 0)
}

// Band is an inclusive HSV range.
type Band struct {
	Lo HSV `json:"lo"`
	Hi HSV `json:"hi"`
}

// Config holds the segmentation thresholds.
type Config struct {
	// LowBand catches reds just above the hue seam, HighBand the reds
	// just below it. Both require strong saturation and brightness so
	// dull reddish background pixels stay out of the mask.
	LowBand  Band `json:"lowBand"`
	HighBand Band `json:"highBand"`

	// MedianKernel is the aperture of the median filter applied to the
	// combined mask to knock out speckle. Must be odd.
	MedianKernel int `json:"medianKernel"`
}

// DefaultConfig returns the thresholds tuned for the painted boomerang.
func DefaultConfig() Config {
	return Config{
		LowBand: Band{
			Lo: HSV{H: 0, S: 150, V: 150},
			Hi: HSV{H: 10, S: 255, V: 255},
		},
		HighBand: Band{
			Lo: HSV{H: 170, S: 150, V: 150},
			Hi: HSV{H: 180, S: 255, V: 255},
		},
		MedianKernel: 5,
	}
}

// Segmenter turns BGR frames into binary masks of candidate object pixels.
type Segmenter struct {
	cfg Config
}

func New(cfg Config) *Segmenter {
	return &Segmenter{cfg: cfg}
}

// Segment writes a binary mask into dst: 255 where the pixel falls in
// either hue band, 0 elsewhere. dst ends up CV8U with the same spatial
// dimensions as frame. An all-zero mask is a valid result meaning no
// matching pixels.
func (s *Segmenter) Segment(frame gocv.Mat, dst *gocv.Mat) {
	hsv := gocv.NewMat()
	defer hsv.Close()
	gocv.CvtColor(frame, &hsv, gocv.ColorBGRToHSV)

	low := gocv.NewMat()
	defer low.Close()
	gocv.InRangeWithScalar(hsv, s.cfg.LowBand.Lo.scalar(), s.cfg.LowBand.Hi.scalar(), &low)

	high := gocv.NewMat()
	defer high.Close()
	gocv.InRangeWithScalar(hsv, s.cfg.HighBand.Lo.scalar(), s.cfg.HighBand.Hi.scalar(), &high)

	gocv.BitwiseOr(low, high, dst)
	gocv.MedianBlur(*dst, dst, s.cfg.MedianKernel)
}
