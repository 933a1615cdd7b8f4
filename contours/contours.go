// Package contours extracts candidate object boundaries from a binary
// mask and selects the one that represents the tracked boomerang.
package contours

import (
	"image"

	"gocv.io/x/gocv"
)

// Contour is a closed outer boundary as an ordered point sequence, held
// in Go memory so it can outlive the gocv vectors it was traced from.
type Contour []image.Point

// Area returns the enclosed area of the contour in pixels.
func Area(c Contour) float64 {
	pv := gocv.NewPointVectorFromPoints(c)
	defer pv.Close()
	return gocv.ContourArea(pv)
}

// Bounds returns the axis-aligned bounding rectangle of the contour.
func Bounds(c Contour) image.Rectangle {
	pv := gocv.NewPointVectorFromPoints(c)
	defer pv.Close()
	return gocv.BoundingRect(pv)
}

// ExtractorConfig selects the extraction strategy. The default traces
// contours directly on the smoothed mask; the edge-detection path runs
// Canny and a dilation first to bridge small gaps in the red region
// before tracing.
type ExtractorConfig struct {
	UseEdgeDetection bool    `json:"useEdgeDetection"`
	CannyThreshold1  float32 `json:"cannyThreshold1"`
	CannyThreshold2  float32 `json:"cannyThreshold2"`
	DilateKernelSize int     `json:"dilateKernelSize"`
	DilateIterations int     `json:"dilateIterations"`
}

func DefaultExtractorConfig() ExtractorConfig {
	return ExtractorConfig{
		UseEdgeDetection: false,
		CannyThreshold1:  50,
		CannyThreshold2:  150,
		DilateKernelSize: 3,
		DilateIterations: 2,
	}
}

// Extractor traces closed outer boundaries from a mask.
type Extractor struct {
	cfg ExtractorConfig
}

func NewExtractor(cfg ExtractorConfig) *Extractor {
	return &Extractor{cfg: cfg}
}

// Extract returns the outer contours found in mask, possibly none. Only
// external boundaries are traced; the object is assumed simply-connected
// once masked, so nested boundaries are discarded.
func (e *Extractor) Extract(mask gocv.Mat) []Contour {
	src := mask
	if e.cfg.UseEdgeDetection {
		edges := gocv.NewMat()
		defer edges.Close()
		gocv.Canny(mask, &edges, e.cfg.CannyThreshold1, e.cfg.CannyThreshold2)

		kernel := gocv.GetStructuringElement(gocv.MorphRect,
			image.Pt(e.cfg.DilateKernelSize, e.cfg.DilateKernelSize))
		defer kernel.Close()
		for i := 0; i < e.cfg.DilateIterations; i++ {
			gocv.Dilate(edges, &edges, kernel)
		}
		src = edges
	}

	found := gocv.FindContours(src, gocv.RetrievalExternal, gocv.ChainApproxSimple)
	defer found.Close()

	out := make([]Contour, 0, found.Size())
	for i := 0; i < found.Size(); i++ {
		out = append(out, Contour(found.At(i).ToPoints()))
	}
	return out
}

// SelectorConfig bounds the plausible object size. The defaults pass
// anything bigger than speckle noise but smaller than a frame-filling
// false positive.
type SelectorConfig struct {
	MinArea float64 `json:"minArea"`
	MaxArea float64 `json:"maxArea"`
}

func DefaultSelectorConfig() SelectorConfig {
	return SelectorConfig{MinArea: 100, MaxArea: 250000}
}

// Selector picks the single contour that represents the tracked object.
type Selector struct {
	cfg SelectorConfig
}

func NewSelector(cfg SelectorConfig) *Selector {
	return &Selector{cfg: cfg}
}

// Select filters candidates to those whose area lies strictly within
// (MinArea, MaxArea) and returns the largest survivor. Equal areas
// resolve to the first encountered in extraction order. The second
// return is false when nothing survives.
func (s *Selector) Select(candidates []Contour) (Contour, bool) {
	var best Contour
	bestArea := -1.0
	for _, c := range candidates {
		area := Area(c)
		if area <= s.cfg.MinArea || area >= s.cfg.MaxArea {
			continue
		}
		if area > bestArea {
			best = c
			bestArea = area
		}
	}
	if bestArea < 0 {
		return nil, false
	}
	return best, true
}
