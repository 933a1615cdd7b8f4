// Package tracking runs the per-frame detection pipeline and
// accumulates the position/angle time series for a video run.
package tracking

import (
	"image"
	"log"

	"gocv.io/x/gocv"

	"boomtrack/contours"
	"boomtrack/orient"
	"boomtrack/segment"
)

// Detection is the per-frame result for a found object.
type Detection struct {
	Frame    int
	Position image.Point // bounding-rect center of the contour
	Angle    float64     // degrees from horizontal, see orient.Fold
	Contour  contours.Contour
}

// Config wires the pipeline stages together.
type Config struct {
	Segment segment.Config           `json:"segment"`
	Extract contours.ExtractorConfig `json:"extract"`
	Select  contours.SelectorConfig  `json:"select"`

	// UnwrapAngles shifts each new angle by multiples of 180 degrees to
	// minimize the jump from the previous accepted sample, hiding the
	// ellipse fit's endpoint flips from the plotted series. Off by
	// default so a frame's result depends only on that frame.
	UnwrapAngles bool `json:"unwrapAngles"`

	// Quiet suppresses the per-frame log lines.
	Quiet bool `json:"quiet"`
}

func DefaultConfig() Config {
	return Config{
		Segment: segment.DefaultConfig(),
		Extract: contours.DefaultExtractorConfig(),
		Select:  contours.DefaultSelectorConfig(),
	}
}

// Tracker orchestrates segment -> extract -> select -> estimate for one
// video run and owns the resulting TrackSeries. It keeps no other state
// between frames.
type Tracker struct {
	cfg Config
	seg *segment.Segmenter
	ext *contours.Extractor
	sel *contours.Selector
	est *orient.Estimator

	series *TrackSeries
}

func New(cfg Config, fps float64) *Tracker {
	return &Tracker{
		cfg:    cfg,
		seg:    segment.New(cfg.Segment),
		ext:    contours.NewExtractor(cfg.Extract),
		sel:    contours.NewSelector(cfg.Select),
		est:    orient.New(),
		series: NewTrackSeries(fps),
	}
}

// Series returns the track series owned by this tracker.
func (t *Tracker) Series() *TrackSeries {
	return t.series
}

// Process runs the pipeline on one frame. The second return is false
// when no valid contour exists for the frame; nothing is appended to
// the series in that case. Per-frame failures, including contours too
// short for the ellipse fit, degrade to not-found rather than aborting
// the run.
func (t *Tracker) Process(frame gocv.Mat, frameIdx int) (Detection, bool) {
	mask := gocv.NewMat()
	defer mask.Close()
	t.seg.Segment(frame, &mask)

	selected, ok := t.sel.Select(t.ext.Extract(mask))
	if !ok {
		return Detection{}, false
	}

	angle, err := t.est.Estimate(selected)
	if err != nil {
		if !t.cfg.Quiet {
			log.Printf("[TRACK] frame %d: dropping detection: %v", frameIdx, err)
		}
		return Detection{}, false
	}

	if t.cfg.UnwrapAngles {
		if prev, found := t.series.Last(); found {
			angle = unwrap(angle, prev.Angle)
		}
	}

	rect := contours.Bounds(selected)
	det := Detection{
		Frame:    frameIdx,
		Position: image.Pt(rect.Min.X+rect.Dx()/2, rect.Min.Y+rect.Dy()/2),
		Angle:    angle,
		Contour:  selected,
	}
	t.series.Append(Sample{Frame: det.Frame, Position: det.Position, Angle: det.Angle})
	return det, true
}

// unwrap moves angle by 180-degree steps until it is within 90 degrees
// of prev, so an endpoint flip in the ellipse fit does not show up as a
// 180-degree discontinuity.
func unwrap(angle, prev float64) float64 {
	for angle-prev > 90 {
		angle -= 180
	}
	for prev-angle > 90 {
		angle += 180
	}
	return angle
}
