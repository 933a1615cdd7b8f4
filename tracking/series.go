package tracking

import (
	"image"

	"github.com/google/uuid"
)

// Sample is one accepted detection in the run's time series.
type Sample struct {
	// Frame is the zero-based frame index. Frames where the object was
	// not found leave a gap; they are skipped, not null-filled.
	Frame    int
	Position image.Point
	Angle    float64
}

// TrackSeries accumulates per-frame samples for one video run. It is
// append-only and owned by a single Tracker; frame indices are strictly
// increasing.
type TrackSeries struct {
	RunID uuid.UUID
	FPS   float64

	samples []Sample
}

func NewTrackSeries(fps float64) *TrackSeries {
	return &TrackSeries{RunID: uuid.New(), FPS: fps}
}

// Append records a sample. Samples whose frame index does not advance
// past the last recorded one are dropped, keeping the series a valid
// time axis.
func (s *TrackSeries) Append(sample Sample) bool {
	if n := len(s.samples); n > 0 && sample.Frame <= s.samples[n-1].Frame {
		return false
	}
	s.samples = append(s.samples, sample)
	return true
}

func (s *TrackSeries) Len() int {
	return len(s.samples)
}

// Samples returns the accumulated samples in frame order. The returned
// slice is a copy; mutating it does not affect the series.
func (s *TrackSeries) Samples() []Sample {
	out := make([]Sample, len(s.samples))
	copy(out, s.samples)
	return out
}

// Last returns the most recent sample, if any.
func (s *TrackSeries) Last() (Sample, bool) {
	if len(s.samples) == 0 {
		return Sample{}, false
	}
	return s.samples[len(s.samples)-1], true
}

// Elapsed converts a frame index to seconds on the series time axis.
func (s *TrackSeries) Elapsed(frame int) float64 {
	if s.FPS <= 0 {
		return float64(frame)
	}
	return float64(frame) / s.FPS
}
