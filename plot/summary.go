package plot

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"boomtrack/tracking"
)

// Summary condenses a run's track series into headline numbers for the
// report subtitle and the end-of-run log line.
type Summary struct {
	Samples    int
	FirstFrame int
	LastFrame  int
	// Coverage is the fraction of frames in [FirstFrame, LastFrame]
	// with an accepted detection.
	Coverage  float64
	MeanAngle float64
	StdAngle  float64
	// MeanStep and StdStep describe the per-sample angular change, a
	// rough spin-rate signal.
	MeanStep float64
	StdStep  float64
}

func (s Summary) String() string {
	return fmt.Sprintf("samples=%d frames=%d-%d coverage=%.0f%% angle=%.1f±%.1f step=%.1f±%.1f",
		s.Samples, s.FirstFrame, s.LastFrame, s.Coverage*100,
		s.MeanAngle, s.StdAngle, s.MeanStep, s.StdStep)
}

// Summarize computes run statistics over the series. A series with
// fewer than two samples yields zero step statistics.
func Summarize(series *tracking.TrackSeries) Summary {
	samples := series.Samples()
	if len(samples) == 0 {
		return Summary{}
	}

	angles := make([]float64, len(samples))
	for i, s := range samples {
		angles[i] = s.Angle
	}
	steps := make([]float64, 0, len(samples)-1)
	for i := 1; i < len(samples); i++ {
		steps = append(steps, samples[i].Angle-samples[i-1].Angle)
	}

	sum := Summary{
		Samples:    len(samples),
		FirstFrame: samples[0].Frame,
		LastFrame:  samples[len(samples)-1].Frame,
		MeanAngle:  stat.Mean(angles, nil),
	}
	sum.Coverage = float64(len(samples)) / float64(sum.LastFrame-sum.FirstFrame+1)
	if len(angles) > 1 {
		sum.StdAngle = stat.StdDev(angles, nil)
	}
	if len(steps) > 0 {
		sum.MeanStep = stat.Mean(steps, nil)
		if len(steps) > 1 {
			sum.StdStep = stat.StdDev(steps, nil)
		}
	}
	return sum
}
