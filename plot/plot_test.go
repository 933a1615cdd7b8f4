package plot

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boomtrack/tracking"
)

func seriesWith(samples ...tracking.Sample) *tracking.TrackSeries {
	series := tracking.NewTrackSeries(30)
	for _, s := range samples {
		series.Append(s)
	}
	return series
}

func TestRenderWritesCharts(t *testing.T) {
	dir := t.TempDir()
	series := seriesWith(
		tracking.Sample{Frame: 0, Position: image.Pt(10, 20), Angle: 15},
		tracking.Sample{Frame: 1, Position: image.Pt(12, 22), Angle: 30},
		tracking.Sample{Frame: 3, Position: image.Pt(15, 25), Angle: 45},
	)

	require.NoError(t, New(dir).Render(series))

	for _, name := range []string{"position.png", "angle.png", "report.html"} {
		info, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.Greater(t, info.Size(), int64(0), name)
	}
}

func TestRenderEmptySeries(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "unused")

	require.NoError(t, New(dir).Render(tracking.NewTrackSeries(30)))

	// Nothing should be written, the directory is not even created.
	_, err := os.Stat(dir)
	assert.True(t, os.IsNotExist(err))
}

func TestSummarize(t *testing.T) {
	series := seriesWith(
		tracking.Sample{Frame: 2, Angle: 10},
		tracking.Sample{Frame: 3, Angle: 20},
		tracking.Sample{Frame: 6, Angle: 30},
	)

	got := Summarize(series)
	assert.Equal(t, 3, got.Samples)
	assert.Equal(t, 2, got.FirstFrame)
	assert.Equal(t, 6, got.LastFrame)
	assert.InDelta(t, 0.6, got.Coverage, 1e-9)
	assert.InDelta(t, 20, got.MeanAngle, 1e-9)
	assert.InDelta(t, 10, got.MeanStep, 1e-9)
}

func TestSummarizeEmpty(t *testing.T) {
	got := Summarize(tracking.NewTrackSeries(30))
	assert.Zero(t, got.Samples)
	assert.Zero(t, got.Coverage)
}
