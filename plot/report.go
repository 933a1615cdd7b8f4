package plot

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/pkg/errors"

	"boomtrack/tracking"
)

// renderReport writes an interactive HTML page with the angle and
// position series, titled with the run ID and summarized in the
// subtitle.
func (p *Plotter) renderReport(series *tracking.TrackSeries) error {
	samples := series.Samples()
	summary := Summarize(series)

	times := make([]string, len(samples))
	angleData := make([]opts.LineData, len(samples))
	xData := make([]opts.LineData, len(samples))
	yData := make([]opts.LineData, len(samples))
	for i, s := range samples {
		times[i] = fmt.Sprintf("%.2f", series.Elapsed(s.Frame))
		angleData[i] = opts.LineData{Value: s.Angle}
		xData[i] = opts.LineData{Value: s.Position.X}
		yData[i] = opts.LineData{Value: s.Position.Y}
	}

	angle := charts.NewLine()
	angle.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("Boomerang angle, run %s", shortID(series)),
			Subtitle: summary.String(),
		}),
	)
	angle.SetXAxis(times).AddSeries("angle (deg)", angleData)

	position := charts.NewLine()
	position.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Boomerang position",
			Subtitle: "bounding-rect center per sampled frame",
		}),
	)
	position.SetXAxis(times).
		AddSeries("x (px)", xData).
		AddSeries("y (px)", yData)

	page := components.NewPage()
	page.AddCharts(angle, position)

	file := filepath.Join(p.outputDir, "report.html")
	f, err := os.Create(file)
	if err != nil {
		return errors.Wrapf(err, "create %s", file)
	}
	defer f.Close()
	if err := page.Render(f); err != nil {
		return errors.Wrapf(err, "render %s", file)
	}
	return nil
}
