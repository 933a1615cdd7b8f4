// Package plot renders the accumulated track series after a run:
// static PNG charts of position and angle, plus an interactive HTML
// report.
package plot

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"boomtrack/tracking"
)

// Plotter writes run charts into an output directory.
type Plotter struct {
	outputDir string
}

func New(outputDir string) *Plotter {
	return &Plotter{outputDir: outputDir}
}

// Render writes position.png, angle.png and report.html for the series.
// An empty series writes nothing and is not an error; a run that never
// saw the object still ends cleanly.
func (p *Plotter) Render(series *tracking.TrackSeries) error {
	if series.Len() == 0 {
		log.Printf("[PLOT] empty track series, skipping charts")
		return nil
	}
	if err := os.MkdirAll(p.outputDir, 0o755); err != nil {
		return errors.Wrapf(err, "create plot dir %s", p.outputDir)
	}

	if err := p.renderPosition(series); err != nil {
		return err
	}
	if err := p.renderAngle(series); err != nil {
		return err
	}
	return p.renderReport(series)
}

func (p *Plotter) renderPosition(series *tracking.TrackSeries) error {
	samples := series.Samples()
	xs := make(plotter.XYs, len(samples))
	ys := make(plotter.XYs, len(samples))
	for i, s := range samples {
		xs[i].X = float64(s.Frame)
		xs[i].Y = float64(s.Position.X)
		ys[i].X = float64(s.Frame)
		ys[i].Y = float64(s.Position.Y)
	}

	pl := plot.New()
	pl.Title.Text = fmt.Sprintf("Boomerang position (run %s)", shortID(series))
	pl.X.Label.Text = "frame"
	pl.Y.Label.Text = "pixels"

	xLine, err := plotter.NewLine(xs)
	if err != nil {
		return errors.Wrap(err, "position x line")
	}
	xLine.Width = vg.Points(1)
	yLine, err := plotter.NewLine(ys)
	if err != nil {
		return errors.Wrap(err, "position y line")
	}
	yLine.Width = vg.Points(1)
	yLine.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}

	pl.Add(xLine, yLine)
	pl.Legend.Add("x", xLine)
	pl.Legend.Add("y", yLine)

	file := filepath.Join(p.outputDir, "position.png")
	if err := pl.Save(10*vg.Inch, 4*vg.Inch, file); err != nil {
		return errors.Wrapf(err, "save %s", file)
	}
	return nil
}

func (p *Plotter) renderAngle(series *tracking.TrackSeries) error {
	samples := series.Samples()
	pts := make(plotter.XYs, len(samples))
	for i, s := range samples {
		pts[i].X = series.Elapsed(s.Frame)
		pts[i].Y = s.Angle
	}

	pl := plot.New()
	pl.Title.Text = fmt.Sprintf("Boomerang angle (run %s)", shortID(series))
	pl.X.Label.Text = "seconds"
	pl.Y.Label.Text = "degrees"

	line, err := plotter.NewLine(pts)
	if err != nil {
		return errors.Wrap(err, "angle line")
	}
	line.Width = vg.Points(1)
	pl.Add(line)

	file := filepath.Join(p.outputDir, "angle.png")
	if err := pl.Save(10*vg.Inch, 4*vg.Inch, file); err != nil {
		return errors.Wrapf(err, "save %s", file)
	}
	return nil
}

// shortID abbreviates the run UUID for chart titles.
func shortID(series *tracking.TrackSeries) string {
	id := series.RunID.String()
	if len(id) > 8 {
		id = id[:8]
	}
	return id
}
