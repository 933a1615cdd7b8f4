// Package overlay draws detection annotations onto frames before they
// are written to the output video.
package overlay

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"gocv.io/x/gocv"

	"boomtrack/tracking"
)

// Overlay palette.
var (
	contourGreen = color.RGBA{G: 255, A: 255}
	boxBlue      = color.RGBA{B: 255, G: 128, A: 255}
	centerRed    = color.RGBA{R: 255, A: 255}
	labelWhite   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// axisLength is the half-length in pixels of the drawn orientation axis.
const axisLength = 40

// Renderer annotates frames with the selected contour, its bounding
// box, the center marker and the orientation angle.
type Renderer struct{}

func New() *Renderer {
	return &Renderer{}
}

// Draw paints the detection onto img in place. Callers skip Draw
// entirely for not-found frames, so the output video shows those frames
// unannotated.
func (r *Renderer) Draw(img *gocv.Mat, det tracking.Detection) {
	if len(det.Contour) == 0 {
		return
	}

	pts := gocv.NewPointsVectorFromPoints([][]image.Point{det.Contour})
	defer pts.Close()
	gocv.DrawContours(img, pts, 0, contourGreen, 2)

	pv := pts.At(0)
	box := gocv.BoundingRect(pv)
	gocv.Rectangle(img, box, boxBlue, 1)
	gocv.Circle(img, det.Position, 3, centerRed, -1)

	// Orientation axis through the center, both directions since the
	// angle is an orientation rather than a heading.
	rad := det.Angle * math.Pi / 180
	dx := int(math.Round(axisLength * math.Cos(rad)))
	dy := int(math.Round(axisLength * math.Sin(rad)))
	gocv.Line(img,
		image.Pt(det.Position.X-dx, det.Position.Y-dy),
		image.Pt(det.Position.X+dx, det.Position.Y+dy),
		centerRed, 1)

	label := fmt.Sprintf("%.1f deg", det.Angle)
	gocv.PutText(img, label,
		image.Pt(box.Min.X, box.Min.Y-8),
		gocv.FontHersheySimplex, 0.5, labelWhite, 1)
}
