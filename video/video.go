// Package video wraps frame iteration over an input file and encoding
// of the annotated output file.
package video

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gocv.io/x/gocv"
)

// defaultFPS stands in when the container reports no frame rate.
const defaultFPS = 30

// Source iterates frames of a video file.
type Source struct {
	capture *gocv.VideoCapture
	path    string
	width   int
	height  int
	fps     float64
}

// Open opens the input file. Failure here is fatal to the run; nothing
// has been processed yet.
func Open(path string) (*Source, error) {
	capture, err := gocv.VideoCaptureFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open video %s", path)
	}

	fps := capture.Get(gocv.VideoCaptureFPS)
	if fps <= 0 {
		fps = defaultFPS
	}
	return &Source{
		capture: capture,
		path:    path,
		width:   int(capture.Get(gocv.VideoCaptureFrameWidth)),
		height:  int(capture.Get(gocv.VideoCaptureFrameHeight)),
		fps:     fps,
	}, nil
}

// Next reads the next frame into dst. It returns false at end of
// stream, which ends the run normally.
func (s *Source) Next(dst *gocv.Mat) bool {
	if !s.capture.Read(dst) {
		return false
	}
	return !dst.Empty()
}

func (s *Source) Path() string { return s.path }
func (s *Source) Width() int   { return s.width }
func (s *Source) Height() int  { return s.height }
func (s *Source) FPS() float64 { return s.fps }

func (s *Source) Close() error {
	return s.capture.Close()
}

// OutputPath derives the default annotated-video path from the input:
// the same directory and base name with an _output.mp4 suffix.
func OutputPath(input string) string {
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	return filepath.Join(filepath.Dir(input), base+"_output.mp4")
}

// Writer encodes annotated frames at the source resolution and rate.
type Writer struct {
	writer *gocv.VideoWriter
	path   string
}

func NewWriter(path string, fps float64, width, height int) (*Writer, error) {
	w, err := gocv.VideoWriterFile(path, "mp4v", fps, width, height, true)
	if err != nil {
		return nil, errors.Wrapf(err, "open video writer %s", path)
	}
	return &Writer{writer: w, path: path}, nil
}

func (w *Writer) Write(frame gocv.Mat) error {
	if err := w.writer.Write(frame); err != nil {
		return errors.Wrapf(err, "write frame to %s", w.path)
	}
	return nil
}

func (w *Writer) Path() string { return w.path }

func (w *Writer) Close() error {
	return w.writer.Close()
}
