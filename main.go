// boomtrack tracks a thrown boomerang through a video file. Each frame
// is segmented by color, the best contour is selected and measured, and
// the accumulated position/angle series is plotted at the end of the
// run. The annotated video is written next to the input.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"gocv.io/x/gocv"

	"boomtrack/overlay"
	"boomtrack/plot"
	"boomtrack/tracking"
	"boomtrack/video"
)

var (
	inputPath  = flag.String("input", "", "Input video file (required)\n\t\tExample: -input=throws/clip01.mp4")
	outputPath = flag.String("output", "", "Annotated output video (default: <input_basename>_output.mp4 beside the input)")
	plotDir    = flag.String("plot-dir", "plots", "Directory for the position/angle charts and HTML report")

	// Segmentation thresholds. Red wraps the hue seam, so the low band
	// tops out just above 0 and the high band starts just below 180.
	lowHueMax  = flag.Float64("low-hue-max", 10, "Upper hue bound of the low red band (0-180 scale)")
	highHueMin = flag.Float64("high-hue-min", 170, "Lower hue bound of the high red band (0-180 scale)")
	satMin     = flag.Float64("sat-min", 150, "Minimum saturation for a candidate pixel (0-255)")
	valMin     = flag.Float64("val-min", 150, "Minimum value/brightness for a candidate pixel (0-255)")

	// Contour filtering.
	minArea = flag.Float64("min-area", 100, "Exclusive lower bound on contour area in pixels")
	maxArea = flag.Float64("max-area", 250000, "Exclusive upper bound on contour area in pixels")

	// Alternate extraction strategy.
	useEdges   = flag.Bool("edges", false, "Run Canny edge detection and dilation before contour tracing")
	cannyT1    = flag.Float64("canny-t1", 50, "First Canny threshold (with -edges)")
	cannyT2    = flag.Float64("canny-t2", 150, "Second Canny threshold (with -edges)")
	dilateIter = flag.Int("dilate-iter", 2, "Dilation iterations after edge detection (with -edges)")

	unwrapAngles = flag.Bool("unwrap", false, "Unwrap angles against the previous sample to hide 180-degree endpoint flips")
	quiet        = flag.Bool("quiet", false, "Suppress per-frame log output")
)

func main() {
	flag.Parse()
	if *inputPath == "" {
		fmt.Fprintln(os.Stderr, "missing required -input flag")
		flag.Usage()
		os.Exit(1)
	}

	if err := run(); err != nil {
		log.Fatalf("[MAIN] %v", err)
	}
}

func run() error {
	src, err := video.Open(*inputPath)
	if err != nil {
		return err
	}
	defer src.Close()

	outPath := *outputPath
	if outPath == "" {
		outPath = video.OutputPath(*inputPath)
	}
	writer, err := video.NewWriter(outPath, src.FPS(), src.Width(), src.Height())
	if err != nil {
		return err
	}
	defer writer.Close()

	log.Printf("[MAIN] input=%s %dx%d @ %.1f fps, output=%s",
		src.Path(), src.Width(), src.Height(), src.FPS(), outPath)

	tracker := tracking.New(trackerConfig(), src.FPS())
	renderer := overlay.New()

	// Stop cleanly before the next frame on interrupt; the partial
	// series still gets plotted.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	frame := gocv.NewMat()
	defer frame.Close()

	processed, found := 0, 0
loop:
	for frameIdx := 0; ; frameIdx++ {
		select {
		case <-stop:
			log.Printf("[MAIN] interrupted at frame %d", frameIdx)
			break loop
		default:
		}

		if !src.Next(&frame) {
			break
		}
		processed++

		if det, ok := tracker.Process(frame, frameIdx); ok {
			found++
			renderer.Draw(&frame, det)
			if !*quiet && found%30 == 1 {
				log.Printf("[TRACK] frame %d: pos=(%d,%d) angle=%.1f",
					det.Frame, det.Position.X, det.Position.Y, det.Angle)
			}
		}

		if err := writer.Write(frame); err != nil {
			// A dropped output frame should not kill the run.
			log.Printf("[MAIN] frame %d: %v", frameIdx, err)
		}
	}

	log.Printf("[MAIN] processed %d frames, object found in %d", processed, found)

	series := tracker.Series()
	if err := plot.New(*plotDir).Render(series); err != nil {
		return err
	}
	if series.Len() > 0 {
		log.Printf("[PLOT] %s", plot.Summarize(series))
	}
	return nil
}

func trackerConfig() tracking.Config {
	cfg := tracking.DefaultConfig()

	cfg.Segment.LowBand.Hi.H = *lowHueMax
	cfg.Segment.HighBand.Lo.H = *highHueMin
	cfg.Segment.LowBand.Lo.S = *satMin
	cfg.Segment.LowBand.Lo.V = *valMin
	cfg.Segment.HighBand.Lo.S = *satMin
	cfg.Segment.HighBand.Lo.V = *valMin

	cfg.Select.MinArea = *minArea
	cfg.Select.MaxArea = *maxArea

	cfg.Extract.UseEdgeDetection = *useEdges
	cfg.Extract.CannyThreshold1 = float32(*cannyT1)
	cfg.Extract.CannyThreshold2 = float32(*cannyT2)
	cfg.Extract.DilateIterations = *dilateIter

	cfg.UnwrapAngles = *unwrapAngles
	cfg.Quiet = *quiet
	return cfg
}
