package main

import (
	"context"
	"fmt"
	"image/png"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/etchpath/edges"
	"github.com/katalvlaran/etchpath/plot"
	"github.com/katalvlaran/etchpath/point"
	"github.com/katalvlaran/etchpath/tsp"
)

var (
	traceOutput  string
	tracePreview string
)

var traceCmd = &cobra.Command{
	Use:   "trace <image>",
	Short: "Convert an image into a JCode path",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		if flags.Changed("threshold") {
			cfg.Edges.Threshold, _ = flags.GetFloat64("threshold")
		}
		if flags.Changed("width") {
			cfg.Output.Width, _ = flags.GetFloat64("width")
		}
		if flags.Changed("height") {
			cfg.Output.Height, _ = flags.GetFloat64("height")
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		return runTrace(cmd.Context(), args[0], traceOutput, tracePreview)
	},
}

func init() {
	traceCmd.Flags().StringVarP(&traceOutput, "output", "o", "out.jcode", "JCode output file")
	traceCmd.Flags().StringVar(&tracePreview, "preview", "", "optional PNG preview of the path")
	traceCmd.Flags().Float64("threshold", 0, "edge magnitude threshold (overrides config)")
	traceCmd.Flags().Float64("width", 0, "output width in device units (overrides config)")
	traceCmd.Flags().Float64("height", 0, "output height in device units (overrides config)")
}

// tracedPath is the fitted pen path of one image.
type tracedPath struct {
	Path  []point.Point
	Stats tsp.Stats
}

// traceImage runs edge extraction and tour construction on the image at
// input and fits the result to the configured output frame.
func traceImage(ctx context.Context, input string, c Config) (*tracedPath, error) {
	f, err := os.Open(input)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	img, format, err := edges.Decode(f)
	if err != nil {
		return nil, err
	}
	bounds := img.Bounds()
	logger.Info("image decoded", "path", input, "format", format,
		"width", bounds.Dx(), "height", bounds.Dy())

	pts, _, err := edges.Extract(img,
		edges.WithThreshold(c.Edges.Threshold),
		edges.WithInvert(c.Edges.Invert),
	)
	if err != nil {
		return nil, err
	}
	logger.Info("edges extracted", "points", len(pts))

	opts := []tsp.Option{tsp.WithLogger(logger), tsp.WithContext(ctx)}
	if c.Tour.HasStart {
		opts = append(opts, tsp.WithStart(point.New(c.Tour.StartX, c.Tour.StartY)))
	}
	start := time.Now()
	res, err := tsp.SpanningTreeWalk(pts, opts...)
	if err != nil {
		return nil, fmt.Errorf("build tour: %w", err)
	}
	logger.Info("tour built",
		"points", res.Stats.Points,
		"components", res.Stats.InitialComponents,
		"entries", res.Stats.TourEntries,
		"length", res.Stats.PathLength,
		"elapsed", time.Since(start))

	fitted, err := plot.Fit(res.Tour,
		plot.Frame{Width: float64(bounds.Dx()), Height: float64(bounds.Dy())},
		plot.Frame{Width: c.Output.Width, Height: c.Output.Height},
		plot.FitOptions{KeepAspect: c.Output.KeepAspect, FlipY: c.Output.FlipY},
	)
	if err != nil {
		return nil, err
	}

	return &tracedPath{Path: plot.Compact(fitted), Stats: res.Stats}, nil
}

func runTrace(ctx context.Context, input, output, preview string) error {
	traced, err := traceImage(ctx, input, cfg)
	if err != nil {
		return err
	}

	code, err := plot.JCode(traced.Path, plot.JCodeConfig{
		Speed:         cfg.Output.Speed,
		PointDistance: cfg.Output.PointDistance,
		StartDelay:    cfg.Output.StartDelay,
		EndDelay:      cfg.Output.EndDelay,
	})
	if err != nil {
		return err
	}
	if err = writeFile(output, func(f *os.File) error { return plot.WriteJCode(f, code) }); err != nil {
		return err
	}
	logger.Info("jcode written", "path", output, "instructions", len(code))

	if preview == "" {
		return nil
	}
	canvas, err := plot.Render(traced.Path, int(cfg.Output.Width), int(cfg.Output.Height), cfg.Output.Stroke)
	if err != nil {
		return err
	}
	if err = writeFile(preview, func(f *os.File) error { return png.Encode(f, canvas) }); err != nil {
		return err
	}
	logger.Info("preview written", "path", preview)

	return nil
}

// writeFile creates path and hands it to write, reporting close errors.
func writeFile(path string, write func(*os.File) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	return write(f)
}
