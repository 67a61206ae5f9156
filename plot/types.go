package plot

import (
	"errors"
	"time"
)

var (
	// ErrBadBounds indicates a non-positive frame or canvas size.
	ErrBadBounds = errors.New("plot: width and height must be positive")

	// ErrEmptyPath indicates there is nothing to draw.
	ErrEmptyPath = errors.New("plot: empty path")

	// ErrNotPlanar indicates a point that is not 2-D.
	ErrNotPlanar = errors.New("plot: point is not 2-D")
)

// Frame is a width × height drawing area anchored at the origin.
type Frame struct {
	Width  float64
	Height float64
}

// valid reports whether both sides are positive.
func (f Frame) valid() bool { return f.Width > 0 && f.Height > 0 }

// FitOptions controls Fit.
type FitOptions struct {
	// KeepAspect scales uniformly and centres instead of stretching.
	KeepAspect bool

	// FlipY mirrors the vertical axis (image rows grow downwards).
	FlipY bool
}

// JCodeConfig controls JCode generation.
type JCodeConfig struct {
	// Speed is the toolhead speed in device units per second.
	Speed float64

	// PointDistance is the minimum spacing between emitted waypoints;
	// the first and last path points are always emitted.
	PointDistance float64

	// StartDelay is waited before lowering the pen.
	StartDelay time.Duration

	// EndDelay is waited before raising the pen.
	EndDelay time.Duration
}

// DefaultJCodeConfig returns the settings used for etch-style devices.
func DefaultJCodeConfig() JCodeConfig {
	return JCodeConfig{
		Speed:         5.0,
		PointDistance: 0.25,
		StartDelay:    time.Second,
		EndDelay:      time.Second,
	}
}
