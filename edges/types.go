package edges

import "errors"

var (
	// ErrNilImage is returned when a nil image is passed in.
	ErrNilImage = errors.New("edges: image is nil")

	// ErrDecode wraps image decoding failures.
	ErrDecode = errors.New("edges: cannot decode image")
)

// DefaultThreshold is the Sobel magnitude above which a pixel is an edge.
const DefaultThreshold = 128.0

// Option configures Extract.
type Option func(*Options)

// Options holds the edge-detection parameters.
type Options struct {
	// Threshold is the minimum Sobel magnitude (exclusive) of an edge pixel.
	Threshold float64

	// Invert flips grayscale values before edge detection.
	Invert bool
}

// DefaultOptions returns DefaultThreshold without inversion.
func DefaultOptions() Options {
	return Options{Threshold: DefaultThreshold}
}

// WithThreshold sets the Sobel magnitude threshold.
func WithThreshold(t float64) Option {
	return func(o *Options) { o.Threshold = t }
}

// WithInvert flips grayscale values before detection.
func WithInvert(invert bool) Option {
	return func(o *Options) { o.Invert = invert }
}
