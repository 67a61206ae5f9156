package tsp

import (
	"context"
	"errors"
	"log/slog"

	"github.com/katalvlaran/etchpath/core"
	"github.com/katalvlaran/etchpath/point"
)

// Sentinel errors.
var (
	// ErrDimensionMismatch indicates points of different dimensionality.
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

	// ErrEmptyComponent indicates a component with no points was found
	// during merging. It means an internal invariant is broken.
	ErrEmptyComponent = errors.New("tsp: empty component during merge")

	// ErrDisconnected indicates the walk could not reach every point.
	ErrDisconnected = errors.New("tsp: structure is not connected")

	// ErrNotAWalk indicates two consecutive tour entries are not adjacent.
	ErrNotAWalk = errors.New("tsp: consecutive tour entries are not adjacent")

	// ErrMissingPoint indicates a point absent from a tour.
	ErrMissingPoint = errors.New("tsp: point missing from tour")
)

// DefaultProgressEvery is the merge-loop progress logging interval.
const DefaultProgressEvery = 100

// Option configures SpanningTreeWalk.
type Option func(*Options)

// Options holds the tunables of SpanningTreeWalk.
type Options struct {
	// Start, when valid, selects the walk's first point (snapped to the
	// nearest input point).
	Start point.Point

	// Logger receives progress and collision records.
	Logger *slog.Logger

	// Ctx parents the tracing span and is checked by the walk.
	Ctx context.Context

	// ProgressEvery logs "components remaining" every that many merges;
	// zero or negative disables progress logging.
	ProgressEvery int
}

// DefaultOptions returns no start point, a discarding logger, a background
// context and DefaultProgressEvery.
func DefaultOptions() Options {
	return Options{
		Start:         point.Invalid(),
		Logger:        slog.New(slog.DiscardHandler),
		Ctx:           context.Background(),
		ProgressEvery: DefaultProgressEvery,
	}
}

// WithStart sets the point the walk should begin at (or nearest to).
func WithStart(p point.Point) Option {
	return func(o *Options) { o.Start = p }
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithContext sets the parent context. A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithProgressEvery sets the progress logging interval.
func WithProgressEvery(n int) Option {
	return func(o *Options) { o.ProgressEvery = n }
}

// Stats summarises one SpanningTreeWalk run.
type Stats struct {
	InputPoints        int     // points passed in
	InvalidPoints      int     // invalid points skipped
	DuplicatePoints    int     // repeated points collapsed
	Points             int     // distinct points toured
	NearestEdges       int     // distinct edges of the nearest-neighbour graph
	InitialComponents  int     // components before merging
	BridgeEdges        int     // edges added by the merge loop
	CentroidCollisions int     // merged centroids not registered in the index
	TourEntries        int     // len(Tour)
	PathLength         float64 // Euclidean length of the tour
}

// Result is the output of SpanningTreeWalk.
type Result struct {
	// Tour is the ordered drawing path.
	Tour []point.Point

	// Order is Tour expressed as indices into Points.
	Order []int

	// Points are the distinct input points in first-occurrence order.
	Points []point.Point

	// Edges is the final connected structure over Points indices.
	Edges []core.Edge

	// Stats describes the run.
	Stats Stats
}
