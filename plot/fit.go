package plot

import (
	"fmt"

	"github.com/katalvlaran/etchpath/point"
)

// Fit maps points from the src frame (image pixels) into dst (device units).
func Fit(pts []point.Point, src, dst Frame, opts FitOptions) ([]point.Point, error) {
	if !src.valid() || !dst.valid() {
		return nil, ErrBadBounds
	}

	// 1) Per-axis scale; uniform scale centres the short axis.
	sx, sy := dst.Width/src.Width, dst.Height/src.Height
	var ox, oy float64
	if opts.KeepAspect {
		s := min(sx, sy)
		sx, sy = s, s
		ox = (dst.Width - src.Width*s) / 2
		oy = (dst.Height - src.Height*s) / 2
	}

	// 2) Transform.
	out := make([]point.Point, len(pts))
	var (
		i    int
		p    point.Point
		x, y float64
	)
	for i, p = range pts {
		if p.Dim() != 2 {
			return nil, fmt.Errorf("plot: Fit point %d %v: %w", i, p, ErrNotPlanar)
		}
		x, y = p.At(0), p.At(1)
		if opts.FlipY {
			y = src.Height - y
		}
		out[i] = point.New(x*sx+ox, y*sy+oy)
	}

	return out, nil
}

// Compact returns path without consecutive repeated points. The result is
// still continuous because only zero-length steps are removed.
func Compact(path []point.Point) []point.Point {
	out := make([]point.Point, 0, len(path))
	var p point.Point
	for _, p = range path {
		if n := len(out); n > 0 && out[n-1].Equal(p) {
			continue
		}
		out = append(out, p)
	}

	return out
}
