package plot

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"github.com/katalvlaran/etchpath/point"
)

// Render draws path as black strokes of the given width on a white
// width × height canvas whose coordinates match the path's.
func Render(path []point.Point, width, height int, stroke float64) (*image.Gray, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrBadBounds
	}
	canvas := image.NewGray(image.Rect(0, 0, width, height))
	draw.Draw(canvas, canvas.Bounds(), image.White, image.Point{}, draw.Src)
	if len(path) == 0 {
		return canvas, nil
	}
	if stroke <= 0 {
		stroke = 1
	}

	r := vector.NewRasterizer(width, height)
	half := stroke / 2
	var (
		i    int
		a, b point.Point
	)
	for i = range path {
		if path[i].Dim() != 2 {
			return nil, fmt.Errorf("plot: Render point %d %v: %w", i, path[i], ErrNotPlanar)
		}
		a, b = path[i], path[i]
		if i > 0 {
			a = path[i-1]
		}
		segment(r, a.At(0), a.At(1), b.At(0), b.At(1), half)
	}
	r.Draw(canvas, canvas.Bounds(), image.NewUniform(color.Black), image.Point{})

	return canvas, nil
}

// segment adds the rectangle of half-width h around (x0,y0)-(x1,y1).
// Every rectangle is wound the same way, so overlapping strokes (such as a
// segment walked down and back) accumulate instead of cancelling.
func segment(r *vector.Rasterizer, x0, y0, x1, y1, h float64) {
	dx, dy := x1-x0, y1-y0
	l := math.Hypot(dx, dy)
	if l == 0 {
		// a dot: a square centred on the point
		x0, x1 = x0-h, x0+h
		dx, dy, l = 2*h, 0, 2*h
	}
	nx, ny := -dy/l*h, dx/l*h

	r.MoveTo(float32(x0+nx), float32(y0+ny))
	r.LineTo(float32(x1+nx), float32(y1+ny))
	r.LineTo(float32(x1-nx), float32(y1-ny))
	r.LineTo(float32(x0-nx), float32(y0-ny))
	r.ClosePath()
}
