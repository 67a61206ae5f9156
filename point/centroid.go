package point

import "gonum.org/v1/gonum/floats"

// Centroid returns the arithmetic mean of pts. It returns Invalid() when pts
// is empty, contains an invalid point, or mixes dimensionalities.
func Centroid(pts []Point) Point {
	if len(pts) == 0 || !pts[0].valid {
		return Invalid()
	}
	dim := len(pts[0].coords)
	sum := make([]float64, dim)
	var p Point
	for _, p = range pts {
		if !p.valid || len(p.coords) != dim {
			return Invalid()
		}
		floats.Add(sum, p.coords)
	}
	floats.Scale(1/float64(len(pts)), sum)

	return New(sum...)
}

// WeightedMean merges two centroids: a standing for wa points and b for wb.
// The result is (wa*a + wb*b) / (wa + wb). It returns Invalid() when the
// weights are not positive or the points are incompatible.
func WeightedMean(a Point, wa int, b Point, wb int) Point {
	if !a.valid || !b.valid || len(a.coords) != len(b.coords) || wa <= 0 || wb <= 0 {
		return Invalid()
	}
	total := float64(wa + wb)
	out := make([]float64, len(a.coords))
	floats.AddScaled(out, float64(wa)/total, a.coords)
	floats.AddScaled(out, float64(wb)/total, b.coords)

	return New(out...)
}
