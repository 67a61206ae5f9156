package point

import (
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Point is an immutable coordinate vector. The zero value is invalid.
type Point struct {
	coords []float64
	valid  bool
}

// New returns a Point with a private copy of coords.
// It returns Invalid() if coords is empty or holds NaN or Inf.
func New(coords ...float64) Point {
	if len(coords) == 0 {
		return Invalid()
	}
	c := make([]float64, len(coords))
	var (
		i int
		v float64
	)
	for i, v = range coords {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Invalid()
		}
		if v == 0 {
			v = 0 // fold -0 so Key agrees with Equal
		}
		c[i] = v
	}

	return Point{coords: c, valid: true}
}

// Invalid returns the "no such point" sentinel.
func Invalid() Point { return Point{} }

// IsValid reports whether p carries real coordinates.
func (p Point) IsValid() bool { return p.valid }

// Dim returns the number of coordinates (0 for an invalid point).
func (p Point) Dim() int { return len(p.coords) }

// At returns coordinate i. It panics if i is out of range, like a slice index.
func (p Point) At(i int) float64 { return p.coords[i] }

// Coords returns a copy of the coordinates.
func (p Point) Coords() []float64 {
	if !p.valid {
		return nil
	}
	out := make([]float64, len(p.coords))
	copy(out, p.coords)

	return out
}

// Equal reports whether p and q have identical coordinates.
// Two invalid points are equal to each other and to nothing else.
func (p Point) Equal(q Point) bool {
	if p.valid != q.valid {
		return false
	}
	if !p.valid {
		return true
	}

	return floats.Equal(p.coords, q.coords)
}

// Compare returns -1, 0 or +1 ordering p against q lexicographically.
func (p Point) Compare(q Point) int {
	switch {
	case p.valid && !q.valid:
		return -1
	case !p.valid && q.valid:
		return 1
	case !p.valid:
		return 0
	}
	n := min(len(p.coords), len(q.coords))
	var i int
	for i = 0; i < n; i++ {
		if p.coords[i] < q.coords[i] {
			return -1
		}
		if p.coords[i] > q.coords[i] {
			return 1
		}
	}
	switch {
	case len(p.coords) < len(q.coords):
		return -1
	case len(p.coords) > len(q.coords):
		return 1
	}

	return 0
}

// Less reports whether p sorts before q.
func (p Point) Less(q Point) bool { return p.Compare(q) < 0 }

// CompareOn compares p and q on dimension dim first and breaks exact ties
// with Compare. Both points must be valid and have more than dim coordinates.
func (p Point) CompareOn(q Point, dim int) int {
	a, b := p.coords[dim], q.coords[dim]
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}

	return p.Compare(q)
}

// SquaredDistanceTo returns the squared Euclidean distance between p and q.
// Points of different dimensionality are infinitely far apart.
func (p Point) SquaredDistanceTo(q Point) float64 {
	if !p.valid || !q.valid || len(p.coords) != len(q.coords) {
		return math.Inf(1)
	}
	var (
		sum float64
		d   float64
		i   int
	)
	for i = range p.coords {
		d = p.coords[i] - q.coords[i]
		sum += d * d
	}

	return sum
}

// DistanceTo returns the Euclidean distance between p and q.
func (p Point) DistanceTo(q Point) float64 {
	if !p.valid || !q.valid || len(p.coords) != len(q.coords) {
		return math.Inf(1)
	}

	return floats.Distance(p.coords, q.coords, 2)
}

// Key returns a string that is identical for Equal points and distinct
// otherwise. It is meant for map keys.
func (p Point) Key() string {
	if !p.valid {
		return "invalid"
	}
	var sb strings.Builder
	sb.Grow(len(p.coords) * 17)
	var i int
	for i = range p.coords {
		if i > 0 {
			sb.WriteByte(':')
		}
		sb.WriteString(strconv.FormatUint(math.Float64bits(p.coords[i]), 16))
	}

	return sb.String()
}

// String renders p as "(x, y, ...)", or "invalid".
func (p Point) String() string {
	if !p.valid {
		return "invalid"
	}
	var sb strings.Builder
	sb.WriteByte('(')
	var i int
	for i = range p.coords {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatFloat(p.coords[i], 'g', -1, 64))
	}
	sb.WriteByte(')')

	return sb.String()
}
