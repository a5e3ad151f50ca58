package geom

import "math"

// BoundingBox is an axis-aligned bounding box over a point set, used to
// derive a length scale for the orientation predicate's epsilon.
type BoundingBox struct {
	Min, Max Point
}

// ComputeBoundingBox returns the bounding box of points. Panics if points is
// empty; callers validate non-emptiness before reaching here.
func ComputeBoundingBox(points []Point) BoundingBox {
	box := BoundingBox{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		for axis := 0; axis < 3; axis++ {
			if p[axis] < box.Min[axis] {
				box.Min[axis] = p[axis]
			}
			if p[axis] > box.Max[axis] {
				box.Max[axis] = p[axis]
			}
		}
	}
	return box
}

// Diagonal returns the Euclidean length of the box's main diagonal.
func (b BoundingBox) Diagonal() float64 {
	d := b.Max.Sub(b.Min)
	return math.Sqrt(d.Dot(d))
}

// relativeEpsilonFactor scales a bounding box diagonal into an absolute
// tolerance for the orientation predicate. 1e-12 keeps the predicate tight
// enough to resolve genuinely distinct points while absorbing the rounding
// noise a 4x4-determinant-via-cross-product accumulates at double precision.
const relativeEpsilonFactor = 1e-12

// Tolerance returns the absolute epsilon Orient/Sees should use for points
// drawn from this box: a small fraction of the box's own scale, so the same
// relative precision holds whether the point set sits near the origin or far
// from it.
func (b BoundingBox) Tolerance() float64 {
	diag := b.Diagonal()
	if diag == 0 {
		return relativeEpsilonFactor
	}
	return diag * diag * diag * relativeEpsilonFactor
}

// Contains reports whether p lies within the box (inclusive).
func (b BoundingBox) Contains(p Point) bool {
	for axis := 0; axis < 3; axis++ {
		if p[axis] < b.Min[axis] || p[axis] > b.Max[axis] {
			return false
		}
	}
	return true
}
