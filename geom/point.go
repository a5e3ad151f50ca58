// Package geom provides the geometric primitives the convex hull core is
// built on: points, the orientation/visibility predicates, a bounding box
// for scaling predicate tolerances, and a seedable point permutation.
package geom

import "github.com/go-gl/mathgl/mgl64"

// Point is a location in 3-space. Identity is positional: two points with
// equal coordinates are the same point as far as the hull is concerned.
type Point = mgl64.Vec3

// NewPoint builds a Point from its three coordinates.
func NewPoint(x, y, z float64) Point {
	return Point{x, y, z}
}
