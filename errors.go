package convexhull

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the sentinel wrapped by every input-validation failure
// ConvexHull returns: too few points, or a point set with no non-coplanar
// 4-tuple anywhere in it.
var ErrInvalidInput = errors.New("convexhull: invalid input")

func errTooFewPoints(n int) error {
	return fmt.Errorf("convexhull: need at least 4 points, got %d: %w", n, ErrInvalidInput)
}

func errAllCoplanar() error {
	return fmt.Errorf("convexhull: all input points are coplanar: %w", ErrInvalidInput)
}
