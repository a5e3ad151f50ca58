package geom

// Sign is a three-valued orientation result.
type Sign int8

const (
	Negative Sign = -1
	Zero     Sign = 0
	Positive Sign = 1
)

func (s Sign) String() string {
	switch s {
	case Negative:
		return "negative"
	case Positive:
		return "positive"
	default:
		return "zero"
	}
}

// Orient returns the sign of the scalar triple product
// cross(b-a, c-a) . (d-a): the 3D orientation/coplanarity test.
// cross(b-a, c-a) is the (unnormalized) normal of the plane through a, b,
// c, and its dot product with d-a measures how far d sits off that plane:
// Positive when d lies on the side the normal points to. The triple product
// is the determinant of the matrix whose rows are (a,1), (b,1), (c,1),
// (d,1) with its sign flipped, so Orient reports the opposite sign of that
// determinant.
//
// The result is tolerant of floating-point noise: magnitudes smaller than
// tol are reported as Zero. Callers should derive tol from the bounding box
// of the full point set (see BoundingBox.Tolerance) rather than hardcoding
// an absolute epsilon, since the determinant's magnitude scales with the
// cube of the input coordinates.
func Orient(a, b, c, d Point, tol float64) Sign {
	ab := b.Sub(a)
	ac := c.Sub(a)
	ad := d.Sub(a)
	det := ab.Cross(ac).Dot(ad)

	if det > tol {
		return Positive
	}
	if det < -tol {
		return Negative
	}
	return Zero
}

// Sees reports whether p lies strictly on the outward side of the triangle
// (v1, v2, v3), i.e. Orient(v1, v2, v3, p) is Positive under the seed
// tetrahedron's orientation convention.
func Sees(p, v1, v2, v3 Point, tol float64) bool {
	return Orient(v1, v2, v3, p, tol) == Positive
}
