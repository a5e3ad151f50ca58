package convexhull

import (
	"github.com/alemuntoni/ConvexHull3D/dcel"
	"github.com/alemuntoni/ConvexHull3D/geom"
)

// horizonStep is one edge of the horizon: the half-edge on the outer
// (non-visible) side, the vertex the corresponding inner edge starts from,
// and the visible face that inner edge belongs to. splice counts how many
// steps name each visibleFace to decide whether that face can be recycled
// instead of deleted and recreated.
type horizonStep struct {
	outerEdge   dcel.HalfEdgeID
	fromVertex  dcel.VertexID
	visibleFace dcel.FaceID
}

// horizon walks the boundary of the visible region for p and returns its
// edges in counterclockwise order as seen from p. visible must be the
// sorted list of faces p conflicts with, and must describe a topological
// disk on the hull (guaranteed by the conflict graph being in sync with
// the mesh).
func (d *driverState) horizon(p geom.Point, visible []dcel.FaceID) []horizonStep {
	sees := func(f dcel.FaceID) bool {
		v0, v1, v2 := d.mesh.FaceTriangleCoords(f)
		return geom.Sees(p, v0, v1, v2, d.tol)
	}

	first, ok := d.findStartingEdge(visible, sees)
	assertf(ok, "horizon: visible region has no boundary edge")

	steps := []horizonStep{d.emitStep(first)}

	e0 := d.mesh.HalfEdge(first).Next
	for e0 != first {
		e1 := d.mesh.HalfEdge(e0).Twin
		if !sees(d.mesh.HalfEdge(e1).Face) {
			steps = append(steps, d.emitStep(e0))
			e0 = d.mesh.HalfEdge(e0).Next
		} else {
			e0 = d.mesh.HalfEdge(e1).Next
		}
	}

	return steps
}

// findStartingEdge picks any face in visible and checks all three of its
// edges uniformly for one whose twin sits on a non-visible face. If all
// three are interior (every neighbor is also visible), it tries the next
// face in visible. Every visible region with at least one non-visible
// neighbor has such an edge; a visible set covering the whole mesh (every
// face visible, which cannot happen with a nondegenerate hull) would leave
// ok false.
func (d *driverState) findStartingEdge(visible []dcel.FaceID, sees func(dcel.FaceID) bool) (dcel.HalfEdgeID, bool) {
	for _, f := range visible {
		e := d.mesh.Face(f).InnerEdge
		for i := 0; i < 3; i++ {
			twin := d.mesh.HalfEdge(e).Twin
			if !sees(d.mesh.HalfEdge(twin).Face) {
				return e, true
			}
			e = d.mesh.HalfEdge(e).Next
		}
	}
	return 0, false
}

// emitStep builds the horizonStep for the inner (visible-side) edge e0.
func (d *driverState) emitStep(e0 dcel.HalfEdgeID) horizonStep {
	he := d.mesh.HalfEdge(e0)
	return horizonStep{
		outerEdge:   he.Twin,
		fromVertex:  he.From,
		visibleFace: he.Face,
	}
}
