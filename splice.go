package convexhull

import (
	"github.com/alemuntoni/ConvexHull3D/conflictgraph"
	"github.com/alemuntoni/ConvexHull3D/dcel"
	"github.com/alemuntoni/ConvexHull3D/geom"
	"github.com/alemuntoni/ConvexHull3D/internal/idset"
)

// insertPoint runs one full insertion step once the top point's conflict
// list (visible) is known to be non-empty: extract the horizon, precompute
// which pending points might see each replacement triangle, retire the
// visible region, then stitch new faces onto the horizon and rescore.
func (d *driverState) insertPoint(p geom.Point, visible []dcel.FaceID) {
	steps := d.horizon(p, visible)

	// occurrences counts how many horizon steps reference each face as
	// their visible face. A face referenced by exactly one step has its
	// other two edges genuinely interior, so it can be edited in place
	// (recycled) rather than deleted and rebuilt: see spliceNewFaces for
	// why a count of two-or-more forces outright deletion instead (a count
	// of zero means the face borders no horizon edge at all).
	occurrences := make(map[dcel.FaceID]int, len(steps))
	for _, s := range steps {
		occurrences[s.visibleFace]++
	}

	horizonVertices := make([]int, 0, len(steps))
	for _, s := range steps {
		horizonVertices, _ = idset.Insert(horizonVertices, int(s.fromVertex))
	}

	// pending[i] is who might see the triangle that will replace horizon
	// step i, computed on the mesh before anything is deleted or edited.
	pending := make([][]conflictgraph.PointID, len(steps))
	for i, s := range steps {
		outerFace := d.mesh.HalfEdge(s.outerEdge).Face
		pending[i] = d.cg.VisiblePointsUnion(outerFace, s.visibleFace)
	}

	// A vertex is orphaned by this insertion, and must be deleted, when
	// every face around it lies in the visible region: recycling replaces
	// its reference with the new apex on every recycled face that touched
	// it, and deletion drops every reference on every deleted face, so
	// nothing is left pointing at it either way. This must be decided
	// before any face is mutated, since it depends on each candidate
	// vertex's full, pre-splice face star.
	condemned := d.condemnedVertices(visible, horizonVertices)

	d.deleteVisibleFaces(visible, occurrences)
	for _, v := range condemned {
		d.deletedVertices, _ = idset.Insert(d.deletedVertices, v)
		d.mesh.MarkVertexDeleted(dcel.VertexID(v))
	}

	d.cg.RemoveNextPoint()
	d.spliceNewFaces(p, steps, occurrences, pending)
}

// condemnedVertices returns, as plain ints, every vertex touched by a
// visible face that is not on the horizon and has no incident face outside
// the visible set.
func (d *driverState) condemnedVertices(visible []dcel.FaceID, horizonVertices []int) []int {
	visibleIDs := make([]int, len(visible))
	for i, f := range visible {
		visibleIDs[i] = int(f)
	}

	var candidates []int
	for _, f := range visible {
		v0, v1, v2 := d.mesh.FaceTriangleVertices(f)
		for _, v := range [3]dcel.VertexID{v0, v1, v2} {
			candidates, _ = idset.Insert(candidates, int(v))
		}
	}

	var condemned []int
	for _, vi := range candidates {
		if idset.Contains(horizonVertices, vi) {
			continue
		}
		orphaned := true
		for _, f := range d.mesh.VertexFaces(dcel.VertexID(vi)) {
			if !idset.Contains(visibleIDs, int(f)) {
				orphaned = false
				break
			}
		}
		if orphaned {
			condemned, _ = idset.Insert(condemned, vi)
		}
	}
	return condemned
}

// deleteVisibleFaces retires every face the inserted point conflicted
// with. A face referenced exactly once in the horizon is a recycle
// candidate and is left in the mesh, with only its own conflict edge to
// the top point dropped. Every other visible face is fully deleted: its
// three half-edges and itself are added to the driver's deletion sets.
func (d *driverState) deleteVisibleFaces(visible []dcel.FaceID, occurrences map[dcel.FaceID]int) {
	for _, f := range visible {
		if occurrences[f] == 1 {
			d.cg.RemoveConflictNextPoint(f)
			continue
		}

		e0 := d.mesh.Face(f).InnerEdge
		e1 := d.mesh.HalfEdge(e0).Next
		e2 := d.mesh.HalfEdge(e1).Next

		for _, e := range [3]dcel.HalfEdgeID{e0, e1, e2} {
			d.deletedHalfEdges, _ = idset.Insert(d.deletedHalfEdges, int(e))
			d.mesh.MarkHalfEdgeDeleted(e)
		}
		d.deletedFaces, _ = idset.Insert(d.deletedFaces, int(f))
		d.mesh.MarkFaceDeleted(f)
		d.observer.OnEvent(FaceRemoved, EventData{Face: int(f)})
	}
}

// spliceNewFaces adds p as a vertex and, for each horizon step in order,
// produces the triangle u -> w -> p bordering it: a brand-new face when the
// step's old visible face has more than one horizon edge (editing it in
// place would clobber a neighboring step's protected endpoint) or when it
// has none surviving to reuse, and an in-place edit of that face
// otherwise. Consecutive steps are stitched together as they're built, and
// the ring is closed once all steps are done. Each new or recycled face is
// then rescored against the points recorded for it in pending.
func (d *driverState) spliceNewFaces(p geom.Point, steps []horizonStep, occurrences map[dcel.FaceID]int, pending [][]conflictgraph.PointID) {
	apex := d.mesh.AddVertex(p)

	n := len(steps)
	faces := make([]dcel.FaceID, n)
	// e2[i] is the w_i -> apex edge of step i's triangle and e3[i] is its
	// apex -> u_i edge; e3[i] always twins e2[i-1] (wrapping at i == 0),
	// since consecutive horizon steps share the vertex one calls w and the
	// next calls u.
	e2s := make([]dcel.HalfEdgeID, n)
	e3s := make([]dcel.HalfEdgeID, n)

	for i, s := range steps {
		w := d.mesh.HalfEdge(s.outerEdge).From
		u := s.fromVertex

		var f dcel.FaceID
		var e1, e2, e3 dcel.HalfEdgeID

		if occurrences[s.visibleFace] == 1 {
			// The old visible face for this step has exactly one
			// horizon edge in the region, so its other two edges are
			// genuinely interior: reuse the face, swapping its far
			// vertex for apex.
			f = s.visibleFace
			e1 = d.mesh.HalfEdge(s.outerEdge).Twin
			e2 = d.mesh.HalfEdge(e1).Next
			e3 = d.mesh.HalfEdge(e1).Prev
			d.mesh.SetHalfEdgeTo(e2, apex)
			d.mesh.SetHalfEdgeFrom(e3, apex)
			d.cg.ResetFaceConflictList(f)
			d.observer.OnEvent(FaceRecycled, EventData{Face: int(f)})
		} else {
			e1 = d.mesh.AddHalfEdge()
			e2 = d.mesh.AddHalfEdge()
			e3 = d.mesh.AddHalfEdge()
			f = d.mesh.AddFace(e1)
			d.mesh.SetHalfEdgeFrom(e1, u)
			d.mesh.SetHalfEdgeTo(e1, w)
			d.mesh.SetHalfEdgeFrom(e2, w)
			d.mesh.SetHalfEdgeTo(e2, apex)
			d.mesh.SetHalfEdgeFrom(e3, apex)
			d.mesh.SetHalfEdgeTo(e3, u)
			d.mesh.LinkNextPrev(e1, e2)
			d.mesh.LinkNextPrev(e2, e3)
			d.mesh.LinkNextPrev(e3, e1)
			d.mesh.SetHalfEdgeFace(e1, f)
			d.mesh.SetHalfEdgeFace(e2, f)
			d.mesh.SetHalfEdgeFace(e3, f)
			d.mesh.LinkTwins(e1, s.outerEdge)
			d.cg.AddFace(f)
			d.observer.OnEvent(FaceCreated, EventData{Face: int(f)})
		}

		faces[i] = f
		e2s[i] = e2
		e3s[i] = e3

		if i > 0 {
			d.mesh.LinkTwins(e3, e2s[i-1])
		}

		d.mesh.SetVertexIncidentEdge(u, e1)
		d.mesh.SetVertexIncidentEdge(w, e2)
	}

	d.mesh.LinkTwins(e3s[0], e2s[n-1])
	d.mesh.SetVertexIncidentEdge(apex, e3s[0])

	for i, f := range faces {
		v0, v1, v2 := d.mesh.FaceTriangleCoords(f)
		for _, q := range pending[i] {
			if geom.Sees(d.cg.PointCoord(q), v0, v1, v2, d.tol) {
				d.cg.AddConflict(q, f)
			}
		}
	}
}
