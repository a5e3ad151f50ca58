package dcel

import (
	"github.com/alemuntoni/ConvexHull3D/geom"
)

// BuildSeedTetrahedron builds the four-vertex, four-face mesh the
// incremental algorithm starts from. p0..p3 must not be coplanar; tol is
// the epsilon geom.Orient uses to detect that degenerate case.
//
// The construction fixes the mesh's global outward-normal orientation: the
// four triangles are wired so that geom.Sees(x, face) is true exactly when
// x lies outside that face, for every face created afterwards as well.
func BuildSeedTetrahedron(p0, p1, p2, p3 geom.Point, tol float64) (*Mesh, [4]FaceID, error) {
	s := geom.Orient(p0, p1, p2, p3, tol)
	if s == geom.Zero {
		return nil, [4]FaceID{}, errCoplanarSeed
	}
	if s == geom.Positive {
		p0, p1 = p1, p0
	}

	m := NewMesh()
	v0 := m.AddVertex(p0)
	v1 := m.AddVertex(p1)
	v2 := m.AddVertex(p2)
	v3 := m.AddVertex(p3)

	// Four outward-oriented triangles of the tetrahedron, one opposite each
	// vertex, built from the now-negative orient(p0,p1,p2,p3): (p0,p1,p2)
	// opposite p3, (p0,p2,p3) opposite p1, (p0,p3,p1) opposite p2,
	// (p1,p3,p2) opposite p0.
	faces := [4][3]VertexID{
		{v0, v1, v2},
		{v0, v2, v3},
		{v0, v3, v1},
		{v1, v3, v2},
	}

	var faceIDs [4]FaceID
	var edgeIDs [4][3]HalfEdgeID

	for i, tri := range faces {
		e0 := m.AddHalfEdge()
		e1 := m.AddHalfEdge()
		e2 := m.AddHalfEdge()
		m.SetHalfEdgeFrom(e0, tri[0])
		m.SetHalfEdgeTo(e0, tri[1])
		m.SetHalfEdgeFrom(e1, tri[1])
		m.SetHalfEdgeTo(e1, tri[2])
		m.SetHalfEdgeFrom(e2, tri[2])
		m.SetHalfEdgeTo(e2, tri[0])
		m.LinkNextPrev(e0, e1)
		m.LinkNextPrev(e1, e2)
		m.LinkNextPrev(e2, e0)

		f := m.AddFace(e0)
		m.SetHalfEdgeFace(e0, f)
		m.SetHalfEdgeFace(e1, f)
		m.SetHalfEdgeFace(e2, f)

		faceIDs[i] = f
		edgeIDs[i] = [3]HalfEdgeID{e0, e1, e2}
	}

	// Pair twins across shared undirected edges. The four triangles above
	// are built so each geometric edge appears exactly once in each
	// direction across the whole tetrahedron; findHalfEdge finds the matching
	// reverse edge by a direct scan since there are only twelve half-edges.
	for i, tri := range faces {
		for k := 0; k < 3; k++ {
			from, to := tri[k], tri[(k+1)%3]
			e := edgeIDs[i][k]
			if m.halfEdges[e].Twin != NoID {
				continue
			}
			twin := m.findHalfEdge(to, from)
			m.LinkTwins(e, twin)
		}
	}

	m.SetVertexIncidentEdge(v0, edgeIDs[0][0])
	m.SetVertexIncidentEdge(v1, edgeIDs[0][1])
	m.SetVertexIncidentEdge(v2, edgeIDs[0][2])
	m.SetVertexIncidentEdge(v3, edgeIDs[1][2])

	return m, faceIDs, nil
}

// findHalfEdge scans for the half-edge running from->to. Only used during
// seed construction, where the mesh has a fixed twelve half-edges.
func (m *Mesh) findHalfEdge(from, to VertexID) HalfEdgeID {
	for i, e := range m.halfEdges {
		if e.From == from && e.To == to {
			return HalfEdgeID(i)
		}
	}
	return NoID
}
