package dcel

import "github.com/alemuntoni/ConvexHull3D/internal/idset"

// Compact produces a fresh mesh containing only the records not named in
// deletedVertices/deletedHalfEdges/deletedFaces (each sorted ascending,
// deduplicated), with every id renumbered by idset.Remap and every
// cross-reference rewritten to match. It never mutates m.
//
// This is the only place ids change across the whole run: every other
// mutation leaves existing ids stable so deletions can be recorded in the
// three sorted sets and applied once, instead of cascading a fixup through
// the mesh (and the conflict graph, which mirrors face ids) on every step.
func (m *Mesh) Compact(deletedVertices, deletedHalfEdges, deletedFaces []int) *Mesh {
	out := &Mesh{
		vertices:  make([]Vertex, 0, len(m.vertices)-len(deletedVertices)),
		halfEdges: make([]HalfEdge, 0, len(m.halfEdges)-len(deletedHalfEdges)),
		faces:     make([]Face, 0, len(m.faces)-len(deletedFaces)),
	}

	for i, v := range m.vertices {
		if idset.Contains(deletedVertices, i) {
			continue
		}
		nv := v
		if nv.IncidentEdge != NoID {
			nv.IncidentEdge = HalfEdgeID(idset.RemapOne(int(nv.IncidentEdge), deletedHalfEdges))
		}
		out.vertices = append(out.vertices, nv)
	}

	for i, e := range m.halfEdges {
		if idset.Contains(deletedHalfEdges, i) {
			continue
		}
		ne := e
		ne.From = VertexID(idset.RemapOne(int(e.From), deletedVertices))
		ne.To = VertexID(idset.RemapOne(int(e.To), deletedVertices))
		ne.Twin = HalfEdgeID(idset.RemapOne(int(e.Twin), deletedHalfEdges))
		ne.Next = HalfEdgeID(idset.RemapOne(int(e.Next), deletedHalfEdges))
		ne.Prev = HalfEdgeID(idset.RemapOne(int(e.Prev), deletedHalfEdges))
		ne.Face = FaceID(idset.RemapOne(int(e.Face), deletedFaces))
		out.halfEdges = append(out.halfEdges, ne)
	}

	for i, f := range m.faces {
		if idset.Contains(deletedFaces, i) {
			continue
		}
		nf := f
		nf.InnerEdge = HalfEdgeID(idset.RemapOne(int(nf.InnerEdge), deletedHalfEdges))
		out.faces = append(out.faces, nf)
	}

	return out
}
