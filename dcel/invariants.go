package dcel

import "fmt"

// CheckInvariants walks every live record and verifies H1-H5, F1 and V1. It
// returns the first violation found as an error, or nil if the mesh is
// consistent. Intended for tests and for assertion checks during
// development, not for the hot path of an insertion step.
func (m *Mesh) CheckInvariants() error {
	for f := FaceID(0); int(f) < len(m.faces); f++ {
		if m.IsFaceDeleted(f) {
			continue
		}
		e0 := m.faces[f].InnerEdge
		e1 := m.halfEdges[e0].Next
		e2 := m.halfEdges[e1].Next
		e3 := m.halfEdges[e2].Next
		if e3 != e0 {
			return fmt.Errorf("dcel: F1/H3 violated: face %d's edge cycle does not close after three steps", f)
		}
		for _, e := range []HalfEdgeID{e0, e1, e2} {
			if m.halfEdges[e].Face != f {
				return fmt.Errorf("dcel: H5 violated: half-edge %d does not reference its face %d", e, f)
			}
		}
	}

	for e := HalfEdgeID(0); int(e) < len(m.halfEdges); e++ {
		if m.IsHalfEdgeDeleted(e) {
			continue
		}
		he := m.halfEdges[e]

		twin := m.halfEdges[he.Twin]
		if twin.Twin != e {
			return fmt.Errorf("dcel: H1 violated: half-edge %d's twin does not point back", e)
		}
		if twin.From != he.To || twin.To != he.From {
			return fmt.Errorf("dcel: H1 violated: half-edge %d/%d endpoints do not mirror", e, he.Twin)
		}

		next := m.halfEdges[he.Next]
		if next.Prev != e {
			return fmt.Errorf("dcel: H2 violated: half-edge %d's next does not point back", e)
		}
		prev := m.halfEdges[he.Prev]
		if prev.Next != e {
			return fmt.Errorf("dcel: H2 violated: half-edge %d's prev does not point forward", e)
		}
		if next.From != he.To {
			return fmt.Errorf("dcel: H4 violated: half-edge %d's next does not start at its To", e)
		}
	}

	for v := VertexID(0); int(v) < len(m.vertices); v++ {
		if m.IsVertexDeleted(v) {
			continue
		}
		ve := m.vertices[v].IncidentEdge
		if ve == NoID {
			continue
		}
		if m.halfEdges[ve].From != v {
			return fmt.Errorf("dcel: V1 violated: vertex %d's incident edge does not originate at it", v)
		}
	}

	return nil
}
