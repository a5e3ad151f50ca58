// Package dcel implements the doubly-connected edge list mesh the convex
// hull is built on: vertices, half-edges and triangular faces held in dense,
// index-addressable slices, with no owning references between records.
//
// Ids are stable for the whole run: deleting a record marks it rather than
// renumbering its neighbors (see Mesh.Compact). This keeps the face-id
// numbering the conflict graph relies on stable across an insertion step,
// at the cost of the caller tracking which ids are still live.
package dcel

import "github.com/go-gl/mathgl/mgl64"

// VertexID, HalfEdgeID and FaceID are dense, zero-based indices into a
// Mesh's parallel slices. The zero value is a valid id (index 0); NoID
// marks the absence of a reference.
type (
	VertexID   int
	HalfEdgeID int
	FaceID     int
)

// NoID marks an unset id field (a vertex with no incident edge yet, for
// instance, during incremental construction).
const NoID = -1

// Vertex is a point together with one half-edge that originates at it.
// Invariant V1: if IncidentEdge is set, that half-edge's From is this
// vertex's id.
type Vertex struct {
	Coord        mgl64.Vec3
	IncidentEdge HalfEdgeID
	deleted      bool
}

// HalfEdge is one directed side of a mesh edge.
//
// Invariants maintained across every mutation:
//   - H1: Twin.Twin == self, Twin.From == To, Twin.To == From.
//   - H2: Next.Prev == self, Prev.Next == self.
//   - H3: following Next three times from any half-edge of a face returns
//     to the start (every face is a triangle).
//   - H4: Next.From == To.
//   - H5: Face is the same across self, Next, Next.Next.
type HalfEdge struct {
	From, To VertexID
	Twin     HalfEdgeID
	Next     HalfEdgeID
	Prev     HalfEdgeID
	Face     FaceID
	deleted  bool
}

// Face is a triangle, identified by one of its three boundary half-edges.
// Invariant F1: walking Next from InnerEdge visits exactly three half-edges,
// all three referencing this face.
type Face struct {
	InnerEdge HalfEdgeID
	deleted   bool
}

// Mesh owns all vertex, half-edge and face records for one hull
// construction run, addressed by dense ids.
type Mesh struct {
	vertices  []Vertex
	halfEdges []HalfEdge
	faces     []Face
}

// NewMesh returns an empty mesh.
func NewMesh() *Mesh {
	return &Mesh{}
}

// AddVertex appends a new vertex with no incident edge yet and returns its
// id.
func (m *Mesh) AddVertex(coord mgl64.Vec3) VertexID {
	m.vertices = append(m.vertices, Vertex{Coord: coord, IncidentEdge: NoID})
	return VertexID(len(m.vertices) - 1)
}

// AddHalfEdge appends a new half-edge with Twin/Next/Prev/Face unset (NoID)
// and From/To left at 0, and returns its id. Callers wire
// From/To/Twin/Next/Prev/Face with the setters
// below once the surrounding topology is known.
func (m *Mesh) AddHalfEdge() HalfEdgeID {
	m.halfEdges = append(m.halfEdges, HalfEdge{Twin: NoID, Next: NoID, Prev: NoID, Face: NoID})
	return HalfEdgeID(len(m.halfEdges) - 1)
}

// AddFace appends a new face referencing innerEdge and returns its id.
func (m *Mesh) AddFace(innerEdge HalfEdgeID) FaceID {
	m.faces = append(m.faces, Face{InnerEdge: innerEdge})
	return FaceID(len(m.faces) - 1)
}

// VertexCount, HalfEdgeCount and FaceCount report the number of record
// slots, live or logically deleted, currently allocated. Used by tests and
// callers to bound iteration; callers that must skip deleted
// records should check IsVertexDeleted/IsHalfEdgeDeleted/IsFaceDeleted.
func (m *Mesh) VertexCount() int   { return len(m.vertices) }
func (m *Mesh) HalfEdgeCount() int { return len(m.halfEdges) }
func (m *Mesh) FaceCount() int     { return len(m.faces) }

// Vertex returns the vertex record for id.
func (m *Mesh) Vertex(id VertexID) Vertex { return m.vertices[id] }

// HalfEdge returns the half-edge record for id.
func (m *Mesh) HalfEdge(id HalfEdgeID) HalfEdge { return m.halfEdges[id] }

// Face returns the face record for id.
func (m *Mesh) Face(id FaceID) Face { return m.faces[id] }

// SetVertexIncidentEdge sets v's incident edge, restoring V1 once e
// originates at v.
func (m *Mesh) SetVertexIncidentEdge(v VertexID, e HalfEdgeID) {
	m.vertices[v].IncidentEdge = e
}

// SetHalfEdgeFrom, SetHalfEdgeTo, SetHalfEdgeTwin, SetHalfEdgeNext,
// SetHalfEdgePrev and SetHalfEdgeFace set the corresponding field of
// half-edge e. Each mutates only e; callers are responsible for also
// updating e's neighbor so the paired invariant (H1, H2) holds once both
// sides of a wiring step are done.
func (m *Mesh) SetHalfEdgeFrom(e HalfEdgeID, v VertexID) { m.halfEdges[e].From = v }
func (m *Mesh) SetHalfEdgeTo(e HalfEdgeID, v VertexID)   { m.halfEdges[e].To = v }
func (m *Mesh) SetHalfEdgeTwin(e HalfEdgeID, twin HalfEdgeID) {
	m.halfEdges[e].Twin = twin
}
func (m *Mesh) SetHalfEdgeNext(e HalfEdgeID, next HalfEdgeID) { m.halfEdges[e].Next = next }
func (m *Mesh) SetHalfEdgePrev(e HalfEdgeID, prev HalfEdgeID) { m.halfEdges[e].Prev = prev }
func (m *Mesh) SetHalfEdgeFace(e HalfEdgeID, f FaceID)        { m.halfEdges[e].Face = f }

// SetFaceInnerEdge sets f's inner edge.
func (m *Mesh) SetFaceInnerEdge(f FaceID, e HalfEdgeID) {
	m.faces[f].InnerEdge = e
}

// LinkTwins pairs a and b as twins of each other (H1).
func (m *Mesh) LinkTwins(a, b HalfEdgeID) {
	m.halfEdges[a].Twin = b
	m.halfEdges[b].Twin = a
}

// LinkNextPrev chains a.Next = b and b.Prev = a (H2).
func (m *Mesh) LinkNextPrev(a, b HalfEdgeID) {
	m.halfEdges[a].Next = b
	m.halfEdges[b].Prev = a
}

// FaceTriangleVertices returns f's three vertices in the canonical order
// InnerEdge.From, InnerEdge.Next.From, InnerEdge.Next.Next.From.
func (m *Mesh) FaceTriangleVertices(f FaceID) (VertexID, VertexID, VertexID) {
	e0 := m.faces[f].InnerEdge
	e1 := m.halfEdges[e0].Next
	e2 := m.halfEdges[e1].Next
	return m.halfEdges[e0].From, m.halfEdges[e1].From, m.halfEdges[e2].From
}

// FaceTriangleCoords returns the coordinates of f's three vertices in the
// same canonical order as FaceTriangleVertices.
func (m *Mesh) FaceTriangleCoords(f FaceID) (mgl64.Vec3, mgl64.Vec3, mgl64.Vec3) {
	v0, v1, v2 := m.FaceTriangleVertices(f)
	return m.vertices[v0].Coord, m.vertices[v1].Coord, m.vertices[v2].Coord
}

// VertexFaces returns every face incident to v, found by rotating around v
// through successive outgoing half-edges (twin(prev(e))). Used to decide
// whether a vertex has any remaining incident face outside a set about to
// be spliced away.
func (m *Mesh) VertexFaces(v VertexID) []FaceID {
	start := m.vertices[v].IncidentEdge
	if start == NoID {
		return nil
	}
	var faces []FaceID
	e := start
	for {
		faces = append(faces, m.halfEdges[e].Face)
		e = m.halfEdges[m.halfEdges[e].Prev].Twin
		if e == start {
			break
		}
	}
	return faces
}

// MarkVertexDeleted, MarkHalfEdgeDeleted and MarkFaceDeleted flag a record
// as logically removed without renumbering anything. The driver is
// responsible for also recording the id in its sorted deletion sets so a
// later Compact call can renumber cross-references consistently.
func (m *Mesh) MarkVertexDeleted(v VertexID)     { m.vertices[v].deleted = true }
func (m *Mesh) MarkHalfEdgeDeleted(e HalfEdgeID) { m.halfEdges[e].deleted = true }
func (m *Mesh) MarkFaceDeleted(f FaceID)         { m.faces[f].deleted = true }

// IsVertexDeleted, IsHalfEdgeDeleted and IsFaceDeleted report whether a
// record has been marked deleted.
func (m *Mesh) IsVertexDeleted(v VertexID) bool     { return m.vertices[v].deleted }
func (m *Mesh) IsHalfEdgeDeleted(e HalfEdgeID) bool { return m.halfEdges[e].deleted }
func (m *Mesh) IsFaceDeleted(f FaceID) bool         { return m.faces[f].deleted }
