// Package conflictgraph maintains the bipartite visibility relation between
// not-yet-inserted points and the faces of the current hull: a conflict
// edge exists exactly when a pending point lies outside a face. Keeping
// this relation current as the hull grows is what lets each insertion step
// run in time proportional to the affected region instead of to the whole
// mesh.
package conflictgraph

import (
	"github.com/alemuntoni/ConvexHull3D/dcel"
	"github.com/alemuntoni/ConvexHull3D/geom"
	"github.com/alemuntoni/ConvexHull3D/internal/idset"
)

// PointID indexes a PointNode. Points are consumed top-down as a stack;
// PointID 0 is the bottom of the stack, the highest live id is the top.
type PointID int

// PointNode is a pending point together with the sorted list of faces it
// currently conflicts with.
type PointNode struct {
	Coord    geom.Point
	Faces    []int // sorted dcel.FaceID values, as plain ints for idset
	consumed bool
}

// FaceNode mirrors a dcel.Face: FaceNode index i corresponds to
// dcel.FaceID(i), so the two structures never need a separate id
// translation table.
type FaceNode struct {
	Points  []int // sorted PointID values, as plain ints for idset
	removed bool
}

// Graph holds every PointNode and FaceNode created during a run.
type Graph struct {
	points []PointNode
	faces  []FaceNode
	top    int // index of the highest non-consumed point, -1 when empty
}

// NewGraph returns an empty conflict graph.
func NewGraph() *Graph {
	return &Graph{top: -1}
}

// AddPoint appends a point at the top of the stack and returns its id.
func (g *Graph) AddPoint(coord geom.Point) PointID {
	g.points = append(g.points, PointNode{Coord: coord})
	g.top = len(g.points) - 1
	return PointID(g.top)
}

// AddFace appends a face node. By construction its index equals the
// dcel.FaceID it mirrors, so the caller must call AddFace exactly once per
// dcel.Mesh.AddFace, in the same order.
func (g *Graph) AddFace(f dcel.FaceID) {
	for len(g.faces) <= int(f) {
		g.faces = append(g.faces, FaceNode{})
	}
}

// AddConflict records that point p sees face f, inserting into both sorted
// adjacency lists (C1, C2).
func (g *Graph) AddConflict(p PointID, f dcel.FaceID) {
	g.points[p].Faces, _ = idset.Insert(g.points[p].Faces, int(f))
	g.faces[f].Points, _ = idset.Insert(g.faces[f].Points, int(p))
}

// PointCoord returns the coordinate of point p, for rescoring it against a
// newly built or recycled face.
func (g *Graph) PointCoord(p PointID) geom.Point {
	return g.points[p].Coord
}

// NextPoint peeks at the top of the stack without consuming it.
func (g *Graph) NextPoint() (PointID, geom.Point, bool) {
	if g.top < 0 {
		return 0, geom.Point{}, false
	}
	return PointID(g.top), g.points[g.top].Coord, true
}

// NextConflictFaces returns the sorted conflict-face list of the top point.
func (g *Graph) NextConflictFaces() []dcel.FaceID {
	if g.top < 0 {
		return nil
	}
	return toFaceIDs(g.points[g.top].Faces)
}

// NextPointHasNoConflicts reports whether the top point's conflict list is
// empty, meaning it lies inside every current face and is an interior
// point to be discarded rather than inserted.
func (g *Graph) NextPointHasNoConflicts() bool {
	return g.top >= 0 && len(g.points[g.top].Faces) == 0
}

// VisiblePointsUnion merges the conflict-point lists of f1 and f2,
// deduplicated, with the current top point stripped out (it is about to be
// consumed, so it must not be rescored against the faces replacing f1/f2).
func (g *Graph) VisiblePointsUnion(f1, f2 dcel.FaceID) []PointID {
	merged := idset.Merge(g.faces[f1].Points, g.faces[f2].Points)
	if g.top >= 0 {
		merged, _ = idset.Remove(merged, g.top)
	}
	return toPointIDs(merged)
}

// RemoveNextPoint pops the top point and, for every face still in its
// conflict list, removes that face entirely: every other pending point's
// edge to it is dropped too, and the face node is retired. By the time
// this is called, any face the caller intends to keep alive (a recycled
// face) must already have had its edge to the top point stripped via
// RemoveConflictNextPoint, so it no longer appears in the top point's list
// and survives untouched here.
func (g *Graph) RemoveNextPoint() {
	if g.top < 0 {
		return
	}
	top := g.top
	for _, f := range g.points[top].Faces {
		for _, other := range g.faces[f].Points {
			if other == top {
				continue
			}
			g.points[other].Faces, _ = idset.Remove(g.points[other].Faces, f)
		}
		g.faces[f].Points = nil
		g.faces[f].removed = true
	}
	g.points[top].Faces = nil
	g.points[top].consumed = true
	g.advanceTop()
}

// DeleteNextPoint discards the top point outright, for the case where its
// conflict list is already empty (an interior point that sees no face).
// Unlike RemoveNextPoint there are no back-edges to clean up.
func (g *Graph) DeleteNextPoint() {
	if g.top < 0 {
		return
	}
	g.points[g.top].consumed = true
	g.advanceTop()
}

// RemoveConflictNextPoint drops the single edge between the current top
// point and face f on both sides (C1 symmetry), without touching any other
// face or point. Used when f is recycled during a splice instead of
// deleted outright: the about-to-be-consumed point loses its edge to f
// before RemoveNextPoint runs, so f is left off the deletion list and its
// other conflicts survive untouched.
func (g *Graph) RemoveConflictNextPoint(f dcel.FaceID) {
	if g.top < 0 {
		return
	}
	g.faces[f].Points, _ = idset.Remove(g.faces[f].Points, g.top)
	g.points[g.top].Faces, _ = idset.Remove(g.points[g.top].Faces, int(f))
}

// ResetFaceConflictList drops every edge incident to f while keeping the
// face node itself alive, for the case where f survives as a recycled
// face and will be rescored from scratch against the P-array.
func (g *Graph) ResetFaceConflictList(f dcel.FaceID) {
	for _, p := range g.faces[f].Points {
		g.points[p].Faces, _ = idset.Remove(g.points[p].Faces, int(f))
	}
	g.faces[f].Points = nil
}

// IsEmpty reports whether every point has been consumed or discarded.
func (g *Graph) IsEmpty() bool {
	return g.top < 0
}

// advanceTop moves top down past any already-consumed points, so the stack
// behaves as pop-from-end even though consumed slots stay allocated.
func (g *Graph) advanceTop() {
	for g.top >= 0 && g.points[g.top].consumed {
		g.top--
	}
}

func toFaceIDs(ids []int) []dcel.FaceID {
	out := make([]dcel.FaceID, len(ids))
	for i, v := range ids {
		out[i] = dcel.FaceID(v)
	}
	return out
}

func toPointIDs(ids []int) []PointID {
	out := make([]PointID, len(ids))
	for i, v := range ids {
		out[i] = PointID(v)
	}
	return out
}
