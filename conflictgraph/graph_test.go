package conflictgraph

import (
	"reflect"
	"testing"

	"github.com/alemuntoni/ConvexHull3D/dcel"
	"github.com/alemuntoni/ConvexHull3D/geom"
)

func TestAddConflictSymmetry(t *testing.T) {
	g := NewGraph()
	p0 := g.AddPoint(geom.NewPoint(0, 0, 0))
	p1 := g.AddPoint(geom.NewPoint(1, 1, 1))
	g.AddFace(0)
	g.AddFace(1)

	g.AddConflict(p0, 0)
	g.AddConflict(p1, 0)
	g.AddConflict(p0, 1)

	if got, want := g.faces[0].Points, []int{int(p0), int(p1)}; !reflect.DeepEqual(got, want) {
		t.Errorf("face 0 conflict points = %v, want %v", got, want)
	}
	if got, want := g.points[p0].Faces, []int{0, 1}; !reflect.DeepEqual(got, want) {
		t.Errorf("point 0 conflict faces = %v, want %v", got, want)
	}
}

func TestNextPointStack(t *testing.T) {
	g := NewGraph()
	g.AddPoint(geom.NewPoint(0, 0, 0))
	p1 := g.AddPoint(geom.NewPoint(1, 1, 1))

	id, coord, ok := g.NextPoint()
	if !ok || id != p1 || coord != geom.NewPoint(1, 1, 1) {
		t.Fatalf("NextPoint() = (%v, %v, %v), want (%v, (1,1,1), true)", id, coord, ok, p1)
	}
}

func TestRemoveNextPointRetiresFaceEntirely(t *testing.T) {
	g := NewGraph()
	p0 := g.AddPoint(geom.NewPoint(0, 0, 0))
	p1 := g.AddPoint(geom.NewPoint(1, 1, 1))
	g.AddFace(0)

	g.AddConflict(p0, 0)
	g.AddConflict(p1, 0)

	g.RemoveNextPoint() // consumes p1, and with it face 0 (deleted, not recycled)

	if got := g.faces[0].Points; len(got) != 0 {
		t.Errorf("face 0 conflict points after RemoveNextPoint = %v, want empty (face deleted)", got)
	}
	if got := g.points[p0].Faces; len(got) != 0 {
		t.Errorf("point 0's conflict faces after RemoveNextPoint = %v, want empty (its only face was deleted)", got)
	}
	if !g.faces[0].removed {
		t.Errorf("face 0.removed = false, want true")
	}
	if _, _, ok := g.NextPoint(); !ok {
		t.Fatalf("NextPoint() ok = false after removing top, want p0 still pending")
	}
}

func TestRemoveConflictNextPointDropsOnlyTopEdge(t *testing.T) {
	g := NewGraph()
	p0 := g.AddPoint(geom.NewPoint(0, 0, 0))
	p1 := g.AddPoint(geom.NewPoint(1, 1, 1)) // top
	g.AddFace(0)

	g.AddConflict(p0, 0)
	g.AddConflict(p1, 0)

	g.RemoveConflictNextPoint(0) // face 0 is recycled, not deleted

	if got, want := g.faces[0].Points, []int{int(p0)}; !reflect.DeepEqual(got, want) {
		t.Errorf("face 0 conflict points = %v, want %v", got, want)
	}
	if got := g.points[p1].Faces; len(got) != 0 {
		t.Errorf("top point's conflict faces = %v, want empty", got)
	}
	// Now RemoveNextPoint should find nothing left to do for face 0.
	g.RemoveNextPoint()
	if got, want := g.faces[0].Points, []int{int(p0)}; !reflect.DeepEqual(got, want) {
		t.Errorf("face 0 conflict points after RemoveNextPoint = %v, want unchanged %v", got, want)
	}
}

func TestDeleteNextPointInteriorPoint(t *testing.T) {
	g := NewGraph()
	g.AddPoint(geom.NewPoint(0, 0, 0))
	g.AddPoint(geom.NewPoint(1, 1, 1)) // no conflicts: interior

	if !g.NextPointHasNoConflicts() {
		t.Fatalf("NextPointHasNoConflicts() = false, want true")
	}
	g.DeleteNextPoint()

	if g.IsEmpty() {
		t.Fatalf("IsEmpty() = true after one DeleteNextPoint, want false")
	}
}

func TestVisiblePointsUnionStripsTopPoint(t *testing.T) {
	g := NewGraph()
	p0 := g.AddPoint(geom.NewPoint(0, 0, 0))
	p1 := g.AddPoint(geom.NewPoint(1, 1, 1))
	p2 := g.AddPoint(geom.NewPoint(2, 2, 2)) // top: about to be consumed
	g.AddFace(0)
	g.AddFace(1)

	g.AddConflict(p0, 0)
	g.AddConflict(p1, 1)
	g.AddConflict(p2, 0)
	g.AddConflict(p2, 1)

	union := g.VisiblePointsUnion(0, 1)
	want := []PointID{p0, p1}
	if !reflect.DeepEqual(union, want) {
		t.Errorf("VisiblePointsUnion() = %v, want %v", union, want)
	}
}

func TestResetFaceConflictList(t *testing.T) {
	g := NewGraph()
	p0 := g.AddPoint(geom.NewPoint(0, 0, 0))
	p1 := g.AddPoint(geom.NewPoint(1, 1, 1))
	g.AddFace(0)

	g.AddConflict(p0, 0)
	g.AddConflict(p1, 0)

	g.ResetFaceConflictList(0)

	if got := g.faces[0].Points; len(got) != 0 {
		t.Errorf("face 0 conflict points after reset = %v, want empty", got)
	}
	if got := g.points[p0].Faces; len(got) != 0 {
		t.Errorf("point 0 conflict faces after reset = %v, want empty", got)
	}
}

func TestNextConflictFaces(t *testing.T) {
	g := NewGraph()
	p0 := g.AddPoint(geom.NewPoint(0, 0, 0))
	g.AddFace(0)
	g.AddFace(1)
	g.AddConflict(p0, 1)
	g.AddConflict(p0, 0)

	got := g.NextConflictFaces()
	want := []dcel.FaceID{0, 1}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NextConflictFaces() = %v, want %v", got, want)
	}
}
