package convexhull

import (
	"testing"

	"github.com/alemuntoni/ConvexHull3D/dcel"
	"github.com/alemuntoni/ConvexHull3D/geom"
)

// visibleFacesOf returns the faces of d.mesh that see p, mirroring what the
// conflict graph would hand the driver for a freshly built seed.
func visibleFacesOf(d *driverState, p geom.Point, seedFaces [4]dcel.FaceID) []dcel.FaceID {
	var visible []dcel.FaceID
	for _, f := range seedFaces {
		v0, v1, v2 := d.mesh.FaceTriangleCoords(f)
		if geom.Sees(p, v0, v1, v2, d.tol) {
			visible = append(visible, f)
		}
	}
	return visible
}

func TestInsertPointSingleFaceGrowsByTwoFaces(t *testing.T) {
	d, seedFaces := pyramidState(t)
	p := geom.NewPoint(0.25, 0.25, -1)
	visible := visibleFacesOf(d, p, seedFaces)
	if len(visible) != 1 {
		t.Fatalf("setup: expected 1 visible face, got %d", len(visible))
	}

	d.insertPoint(p, visible)

	if err := d.mesh.CheckInvariants(); err != nil {
		t.Fatalf("CheckInvariants() = %v", err)
	}
	// One face deleted, three horizon-edge triangles built: net +2.
	live := 0
	for f := 0; f < d.mesh.FaceCount(); f++ {
		if !d.mesh.IsFaceDeleted(dcel.FaceID(f)) {
			live++
		}
	}
	if live != 6 {
		t.Errorf("live face count = %d, want 6", live)
	}
}

func TestInsertPointRecyclesAllThreeFaces(t *testing.T) {
	d, seedFaces := pyramidState(t)
	// Far along the ray from the base centroid through the apex (0,0,1):
	// sees the three faces meeting at the apex, none of the base face.
	p := geom.NewPoint(-2.25, -2.25, 7.75)
	visible := visibleFacesOf(d, p, seedFaces)
	if len(visible) != 3 {
		t.Fatalf("setup: expected 3 visible faces, got %d", len(visible))
	}

	d.insertPoint(p, visible)

	if err := d.mesh.CheckInvariants(); err != nil {
		t.Fatalf("CheckInvariants() = %v", err)
	}

	live := 0
	for f := 0; f < d.mesh.FaceCount(); f++ {
		if !d.mesh.IsFaceDeleted(dcel.FaceID(f)) {
			live++
		}
	}
	if live != 4 {
		t.Errorf("live face count = %d, want 4 (all three visible faces recycled in place)", live)
	}
	if len(d.deletedFaces) != 0 {
		t.Errorf("deletedFaces = %v, want empty: a full recycle should not delete any face", d.deletedFaces)
	}

	// The old apex vertex (0,0,1) must have been condemned: every face
	// around it was in the visible set and got its reference to it
	// replaced by the new point.
	if len(d.deletedVertices) != 1 {
		t.Fatalf("deletedVertices = %v, want exactly one orphaned vertex", d.deletedVertices)
	}
	orphan := d.mesh.Vertex(dcel.VertexID(d.deletedVertices[0])).Coord
	if orphan != geom.NewPoint(0, 0, 1) {
		t.Errorf("condemned vertex = %v, want the old apex (0,0,1)", orphan)
	}
}
