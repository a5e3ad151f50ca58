package convexhull

import (
	"math/rand"
	"testing"

	"github.com/alemuntoni/ConvexHull3D/geom"
)

func TestEventTypeString(t *testing.T) {
	tests := []struct {
		e    EventType
		want string
	}{
		{PointDiscarded, "PointDiscarded"},
		{PointInserted, "PointInserted"},
		{FaceCreated, "FaceCreated"},
		{FaceRecycled, "FaceRecycled"},
		{FaceRemoved, "FaceRemoved"},
		{EventType(255), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.e.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.e, got, tt.want)
		}
	}
}

type recordingObserver struct {
	counts map[EventType]int
}

func newRecordingObserver() *recordingObserver {
	return &recordingObserver{counts: make(map[EventType]int)}
}

func (r *recordingObserver) OnEvent(e EventType, _ EventData) {
	r.counts[e]++
}

func TestWithObserverReceivesEvents(t *testing.T) {
	obs := newRecordingObserver()
	pts := append(unitCube(), geom.NewPoint(0.5, 0.5, 0.5))

	_, err := ConvexHull(pts, WithObserver(obs), WithRandSource(rand.New(rand.NewSource(3))))
	if err != nil {
		t.Fatalf("ConvexHull() error = %v", err)
	}

	if obs.counts[PointInserted] == 0 {
		t.Error("expected at least one PointInserted event")
	}
	if obs.counts[PointDiscarded] == 0 {
		t.Error("expected the interior point to fire PointDiscarded")
	}
	if obs.counts[FaceCreated]+obs.counts[FaceRecycled] == 0 {
		t.Error("expected at least one face to be created or recycled")
	}
}

func TestWithObserverNilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("WithObserver(nil) did not panic")
		}
	}()
	WithObserver(nil)
}

func TestWithRandSourceNilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("WithRandSource(nil) did not panic")
		}
	}()
	WithRandSource(nil)
}
