package convexhull

import "github.com/alemuntoni/ConvexHull3D/geom"

// EventType tags one step of the incremental construction worth observing.
type EventType uint8

const (
	// PointDiscarded fires when a pending point's conflict list turns out
	// to be empty: it lies inside the current hull and is dropped.
	PointDiscarded EventType = iota
	// PointInserted fires once a point has been spliced into the hull as
	// a new vertex.
	PointInserted
	// FaceCreated fires for each brand-new triangle added during a splice.
	FaceCreated
	// FaceRecycled fires when an existing face is reshaped in place
	// instead of being deleted and rebuilt.
	FaceRecycled
	// FaceRemoved fires for each visible face deleted during a splice.
	FaceRemoved
)

func (e EventType) String() string {
	switch e {
	case PointDiscarded:
		return "PointDiscarded"
	case PointInserted:
		return "PointInserted"
	case FaceCreated:
		return "FaceCreated"
	case FaceRecycled:
		return "FaceRecycled"
	case FaceRemoved:
		return "FaceRemoved"
	default:
		return "Unknown"
	}
}

// EventData carries whichever fields are relevant to the EventType it
// accompanies; fields that don't apply to a given event are left zero.
type EventData struct {
	Point geom.Point
	Face  int // dcel.FaceID, kept as plain int so this package has no import-cycle constraint on dcel
}

// InsertionObserver receives a notification for every point and face
// lifecycle event during ConvexHull. Implementations must return quickly:
// OnEvent is called synchronously from inside the insertion loop.
type InsertionObserver interface {
	OnEvent(e EventType, data EventData)
}

// noopObserver is the default observer used when the caller supplies none,
// so the driver can call observer.OnEvent unconditionally instead of
// nil-checking at every call site.
type noopObserver struct{}

func (noopObserver) OnEvent(EventType, EventData) {}
