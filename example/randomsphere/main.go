// Command randomsphere builds the convex hull of a random point cloud on
// the unit sphere and prints a tally of the lifecycle events fired along
// the way.
package main

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/alemuntoni/ConvexHull3D"
	"github.com/alemuntoni/ConvexHull3D/geom"
)

// eventCounter is an InsertionObserver that tallies how many times each
// event fires over a run, instead of printing one line per event the way
// a verbose debugger would.
type eventCounter struct {
	counts map[convexhull.EventType]int
}

func newEventCounter() *eventCounter {
	return &eventCounter{counts: make(map[convexhull.EventType]int)}
}

func (c *eventCounter) OnEvent(e convexhull.EventType, _ convexhull.EventData) {
	c.counts[e]++
}

func randomSpherePoints(n int, rnd *rand.Rand) []geom.Point {
	points := make([]geom.Point, 0, n)
	for len(points) < n {
		x, y, z := rnd.NormFloat64(), rnd.NormFloat64(), rnd.NormFloat64()
		norm := x*x + y*y + z*z
		if norm < 1e-9 {
			continue // degenerate sample, draw again
		}
		r := 1 / math.Sqrt(norm)
		points = append(points, geom.NewPoint(x*r, y*r, z*r))
	}
	return points
}

func main() {
	rnd := rand.New(rand.NewSource(1))
	points := randomSpherePoints(500, rnd)

	counter := newEventCounter()
	hull, err := convexhull.ConvexHull(points,
		convexhull.WithRandSource(rand.New(rand.NewSource(2))),
		convexhull.WithObserver(counter),
	)
	if err != nil {
		fmt.Println("convex hull failed:", err)
		return
	}

	fmt.Printf("input points:  %d\n", len(points))
	fmt.Printf("hull vertices: %d\n", hull.VertexCount())
	fmt.Printf("hull faces:    %d\n", hull.FaceCount())
	fmt.Println("events:")
	for _, e := range []convexhull.EventType{
		convexhull.PointInserted,
		convexhull.PointDiscarded,
		convexhull.FaceCreated,
		convexhull.FaceRecycled,
		convexhull.FaceRemoved,
	} {
		fmt.Printf("  %-14s %d\n", e, counter.counts[e])
	}
}
