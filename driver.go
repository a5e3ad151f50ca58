// Package convexhull computes the three-dimensional convex hull of a point
// set using the randomized incremental algorithm of Clarkson and Shor: a
// DCEL mesh tracks the evolving polyhedron while a conflict graph keeps the
// bipartite visibility relation between pending points and current faces
// synchronized at every step, so each insertion costs time proportional to
// the region it actually touches.
package convexhull

import (
	"math/rand"

	"github.com/alemuntoni/ConvexHull3D/conflictgraph"
	"github.com/alemuntoni/ConvexHull3D/dcel"
	"github.com/alemuntoni/ConvexHull3D/geom"
)

// Option customizes a ConvexHull run. Unlike most constructors in this
// codebase, ConvexHull takes two genuinely independent, optional knobs
// (the permutation's randomness source and an instrumentation hook), which
// is the one place functional options fit better than positional
// parameters.
type Option func(*config)

type config struct {
	rnd      *rand.Rand
	observer InsertionObserver
}

// WithRandSource supplies the random source driving the initial point
// permutation. Passing a seeded *rand.Rand makes a run reproducible.
func WithRandSource(rnd *rand.Rand) Option {
	if rnd == nil {
		panic("convexhull: WithRandSource(nil)")
	}
	return func(c *config) {
		c.rnd = rnd
	}
}

// WithObserver attaches an InsertionObserver notified of every point and
// face lifecycle event during construction.
func WithObserver(o InsertionObserver) Option {
	if o == nil {
		panic("convexhull: WithObserver(nil)")
	}
	return func(c *config) {
		c.observer = o
	}
}

// ConvexHull computes the convex hull of points and returns it as a fully
// compacted dcel.Mesh. points must contain at least four entries, not all
// coplanar; otherwise the second return value wraps ErrInvalidInput.
func ConvexHull(points []geom.Point, opts ...Option) (*dcel.Mesh, error) {
	if len(points) < 4 {
		return nil, errTooFewPoints(len(points))
	}

	cfg := config{rnd: rand.New(rand.NewSource(1)), observer: noopObserver{}}
	for _, opt := range opts {
		opt(&cfg)
	}

	box := geom.ComputeBoundingBox(points)
	tol := box.Tolerance()

	shuffled := geom.ShufflePoints(points, cfg.rnd)

	seedIdx, err := findNonCoplanarSeed(shuffled, tol)
	if err != nil {
		return nil, err
	}
	// Move the chosen fourth point into position 3, preserving the
	// already-verified first three.
	shuffled[3], shuffled[seedIdx] = shuffled[seedIdx], shuffled[3]

	mesh, seedFaces, err := dcel.BuildSeedTetrahedron(shuffled[0], shuffled[1], shuffled[2], shuffled[3], tol)
	if err != nil {
		return nil, err
	}

	cg := conflictgraph.NewGraph()
	for _, f := range seedFaces {
		cg.AddFace(f)
	}

	rest := shuffled[4:]
	pointIDs := make([]conflictgraph.PointID, len(rest))
	for i, p := range rest {
		pointIDs[i] = cg.AddPoint(p)
	}

	for i, p := range rest {
		for _, f := range seedFaces {
			v0, v1, v2 := mesh.FaceTriangleCoords(f)
			if geom.Sees(p, v0, v1, v2, tol) {
				cg.AddConflict(pointIDs[i], f)
			}
		}
	}

	d := &driverState{
		mesh:     mesh,
		cg:       cg,
		tol:      tol,
		observer: cfg.observer,
	}

	for !cg.IsEmpty() {
		d.step()
	}

	return mesh.Compact(d.deletedVertices, d.deletedHalfEdges, d.deletedFaces), nil
}

// driverState holds the scratch data threaded through a single ConvexHull
// run: the mesh and conflict graph being mutated, the predicate tolerance,
// the observer, and the running deletion sets compaction needs at the end.
type driverState struct {
	mesh *dcel.Mesh
	cg   *conflictgraph.Graph
	tol  float64

	observer InsertionObserver

	deletedVertices  []int
	deletedHalfEdges []int
	deletedFaces     []int
}

// step consumes the top pending point: either discarding it (no conflicts)
// or running horizon extraction and splice against its conflict faces.
func (d *driverState) step() {
	_, p, ok := d.cg.NextPoint()
	assertf(ok, "step called with an empty conflict graph")

	if d.cg.NextPointHasNoConflicts() {
		d.observer.OnEvent(PointDiscarded, EventData{Point: p})
		d.cg.DeleteNextPoint()
		return
	}

	visible := d.cg.NextConflictFaces()
	d.insertPoint(p, visible)
	d.observer.OnEvent(PointInserted, EventData{Point: p})
}

// findNonCoplanarSeed first reorders points in place so that points[1] is
// the point farthest from points[0] and points[2] the point farthest from
// the line through them, then returns the index of the first point,
// scanning forward from index 3, whose inclusion with points[0:3] is not
// coplanar.
func findNonCoplanarSeed(points []geom.Point, tol float64) (int, error) {
	for k := 1; k <= 2; k++ {
		best, bestDist := k, -1.0
		for j := k; j < len(points); j++ {
			d := points[j].Sub(points[0])
			if k == 2 {
				d = points[1].Sub(points[0]).Cross(d)
			}
			if d.Dot(d) > bestDist {
				best, bestDist = j, d.Dot(d)
			}
		}
		points[k], points[best] = points[best], points[k]
	}
	for i := 3; i < len(points); i++ {
		if geom.Orient(points[0], points[1], points[2], points[i], tol) != geom.Zero {
			return i, nil
		}
	}
	return 0, errAllCoplanar()
}
