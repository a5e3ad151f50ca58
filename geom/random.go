package geom

import "math/rand"

// ShufflePoints returns a copy of points in a random order driven by rnd.
// Randomizing insertion order keeps the incremental hull construction's
// expected running time linear regardless of input arrangement. The caller
// supplies the source so that a fixed seed yields a deterministic hull.
func ShufflePoints(points []Point, rnd *rand.Rand) []Point {
	out := make([]Point, len(points))
	copy(out, points)
	rnd.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
