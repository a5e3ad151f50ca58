// Command convexhull reads a point cloud from an OFF file and writes its
// triangulated convex hull back out as another OFF file.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/alemuntoni/ConvexHull3D"
	"github.com/alemuntoni/ConvexHull3D/dcel"
	"github.com/alemuntoni/ConvexHull3D/geom"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: convexhull <input.off> <output.off>")
	}

	points, err := readOFFPoints(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	hull, err := convexhull.ConvexHull(points)
	if err != nil {
		return err
	}

	if err := writeOFF(args[1], hull); err != nil {
		return fmt.Errorf("writing %s: %w", args[1], err)
	}
	return nil
}

// readOFFPoints reads the vertex block of a minimal OFF file and ignores
// any face block: the CLI only ever treats its input as an unstructured
// point cloud, never as a mesh to be edited.
func readOFFPoints(path string) ([]geom.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	if !sc.Scan() {
		return nil, errors.New("empty file")
	}
	if strings.TrimSpace(sc.Text()) != "OFF" {
		return nil, errors.New("missing OFF header")
	}

	if !sc.Scan() {
		return nil, errors.New("missing vertex/face/edge counts line")
	}
	counts := strings.Fields(sc.Text())
	if len(counts) < 2 {
		return nil, errors.New("malformed counts line")
	}
	numVertices, err := strconv.Atoi(counts[0])
	if err != nil {
		return nil, fmt.Errorf("malformed vertex count: %w", err)
	}

	points := make([]geom.Point, 0, numVertices)
	for i := 0; i < numVertices; i++ {
		if !sc.Scan() {
			return nil, fmt.Errorf("expected %d vertices, found %d", numVertices, i)
		}
		fields := strings.Fields(sc.Text())
		if len(fields) < 3 {
			return nil, fmt.Errorf("malformed vertex line %d", i)
		}
		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("vertex %d: %w", i, err)
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("vertex %d: %w", i, err)
		}
		z, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, fmt.Errorf("vertex %d: %w", i, err)
		}
		points = append(points, geom.NewPoint(x, y, z))
	}

	return points, sc.Err()
}

// writeOFF writes m's live vertices and triangular faces as an OFF file.
// m is assumed already compacted, so every vertex and face id in range is
// live.
func writeOFF(path string, m *dcel.Mesh) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, "OFF")
	fmt.Fprintf(w, "%d %d 0\n", m.VertexCount(), m.FaceCount())

	for i := 0; i < m.VertexCount(); i++ {
		c := m.Vertex(dcel.VertexID(i)).Coord
		fmt.Fprintf(w, "%g %g %g\n", c[0], c[1], c[2])
	}
	for i := 0; i < m.FaceCount(); i++ {
		v0, v1, v2 := m.FaceTriangleVertices(dcel.FaceID(i))
		fmt.Fprintf(w, "3 %d %d %d\n", v0, v1, v2)
	}

	return w.Flush()
}
