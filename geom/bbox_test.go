package geom

import "testing"

func TestComputeBoundingBox(t *testing.T) {
	points := []Point{
		NewPoint(1, -2, 3),
		NewPoint(-1, 4, 0),
		NewPoint(2, 0, -5),
	}

	box := ComputeBoundingBox(points)

	wantMin := NewPoint(-1, -2, -5)
	wantMax := NewPoint(2, 4, 3)
	if box.Min != wantMin {
		t.Errorf("Min = %v, want %v", box.Min, wantMin)
	}
	if box.Max != wantMax {
		t.Errorf("Max = %v, want %v", box.Max, wantMax)
	}
}

func TestBoundingBoxDiagonal(t *testing.T) {
	box := BoundingBox{Min: NewPoint(0, 0, 0), Max: NewPoint(3, 4, 0)}
	if got, want := box.Diagonal(), 5.0; got != want {
		t.Errorf("Diagonal() = %v, want %v", got, want)
	}
}

func TestBoundingBoxTolerance(t *testing.T) {
	t.Run("degenerate_box_falls_back_to_default", func(t *testing.T) {
		box := BoundingBox{Min: NewPoint(1, 1, 1), Max: NewPoint(1, 1, 1)}
		if got := box.Tolerance(); got != relativeEpsilonFactor {
			t.Errorf("Tolerance() = %v, want %v", got, relativeEpsilonFactor)
		}
	})

	t.Run("scales_with_cube_of_diagonal", func(t *testing.T) {
		box := BoundingBox{Min: NewPoint(0, 0, 0), Max: NewPoint(10, 0, 0)}
		got := box.Tolerance()
		want := 1000 * relativeEpsilonFactor
		if got != want {
			t.Errorf("Tolerance() = %v, want %v", got, want)
		}
	})
}

func TestBoundingBoxContains(t *testing.T) {
	box := BoundingBox{Min: NewPoint(0, 0, 0), Max: NewPoint(1, 1, 1)}

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{name: "interior_point", p: NewPoint(0.5, 0.5, 0.5), want: true},
		{name: "on_boundary", p: NewPoint(0, 1, 0), want: true},
		{name: "outside_on_one_axis", p: NewPoint(1.1, 0.5, 0.5), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := box.Contains(tt.p); got != tt.want {
				t.Errorf("Contains() = %v, want %v", got, tt.want)
			}
		})
	}
}
