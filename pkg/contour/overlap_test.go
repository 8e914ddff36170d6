package contour

import (
	"testing"

	"github.com/unixpickle/model3d/model3d"

	"facecut/pkg/geometry"
)

func square(x0, y0, z, size float64) geometry.Wire {
	corners := []model3d.Coord3D{
		model3d.XYZ(x0, y0, z),
		model3d.XYZ(x0+size, y0, z),
		model3d.XYZ(x0+size, y0+size, z),
		model3d.XYZ(x0, y0+size, z),
	}
	var edges []geometry.Edge
	for i := range corners {
		edges = append(edges, geometry.Edge{A: corners[i], B: corners[(i+1)%4]})
	}
	return geometry.Wire{Edges: edges}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name  string
		wires []geometry.Wire
		tol   float64
		want  bool
	}{
		{
			name:  "single wire never overlaps",
			wires: []geometry.Wire{square(0, 0, 0, 1)},
			tol:   1e-5,
			want:  false,
		},
		{
			name:  "shared edge",
			wires: []geometry.Wire{square(0, 0, 0, 1), square(1, 0, 0, 1)},
			tol:   1e-5,
			want:  true,
		},
		{
			name:  "touching at a corner",
			wires: []geometry.Wire{square(0, 0, 0, 1), square(1, 1, 0, 1)},
			tol:   1e-5,
			want:  true,
		},
		{
			name:  "separated beyond tolerance",
			wires: []geometry.Wire{square(0, 0, 0, 1), square(1.001, 0, 0, 1)},
			tol:   1e-5,
			want:  false,
		},
		{
			name:  "separated within tolerance",
			wires: []geometry.Wire{square(0, 0, 0, 1), square(1.000000005, 0, 0, 1)},
			tol:   1e-5,
			want:  true,
		},
		{
			name:  "stacked with z gap",
			wires: []geometry.Wire{square(0, 0, 0, 1), square(0, 0, 0.5, 1)},
			tol:   1e-5,
			want:  false,
		},
		{
			name: "third wire overlaps the second",
			wires: []geometry.Wire{
				square(0, 0, 0, 1),
				square(5, 0, 0, 1),
				square(6, 0, 0, 1),
			},
			tol:  1e-5,
			want: true,
		},
	}

	for _, test := range tests {
		if got := Overlaps(test.wires, test.tol); got != test.want {
			t.Errorf("test %s: Overlaps = %v, want %v", test.name, got, test.want)
		}
	}
}
