package document

import (
	"math"
	"testing"

	"github.com/unixpickle/model3d/model3d"
)

// cubeTriangles builds a unit cube as two triangles per side, with
// consistent winding within each side.
func cubeTriangles() []*model3d.Triangle {
	quads := [][4]model3d.Coord3D{
		{model3d.XYZ(0, 0, 0), model3d.XYZ(1, 0, 0), model3d.XYZ(1, 1, 0), model3d.XYZ(0, 1, 0)},
		{model3d.XYZ(0, 0, 1), model3d.XYZ(1, 0, 1), model3d.XYZ(1, 1, 1), model3d.XYZ(0, 1, 1)},
		{model3d.XYZ(0, 0, 0), model3d.XYZ(0, 1, 0), model3d.XYZ(0, 1, 1), model3d.XYZ(0, 0, 1)},
		{model3d.XYZ(1, 0, 0), model3d.XYZ(1, 1, 0), model3d.XYZ(1, 1, 1), model3d.XYZ(1, 0, 1)},
		{model3d.XYZ(0, 0, 0), model3d.XYZ(1, 0, 0), model3d.XYZ(1, 0, 1), model3d.XYZ(0, 0, 1)},
		{model3d.XYZ(0, 1, 0), model3d.XYZ(1, 1, 0), model3d.XYZ(1, 1, 1), model3d.XYZ(0, 1, 1)},
	}
	var tris []*model3d.Triangle
	for _, q := range quads {
		tris = append(tris,
			&model3d.Triangle{q[0], q[1], q[2]},
			&model3d.Triangle{q[0], q[2], q[3]})
	}
	return tris
}

func TestCubeFaces(t *testing.T) {
	obj := NewMeshObject("cube", cubeTriangles())

	if len(obj.Faces) != 6 {
		t.Fatalf("detected %d faces, want 6", len(obj.Faces))
	}

	for _, f := range obj.Faces {
		if len(f.Triangles) != 2 {
			t.Errorf("face %d has %d triangles, want 2", f.Index, len(f.Triangles))
		}
		if math.Abs(f.Area()-1) > 1e-9 {
			t.Errorf("face %d area = %g, want 1", f.Index, f.Area())
		}
		if len(f.Loops) != 1 {
			t.Fatalf("face %d has %d boundary loops, want 1", f.Index, len(f.Loops))
		}
		loop := f.Loops[0]
		if !loop.Closed(1e-9) {
			t.Errorf("face %d boundary should be closed", f.Index)
		}
		if len(loop.Edges) != 4 {
			t.Errorf("face %d boundary has %d edges, want 4 (diagonal is internal)", f.Index, len(loop.Edges))
		}
		if math.Abs(loop.Length()-4) > 1e-9 {
			t.Errorf("face %d boundary length = %g, want 4", f.Index, loop.Length())
		}
	}
}

func TestFaceNumberingIsDeterministic(t *testing.T) {
	// Face indices follow triangle order, so the first face always contains
	// the first triangle.
	tris := cubeTriangles()
	obj := NewMeshObject("cube", tris)
	found := false
	for _, ft := range obj.Faces[0].Triangles {
		if ft == tris[0] {
			found = true
		}
	}
	if !found {
		t.Error("face 0 should contain the first input triangle")
	}
}

func TestDegenerateTrianglesIgnored(t *testing.T) {
	p := model3d.XYZ(0.5, 0.5, 0)
	tris := append(cubeTriangles(), &model3d.Triangle{p, p, p})
	obj := NewMeshObject("cube", tris)
	if len(obj.Faces) != 6 {
		t.Errorf("detected %d faces, want 6 (degenerate triangle ignored)", len(obj.Faces))
	}
}
