package document

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"facecut/pkg/geometry"
)

func TestParseRef(t *testing.T) {
	tests := []struct {
		in      string
		want    Ref
		wantErr bool
	}{
		{in: "cube", want: Ref{Object: "cube"}},
		{in: "cube:face2", want: Ref{Object: "cube", Sub: "face2"}},
		{in: "cube:edge1", want: Ref{Object: "cube", Sub: "edge1"}},
		{in: " cube:face0 ", want: Ref{Object: "cube", Sub: "face0"}},
		{in: "", wantErr: true},
		{in: ":face2", wantErr: true},
	}

	for _, test := range tests {
		got, err := ParseRef(test.in)
		if (err != nil) != test.wantErr {
			t.Errorf("ParseRef(%q) error = %v, wantErr %v", test.in, err, test.wantErr)
			continue
		}
		if err == nil {
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("ParseRef(%q): %s", test.in, diff)
			}
		}
	}
}

func TestResolve(t *testing.T) {
	d := New()
	cube := NewMeshObject("cube", cubeTriangles())
	if err := d.Add(cube); err != nil {
		t.Fatal(err)
	}
	if err := d.Add(NewWireObject("sketch", geometry.Wire{})); err != nil {
		t.Fatal(err)
	}

	refs := []Ref{
		{Object: "cube", Sub: "face0"},
		{Object: "cube", Sub: "edge1"},  // wrong sub-object kind
		{Object: "cube", Sub: "face99"}, // out of range
		{Object: "sketch"},              // not a mesh
		{Object: "missing"},
		{Object: "cube"}, // all faces
	}

	sel, skipped := Resolve(d, refs)
	if len(sel) != 1+len(cube.Faces) {
		t.Errorf("resolved %d selections, want %d", len(sel), 1+len(cube.Faces))
	}
	if sel[0].Face != cube.Faces[0] {
		t.Error("first selection should be face 0")
	}

	if len(skipped) != 4 {
		t.Fatalf("skipped %d references, want 4", len(skipped))
	}
	for i, wantNotAFace := range []bool{true, true, true, false} {
		if got := errors.Is(skipped[i], ErrNotAFace); got != wantNotAFace {
			t.Errorf("skipped[%d] = %v, ErrNotAFace = %v, want %v", i, skipped[i], got, wantNotAFace)
		}
	}
}
