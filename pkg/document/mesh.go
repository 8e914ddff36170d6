package document

import (
	"fmt"
	"os"

	"github.com/unixpickle/model3d/model3d"

	"facecut/pkg/cfg"
	"facecut/pkg/geometry"
)

// chainTolerance matches exactly-shared mesh vertices during boundary
// assembly. STL repeats vertex coordinates verbatim, so this only needs to
// absorb float formatting noise.
const chainTolerance = 1e-9

// Face is a maximal edge-connected group of coplanar triangles. Its boundary
// is one or more closed loops of mesh edges (the outer contour plus holes).
type Face struct {
	Index     int
	Normal    model3d.Coord3D
	Triangles []*model3d.Triangle
	Loops     []geometry.Wire
}

func (f *Face) Area() float64 {
	total := 0.0
	for _, t := range f.Triangles {
		total += t.Area()
	}
	return total
}

// MeshObject is a named triangle mesh with its detected planar faces.
type MeshObject struct {
	name  string
	Mesh  *model3d.Mesh
	Faces []*Face
}

func (m *MeshObject) Name() string { return m.name }

// NewMeshObject builds a mesh object and detects its faces. Triangle order
// determines face numbering, so the same input always yields the same
// face indices.
func NewMeshObject(name string, tris []*model3d.Triangle) *MeshObject {
	mesh := model3d.NewMeshTriangles(tris)
	return &MeshObject{
		name:  name,
		Mesh:  mesh,
		Faces: detectFaces(mesh, tris),
	}
}

// LoadSTL reads an STL file into a mesh object named after the given name.
func LoadSTL(path, name string) (*MeshObject, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open model: %w", err)
	}
	defer f.Close()

	tris, err := model3d.ReadSTL(f)
	if err != nil {
		return nil, fmt.Errorf("read STL %s: %w", path, err)
	}
	if len(tris) == 0 {
		return nil, fmt.Errorf("read STL %s: no triangles", path)
	}
	return NewMeshObject(name, tris), nil
}

// detectFaces groups triangles into planar faces by flooding across shared
// edges while the normals agree, then extracts each face's boundary loops.
func detectFaces(mesh *model3d.Mesh, tris []*model3d.Triangle) []*Face {
	inFace := map[*model3d.Triangle]int{}
	var faces []*Face

	for _, seed := range tris {
		if _, ok := inFace[seed]; ok {
			continue
		}
		if seed.Area() == 0 {
			continue
		}
		normal := seed.Normal()
		face := &Face{Index: len(faces), Normal: normal}
		inFace[seed] = face.Index

		queue := []*model3d.Triangle{seed}
		for len(queue) > 0 {
			t := queue[0]
			queue = queue[1:]
			face.Triangles = append(face.Triangles, t)

			for i := 0; i < 3; i++ {
				a, b := t[i], t[(i+1)%3]
				for _, o := range mesh.Find(a, b) {
					if o == t {
						continue
					}
					if _, seen := inFace[o]; seen {
						continue
					}
					if o.Area() == 0 {
						continue
					}
					if o.Normal().Dot(normal) < cfg.PlanarCosTolerance {
						continue
					}
					inFace[o] = face.Index
					queue = append(queue, o)
				}
			}
		}

		face.Loops = boundaryLoops(mesh, face, inFace)
		faces = append(faces, face)
	}
	return faces
}

// boundaryLoops collects every triangle edge not shared with another
// triangle of the same face and chains them into wires.
func boundaryLoops(mesh *model3d.Mesh, face *Face, inFace map[*model3d.Triangle]int) []geometry.Wire {
	var edges []geometry.Edge
	for _, t := range face.Triangles {
		for i := 0; i < 3; i++ {
			a, b := t[i], t[(i+1)%3]
			internal := false
			for _, o := range mesh.Find(a, b) {
				if o == t {
					continue
				}
				if idx, ok := inFace[o]; ok && idx == face.Index {
					internal = true
					break
				}
			}
			if !internal {
				edges = append(edges, geometry.Edge{A: a, B: b})
			}
		}
	}
	return geometry.Chain(edges, chainTolerance)
}
