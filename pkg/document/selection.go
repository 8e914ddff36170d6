package document

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrNotAFace indicates a selection reference that does not resolve to a
// face of a mesh object. Such references are reported and skipped; they do
// not abort the export.
var ErrNotAFace = errors.New("not a face")

// Ref is one selection reference: an object name, optionally followed by a
// sub-object like "face2". An empty Sub selects all faces of the object.
type Ref struct {
	Object string
	Sub    string
}

func (r Ref) String() string {
	if r.Sub == "" {
		return r.Object
	}
	return r.Object + ":" + r.Sub
}

// ParseRef parses "object" or "object:subobject". Whether the sub-object is
// actually a face is decided at resolve time, so invalid kinds can be
// skipped per occurrence instead of failing the whole selection.
func ParseRef(s string) (Ref, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Ref{}, errors.New("empty selection reference")
	}
	obj, sub, _ := strings.Cut(s, ":")
	if obj == "" {
		return Ref{}, fmt.Errorf("selection reference %q has no object name", s)
	}
	return Ref{Object: obj, Sub: sub}, nil
}

// Selected is a resolved (object, face) pair.
type Selected struct {
	Object *MeshObject
	Face   *Face
}

// Resolve maps selection references to faces. References that name a
// missing object or a non-face sub-object are returned in skipped, one error
// per occurrence; valid references still resolve.
func Resolve(d *Document, refs []Ref) (sel []Selected, skipped []error) {
	for _, ref := range refs {
		obj, ok := d.Object(ref.Object)
		if !ok {
			skipped = append(skipped, fmt.Errorf("%s: object not found", ref))
			continue
		}
		mesh, ok := obj.(*MeshObject)
		if !ok {
			skipped = append(skipped, fmt.Errorf("%s: object %q: %w", ref, ref.Object, ErrNotAFace))
			continue
		}
		if ref.Sub == "" {
			for _, f := range mesh.Faces {
				sel = append(sel, Selected{Object: mesh, Face: f})
			}
			continue
		}
		idxStr, isFace := strings.CutPrefix(ref.Sub, "face")
		if !isFace {
			skipped = append(skipped, fmt.Errorf("%s: sub-object %q: %w", ref, ref.Sub, ErrNotAFace))
			continue
		}
		idx, err := strconv.Atoi(idxStr)
		if err != nil || idx < 0 || idx >= len(mesh.Faces) {
			skipped = append(skipped, fmt.Errorf("%s: no face %q on object %q: %w", ref, ref.Sub, ref.Object, ErrNotAFace))
			continue
		}
		sel = append(sel, Selected{Object: mesh, Face: mesh.Faces[idx]})
	}
	return sel, skipped
}
