// Package document holds the in-memory model a single export run operates
// on: an ordered table of named objects, either meshes loaded from STL files
// or transient wires built from face boundaries.
package document

import (
	"fmt"
	"strings"

	"facecut/pkg/geometry"
)

// Object is anything that can live in a document's object table.
type Object interface {
	Name() string
}

// WireObject wraps a boundary wire created during an export run. Wire
// objects are transient; their names carry the transient marker prefix and
// cleanup removes them before the run returns.
type WireObject struct {
	name string
	Wire geometry.Wire
}

func NewWireObject(name string, wire geometry.Wire) *WireObject {
	return &WireObject{name: name, Wire: wire}
}

func (w *WireObject) Name() string { return w.name }

// Document is an ordered object table. Order is insertion order, so face
// numbering and export order stay deterministic for a given input.
type Document struct {
	order   []string
	objects map[string]Object
}

func New() *Document {
	return &Document{objects: map[string]Object{}}
}

// Add inserts an object. Names must be unique within the document.
func (d *Document) Add(obj Object) error {
	if _, ok := d.objects[obj.Name()]; ok {
		return fmt.Errorf("duplicate object name %q", obj.Name())
	}
	d.objects[obj.Name()] = obj
	d.order = append(d.order, obj.Name())
	return nil
}

func (d *Document) Object(name string) (Object, bool) {
	obj, ok := d.objects[name]
	return obj, ok
}

func (d *Document) Remove(name string) {
	if _, ok := d.objects[name]; !ok {
		return
	}
	delete(d.objects, name)
	for i, n := range d.order {
		if n == name {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
}

// Names returns object names in insertion order.
func (d *Document) Names() []string {
	names := make([]string, len(d.order))
	copy(names, d.order)
	return names
}

func (d *Document) Len() int {
	return len(d.order)
}

// RemovePrefix removes every object whose name starts with prefix and
// returns how many were removed. Used for transient-wire cleanup.
func (d *Document) RemovePrefix(prefix string) int {
	var removed int
	for _, name := range d.Names() {
		if strings.HasPrefix(name, prefix) {
			d.Remove(name)
			removed++
		}
	}
	return removed
}
