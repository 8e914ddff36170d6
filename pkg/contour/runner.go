package contour

import (
	"errors"
	"fmt"
	"strings"

	"facecut/pkg/cfg"
	"facecut/pkg/document"
	"facecut/pkg/export"
	"facecut/pkg/geometry"
)

var (
	// ErrNoSelection indicates an export was started with nothing selected.
	ErrNoSelection = errors.New("nothing selected")

	// ErrNoWires indicates the selection produced no boundary wires.
	ErrNoWires = errors.New("no wires to export")
)

// Runner executes one export: resolve the selection, build a transient wire
// object per face boundary loop, fuse if any wires overlap, write the output
// file, and remove every transient object again whether or not the run
// succeeded.
type Runner struct {
	Doc        *document.Document
	Format     export.Format
	Tolerance  float64 // 0 means cfg.OverlapTolerance
	SortTravel bool
}

// Result describes a finished run. Skipped holds one error per selection
// reference that was reported and passed over; it is populated even when the
// run itself fails.
type Result struct {
	Path    string
	Wires   int
	Fused   bool
	Skipped []error
}

func (r *Runner) Run(refs []document.Ref, outPath string) (*Result, error) {
	if len(refs) == 0 {
		return nil, ErrNoSelection
	}
	tol := r.Tolerance
	if tol <= 0 {
		tol = cfg.OverlapTolerance
	}

	// The document must return to its pre-run state on every path out.
	defer r.Doc.RemovePrefix(cfg.TransientPrefix)

	sel, skipped := document.Resolve(r.Doc, refs)
	res := &Result{Skipped: skipped}
	if len(sel) == 0 {
		return res, ErrNoWires
	}

	count := 0
	for _, s := range sel {
		for _, loop := range s.Face.Loops {
			name := fmt.Sprintf("%s%03d", cfg.TransientPrefix, count)
			if err := r.Doc.Add(document.NewWireObject(name, loop)); err != nil {
				return res, fmt.Errorf("create wire object: %w", err)
			}
			count++
		}
	}
	if count == 0 {
		return res, ErrNoWires
	}

	wires := make([]geometry.Wire, 0, count)
	for _, name := range r.Doc.Names() {
		if !strings.HasPrefix(name, cfg.TransientPrefix) {
			continue
		}
		obj, _ := r.Doc.Object(name)
		if wo, ok := obj.(*document.WireObject); ok {
			wires = append(wires, wo.Wire)
		}
	}

	var err error
	if len(wires) >= 2 && Overlaps(wires, tol) {
		wires, err = Fuse(wires, tol)
		if err != nil {
			return res, err
		}
		res.Fused = true
	}

	if r.SortTravel {
		wires = export.SortWires(wires)
	}

	res.Path = export.NormalizePath(outPath, r.Format)
	if err := export.WriteFile(res.Path, r.Format, wires); err != nil {
		return res, fmt.Errorf("export: %w", err)
	}
	res.Wires = len(wires)
	return res, nil
}
