// Package export turns a final wire set into a 2D vector file for CNC
// cutting software. DXF and SVG are supported; the output file is written in
// one shot after the wire set is complete, so aborted runs never leave a
// partial file behind.
package export

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"facecut/pkg/geometry"
)

type Format string

const (
	DXF Format = "dxf"
	SVG Format = "svg"
)

func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dxf":
		return DXF, nil
	case "svg":
		return SVG, nil
	}
	return "", fmt.Errorf("unknown format %q (want dxf or svg)", s)
}

func (f Format) Ext() string {
	return "." + string(f)
}

// NormalizePath appends the format's file extension unless the path already
// carries it (case-insensitive). The extension is never duplicated.
func NormalizePath(path string, f Format) string {
	if strings.EqualFold(filepath.Ext(path), f.Ext()) {
		return path
	}
	return path + f.Ext()
}

// WriteFile renders the wires in the given format and writes them to path.
func WriteFile(path string, f Format, wires []geometry.Wire) error {
	var buf bytes.Buffer
	var err error
	switch f {
	case DXF:
		err = WriteDXF(&buf, wires)
	case SVG:
		err = WriteSVG(&buf, wires)
	default:
		err = fmt.Errorf("unknown format %q", f)
	}
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
