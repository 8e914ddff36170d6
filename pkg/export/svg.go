package export

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"facecut/pkg/cfg"
	"facecut/pkg/geometry"
)

// svgNode mirrors the subset of SVG needed for plain wire drawings. One
// struct serves both the root svg element and the path children.
type svgNode struct {
	XMLName  xml.Name
	Width    string     `xml:"width,attr,omitempty"`
	Height   string     `xml:"height,attr,omitempty"`
	ViewBox  string     `xml:"viewBox,attr,omitempty"`
	Version  string     `xml:"version,attr,omitempty"`
	ID       string     `xml:"id,attr,omitempty"`
	Styles   string     `xml:"style,attr,omitempty"`
	D        string     `xml:"d,attr,omitempty"`
	Children []*svgNode `xml:",any"`
}

const svgNamespace = "http://www.w3.org/2000/svg"

// WriteSVG writes the wires as an SVG document in millimetre units. Wires
// are projected onto the XY plane, shifted so the drawing starts at the
// origin, and flipped into SVG's down-positive Y axis.
func WriteSVG(w io.Writer, wires []geometry.Wire) error {
	min, max := geometry.Bounds2D(wires)
	width := max.X - min.X
	height := max.Y - min.Y

	style := fmt.Sprintf("fill:none;stroke:#000000;stroke-width:%s", formatNumber(cfg.StrokeWidthMM))

	root := &svgNode{
		XMLName: xml.Name{Space: svgNamespace, Local: "svg"},
		Width:   formatNumber(width) + "mm",
		Height:  formatNumber(height) + "mm",
		ViewBox: fmt.Sprintf("0 0 %s %s", formatNumber(width), formatNumber(height)),
		Version: "1.1",
	}

	for i, wire := range wires {
		root.Children = append(root.Children, &svgNode{
			XMLName: xml.Name{Local: "path"},
			ID:      fmt.Sprintf("wire%d", i),
			Styles:  style,
			D:       pathData(wire, min, max),
		})
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	out, err := xml.MarshalIndent(root, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(append(out, '\n'))
	return err
}

func pathData(wire geometry.Wire, min, max geometry.Point) string {
	var b strings.Builder
	for i, c := range wire.Points() {
		p := geometry.ProjectXY(c)
		cmd := "L"
		if i == 0 {
			cmd = "M"
		}
		fmt.Fprintf(&b, "%s %s %s ", cmd, formatNumber(p.X-min.X), formatNumber(max.Y-p.Y))
	}
	if wire.Closed(1e-9) {
		b.WriteString("Z")
	}
	return strings.TrimSpace(b.String())
}
