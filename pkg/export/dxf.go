package export

import (
	"bufio"
	"fmt"
	"io"

	"facecut/pkg/geometry"
)

// WriteDXF writes the wires as an ASCII DXF R12 drawing, one LINE entity per
// edge on layer 0. Z coordinates are preserved (group codes 30/31), so the
// drawing stays faithful to the model even when the wires are not planar.
func WriteDXF(w io.Writer, wires []geometry.Wire) error {
	bw := bufio.NewWriter(w)

	code := func(c int, v string) {
		fmt.Fprintf(bw, "%d\n%s\n", c, v)
	}

	code(0, "SECTION")
	code(2, "HEADER")
	code(9, "$ACADVER")
	code(1, "AC1009")
	code(0, "ENDSEC")

	code(0, "SECTION")
	code(2, "ENTITIES")
	for _, wire := range wires {
		for _, e := range wire.Edges {
			code(0, "LINE")
			code(8, "0")
			code(10, formatNumber(e.A.X))
			code(20, formatNumber(e.A.Y))
			code(30, formatNumber(e.A.Z))
			code(11, formatNumber(e.B.X))
			code(21, formatNumber(e.B.Y))
			code(31, formatNumber(e.B.Z))
		}
	}
	code(0, "ENDSEC")
	code(0, "EOF")

	return bw.Flush()
}
