package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"facecut/pkg/document"
)

var facesCmd = &cobra.Command{
	Use:   "faces <model.stl>",
	Short: "List the detected faces of a model",
	Long: `Faces lists every planar face detected in the model, with its triangle
count, boundary loop count and area, so selections for the export command can
be built as object:faceN references.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		modelPath := args[0]
		objName := strings.TrimSuffix(filepath.Base(modelPath), filepath.Ext(modelPath))

		mesh, err := document.LoadSTL(modelPath, objName)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s: %d faces\n", objName, len(mesh.Faces))
		for _, f := range mesh.Faces {
			closed := 0
			for _, loop := range f.Loops {
				if loop.Closed(1e-9) {
					closed++
				}
			}
			fmt.Fprintf(out, "  %s:face%d  triangles=%d loops=%d (%d closed) area=%.4g\n",
				objName, f.Index, len(f.Triangles), len(f.Loops), closed, f.Area())
		}
		return nil
	},
}
