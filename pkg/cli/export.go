package cli

import (
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"facecut/pkg/contour"
	"facecut/pkg/document"
	"facecut/pkg/export"
)

var (
	exportSelect    []string
	exportFormat    string
	exportOutput    string
	exportTolerance float64
	exportNoSort    bool
)

var exportCmd = &cobra.Command{
	Use:   "export <model.stl>",
	Short: "Export selected face boundaries as a DXF or SVG file",
	Long: `Export loads an STL model, extracts the boundary wires of the selected
faces, fuses wires that share edge geometry, and writes a 2D vector file.

Faces are selected with --select, e.g. --select plate:face2 or --select plate
for every face of an object. The object name is the model file's base name.
Without --format or --output the missing choice is prompted for; an empty
answer cancels the export.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		modelPath := args[0]
		objName := strings.TrimSuffix(filepath.Base(modelPath), filepath.Ext(modelPath))

		doc := document.New()
		mesh, err := document.LoadSTL(modelPath, objName)
		if err != nil {
			return err
		}
		if err := doc.Add(mesh); err != nil {
			return err
		}
		log.Debug().Str("object", objName).Int("faces", len(mesh.Faces)).Msg("model loaded")

		if len(exportSelect) == 0 {
			return contour.ErrNoSelection
		}
		var refs []document.Ref
		for _, s := range exportSelect {
			ref, err := document.ParseRef(s)
			if err != nil {
				return err
			}
			refs = append(refs, ref)
		}

		var format export.Format
		if exportFormat == "" {
			format, err = promptFormat(cmd.InOrStdin(), cmd.OutOrStdout())
		} else {
			format, err = export.ParseFormat(exportFormat)
		}
		if err != nil {
			return err
		}

		outPath := exportOutput
		if outPath == "" {
			outPath, err = promptPath(cmd.InOrStdin(), cmd.OutOrStdout(), format)
			if err != nil {
				return err
			}
		}

		runner := &contour.Runner{
			Doc:        doc,
			Format:     format,
			Tolerance:  exportTolerance,
			SortTravel: !exportNoSort,
		}
		res, err := runner.Run(refs, outPath)
		if res != nil {
			for _, skip := range res.Skipped {
				printWarning("skipped %v", skip)
			}
		}
		if err != nil {
			return err
		}

		if res.Fused {
			printInfo("overlapping wires fused into a single contour")
		}
		printSuccess("exported %d wires to %s", res.Wires, res.Path)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringArrayVarP(&exportSelect, "select", "s", nil,
		"face selection, object or object:faceN (repeatable)")
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "",
		"output format, dxf or svg (prompted when omitted)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "",
		"output file path (prompted when omitted)")
	exportCmd.Flags().Float64Var(&exportTolerance, "tolerance", 0,
		"overlap tolerance in model units (default 1e-5)")
	exportCmd.Flags().BoolVar(&exportNoSort, "no-sort", false,
		"keep selection order instead of sorting wires by travel distance")
}
