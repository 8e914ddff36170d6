// Package cli wires the export pipeline to a cobra command line. The two
// modal choices of an interactive run (output format, save path) become
// stdin prompts here when the matching flags are absent.
package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:     "facecut",
	Version: "dev",
	Short:   "Export face boundary wires from 3D models as DXF or SVG",
	Long: `facecut extracts the boundary wires of selected faces in a 3D model,
fuses overlapping wires into a single contour, and writes the result as a
2D vector file (DXF or SVG) for CNC cutting software.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		if verbose {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		} else {
			zerolog.SetGlobalLevel(zerolog.WarnLevel)
		}
	},
}

func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError("%v", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(facesCmd)
}
