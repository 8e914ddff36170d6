package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"facecut/pkg/export"
)

// ErrCancelled indicates the user declined one of the interactive prompts.
// The export aborts cleanly with no side effects.
var ErrCancelled = errors.New("export cancelled")

// promptFormat asks for the output format. An empty answer or EOF cancels.
func promptFormat(in io.Reader, out io.Writer) (export.Format, error) {
	fmt.Fprint(out, "Export format, dxf or svg: ")
	line, err := readLine(in)
	if err != nil || line == "" {
		return "", ErrCancelled
	}
	f, err := export.ParseFormat(line)
	if err != nil {
		return "", err
	}
	return f, nil
}

// promptPath asks where to save the export. A bare filename (no directory
// separator) is placed in the user's home directory, matching the old save
// dialog's default location. Empty answer or EOF cancels.
func promptPath(in io.Reader, out io.Writer, f export.Format) (string, error) {
	fmt.Fprintf(out, "Save as (%s, bare names go to your home directory): ", f.Ext())
	line, err := readLine(in)
	if err != nil || line == "" {
		return "", ErrCancelled
	}
	if !strings.ContainsRune(line, os.PathSeparator) {
		home, err := os.UserHomeDir()
		if err == nil {
			line = filepath.Join(home, line)
		}
	}
	return line, nil
}

func readLine(in io.Reader) (string, error) {
	scanner := bufio.NewScanner(in)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(scanner.Text()), nil
}
