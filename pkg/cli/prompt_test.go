package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"facecut/pkg/export"
)

func TestPromptFormat(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    export.Format
		wantErr error
	}{
		{name: "dxf", input: "dxf\n", want: export.DXF},
		{name: "svg uppercase", input: "SVG\n", want: export.SVG},
		{name: "empty line cancels", input: "\n", wantErr: ErrCancelled},
		{name: "eof cancels", input: "", wantErr: ErrCancelled},
	}

	for _, test := range tests {
		var out bytes.Buffer
		got, err := promptFormat(strings.NewReader(test.input), &out)
		if test.wantErr != nil {
			if !errors.Is(err, test.wantErr) {
				t.Errorf("test %s: error = %v, want %v", test.name, err, test.wantErr)
			}
			continue
		}
		if err != nil {
			t.Errorf("test %s: unexpected error %v", test.name, err)
			continue
		}
		if got != test.want {
			t.Errorf("test %s: format = %q, want %q", test.name, got, test.want)
		}
		if out.Len() == 0 {
			t.Errorf("test %s: no prompt written", test.name)
		}
	}
}

func TestPromptFormatRejectsUnknown(t *testing.T) {
	var out bytes.Buffer
	_, err := promptFormat(strings.NewReader("pdf\n"), &out)
	if err == nil || errors.Is(err, ErrCancelled) {
		t.Errorf("unknown format should be a plain error, got %v", err)
	}
}

func TestPromptPath(t *testing.T) {
	var out bytes.Buffer

	// Paths with a directory component pass through untouched.
	got, err := promptPath(strings.NewReader("sub/dir/cut\n"), &out, export.DXF)
	if err != nil {
		t.Fatalf("promptPath: %v", err)
	}
	if got != "sub/dir/cut" {
		t.Errorf("path = %q, want %q", got, "sub/dir/cut")
	}

	// Bare names land in the home directory, the save dialog's old default.
	got, err = promptPath(strings.NewReader("cut\n"), &out, export.DXF)
	if err != nil {
		t.Fatalf("promptPath: %v", err)
	}
	if !strings.HasSuffix(got, "cut") || got == "cut" {
		t.Errorf("bare name should be joined to the home directory, got %q", got)
	}

	// Empty input cancels.
	if _, err := promptPath(strings.NewReader("\n"), &out, export.DXF); !errors.Is(err, ErrCancelled) {
		t.Errorf("error = %v, want ErrCancelled", err)
	}
}
