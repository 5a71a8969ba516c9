package ddc

import (
	"errors"
	"runtime"
	"testing"
)

func TestParseInputValue(t *testing.T) {
	tests := []struct {
		name    string
		out     string
		want    int
		wantErr bool
	}{
		{name: "bare integer", out: "16\n", want: 16},
		{name: "labelled value", out: "input: 15", want: 15},
		{name: "zero sentinel", out: "0\n", want: 0},
		{name: "empty output", out: "", wantErr: true},
		{name: "noise", out: "error: display not found", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseInputValue(tt.out)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseInputValue(%q) error = nil, want error", tt.out)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseInputValue(%q) error = %v", tt.out, err)
			}
			if got != tt.want {
				t.Errorf("parseInputValue(%q) = %d, want %d", tt.out, got, tt.want)
			}
		})
	}
}

func TestExitError_Message(t *testing.T) {
	err := &ExitError{Tool: "m1ddc", Code: 5}
	if got := err.Error(); got != "m1ddc exited with code 5" {
		t.Errorf("Error() = %q", got)
	}
}

func TestTool_NonZeroExitMapsToExitError(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on a POSIX 'false' binary")
	}
	tool := NewTool("false")

	_, err := tool.ListDisplays()
	var ee *ExitError
	if !errors.As(err, &ee) {
		t.Fatalf("error = %v, want ExitError", err)
	}
	if ee.Code != 1 {
		t.Errorf("Code = %d, want 1", ee.Code)
	}
}

func TestTool_MissingBinary(t *testing.T) {
	tool := NewTool("ddcswitch-no-such-binary")

	if _, err := tool.Available(); err == nil {
		t.Error("Available() error = nil, want lookup failure")
	}
	if _, err := tool.ListDisplays(); err == nil {
		t.Error("ListDisplays() error = nil, want run failure")
	}
}
