package input_test

import (
	"testing"

	"ddcswitch/internal/input"
)

func TestSourceNames(t *testing.T) {
	tests := []struct {
		src  input.Source
		want string
	}{
		{input.DisplayPort, "DisplayPort"},
		{input.USBC, "USB-C"},
		{input.HDMI1, "HDMI-1"},
		{input.HDMI2, "HDMI-2"},
		{input.Unknown, "Unknown"},
		{input.Source(27), "Input-27"},
	}
	for _, tt := range tests {
		if got := tt.src.String(); got != tt.want {
			t.Errorf("Source(%d).String() = %q, want %q", int(tt.src), got, tt.want)
		}
	}
}

func TestRecognized(t *testing.T) {
	for _, src := range input.Known() {
		if !src.Recognized() {
			t.Errorf("%s not recognized", src)
		}
	}
	if input.Unknown.Recognized() {
		t.Error("Unknown recognized")
	}
	if input.Source(27).Recognized() {
		t.Error("Source(27) recognized")
	}
}
