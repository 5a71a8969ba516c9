package input

import "fmt"

// Source is an MCCS input-source selector value (VCP feature 0x60).
// Monitors report and accept these as small integers; anything outside the
// known set is carried as-is and rendered with a generic name.
type Source int

const (
	// Unknown is the sentinel some tools report when the monitor does not
	// answer the input query.
	Unknown Source = 0

	DisplayPort Source = 15
	USBC        Source = 16
	HDMI1       Source = 17
	HDMI2       Source = 18
)

func (s Source) String() string {
	switch s {
	case Unknown:
		return "Unknown"
	case DisplayPort:
		return "DisplayPort"
	case USBC:
		return "USB-C"
	case HDMI1:
		return "HDMI-1"
	case HDMI2:
		return "HDMI-2"
	default:
		return fmt.Sprintf("Input-%d", int(s))
	}
}

// Recognized reports whether s is one of the input sources this tool knows
// by name. Unknown and out-of-table values are not recognized.
func (s Source) Recognized() bool {
	switch s {
	case DisplayPort, USBC, HDMI1, HDMI2:
		return true
	}
	return false
}

// Known returns the named sources in legend order.
func Known() []Source {
	return []Source{DisplayPort, USBC, HDMI1, HDMI2}
}
