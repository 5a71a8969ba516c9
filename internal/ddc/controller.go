package ddc

import "fmt"

// Controller is the display-control capability the switcher drives. The
// production implementation shells out to an m1ddc-compatible binary; tests
// substitute scripted results.
type Controller interface {
	// ListDisplays returns the tool's human-readable display listing,
	// one entry per line.
	ListDisplays() ([]string, error)

	// GetInput reads the monitor's current input-source code. A zero
	// value means the monitor did not answer the query.
	GetInput(displayID string) (int, error)

	// SetInput performs the hardware write of the input-source selector.
	SetInput(displayID string, code int) error
}

// ExitError reports a non-zero exit status from the external tool. The exit
// code is propagated to the process exit status on a failed switch.
type ExitError struct {
	Tool string
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s exited with code %d", e.Tool, e.Code)
}
