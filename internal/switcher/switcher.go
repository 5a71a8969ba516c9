// Package switcher sequences the DDC/CI operations behind each CLI command:
// set an input, toggle between USB-C and DisplayPort, or report status. All
// user-facing output goes to the injected writer so the behavior can be
// tested against a scripted controller.
package switcher

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"ddcswitch/internal/config"
	"ddcswitch/internal/ddc"
	"ddcswitch/internal/input"
	"ddcswitch/internal/state"
)

type Switcher struct {
	cfg   config.Config
	ctrl  ddc.Controller
	store *state.Store
	out   io.Writer
}

func New(cfg config.Config, ctrl ddc.Controller, store *state.Store, out io.Writer) *Switcher {
	return &Switcher{cfg: cfg, ctrl: ctrl, store: store, out: out}
}

// SetDisplayPort switches the monitor to the configured DisplayPort input.
func (s *Switcher) SetDisplayPort() error {
	return s.set(s.cfg.DisplayPortCode, "DisplayPort")
}

// SetUSBC switches the monitor to the configured USB-C input.
func (s *Switcher) SetUSBC() error {
	return s.set(s.cfg.USBCCode, "USB-C")
}

func (s *Switcher) set(code int, name string) error {
	err := s.ctrl.SetInput(s.cfg.DisplayID, code)
	if err == nil {
		fmt.Fprintf(s.out, "SUCCESS: input switched to %s (code %d)\n", name, code)
		if saveErr := s.store.Save(code); saveErr != nil {
			log.Warn("could not record input state", "path", s.store.Path(), "err", saveErr)
		}
		return nil
	}

	var ee *ddc.ExitError
	if errors.As(err, &ee) {
		fmt.Fprintf(s.out, "FAILED: could not switch to %s, %s exited with code %d\n", name, s.cfg.Tool, ee.Code)
		fmt.Fprintln(s.out, "Troubleshooting:")
		fmt.Fprintln(s.out, "  - make sure DDC/CI is enabled in the monitor's on-screen menu")
		fmt.Fprintf(s.out, "  - run '%s display list' to re-list connected displays\n", s.cfg.Tool)
		fmt.Fprintln(s.out, "  - the configured display identifier may be stale after replugging")
		return err
	}
	return fmt.Errorf("switch to %s: %w", name, err)
}

// Toggle resolves the monitor's current input and switches to the opposite
// of the USB-C/DisplayPort pair. Unrecognized values fall back to
// DisplayPort.
func (s *Switcher) Toggle() error {
	current := s.resolveCurrent()
	fmt.Fprintf(s.out, "Current input: %d (%s)\n", current, input.Source(current))

	switch current {
	case s.cfg.USBCCode:
		return s.SetDisplayPort()
	case s.cfg.DisplayPortCode:
		return s.SetUSBC()
	default:
		fmt.Fprintf(s.out, "Unknown input value %d, defaulting to DisplayPort\n", current)
		return s.SetDisplayPort()
	}
}

// resolveCurrent determines the input to toggle away from. The live read
// wins when it yields a non-zero value; otherwise the saved state is used,
// and with no saved state the current input is assumed to be USB-C. That
// last step is a usage-pattern assumption (the interactive user is normally
// connected over USB-C), not something the protocol implies.
func (s *Switcher) resolveCurrent() int {
	code, err := s.ctrl.GetInput(s.cfg.DisplayID)
	if err == nil && code != 0 {
		return code
	}
	if err != nil {
		log.Debug("live input read failed", "err", err)
	}

	saved, ok, err := s.store.Load()
	if err != nil {
		log.Warn("could not read saved state", "err", err)
	}
	if ok && err == nil {
		fmt.Fprintln(s.out, "Live input read unavailable, using saved state")
		return saved
	}

	fmt.Fprintln(s.out, "Live input read unavailable and no saved state, assuming USB-C")
	return s.cfg.USBCCode
}

// Status reports the display listing, the configured identifier, the live
// input read, the saved state when present, and the legend of known input
// codes. Failed reads are shown inline and never make Status fail.
func (s *Switcher) Status() error {
	if lines, err := s.ctrl.ListDisplays(); err != nil {
		fmt.Fprintf(s.out, "Displays: unavailable (%v)\n", err)
	} else if len(lines) > 0 {
		fmt.Fprintf(s.out, "Displays: %s\n", lines[0])
	} else {
		fmt.Fprintln(s.out, "Displays: none reported")
	}

	fmt.Fprintf(s.out, "Configured display: %s\n", s.cfg.DisplayID)

	if code, err := s.ctrl.GetInput(s.cfg.DisplayID); err != nil {
		fmt.Fprintf(s.out, "Current input: unavailable (%v)\n", err)
	} else {
		fmt.Fprintf(s.out, "Current input: %d (%s)\n", code, input.Source(code))
	}

	if code, ok, err := s.store.Load(); err != nil {
		log.Warn("could not read saved state", "err", err)
	} else if ok {
		fmt.Fprintf(s.out, "Saved state: %d (%s)\n", code, input.Source(code))
	}

	fmt.Fprintln(s.out, "Input codes:")
	for _, src := range input.Known() {
		fmt.Fprintf(s.out, "  %2d  %s\n", int(src), src)
	}
	return nil
}
