package ddc

import (
	"errors"
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

// Tool drives an external DDC/CI binary with the m1ddc argument grammar.
// Every invocation is attempted exactly once; there are no retries and no
// timeouts, so a hanging tool blocks the caller.
type Tool struct {
	bin string
}

func NewTool(bin string) *Tool {
	return &Tool{bin: bin}
}

// Available resolves the binary on PATH and returns its absolute path.
func (t *Tool) Available() (string, error) {
	return exec.LookPath(t.bin)
}

func (t *Tool) ListDisplays() ([]string, error) {
	out, err := t.run("display", "list")
	if err != nil {
		return nil, err
	}
	out = strings.TrimRight(out, "\n")
	if out == "" {
		return nil, nil
	}
	return strings.Split(out, "\n"), nil
}

func (t *Tool) GetInput(displayID string) (int, error) {
	out, err := t.run("display", displayID, "get", "input")
	if err != nil {
		return 0, err
	}
	return parseInputValue(out)
}

func (t *Tool) SetInput(displayID string, code int) error {
	_, err := t.run("display", displayID, "set", "input", strconv.Itoa(code))
	return err
}

func (t *Tool) run(args ...string) (string, error) {
	log.Debug("exec", "bin", t.bin, "args", strings.Join(args, " "))
	out, err := exec.Command(t.bin, args...).Output()
	if err != nil {
		var ee *exec.ExitError
		if errors.As(err, &ee) {
			return "", &ExitError{Tool: t.bin, Code: ee.ExitCode()}
		}
		return "", fmt.Errorf("run %s: %w", t.bin, err)
	}
	return string(out), nil
}

// m1ddc answers either with a bare integer or with a "input: N" style line
// depending on version.
var inputValuePatterns = []*regexp.Regexp{
	regexp.MustCompile(`input:\s*(\d+)`),
	regexp.MustCompile(`^\s*(\d+)\s*$`),
}

func parseInputValue(out string) (int, error) {
	out = strings.TrimSpace(out)
	for _, re := range inputValuePatterns {
		if matches := re.FindStringSubmatch(out); len(matches) > 1 {
			return strconv.Atoi(matches[1])
		}
	}
	return 0, fmt.Errorf("could not parse input value from output: %q", out)
}
