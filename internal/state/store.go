package state

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
)

// Store persists the last input code successfully applied to the monitor.
// The record is a single decimal integer in a plain file, overwritten on
// every successful switch. There is no locking; concurrent writers race and
// the last one wins, which is acceptable for one interactive user.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string {
	return s.path
}

// Load returns the saved input code. ok is false when no state has been
// recorded yet.
func (s *Store) Load() (code int, ok bool, err error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	code, err = strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, false, fmt.Errorf("corrupt state file %s: %w", s.path, err)
	}
	return code, true, nil
}

// Save overwrites the record with code.
func (s *Store) Save(code int) error {
	return os.WriteFile(s.path, []byte(strconv.Itoa(code)+"\n"), 0o644)
}
