package session

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidName is wrapped by every ValidateName failure.
var ErrInvalidName = errors.New("invalid session name")

const maxNameLen = 64

var (
	nameRegexp  = regexp.MustCompile(`^[a-z0-9_-]{1,64}$`)
	invalidRuns = regexp.MustCompile(`[^a-z0-9_-]+`)
)

// ValidateName reports whether name can be used as a session directory.
// When a close valid form exists the error suggests it.
func ValidateName(name string) error {
	if nameRegexp.MatchString(name) {
		return nil
	}
	if s := Suggest(name); s != "" {
		return fmt.Errorf("%w %q (try %q)", ErrInvalidName, name, s)
	}
	return fmt.Errorf("%w %q: use 1-64 of a-z, 0-9, '-' or '_'", ErrInvalidName, name)
}

// Suggest lower-cases name and collapses disallowed runs into '-'. It
// returns "" when nothing usable is left.
func Suggest(name string) string {
	s := invalidRuns.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "-")
	s = strings.Trim(s, "-")
	if len(s) > maxNameLen {
		s = strings.TrimRight(s[:maxNameLen], "-")
	}
	return s
}
