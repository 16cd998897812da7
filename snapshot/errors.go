package snapshot

import (
	"errors"
	"fmt"
)

var (
	// ErrFileNotFound reports that a snapshot path does not resolve to a
	// readable file.
	ErrFileNotFound = errors.New("snapshot file not found")

	// ErrMalformedCSV reports a structural problem in a snapshot: a missing
	// header, an inconsistent field count or a CSV syntax error such as an
	// unterminated quoted field.
	ErrMalformedCSV = errors.New("malformed csv")
)

// MalformedError describes where a snapshot failed to parse.
type MalformedError struct {
	// Source names the input (a file path, or the source tag for readers).
	Source string
	// Line is the 1-based line of the offending row, or 0 when unknown.
	Line   int
	Reason string
	Err    error
}

func (e *MalformedError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s: %s:%d: %s", ErrMalformedCSV, e.Source, e.Line, e.Reason)
	}
	return fmt.Sprintf("%s: %s: %s", ErrMalformedCSV, e.Source, e.Reason)
}

func (e *MalformedError) Unwrap() error { return e.Err }

// Is makes every MalformedError match ErrMalformedCSV.
func (e *MalformedError) Is(target error) bool { return target == ErrMalformedCSV }

func malformed(source string, line int, err error, format string, args ...any) *MalformedError {
	return &MalformedError{Source: source, Line: line, Reason: fmt.Sprintf(format, args...), Err: err}
}
