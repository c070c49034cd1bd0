package core

import (
	"errors"
	"fmt"
)

// ErrEmptyPattern is returned when an operation needs at least one live cell
// and the grid has none.
var ErrEmptyPattern = errors.New("pattern has no live cells")

// FormatError reports malformed RLE text or a malformed rule string.
type FormatError struct {
	// Line is the 1-based input line, or 0 when not tied to a line.
	Line int
	Msg  string
}

func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("format error on line %d: %s", e.Line, e.Msg)
	}
	return "format error: " + e.Msg
}

// ValidationError reports an out-of-range configuration value.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Msg)
}
