package shapecheck

import (
	"errors"
	"fmt"
)

// Error codes (exported consts for IDE completion and type safety by convention).
// Every failure carries exactly one of the two:
//
//   - CodeInvalidConfig: the pattern or the checker setup is malformed. The
//     caller's schema is broken, not the data.
//   - CodeInvalidInputPattern: the data does not match a well-formed pattern.
const (
	CodeInvalidConfig       = "INVALID_CONFIG"
	CodeInvalidInputPattern = "INVALID_INPUT_PATTERN"
)

// Error is the single failure type returned by every check. A validation
// either returns nil or exactly one *Error; checking is fail-fast and never
// accumulates.
type Error struct {
	Code    string
	Status  int    // HTTP-style status: 500 for config errors, 400 for input errors.
	Path    string // Display path of the offending value (for example: value.items[2]).
	Message string
}

func (e *Error) Error() string { return e.Message }

// NewConfigError reports a malformed pattern or setup problem. The path may
// be empty when the failure is not tied to a location in the checked value.
func NewConfigError(path, format string, args ...any) *Error {
	return &Error{
		Code:    CodeInvalidConfig,
		Status:  500,
		Path:    path,
		Message: fmt.Sprintf(format, args...),
	}
}

// NewInputError reports data that violates a well-formed pattern.
func NewInputError(path, format string, args ...any) *Error {
	return &Error{
		Code:    CodeInvalidInputPattern,
		Status:  400,
		Path:    path,
		Message: fmt.Sprintf(format, args...),
	}
}

// AsError extracts an *Error from err using errors.As internally.
func AsError(err error) (*Error, bool) {
	if err == nil {
		return nil, false
	}
	var se *Error
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}

// IsConfigError reports whether err is a pattern/setup failure.
func IsConfigError(err error) bool {
	se, ok := AsError(err)
	return ok && se.Code == CodeInvalidConfig
}

// IsInputError reports whether err is a data failure.
func IsInputError(err error) bool {
	se, ok := AsError(err)
	return ok && se.Code == CodeInvalidInputPattern
}
