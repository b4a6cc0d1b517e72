package touchstone

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnsupported reports a recognized Touchstone construct this library
	// does not implement. It is never wrapped inside a ParseError, so
	// callers can tell unimplemented constructs from malformed input.
	ErrUnsupported = errors.New("unsupported Touchstone construct")

	// ErrClosed reports use of a Reader after Close.
	ErrClosed = errors.New("touchstone: reader is closed")
)

// Section identifies the part of a document a ParseError belongs to.
type Section uint8

const (
	// SectionOptions covers the # options line.
	SectionOptions Section = 0
	// SectionKeywords covers [Keyword] Value lines.
	SectionKeywords Section = 1
	// SectionData covers data rows.
	SectionData Section = 2
)

// String returns the section name.
func (s Section) String() string {
	switch s {
	case SectionOptions:
		return "OPTIONS"
	case SectionKeywords:
		return "KEYWORDS"
	case SectionData:
		return "DATA"
	default:
		return "UNKNOWN"
	}
}

// ParseError reports malformed Touchstone input. It carries the failing
// section, the 1-based input line and an optional underlying cause
// (typically a strconv failure).
type ParseError struct {
	Section Section
	Line    int
	Message string
	Cause   error
}

// Error implements error.
func (e *ParseError) Error() string {
	msg := fmt.Sprintf("touchstone: %s error at line %d: %s",
		strings.ToLower(e.Section.String()), e.Line, e.Message)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause, if any.
func (e *ParseError) Unwrap() error {
	return e.Cause
}
