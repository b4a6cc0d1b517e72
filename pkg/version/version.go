// Package version provides Touchstone format version parsing and comparison.
package version

import (
	"fmt"
	"strconv"
	"strings"
)

// Current is the newest Touchstone format revision this library understands.
// Files declaring a later major revision may carry constructs the reader
// does not recognize.
const Current = "2.0"

// FormatVersion represents a parsed "major.minor" format revision, as
// declared by a [Version] keyword line.
type FormatVersion struct {
	Major uint16
	Minor uint16
}

// Parse parses a "major.minor" version string.
func Parse(s string) (FormatVersion, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 2 {
		return FormatVersion{}, fmt.Errorf("invalid version %q: expected major.minor", s)
	}

	major, err := strconv.ParseUint(parts[0], 10, 16)
	if err != nil || parts[0] == "" {
		return FormatVersion{}, fmt.Errorf("invalid version %q: bad major component", s)
	}

	minor, err := strconv.ParseUint(parts[1], 10, 16)
	if err != nil || parts[1] == "" {
		return FormatVersion{}, fmt.Errorf("invalid version %q: bad minor component", s)
	}

	return FormatVersion{Major: uint16(major), Minor: uint16(minor)}, nil
}

// String returns the version as "major.minor".
func (v FormatVersion) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Compatible returns true if the other version has the same major revision.
func (v FormatVersion) Compatible(other FormatVersion) bool {
	return v.Major == other.Major
}
