package touchstone

import (
	"fmt"
	"strconv"
	"strings"
)

// TwoPortOrder is the value of a [Two-Port Data Order] keyword, naming the
// order of the middle parameter pair in two-port rows.
type TwoPortOrder uint8

const (
	// Order12_21 is the default row layout: S11 S12 S21 S22.
	Order12_21 TwoPortOrder = 0
	// Order21_12 swaps the middle pair: S11 S21 S12 S22.
	Order21_12 TwoPortOrder = 1
)

// String returns the keyword value token.
func (o TwoPortOrder) String() string {
	switch o {
	case Order12_21:
		return "12_21"
	case Order21_12:
		return "21_12"
	default:
		return "UNKNOWN"
	}
}

// ParseTwoPortOrder matches a keyword value token.
func ParseTwoPortOrder(token string) (TwoPortOrder, bool) {
	switch token {
	case "12_21":
		return Order12_21, true
	case "21_12":
		return Order21_12, true
	default:
		return 0, false
	}
}

// MatrixFormat is the value of a [Matrix Format] keyword.
type MatrixFormat uint8

const (
	// MatrixFull lists every matrix element.
	MatrixFull MatrixFormat = 0
	// MatrixLower lists the lower triangle of a symmetric matrix.
	MatrixLower MatrixFormat = 1
	// MatrixUpper lists the upper triangle of a symmetric matrix.
	MatrixUpper MatrixFormat = 2
)

// String returns the keyword value token.
func (m MatrixFormat) String() string {
	switch m {
	case MatrixFull:
		return "FULL"
	case MatrixLower:
		return "LOWER"
	case MatrixUpper:
		return "UPPER"
	default:
		return "UNKNOWN"
	}
}

// ParseMatrixFormat matches a keyword value token case-insensitively.
func ParseMatrixFormat(token string) (MatrixFormat, bool) {
	switch strings.ToUpper(token) {
	case "FULL":
		return MatrixFull, true
	case "LOWER":
		return MatrixLower, true
	case "UPPER":
		return MatrixUpper, true
	default:
		return 0, false
	}
}

// Keywords holds the optional [Keyword] Value metadata lines of a header.
// Nil fields mean the keyword was absent. Keyword values are metadata
// only: in particular NumberOfPorts never overrides the port count
// inferred from data rows.
type Keywords struct {
	Version                  *string
	NumberOfPorts            *int
	TwoPortDataOrder         *TwoPortOrder
	NumberOfFrequencies      *int
	NumberOfNoiseFrequencies *int
	MatrixFormat             *MatrixFormat
	Reference                []float64
}

// keywordKind tags how a keyword value converts, for error reporting.
type keywordKind uint8

const (
	kindString keywordKind = iota
	kindInt
	kindTwoPortOrder
	kindMatrixFormat
	kindFloatList
)

// String names the kind the way bad-value errors cite it.
func (k keywordKind) String() string {
	switch k {
	case kindInt:
		return "integer"
	case kindTwoPortOrder:
		return "order"
	case kindMatrixFormat:
		return "matrix format"
	case kindFloatList:
		return "float list"
	default:
		return "string"
	}
}

// keywordEntry ties a keyword name to its value conversion and destination
// field. Conversion failures surface as bad-value errors with the cause.
type keywordEntry struct {
	kind   keywordKind
	assign func(k *Keywords, value string) error
}

// keywordTable maps lowercased keyword names to their entries. It is built
// once; lookups are case-insensitive via lookupKeyword.
var keywordTable = map[string]keywordEntry{
	"version": {kindString, func(k *Keywords, value string) error {
		k.Version = &value
		return nil
	}},
	"number of ports": {kindInt, func(k *Keywords, value string) error {
		n, err := strconv.Atoi(value)
		if err != nil {
			return err
		}
		k.NumberOfPorts = &n
		return nil
	}},
	"two-port data order": {kindTwoPortOrder, func(k *Keywords, value string) error {
		order, ok := ParseTwoPortOrder(value)
		if !ok {
			return errBadEnumToken(value)
		}
		k.TwoPortDataOrder = &order
		return nil
	}},
	"number of frequencies": {kindInt, func(k *Keywords, value string) error {
		n, err := strconv.Atoi(value)
		if err != nil {
			return err
		}
		k.NumberOfFrequencies = &n
		return nil
	}},
	"number of noise frequencies": {kindInt, func(k *Keywords, value string) error {
		n, err := strconv.Atoi(value)
		if err != nil {
			return err
		}
		k.NumberOfNoiseFrequencies = &n
		return nil
	}},
	"matrix format": {kindMatrixFormat, func(k *Keywords, value string) error {
		format, ok := ParseMatrixFormat(value)
		if !ok {
			return errBadEnumToken(value)
		}
		k.MatrixFormat = &format
		return nil
	}},
	"reference": {kindFloatList, func(k *Keywords, value string) error {
		fields := strings.Fields(value)
		refs := make([]float64, 0, len(fields))
		for _, field := range fields {
			ref, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return err
			}
			refs = append(refs, ref)
		}
		k.Reference = refs
		return nil
	}},
}

// lookupKeyword resolves a keyword name case-insensitively.
func lookupKeyword(name string) (keywordEntry, bool) {
	entry, ok := keywordTable[strings.ToLower(name)]
	return entry, ok
}

// errBadEnumToken is the conversion cause for an unrecognized value token.
func errBadEnumToken(token string) error {
	return fmt.Errorf("unrecognized value %q", token)
}
