package log

import (
	"time"
)

// Event represents one parse trace event.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// ReaderID uniquely identifies the reader run (UUID).
	ReaderID string `cbor:"2,keyasint"`

	// Source names the input: a file path, "<string>" or "<reader>".
	Source string `cbor:"3,keyasint,omitempty"`

	// Stage is the parse stage the event belongs to.
	Stage Stage `cbor:"4,keyasint"`

	// Category classifies the event type.
	Category Category `cbor:"5,keyasint"`

	// Line is the 1-based input line the event refers to.
	Line int `cbor:"6,keyasint,omitempty"`

	// Type-specific payload (one of these will be set).
	Options *OptionsEvent   `cbor:"7,keyasint,omitempty"`  // Options line decoded
	Keyword *KeywordEvent   `cbor:"8,keyasint,omitempty"`  // Keyword line decoded
	Pair    *PairEvent      `cbor:"9,keyasint,omitempty"`  // Row yielded
	Skip    *SkipEvent      `cbor:"10,keyasint,omitempty"` // Row excluded by selector
	Error   *ErrorEventData `cbor:"11,keyasint,omitempty"` // Terminal failure
}

// Stage indicates which parse stage produced the event.
type Stage uint8

const (
	// StageHeader covers comment, options and keyword lines.
	StageHeader Stage = 0
	// StageData covers data rows.
	StageData Stage = 1
)

// String returns the stage name.
func (s Stage) String() string {
	switch s {
	case StageHeader:
		return "HEADER"
	case StageData:
		return "DATA"
	default:
		return "UNKNOWN"
	}
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryOptions indicates an options line was decoded.
	CategoryOptions Category = 0
	// CategoryKeyword indicates a keyword line was decoded.
	CategoryKeyword Category = 1
	// CategoryPair indicates a data row was yielded.
	CategoryPair Category = 2
	// CategorySkip indicates a data row was excluded by a selector.
	CategorySkip Category = 3
	// CategoryError indicates parsing stopped with an error.
	CategoryError Category = 4
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryOptions:
		return "OPTIONS"
	case CategoryKeyword:
		return "KEYWORD"
	case CategoryPair:
		return "PAIR"
	case CategorySkip:
		return "SKIP"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// OptionsEvent captures a decoded options line. Enum values are recorded
// as their canonical tokens so trace files stay self-describing.
type OptionsEvent struct {
	// FrequencyUnit is the canonical unit token (HZ, KHZ, MHZ, GHZ).
	FrequencyUnit string `cbor:"1,keyasint"`

	// Parameter is the parameter type token (S, Y, Z, H, G).
	Parameter string `cbor:"2,keyasint"`

	// Format is the value encoding token (MA, DB, RI).
	Format string `cbor:"3,keyasint"`

	// Resistance is the reference resistance in ohms.
	Resistance float64 `cbor:"4,keyasint"`

	// Ignored marks an options line after the first; it was validated
	// but not applied.
	Ignored bool `cbor:"5,keyasint,omitempty"`
}

// KeywordEvent captures a decoded keyword line.
type KeywordEvent struct {
	// Name is the keyword name as written, without brackets.
	Name string `cbor:"1,keyasint"`

	// Value is the raw value text.
	Value string `cbor:"2,keyasint,omitempty"`
}

// PairEvent captures a yielded data row.
type PairEvent struct {
	// Frequency in the source's declared unit (unscaled).
	Frequency float64 `cbor:"1,keyasint"`

	// Ports is the inferred port count.
	Ports int `cbor:"2,keyasint"`

	// Layout is the matrix layout name.
	Layout string `cbor:"3,keyasint,omitempty"`
}

// SkipEvent captures a data row excluded by the frequency selector.
type SkipEvent struct {
	// Frequency in the source's declared unit (unscaled).
	Frequency float64 `cbor:"1,keyasint"`

	// Panicked marks a selector panic, which excludes the row.
	Panicked bool `cbor:"2,keyasint,omitempty"`
}

// ErrorEventData captures a terminal parse failure.
type ErrorEventData struct {
	// Message is the error text.
	Message string `cbor:"1,keyasint"`

	// Section names the failing section (OPTIONS, KEYWORDS, DATA) for
	// format errors; empty otherwise.
	Section string `cbor:"2,keyasint,omitempty"`

	// Unsupported marks a recognized-but-unimplemented construct rather
	// than malformed input.
	Unsupported bool `cbor:"3,keyasint,omitempty"`
}
