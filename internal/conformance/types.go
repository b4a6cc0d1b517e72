// Package conformance runs YAML-described parser scenarios against the
// Touchstone reader. Each case pairs an input document with the expected
// parse outcome, so format behavior is pinned down as data instead of
// hand-written assertions.
package conformance

// Case is a single parser scenario loaded from YAML.
type Case struct {
	// ID is the unique case identifier (e.g. "TS-ORD-001").
	ID string `yaml:"id"`

	// Name is a human-readable name for the case.
	Name string `yaml:"name"`

	// Description explains what the case validates.
	Description string `yaml:"description"`

	// Input is the Touchstone document text to parse.
	Input string `yaml:"input"`

	// SelectFrequencies, when non-empty, installs a frequency selector
	// keeping only the listed frequencies.
	SelectFrequencies []float64 `yaml:"select_frequencies,omitempty"`

	// Expect holds the expected parse outcome.
	Expect Expect `yaml:"expect"`
}

// Expect describes the outcome a case requires. At least one field must
// be set.
type Expect struct {
	// Options are the expected decoded option values.
	Options *OptionsExpect `yaml:"options,omitempty"`

	// Keywords is the expected keyword set. Fields left unset must also
	// be absent from the parse.
	Keywords *KeywordsExpect `yaml:"keywords,omitempty"`

	// PairCount, when set, is the expected number of yielded rows.
	PairCount *int `yaml:"pair_count,omitempty"`

	// Pairs are the expected rows in order. When PairCount is unset the
	// row count must match exactly.
	Pairs []PairExpect `yaml:"pairs,omitempty"`

	// Error describes an expected parse failure.
	Error *ErrorExpect `yaml:"error,omitempty"`
}

// OptionsExpect checks decoded option values. Empty fields are skipped.
type OptionsExpect struct {
	// FrequencyUnit is the canonical unit token (HZ, KHZ, MHZ, GHZ).
	FrequencyUnit string `yaml:"frequency_unit,omitempty"`

	// Parameter is the parameter type token (S, Y, Z, H, G).
	Parameter string `yaml:"parameter,omitempty"`

	// Format is the value encoding token (MA, DB, RI).
	Format string `yaml:"format,omitempty"`

	// Resistance is the reference resistance in ohms.
	Resistance *float64 `yaml:"resistance,omitempty"`
}

// KeywordsExpect checks the decoded keyword set field by field. A nil
// field requires the keyword to be absent.
type KeywordsExpect struct {
	Version                  *string   `yaml:"version,omitempty"`
	NumberOfPorts            *int      `yaml:"number_of_ports,omitempty"`
	TwoPortDataOrder         *string   `yaml:"two_port_data_order,omitempty"`
	NumberOfFrequencies      *int      `yaml:"number_of_frequencies,omitempty"`
	NumberOfNoiseFrequencies *int      `yaml:"number_of_noise_frequencies,omitempty"`
	MatrixFormat             *string   `yaml:"matrix_format,omitempty"`
	Reference                []float64 `yaml:"reference,omitempty"`
}

// PairExpect checks one yielded row.
type PairExpect struct {
	// Frequency in the document's declared unit.
	Frequency float64 `yaml:"frequency"`

	// Ports is the expected inferred port count (0 skips the check).
	Ports int `yaml:"ports,omitempty"`

	// Layout is the expected layout token (SOURCE_MAJOR or
	// DESTINATION_MAJOR).
	Layout string `yaml:"layout,omitempty"`

	// Parameters are spot checks against individual matrix entries.
	Parameters []ParameterExpect `yaml:"parameters,omitempty"`
}

// ParameterExpect checks one matrix entry. Destination and Source are
// 1-based port indices; each set value field is compared within a small
// tolerance.
type ParameterExpect struct {
	Destination int `yaml:"destination"`
	Source      int `yaml:"source"`

	Magnitude *float64 `yaml:"magnitude,omitempty"`
	Angle     *float64 `yaml:"angle,omitempty"`
	Real      *float64 `yaml:"real,omitempty"`
	Imag      *float64 `yaml:"imag,omitempty"`
	Decibels  *float64 `yaml:"decibels,omitempty"`
}

// ErrorExpect describes an expected parse failure.
type ErrorExpect struct {
	// Section is the expected error section (OPTIONS, KEYWORDS, DATA).
	// Ignored for unsupported-construct errors.
	Section string `yaml:"section,omitempty"`

	// Line is the expected 1-based line number (0 skips the check).
	Line int `yaml:"line,omitempty"`

	// Contains is a substring the error message must include.
	Contains string `yaml:"contains,omitempty"`

	// Unsupported expects an unsupported-construct error instead of a
	// parse error.
	Unsupported bool `yaml:"unsupported,omitempty"`
}

// LoadError provides details about a case loading failure.
type LoadError struct {
	// File is the path to the file that failed to load.
	File string

	// Message describes the error.
	Message string

	// Cause is the underlying error, if any.
	Cause error
}

func (e *LoadError) Error() string {
	if e.File != "" {
		return e.File + ": " + e.Message
	}
	return e.Message
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
