package touchstone

import (
	"strings"

	"github.com/touchstone-rf/touchstone-go/pkg/network"
)

// FrequencyUnit is the unit frequencies are expressed in.
// The zero value is the GHz default.
type FrequencyUnit uint8

const (
	// UnitGHz is the default unit.
	UnitGHz FrequencyUnit = 0
	// UnitHz is the base unit.
	UnitHz FrequencyUnit = 1
	// UnitKHz is kilohertz.
	UnitKHz FrequencyUnit = 2
	// UnitMHz is megahertz.
	UnitMHz FrequencyUnit = 3
)

// String returns the canonical unit token.
func (u FrequencyUnit) String() string {
	switch u {
	case UnitGHz:
		return "GHZ"
	case UnitHz:
		return "HZ"
	case UnitKHz:
		return "KHZ"
	case UnitMHz:
		return "MHZ"
	default:
		return "UNKNOWN"
	}
}

// Multiplier returns the factor that converts a frequency in this unit to Hz.
// Yielded frequencies are never scaled automatically; this is the contract
// for callers that want Hz.
func (u FrequencyUnit) Multiplier() float64 {
	switch u {
	case UnitHz:
		return 1
	case UnitKHz:
		return 1e3
	case UnitMHz:
		return 1e6
	default:
		return 1e9
	}
}

// ParseFrequencyUnit matches an options-line token case-insensitively.
func ParseFrequencyUnit(token string) (FrequencyUnit, bool) {
	switch strings.ToUpper(token) {
	case "HZ":
		return UnitHz, true
	case "KHZ":
		return UnitKHz, true
	case "MHZ":
		return UnitMHz, true
	case "GHZ":
		return UnitGHz, true
	default:
		return 0, false
	}
}

// ParameterType is the network parameter family a document carries.
// The zero value is the S-parameter default.
type ParameterType uint8

const (
	// ParameterScattering is the S-parameter default.
	ParameterScattering ParameterType = 0
	// ParameterAdmittance is Y.
	ParameterAdmittance ParameterType = 1
	// ParameterImpedance is Z.
	ParameterImpedance ParameterType = 2
	// ParameterHybridH is H.
	ParameterHybridH ParameterType = 3
	// ParameterHybridG is G.
	ParameterHybridG ParameterType = 4
)

// String returns the canonical parameter token.
func (p ParameterType) String() string {
	switch p {
	case ParameterScattering:
		return "S"
	case ParameterAdmittance:
		return "Y"
	case ParameterImpedance:
		return "Z"
	case ParameterHybridH:
		return "H"
	case ParameterHybridG:
		return "G"
	default:
		return "UNKNOWN"
	}
}

// ParseParameterType matches an options-line token case-insensitively.
func ParseParameterType(token string) (ParameterType, bool) {
	switch strings.ToUpper(token) {
	case "S":
		return ParameterScattering, true
	case "Y":
		return ParameterAdmittance, true
	case "Z":
		return ParameterImpedance, true
	case "H":
		return ParameterHybridH, true
	case "G":
		return ParameterHybridG, true
	default:
		return 0, false
	}
}

// Format is the pairwise value encoding of data rows.
// The zero value is the magnitude/angle default.
type Format uint8

const (
	// FormatMagnitudeAngle encodes (linear magnitude, angle in degrees).
	FormatMagnitudeAngle Format = 0
	// FormatDecibelAngle encodes (magnitude in dB, angle in degrees).
	FormatDecibelAngle Format = 1
	// FormatRealImaginary encodes (real part, imaginary part).
	FormatRealImaginary Format = 2
)

// String returns the canonical format token.
func (f Format) String() string {
	switch f {
	case FormatMagnitudeAngle:
		return "MA"
	case FormatDecibelAngle:
		return "DB"
	case FormatRealImaginary:
		return "RI"
	default:
		return "UNKNOWN"
	}
}

// ParseFormat matches an options-line token case-insensitively.
func ParseFormat(token string) (Format, bool) {
	switch strings.ToUpper(token) {
	case "MA":
		return FormatMagnitudeAngle, true
	case "DB":
		return FormatDecibelAngle, true
	case "RI":
		return FormatRealImaginary, true
	default:
		return 0, false
	}
}

// Decode converts one value pair from a data row into a parameter.
func (f Format) Decode(val1, val2 float64) network.Parameter {
	switch f {
	case FormatDecibelAngle:
		return network.FromDecibelAngle(val1, val2)
	case FormatRealImaginary:
		return network.FromRealImaginary(val1, val2)
	default:
		return network.FromMagnitudeAngle(val1, val2)
	}
}

// Encode converts a parameter back into its data-row value pair.
func (f Format) Encode(p network.Parameter) (val1, val2 float64) {
	switch f {
	case FormatDecibelAngle:
		return p.Decibels(), p.Angle()
	case FormatRealImaginary:
		return p.Real(), p.Imag()
	default:
		return p.Magnitude(), p.Angle()
	}
}

// Options holds the values of the single honored # options line.
type Options struct {
	// FrequencyUnit scales data-row frequencies. Default GHz.
	FrequencyUnit FrequencyUnit

	// Parameter is the network parameter family. Default S.
	Parameter ParameterType

	// Format is the value pair encoding. Default MA.
	Format Format

	// Resistance is the reference resistance in ohms. Default 50.
	Resistance float64
}

// DefaultOptions returns the documented defaults: GHz, S-parameters,
// magnitude/angle pairs, 50 ohm reference resistance. They apply when a
// document has no options line, and for any token the line omits.
func DefaultOptions() Options {
	return Options{Resistance: 50}
}
