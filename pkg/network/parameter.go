package network

import (
	"math"
	"math/cmplx"
)

// Parameter is one complex network parameter value.
// The zero value is the parameter 0+0i.
type Parameter complex128

// FromRealImaginary builds a parameter from real and imaginary parts.
func FromRealImaginary(re, im float64) Parameter {
	return Parameter(complex(re, im))
}

// FromMagnitudeAngle builds a parameter from a linear magnitude and an
// angle in degrees.
func FromMagnitudeAngle(magnitude, angleDegrees float64) Parameter {
	return Parameter(cmplx.Rect(magnitude, angleDegrees*math.Pi/180))
}

// FromDecibelAngle builds a parameter from a magnitude in dB (20*log10)
// and an angle in degrees.
func FromDecibelAngle(decibels, angleDegrees float64) Parameter {
	return FromMagnitudeAngle(math.Pow(10, decibels/20), angleDegrees)
}

// Real returns the real part.
func (p Parameter) Real() float64 {
	return real(complex128(p))
}

// Imag returns the imaginary part.
func (p Parameter) Imag() float64 {
	return imag(complex128(p))
}

// Magnitude returns the linear magnitude.
func (p Parameter) Magnitude() float64 {
	return cmplx.Abs(complex128(p))
}

// Angle returns the phase angle in degrees, in (-180, 180].
func (p Parameter) Angle() float64 {
	return cmplx.Phase(complex128(p)) * 180 / math.Pi
}

// Decibels returns the magnitude in dB (20*log10).
// The zero parameter returns -Inf.
func (p Parameter) Decibels() float64 {
	return 20 * math.Log10(p.Magnitude())
}
