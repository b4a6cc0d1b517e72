// Package network implements the RF network parameter data model.
//
// # Parameters
//
// A Parameter is one complex network parameter value (an S, Y, Z, H or G
// matrix entry). Parameters are stored rectangular (real/imaginary) and
// constructed from any of the three Touchstone encodings:
//
//	FromRealImaginary(re, im)    RI: real and imaginary parts
//	FromMagnitudeAngle(mag, deg) MA: linear magnitude and angle in degrees
//	FromDecibelAngle(db, deg)    DB: magnitude in dB (20*log10) and angle in degrees
//
// The accessors Real, Imag, Magnitude, Angle and Decibels expose the same
// value under each encoding. These conversions are the only matrix math this
// package performs.
//
// # Matrices
//
// A Matrix holds the N*N parameters measured at one frequency, in the flat
// order they appeared on the wire, together with the Layout that order
// follows:
//
//	LayoutSourceMajor       S11 S12 ... S1N S21 ... SNN (source index fastest)
//	LayoutDestinationMajor  S11 S21 ... SN1 S12 ... SNN (destination index fastest)
//
// Matrix.At(dst, src) resolves the conventional 1-based S-parameter index
// pair against the layout, so callers never deal with flat offsets.
//
// # Pairs
//
// A Pair couples a frequency with its Matrix. Pairs are produced once per
// data row and ownership passes to the caller.
package network
