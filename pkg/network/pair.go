package network

// Pair couples a frequency with the parameter matrix measured there.
// The frequency is in the unit the producing source declared; no scaling
// is applied.
type Pair struct {
	Frequency float64
	Matrix    *Matrix
}
