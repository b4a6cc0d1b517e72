package network

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrParameterCount indicates a parameter slice whose length is not a
	// positive perfect square.
	ErrParameterCount = errors.New("parameter count is not a positive perfect square")

	// ErrPortRange indicates a port index outside [1, Ports()].
	ErrPortRange = errors.New("port index out of range")
)

// Layout describes the flat ordering of matrix parameters.
type Layout uint8

const (
	// LayoutSourceMajor orders parameters with the source port index varying
	// fastest: S11 S12 ... S1N S21 ... SNN.
	LayoutSourceMajor Layout = 0

	// LayoutDestinationMajor orders parameters with the destination port
	// index varying fastest: S11 S21 ... SN1 S12 ... SNN.
	LayoutDestinationMajor Layout = 1
)

// String returns the layout name.
func (l Layout) String() string {
	switch l {
	case LayoutSourceMajor:
		return "SOURCE_MAJOR"
	case LayoutDestinationMajor:
		return "DESTINATION_MAJOR"
	default:
		return "UNKNOWN"
	}
}

// Matrix holds the N*N network parameters measured at one frequency.
// Parameters are stored in the flat order they appeared on the wire;
// At resolves port index pairs against the layout.
type Matrix struct {
	params []Parameter
	ports  int
	layout Layout
}

// NewMatrix builds a matrix from a flat parameter slice in the given layout.
// The port count is inferred from the length, which must be a positive
// perfect square.
func NewMatrix(params []Parameter, layout Layout) (*Matrix, error) {
	count := len(params)
	if count == 0 {
		return nil, fmt.Errorf("%w: got 0 values", ErrParameterCount)
	}
	ports := int(math.Sqrt(float64(count)))
	for ports*ports < count {
		ports++
	}
	if ports*ports != count {
		return nil, fmt.Errorf("%w: got %d values", ErrParameterCount, count)
	}
	return &Matrix{params: params, ports: ports, layout: layout}, nil
}

// Ports returns the inferred port count N.
func (m *Matrix) Ports() int {
	return m.ports
}

// Layout returns the flat ordering of the parameter slice.
func (m *Matrix) Layout() Layout {
	return m.layout
}

// Parameters returns the underlying parameter slice in layout order.
func (m *Matrix) Parameters() []Parameter {
	return m.params
}

// At returns the parameter S(dst,src) using the conventional 1-based
// S-parameter indices: dst is the port the response is measured at,
// src the port being excited.
func (m *Matrix) At(dst, src int) (Parameter, error) {
	if dst < 1 || dst > m.ports || src < 1 || src > m.ports {
		return 0, fmt.Errorf("%w: (%d,%d) for %d-port matrix", ErrPortRange, dst, src, m.ports)
	}
	var idx int
	switch m.layout {
	case LayoutDestinationMajor:
		idx = (src-1)*m.ports + (dst - 1)
	default:
		idx = (dst-1)*m.ports + (src - 1)
	}
	return m.params[idx], nil
}
