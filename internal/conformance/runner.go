package conformance

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/touchstone-rf/touchstone-go/pkg/network"
	"github.com/touchstone-rf/touchstone-go/pkg/touchstone"
)

// tolerance bounds value comparisons; case data carries far fewer digits
// than float64.
const tolerance = 1e-9

// Run executes one conformance case against the parser.
func Run(t *testing.T, tc *Case) {
	t.Helper()

	var settings touchstone.Settings
	if len(tc.SelectFrequencies) > 0 {
		keep := make(map[float64]bool, len(tc.SelectFrequencies))
		for _, f := range tc.SelectFrequencies {
			keep[f] = true
		}
		settings.FrequencySelector = func(frequency float64) bool {
			return keep[frequency]
		}
	}

	r, err := touchstone.OpenStringWithSettings(tc.Input, settings)
	if err != nil {
		// header-stage failure
		checkError(t, tc.Expect.Error, err)
		return
	}
	defer r.Close()

	pairs, err := r.All(context.Background())
	if tc.Expect.Error != nil {
		require.Error(t, err, "expected the parse to fail")
		checkError(t, tc.Expect.Error, err)
	} else {
		require.NoError(t, err)
	}

	if tc.Expect.Options != nil {
		checkOptions(t, tc.Expect.Options, r.Options())
	}
	if tc.Expect.Keywords != nil {
		checkKeywords(t, tc.Expect.Keywords, r.Keywords())
	}

	if tc.Expect.PairCount != nil {
		assert.Len(t, pairs, *tc.Expect.PairCount)
	} else if len(tc.Expect.Pairs) > 0 {
		require.Len(t, pairs, len(tc.Expect.Pairs))
	}
	for i, want := range tc.Expect.Pairs {
		if i >= len(pairs) {
			break
		}
		checkPair(t, want, pairs[i])
	}
}

func checkError(t *testing.T, want *ErrorExpect, err error) {
	t.Helper()
	require.NotNil(t, want, "parse failed without an error expectation: %v", err)

	if want.Unsupported {
		assert.ErrorIs(t, err, touchstone.ErrUnsupported)
		var parseErr *touchstone.ParseError
		assert.False(t, errors.As(err, &parseErr),
			"unsupported constructs must not surface as parse errors")
		if want.Contains != "" {
			assert.Contains(t, err.Error(), want.Contains)
		}
		return
	}

	var parseErr *touchstone.ParseError
	require.ErrorAs(t, err, &parseErr)
	if want.Section != "" {
		assert.Equal(t, strings.ToUpper(want.Section), parseErr.Section.String())
	}
	if want.Line > 0 {
		assert.Equal(t, want.Line, parseErr.Line)
	}
	if want.Contains != "" {
		assert.Contains(t, err.Error(), want.Contains)
	}
}

func checkOptions(t *testing.T, want *OptionsExpect, got touchstone.Options) {
	t.Helper()
	if want.FrequencyUnit != "" {
		assert.Equal(t, want.FrequencyUnit, got.FrequencyUnit.String())
	}
	if want.Parameter != "" {
		assert.Equal(t, want.Parameter, got.Parameter.String())
	}
	if want.Format != "" {
		assert.Equal(t, want.Format, got.Format.String())
	}
	if want.Resistance != nil {
		assert.Equal(t, *want.Resistance, got.Resistance)
	}
}

func checkKeywords(t *testing.T, want *KeywordsExpect, got touchstone.Keywords) {
	t.Helper()

	if want.Version == nil {
		assert.Nil(t, got.Version, "[Version] must be absent")
	} else if assert.NotNil(t, got.Version, "[Version] must be present") {
		assert.Equal(t, *want.Version, *got.Version)
	}

	if want.NumberOfPorts == nil {
		assert.Nil(t, got.NumberOfPorts, "[Number of Ports] must be absent")
	} else if assert.NotNil(t, got.NumberOfPorts, "[Number of Ports] must be present") {
		assert.Equal(t, *want.NumberOfPorts, *got.NumberOfPorts)
	}

	if want.TwoPortDataOrder == nil {
		assert.Nil(t, got.TwoPortDataOrder, "[Two-Port Data Order] must be absent")
	} else if assert.NotNil(t, got.TwoPortDataOrder, "[Two-Port Data Order] must be present") {
		assert.Equal(t, *want.TwoPortDataOrder, got.TwoPortDataOrder.String())
	}

	if want.NumberOfFrequencies == nil {
		assert.Nil(t, got.NumberOfFrequencies, "[Number of Frequencies] must be absent")
	} else if assert.NotNil(t, got.NumberOfFrequencies, "[Number of Frequencies] must be present") {
		assert.Equal(t, *want.NumberOfFrequencies, *got.NumberOfFrequencies)
	}

	if want.NumberOfNoiseFrequencies == nil {
		assert.Nil(t, got.NumberOfNoiseFrequencies, "[Number of Noise Frequencies] must be absent")
	} else if assert.NotNil(t, got.NumberOfNoiseFrequencies, "[Number of Noise Frequencies] must be present") {
		assert.Equal(t, *want.NumberOfNoiseFrequencies, *got.NumberOfNoiseFrequencies)
	}

	if want.MatrixFormat == nil {
		assert.Nil(t, got.MatrixFormat, "[Matrix Format] must be absent")
	} else if assert.NotNil(t, got.MatrixFormat, "[Matrix Format] must be present") {
		assert.Equal(t, strings.ToUpper(*want.MatrixFormat), got.MatrixFormat.String())
	}

	assert.Equal(t, want.Reference, got.Reference)
}

func checkPair(t *testing.T, want PairExpect, got network.Pair) {
	t.Helper()

	assert.Equal(t, want.Frequency, got.Frequency)
	if want.Ports > 0 {
		assert.Equal(t, want.Ports, got.Matrix.Ports())
	}
	if want.Layout != "" {
		assert.Equal(t, want.Layout, got.Matrix.Layout().String())
	}

	for _, pe := range want.Parameters {
		p, err := got.Matrix.At(pe.Destination, pe.Source)
		if !assert.NoError(t, err, "At(%d,%d)", pe.Destination, pe.Source) {
			continue
		}
		if pe.Magnitude != nil {
			assert.InDelta(t, *pe.Magnitude, p.Magnitude(), tolerance,
				"S(%d,%d) magnitude", pe.Destination, pe.Source)
		}
		if pe.Angle != nil {
			assert.InDelta(t, *pe.Angle, p.Angle(), tolerance,
				"S(%d,%d) angle", pe.Destination, pe.Source)
		}
		if pe.Real != nil {
			assert.InDelta(t, *pe.Real, p.Real(), tolerance,
				"S(%d,%d) real part", pe.Destination, pe.Source)
		}
		if pe.Imag != nil {
			assert.InDelta(t, *pe.Imag, p.Imag(), tolerance,
				"S(%d,%d) imaginary part", pe.Destination, pe.Source)
		}
		if pe.Decibels != nil {
			assert.InDelta(t, *pe.Decibels, p.Decibels(), tolerance,
				"S(%d,%d) decibels", pe.Destination, pe.Source)
		}
	}
}
