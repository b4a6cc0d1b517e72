package touchstone

import (
	"context"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/touchstone-rf/touchstone-go/pkg/log"
	"github.com/touchstone-rf/touchstone-go/pkg/network"
)

// nextPair pulls the next qualifying data row. It skips comments and
// selector-excluded rows, returns io.EOF when the input ends, and checks
// ctx at two points: before payload parsing and before matrix construction.
func (r *Reader) nextPair(ctx context.Context) (network.Pair, error) {
	for {
		line, ok, err := r.scanner.next()
		if err != nil {
			return network.Pair{}, err
		}
		if !ok {
			return network.Pair{}, io.EOF
		}
		if line != "" && line[0] == '!' {
			// comments are legal between data rows
			continue
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			return network.Pair{}, &ParseError{
				Section: SectionData,
				Line:    r.scanner.line,
				Message: "invalid data format",
			}
		}
		payload := fields[1:]
		ports, ok := inferPorts(len(payload))
		if !ok {
			return network.Pair{}, &ParseError{
				Section: SectionData,
				Line:    r.scanner.line,
				Message: "invalid data format",
			}
		}

		frequency, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return network.Pair{}, &ParseError{
				Section: SectionData,
				Line:    r.scanner.line,
				Message: "invalid format for frequency",
				Cause:   err,
			}
		}

		if r.settings.FrequencySelector != nil {
			selected, panicked := selectFrequency(r.settings.FrequencySelector, frequency)
			if !selected {
				r.emit(log.Event{
					Stage:    log.StageData,
					Category: log.CategorySkip,
					Line:     r.scanner.line,
					Skip:     &log.SkipEvent{Frequency: frequency, Panicked: panicked},
				})
				continue
			}
		}
		if r.settings.ParameterSelector != nil {
			return network.Pair{}, fmt.Errorf("%w: parameter selection", ErrUnsupported)
		}

		if err := ctx.Err(); err != nil {
			return network.Pair{}, err
		}

		params := make([]network.Parameter, 0, ports*ports)
		for i := 0; i < len(payload); i += 2 {
			val1, err := strconv.ParseFloat(payload[i], 64)
			if err != nil {
				return network.Pair{}, &ParseError{
					Section: SectionData,
					Line:    r.scanner.line,
					Message: "invalid data format",
					Cause:   err,
				}
			}
			val2, err := strconv.ParseFloat(payload[i+1], 64)
			if err != nil {
				return network.Pair{}, &ParseError{
					Section: SectionData,
					Line:    r.scanner.line,
					Message: "invalid data format",
					Cause:   err,
				}
			}
			params = append(params, r.opts.Format.Decode(val1, val2))
		}

		layout := network.LayoutSourceMajor
		if ports == 2 && r.keys.TwoPortDataOrder != nil && *r.keys.TwoPortDataOrder == Order21_12 {
			layout = network.LayoutDestinationMajor
		}

		if err := ctx.Err(); err != nil {
			return network.Pair{}, err
		}

		matrix, err := network.NewMatrix(params, layout)
		if err != nil {
			return network.Pair{}, &ParseError{
				Section: SectionData,
				Line:    r.scanner.line,
				Message: "invalid data format",
				Cause:   err,
			}
		}

		r.emit(log.Event{
			Stage:    log.StageData,
			Category: log.CategoryPair,
			Line:     r.scanner.line,
			Pair: &log.PairEvent{
				Frequency: frequency,
				Ports:     ports,
				Layout:    layout.String(),
			},
		})
		return network.Pair{Frequency: frequency, Matrix: matrix}, nil
	}
}

// inferPorts derives the port count from a payload token count: the count
// must be even, with half of it a perfect square.
func inferPorts(payloadLen int) (int, bool) {
	if payloadLen == 0 || payloadLen%2 != 0 {
		return 0, false
	}
	pairs := payloadLen / 2
	ports := int(math.Sqrt(float64(pairs)))
	for ports*ports < pairs {
		ports++
	}
	if ports*ports != pairs {
		return 0, false
	}
	return ports, true
}

// selectFrequency evaluates the configured selector. A selector panic
// demotes the row to "not selected" instead of propagating.
func selectFrequency(selector func(float64) bool, frequency float64) (selected, panicked bool) {
	defer func() {
		if recover() != nil {
			selected = false
			panicked = true
		}
	}()
	return selector(frequency), false
}
