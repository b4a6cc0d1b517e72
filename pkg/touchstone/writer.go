package touchstone

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/touchstone-rf/touchstone-go/pkg/network"
)

// ErrKeywordsAfterData reports keywords written after the first data row.
var ErrKeywordsAfterData = errors.New("touchstone: keywords must precede data rows")

// Writer emits a Touchstone document: comment lines, one options line,
// optional keyword lines, then one data row per pair. Rows are always
// written source-port-major regardless of the matrices' layout, so
// emitted documents never need a [Two-Port Data Order] keyword to be
// read back correctly.
type Writer struct {
	w           io.Writer
	opts        Options
	optionsDone bool
	ports       int // fixed by the first row
	wroteData   bool
}

// NewWriter returns a Writer that emits rows under the given options.
func NewWriter(w io.Writer, opts Options) *Writer {
	return &Writer{w: w, opts: opts}
}

// WriteComment writes one ! comment line. Line breaks in text start new
// comment lines.
func (w *Writer) WriteComment(text string) error {
	for _, line := range strings.Split(text, "\n") {
		if _, err := fmt.Fprintf(w.w, "! %s\n", line); err != nil {
			return err
		}
	}
	return nil
}

// WriteKeywords emits keyword lines for every set field. It must be
// called before the first row. A set TwoPortDataOrder is always written
// as 12_21, matching the layout the writer produces.
func (w *Writer) WriteKeywords(keys Keywords) error {
	if w.wroteData {
		return ErrKeywordsAfterData
	}
	if err := w.ensureOptions(); err != nil {
		return err
	}
	if keys.Version != nil {
		if err := w.keyword("Version", *keys.Version); err != nil {
			return err
		}
	}
	if keys.NumberOfPorts != nil {
		if err := w.keyword("Number of Ports", strconv.Itoa(*keys.NumberOfPorts)); err != nil {
			return err
		}
	}
	if keys.TwoPortDataOrder != nil {
		if err := w.keyword("Two-Port Data Order", Order12_21.String()); err != nil {
			return err
		}
	}
	if keys.NumberOfFrequencies != nil {
		if err := w.keyword("Number of Frequencies", strconv.Itoa(*keys.NumberOfFrequencies)); err != nil {
			return err
		}
	}
	if keys.NumberOfNoiseFrequencies != nil {
		if err := w.keyword("Number of Noise Frequencies", strconv.Itoa(*keys.NumberOfNoiseFrequencies)); err != nil {
			return err
		}
	}
	if keys.MatrixFormat != nil {
		if err := w.keyword("Matrix Format", keys.MatrixFormat.String()); err != nil {
			return err
		}
	}
	if keys.Reference != nil {
		values := make([]string, len(keys.Reference))
		for i, ref := range keys.Reference {
			values[i] = formatValue(ref)
		}
		if err := w.keyword("Reference", strings.Join(values, " ")); err != nil {
			return err
		}
	}
	return nil
}

// WritePair emits one data row. The first row fixes the port count;
// later rows must match it.
func (w *Writer) WritePair(pair network.Pair) error {
	if pair.Matrix == nil {
		return fmt.Errorf("touchstone: nil matrix at frequency %s", formatValue(pair.Frequency))
	}
	if err := w.ensureOptions(); err != nil {
		return err
	}

	ports := pair.Matrix.Ports()
	if w.ports == 0 {
		w.ports = ports
	} else if ports != w.ports {
		return fmt.Errorf("touchstone: port count changed from %d to %d", w.ports, ports)
	}

	row := make([]string, 0, 1+2*ports*ports)
	row = append(row, formatValue(pair.Frequency))
	for dst := 1; dst <= ports; dst++ {
		for src := 1; src <= ports; src++ {
			p, err := pair.Matrix.At(dst, src)
			if err != nil {
				return err
			}
			val1, val2 := w.opts.Format.Encode(p)
			row = append(row, formatValue(val1), formatValue(val2))
		}
	}
	if _, err := fmt.Fprintln(w.w, strings.Join(row, " ")); err != nil {
		return err
	}
	w.wroteData = true
	return nil
}

// ensureOptions writes the options line once, before any keyword or row.
func (w *Writer) ensureOptions() error {
	if w.optionsDone {
		return nil
	}
	_, err := fmt.Fprintf(w.w, "# %s %s %s R %s\n",
		w.opts.FrequencyUnit, w.opts.Parameter, w.opts.Format, formatValue(w.opts.Resistance))
	if err != nil {
		return err
	}
	w.optionsDone = true
	return nil
}

func (w *Writer) keyword(name, value string) error {
	_, err := fmt.Fprintf(w.w, "[%s] %s\n", name, value)
	return err
}

// formatValue renders a float the shortest way that parses back exactly.
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
