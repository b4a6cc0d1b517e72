// Package commands implements the snp CLI commands.
package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/touchstone-rf/touchstone-go/pkg/log"
	"github.com/touchstone-rf/touchstone-go/pkg/network"
	"github.com/touchstone-rf/touchstone-go/pkg/touchstone"
	"github.com/touchstone-rf/touchstone-go/pkg/version"
)

// ViewOptions specifies row selection for the view command.
type ViewOptions struct {
	// FreqMin and FreqMax bound the displayed frequency window, in the
	// file's declared unit. Nil means unbounded.
	FreqMin *float64
	FreqMax *float64

	// MaxRows limits the number of displayed rows (0 shows all).
	MaxRows int

	// Trace, when set, writes a parse trace to this .tslog file.
	Trace string
}

// RunView executes the view command.
func RunView(path string, opts ViewOptions, w io.Writer) error {
	settings := touchstone.Settings{
		FrequencySelector: frequencyWindow(opts.FreqMin, opts.FreqMax),
	}

	var trace *log.FileLogger
	if opts.Trace != "" {
		fl, err := log.NewFileLogger(opts.Trace)
		if err != nil {
			return fmt.Errorf("failed to create trace file: %w", err)
		}
		trace = fl
		settings.Logger = fl
		defer trace.Close()
	}

	r, err := touchstone.OpenWithSettings(path, settings)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer r.Close()

	printHeader(w, r)

	shown := 0
	for {
		pair, err := r.Next(context.Background())
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read row: %w", err)
		}

		formatPair(w, pair, r.Options())
		shown++
		if opts.MaxRows > 0 && shown >= opts.MaxRows {
			break
		}
	}

	fmt.Fprintf(w, "%d rows\n", shown)
	if trace != nil {
		if err := trace.Close(); err != nil {
			fmt.Fprintf(w, "Warning: trace file incomplete: %v\n", err)
		}
	}
	return nil
}

// frequencyWindow builds a selector for an optional frequency range. Both
// bounds nil yields a nil selector, which keeps every row.
func frequencyWindow(min, max *float64) func(float64) bool {
	if min == nil && max == nil {
		return nil
	}
	return func(frequency float64) bool {
		if min != nil && frequency < *min {
			return false
		}
		if max != nil && frequency > *max {
			return false
		}
		return true
	}
}

// printHeader writes the source, options and keyword summary.
func printHeader(w io.Writer, r *touchstone.Reader) {
	opts := r.Options()
	fmt.Fprintf(w, "Source:  %s\n", r.Source())
	fmt.Fprintf(w, "Options: %s %s %s R %g\n",
		opts.FrequencyUnit, opts.Parameter, opts.Format, opts.Resistance)
	printKeywords(w, r.Keywords())
	if note := versionNote(r.Keywords()); note != "" {
		fmt.Fprintf(w, "Warning: %s\n", note)
	}
	fmt.Fprintln(w)
}

// printKeywords writes one line per set keyword.
func printKeywords(w io.Writer, keys touchstone.Keywords) {
	if keys.Version != nil {
		fmt.Fprintf(w, "[Version] %s\n", *keys.Version)
	}
	if keys.NumberOfPorts != nil {
		fmt.Fprintf(w, "[Number of Ports] %d\n", *keys.NumberOfPorts)
	}
	if keys.TwoPortDataOrder != nil {
		fmt.Fprintf(w, "[Two-Port Data Order] %s\n", keys.TwoPortDataOrder)
	}
	if keys.NumberOfFrequencies != nil {
		fmt.Fprintf(w, "[Number of Frequencies] %d\n", *keys.NumberOfFrequencies)
	}
	if keys.NumberOfNoiseFrequencies != nil {
		fmt.Fprintf(w, "[Number of Noise Frequencies] %d\n", *keys.NumberOfNoiseFrequencies)
	}
	if keys.MatrixFormat != nil {
		fmt.Fprintf(w, "[Matrix Format] %s\n", keys.MatrixFormat)
	}
	if keys.Reference != nil {
		refs := make([]string, len(keys.Reference))
		for i, ref := range keys.Reference {
			refs[i] = fmt.Sprintf("%g", ref)
		}
		fmt.Fprintf(w, "[Reference] %s\n", strings.Join(refs, " "))
	}
}

// versionNote reports a declared format version newer than the tool
// supports. Older revisions parse fine and produce no note.
func versionNote(keys touchstone.Keywords) string {
	if keys.Version == nil {
		return ""
	}
	v, err := version.Parse(*keys.Version)
	if err != nil {
		return fmt.Sprintf("unrecognized [Version] value %q", *keys.Version)
	}
	current, _ := version.Parse(version.Current)
	if v.Compatible(current) || v.Major < current.Major {
		return ""
	}
	return fmt.Sprintf("file declares format version %s, newer than supported %s", v, version.Current)
}

// formatPair writes one row with one line per matrix entry.
func formatPair(w io.Writer, pair network.Pair, opts touchstone.Options) {
	ports := pair.Matrix.Ports()
	fmt.Fprintf(w, "%g %s  %d-port\n", pair.Frequency, opts.FrequencyUnit, ports)
	for dst := 1; dst <= ports; dst++ {
		for src := 1; src <= ports; src++ {
			p, err := pair.Matrix.At(dst, src)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "  S(%d,%d)  %10.6f @ %9.3f deg  (%8.2f dB)\n",
				dst, src, p.Magnitude(), p.Angle(), p.Decibels())
		}
	}
	fmt.Fprintln(w)
}
