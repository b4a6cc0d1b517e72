package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/touchstone-rf/touchstone-go/pkg/network"
	"github.com/touchstone-rf/touchstone-go/pkg/touchstone"
)

// Stats holds aggregate statistics about a Touchstone file.
type Stats struct {
	Rows  int
	Ports int

	// Frequency extremes in the file's declared unit.
	FreqMin float64
	FreqMax float64

	// Entries tracks per-entry magnitude ranges, in destination, source
	// order. Empty until the first row fixes the port count.
	Entries []EntryStats

	// MixedPorts is set when rows disagree on port count; entry ranges
	// then only cover rows matching the first.
	MixedPorts bool
}

// EntryStats is the observed magnitude range of one matrix entry.
type EntryStats struct {
	Destination  int
	Source       int
	MinMagnitude float64
	MaxMagnitude float64
}

// RunStats analyzes the file and prints statistics.
func RunStats(path string, w io.Writer) error {
	r, err := touchstone.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer r.Close()

	stats := &Stats{}
	for {
		pair, err := r.Next(context.Background())
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read row: %w", err)
		}
		stats.observe(pair)
	}

	printStats(w, r, stats)
	return nil
}

// observe folds one row into the statistics.
func (s *Stats) observe(pair network.Pair) {
	ports := pair.Matrix.Ports()
	if s.Rows == 0 {
		s.Ports = ports
		s.FreqMin = pair.Frequency
		s.FreqMax = pair.Frequency
		s.Entries = make([]EntryStats, 0, ports*ports)
		for dst := 1; dst <= ports; dst++ {
			for src := 1; src <= ports; src++ {
				s.Entries = append(s.Entries, EntryStats{Destination: dst, Source: src})
			}
		}
	}
	s.Rows++

	if pair.Frequency < s.FreqMin {
		s.FreqMin = pair.Frequency
	}
	if pair.Frequency > s.FreqMax {
		s.FreqMax = pair.Frequency
	}

	if ports != s.Ports {
		s.MixedPorts = true
		return
	}

	i := 0
	for dst := 1; dst <= ports; dst++ {
		for src := 1; src <= ports; src++ {
			p, err := pair.Matrix.At(dst, src)
			if err != nil {
				i++
				continue
			}
			mag := p.Magnitude()
			entry := &s.Entries[i]
			if s.Rows == 1 || mag < entry.MinMagnitude {
				entry.MinMagnitude = mag
			}
			if s.Rows == 1 || mag > entry.MaxMagnitude {
				entry.MaxMagnitude = mag
			}
			i++
		}
	}
}

func printStats(w io.Writer, r *touchstone.Reader, stats *Stats) {
	fmt.Fprintln(w, "=== Touchstone File Statistics ===")
	fmt.Fprintln(w)

	opts := r.Options()
	fmt.Fprintf(w, "Source:  %s\n", r.Source())
	fmt.Fprintf(w, "Options: %s %s %s R %g\n",
		opts.FrequencyUnit, opts.Parameter, opts.Format, opts.Resistance)
	printKeywords(w, r.Keywords())
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Rows:  %d\n", stats.Rows)
	if stats.Rows == 0 {
		return
	}

	fmt.Fprintf(w, "Ports: %d\n", stats.Ports)
	if stats.MixedPorts {
		fmt.Fprintln(w, "Warning: rows disagree on port count; entry ranges cover the first row's shape only")
	}
	fmt.Fprintf(w, "Frequency Range: %g to %g %s\n", stats.FreqMin, stats.FreqMax, opts.FrequencyUnit)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Magnitude Range:")
	for _, entry := range stats.Entries {
		fmt.Fprintf(w, "  S(%d,%d)  %.6g to %.6g\n",
			entry.Destination, entry.Source, entry.MinMagnitude, entry.MaxMagnitude)
	}
}
