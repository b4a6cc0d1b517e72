package commands

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/touchstone-rf/touchstone-go/pkg/log"
)

// Stats holds aggregate statistics about a trace file.
type Stats struct {
	TotalEvents      int
	EventsByStage    map[log.Stage]int
	EventsByCategory map[log.Category]int
	Readers          map[string]*ReaderStats
	Errors           int
	TimeRange        struct {
		Start time.Time
		End   time.Time
	}
}

// ReaderStats holds statistics for a single reader run.
type ReaderStats struct {
	FirstSeen time.Time
	LastSeen  time.Time
	Events    int
	Source    string
	Pairs     int
	Skips     int
}

// RunStats analyzes the trace file and prints statistics.
func RunStats(path string, w io.Writer) error {
	reader, err := log.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open trace file: %w", err)
	}
	defer reader.Close()

	stats := &Stats{
		EventsByStage:    make(map[log.Stage]int),
		EventsByCategory: make(map[log.Category]int),
		Readers:          make(map[string]*ReaderStats),
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		stats.TotalEvents++
		stats.EventsByStage[event.Stage]++
		stats.EventsByCategory[event.Category]++

		if stats.TimeRange.Start.IsZero() || event.Timestamp.Before(stats.TimeRange.Start) {
			stats.TimeRange.Start = event.Timestamp
		}
		if event.Timestamp.After(stats.TimeRange.End) {
			stats.TimeRange.End = event.Timestamp
		}

		run, ok := stats.Readers[event.ReaderID]
		if !ok {
			run = &ReaderStats{
				FirstSeen: event.Timestamp,
				LastSeen:  event.Timestamp,
			}
			stats.Readers[event.ReaderID] = run
		}
		run.Events++
		if event.Timestamp.After(run.LastSeen) {
			run.LastSeen = event.Timestamp
		}
		if event.Source != "" && run.Source == "" {
			run.Source = event.Source
		}
		if event.Pair != nil {
			run.Pairs++
		}
		if event.Skip != nil {
			run.Skips++
		}

		if event.Error != nil {
			stats.Errors++
		}
	}

	printStats(w, stats)
	return nil
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintln(w, "=== Touchstone Parse Trace Statistics ===")
	fmt.Fprintln(w)

	if stats.TotalEvents > 0 {
		fmt.Fprintf(w, "Time Range: %s to %s\n",
			stats.TimeRange.Start.Format(time.RFC3339),
			stats.TimeRange.End.Format(time.RFC3339))
		fmt.Fprintf(w, "Duration:   %s\n", stats.TimeRange.End.Sub(stats.TimeRange.Start).Round(time.Second))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total Events: %d\n", stats.TotalEvents)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Stage:")
	for _, stage := range []log.Stage{log.StageHeader, log.StageData} {
		if count := stats.EventsByStage[stage]; count > 0 {
			fmt.Fprintf(w, "  %-10s %d\n", stage.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Category:")
	for _, cat := range []log.Category{log.CategoryOptions, log.CategoryKeyword, log.CategoryPair, log.CategorySkip, log.CategoryError} {
		if count := stats.EventsByCategory[cat]; count > 0 {
			fmt.Fprintf(w, "  %-10s %d\n", cat.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Reader Runs: %d\n", len(stats.Readers))
	if len(stats.Readers) > 0 {
		type runInfo struct {
			id    string
			stats *ReaderStats
		}
		runs := make([]runInfo, 0, len(stats.Readers))
		for id, rs := range stats.Readers {
			runs = append(runs, runInfo{id, rs})
		}
		sort.Slice(runs, func(i, j int) bool {
			return runs[i].stats.FirstSeen.Before(runs[j].stats.FirstSeen)
		})

		fmt.Fprintln(w, "")
		for _, r := range runs {
			duration := r.stats.LastSeen.Sub(r.stats.FirstSeen).Round(time.Millisecond)
			fmt.Fprintf(w, "  [%s] %d events, duration %s\n", shortenReaderID(r.id), r.stats.Events, duration)
			if r.stats.Source != "" {
				fmt.Fprintf(w, "           Source: %s\n", r.stats.Source)
			}
			if r.stats.Pairs > 0 || r.stats.Skips > 0 {
				fmt.Fprintf(w, "           Rows: %d yielded, %d skipped\n", r.stats.Pairs, r.stats.Skips)
			}
		}
	}

	if stats.Errors > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Errors: %d\n", stats.Errors)
	}
}
