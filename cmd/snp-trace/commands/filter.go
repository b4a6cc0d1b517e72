package commands

import (
	"fmt"
	"io"
	"time"

	"github.com/touchstone-rf/touchstone-go/pkg/log"
)

// FilterOptions selects the events the filter command keeps. Zero
// fields keep everything.
type FilterOptions struct {
	Output    string
	ReaderID  string
	Source    string
	TimeStart string
	TimeEnd   string
	Stage     string
	Category  string
}

// RunFilter writes the matching events of a trace file to a new trace
// file and reports the kept count on w.
func RunFilter(path string, opts FilterOptions, w io.Writer) error {
	filter := log.Filter{
		ReaderID: opts.ReaderID,
		Source:   opts.Source,
	}

	if opts.TimeStart != "" {
		t, err := time.Parse(time.RFC3339, opts.TimeStart)
		if err != nil {
			return fmt.Errorf("invalid time-start format: %w", err)
		}
		filter.TimeStart = &t
	}
	if opts.TimeEnd != "" {
		t, err := time.Parse(time.RFC3339, opts.TimeEnd)
		if err != nil {
			return fmt.Errorf("invalid time-end format: %w", err)
		}
		filter.TimeEnd = &t
	}
	if opts.Stage != "" {
		s, err := ParseStageFlag(opts.Stage)
		if err != nil {
			return err
		}
		filter.Stage = &s
	}
	if opts.Category != "" {
		c, err := ParseCategoryFlag(opts.Category)
		if err != nil {
			return err
		}
		filter.Category = &c
	}

	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open trace file: %w", err)
	}
	defer reader.Close()

	logger, err := log.NewFileLogger(opts.Output)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	count := 0
	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			_ = logger.Close()
			return fmt.Errorf("failed to read event: %w", err)
		}
		logger.Log(event)
		count++
	}
	if err := logger.Close(); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	fmt.Fprintf(w, "Filtered %d events to %s\n", count, opts.Output)
	return nil
}
