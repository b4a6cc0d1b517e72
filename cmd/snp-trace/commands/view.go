// Package commands implements the snp-trace CLI commands.
package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/touchstone-rf/touchstone-go/pkg/log"
)

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event log.Event) {
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")
	readerID := shortenReaderID(event.ReaderID)

	var typeLabel string
	switch {
	case event.Options != nil:
		typeLabel = "Options"
	case event.Keyword != nil:
		typeLabel = "Keyword"
	case event.Pair != nil:
		typeLabel = "Pair"
	case event.Skip != nil:
		typeLabel = "Skip"
	case event.Error != nil:
		typeLabel = "Error"
	default:
		typeLabel = "Unknown"
	}

	fmt.Fprintf(w, "%s [reader:%s] %-6s %s", ts, readerID, event.Stage, typeLabel)
	if event.Line > 0 {
		fmt.Fprintf(w, " (line %d)", event.Line)
	}
	fmt.Fprintln(w)

	switch {
	case event.Options != nil:
		formatOptionsDetails(w, event.Options)
	case event.Keyword != nil:
		formatKeywordDetails(w, event.Keyword)
	case event.Pair != nil:
		formatPairDetails(w, event.Pair)
	case event.Skip != nil:
		formatSkipDetails(w, event.Skip)
	case event.Error != nil:
		formatErrorDetails(w, event.Error)
	}

	fmt.Fprintln(w)
}

// shortenReaderID returns the first 8 characters of the reader run ID.
func shortenReaderID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

func formatOptionsDetails(w io.Writer, opts *log.OptionsEvent) {
	fmt.Fprintf(w, "  Unit: %s  Parameter: %s  Format: %s  R: %g\n",
		opts.FrequencyUnit, opts.Parameter, opts.Format, opts.Resistance)
	if opts.Ignored {
		fmt.Fprintln(w, "  Ignored: later options line, validated only")
	}
}

func formatKeywordDetails(w io.Writer, kw *log.KeywordEvent) {
	if kw.Value != "" {
		fmt.Fprintf(w, "  [%s] %s\n", kw.Name, kw.Value)
	} else {
		fmt.Fprintf(w, "  [%s]\n", kw.Name)
	}
}

func formatPairDetails(w io.Writer, pair *log.PairEvent) {
	fmt.Fprintf(w, "  Frequency: %g  Ports: %d", pair.Frequency, pair.Ports)
	if pair.Layout != "" {
		fmt.Fprintf(w, "  Layout: %s", pair.Layout)
	}
	fmt.Fprintln(w)
}

func formatSkipDetails(w io.Writer, skip *log.SkipEvent) {
	fmt.Fprintf(w, "  Frequency: %g", skip.Frequency)
	if skip.Panicked {
		fmt.Fprintf(w, "  (selector panicked)")
	} else {
		fmt.Fprintf(w, "  (selector declined)")
	}
	fmt.Fprintln(w)
}

func formatErrorDetails(w io.Writer, errData *log.ErrorEventData) {
	fmt.Fprintf(w, "  Message: %s\n", errData.Message)
	if errData.Section != "" {
		fmt.Fprintf(w, "  Section: %s\n", errData.Section)
	}
	if errData.Unsupported {
		fmt.Fprintln(w, "  Unsupported construct")
	}
}

// ParseStageFlag parses a stage string from a command-line flag
// (case-insensitive).
func ParseStageFlag(s string) (log.Stage, error) {
	switch strings.ToLower(s) {
	case "header":
		return log.StageHeader, nil
	case "data":
		return log.StageData, nil
	default:
		return 0, fmt.Errorf("invalid stage: %s (must be header or data)", s)
	}
}

// ParseCategoryFlag parses a category string from a command-line flag
// (case-insensitive).
func ParseCategoryFlag(s string) (log.Category, error) {
	switch strings.ToLower(s) {
	case "options":
		return log.CategoryOptions, nil
	case "keyword":
		return log.CategoryKeyword, nil
	case "pair":
		return log.CategoryPair, nil
	case "skip":
		return log.CategorySkip, nil
	case "error":
		return log.CategoryError, nil
	default:
		return 0, fmt.Errorf("invalid category: %s (must be options, keyword, pair, skip, or error)", s)
	}
}

// RunView executes the view command. Filtering happens in the trace
// reader itself.
func RunView(path string, filter log.Filter, output io.Writer) error {
	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open trace file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		formatEvent(output, event)
	}

	return nil
}
