package commands

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/touchstone-rf/touchstone-go/pkg/log"
)

// RunExport exports the trace file to the specified format.
func RunExport(path, format, output string) error {
	reader, err := log.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open trace file: %w", err)
	}
	defer reader.Close()

	var w io.Writer = os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	switch format {
	case "jsonl":
		return exportJSONL(reader, w)
	case "csv":
		return exportCSV(reader, w)
	default:
		return fmt.Errorf("unknown format: %s (supported: jsonl, csv)", format)
	}
}

func exportJSONL(reader *log.Reader, w io.Writer) error {
	encoder := json.NewEncoder(w)
	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		if err := encoder.Encode(event); err != nil {
			return fmt.Errorf("failed to encode event: %w", err)
		}
	}
	return nil
}

func exportCSV(reader *log.Reader, w io.Writer) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"timestamp", "reader_id", "source", "stage", "category", "line", "detail"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		line := ""
		if event.Line > 0 {
			line = strconv.Itoa(event.Line)
		}

		row := []string{
			event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z"),
			event.ReaderID,
			event.Source,
			event.Stage.String(),
			event.Category.String(),
			line,
			eventDetail(event),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	return nil
}

// eventDetail summarizes the type-specific payload in one cell.
func eventDetail(event log.Event) string {
	switch {
	case event.Options != nil:
		detail := fmt.Sprintf("%s %s %s R %g",
			event.Options.FrequencyUnit, event.Options.Parameter,
			event.Options.Format, event.Options.Resistance)
		if event.Options.Ignored {
			detail += " (ignored)"
		}
		return detail
	case event.Keyword != nil:
		if event.Keyword.Value != "" {
			return fmt.Sprintf("[%s] %s", event.Keyword.Name, event.Keyword.Value)
		}
		return fmt.Sprintf("[%s]", event.Keyword.Name)
	case event.Pair != nil:
		return fmt.Sprintf("f=%g ports=%d", event.Pair.Frequency, event.Pair.Ports)
	case event.Skip != nil:
		if event.Skip.Panicked {
			return fmt.Sprintf("f=%g (panicked)", event.Skip.Frequency)
		}
		return fmt.Sprintf("f=%g", event.Skip.Frequency)
	case event.Error != nil:
		return event.Error.Message
	default:
		return ""
	}
}
