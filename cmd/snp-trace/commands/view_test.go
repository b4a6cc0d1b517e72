package commands

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/touchstone-rf/touchstone-go/pkg/log"
)

func TestFormatOptionsEvent(t *testing.T) {
	ts := time.Date(2026, 3, 14, 9, 30, 15, 123456000, time.UTC)
	event := log.Event{
		Timestamp: ts,
		ReaderID:  "abc12345-6789-0123-4567-890abcdef012",
		Stage:     log.StageHeader,
		Category:  log.CategoryOptions,
		Line:      1,
		Options: &log.OptionsEvent{
			FrequencyUnit: "MHZ",
			Parameter:     "S",
			Format:        "RI",
			Resistance:    75,
		},
	}

	var buf bytes.Buffer
	formatEvent(&buf, event)
	output := buf.String()

	if !strings.Contains(output, "2026-03-14T09:30:15.123456Z") {
		t.Errorf("expected timestamp, got: %s", output)
	}
	if !strings.Contains(output, "[reader:abc12345]") {
		t.Errorf("expected shortened reader ID, got: %s", output)
	}
	if !strings.Contains(output, "HEADER") {
		t.Errorf("expected HEADER stage, got: %s", output)
	}
	if !strings.Contains(output, "Options") {
		t.Errorf("expected Options label, got: %s", output)
	}
	if !strings.Contains(output, "(line 1)") {
		t.Errorf("expected line number, got: %s", output)
	}
	if !strings.Contains(output, "Unit: MHZ  Parameter: S  Format: RI  R: 75") {
		t.Errorf("expected option details, got: %s", output)
	}
	if strings.Contains(output, "Ignored") {
		t.Errorf("expected no ignored marker, got: %s", output)
	}
}

func TestFormatOptionsEventIgnored(t *testing.T) {
	event := log.Event{
		Stage:    log.StageHeader,
		Category: log.CategoryOptions,
		Options: &log.OptionsEvent{
			FrequencyUnit: "GHZ",
			Parameter:     "S",
			Format:        "MA",
			Resistance:    50,
			Ignored:       true,
		},
	}

	var buf bytes.Buffer
	formatEvent(&buf, event)
	if !strings.Contains(buf.String(), "Ignored: later options line") {
		t.Errorf("expected ignored marker, got: %s", buf.String())
	}
}

func TestFormatKeywordEvent(t *testing.T) {
	event := log.Event{
		Stage:    log.StageHeader,
		Category: log.CategoryKeyword,
		Line:     3,
		Keyword: &log.KeywordEvent{
			Name:  "Number of Ports",
			Value: "2",
		},
	}

	var buf bytes.Buffer
	formatEvent(&buf, event)
	output := buf.String()

	if !strings.Contains(output, "Keyword (line 3)") {
		t.Errorf("expected keyword header, got: %s", output)
	}
	if !strings.Contains(output, "[Number of Ports] 2") {
		t.Errorf("expected keyword details, got: %s", output)
	}
}

func TestFormatPairEvent(t *testing.T) {
	event := log.Event{
		Stage:    log.StageData,
		Category: log.CategoryPair,
		Line:     4,
		Pair: &log.PairEvent{
			Frequency: 1.5,
			Ports:     2,
			Layout:    "SOURCE_MAJOR",
		},
	}

	var buf bytes.Buffer
	formatEvent(&buf, event)
	output := buf.String()

	if !strings.Contains(output, "DATA") {
		t.Errorf("expected DATA stage, got: %s", output)
	}
	if !strings.Contains(output, "Frequency: 1.5  Ports: 2  Layout: SOURCE_MAJOR") {
		t.Errorf("expected pair details, got: %s", output)
	}
}

func TestFormatSkipEvent(t *testing.T) {
	event := log.Event{
		Stage:    log.StageData,
		Category: log.CategorySkip,
		Skip:     &log.SkipEvent{Frequency: 2.5},
	}

	var buf bytes.Buffer
	formatEvent(&buf, event)
	if !strings.Contains(buf.String(), "Frequency: 2.5  (selector declined)") {
		t.Errorf("expected skip details, got: %s", buf.String())
	}

	buf.Reset()
	event.Skip.Panicked = true
	formatEvent(&buf, event)
	if !strings.Contains(buf.String(), "(selector panicked)") {
		t.Errorf("expected panic marker, got: %s", buf.String())
	}
}

func TestFormatErrorEvent(t *testing.T) {
	event := log.Event{
		Stage:    log.StageData,
		Category: log.CategoryError,
		Line:     7,
		Error: &log.ErrorEventData{
			Message: "invalid data format: data row expects 1+2*n^2 values",
			Section: "DATA",
		},
	}

	var buf bytes.Buffer
	formatEvent(&buf, event)
	output := buf.String()

	if !strings.Contains(output, "Message: invalid data format") {
		t.Errorf("expected error message, got: %s", output)
	}
	if !strings.Contains(output, "Section: DATA") {
		t.Errorf("expected section, got: %s", output)
	}
	if strings.Contains(output, "Unsupported") {
		t.Errorf("expected no unsupported marker, got: %s", output)
	}
}

func TestFormatErrorEventUnsupported(t *testing.T) {
	event := log.Event{
		Stage:    log.StageHeader,
		Category: log.CategoryError,
		Error: &log.ErrorEventData{
			Message:     "unsupported Touchstone construct",
			Unsupported: true,
		},
	}

	var buf bytes.Buffer
	formatEvent(&buf, event)
	if !strings.Contains(buf.String(), "Unsupported construct") {
		t.Errorf("expected unsupported marker, got: %s", buf.String())
	}
}

func TestParseStageFlag(t *testing.T) {
	tests := []struct {
		input    string
		expected log.Stage
		wantErr  bool
	}{
		{"header", log.StageHeader, false},
		{"HEADER", log.StageHeader, false},
		{"data", log.StageData, false},
		{"DATA", log.StageData, false},
		{"invalid", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseStageFlag(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseStageFlag(%q) expected error", tt.input)
			}
		} else {
			if err != nil {
				t.Errorf("ParseStageFlag(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("ParseStageFlag(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		}
	}
}

func TestParseCategoryFlag(t *testing.T) {
	tests := []struct {
		input    string
		expected log.Category
		wantErr  bool
	}{
		{"options", log.CategoryOptions, false},
		{"keyword", log.CategoryKeyword, false},
		{"pair", log.CategoryPair, false},
		{"skip", log.CategorySkip, false},
		{"error", log.CategoryError, false},
		{"PAIR", log.CategoryPair, false},
		{"invalid", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseCategoryFlag(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseCategoryFlag(%q) expected error", tt.input)
			}
		} else {
			if err != nil {
				t.Errorf("ParseCategoryFlag(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("ParseCategoryFlag(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		}
	}
}

// writeTestTrace writes a small trace with one header event and two data
// events from the same reader run.
func writeTestTrace(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.tslog")

	logger, err := log.NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}
	defer logger.Close()

	base := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	readerID := "abc12345-6789-0123-4567-890abcdef012"

	logger.Log(log.Event{
		Timestamp: base,
		ReaderID:  readerID,
		Source:    "test.s2p",
		Stage:     log.StageHeader,
		Category:  log.CategoryOptions,
		Line:      1,
		Options: &log.OptionsEvent{
			FrequencyUnit: "GHZ", Parameter: "S", Format: "MA", Resistance: 50,
		},
	})
	logger.Log(log.Event{
		Timestamp: base.Add(time.Millisecond),
		ReaderID:  readerID,
		Source:    "test.s2p",
		Stage:     log.StageData,
		Category:  log.CategoryPair,
		Line:      2,
		Pair:      &log.PairEvent{Frequency: 1.0, Ports: 1, Layout: "SOURCE_MAJOR"},
	})
	logger.Log(log.Event{
		Timestamp: base.Add(2 * time.Millisecond),
		ReaderID:  readerID,
		Source:    "test.s2p",
		Stage:     log.StageData,
		Category:  log.CategorySkip,
		Line:      3,
		Skip:      &log.SkipEvent{Frequency: 2.0},
	})

	return path
}

func TestRunView(t *testing.T) {
	path := writeTestTrace(t)

	var buf bytes.Buffer
	if err := RunView(path, log.Filter{}, &buf); err != nil {
		t.Fatalf("RunView failed: %v", err)
	}
	output := buf.String()

	if !strings.Contains(output, "Options") {
		t.Errorf("expected options event, got: %s", output)
	}
	if !strings.Contains(output, "Pair") {
		t.Errorf("expected pair event, got: %s", output)
	}
	if !strings.Contains(output, "Skip") {
		t.Errorf("expected skip event, got: %s", output)
	}
}

func TestRunViewFiltersByCategory(t *testing.T) {
	path := writeTestTrace(t)

	pair := log.CategoryPair
	var buf bytes.Buffer
	if err := RunView(path, log.Filter{Category: &pair}, &buf); err != nil {
		t.Fatalf("RunView failed: %v", err)
	}
	output := buf.String()

	if !strings.Contains(output, "Pair") {
		t.Errorf("expected pair event, got: %s", output)
	}
	if strings.Contains(output, "Options") || strings.Contains(output, "Skip") {
		t.Errorf("expected only pair events, got: %s", output)
	}
}

func TestRunViewFiltersByStage(t *testing.T) {
	path := writeTestTrace(t)

	header := log.StageHeader
	var buf bytes.Buffer
	if err := RunView(path, log.Filter{Stage: &header}, &buf); err != nil {
		t.Fatalf("RunView failed: %v", err)
	}
	output := buf.String()

	if !strings.Contains(output, "HEADER") {
		t.Errorf("expected header event, got: %s", output)
	}
	if strings.Contains(output, "DATA") {
		t.Errorf("expected no data events, got: %s", output)
	}
}

func TestRunViewMissingFile(t *testing.T) {
	var buf bytes.Buffer
	err := RunView(filepath.Join(t.TempDir(), "absent.tslog"), log.Filter{}, &buf)
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "failed to open trace file") {
		t.Errorf("unexpected error: %v", err)
	}
}
