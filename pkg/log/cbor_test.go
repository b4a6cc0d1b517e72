package log

import (
	"testing"
	"time"
)

func TestEventRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		event Event
	}{
		{
			name: "options event",
			event: Event{
				Timestamp: time.Now(),
				ReaderID:  "reader-1",
				Source:    "amp.s2p",
				Stage:     StageHeader,
				Category:  CategoryOptions,
				Line:      2,
				Options: &OptionsEvent{
					FrequencyUnit: "GHZ",
					Parameter:     "S",
					Format:        "MA",
					Resistance:    50,
				},
			},
		},
		{
			name: "keyword event",
			event: Event{
				Timestamp: time.Now(),
				ReaderID:  "reader-1",
				Source:    "amp.s2p",
				Stage:     StageHeader,
				Category:  CategoryKeyword,
				Line:      3,
				Keyword: &KeywordEvent{
					Name:  "Two-Port Data Order",
					Value: "21_12",
				},
			},
		},
		{
			name: "pair event",
			event: Event{
				Timestamp: time.Now(),
				ReaderID:  "reader-1",
				Stage:     StageData,
				Category:  CategoryPair,
				Line:      5,
				Pair: &PairEvent{
					Frequency: 1.5,
					Ports:     2,
					Layout:    "SOURCE_MAJOR",
				},
			},
		},
		{
			name: "skip event",
			event: Event{
				Timestamp: time.Now(),
				ReaderID:  "reader-1",
				Stage:     StageData,
				Category:  CategorySkip,
				Line:      6,
				Skip: &SkipEvent{
					Frequency: 2.5,
					Panicked:  true,
				},
			},
		},
		{
			name: "error event",
			event: Event{
				Timestamp: time.Now(),
				ReaderID:  "reader-1",
				Stage:     StageData,
				Category:  CategoryError,
				Line:      7,
				Error: &ErrorEventData{
					Message: "invalid data format",
					Section: "DATA",
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := EncodeEvent(tt.event)
			if err != nil {
				t.Fatalf("EncodeEvent failed: %v", err)
			}

			decoded, err := DecodeEvent(data)
			if err != nil {
				t.Fatalf("DecodeEvent failed: %v", err)
			}

			if decoded.ReaderID != tt.event.ReaderID {
				t.Errorf("ReaderID mismatch: got %q, want %q", decoded.ReaderID, tt.event.ReaderID)
			}
			if decoded.Stage != tt.event.Stage {
				t.Errorf("Stage mismatch: got %v, want %v", decoded.Stage, tt.event.Stage)
			}
			if decoded.Category != tt.event.Category {
				t.Errorf("Category mismatch: got %v, want %v", decoded.Category, tt.event.Category)
			}
			if decoded.Line != tt.event.Line {
				t.Errorf("Line mismatch: got %d, want %d", decoded.Line, tt.event.Line)
			}
		})
	}
}

func TestEventRoundTripPayloads(t *testing.T) {
	event := Event{
		Timestamp: time.Now(),
		ReaderID:  "reader-1",
		Source:    "filter.s3p",
		Stage:     StageData,
		Category:  CategoryPair,
		Line:      10,
		Pair: &PairEvent{
			Frequency: 4.25,
			Ports:     3,
			Layout:    "SOURCE_MAJOR",
		},
	}

	data, err := EncodeEvent(event)
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}

	decoded, err := DecodeEvent(data)
	if err != nil {
		t.Fatalf("DecodeEvent failed: %v", err)
	}

	if decoded.Pair == nil {
		t.Fatal("Pair is nil after round trip")
	}
	if decoded.Pair.Frequency != 4.25 {
		t.Errorf("Pair.Frequency mismatch: got %v, want 4.25", decoded.Pair.Frequency)
	}
	if decoded.Pair.Ports != 3 {
		t.Errorf("Pair.Ports mismatch: got %d, want 3", decoded.Pair.Ports)
	}
	if decoded.Options != nil || decoded.Keyword != nil || decoded.Skip != nil || decoded.Error != nil {
		t.Error("unset payloads should stay nil after round trip")
	}
}

func TestTimestampPrecision(t *testing.T) {
	// RFC3339Nano keeps nanosecond precision through the codec.
	ts := time.Date(2026, 3, 14, 9, 26, 53, 589793238, time.UTC)
	event := Event{
		Timestamp: ts,
		ReaderID:  "reader-1",
		Stage:     StageHeader,
		Category:  CategoryOptions,
		Options:   &OptionsEvent{FrequencyUnit: "GHZ", Parameter: "S", Format: "MA", Resistance: 50},
	}

	data, err := EncodeEvent(event)
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}

	decoded, err := DecodeEvent(data)
	if err != nil {
		t.Fatalf("DecodeEvent failed: %v", err)
	}

	if !decoded.Timestamp.Equal(ts) {
		t.Errorf("Timestamp mismatch: got %v, want %v", decoded.Timestamp, ts)
	}
}
