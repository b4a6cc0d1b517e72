package log

import (
	"io"
	"os"
	"time"

	"github.com/fxamacker/cbor/v2"
)

// Filter selects trace events. Zero fields match everything.
type Filter struct {
	// ReaderID filters by exact reader run ID match.
	ReaderID string

	// Source filters by exact source name match.
	Source string

	// Stage filters by parse stage.
	Stage *Stage

	// Category filters by event category.
	Category *Category

	// TimeStart filters events at or after this time.
	TimeStart *time.Time

	// TimeEnd filters events before this time.
	TimeEnd *time.Time
}

// matches reports whether the event passes every set criterion.
func (f *Filter) matches(event Event) bool {
	if f.ReaderID != "" && event.ReaderID != f.ReaderID {
		return false
	}
	if f.Source != "" && event.Source != f.Source {
		return false
	}
	if f.Stage != nil && event.Stage != *f.Stage {
		return false
	}
	if f.Category != nil && event.Category != *f.Category {
		return false
	}
	if f.TimeStart != nil && event.Timestamp.Before(*f.TimeStart) {
		return false
	}
	if f.TimeEnd != nil && !event.Timestamp.Before(*f.TimeEnd) {
		return false
	}
	return true
}

// Reader streams events back out of a CBOR trace file in write order.
type Reader struct {
	src     io.ReadCloser
	decoder *cbor.Decoder
	filter  Filter
}

// NewReader opens the trace file at path and yields every event in it.
func NewReader(path string) (*Reader, error) {
	return NewFilteredReader(path, Filter{})
}

// NewFilteredReader opens the trace file at path and yields the events
// matching filter.
func NewFilteredReader(path string, filter Filter) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &Reader{src: f, decoder: NewDecoder(f), filter: filter}, nil
}

// Next returns the next event matching the filter, or io.EOF after the
// last one.
func (r *Reader) Next() (Event, error) {
	for {
		var event Event
		if err := r.decoder.Decode(&event); err != nil {
			return Event{}, err
		}
		if r.filter.matches(event) {
			return event, nil
		}
	}
}

// Close closes the trace file.
func (r *Reader) Close() error {
	return r.src.Close()
}
