package log

import (
	"os"
	"sync"

	"github.com/fxamacker/cbor/v2"
)

// FileLogger appends trace events to a file as a CBOR stream readable
// with Reader. It is safe for concurrent use. Events are written
// verbatim; the caller stamps Timestamp and ReaderID.
type FileLogger struct {
	mu      sync.Mutex
	file    *os.File
	encoder *cbor.Encoder
	err     error
	closed  bool
}

// NewFileLogger opens path for appending, creating it with mode 0644.
// Events from successive runs accumulate in the same file.
func NewFileLogger(path string) (*FileLogger, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	return &FileLogger{file: f, encoder: NewEncoder(f)}, nil
}

// Log appends one event. Write failures never disrupt the run producing
// the events; the first one is kept and reported by Close.
func (l *FileLogger) Log(event Event) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return
	}
	if err := l.encoder.Encode(event); err != nil && l.err == nil {
		l.err = err
	}
}

// Close closes the file and returns the first write error, if any.
// Close is idempotent; Log after Close is a no-op.
func (l *FileLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return nil
	}
	l.closed = true
	if err := l.file.Close(); err != nil && l.err == nil {
		l.err = err
	}
	return l.err
}

// Compile-time interface satisfaction check.
var _ Logger = (*FileLogger)(nil)
