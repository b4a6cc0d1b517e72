package touchstone

import (
	"bufio"
	"io"
)

// scanner buffer sizing; Touchstone rows for large port counts get long.
const (
	initialLineBuffer = 64 * 1024
	maxLineBuffer     = 1024 * 1024
)

// lineScanner walks an input line by line with 1-based counting and a
// one-line peek, so the header stage can stop at the first data line
// without consuming it.
type lineScanner struct {
	scanner *bufio.Scanner
	line    int // number of the last line returned by next
	peeked  bool
	pending string
}

func newLineScanner(src io.Reader) *lineScanner {
	sc := bufio.NewScanner(src)
	sc.Buffer(make([]byte, 0, initialLineBuffer), maxLineBuffer)
	return &lineScanner{scanner: sc}
}

// next returns the next line and consumes it. ok is false at end of input;
// err carries source read failures.
func (s *lineScanner) next() (text string, ok bool, err error) {
	if s.peeked {
		s.peeked = false
		s.line++
		return s.pending, true, nil
	}
	if !s.scanner.Scan() {
		return "", false, s.scanner.Err()
	}
	s.line++
	return s.scanner.Text(), true, nil
}

// peek returns the next line without consuming it.
func (s *lineScanner) peek() (text string, ok bool, err error) {
	if s.peeked {
		return s.pending, true, nil
	}
	if !s.scanner.Scan() {
		return "", false, s.scanner.Err()
	}
	s.peeked = true
	s.pending = s.scanner.Text()
	return s.pending, true, nil
}
