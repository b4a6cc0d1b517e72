package touchstone

import (
	"compress/gzip"
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/touchstone-rf/touchstone-go/pkg/log"
	"github.com/touchstone-rf/touchstone-go/pkg/network"
)

// Settings configures optional Reader behavior. The zero value selects
// every row and traces nothing.
type Settings struct {
	// FrequencySelector keeps only rows whose frequency it approves.
	// Nil selects every row. A selector panic excludes the row instead
	// of aborting iteration.
	FrequencySelector func(frequency float64) bool

	// ParameterSelector is reserved for matrix sub-selection. Setting it
	// makes Next fail with an ErrUnsupported-wrapped error.
	ParameterSelector func(destination, source int) bool

	// Logger receives parse trace events. Nil disables tracing.
	Logger log.Logger
}

// Reader parses one Touchstone document and yields its data rows one at a
// time. The header is parsed during construction; rows are pulled lazily
// with Next. A Reader is single-pass and not safe for concurrent use.
type Reader struct {
	id       uuid.UUID
	source   string
	scanner  *lineScanner
	closer   io.Closer // nil for sources the caller owns
	settings Settings
	logger   log.Logger

	opts Options
	keys Keywords

	err    error // first terminal result, latched
	closed bool
}

// Open parses the header of the Touchstone file at path and returns a
// Reader for its data rows. "-" reads stdin; gzip input is detected by
// magic number or a .gz suffix.
func Open(path string) (*Reader, error) {
	return OpenWithSettings(path, Settings{})
}

// OpenWithSettings is Open with explicit settings.
func OpenWithSettings(path string, settings Settings) (*Reader, error) {
	src, err := openSource(path)
	if err != nil {
		return nil, err
	}
	source := path
	if path == "-" {
		source = "<stdin>"
	}
	return newReader(src, src, source, settings)
}

// OpenString parses a Touchstone document held in memory.
func OpenString(text string) (*Reader, error) {
	return OpenStringWithSettings(text, Settings{})
}

// OpenStringWithSettings is OpenString with explicit settings.
func OpenStringWithSettings(text string, settings Settings) (*Reader, error) {
	return newReader(strings.NewReader(text), nil, "<string>", settings)
}

// NewReader parses a Touchstone document from an arbitrary line source.
// The caller keeps ownership of src; Close does not close it.
func NewReader(src io.Reader, settings Settings) (*Reader, error) {
	return newReader(src, nil, "<reader>", settings)
}

// newReader runs the header stage. On header failure the owned source is
// released and the error surfaces from the constructor.
func newReader(src io.Reader, closer io.Closer, source string, settings Settings) (*Reader, error) {
	logger := settings.Logger
	if logger == nil {
		logger = log.NoopLogger{}
	}
	r := &Reader{
		id:       uuid.New(),
		source:   source,
		scanner:  newLineScanner(src),
		closer:   closer,
		settings: settings,
		logger:   logger,
		opts:     DefaultOptions(),
	}
	if err := r.parseHeader(); err != nil {
		r.emitError(log.StageHeader, err)
		if closer != nil {
			_ = closer.Close()
		}
		return nil, err
	}
	return r, nil
}

// Options returns the decoded options line values, or the defaults when
// the document has none.
func (r *Reader) Options() Options {
	return r.opts
}

// Keywords returns the decoded keyword set.
func (r *Reader) Keywords() Keywords {
	return r.keys
}

// Source names the input: the opened path, "<stdin>", "<string>" or
// "<reader>".
func (r *Reader) Source() string {
	return r.source
}

// Line returns the 1-based number of the last line the reader consumed.
func (r *Reader) Line() int {
	return r.scanner.line
}

// Next returns the next data row. It returns io.EOF when the input is
// exhausted. Any non-nil result, io.EOF and context errors included, is
// terminal: subsequent calls return the same error.
func (r *Reader) Next(ctx context.Context) (network.Pair, error) {
	if r.err != nil {
		return network.Pair{}, r.err
	}
	if r.closed {
		return network.Pair{}, ErrClosed
	}

	pair, err := r.nextPair(ctx)
	if err != nil {
		r.err = err
		if err != io.EOF {
			r.emitError(log.StageData, err)
		}
		return network.Pair{}, err
	}
	return pair, nil
}

// All drains the remaining rows. Rows read before a failure are returned
// alongside the error.
func (r *Reader) All(ctx context.Context) ([]network.Pair, error) {
	var pairs []network.Pair
	for {
		pair, err := r.Next(ctx)
		if err == io.EOF {
			return pairs, nil
		}
		if err != nil {
			return pairs, err
		}
		pairs = append(pairs, pair)
	}
}

// Close releases the underlying source. It is idempotent; Next after
// Close fails with ErrClosed unless a terminal state was already reached.
func (r *Reader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	if r.closer != nil {
		return r.closer.Close()
	}
	return nil
}

// emit sends one trace event with the shared reader fields filled in.
func (r *Reader) emit(event log.Event) {
	event.Timestamp = time.Now()
	event.ReaderID = r.id.String()
	event.Source = r.source
	r.logger.Log(event)
}

// emitError records a terminal failure in the trace.
func (r *Reader) emitError(stage log.Stage, err error) {
	data := &log.ErrorEventData{Message: err.Error()}
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		data.Section = parseErr.Section.String()
	}
	if errors.Is(err, ErrUnsupported) {
		data.Unsupported = true
	}
	r.emit(log.Event{
		Stage:    stage,
		Category: log.CategoryError,
		Line:     r.scanner.line,
		Error:    data,
	})
}

// multiCloser closes a decompressor and its backing file together.
type multiCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// openSource opens path for reading. "-" reads stdin; gzip input is
// detected by magic number (1F 8B) or a .gz suffix.
func openSource(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	var sig [2]byte
	n, _ := f.Read(sig[:])
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		_ = f.Close()
		return nil, err
	}
	if (n == 2 && sig[0] == 0x1f && sig[1] == 0x8b) || strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			_ = f.Close()
			return nil, err
		}
		return &multiCloser{Reader: gz, closers: []io.Closer{gz, f}}, nil
	}
	return f, nil
}
