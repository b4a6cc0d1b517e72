package touchstone

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/touchstone-rf/touchstone-go/pkg/log"
)

// keywordLineRe splits a keyword line into its bracketed name and the
// rest of the line.
var keywordLineRe = regexp.MustCompile(`^\[([^\]]*)\]\s*(.*)$`)

// parseHeader consumes comment, option and keyword lines until the first
// data line, which stays unconsumed for the data stage. It runs exactly
// once, during construction.
func (r *Reader) parseHeader() error {
	seenOptions := false
	for {
		line, ok, err := r.scanner.peek()
		if err != nil {
			return err
		}
		if !ok || line == "" {
			return nil
		}
		switch line[0] {
		case '!', '#', '[':
			// header line, consume it
			if _, _, err := r.scanner.next(); err != nil {
				return err
			}
		default:
			// first data line, leave it for the data stage
			return nil
		}

		switch line[0] {
		case '!':
			// comment
		case '#':
			if err := r.parseOptionsLine(line, seenOptions); err != nil {
				return err
			}
			seenOptions = true
		case '[':
			if err := r.parseKeywordLine(line); err != nil {
				return err
			}
		}
	}
}

// parseOptionsLine decodes a # line. Only the first one applies; later
// lines run the same validation so their errors still surface, then are
// discarded.
func (r *Reader) parseOptionsLine(line string, ignore bool) error {
	opts := DefaultOptions()

	// the leading token is the # marker
	tokens := strings.Fields(line)[1:]
	for i := 0; i < len(tokens); i++ {
		token := tokens[i]
		if unit, ok := ParseFrequencyUnit(token); ok {
			opts.FrequencyUnit = unit
			continue
		}
		if format, ok := ParseFormat(token); ok {
			opts.Format = format
			continue
		}
		if parameter, ok := ParseParameterType(token); ok {
			opts.Parameter = parameter
			continue
		}
		if strings.EqualFold(token, "R") {
			i++
			if i >= len(tokens) {
				return &ParseError{
					Section: SectionOptions,
					Line:    r.scanner.line,
					Message: "missing resistance value after R",
				}
			}
			resistance, err := strconv.ParseFloat(tokens[i], 64)
			if err != nil {
				return &ParseError{
					Section: SectionOptions,
					Line:    r.scanner.line,
					Message: fmt.Sprintf("invalid resistance value %q", tokens[i]),
					Cause:   err,
				}
			}
			opts.Resistance = resistance
			continue
		}
		return &ParseError{
			Section: SectionOptions,
			Line:    r.scanner.line,
			Message: fmt.Sprintf("invalid option value %q", token),
		}
	}

	if !ignore {
		r.opts = opts
	}
	r.emit(log.Event{
		Stage:    log.StageHeader,
		Category: log.CategoryOptions,
		Line:     r.scanner.line,
		Options: &log.OptionsEvent{
			FrequencyUnit: opts.FrequencyUnit.String(),
			Parameter:     opts.Parameter.String(),
			Format:        opts.Format.String(),
			Resistance:    opts.Resistance,
			Ignored:       ignore,
		},
	})
	return nil
}

// parseKeywordLine decodes a [Keyword] Value line into the keyword set.
func (r *Reader) parseKeywordLine(line string) error {
	m := keywordLineRe.FindStringSubmatch(line)
	if m == nil {
		return &ParseError{
			Section: SectionKeywords,
			Line:    r.scanner.line,
			Message: "malformed keyword line",
		}
	}
	name := strings.TrimSpace(m[1])
	value := strings.TrimSpace(m[2])

	if value == "" {
		if strings.EqualFold(name, "Reference") {
			// documented continuation-line form, deliberately not implemented
			return fmt.Errorf("%w: [Reference] values on continuation lines (line %d)",
				ErrUnsupported, r.scanner.line)
		}
		return &ParseError{
			Section: SectionKeywords,
			Line:    r.scanner.line,
			Message: fmt.Sprintf("missing value for keyword %q", name),
		}
	}

	entry, ok := lookupKeyword(name)
	if !ok {
		return &ParseError{
			Section: SectionKeywords,
			Line:    r.scanner.line,
			Message: fmt.Sprintf("unknown keyword %q", name),
		}
	}
	if err := entry.assign(&r.keys, value); err != nil {
		return &ParseError{
			Section: SectionKeywords,
			Line:    r.scanner.line,
			Message: fmt.Sprintf("bad %s value for keyword %q", entry.kind, name),
			Cause:   err,
		}
	}

	r.emit(log.Event{
		Stage:    log.StageHeader,
		Category: log.CategoryKeyword,
		Line:     r.scanner.line,
		Keyword: &log.KeywordEvent{
			Name:  name,
			Value: value,
		},
	})
	return nil
}
