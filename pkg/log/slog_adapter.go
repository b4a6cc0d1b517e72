package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes trace events to an slog.Logger.
// Useful for development when you want to see parse events in console.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger at Debug level.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("reader_id", event.ReaderID),
		slog.String("stage", event.Stage.String()),
		slog.String("category", event.Category.String()),
	}

	if event.Source != "" {
		attrs = append(attrs, slog.String("source", event.Source))
	}
	if event.Line > 0 {
		attrs = append(attrs, slog.Int("line", event.Line))
	}

	// one payload per category
	switch {
	case event.Options != nil:
		attrs = append(attrs,
			slog.String("unit", event.Options.FrequencyUnit),
			slog.String("parameter", event.Options.Parameter),
			slog.String("format", event.Options.Format),
			slog.Float64("resistance", event.Options.Resistance),
		)
		if event.Options.Ignored {
			attrs = append(attrs, slog.Bool("ignored", true))
		}
	case event.Keyword != nil:
		attrs = append(attrs,
			slog.String("keyword", event.Keyword.Name),
			slog.String("value", event.Keyword.Value),
		)
	case event.Pair != nil:
		attrs = append(attrs,
			slog.Float64("frequency", event.Pair.Frequency),
			slog.Int("ports", event.Pair.Ports),
			slog.String("layout", event.Pair.Layout),
		)
	case event.Skip != nil:
		attrs = append(attrs, slog.Float64("frequency", event.Skip.Frequency))
		if event.Skip.Panicked {
			attrs = append(attrs, slog.Bool("panicked", true))
		}
	case event.Error != nil:
		attrs = append(attrs, slog.String("error_msg", event.Error.Message))
		if event.Error.Section != "" {
			attrs = append(attrs, slog.String("section", event.Error.Section))
		}
		if event.Error.Unsupported {
			attrs = append(attrs, slog.Bool("unsupported", true))
		}
	}

	a.logger.LogAttrs(context.Background(), slog.LevelDebug, "touchstone", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
