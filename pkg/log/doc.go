// Package log provides structured parse-trace logging for Touchstone readers.
//
// A Logger receives one Event for every line a reader acted on: the
// honored options line, each keyword, each row yielded or skipped, and
// any terminal parse failure. The trace is separate from operational
// logging (slog); it is a machine-readable record of one parse run,
// meant for replay and analysis.
//
// # Basic Usage
//
// Callers configure tracing by providing a Logger in the reader settings:
//
//	// For development: log to console via slog
//	settings.Logger = log.NewSlogAdapter(slog.Default())
//
//	// For offline analysis: write to binary file
//	settings.Logger, _ = log.NewFileLogger("run.tslog")
//
//	// Both: use MultiLogger
//	settings.Logger = log.NewMultiLogger(
//	    log.NewSlogAdapter(slog.Default()),
//	    fileLogger,
//	)
//
// # Event Types
//
// Events are captured at both parse stages:
//   - Header: options lines (OptionsEvent) and keyword lines (KeywordEvent)
//   - Data: yielded rows (PairEvent) and selector-skipped rows (SkipEvent)
//
// Terminal parse failures have a dedicated error payload.
//
// # File Format
//
// Trace files use CBOR encoding with .tslog extension. The snp-trace CLI
// tool provides viewing, filtering, and export capabilities.
package log
