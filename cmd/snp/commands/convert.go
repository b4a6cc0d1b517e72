package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/touchstone-rf/touchstone-go/pkg/touchstone"
)

// ConvertOptions configures the convert command.
type ConvertOptions struct {
	// Format is the target value encoding token (MA, DB, RI).
	Format string

	// Output is the destination path. Empty or "-" writes to stdout.
	Output string
}

// RunConvert rewrites the file with a different value encoding. Options
// other than the format, and all keywords, carry over; rows come out in
// source-port-major order regardless of the input's declared order.
func RunConvert(path string, opts ConvertOptions) error {
	format, ok := touchstone.ParseFormat(opts.Format)
	if !ok {
		return fmt.Errorf("unknown format: %s (supported: MA, DB, RI)", opts.Format)
	}

	r, err := touchstone.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer r.Close()

	var w io.Writer = os.Stdout
	if opts.Output != "" && opts.Output != "-" {
		f, err := os.Create(opts.Output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	wopts := r.Options()
	wopts.Format = format
	tw := touchstone.NewWriter(w, wopts)

	if err := tw.WriteComment(fmt.Sprintf("converted from %s", filepath.Base(path))); err != nil {
		return fmt.Errorf("failed to write comment: %w", err)
	}
	if err := tw.WriteKeywords(r.Keywords()); err != nil {
		return fmt.Errorf("failed to write keywords: %w", err)
	}

	for {
		pair, err := r.Next(context.Background())
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read row: %w", err)
		}
		if err := tw.WritePair(pair); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	return nil
}
