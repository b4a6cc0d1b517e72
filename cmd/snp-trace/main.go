// Command snp-trace is a tool for viewing and analyzing Touchstone parse
// trace files.
//
// Trace files are created by the parse tracing infrastructure, for
// example when running snp view with the -trace flag.
//
// Usage:
//
//	snp-trace <command> [flags] <file.tslog>
//
// Commands:
//
//	view     View trace file in human-readable format
//	export   Export trace file to JSON or CSV format
//	filter   Filter trace file and write to new file
//	stats    Show statistics about the trace file
//
// Examples:
//
//	# View all events
//	snp-trace view parse.tslog
//
//	# View only data-stage events
//	snp-trace view -stage data parse.tslog
//
//	# View only skipped rows
//	snp-trace view -category skip parse.tslog
//
//	# Export to JSONL
//	snp-trace export -format jsonl parse.tslog
//
//	# Keep one reader run and save to a new file
//	snp-trace filter -reader-id abc12345 -o run.tslog parse.tslog
//
//	# Show statistics
//	snp-trace stats parse.tslog
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/touchstone-rf/touchstone-go/cmd/snp-trace/commands"
	"github.com/touchstone-rf/touchstone-go/pkg/log"
)

const usage = `snp-trace - Touchstone Parse Trace Analyzer

Usage:
  snp-trace <command> [flags] <file.tslog>

Commands:
  view     View trace file in human-readable format
  export   Export trace file to JSON or CSV format
  filter   Filter trace file and write to new file
  stats    Show statistics about the trace file

Use "snp-trace <command> -help" for more information about a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "view":
		runView(args)
	case "export":
		runExport(args)
	case "filter":
		runFilter(args)
	case "stats":
		runStats(args)
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

func runView(args []string) {
	fs := flag.NewFlagSet("view", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `snp-trace view - View trace file in human-readable format

Usage:
  snp-trace view [flags] <file.tslog>

Flags:
`)
		fs.PrintDefaults()
	}

	readerID := fs.String("reader-id", "", "Filter by reader run ID")
	stage := fs.String("stage", "", "Filter by stage (header, data)")
	category := fs.String("category", "", "Filter by category (options, keyword, pair, skip, error)")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: trace file path required")
		fs.Usage()
		os.Exit(1)
	}

	path := fs.Arg(0)

	filter := log.Filter{ReaderID: *readerID}

	if *stage != "" {
		s, err := commands.ParseStageFlag(*stage)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		filter.Stage = &s
	}

	if *category != "" {
		c, err := commands.ParseCategoryFlag(*category)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		filter.Category = &c
	}

	if err := commands.RunView(path, filter, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runExport(args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `snp-trace export - Export trace file to JSON or CSV format

Usage:
  snp-trace export [flags] <file.tslog>

Flags:
`)
		fs.PrintDefaults()
	}

	format := fs.String("format", "jsonl", "Output format (jsonl, csv)")
	output := fs.String("o", "", "Output file (default: stdout)")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: trace file path required")
		fs.Usage()
		os.Exit(1)
	}

	path := fs.Arg(0)

	if err := commands.RunExport(path, *format, *output); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runFilter(args []string) {
	fs := flag.NewFlagSet("filter", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `snp-trace filter - Filter trace file and write to new file

Usage:
  snp-trace filter [flags] <file.tslog>

Flags:
`)
		fs.PrintDefaults()
	}

	output := fs.String("o", "", "Output file (required)")
	readerID := fs.String("reader-id", "", "Filter by reader run ID")
	source := fs.String("source", "", "Filter by source name")
	timeStart := fs.String("time-start", "", "Filter by start time (RFC3339)")
	timeEnd := fs.String("time-end", "", "Filter by end time (RFC3339)")
	stage := fs.String("stage", "", "Filter by stage (header, data)")
	category := fs.String("category", "", "Filter by category (options, keyword, pair, skip, error)")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: trace file path required")
		fs.Usage()
		os.Exit(1)
	}

	if *output == "" {
		fmt.Fprintln(os.Stderr, "Error: output file (-o) required")
		fs.Usage()
		os.Exit(1)
	}

	opts := commands.FilterOptions{
		Output:    *output,
		ReaderID:  *readerID,
		Source:    *source,
		TimeStart: *timeStart,
		TimeEnd:   *timeEnd,
		Stage:     *stage,
		Category:  *category,
	}

	if err := commands.RunFilter(fs.Arg(0), opts, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runStats(args []string) {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `snp-trace stats - Show statistics about the trace file

Usage:
  snp-trace stats <file.tslog>

`)
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: trace file path required")
		fs.Usage()
		os.Exit(1)
	}

	path := fs.Arg(0)

	if err := commands.RunStats(path, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
