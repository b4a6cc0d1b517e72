// Command snp is a tool for inspecting and converting Touchstone
// S-parameter files.
//
// Usage:
//
//	snp <command> [flags] <file.sNp>
//
// Commands:
//
//	view     View file contents in human-readable format
//	export   Export network data to JSON or CSV format
//	stats    Show statistics about the file
//	convert  Rewrite the file in another data format
//	browse   Explore the file interactively
//
// Examples:
//
//	# View all rows
//	snp view filter.s2p
//
//	# View a frequency window, tracing parse events
//	snp view -freq-min 1.0 -freq-max 2.5 -trace parse.tslog filter.s2p
//
//	# Export to JSONL
//	snp export -format jsonl filter.s2p
//
//	# Convert magnitude-angle data to real-imaginary
//	snp convert -format RI -o filter-ri.s2p filter.s2p
//
//	# Show statistics
//	snp stats filter.s2p
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/touchstone-rf/touchstone-go/cmd/snp/commands"
)

const usage = `snp - Touchstone S-parameter File Inspector

Usage:
  snp <command> [flags] <file.sNp>

Commands:
  view     View file contents in human-readable format
  export   Export network data to JSON or CSV format
  stats    Show statistics about the file
  convert  Rewrite the file in another data format
  browse   Explore the file interactively

Use "snp <command> -help" for more information about a command.
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
	case "stats":
		runStats(args)
	case "convert":
		runConvert(args)
	case "browse":
		runBrowse(args)
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
		fmt.Fprintf(os.Stderr, `snp view - View file contents in human-readable format

Usage:
  snp view [flags] <file.sNp>

Flags:
`)
		fs.PrintDefaults()
	}

	freqMin := fs.String("freq-min", "", "Skip rows below this frequency (file units)")
	freqMax := fs.String("freq-max", "", "Skip rows above this frequency (file units)")
	rows := fs.Int("rows", 0, "Stop after this many rows (0 = all)")
	trace := fs.String("trace", "", "Write parse events to this trace log file")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: file path required")
		fs.Usage()
		os.Exit(1)
	}

	path := fs.Arg(0)

	opts := commands.ViewOptions{
		MaxRows: *rows,
		Trace:   *trace,
	}

	if *freqMin != "" {
		v, err := strconv.ParseFloat(*freqMin, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid -freq-min: %s\n", *freqMin)
			os.Exit(1)
		}
		opts.FreqMin = &v
	}

	if *freqMax != "" {
		v, err := strconv.ParseFloat(*freqMax, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid -freq-max: %s\n", *freqMax)
			os.Exit(1)
		}
		opts.FreqMax = &v
	}

	if err := commands.RunView(path, opts, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runExport(args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `snp export - Export network data to JSON or CSV format

Usage:
  snp export [flags] <file.sNp>

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
		fmt.Fprintln(os.Stderr, "Error: file path required")
		fs.Usage()
		os.Exit(1)
	}

	path := fs.Arg(0)

	if err := commands.RunExport(path, *format, *output); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runStats(args []string) {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `snp stats - Show statistics about the file

Usage:
  snp stats <file.sNp>

`)
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: file path required")
		fs.Usage()
		os.Exit(1)
	}

	path := fs.Arg(0)

	if err := commands.RunStats(path, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runConvert(args []string) {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `snp convert - Rewrite the file in another data format

Usage:
  snp convert -format <MA|DB|RI> [flags] <file.sNp>

Flags:
`)
		fs.PrintDefaults()
	}

	format := fs.String("format", "", "Target data format (MA, DB, RI; required)")
	output := fs.String("o", "", "Output file (default: stdout)")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: file path required")
		fs.Usage()
		os.Exit(1)
	}

	if *format == "" {
		fmt.Fprintln(os.Stderr, "Error: target format (-format) required")
		fs.Usage()
		os.Exit(1)
	}

	path := fs.Arg(0)

	opts := commands.ConvertOptions{
		Format: *format,
		Output: *output,
	}

	if err := commands.RunConvert(path, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runBrowse(args []string) {
	fs := flag.NewFlagSet("browse", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `snp browse - Explore the file interactively

Usage:
  snp browse <file.sNp>

`)
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: file path required")
		fs.Usage()
		os.Exit(1)
	}

	path := fs.Arg(0)

	b, err := commands.NewBrowse(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	b.Run()
}
