package commands

import (
	"context"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/touchstone-rf/touchstone-go/pkg/network"
	"github.com/touchstone-rf/touchstone-go/pkg/touchstone"
)

// Browse is the interactive file explorer. The whole file is loaded up
// front so commands can seek freely.
type Browse struct {
	rl     *readline.Instance
	source string
	opts   touchstone.Options
	keys   touchstone.Keywords
	pairs  []network.Pair
}

// NewBrowse loads the file and prepares the interactive shell.
func NewBrowse(path string) (*Browse, error) {
	r, err := touchstone.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer r.Close()

	pairs, err := r.All(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "snp> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}

	return &Browse{
		rl:     rl,
		source: r.Source(),
		opts:   r.Options(),
		keys:   r.Keywords(),
		pairs:  pairs,
	}, nil
}

// Run starts the interactive command loop.
func (b *Browse) Run() {
	defer b.rl.Close()

	out := b.rl.Stdout()
	fmt.Fprintf(out, "%s: %d rows\n", b.source, len(b.pairs))
	if note := versionNote(b.keys); note != "" {
		fmt.Fprintf(out, "Warning: %s\n", note)
	}
	b.printHelp(out)

	for {
		line, err := b.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(out, "Exiting...")
			return
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		parts := strings.Fields(input)
		cmd := strings.ToLower(parts[0])
		args := parts[1:]

		switch cmd {
		case "help", "?":
			b.printHelp(out)

		case "options", "o":
			b.cmdOptions(out)

		case "keywords", "k":
			b.cmdKeywords(out)

		case "ports":
			b.cmdPorts(out)

		case "freqs", "f":
			b.cmdFreqs(out)

		case "row", "r":
			b.cmdRow(out, args)

		case "at":
			b.cmdAt(out, args)

		case "quit", "exit", "q":
			fmt.Fprintln(out, "Exiting...")
			return

		default:
			fmt.Fprintf(out, "Unknown command: %s (type 'help' for commands)\n", cmd)
		}
	}
}

func (b *Browse) printHelp(w io.Writer) {
	fmt.Fprintln(w, `
Commands:
  options            - Show the decoded options line
  keywords           - Show the decoded keyword lines
  ports              - Show the port count
  freqs              - List row frequencies
  row <n>            - Show the matrix of the n-th row (1-based)
  at <freq>          - Show the matrix nearest to a frequency
  help               - Show this help
  quit               - Exit`)
}

func (b *Browse) cmdOptions(w io.Writer) {
	fmt.Fprintf(w, "Frequency Unit: %s\n", b.opts.FrequencyUnit)
	fmt.Fprintf(w, "Parameter:      %s\n", b.opts.Parameter)
	fmt.Fprintf(w, "Format:         %s\n", b.opts.Format)
	fmt.Fprintf(w, "Resistance:     %g ohms\n", b.opts.Resistance)
}

func (b *Browse) cmdKeywords(w io.Writer) {
	var buf strings.Builder
	printKeywords(&buf, b.keys)
	if buf.Len() == 0 {
		fmt.Fprintln(w, "No keywords")
		return
	}
	fmt.Fprint(w, buf.String())
}

func (b *Browse) cmdPorts(w io.Writer) {
	if len(b.pairs) == 0 {
		fmt.Fprintln(w, "No data rows")
		return
	}
	fmt.Fprintf(w, "%d ports, %d rows\n", b.pairs[0].Matrix.Ports(), len(b.pairs))
}

func (b *Browse) cmdFreqs(w io.Writer) {
	if len(b.pairs) == 0 {
		fmt.Fprintln(w, "No data rows")
		return
	}
	for i, pair := range b.pairs {
		fmt.Fprintf(w, "%4d  %g %s\n", i+1, pair.Frequency, b.opts.FrequencyUnit)
	}
}

func (b *Browse) cmdRow(w io.Writer, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(w, "Usage: row <n>")
		return
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > len(b.pairs) {
		fmt.Fprintf(w, "Row must be 1..%d\n", len(b.pairs))
		return
	}
	formatPair(w, b.pairs[n-1], b.opts)
}

func (b *Browse) cmdAt(w io.Writer, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(w, "Usage: at <frequency>")
		return
	}
	frequency, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		fmt.Fprintf(w, "Invalid frequency: %s\n", args[0])
		return
	}
	if len(b.pairs) == 0 {
		fmt.Fprintln(w, "No data rows")
		return
	}

	nearest := 0
	for i, pair := range b.pairs {
		if math.Abs(pair.Frequency-frequency) < math.Abs(b.pairs[nearest].Frequency-frequency) {
			nearest = i
		}
	}
	formatPair(w, b.pairs[nearest], b.opts)
}
