package commands

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/touchstone-rf/touchstone-go/pkg/network"
	"github.com/touchstone-rf/touchstone-go/pkg/touchstone"
)

// exportRow is the JSONL schema for one data row.
type exportRow struct {
	Frequency  float64           `json:"frequency"`
	Ports      int               `json:"ports"`
	Parameters []exportParameter `json:"parameters"`
}

// exportParameter is one matrix entry. Decibels is omitted for zero
// parameters, where it is not finite.
type exportParameter struct {
	Destination int      `json:"destination"`
	Source      int      `json:"source"`
	Real        float64  `json:"real"`
	Imag        float64  `json:"imag"`
	Magnitude   float64  `json:"magnitude"`
	Angle       float64  `json:"angle"`
	Decibels    *float64 `json:"decibels,omitempty"`
}

// RunExport exports the data rows to the specified format.
func RunExport(path, format, output string) error {
	r, err := touchstone.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer r.Close()

	var w io.Writer = os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	switch format {
	case "jsonl":
		return exportJSONL(r, w)
	case "csv":
		return exportCSV(r, w)
	default:
		return fmt.Errorf("unknown format: %s (supported: jsonl, csv)", format)
	}
}

func exportJSONL(r *touchstone.Reader, w io.Writer) error {
	encoder := json.NewEncoder(w)
	for {
		pair, err := r.Next(context.Background())
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read row: %w", err)
		}

		row := exportRow{
			Frequency: pair.Frequency,
			Ports:     pair.Matrix.Ports(),
		}
		forEachParameter(pair, func(dst, src int, p network.Parameter) {
			ep := exportParameter{
				Destination: dst,
				Source:      src,
				Real:        p.Real(),
				Imag:        p.Imag(),
				Magnitude:   p.Magnitude(),
				Angle:       p.Angle(),
			}
			if db := p.Decibels(); !math.IsInf(db, 0) {
				ep.Decibels = &db
			}
			row.Parameters = append(row.Parameters, ep)
		})
		if err := encoder.Encode(row); err != nil {
			return fmt.Errorf("failed to encode row: %w", err)
		}
	}
	return nil
}

func exportCSV(r *touchstone.Reader, w io.Writer) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"frequency", "destination", "source", "real", "imag", "magnitude", "angle_deg", "decibels"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for {
		pair, err := r.Next(context.Background())
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read row: %w", err)
		}

		var writeErr error
		forEachParameter(pair, func(dst, src int, p network.Parameter) {
			db := ""
			if v := p.Decibels(); !math.IsInf(v, 0) {
				db = formatFloat(v)
			}
			row := []string{
				formatFloat(pair.Frequency),
				strconv.Itoa(dst),
				strconv.Itoa(src),
				formatFloat(p.Real()),
				formatFloat(p.Imag()),
				formatFloat(p.Magnitude()),
				formatFloat(p.Angle()),
				db,
			}
			if err := cw.Write(row); err != nil && writeErr == nil {
				writeErr = err
			}
		})
		if writeErr != nil {
			return fmt.Errorf("failed to write row: %w", writeErr)
		}
	}
	return nil
}

// forEachParameter visits every matrix entry in destination, source order.
func forEachParameter(pair network.Pair, visit func(dst, src int, p network.Parameter)) {
	ports := pair.Matrix.Ports()
	for dst := 1; dst <= ports; dst++ {
		for src := 1; src <= ports; src++ {
			p, err := pair.Matrix.At(dst, src)
			if err != nil {
				continue
			}
			visit(dst, src, p)
		}
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
