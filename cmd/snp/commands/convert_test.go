package commands

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/touchstone-rf/touchstone-go/pkg/touchstone"
)

func TestRunConvertRoundTrip(t *testing.T) {
	path := writeTempFile(t, `# GHZ S MA R 50
1.0 0.9 -10 0.1 80 0.1 80 0.9 -10
2.0 0.8 -20 0.2 70 0.2 70 0.8 -20
`)
	output := filepath.Join(t.TempDir(), "out.s2p")

	if err := RunConvert(path, ConvertOptions{Format: "RI", Output: output}); err != nil {
		t.Fatalf("RunConvert failed: %v", err)
	}

	r, err := touchstone.Open(output)
	if err != nil {
		t.Fatalf("opening converted file failed: %v", err)
	}
	defer r.Close()

	if r.Options().Format != touchstone.FormatRealImaginary {
		t.Errorf("expected RI format, got %s", r.Options().Format)
	}
	if r.Options().FrequencyUnit != touchstone.UnitGHz {
		t.Errorf("expected unit carried over, got %s", r.Options().FrequencyUnit)
	}

	pairs, err := r.All(context.Background())
	if err != nil {
		t.Fatalf("reading converted rows failed: %v", err)
	}
	if len(pairs) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(pairs))
	}

	orig, err := touchstone.Open(path)
	if err != nil {
		t.Fatalf("reopening original failed: %v", err)
	}
	defer orig.Close()
	origPairs, err := orig.All(context.Background())
	if err != nil {
		t.Fatalf("reading original rows failed: %v", err)
	}

	for i, pair := range pairs {
		if pair.Frequency != origPairs[i].Frequency {
			t.Errorf("row %d: frequency %g, want %g", i, pair.Frequency, origPairs[i].Frequency)
		}
		for dst := 1; dst <= 2; dst++ {
			for src := 1; src <= 2; src++ {
				got, err := pair.Matrix.At(dst, src)
				if err != nil {
					t.Fatalf("row %d At(%d,%d) failed: %v", i, dst, src, err)
				}
				want, err := origPairs[i].Matrix.At(dst, src)
				if err != nil {
					t.Fatalf("row %d original At(%d,%d) failed: %v", i, dst, src, err)
				}
				if math.Abs(got.Real()-want.Real()) > 1e-9 || math.Abs(got.Imag()-want.Imag()) > 1e-9 {
					t.Errorf("row %d S(%d,%d): got %g%+gi, want %g%+gi",
						i, dst, src, got.Real(), got.Imag(), want.Real(), want.Imag())
				}
			}
		}
	}
}

func TestRunConvertKeywords(t *testing.T) {
	path := writeTempFile(t, `[Version] 2.0
[Number of Ports] 2
[Two-Port Data Order] 21_12
# GHZ S MA R 50
1.0 0.9 -10 0.1 80 0.1 80 0.9 -10
`)
	output := filepath.Join(t.TempDir(), "out.s2p")

	if err := RunConvert(path, ConvertOptions{Format: "DB", Output: output}); err != nil {
		t.Fatalf("RunConvert failed: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("reading output failed: %v", err)
	}
	text := string(data)

	if !strings.Contains(text, "! converted from") {
		t.Errorf("expected provenance comment, got: %s", text)
	}
	if !strings.Contains(text, "[Version] 2.0") {
		t.Errorf("expected version keyword carried over, got: %s", text)
	}
	if !strings.Contains(text, "[Number of Ports] 2") {
		t.Errorf("expected port keyword carried over, got: %s", text)
	}

	// Rows are re-emitted in the default layout, so the declared order
	// follows suit.
	if !strings.Contains(text, "[Two-Port Data Order] 12_21") {
		t.Errorf("expected normalized data order, got: %s", text)
	}
	if !strings.Contains(text, "# GHZ S DB R 50") {
		t.Errorf("expected DB options line, got: %s", text)
	}
}

func TestRunConvertUnknownFormat(t *testing.T) {
	path := writeTempFile(t, `# GHZ S MA R 50
1.0 0.5 45
`)

	err := RunConvert(path, ConvertOptions{Format: "XY"})
	if err == nil {
		t.Fatal("expected error for unknown format")
	}
	if !strings.Contains(err.Error(), "unknown format: XY") {
		t.Errorf("unexpected error: %v", err)
	}
}
