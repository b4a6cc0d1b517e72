// Package touchstone reads and writes Touchstone-format network parameter
// files (.s1p, .s2p, ... .sNp).
//
// # Document Structure
//
// A Touchstone document is line-oriented text in two sections:
//
//	! amplifier, measured 2026-03-14      comment, legal anywhere
//	# GHz S MA R 50                       options line
//	[Number of Ports] 2                   keyword lines (newer revisions)
//	1.0 0.9 -2 0.01 85 0.5 45 0.8 -10    data rows
//
// The header runs until the first line that does not start with '!', '#'
// or '['. Exactly one options line is honored; later ones are validated,
// reported in the trace, and discarded. Keyword lines may appear in any
// order within the header.
//
// # Reading
//
// Open, OpenString and NewReader parse the header eagerly and return a
// Reader; data rows are pulled lazily:
//
//	r, err := touchstone.Open("amp.s2p")
//	if err != nil {
//	    return err
//	}
//	defer r.Close()
//	for {
//	    pair, err := r.Next(ctx)
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	    use(pair)
//	}
//
// Each row yields a network.Pair: the frequency in the declared unit
// (never rescaled) and an N-port matrix, with N inferred from the token
// count of the row itself. Two-port rows honor [Two-Port Data Order];
// other port counts are always source-port-major.
//
// # Errors
//
// Malformed input surfaces as *ParseError carrying the section, 1-based
// line and cause. Recognized-but-unimplemented constructs surface as
// ErrUnsupported-wrapped errors instead, so
//
//	errors.As(err, &parseErr)    // malformed input
//	errors.Is(err, ErrUnsupported) // unimplemented construct
//
// stay distinguishable. Every non-nil Next result, io.EOF included, is
// terminal for the Reader.
//
// # Tracing
//
// Settings.Logger receives one pkg/log event per honored or ignored
// options line, keyword, yielded row, skipped row and terminal error.
//
// # Writing
//
// Writer emits documents in the same dialect the Reader accepts, always
// source-port-major, so written output parses back to the same values.
package touchstone
