// SPDX-License-Identifier: MIT

package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/katalvlaran/choropleth/accessor"
	"github.com/katalvlaran/choropleth/split"
)

type inputOptions struct {
	column    int
	header    bool
	delimiter string
}

// readRecords parses CSV input. A file with one number per line is simply a
// one-column CSV. Blank lines and lines starting with '#' are skipped; rows
// may have differing widths.
func readRecords(r io.Reader, in inputOptions) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.Comment = '#'
	if in.delimiter != "" {
		d, size := utf8.DecodeRuneInString(in.delimiter)
		if size != len(in.delimiter) {
			return nil, fmt.Errorf("delimiter %q: want a single character", in.delimiter)
		}
		cr.Comma = d
	}

	recs, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	if in.header && len(recs) > 0 {
		recs = recs[1:]
	}

	return recs, nil
}

// columnAccessor reads field col of a record. Short records are non-numeric.
func columnAccessor(col int) accessor.Func[[]string] {
	return accessor.Coerce(func(rec []string) any {
		if col < 0 || col >= len(rec) {
			return nil
		}
		return rec[col]
	})
}

// parseFloats parses a comma-separated list such as "0,10,100".
func parseFloats(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", p, err)
		}
		out = append(out, f)
	}

	return out, nil
}

// parseRange parses "lower:upper".
func parseRange(s string) (split.Range, error) {
	lo, hi, ok := strings.Cut(s, ":")
	if !ok {
		return split.Range{}, fmt.Errorf("range %q: want lower:upper", s)
	}
	l, err := strconv.ParseFloat(strings.TrimSpace(lo), 64)
	if err != nil {
		return split.Range{}, fmt.Errorf("range %q: %w", s, err)
	}
	u, err := strconv.ParseFloat(strings.TrimSpace(hi), 64)
	if err != nil {
		return split.Range{}, fmt.Errorf("range %q: %w", s, err)
	}

	return split.Range{Lower: l, Upper: u}, nil
}
