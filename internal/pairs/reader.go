// Package pairs reads line-delimited, tab-separated string pairs.
package pairs

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrMalformed indicates a line that is not exactly two tab-separated fields.
var ErrMalformed = errors.New("pairs: expected two tab-separated fields")

// Pair is one input line split into its two fields.
type Pair struct {
	Line   int
	Source string
	Target string
}

// Reader yields pairs from an underlying stream. Blank lines are skipped
// and a trailing carriage return is dropped.
type Reader struct {
	scanner *bufio.Scanner
	line    int
}

// NewReader returns a Reader over r.
func NewReader(r io.Reader) *Reader {
	return &Reader{scanner: bufio.NewScanner(r)}
}

// Next returns the next pair, or io.EOF when the input is exhausted.
func (r *Reader) Next() (Pair, error) {
	for r.scanner.Scan() {
		r.line++
		text := strings.TrimSuffix(r.scanner.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}
		fields := strings.Split(text, "\t")
		if len(fields) != 2 {
			return Pair{}, fmt.Errorf("line %d has %d fields: %w", r.line, len(fields), ErrMalformed)
		}

		return Pair{Line: r.line, Source: fields[0], Target: fields[1]}, nil
	}
	if err := r.scanner.Err(); err != nil {
		return Pair{}, fmt.Errorf("pairs: reading line %d: %w", r.line+1, err)
	}

	return Pair{}, io.EOF
}
