// SPDX-License-Identifier: MIT

// Package matrix - ASCII dump/load plumbing.
//
// Purpose:
//   - DumpWriter: printf-style writer that remembers the first error so dump
//     routines can be written as straight-line code.
//   - Tokenizer: whitespace token stream with typed readers (Int, BigInt,
//     Bool, Expect) shared by every loader in the module.
//   - Dense.Dump / LoadDense: "<rows> x <cols>" header, then one line per row.
//
// Determinism:
//   - Dumps are byte-stable: dump → load → dump reproduces the same text.

package matrix

import (
	"bufio"
	"fmt"
	"io"
	"math/big"
	"strconv"
)

// DumpWriter forwards formatted output to an io.Writer and keeps the first
// write error; later writes become no-ops.
type DumpWriter struct {
	w   io.Writer
	err error
}

// NewDumpWriter wraps w.
func NewDumpWriter(w io.Writer) *DumpWriter { return &DumpWriter{w: w} }

// Printf writes a formatted fragment unless a previous write failed.
func (d *DumpWriter) Printf(format string, args ...any) {
	if d.err != nil {
		return
	}
	_, d.err = fmt.Fprintf(d.w, format, args...)
}

// Err returns the first write error, if any.
func (d *DumpWriter) Err() error { return d.err }

// Tokenizer splits an input stream into whitespace-separated tokens.
type Tokenizer struct {
	sc *bufio.Scanner
}

// NewTokenizer wraps r.
func NewTokenizer(r io.Reader) *Tokenizer {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	sc.Split(bufio.ScanWords)

	return &Tokenizer{sc: sc}
}

// Next returns the next token.
// Errors: ErrBadDump (wrapping the scanner error or io.ErrUnexpectedEOF).
func (t *Tokenizer) Next() (string, error) {
	if t.sc.Scan() {
		return t.sc.Text(), nil
	}
	if err := t.sc.Err(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrBadDump, err)
	}

	return "", fmt.Errorf("%w: %w", ErrBadDump, io.ErrUnexpectedEOF)
}

// Expect consumes one token and checks it equals want.
func (t *Tokenizer) Expect(want string) error {
	got, err := t.Next()
	if err != nil {
		return err
	}
	if got != want {
		return fmt.Errorf("%w: expected %q, got %q", ErrBadDump, want, got)
	}

	return nil
}

// Int consumes one token as a base-10 int.
func (t *Tokenizer) Int() (int, error) {
	tok, err := t.Next()
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrBadDump, tok)
	}

	return v, nil
}

// BigInt consumes one token as an arbitrary-precision integer.
func (t *Tokenizer) BigInt() (*big.Int, error) {
	tok, err := t.Next()
	if err != nil {
		return nil, err
	}
	v, ok := new(big.Int).SetString(tok, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not an integer", ErrBadDump, tok)
	}

	return v, nil
}

// Bool consumes one token, accepting only "true" and "false".
func (t *Tokenizer) Bool() (bool, error) {
	tok, err := t.Next()
	if err != nil {
		return false, err
	}
	switch tok {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}

	return false, fmt.Errorf("%w: %q is not a boolean", ErrBadDump, tok)
}

// Dump writes m as "<rows> x <cols>\n" followed by one line per row.
func (m *Dense) Dump(d *DumpWriter) {
	d.Printf("%d x %d\n", len(m.rows), m.c)
	for _, r := range m.rows {
		d.Printf("%s\n", r.String())
	}
}

// ASCIIDump writes the dump of m to w.
func (m *Dense) ASCIIDump(w io.Writer) error {
	d := NewDumpWriter(w)
	m.Dump(d)

	return d.Err()
}

// LoadDense reads a matrix previously written by Dump.
// Errors: ErrBadDump on any malformed token; ErrInvalidDimensions on negative shapes.
func LoadDense(t *Tokenizer) (*Dense, error) {
	rows, err := t.Int()
	if err != nil {
		return nil, err
	}
	if err = t.Expect("x"); err != nil {
		return nil, err
	}
	cols, err := t.Int()
	if err != nil {
		return nil, err
	}
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}
	m := &Dense{rows: make([]Row, rows), c: cols}
	for i := 0; i < rows; i++ {
		r := make(Row, cols)
		for j := 0; j < cols; j++ {
			if r[j], err = t.BigInt(); err != nil {
				return nil, err
			}
		}
		m.rows[i] = r
	}

	return m, nil
}

// ASCIILoad reads one matrix written by ASCIIDump from r.
func ASCIILoad(r io.Reader) (*Dense, error) {
	return LoadDense(NewTokenizer(r))
}
