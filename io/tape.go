package io

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Tape provides sequential text I/O of values.
// Input is read as base-10 integers separated by commas or whitespace.
// Output is written as one integer per line.
type Tape struct {
	Input  io.Reader
	Output io.Writer

	// Err is set when input could not be read or parsed.
	Err error

	scanner *bufio.Scanner
}

var _ Channel = (*Tape)(nil)
var _ Faulted = (*Tape)(nil)

// Rewind is not possible on a tape.
func (tc *Tape) Rewind() {
}

// Fault returns the error that stopped Receive, if any.
func (tc *Tape) Fault() error {
	return tc.Err
}

// scanValues splits input on commas and whitespace.
func scanValues(data []byte, atEOF bool) (advance int, token []byte, err error) {
	isSep := func(r rune) bool { return r == ',' || unicode.IsSpace(r) }

	start := 0
	for width := 0; start < len(data); start += width {
		var r rune
		r, width = utf8.DecodeRune(data[start:])
		if !isSep(r) {
			break
		}
	}

	for n, width := start, 0; n < len(data); n += width {
		var r rune
		r, width = utf8.DecodeRune(data[n:])
		if isSep(r) {
			return n + width, data[start:n], nil
		}
	}

	if atEOF && len(data) > start {
		return len(data), data[start:], nil
	}

	return start, nil, nil
}

// Receive returns an iterator that yields values parsed from the input
// stream. Iteration stops at end of input, or on the first malformed token,
// which is recorded in Err.
func (tc *Tape) Receive() iter.Seq[int64] {
	return func(yield func(value int64) bool) {
		if tc.Input == nil {
			return
		}

		if tc.scanner == nil {
			tc.scanner = bufio.NewScanner(tc.Input)
			tc.scanner.Split(scanValues)
		}

		for tc.scanner.Scan() {
			word := strings.TrimSpace(tc.scanner.Text())
			value, err := strconv.ParseInt(word, 10, 64)
			if err != nil {
				tc.Err = ErrToken(word)
				return
			}
			if !yield(value) {
				return
			}
		}

		if err := tc.scanner.Err(); err != nil {
			tc.Err = err
		}
	}
}

// Send writes a value to the output stream.
func (tc *Tape) Send(value int64) (err error) {
	if tc.Output == nil {
		return
	}

	_, err = fmt.Fprintf(tc.Output, "%d\n", value)

	return
}
