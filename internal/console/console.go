// Package console is the operator-facing input/output port used by the till.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrInputClosed is returned when the input source has no more tokens.
var ErrInputClosed = errors.New("input closed")

// Port reads operator input one line at a time and writes plain text lines.
type Port interface {
	// ReadToken blocks until the next line is available and returns it trimmed.
	ReadToken() (string, error)
	// Prompt writes text without a trailing newline.
	Prompt(text string)
	Println(a ...any)
}

// Stream is a Port over a reader and a writer.
type Stream struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewStream(in io.Reader, out io.Writer) *Stream {
	return &Stream{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

func (s *Stream) ReadToken() (string, error) {
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", ErrInputClosed
	}
	return strings.TrimSpace(s.in.Text()), nil
}

func (s *Stream) Prompt(text string) {
	fmt.Fprint(s.out, text)
}

func (s *Stream) Println(a ...any) {
	fmt.Fprintln(s.out, a...)
}
