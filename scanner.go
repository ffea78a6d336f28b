// Copyright (C) 2024 The jlite authors. All Rights Reserved.

package jlite

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode"

	"go4.org/mem"

	"github.com/parsekit/jlite/internal/escape"
)

// A Scanner reads lexical terminals from an input stream. Each call to Next
// advances the scanner to the next terminal, or reports an error.
type Scanner struct {
	r   *bufio.Reader
	buf bytes.Buffer // current terminal, undecoded
	tok Kind
	err error

	pos, end int // start and end offsets of current terminal

	// Apparent line and column offsets (0-based)
	pline, pcol int
	eline, ecol int
}

// NewScanner constructs a new lexical scanner that consumes input from r.
func NewScanner(r io.Reader) *Scanner {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Scanner{r: br}
}

// Tokenize scans input from beginning to end and returns the complete
// terminal sequence with all string escapes decoded. An input comprising
// only whitespace yields an empty sequence. If the input does not conform
// to the JSON-lite lexical grammar, Tokenize reports an error of concrete
// type *SyntaxError and no terminals.
func Tokenize(input string) ([]Terminal, error) {
	s := NewScanner(strings.NewReader(input))
	var ts []Terminal
	for s.Next() {
		t, err := s.Terminal()
		if err != nil {
			return nil, err
		}
		ts = append(ts, t)
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return ts, nil
}

// Next advances s to the next terminal of the input and reports whether one
// is available. Once Next has returned false, Err reports why the scan
// stopped: nil at a clean end of input, otherwise the lexical or I/O error
// that ended it.
func (s *Scanner) Next() bool {
	if s.err != nil {
		return false
	}
	s.buf.Reset()
	s.tok = Invalid
	s.pos, s.pline, s.pcol = s.end, s.eline, s.ecol

	for {
		ch, err := s.rune()
		if err == io.EOF {
			return false
		} else if err != nil {
			s.fail(err)
			return false
		}

		// Discard whitespace.
		if unicode.IsSpace(ch) {
			s.pos, s.pline, s.pcol = s.end, s.eline, s.ecol
			continue
		}

		// Handle punctuation.
		if t, ok := symbolFor(ch); ok {
			s.buf.WriteRune(ch)
			s.tok = t.Kind
			return true
		}

		// Handle string literals.
		if ch == '"' {
			return s.scanString(ch) == nil
		}

		s.failf("unexpected %q", ch)
		return false
	}
}

// Token returns the kind of the current terminal.
func (s *Scanner) Token() Kind { return s.tok }

// Err returns the error, if any, that stopped the scan. At a clean end of
// input Err returns nil.
func (s *Scanner) Err() error { return s.err }

// Text returns the undecoded text of the current terminal, including the
// enclosing quotation marks of a string. The return value is only valid
// until the next call of Next.
func (s *Scanner) Text() []byte { return s.buf.Bytes() }

// Terminal returns the current terminal as a value, with string escape
// sequences decoded.
func (s *Scanner) Terminal() (Terminal, error) {
	switch s.tok {
	case LBrace:
		return OpenBrace, nil
	case RBrace:
		return CloseBrace, nil
	case Comma:
		return PairComma, nil
	case Colon:
		return PairColon, nil
	case String:
		raw := s.buf.Bytes()
		dec, err := escape.Unescape(mem.B(raw[1 : len(raw)-1]))
		if err != nil {
			return Terminal{}, s.fail(err)
		}
		return Terminal{Kind: String, Text: string(dec)}, nil
	default:
		return Terminal{}, s.failf("no current terminal")
	}
}

// Span returns the location span of the current terminal.
func (s *Scanner) Span() Span { return Span{Pos: s.pos, End: s.end} }

// Location returns the complete location of the current terminal.
func (s *Scanner) Location() Location {
	return Location{
		Span:  s.Span(),
		First: LineCol{Line: s.pline + 1, Column: s.pcol},
		Last:  LineCol{Line: s.eline + 1, Column: s.ecol},
	}
}

// scanString consumes a string literal. The opening quotation mark has
// already been read. Escape validity is checked here; the text accumulates
// undecoded, with Terminal performing the substitutions.
func (s *Scanner) scanString(open rune) error {
	s.buf.WriteRune(open)
	var esc bool
	for {
		ch, err := s.rune()
		if err == io.EOF {
			return s.failf("unterminated string")
		} else if err != nil {
			return s.fail(err)
		}
		if esc {
			// We are awaiting the completion of a \-escape.
			switch ch {
			case '"', '\\', 't', 'n':
				s.buf.WriteRune(ch)
			default:
				return s.failf("invalid %q after escape", ch)
			}
			esc = false
		} else if ch == open {
			s.buf.WriteRune(ch)
			s.tok = String
			return nil
		} else {
			// Any other rune is copied verbatim, control characters
			// included.
			s.buf.WriteRune(ch)
			esc = ch == '\\'
		}
	}
}

func (s *Scanner) rune() (rune, error) {
	ch, nb, err := s.r.ReadRune()
	s.end += nb
	s.ecol += nb
	if ch == '\n' {
		s.eline++
		s.ecol = 0
	}
	return ch, err
}

// SyntaxError is the concrete type of lexical errors reported by a Scanner.
type SyntaxError struct {
	Offset  int     // byte offset at which the scan failed
	LineCol LineCol // line and column of the failure
	Message string

	err error
}

// Error satisfies the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("at %s: %s (offset %d)", e.LineCol, e.Message, e.Offset)
}

// Unwrap supports error wrapping.
func (e *SyntaxError) Unwrap() error { return e.err }

func (s *Scanner) fail(err error) error {
	return s.setErr(&SyntaxError{
		Offset:  s.end,
		LineCol: LineCol{Line: s.eline + 1, Column: s.ecol},
		Message: err.Error(),
		err:     err,
	})
}

func (s *Scanner) failf(msg string, args ...any) error {
	return s.setErr(&SyntaxError{
		Offset:  s.end,
		LineCol: LineCol{Line: s.eline + 1, Column: s.ecol},
		Message: fmt.Sprintf(msg, args...),
	})
}

func (s *Scanner) setErr(err error) error {
	s.err = err
	return err
}
