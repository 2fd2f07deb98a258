// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jdom

import (
	"math"
	"unicode/utf8"

	"github.com/creachadair/jdom/internal/escape"

	"go4.org/mem"
)

// A scanner recognizes the lexical elements of JSON from an InputStream. The
// grammar is driven by the Parser, which peeks at the next byte to decide
// which element to scan, so that the error reported for malformed input
// depends only on the production being parsed.
//
// Lexical errors are reported by panicking with a *ParseError; the Parser
// recovers them at its entry points.
type scanner struct {
	in       InputStream
	comments bool // allow comments
	nanInf   bool // allow NaN and Infinity

	buf  []byte // decoded text of the current token
	num  Number // value of the current number token
	cbuf []byte // text of the current comment

	// If non-nil, onComment is called for each comment when comments are
	// enabled.
	onComment func(text []byte, span Span)
}

// skipSpace discards whitespace, and comments if they are enabled.
func (s *scanner) skipSpace() {
	for !s.in.Done() {
		switch ch := s.in.Peek(); ch {
		case ' ', '\t', '\n', '\r':
			s.in.Take()
		case '/':
			if !s.comments {
				return
			}
			s.scanComment()
		default:
			return
		}
	}
}

// scanComment consumes a line or block comment.
// Precondition: Peek() == '/'.
func (s *scanner) scanComment() {
	pos := s.in.Tell()
	s.cbuf = append(s.cbuf[:0], s.in.Take())
	switch s.in.Peek() {
	case '/': // line comment to LF
		for !s.in.Done() {
			ch := s.in.Take()
			s.cbuf = append(s.cbuf, ch)
			if ch == '\n' {
				break
			}
		}

	case '*': // block comment
		s.cbuf = append(s.cbuf, s.in.Take())
		for {
			if s.in.Done() {
				s.fail(UnspecificSyntaxError, pos)
			}
			ch := s.in.Take()
			s.cbuf = append(s.cbuf, ch)
			if ch == '*' && s.in.Peek() == '/' && !s.in.Done() {
				s.cbuf = append(s.cbuf, s.in.Take())
				break
			}
		}

	default:
		s.fail(UnspecificSyntaxError, pos)
	}
	if s.onComment != nil {
		s.onComment(s.cbuf, Span{Pos: pos, End: s.in.Tell()})
	}
}

// scanString consumes a quoted string and stores its decoded contents in
// s.buf.
// Precondition: Peek() == '"'.
func (s *scanner) scanString() {
	s.buf = s.buf[:0]
	s.in.Take() // open quote
	for {
		pos := s.in.Tell()
		if s.in.Done() {
			s.fail(StringMissQuotationMark, pos)
		}
		ch := s.in.Peek()
		switch {
		case ch == '"':
			s.in.Take()
			return

		case ch == '\\':
			s.in.Take()
			s.scanEscape(pos)

		case ch < ' ':
			// Unescaped control characters, including NUL, are not permitted.
			s.fail(StringInvalidEncoding, pos)

		case ch < utf8.RuneSelf:
			s.buf = append(s.buf, s.in.Take())

		default:
			s.scanUTF8(pos)
		}
	}
}

// scanEscape consumes the remainder of an escape sequence whose backslash
// began at offset esc. Errors are reported at the offset of the backslash.
func (s *scanner) scanEscape(esc int) {
	ch := s.in.Peek()
	if s.in.Done() {
		s.fail(StringEscapeInvalid, esc)
	}
	if b, ok := escape.Simple(ch); ok {
		s.in.Take()
		s.buf = append(s.buf, b)
		return
	} else if ch != 'u' {
		s.fail(StringEscapeInvalid, esc)
	}
	s.in.Take()
	r := s.readHex4(esc)
	if escape.IsHighSurrogate(r) {
		// A high surrogate must be followed at once by an escaped low surrogate.
		if s.in.Peek() != '\\' || s.in.Done() {
			s.fail(StringUnicodeSurrogateInvalid, esc)
		}
		s.in.Take()
		if s.in.Peek() != 'u' || s.in.Done() {
			s.fail(StringUnicodeSurrogateInvalid, esc)
		}
		s.in.Take()
		lo := s.readHex4(esc)
		if !escape.IsLowSurrogate(lo) {
			s.fail(StringUnicodeSurrogateInvalid, esc)
		}
		r = escape.Combine(r, lo)
	} else if escape.IsLowSurrogate(r) {
		s.fail(StringUnicodeSurrogateInvalid, esc)
	}
	s.buf = utf8.AppendRune(s.buf, r)
}

// readHex4 reads exactly 4 hexadecimal digits from the input.
func (s *scanner) readHex4(esc int) rune {
	var r rune
	for i := 0; i < 4; i++ {
		v := escape.HexValue(s.in.Peek())
		if v < 0 || s.in.Done() {
			s.fail(StringUnicodeEscapeInvalidHex, esc)
		}
		s.in.Take()
		r = r<<4 | v
	}
	return r
}

// scanUTF8 consumes a multi-byte UTF-8 sequence beginning at offset pos.
func (s *scanner) scanUTF8(pos int) {
	n := escape.SeqLen(s.in.Peek())
	if n == 0 {
		s.fail(StringInvalidEncoding, pos)
	}
	start := len(s.buf)
	for i := 0; i < n; i++ {
		if s.in.Done() {
			s.fail(StringInvalidEncoding, pos)
		}
		s.buf = append(s.buf, s.in.Take())
	}
	if !escape.ValidSeq(s.buf[start:]) {
		s.fail(StringInvalidEncoding, pos)
	}
}

// scanNumber consumes a number and stores its text in s.buf and its value in
// s.num. If NaN and Infinity are enabled, it also accepts those.
func (s *scanner) scanNumber() {
	pos := s.in.Tell()
	s.buf = s.buf[:0]
	minus := s.accept('-')

	if s.nanInf && !s.in.Done() {
		switch s.in.Peek() {
		case 'N':
			s.requireWord(pos, "NaN")
			s.num = Float(math.NaN())
			return
		case 'I':
			s.requireWord(pos, "Infinity")
			if minus {
				s.num = Float(math.Inf(-1))
			} else {
				s.num = Float(math.Inf(1))
			}
			return
		}
	}

	// Integer part. A leading zero must be the only digit; anything that
	// follows it is left for the parser to reject.
	if s.in.Done() || !isDigit(s.in.Peek()) {
		s.fail(ValueInvalid, pos)
	} else if !s.accept('0') {
		s.readDigits()
	}

	// Fraction.
	if s.accept('.') {
		if s.in.Done() || !isDigit(s.in.Peek()) {
			s.fail(NumberMissFraction, s.in.Tell())
		}
		s.readDigits()
	}

	// Exponent.
	if s.accept('e') || s.accept('E') {
		_ = s.accept('+') || s.accept('-')
		if s.in.Done() || !isDigit(s.in.Peek()) {
			s.fail(NumberMissExponent, s.in.Tell())
		}
		s.readDigits()
	}

	num, code := ParseNumber(s.buf)
	if code != None {
		s.fail(code, pos)
	}
	s.num = num
}

// scanLiteral consumes the literal word, reporting ValueInvalid at the start
// of the word if the input does not match.
func (s *scanner) scanLiteral(word string) {
	s.buf = s.buf[:0]
	s.requireWord(s.in.Tell(), word)
}

// requireWord consumes the bytes of word, or fails with ValueInvalid at pos.
func (s *scanner) requireWord(pos int, word string) {
	w := mem.S(word)
	for i := 0; i < w.Len(); i++ {
		if s.in.Done() || s.in.Peek() != w.At(i) {
			s.fail(ValueInvalid, pos)
		}
		s.buf = append(s.buf, s.in.Take())
	}
}

// accept consumes ch and reports true if it is the next byte of input.
func (s *scanner) accept(ch byte) bool {
	if s.in.Done() || s.in.Peek() != ch {
		return false
	}
	s.buf = append(s.buf, s.in.Take())
	return true
}

// readDigits consumes decimal digits until EOF or a non-digit.
func (s *scanner) readDigits() {
	for !s.in.Done() && isDigit(s.in.Peek()) {
		s.buf = append(s.buf, s.in.Take())
	}
}

func (s *scanner) fail(code ErrorCode, pos int) {
	panic(&ParseError{Code: code, Offset: pos})
}

func (s *scanner) failErr(code ErrorCode, pos int, err error) {
	panic(&ParseError{Code: code, Offset: pos, Err: err})
}

func isDigit(ch byte) bool { return '0' <= ch && ch <= '9' }
