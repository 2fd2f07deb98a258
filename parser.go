// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jdom

import (
	"fmt"
	"io"
)

// An Anchor describes the token that triggered a Handler event. The methods
// of an Anchor report the kind, location, and contents of the token.
type Anchor interface {
	Kind() Kind     // the kind of the value, or of the enclosing container
	Text() []byte   // a view of the decoded text of the token
	Copy() []byte   // a copy of the decoded text of the token
	Number() Number // the value of a number token
	Span() Span     // the location of the token in the input
	Len() int       // the number of members or elements of a closed container
}

// A Handler handles events from parsing an input stream. If a method reports
// an error, parsing stops at once and the parser reports a *ParseError with
// code Termination that wraps the handler's error.
//
// The Anchor argument to a Handler method is only valid for the duration of
// that method call. If the method needs to retain information about the
// token after it returns, it must copy the relevant data.
type Handler interface {
	// Begin a new object, whose open brace is at loc.
	BeginObject(loc Anchor) error

	// Report an object member key. The text of loc is the decoded key.
	Key(loc Anchor) error

	// End the most-recently-opened object, whose close brace is at loc.
	// The Len of loc is the number of members in the object.
	EndObject(loc Anchor) error

	// Begin a new array, whose open bracket is at loc.
	BeginArray(loc Anchor) error

	// End the most-recently-opened array, whose close bracket is at loc.
	// The Len of loc is the number of elements in the array.
	EndArray(loc Anchor) error

	// Report a scalar value: null, true, false, a number, or a string.
	// The text of a string is decoded; the text of a number or a constant is
	// as written in the input.
	Value(loc Anchor) error
}

// CommentHandler is an optional interface that a Handler may implement to
// handle comments. If a handler implements this method and comments are
// enabled, Comment is called for each comment in the input. Otherwise
// comments are silently discarded.
type CommentHandler interface {
	// Comment reports the text of a comment, including its delimiters.
	// Line comments include their trailing newline, if present.
	Comment(text []byte, span Span)
}

// Options control the behavior of a Parser. A nil *Options is ready for use
// and enforces strict JSON.
type Options struct {
	// Allow C-style block comments (/* ... */) and line comments (// ...)
	// wherever whitespace is allowed.
	AllowComments bool

	// Allow a comma after the last member of an object or array.
	AllowTrailingCommas bool

	// Allow the non-standard number values NaN, Infinity, and -Infinity.
	AllowNaNAndInf bool

	// The maximum nesting depth of objects and arrays. If zero, the limit is
	// DefaultMaxDepth. If negative, nesting is not limited, and a deeply
	// nested input may exhaust the stack.
	MaxDepth int
}

// DefaultMaxDepth is the nesting limit used when Options.MaxDepth is zero.
const DefaultMaxDepth = 10000

// Parser is a stream parser that consumes input and delivers events to a
// Handler corresponding with the structure of the input.
//
// A Parser is not safe for concurrent use. Independent parsers, each with its
// own input stream, share no state.
type Parser struct {
	s     scanner
	depth int
	max   int
	tcom  bool

	a anchor // the current event
}

// NewParser constructs a Parser that consumes input from in.
func NewParser(in InputStream, opts *Options) *Parser {
	p := &Parser{s: scanner{in: in}, max: DefaultMaxDepth}
	if opts != nil {
		p.s.comments = opts.AllowComments
		p.s.nanInf = opts.AllowNaNAndInf
		p.tcom = opts.AllowTrailingCommas
		if opts.MaxDepth != 0 {
			p.max = opts.MaxDepth
		}
	}
	return p
}

// Parse parses a single JSON document from in and delivers events to h.
// It is shorthand for NewParser(in, opts).Parse(h).
func Parse(in InputStream, h Handler, opts *Options) error {
	return NewParser(in, opts).Parse(h)
}

// Parse parses the remaining input as a single JSON document and delivers
// events to h. The input must contain exactly one value, optionally
// surrounded by whitespace.
//
// In case of malformed input, or if h stops the parse, the returned error
// has concrete type *ParseError. If the input stream fails, Parse returns
// the stream's error instead.
func (p *Parser) Parse(h Handler) (err error) {
	defer p.recoverParseError(&err)
	p.begin(h)

	p.s.skipSpace()
	if p.s.in.Done() {
		p.s.fail(DocumentEmpty, p.s.in.Tell())
	}
	p.parseValue(h)
	p.s.skipSpace()
	if !p.s.in.Done() {
		p.s.fail(DocumentRootNotSingular, p.s.in.Tell())
	}
	return nil
}

// ParseOne parses a single value from the front of the remaining input and
// delivers events to h. Unlike Parse, it does not examine the input after
// the value, so a stream of concatenated values can be parsed by calling
// ParseOne repeatedly. If no further value is available, ParseOne returns
// io.EOF.
func (p *Parser) ParseOne(h Handler) (err error) {
	defer p.recoverParseError(&err)
	p.begin(h)

	p.s.skipSpace()
	if p.s.in.Done() {
		if err := p.streamErr(); err != nil {
			return err
		}
		return io.EOF
	}
	p.parseValue(h)
	return nil
}

func (p *Parser) begin(h Handler) {
	p.depth = 0
	p.s.onComment = nil
	if ch, ok := h.(CommentHandler); ok {
		p.s.onComment = func(text []byte, span Span) {
			ch.Comment(text, span)
		}
	}
}

func (p *Parser) recoverParseError(errp *error) {
	// Release scratch space held for the duration of the call.
	p.s.buf, p.s.cbuf, p.a = nil, nil, anchor{}

	if perr := recover(); perr != nil {
		e, ok := perr.(*ParseError)
		if !ok {
			panic(perr)
		}
		*errp = e
	}

	// A failure of the stream itself takes precedence, since it may have
	// truncated the input.
	if err := p.streamErr(); err != nil {
		*errp = err
	}
}

func (p *Parser) streamErr() error {
	if es, ok := p.s.in.(errStream); ok {
		if err := es.Err(); err != nil {
			return fmt.Errorf("read input: %w", err)
		}
	}
	return nil
}

// parseValue consumes a single value of any type.
// Precondition: the input is positioned at a non-space byte, or at EOF.
func (p *Parser) parseValue(h Handler) {
	switch ch := p.s.in.Peek(); {
	case ch == '{' && !p.s.in.Done():
		p.parseObject(h)
	case ch == '[' && !p.s.in.Done():
		p.parseArray(h)
	case ch == '"' && !p.s.in.Done():
		p.mark(StringKind)
		p.s.scanString()
		p.emit(h.Value, p.s.buf)
	case ch == 'n':
		p.parseLiteral(h, NullKind, "null")
	case ch == 't':
		p.parseLiteral(h, TrueKind, "true")
	case ch == 'f':
		p.parseLiteral(h, FalseKind, "false")
	default:
		p.mark(NumberKind)
		p.s.scanNumber()
		p.emit(h.Value, p.s.buf)
	}
}

func (p *Parser) parseLiteral(h Handler, kind Kind, word string) {
	p.mark(kind)
	p.s.scanLiteral(word)
	p.emit(h.Value, p.s.buf)
}

// parseObject consumes an object and its members.
// Precondition: Peek() == '{'.
func (p *Parser) parseObject(h Handler) {
	p.enter()
	p.mark(ObjectKind)
	p.s.in.Take()
	p.emit(h.BeginObject, nil)

	p.s.skipSpace()
	if p.close('}') {
		p.emitEnd(h.EndObject, ObjectKind, 0)
		return
	}
	for n := 1; ; n++ {
		// Parse a single member: "key": value
		if p.s.in.Peek() != '"' || p.s.in.Done() {
			p.s.fail(ObjectMissName, p.s.in.Tell())
		}
		p.mark(StringKind)
		p.s.scanString()
		p.emit(h.Key, p.s.buf)

		p.s.skipSpace()
		if p.s.in.Peek() != ':' || p.s.in.Done() {
			p.s.fail(ObjectMissColon, p.s.in.Tell())
		}
		p.s.in.Take()
		p.s.skipSpace()
		p.parseValue(h)

		// Check whether we have more members (",") or are done ("}").
		p.s.skipSpace()
		if p.close('}') {
			p.emitEnd(h.EndObject, ObjectKind, n)
			return
		} else if p.s.in.Peek() != ',' || p.s.in.Done() {
			p.s.fail(ObjectMissCommaOrCurlyBracket, p.s.in.Tell())
		}
		p.s.in.Take()
		p.s.skipSpace()

		// If trailing commas are allowed and the next token is a close brace,
		// consider this a valid end of the object. Otherwise, it must be a key
		// for a subsequent member.
		if p.tcom && p.close('}') {
			p.emitEnd(h.EndObject, ObjectKind, n)
			return
		}
	}
}

// parseArray consumes an array and its elements.
// Precondition: Peek() == '['.
func (p *Parser) parseArray(h Handler) {
	p.enter()
	p.mark(ArrayKind)
	p.s.in.Take()
	p.emit(h.BeginArray, nil)

	p.s.skipSpace()
	if p.close(']') {
		p.emitEnd(h.EndArray, ArrayKind, 0)
		return
	}
	for n := 1; ; n++ {
		p.parseValue(h)

		p.s.skipSpace()
		if p.close(']') {
			p.emitEnd(h.EndArray, ArrayKind, n)
			return
		} else if p.s.in.Peek() != ',' || p.s.in.Done() {
			p.s.fail(ArrayMissCommaOrSquareBracket, p.s.in.Tell())
		}
		p.s.in.Take()
		p.s.skipSpace()

		// As for objects, a trailing comma is accepted only if enabled;
		// otherwise the close bracket fails as an invalid value.
		if p.tcom && p.close(']') {
			p.emitEnd(h.EndArray, ArrayKind, n)
			return
		}
	}
}

// close consumes the closing delimiter ch and reports true if it is the next
// byte of input. On success it records the delimiter's location.
func (p *Parser) close(ch byte) bool {
	if p.s.in.Done() || p.s.in.Peek() != ch {
		return false
	}
	p.a.pos = p.s.in.Tell()
	p.s.in.Take()
	return true
}

// enter records the start of a container, enforcing the depth limit.
func (p *Parser) enter() {
	p.depth++
	if p.max > 0 && p.depth > p.max {
		p.s.failErr(UnspecificSyntaxError, p.s.in.Tell(), ErrTooDeep)
	}
}

// mark records the start of a token of the given kind.
func (p *Parser) mark(kind Kind) { p.a = anchor{kind: kind, pos: p.s.in.Tell()} }

// emit completes the current token and delivers it to f.
func (p *Parser) emit(f func(Anchor) error, text []byte) {
	p.a.end = p.s.in.Tell()
	p.a.text = text
	if p.a.kind == NumberKind {
		p.a.num = p.s.num
	}
	p.check(f(&p.a))
}

// emitEnd delivers the end of a container with n members or elements.
// Precondition: the closing delimiter was consumed by close.
func (p *Parser) emitEnd(f func(Anchor) error, kind Kind, n int) {
	p.depth--
	p.a = anchor{kind: kind, pos: p.a.pos, end: p.s.in.Tell(), n: n}
	p.check(f(&p.a))
}

func (p *Parser) check(err error) {
	if err != nil {
		p.s.failErr(Termination, p.s.in.Tell(), err)
	}
}

// anchor implements the Anchor interface for parser events.
type anchor struct {
	kind     Kind
	pos, end int
	n        int
	text     []byte
	num      Number
}

func (a *anchor) Kind() Kind     { return a.kind }
func (a *anchor) Text() []byte   { return a.text }
func (a *anchor) Copy() []byte   { return append([]byte(nil), a.text...) }
func (a *anchor) Number() Number { return a.num }
func (a *anchor) Span() Span     { return Span{Pos: a.pos, End: a.end} }
func (a *anchor) Len() int       { return a.n }
