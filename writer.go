// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jdom

import (
	"errors"
	"strings"

	"github.com/creachadair/jdom/internal/escape"

	"go4.org/mem"
)

// ErrNonFinite is reported by a Writer asked to write a NaN or infinite
// number when its configuration does not permit them.
var ErrNonFinite = errors.New("number is not finite")

// WriterConfig carries settings for a Writer. The zero value writes compact,
// standard JSON with minimal string escaping.
type WriterConfig struct {
	// If true, write NaN and infinite doubles as the non-standard tokens NaN,
	// Infinity, and -Infinity. If false, writing such a value fails with
	// ErrNonFinite, since the output would not be valid JSON.
	EmitNaNAndInf bool

	// If true, escape all non-ASCII characters in strings as \uXXXX.
	// If false, only the characters JSON requires to be escaped are escaped.
	EscapeUnicode bool

	// If non-empty, break lines between the members of objects and arrays,
	// and indent each nesting level by this string.
	Indent string
}

// A Writer serializes a sequence of JSON events to an OutputStream. The
// methods of a Writer must be called in an order that describes a single
// well-formed JSON value; for example, inside an object each value must be
// preceded by a call to Key.
//
// Calling methods out of order is a programming error, and causes a panic.
// Errors from the output stream are reported by Flush.
type Writer struct {
	out  OutputStream
	cfg  WriterConfig
	stk  []level
	root bool   // a complete root value has been written
	buf  []byte // scratch
}

type level struct {
	array bool // this level is an array (else an object)
	n     int  // number of values written at this level
	key   bool // a key has been written and awaits its value
}

// NewWriter constructs a Writer that writes to out using the settings from
// cfg.
func NewWriter(out OutputStream, cfg WriterConfig) *Writer {
	return &Writer{out: out, cfg: cfg}
}

// Reset discards the state of w and directs its output to out. This permits
// a Writer to be reused for another value.
func (w *Writer) Reset(out OutputStream) {
	w.out = out
	w.stk = w.stk[:0]
	w.root = false
}

// IsComplete reports whether w has written a complete JSON value.
func (w *Writer) IsComplete() bool { return w.root && len(w.stk) == 0 }

// Flush flushes the output stream and reports any error it encountered.
func (w *Writer) Flush() error { return w.out.Flush() }

// BeginObject starts a new object.
func (w *Writer) BeginObject() error {
	w.prefix()
	w.out.Put('{')
	w.stk = append(w.stk, level{})
	return nil
}

// Key writes the key of the next object member.
func (w *Writer) Key(key string) error { return w.writeKey(mem.S(key)) }

func (w *Writer) writeKey(key mem.RO) error {
	top := w.top("Key")
	if top.array {
		panic("jdom: Key called inside an array")
	} else if top.key {
		panic("jdom: Key called twice without a value")
	}
	if top.n > 0 {
		w.out.Put(',')
	}
	w.newline(len(w.stk))
	w.putQuoted(key)
	w.out.Put(':')
	if w.cfg.Indent != "" {
		w.out.Put(' ')
	}
	top.key = true
	return nil
}

// EndObject ends the most-recently-opened object.
func (w *Writer) EndObject() error {
	top := w.top("EndObject")
	if top.array {
		panic("jdom: EndObject called inside an array")
	} else if top.key {
		panic("jdom: EndObject called after Key without a value")
	}
	w.end(top.n, '}')
	return nil
}

// BeginArray starts a new array.
func (w *Writer) BeginArray() error {
	w.prefix()
	w.out.Put('[')
	w.stk = append(w.stk, level{array: true})
	return nil
}

// EndArray ends the most-recently-opened array.
func (w *Writer) EndArray() error {
	top := w.top("EndArray")
	if !top.array {
		panic("jdom: EndArray called inside an object")
	}
	w.end(top.n, ']')
	return nil
}

// Null writes a null value.
func (w *Writer) Null() error { return w.scalar("null") }

// Bool writes a Boolean value.
func (w *Writer) Bool(v bool) error {
	if v {
		return w.scalar("true")
	}
	return w.scalar("false")
}

// Int64 writes an integer value.
func (w *Writer) Int64(v int64) error { return w.Number(Int(v)) }

// Uint64 writes an unsigned integer value.
func (w *Writer) Uint64(v uint64) error { return w.Number(Uint(v)) }

// Float64 writes a floating-point value. The output always includes a
// decimal point or an exponent.
func (w *Writer) Float64(v float64) error { return w.Number(Float(v)) }

// Number writes a number value in its recorded representation.
func (w *Writer) Number(n Number) error {
	if !n.IsFinite() && !w.cfg.EmitNaNAndInf {
		return ErrNonFinite
	}
	w.buf = n.AppendText(w.buf[:0])
	w.prefix()
	w.putBytes(w.buf)
	return nil
}

// String writes a string value.
func (w *Writer) String(s string) error { return w.writeString(mem.S(s)) }

func (w *Writer) writeString(s mem.RO) error {
	w.prefix()
	w.putQuoted(s)
	return nil
}

func (w *Writer) scalar(text string) error {
	w.prefix()
	putString(w.out, text)
	return nil
}

// prefix writes the separator that precedes a value, and updates the state
// of the enclosing container.
func (w *Writer) prefix() {
	if len(w.stk) == 0 {
		if w.root {
			panic("jdom: a root value has already been written")
		}
		w.root = true
		return
	}
	top := &w.stk[len(w.stk)-1]
	if top.array {
		if top.n > 0 {
			w.out.Put(',')
		}
		w.newline(len(w.stk))
	} else if !top.key {
		panic("jdom: object value written without a Key")
	}
	top.key = false
	top.n++
}

func (w *Writer) top(method string) *level {
	if len(w.stk) == 0 {
		panic("jdom: " + method + " called outside an object or array")
	}
	return &w.stk[len(w.stk)-1]
}

// end closes the innermost container, which has n values.
func (w *Writer) end(n int, delim byte) {
	w.stk = w.stk[:len(w.stk)-1]
	if n > 0 {
		w.newline(len(w.stk))
	}
	w.out.Put(delim)
}

// newline breaks the line and indents to the given depth, if indentation is
// enabled.
func (w *Writer) newline(depth int) {
	if w.cfg.Indent == "" {
		return
	}
	w.out.Put('\n')
	putString(w.out, strings.Repeat(w.cfg.Indent, depth))
}

func (w *Writer) putQuoted(s mem.RO) {
	w.buf = escape.AppendQuote(w.buf[:0], s, w.cfg.EscapeUnicode)
	w.putBytes(w.buf)
}

func (w *Writer) putBytes(b []byte) {
	for _, c := range b {
		w.out.Put(c)
	}
}

// Echo returns a Handler that writes the events it receives to w. Passing
// the result to a Parser copies its input to w, reformatted according to the
// configuration of w.
func Echo(w *Writer) Handler { return echo{w} }

type echo struct{ w *Writer }

func (e echo) BeginObject(Anchor) error  { return e.w.BeginObject() }
func (e echo) Key(loc Anchor) error      { return e.w.writeKey(mem.B(loc.Text())) }
func (e echo) EndObject(Anchor) error    { return e.w.EndObject() }
func (e echo) BeginArray(Anchor) error   { return e.w.BeginArray() }
func (e echo) EndArray(loc Anchor) error { return e.w.EndArray() }

func (e echo) Value(loc Anchor) error {
	switch loc.Kind() {
	case NullKind:
		return e.w.Null()
	case TrueKind, FalseKind:
		return e.w.Bool(loc.Kind() == TrueKind)
	case StringKind:
		return e.w.writeString(mem.B(loc.Text()))
	case NumberKind:
		return e.w.Number(loc.Number())
	default:
		panic("jdom: unexpected value kind " + loc.Kind().String())
	}
}
