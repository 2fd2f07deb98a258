// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"errors"
	"fmt"
	"io"

	"github.com/creachadair/jdom"
)

// Parse parses a single JSON document from in and returns its value. In case
// of error, any partially-constructed value is discarded, and Parse returns a
// nil Value along with the error.
func Parse(in jdom.InputStream, opts *jdom.Options) (Value, error) {
	var h parseHandler
	if err := jdom.Parse(in, &h, opts); err != nil {
		return nil, err
	}
	return h.result()
}

// ParseString parses a single JSON document from s.
func ParseString(s string, opts *jdom.Options) (Value, error) {
	return Parse(jdom.NewStringStream(s), opts)
}

// ParseOne parses the next value from p. It returns io.EOF if no further
// values are available. As with Parse, no partial value is returned on error.
func ParseOne(p *jdom.Parser) (Value, error) {
	var h parseHandler
	if err := p.ParseOne(&h); err != nil {
		return nil, err
	}
	return h.result()
}

// ParseAll parses and returns the concatenated JSON values from r. In case of
// error, any complete values already parsed are returned along with the
// error.
func ParseAll(r io.Reader, opts *jdom.Options) ([]Value, error) {
	p := jdom.NewParser(jdom.NewReadStream(r), opts)
	var vs []Value
	for {
		v, err := ParseOne(p)
		if err == io.EOF {
			return vs, nil
		} else if err != nil {
			return vs, err
		}
		vs = append(vs, v)
	}
}

// A parseHandler implements the jdom.Handler interface to construct values
// from parser events.
type parseHandler struct {
	stk  []*frame
	root Value
	done bool
}

// A frame is an incomplete container on the parse stack.
type frame struct {
	obj Object
	arr Array
	key string // the pending member key, in an object
}

func (h *parseHandler) result() (Value, error) {
	if !h.done || len(h.stk) != 0 {
		return nil, errors.New("incomplete value")
	}
	return h.root, nil
}

func (h *parseHandler) top() *frame { return h.stk[len(h.stk)-1] }

func (h *parseHandler) pop() *frame {
	last := h.top()
	h.stk = h.stk[:len(h.stk)-1]
	return last
}

func (h *parseHandler) push(f *frame) { h.stk = append(h.stk, f) }

// reduce adds a completed value to the innermost container, or records it as
// the result if there is none.
func (h *parseHandler) reduce(v Value) error {
	if len(h.stk) == 0 {
		h.root, h.done = v, true
		return nil
	}
	f := h.top()
	if f.obj != nil {
		f.obj = append(f.obj, &Member{Key: f.key, Value: v})
	} else {
		f.arr = append(f.arr, v)
	}
	return nil
}

func (h *parseHandler) BeginObject(jdom.Anchor) error {
	h.push(&frame{obj: Object{}})
	return nil
}

func (h *parseHandler) Key(loc jdom.Anchor) error {
	h.top().key = string(loc.Text())
	return nil
}

func (h *parseHandler) EndObject(jdom.Anchor) error { return h.reduce(h.pop().obj) }

func (h *parseHandler) BeginArray(jdom.Anchor) error {
	h.push(&frame{arr: Array{}})
	return nil
}

func (h *parseHandler) EndArray(jdom.Anchor) error { return h.reduce(h.pop().arr) }

func (h *parseHandler) Value(loc jdom.Anchor) error {
	switch loc.Kind() {
	case jdom.StringKind:
		return h.reduce(String(loc.Text()))
	case jdom.NumberKind:
		return h.reduce(Number{loc.Number()})
	case jdom.TrueKind, jdom.FalseKind:
		return h.reduce(Bool(loc.Kind() == jdom.TrueKind))
	case jdom.NullKind:
		return h.reduce(Null)
	default:
		return fmt.Errorf("unknown value kind %v", loc.Kind())
	}
}
