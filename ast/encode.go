// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"fmt"

	"github.com/creachadair/jdom"
)

// Encode writes the JSON encoding of v to out according to cfg, and flushes
// the output. If v contains a number that cfg does not permit (see
// jdom.ErrNonFinite), encoding stops and the output is incomplete.
func Encode(out jdom.OutputStream, v Value, cfg jdom.WriterConfig) error {
	w := jdom.NewWriter(out, cfg)
	if err := Write(w, v); err != nil {
		return err
	}
	return w.Flush()
}

// Marshal returns the JSON encoding of v according to cfg.
func Marshal(v Value, cfg jdom.WriterConfig) ([]byte, error) {
	var buf jdom.Buffer
	if err := Encode(&buf, v, cfg); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write delivers the sequence of writer events describing v to w. It does
// not flush w.
func Write(w *jdom.Writer, v Value) error {
	switch t := v.(type) {
	case nil:
		return w.Null()
	case Bool:
		return w.Bool(bool(t))
	case String:
		return w.String(string(t))
	case Number:
		return w.Number(t.Number)
	case Array:
		if err := w.BeginArray(); err != nil {
			return err
		}
		for _, elt := range t {
			if err := Write(w, elt); err != nil {
				return err
			}
		}
		return w.EndArray()
	case Object:
		if err := w.BeginObject(); err != nil {
			return err
		}
		for _, m := range t {
			if err := w.Key(m.Key); err != nil {
				return err
			}
			if err := Write(w, m.Value); err != nil {
				return err
			}
		}
		return w.EndObject()
	default:
		if KindOf(v) == jdom.NullKind {
			return w.Null()
		}
		return fmt.Errorf("unsupported value type %T", v)
	}
}
