// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jdom

import (
	"errors"

	"github.com/creachadair/jdom/internal/escape"

	"go4.org/mem"
)

// Quote encodes src as a JSON string value. The contents are escaped and
// double quotation marks are added.
func Quote(src string) string { return string(escape.Quote(mem.S(src))) }

// Unquote decodes a JSON string value. Double quotation marks are removed,
// and escape sequences are replaced with their unescaped equivalents.
//
// Unlike a lenient decoder, Unquote rejects malformed input: if src is not
// exactly one valid JSON string, it reports a *ParseError describing the
// problem.
func Unquote(src []byte) ([]byte, error) {
	var h unquoteHandler
	if err := Parse(NewMemoryStream(src), &h, nil); err != nil {
		return nil, err
	}
	return h.text, nil
}

var errNotString = errors.New("value is not a string")

// unquoteHandler accepts a single string value.
type unquoteHandler struct{ text []byte }

func (unquoteHandler) BeginObject(Anchor) error { return errNotString }
func (unquoteHandler) Key(Anchor) error         { return errNotString }
func (unquoteHandler) EndObject(Anchor) error   { return errNotString }
func (unquoteHandler) BeginArray(Anchor) error  { return errNotString }
func (unquoteHandler) EndArray(Anchor) error    { return errNotString }

func (h *unquoteHandler) Value(loc Anchor) error {
	if loc.Kind() != StringKind {
		return errNotString
	}
	h.text = loc.Copy()
	return nil
}
