// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package escape

import (
	"unicode/utf16"
	"unicode/utf8"

	"go4.org/mem"
)

var controlEsc = [...]byte{
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
	' ':  ' ', // sentinel
}

var hexDigit = []byte("0123456789abcdef")

// AppendQuote appends the JSON encoding of src to buf, including the
// enclosing double quotation marks, and returns the extended slice.
//
// By default only the characters JSON requires to be escaped are escaped:
// quotation mark, reverse solidus, and the controls U+0000 to U+001F. If
// ascii is true, all non-ASCII runes are also escaped as \uXXXX, using
// surrogate pairs for runes outside the Basic Multilingual Plane.
//
// Bytes of src that are not valid UTF-8 are encoded as U+FFFD.
func AppendQuote(buf []byte, src mem.RO, ascii bool) []byte {
	buf = append(buf, '"')
	for src.Len() != 0 {
		r, n := mem.DecodeRune(src)
		if r < utf8.RuneSelf {
			if r < ' ' {
				if b := controlEsc[r]; b != 0 {
					buf = append(buf, '\\', b)
				} else {
					buf = appendU4(buf, r)
				}
			} else if r == '\\' || r == '"' {
				buf = append(buf, '\\', byte(r))
			} else {
				buf = append(buf, byte(r))
			}
		} else if ascii {
			if r1, r2 := utf16.EncodeRune(r); r1 != utf8.RuneError {
				buf = appendU4(appendU4(buf, r1), r2)
			} else {
				buf = appendU4(buf, r)
			}
		} else {
			// N.B. An invalid byte decodes as RuneError, which is re-encoded
			// here as its valid three-byte form.
			buf = utf8.AppendRune(buf, r)
		}
		src = src.SliceFrom(n)
	}
	return append(buf, '"')
}

// Quote returns the JSON encoding of src with minimal escaping.
func Quote(src mem.RO) []byte { return AppendQuote(make([]byte, 0, src.Len()+2), src, false) }

func appendU4(buf []byte, r rune) []byte {
	return append(buf, '\\', 'u',
		hexDigit[(r>>12)&15], hexDigit[(r>>8)&15], hexDigit[(r>>4)&15], hexDigit[r&15])
}
