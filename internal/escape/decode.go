// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package escape handles quoting and unquoting of JSON strings.
package escape

import "unicode/utf8"

// simpleEsc maps the character following a backslash to the byte it denotes,
// for all escapes other than \u.
var simpleEsc = [256]byte{
	'"':  '"',
	'\\': '\\',
	'/':  '/',
	'b':  '\b',
	'f':  '\f',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
}

// Simple reports the byte denoted by the escape sequence "\c", for escapes
// other than \u. It returns false if c does not form a simple escape.
func Simple(c byte) (byte, bool) {
	b := simpleEsc[c]
	return b, b != 0
}

// HexValue returns the value of the hexadecimal digit c, or -1.
func HexValue(c byte) rune {
	switch {
	case '0' <= c && c <= '9':
		return rune(c - '0')
	case 'a' <= c && c <= 'f':
		return rune(c - 'a' + 10)
	case 'A' <= c && c <= 'F':
		return rune(c - 'A' + 10)
	}
	return -1
}

// IsHighSurrogate reports whether r is a UTF-16 high (leading) surrogate.
func IsHighSurrogate(r rune) bool { return 0xD800 <= r && r <= 0xDBFF }

// IsLowSurrogate reports whether r is a UTF-16 low (trailing) surrogate.
func IsLowSurrogate(r rune) bool { return 0xDC00 <= r && r <= 0xDFFF }

// Combine returns the code point encoded by the surrogate pair hi, lo.
// The caller must ensure both halves are valid.
func Combine(hi, lo rune) rune { return (hi-0xD800)<<10 + (lo - 0xDC00) + 0x10000 }

// SeqLen reports the length of a UTF-8 sequence starting with lead, or 0 if
// lead cannot begin a valid sequence.
func SeqLen(lead byte) int {
	switch {
	case lead < utf8.RuneSelf:
		return 1
	case lead >= 0xC2 && lead <= 0xDF:
		return 2
	case lead >= 0xE0 && lead <= 0xEF:
		return 3
	case lead >= 0xF0 && lead <= 0xF4:
		return 4
	}
	return 0
}

// ValidSeq reports whether seq is exactly one valid UTF-8 encoded rune. It
// rejects overlong forms, surrogate code points, and values beyond U+10FFFF.
func ValidSeq(seq []byte) bool {
	r, n := utf8.DecodeRune(seq)
	return n == len(seq) && (r != utf8.RuneError || n == 3)
}
