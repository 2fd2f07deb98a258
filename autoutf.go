// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jdom

import (
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
)

// Encoding identifies a Unicode transformation format of an input.
type Encoding byte

// Constants defining the valid Encoding values.
const (
	UTF8 Encoding = iota
	UTF16LE
	UTF16BE
	UTF32LE
	UTF32BE
)

var encodingStr = [...]string{
	UTF8:    "UTF-8",
	UTF16LE: "UTF-16LE",
	UTF16BE: "UTF-16BE",
	UTF32LE: "UTF-32LE",
	UTF32BE: "UTF-32BE",
}

func (e Encoding) String() string {
	if int(e) >= len(encodingStr) {
		return "unknown"
	}
	return encodingStr[e]
}

// DetectEncoding examines the first four bytes of p to determine the
// encoding of a JSON text, and reports the encoding together with the
// length of its byte-order mark (0 if there is none).
//
// If a byte-order mark is present, it decides the encoding. Otherwise the
// pattern of zero bytes is used, relying on the fact that the first two
// characters of a JSON text are ASCII (RFC 4627, section 3).
//
// If fewer than four bytes are available, detection is impossible, and
// DetectEncoding returns false. It does not consume any input.
func DetectEncoding(p Peeker) (enc Encoding, bom int, ok bool) {
	b := p.PeekN(4)
	if b == nil {
		return UTF8, 0, false
	}

	// Check for a byte-order mark. The UTF-32LE mark must be checked before
	// the UTF-16LE mark, of which it is an extension.
	switch {
	case b[0] == 0x00 && b[1] == 0x00 && b[2] == 0xFE && b[3] == 0xFF:
		return UTF32BE, 4, true
	case b[0] == 0xFF && b[1] == 0xFE && b[2] == 0x00 && b[3] == 0x00:
		return UTF32LE, 4, true
	case b[0] == 0xFE && b[1] == 0xFF:
		return UTF16BE, 2, true
	case b[0] == 0xFF && b[1] == 0xFE:
		return UTF16LE, 2, true
	case b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF:
		return UTF8, 3, true
	}

	// No BOM: infer from the positions of zero bytes.
	//
	//  00 00 00 xx  UTF-32BE
	//  00 xx 00 xx  UTF-16BE
	//  xx 00 00 00  UTF-32LE
	//  xx 00 xx 00  UTF-16LE
	//  xx xx xx xx  UTF-8
	var pattern byte
	for i, c := range b {
		if c != 0 {
			pattern |= 1 << (3 - i)
		}
	}
	switch pattern {
	case 0x01:
		return UTF32BE, 0, true
	case 0x05:
		return UTF16BE, 0, true
	case 0x08:
		return UTF32LE, 0, true
	case 0x0A:
		return UTF16LE, 0, true
	}
	return UTF8, 0, true
}

// NewAutoUTFStream returns an InputStream that delivers the contents of in
// as UTF-8, transcoding if necessary. If in implements Peeker, its encoding
// is detected with DetectEncoding; otherwise, or if detection is impossible,
// it is assumed to be UTF-8. Any byte-order mark is discarded.
//
// Offsets reported by the resulting stream count bytes of the transcoded
// UTF-8 text, not of the original input.
func NewAutoUTFStream(in InputStream) InputStream {
	p, ok := in.(Peeker)
	if !ok {
		return in
	}
	enc, bom, _ := DetectEncoding(p)
	for i := 0; i < bom; i++ {
		in.Take()
	}
	var dec *encoding.Decoder
	switch enc {
	case UTF16LE:
		dec = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
	case UTF16BE:
		dec = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder()
	case UTF32LE:
		dec = utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM).NewDecoder()
	case UTF32BE:
		dec = utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM).NewDecoder()
	default:
		if bom == 0 {
			return in
		}
		return &offsetStream{InputStream: in, base: bom}
	}
	return NewReadStream(dec.Reader(streamReader{in}))
}

// offsetStream adjusts the offsets of an input stream to exclude a
// discarded prefix.
type offsetStream struct {
	InputStream
	base int
}

func (o *offsetStream) Tell() int { return o.InputStream.Tell() - o.base }

func (o *offsetStream) Err() error {
	if es, ok := o.InputStream.(errStream); ok {
		return es.Err()
	}
	return nil
}

// streamReader adapts an InputStream to the io.Reader interface.
type streamReader struct{ in InputStream }

func (r streamReader) Read(buf []byte) (int, error) {
	if r.in.Done() {
		if es, ok := r.in.(errStream); ok && es.Err() != nil {
			return 0, es.Err()
		}
		return 0, io.EOF
	}
	n := 0
	for n < len(buf) && !r.in.Done() {
		buf[n] = r.in.Take()
		n++
	}
	return n, nil
}
