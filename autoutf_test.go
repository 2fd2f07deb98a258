// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jdom_test

import (
	"testing"

	"github.com/creachadair/jdom"
	"github.com/creachadair/jdom/internal/testutil"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
)

const autoInput = `{"a":["é", "\ud83d\ude00", 1]}`

const autoTrace = `
BeginObject
Key <a>
BeginArray
Value string <é>
Value string <` + "\U0001F600" + `>
Value number <1>
EndArray 3
EndObject 1`

func TestAutoUTF(t *testing.T) {
	tests := []struct {
		name string
		enc  encoding.Encoding
		want jdom.Encoding
		bom  int
	}{
		{"UTF-8", unicode.UTF8, jdom.UTF8, 0},
		{"UTF-8-BOM", unicode.UTF8BOM, jdom.UTF8, 3},
		{"UTF-16LE", unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM), jdom.UTF16LE, 0},
		{"UTF-16LE-BOM", unicode.UTF16(unicode.LittleEndian, unicode.UseBOM), jdom.UTF16LE, 2},
		{"UTF-16BE", unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM), jdom.UTF16BE, 0},
		{"UTF-16BE-BOM", unicode.UTF16(unicode.BigEndian, unicode.UseBOM), jdom.UTF16BE, 2},
		{"UTF-32LE", utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM), jdom.UTF32LE, 0},
		{"UTF-32LE-BOM", utf32.UTF32(utf32.LittleEndian, utf32.UseBOM), jdom.UTF32LE, 4},
		{"UTF-32BE", utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM), jdom.UTF32BE, 0},
		{"UTF-32BE-BOM", utf32.UTF32(utf32.BigEndian, utf32.UseBOM), jdom.UTF32BE, 4},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			src, err := test.enc.NewEncoder().Bytes([]byte(autoInput))
			if err != nil {
				t.Fatalf("Encode input: %v", err)
			}

			enc, bom, ok := jdom.DetectEncoding(jdom.NewMemoryStream(src))
			if !ok || enc != test.want || bom != test.bom {
				t.Errorf("DetectEncoding: got %v, %d, %v; want %v, %d, true", enc, bom, ok, test.want, test.bom)
			}

			var th testutil.Recorder
			in := jdom.NewAutoUTFStream(jdom.NewMemoryStream(src))
			if err := jdom.Parse(in, &th, nil); err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			if diff := testutil.DiffLines(autoTrace, th.Output()); diff != "" {
				t.Errorf("Output: (-want, +got)\n%s", diff)
			}
		})
	}
}

func TestAutoUTFOffsets(t *testing.T) {
	// Offsets count bytes of UTF-8 text, excluding any byte-order mark.
	utf16 := unicode.UTF16(unicode.BigEndian, unicode.UseBOM)
	for _, enc := range []encoding.Encoding{unicode.UTF8BOM, utf16} {
		src, err := enc.NewEncoder().Bytes([]byte(`["é",]`))
		if err != nil {
			t.Fatalf("Encode input: %v", err)
		}
		err = jdom.Parse(jdom.NewAutoUTFStream(jdom.NewMemoryStream(src)), new(testutil.Recorder), nil)
		checkError(t, err, jdom.ValueInvalid, 6)
	}
}

func TestDetectEncodingShort(t *testing.T) {
	for _, input := range []string{"", "1", "[]", "\xFF\xFE"} {
		if enc, _, ok := jdom.DetectEncoding(jdom.NewMemoryStream([]byte(input))); ok {
			t.Errorf("DetectEncoding(%q): got %v, want not ok", input, enc)
		}
	}

	// Short inputs pass through as UTF-8.
	var th testutil.Recorder
	if err := jdom.Parse(jdom.NewAutoUTFStream(jdom.NewMemoryStream([]byte("7"))), &th, nil); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if diff := testutil.DiffLines("Value number <7>", th.Output()); diff != "" {
		t.Errorf("Output: (-want, +got)\n%s", diff)
	}

	// Streams without lookahead are assumed to be UTF-8.
	in := jdom.NewStringStream("true")
	if got := jdom.NewAutoUTFStream(in); got != jdom.InputStream(in) {
		t.Errorf("NewAutoUTFStream(StringStream): got %T, want the input", got)
	}
}
