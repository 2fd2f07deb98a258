// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jdom_test

import (
	"strings"
	"testing"

	"github.com/creachadair/jdom"
	"github.com/creachadair/mds/mtest"
	"github.com/google/go-cmp/cmp"
)

func TestInputStreams(t *testing.T) {
	const input = "ab\x00c"
	streams := map[string]func() jdom.InputStream{
		"Memory": func() jdom.InputStream { return jdom.NewMemoryStream([]byte(input)) },
		"String": func() jdom.InputStream { return jdom.NewStringStream(input) },
		"Read":   func() jdom.InputStream { return jdom.NewReadStream(strings.NewReader(input)) },
	}
	for name, newStream := range streams {
		t.Run(name, func(t *testing.T) {
			in := newStream()
			var got []byte
			for !in.Done() {
				pos := in.Tell()
				p := in.Peek()
				if c := in.Take(); c != p {
					t.Errorf("At %d: Take = %q, Peek = %q", pos, c, p)
				}
				got = append(got, p)
				if in.Tell() != pos+1 {
					t.Errorf("After Take: Tell = %d, want %d", in.Tell(), pos+1)
				}
			}
			if diff := cmp.Diff(input, string(got)); diff != "" {
				t.Errorf("Input: (-want, +got)\n%s", diff)
			}

			// At the end of input, Peek and Take return 0 and do not advance.
			if p, c := in.Peek(), in.Take(); p != 0 || c != 0 {
				t.Errorf("At end: Peek = %q, Take = %q, want 0", p, c)
			}
			if in.Tell() != len(input) {
				t.Errorf("At end: Tell = %d, want %d", in.Tell(), len(input))
			}
		})
	}
}

func TestPeekN(t *testing.T) {
	peekers := map[string]jdom.Peeker{
		"Memory": jdom.NewMemoryStream([]byte("abcde")),
		"Read":   jdom.NewReadStream(strings.NewReader("abcde")),
	}
	for name, p := range peekers {
		t.Run(name, func(t *testing.T) {
			if got := string(p.PeekN(4)); got != "abcd" {
				t.Errorf("PeekN(4): got %q, want %q", got, "abcd")
			}
			if got := p.PeekN(6); got != nil {
				t.Errorf("PeekN(6): got %q, want nil", got)
			}
			in := p.(jdom.InputStream)
			if in.Tell() != 0 || in.Peek() != 'a' {
				t.Errorf("PeekN consumed input: Tell = %d, Peek = %q", in.Tell(), in.Peek())
			}
			mtest.MustPanic(t, func() { p.PeekN(0) })
			mtest.MustPanic(t, func() { p.PeekN(-1) })
		})
	}

	// A StringStream does not support lookahead.
	var in jdom.InputStream = jdom.NewStringStream("abcde")
	if _, ok := in.(jdom.Peeker); ok {
		t.Error("StringStream should not implement Peeker")
	}
}

func TestBuffer(t *testing.T) {
	var buf jdom.Buffer
	for _, c := range []byte("hello") {
		buf.Put(c)
	}
	if err := buf.Flush(); err != nil {
		t.Errorf("Flush: unexpected error: %v", err)
	}
	if got := buf.String(); got != "hello" || buf.Len() != 5 {
		t.Errorf("Buffer: got %q (len %d), want %q", got, buf.Len(), "hello")
	}
	buf.Reset()
	if buf.Len() != 0 {
		t.Errorf("After Reset: len = %d, want 0", buf.Len())
	}
}

func TestWriteStream(t *testing.T) {
	var sb strings.Builder
	ws := jdom.NewWriteStream(&sb)
	for _, c := range []byte("ok") {
		ws.Put(c)
	}
	if sb.Len() != 0 {
		t.Errorf("Output before Flush: %q", sb.String())
	}
	if err := ws.Flush(); err != nil {
		t.Fatalf("Flush: unexpected error: %v", err)
	}
	if got := sb.String(); got != "ok" {
		t.Errorf("Output: got %q, want %q", got, "ok")
	}
}
