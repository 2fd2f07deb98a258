// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jdom

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"go4.org/mem"
)

// An InputStream is a source of bytes for the parser. At the end of the
// input, Peek and Take return 0. Since 0 may also be a byte of the input,
// callers must use Done to distinguish the two.
type InputStream interface {
	// Peek returns the next byte of input without consuming it.
	Peek() byte

	// Take consumes and returns the next byte of input.
	Take() byte

	// Tell reports the number of bytes consumed by Take.
	Tell() int

	// Done reports whether the input is exhausted.
	Done() bool
}

// A Peeker is an optional interface an InputStream may implement to allow
// lookahead of several bytes. It is used only for encoding detection.
type Peeker interface {
	// PeekN returns the next n bytes of input without consuming them, or nil
	// if fewer than n bytes remain. The caller must not modify the result.
	PeekN(n int) []byte
}

// An OutputStream is a sink for bytes produced by a Writer.
type OutputStream interface {
	// Put appends b to the output.
	Put(b byte)

	// Flush commits any buffered output, and reports the first error that
	// occurred while writing, if any.
	Flush() error
}

// MemoryStream is an InputStream over a byte slice.
// It implements the Peeker interface.
type MemoryStream struct {
	buf []byte
	pos int
}

// NewMemoryStream constructs an InputStream that reads from buf.
// The stream does not modify buf.
func NewMemoryStream(buf []byte) *MemoryStream { return &MemoryStream{buf: buf} }

// Peek implements part of the InputStream interface.
func (m *MemoryStream) Peek() byte {
	if m.pos < len(m.buf) {
		return m.buf[m.pos]
	}
	return 0
}

// Take implements part of the InputStream interface.
func (m *MemoryStream) Take() byte {
	if m.pos < len(m.buf) {
		m.pos++
		return m.buf[m.pos-1]
	}
	return 0
}

// Tell implements part of the InputStream interface.
func (m *MemoryStream) Tell() int { return m.pos }

// Done implements part of the InputStream interface.
func (m *MemoryStream) Done() bool { return m.pos >= len(m.buf) }

// PeekN implements the Peeker interface.
func (m *MemoryStream) PeekN(n int) []byte {
	checkPeekN(n)
	if m.pos+n > len(m.buf) {
		return nil
	}
	return m.buf[m.pos : m.pos+n]
}

// StringStream is an InputStream over a string.
// Unlike MemoryStream, it does not support lookahead.
type StringStream struct {
	src mem.RO
	pos int
}

// NewStringStream constructs an InputStream that reads from s.
func NewStringStream(s string) *StringStream { return &StringStream{src: mem.S(s)} }

// Peek implements part of the InputStream interface.
func (s *StringStream) Peek() byte {
	if s.pos < s.src.Len() {
		return s.src.At(s.pos)
	}
	return 0
}

// Take implements part of the InputStream interface.
func (s *StringStream) Take() byte {
	if s.pos < s.src.Len() {
		s.pos++
		return s.src.At(s.pos - 1)
	}
	return 0
}

// Tell implements part of the InputStream interface.
func (s *StringStream) Tell() int { return s.pos }

// Done implements part of the InputStream interface.
func (s *StringStream) Done() bool { return s.pos >= s.src.Len() }

// ReadStream is a buffered InputStream that consumes an io.Reader, such as a
// file. It implements the Peeker interface for lookahead within the size of
// its buffer.
//
// If the underlying reader reports an error other than io.EOF, the stream
// behaves as if the input ended at that point. Use Err to recover the error.
type ReadStream struct {
	r   *bufio.Reader
	pos int
	err error
}

// NewReadStream constructs an InputStream that consumes input from r.
func NewReadStream(r io.Reader) *ReadStream {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &ReadStream{r: br}
}

// Peek implements part of the InputStream interface.
func (s *ReadStream) Peek() byte {
	if s.err != nil {
		return 0
	}
	b, err := s.r.Peek(1)
	if err != nil {
		s.setErr(err)
		return 0
	}
	return b[0]
}

// Take implements part of the InputStream interface.
func (s *ReadStream) Take() byte {
	if s.err != nil {
		return 0
	}
	b, err := s.r.ReadByte()
	if err != nil {
		s.setErr(err)
		return 0
	}
	s.pos++
	return b
}

// Tell implements part of the InputStream interface.
func (s *ReadStream) Tell() int { return s.pos }

// Done implements part of the InputStream interface.
func (s *ReadStream) Done() bool {
	if s.err != nil {
		return true
	}
	_, err := s.r.Peek(1)
	if err != nil {
		s.setErr(err)
		return true
	}
	return false
}

// PeekN implements the Peeker interface.
func (s *ReadStream) PeekN(n int) []byte {
	checkPeekN(n)
	if s.err != nil {
		return nil
	}
	b, err := s.r.Peek(n)
	if err != nil {
		// A short read is not an error for the stream as a whole; the bytes
		// that are present may still be consumed.
		if err != io.EOF && err != bufio.ErrBufferFull {
			s.setErr(err)
		}
		return nil
	}
	return b
}

// Err reports the first error other than io.EOF returned by the underlying
// reader, or nil.
func (s *ReadStream) Err() error {
	if s.err == io.EOF {
		return nil
	}
	return s.err
}

func (s *ReadStream) setErr(err error) {
	if s.err == nil {
		s.err = err
	}
}

// Buffer is an OutputStream that accumulates its output in memory.
// The zero value is ready for use.
type Buffer struct {
	buf bytes.Buffer
}

// Put implements part of the OutputStream interface.
func (b *Buffer) Put(c byte) { b.buf.WriteByte(c) }

// Flush implements part of the OutputStream interface. It never fails.
func (b *Buffer) Flush() error { return nil }

// Bytes returns the contents of b. The result aliases the buffer and is only
// valid until the next modification of b.
func (b *Buffer) Bytes() []byte { return b.buf.Bytes() }

// String returns a copy of the contents of b as a string.
func (b *Buffer) String() string { return b.buf.String() }

// Len reports the number of bytes in b.
func (b *Buffer) Len() int { return b.buf.Len() }

// Reset discards the contents of b.
func (b *Buffer) Reset() { b.buf.Reset() }

// WriteStream is a buffered OutputStream that writes to an io.Writer.
type WriteStream struct {
	w   *bufio.Writer
	err error
}

// NewWriteStream constructs an OutputStream that writes to w.
func NewWriteStream(w io.Writer) *WriteStream {
	return &WriteStream{w: bufio.NewWriter(w)}
}

// Put implements part of the OutputStream interface. After the first write
// error, subsequent output is discarded.
func (s *WriteStream) Put(b byte) {
	if s.err == nil {
		s.err = s.w.WriteByte(b)
	}
}

// Flush implements part of the OutputStream interface.
func (s *WriteStream) Flush() error {
	if s.err == nil {
		s.err = s.w.Flush()
	}
	return s.err
}

// errStream is an optional interface implemented by input streams that can
// fail for reasons other than malformed input.
type errStream interface {
	Err() error
}

func checkPeekN(n int) {
	if n <= 0 {
		panic(fmt.Sprintf("jdom: invalid lookahead %d", n))
	}
}

// putString writes the bytes of s to out.
func putString(out OutputStream, s string) {
	for i := 0; i < len(s); i++ {
		out.Put(s[i])
	}
}
