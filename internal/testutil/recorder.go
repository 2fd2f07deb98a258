// Package testutil defines support code for unit tests.
package testutil

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/creachadair/jdom"
	"github.com/google/go-cmp/cmp"
)

// Recorder is a jdom.Handler that records a text trace of the events it
// receives, one per line. It also implements jdom.CommentHandler.
type Recorder struct {
	// If positive, the recorder stops the parse with jdom.ErrStop when it
	// receives the key after this many keys.
	StopAfterKeys int

	// If true, record the span of each event.
	Spans bool

	buf  bytes.Buffer
	keys int
}

// Mark adds a line of text to the trace.
func (r *Recorder) Mark(msg string, args ...any) {
	fmt.Fprintf(&r.buf, msg, args...)
	r.buf.WriteByte('\n')
}

// Output returns the trace recorded so far.
func (r *Recorder) Output() string { return r.buf.String() }

// Reset discards the trace and key count.
func (r *Recorder) Reset() { r.buf.Reset(); r.keys = 0 }

func (r *Recorder) event(loc jdom.Anchor, msg string, args ...any) {
	if r.Spans {
		sp := loc.Span()
		msg = fmt.Sprintf("%d-%d ", sp.Pos, sp.End) + msg
	}
	r.Mark(msg, args...)
}

func (r *Recorder) BeginObject(loc jdom.Anchor) error { r.event(loc, "BeginObject"); return nil }
func (r *Recorder) BeginArray(loc jdom.Anchor) error  { r.event(loc, "BeginArray"); return nil }

func (r *Recorder) EndObject(loc jdom.Anchor) error {
	r.event(loc, "EndObject %d", loc.Len())
	return nil
}

func (r *Recorder) EndArray(loc jdom.Anchor) error {
	r.event(loc, "EndArray %d", loc.Len())
	return nil
}

func (r *Recorder) Key(loc jdom.Anchor) error {
	if r.StopAfterKeys > 0 && r.keys >= r.StopAfterKeys {
		return jdom.ErrStop
	}
	r.keys++
	r.event(loc, "Key <%s>", loc.Text())
	return nil
}

func (r *Recorder) Value(loc jdom.Anchor) error {
	r.event(loc, "Value %s <%s>", loc.Kind(), loc.Text())
	return nil
}

func (r *Recorder) Comment(text []byte, span jdom.Span) { r.Mark("Comment %q", text) }

// DiffLines returns a diff of want and got as sequences of lines, ignoring
// leading and trailing whitespace, or "" if they are equal.
func DiffLines(want, got string) string {
	return cmp.Diff(strings.Split(strings.TrimSpace(want), "\n"),
		strings.Split(strings.TrimSpace(got), "\n"))
}
