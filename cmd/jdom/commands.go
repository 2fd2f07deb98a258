// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/kingpin/v2"
	"github.com/dustin/go-humanize"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/creachadair/jdom"
	"github.com/creachadair/jdom/ast"
)

var errFailed = errors.New("one or more inputs failed")

// checkCommand parses each input and reports whether it is valid.
type checkCommand struct {
	*kingpin.CmdClause
	e     *env
	files *[]string
}

func newCheckCommand(app *kingpin.Application, e *env) *checkCommand {
	cmd := &checkCommand{e: e, CmdClause: app.Command("check", "Check that files contain valid JSON.")}
	cmd.files = cmd.Arg("file", "The files to check.").Required().ExistingFiles()
	return cmd
}

func (cmd *checkCommand) run() error {
	failed := 0
	for _, name := range *cmd.files {
		if !cmd.checkFile(name) {
			failed++
		}
	}
	if failed > 0 {
		return errors.Wrapf(errFailed, "%d of %d", failed, len(*cmd.files))
	}
	return nil
}

func (cmd *checkCommand) checkFile(name string) bool {
	e := cmd.e
	data, err := e.readInput(name)
	if err != nil {
		e.bad.Fprintf(e.stdout, "%s: %v\n", name, err)
		return false
	}
	var st stats
	if err := jdom.Parse(jdom.NewMemoryStream(data), &st, e.cfg.ParseOptions()); err != nil {
		e.reportError(name, data, err)
		return false
	}
	fmt.Fprintf(e.stdout, "%s: %s (%s, %d values, depth %d)\n", name, e.ok.Sprint("ok"),
		humanize.Bytes(uint64(len(data))), st.values, st.maxDepth)
	return true
}

// reportError prints a diagnostic for a failed parse of data.
func (e *env) reportError(name string, data []byte, err error) {
	var perr *jdom.ParseError
	if errors.As(err, &perr) {
		fmt.Fprintf(e.stdout, "%s:%s: %s\n", name, perr.Location(data), e.bad.Sprint(perr.Error()))
	} else {
		fmt.Fprintf(e.stdout, "%s: %s\n", name, e.bad.Sprint(err.Error()))
	}
}

// stats is a jdom.Handler that counts values and tracks nesting depth.
type stats struct {
	values, depth, maxDepth int
}

func (s *stats) BeginObject(jdom.Anchor) error { return s.begin() }
func (s *stats) BeginArray(jdom.Anchor) error  { return s.begin() }
func (s *stats) EndObject(jdom.Anchor) error   { s.depth--; return nil }
func (s *stats) EndArray(jdom.Anchor) error    { s.depth--; return nil }
func (s *stats) Key(jdom.Anchor) error         { return nil }
func (s *stats) Value(jdom.Anchor) error       { s.values++; return nil }

func (s *stats) begin() error {
	s.values++
	s.depth++
	s.maxDepth = max(s.maxDepth, s.depth)
	return nil
}

// fmtCommand reformats its input.
type fmtCommand struct {
	*kingpin.CmdClause
	e      *env
	file   *string
	indent *int
	tabs   *bool
	ascii  *bool
	nan    *bool
}

func newFmtCommand(app *kingpin.Application, e *env) *fmtCommand {
	cmd := &fmtCommand{e: e, CmdClause: app.Command("fmt", "Reformat JSON to stdout.")}
	cmd.file = cmd.Arg("file", "The file to format (default stdin).").String()
	cmd.indent = cmd.Flag("indent", "Indent by this many spaces (0 for compact).").Default("-1").Int()
	cmd.tabs = cmd.Flag("tabs", "Indent with tabs.").Bool()
	cmd.ascii = cmd.Flag("ascii", "Escape all non-ASCII characters.").Bool()
	cmd.nan = cmd.Flag("nan", "Accept and emit NaN and Infinity.").Bool()
	return cmd
}

func (cmd *fmtCommand) config() (*jdom.Options, jdom.WriterConfig) {
	e := cmd.e
	opts, wc := e.cfg.ParseOptions(), e.cfg.WriterConfig()
	if *cmd.indent >= 0 {
		wc.Indent = strings.Repeat(" ", *cmd.indent)
	}
	if *cmd.tabs {
		wc.Indent = "\t"
	}
	if *cmd.ascii {
		wc.EscapeUnicode = true
	}
	if *cmd.nan {
		opts.AllowNaNAndInf = true
		wc.EmitNaNAndInf = true
	}
	return opts, wc
}

func (cmd *fmtCommand) run() error {
	e := cmd.e
	data, err := e.readInput(*cmd.file)
	if err != nil {
		return err
	}
	opts, wc := cmd.config()
	out := jdom.NewWriteStream(e.stdout)
	w := jdom.NewWriter(out, wc)
	if err := jdom.Parse(jdom.NewMemoryStream(data), jdom.Echo(w), opts); err != nil {
		w.Flush()
		fmt.Fprintln(e.stdout)
		e.reportError(inputName(*cmd.file), data, err)
		return errFailed
	}
	out.Put('\n')
	if err := w.Flush(); err != nil {
		return errors.Wrap(err, "writing output")
	}
	level.Info(e.logger).Log("msg", "formatted", "file", inputName(*cmd.file), "bytes", len(data))
	return nil
}

// eventsCommand prints the parser events for its input.
type eventsCommand struct {
	*kingpin.CmdClause
	e     *env
	file  *string
	stop  *int
	spans *bool
}

func newEventsCommand(app *kingpin.Application, e *env) *eventsCommand {
	cmd := &eventsCommand{e: e, CmdClause: app.Command("events", "Print the parse events for a JSON input.")}
	cmd.file = cmd.Arg("file", "The file to parse (default stdin).").String()
	cmd.stop = cmd.Flag("stop-after-keys", "Stop parsing after this many object keys.").Int()
	cmd.spans = cmd.Flag("spans", "Print the input span of each event.").Bool()
	return cmd
}

func (cmd *eventsCommand) run() error {
	e := cmd.e
	data, err := e.readInput(*cmd.file)
	if err != nil {
		return err
	}
	h := &printer{e: e, stop: *cmd.stop, spans: *cmd.spans}
	err = jdom.Parse(jdom.NewMemoryStream(data), h, e.cfg.ParseOptions())
	if errors.Is(err, errStopped) {
		fmt.Fprintf(e.stdout, "%s after %d keys\n", e.bold.Sprint("stopped"), h.keys)
		return nil
	} else if err != nil {
		e.reportError(inputName(*cmd.file), data, err)
		return errFailed
	}
	return nil
}

var errStopped = errors.New("key limit reached")

// printer is a jdom.Handler that prints each event on a line.
type printer struct {
	e     *env
	stop  int
	spans bool
	keys  int
	depth int
}

func (p *printer) print(loc jdom.Anchor, event string, arg string) {
	var sb strings.Builder
	if p.spans {
		sp := loc.Span()
		fmt.Fprintf(&sb, "%d-%d ", sp.Pos, sp.End)
	}
	sb.WriteString(strings.Repeat("  ", p.depth))
	sb.WriteString(p.e.bold.Sprint(event))
	if arg != "" {
		sb.WriteByte(' ')
		sb.WriteString(arg)
	}
	fmt.Fprintln(p.e.stdout, sb.String())
}

func (p *printer) BeginObject(loc jdom.Anchor) error {
	p.print(loc, "BeginObject", "")
	p.depth++
	return nil
}

func (p *printer) EndObject(loc jdom.Anchor) error {
	p.depth--
	p.print(loc, "EndObject", strconv.Itoa(loc.Len()))
	return nil
}

func (p *printer) BeginArray(loc jdom.Anchor) error {
	p.print(loc, "BeginArray", "")
	p.depth++
	return nil
}

func (p *printer) EndArray(loc jdom.Anchor) error {
	p.depth--
	p.print(loc, "EndArray", strconv.Itoa(loc.Len()))
	return nil
}

func (p *printer) Key(loc jdom.Anchor) error {
	if p.stop > 0 && p.keys >= p.stop {
		return errStopped
	}
	p.keys++
	p.print(loc, "Key", jdom.Quote(string(loc.Text())))
	return nil
}

func (p *printer) Value(loc jdom.Anchor) error {
	arg := string(loc.Text())
	if loc.Kind() == jdom.StringKind {
		arg = jdom.Quote(arg)
	}
	p.print(loc, "Value", loc.Kind().String()+" "+arg)
	return nil
}

func (p *printer) Comment(text []byte, span jdom.Span) {
	fmt.Fprintf(p.e.stdout, "%sComment %q\n", strings.Repeat("  ", p.depth), text)
}

// roundTripCommand verifies that each input survives writing and reparsing.
type roundTripCommand struct {
	*kingpin.CmdClause
	e     *env
	files *[]string
}

func newRoundTripCommand(app *kingpin.Application, e *env) *roundTripCommand {
	cmd := &roundTripCommand{e: e, CmdClause: app.Command("roundtrip",
		"Check that files are unchanged by writing and reparsing.")}
	cmd.files = cmd.Arg("file", "The files to check.").Required().ExistingFiles()
	return cmd
}

func (cmd *roundTripCommand) run() error {
	failed := 0
	for _, name := range *cmd.files {
		if err := cmd.roundTrip(name); err != nil {
			fmt.Fprintf(cmd.e.stdout, "%s: %s\n", name, cmd.e.bad.Sprint(err.Error()))
			failed++
		}
	}
	if failed > 0 {
		return errors.Wrapf(errFailed, "%d of %d", failed, len(*cmd.files))
	}
	return nil
}

func (cmd *roundTripCommand) roundTrip(name string) error {
	e := cmd.e
	data, err := e.readInput(name)
	if err != nil {
		return err
	}
	opts, wc := e.cfg.ParseOptions(), e.cfg.WriterConfig()
	v, err := ast.Parse(jdom.NewMemoryStream(data), opts)
	if err != nil {
		return errors.Wrap(err, "parse input")
	}
	first, err := ast.Marshal(v, wc)
	if err != nil {
		return errors.Wrap(err, "write value")
	}
	back, err := ast.Parse(jdom.NewMemoryStream(first), opts)
	if err != nil {
		return errors.Wrap(err, "reparse output")
	}
	if !ast.Equal(v, back) {
		return errors.New("value changed after round trip")
	}
	second, err := ast.Marshal(back, wc)
	if err != nil {
		return errors.Wrap(err, "rewrite value")
	}
	if !bytes.Equal(first, second) {
		fmt.Fprintln(e.stdout, e.diff(string(first), string(second)))
		return errors.New("output is not stable")
	}
	fmt.Fprintf(e.stdout, "%s: %s (%s in, %s out)\n", name, e.ok.Sprint("ok"),
		humanize.Bytes(uint64(len(data))), humanize.Bytes(uint64(len(first))))
	return nil
}

// diff renders the differences between a and b.
func (e *env) diff(a, b string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(a, b, false))
	if e.color {
		return dmp.DiffPrettyText(diffs)
	}
	var sb strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			fmt.Fprintf(&sb, "{+%s+}", d.Text)
		case diffmatchpatch.DiffDelete:
			fmt.Fprintf(&sb, "[-%s-]", d.Text)
		default:
			sb.WriteString(d.Text)
		}
	}
	return sb.String()
}

// getCommand prints the value at a path within its input.
type getCommand struct {
	*kingpin.CmdClause
	e    *env
	file *string
	path *[]string
}

func newGetCommand(app *kingpin.Application, e *env) *getCommand {
	cmd := &getCommand{e: e, CmdClause: app.Command("get",
		"Print the value at a path of object keys and array offsets.")}
	cmd.file = cmd.Arg("file", "The file to read.").Required().ExistingFile()
	cmd.path = cmd.Arg("path", "Object keys and array offsets (negative counts from the end). "+
		"On an object, a numeric element is a key.").Strings()
	return cmd
}

func (cmd *getCommand) run() error {
	e := cmd.e
	data, err := e.readInput(*cmd.file)
	if err != nil {
		return err
	}
	v, err := ast.Parse(jdom.NewMemoryStream(data), e.cfg.ParseOptions())
	if err != nil {
		e.reportError(*cmd.file, data, err)
		return errFailed
	}
	path := make([]any, len(*cmd.path))
	for i, elt := range *cmd.path {
		path[i] = pathStep(elt)
	}
	got, err := ast.Path(v, path...)
	if err != nil {
		return errors.Wrap(err, "resolve path")
	}
	out, err := ast.Marshal(got, e.cfg.WriterConfig())
	if err != nil {
		return errors.Wrap(err, "write value")
	}
	fmt.Fprintf(e.stdout, "%s\n", out)
	return nil
}

// pathStep resolves seg as an offset if the current value is an array, and
// otherwise as an object key.
func pathStep(seg string) func(ast.Value) (ast.Value, error) {
	return func(v ast.Value) (ast.Value, error) {
		if _, ok := v.(ast.Array); ok {
			if n, err := strconv.Atoi(seg); err == nil {
				return ast.Path(v, n)
			}
		}
		return ast.Path(v, seg)
	}
}

func inputName(name string) string {
	if name == "" || name == "-" {
		return "<stdin>"
	}
	return name
}
