// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Program jdom checks, reformats, and inspects JSON files.
package main

import (
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/fatih/color"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"

	"github.com/creachadair/jdom"
	"github.com/creachadair/jdom/internal/config"
)

func main() { os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)) }

// Exit codes.
const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

// An env carries the settings and I/O streams shared by all commands.
type env struct {
	stdin          io.Reader
	stdout, stderr io.Writer
	logger         log.Logger
	cfg            config.Config

	color         bool
	ok, bad, bold *color.Color
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	app := kingpin.New("jdom", "Check, reformat, and inspect JSON text.")
	app.UsageWriter(stderr)
	app.ErrorWriter(stderr)
	app.Terminate(nil)
	app.HelpFlag.Short('h')

	var (
		setComments, setTrailing, setDepth, setAuto, setLevel bool

		configFile = app.Flag("config", "Configuration file (YAML or HuJSON).").ExistingFile()
		logLevel   = app.Flag("log.level", "Log level: debug, info, warn, or error.").
				Default("warn").IsSetByUser(&setLevel).Enum("debug", "info", "warn", "error")
		comments = app.Flag("comments", "Allow comments in the input.").IsSetByUser(&setComments).Bool()
		trailing = app.Flag("trailing-commas", "Allow trailing commas in the input.").IsSetByUser(&setTrailing).Bool()
		maxDepth = app.Flag("max-depth", "Maximum nesting depth (0 for the default, 10000).").IsSetByUser(&setDepth).Int()
		autoUTF  = app.Flag("auto-utf", "Detect and transcode UTF-16 and UTF-32 input.").IsSetByUser(&setAuto).Bool()
	)

	e := &env{stdin: stdin, stdout: stdout, stderr: stderr}
	cmds := []command{
		newCheckCommand(app, e),
		newFmtCommand(app, e),
		newEventsCommand(app, e),
		newRoundTripCommand(app, e),
		newGetCommand(app, e),
	}

	name, err := app.Parse(args)
	if err != nil {
		app.Errorf("%v", err)
		return exitUsage
	} else if name == "" {
		return exitOK // --help
	}

	if *configFile != "" {
		cfg, err := config.Load(*configFile)
		if err != nil {
			app.Errorf("%v", err)
			return exitUsage
		}
		e.cfg = cfg
	}
	if setComments {
		e.cfg.Comments = *comments
	}
	if setTrailing {
		e.cfg.TrailingCommas = *trailing
	}
	if setDepth {
		e.cfg.MaxDepth = *maxDepth
	}
	if setAuto {
		e.cfg.AutoUTF = *autoUTF
	}
	if setLevel || e.cfg.LogLevel == "" {
		e.cfg.LogLevel = *logLevel
	}
	if err := e.cfg.Validate(); err != nil {
		app.Errorf("%v", err)
		return exitUsage
	}

	e.logger = newLogger(stderr, e.cfg.LogLevel)
	e.setColors(isTerminal(stdout))
	level.Debug(e.logger).Log("msg", "starting", "cmd", name, "config", *configFile)

	for _, c := range cmds {
		if c.FullCommand() != name {
			continue
		}
		if err := c.run(); err != nil {
			level.Error(e.logger).Log("msg", "command failed", "cmd", name, "err", err)
			return exitFail
		}
		return exitOK
	}
	return exitUsage
}

// A command is a subcommand of the program.
type command interface {
	FullCommand() string
	run() error
}

func newLogger(w io.Writer, lvl string) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = level.NewFilter(logger, level.Allow(level.ParseDefault(lvl, level.WarnValue())))
	return log.With(logger, "ts", log.DefaultTimestampUTC)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

func (e *env) setColors(enable bool) {
	e.color = enable
	e.ok = color.New(color.FgGreen)
	e.bad = color.New(color.FgRed, color.Bold)
	e.bold = color.New(color.Bold)
	for _, c := range []*color.Color{e.ok, e.bad, e.bold} {
		if enable {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
}

// readInput reads the contents of the named file, or of stdin if name is ""
// or "-". If automatic encoding detection is enabled, the result is
// transcoded to UTF-8.
func (e *env) readInput(name string) ([]byte, error) {
	var data []byte
	var err error
	if name == "" || name == "-" {
		data, err = io.ReadAll(e.stdin)
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return nil, errors.Wrap(err, "reading input")
	}
	if !e.cfg.AutoUTF {
		return data, nil
	}
	in := jdom.NewAutoUTFStream(jdom.NewMemoryStream(data))
	out := make([]byte, 0, len(data))
	for !in.Done() {
		out = append(out, in.Take())
	}
	if es, ok := in.(interface{ Err() error }); ok && es.Err() != nil {
		return nil, errors.Wrap(es.Err(), "transcoding input")
	}
	level.Debug(e.logger).Log("msg", "transcoded input", "file", name, "in", len(data), "out", len(out))
	return out, nil
}
