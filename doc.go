// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package jdom implements a streaming JSON parser and writer.
//
// # Streams
//
// The parser reads from an InputStream, which delivers one byte at a time
// and reports its offset. A MemoryStream reads from a byte slice, a
// StringStream reads from a string, and a ReadStream reads from an
// io.Reader:
//
//	in := jdom.NewReadStream(os.Stdin)
//
// The Writer emits to an OutputStream. A Buffer accumulates output in
// memory, and a WriteStream writes to an io.Writer. Input and output are
// separate interfaces, so a stream cannot be misused in the wrong direction.
//
// To parse input that may be encoded as UTF-16 or UTF-32, wrap it with
// NewAutoUTFStream, which detects the encoding and transcodes to UTF-8.
//
// # Parsing
//
// The Parser type implements an event-driven parser for JSON. The parser
// works by calling methods on a Handler value to report the structure of the
// input. In case of error, parsing is terminated and an error of concrete
// type *jdom.ParseError is returned, carrying an ErrorCode and the byte
// offset where the problem was detected.
//
//	if err := jdom.Parse(in, handler, nil); err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//
// If a Handler method reports an error, parsing stops and the parser
// reports a ParseError with code Termination wrapping that error:
//
//	if errors.Is(err, jdom.ErrTerminated) {
//	   log.Print("Stopped by handler")
//	}
//
// To parse a single value from the front of the input, call ParseOne. This
// method returns io.EOF if no further values are available.
//
// # Handlers
//
// The Handler interface accepts parser events. The methods of a handler
// correspond to the syntax of JSON values:
//
//	JSON type  | Methods                   | Description
//	---------- | ------------------------- | ---------------------------------
//	object     | BeginObject, EndObject    | { ... }
//	member     | Key                       | "key": (followed by a value)
//	array      | BeginArray, EndArray      | [ ... ]
//	value      | Value                     | true, false, null, number, string
//
// Each method is passed an Anchor value that can be used to retrieve
// location, type, and content information. The Anchor passed to a handler
// method is only valid for the duration of that method call.
//
// # Writing
//
// The Writer type accepts the same sequence of events and produces JSON
// text. Use Echo to connect a Parser directly to a Writer:
//
//	w := jdom.NewWriter(jdom.NewWriteStream(os.Stdout), jdom.WriterConfig{Indent: "  "})
//	if err := jdom.Parse(in, jdom.Echo(w), nil); err != nil {
//	   log.Fatal(err)
//	}
//	w.Flush()
//
// For an in-memory document model, see package ast.
package jdom
