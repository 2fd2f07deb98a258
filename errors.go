// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jdom

import (
	"errors"
	"fmt"
)

// ErrorCode identifies the kind of a parse error.
type ErrorCode int

// Constants defining the valid ErrorCode values.
const (
	None                          ErrorCode = iota // no error
	DocumentEmpty                                  // the document is empty
	DocumentRootNotSingular                        // extra values after the root
	ValueInvalid                                   // invalid value
	ObjectMissName                                 // missing member name
	ObjectMissColon                                // missing colon after member name
	ObjectMissCommaOrCurlyBracket                  // missing "," or "}" after member
	ArrayMissCommaOrSquareBracket                  // missing "," or "]" after element
	StringUnicodeEscapeInvalidHex                  // bad hex digit in \u escape
	StringUnicodeSurrogateInvalid                  // bad surrogate pair
	StringEscapeInvalid                            // bad escape character
	StringMissQuotationMark                        // unterminated string
	StringInvalidEncoding                          // invalid UTF-8 or control byte
	NumberTooBig                                   // number overflows float64
	NumberMissFraction                             // no digits after "."
	NumberMissExponent                             // no digits in exponent
	Termination                                    // parse stopped by the handler
	UnspecificSyntaxError                          // any other syntax error
)

var codeName = [...]string{
	None:                          "None",
	DocumentEmpty:                 "DocumentEmpty",
	DocumentRootNotSingular:       "DocumentRootNotSingular",
	ValueInvalid:                  "ValueInvalid",
	ObjectMissName:                "ObjectMissName",
	ObjectMissColon:               "ObjectMissColon",
	ObjectMissCommaOrCurlyBracket: "ObjectMissCommaOrCurlyBracket",
	ArrayMissCommaOrSquareBracket: "ArrayMissCommaOrSquareBracket",
	StringUnicodeEscapeInvalidHex: "StringUnicodeEscapeInvalidHex",
	StringUnicodeSurrogateInvalid: "StringUnicodeSurrogateInvalid",
	StringEscapeInvalid:           "StringEscapeInvalid",
	StringMissQuotationMark:       "StringMissQuotationMark",
	StringInvalidEncoding:         "StringInvalidEncoding",
	NumberTooBig:                  "NumberTooBig",
	NumberMissFraction:            "NumberMissFraction",
	NumberMissExponent:            "NumberMissExponent",
	Termination:                   "Termination",
	UnspecificSyntaxError:         "UnspecificSyntaxError",
}

func (c ErrorCode) String() string {
	if c < 0 || int(c) >= len(codeName) {
		return fmt.Sprintf("ErrorCode(%d)", int(c))
	}
	return codeName[c]
}

// Message returns the English description of c. It returns a generic message
// for values of c that are not defined by this package.
func Message(c ErrorCode) string {
	switch c {
	case None:
		return "No error."

	case DocumentEmpty:
		return "The document is empty."
	case DocumentRootNotSingular:
		return "The document root must not be followed by other values."

	case ValueInvalid:
		return "Invalid value."

	case ObjectMissName:
		return "Missing a name for object member."
	case ObjectMissColon:
		return "Missing a colon after a name of object member."
	case ObjectMissCommaOrCurlyBracket:
		return "Missing a comma or '}' after an object member."

	case ArrayMissCommaOrSquareBracket:
		return "Missing a comma or ']' after an array element."

	case StringUnicodeEscapeInvalidHex:
		return "Incorrect hex digit after \\u escape in string."
	case StringUnicodeSurrogateInvalid:
		return "The surrogate pair in string is invalid."
	case StringEscapeInvalid:
		return "Invalid escape character in string."
	case StringMissQuotationMark:
		return "Missing a closing quotation mark in string."
	case StringInvalidEncoding:
		return "Invalid encoding in string."

	case NumberTooBig:
		return "Number too big to be stored in double."
	case NumberMissFraction:
		return "Miss fraction part in number."
	case NumberMissExponent:
		return "Miss exponent in number."

	case Termination:
		return "Terminate parsing due to Handler error."
	case UnspecificSyntaxError:
		return "Unspecific syntax error."

	default:
		return "Unknown error."
	}
}

var (
	// ErrStop may be returned by a Handler method to stop parsing early.
	// Any non-nil error has the same effect; ErrStop is provided for handlers
	// that have no more specific error to report.
	ErrStop = errors.New("stop requested by handler")

	// ErrTerminated matches (via errors.Is) any *ParseError whose code is
	// Termination.
	ErrTerminated = errors.New("parse terminated")

	// ErrTooDeep is the detail error reported when the input exceeds the
	// maximum nesting depth configured for a parser.
	ErrTooDeep = errors.New("nesting depth exceeds limit")
)

// ParseError is the concrete type of errors reported by the parser when its
// input is malformed, or when a Handler stops the parse.
type ParseError struct {
	Code   ErrorCode
	Offset int // byte offset of the start of the offending token

	// Err, if non-nil, is the underlying cause. For Termination, it is the
	// error reported by the handler.
	Err error
}

// Error satisfies the error interface.
func (e *ParseError) Error() string {
	msg := Message(e.Code)
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return fmt.Sprintf("%s (offset %d)", msg, e.Offset)
}

// Unwrap supports error wrapping.
func (e *ParseError) Unwrap() error { return e.Err }

// Is reports whether target is ErrTerminated and e reports a termination.
func (e *ParseError) Is(target error) bool {
	return target == ErrTerminated && e.Code == Termination
}

// Location returns the line and column of e in src, which should be the
// complete input that was parsed.
func (e *ParseError) Location(src []byte) LineCol { return LineColAt(src, e.Offset) }
