// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package ast defines an in-memory document model for JSON values, and a
// parser that constructs documents from JSON source.
package ast

import (
	"fmt"
	"sort"
	"strings"

	"github.com/creachadair/jdom"
)

// A Value is an arbitrary JSON value. The concrete types are Null, Bool,
// String, Number, Array, and Object. A nil Value is treated as null.
type Value interface {
	// Kind reports the kind of the value.
	Kind() jdom.Kind

	// JSON renders the value as compact JSON text.
	JSON() string
}

// KindOf reports the kind of v. It returns jdom.NullKind if v == nil.
func KindOf(v Value) jdom.Kind {
	if v == nil {
		return jdom.NullKind
	}
	return v.Kind()
}

type nullValue struct{}

// Null is the null value.
var Null Value = nullValue{}

func (nullValue) Kind() jdom.Kind { return jdom.NullKind }
func (nullValue) JSON() string    { return "null" }
func (nullValue) String() string  { return "Null" }

// A Bool is a Boolean constant, true or false.
type Bool bool

// Kind satisfies the Value interface. True and false are distinct kinds.
func (b Bool) Kind() jdom.Kind {
	if b {
		return jdom.TrueKind
	}
	return jdom.FalseKind
}

// JSON satisfies the Value interface.
func (b Bool) JSON() string {
	if b {
		return "true"
	}
	return "false"
}

// A String is a string value. Its contents are the decoded text, without
// quotation marks or escapes.
type String string

// Kind satisfies the Value interface.
func (String) Kind() jdom.Kind { return jdom.StringKind }

// JSON satisfies the Value interface.
func (s String) JSON() string { return jdom.Quote(string(s)) }

// Len reports the length of s in bytes.
func (s String) Len() int { return len(s) }

// A Number is a numeric value.
type Number struct{ jdom.Number }

// Int constructs an integer Number.
func Int(z int64) Number { return Number{jdom.Int(z)} }

// Uint constructs an unsigned integer Number.
func Uint(z uint64) Number { return Number{jdom.Uint(z)} }

// Float constructs a floating-point Number.
func Float(f float64) Number { return Number{jdom.Float(f)} }

// Kind satisfies the Value interface.
func (Number) Kind() jdom.Kind { return jdom.NumberKind }

// JSON satisfies the Value interface.
func (n Number) JSON() string { return n.Number.String() }

// An Array is a sequence of values.
type Array []Value

// Kind satisfies the Value interface.
func (Array) Kind() jdom.Kind { return jdom.ArrayKind }

// Len reports the number of elements in a.
func (a Array) Len() int { return len(a) }

// JSON satisfies the Value interface.
func (a Array) JSON() string { return render(a) }

// An Object is a collection of key-value members. Members are kept in the
// order they were added, and keys need not be unique.
type Object []*Member

// Kind satisfies the Value interface.
func (Object) Kind() jdom.Kind { return jdom.ObjectKind }

// Len reports the number of members in o.
func (o Object) Len() int { return len(o) }

// JSON satisfies the Value interface.
func (o Object) JSON() string { return render(o) }

// Find returns the first member of o with the given key, or nil.
func (o Object) Find(key string) *Member {
	for _, m := range o {
		if m.Key == key {
			return m
		}
	}
	return nil
}

// FindAll returns all the members of o with the given key, in order.
func (o Object) FindAll(key string) []*Member {
	var out []*Member
	for _, m := range o {
		if m.Key == key {
			out = append(out, m)
		}
	}
	return out
}

// Append adds a member with the given key and value to the end of o. It does
// not check for an existing member with the same key.
func (o *Object) Append(key string, value any) { *o = append(*o, Field(key, value)) }

// Sort sorts the members of o in ascending order by key. Members with equal
// keys keep their relative order.
func (o Object) Sort() {
	sort.SliceStable(o, func(i, j int) bool { return o[i].Key < o[j].Key })
}

// A Member is a single key-value pair belonging to an Object.
type Member struct {
	Key   string
	Value Value
}

// JSON renders the member as a "key":value pair.
func (m Member) JSON() string { return jdom.Quote(m.Key) + ":" + valueJSON(m.Value) }

func (m Member) String() string { return fmt.Sprintf("Member(key=%q)", m.Key) }

// Field constructs an object member with the given key and value.
// The value is converted as by ToValue.
func Field(key string, value any) *Member {
	return &Member{Key: key, Value: ToValue(value)}
}

// ToValue converts a string, integer, float, bool, nil, jdom.Number, or
// ast.Value into an ast.Value. Slices of these are converted to arrays, and
// maps from strings to these are converted to objects with keys in sorted
// order. ToValue panics if v does not have one of those types.
func ToValue(v any) Value {
	switch t := v.(type) {
	case nil:
		return Null
	case Value:
		return t
	case bool:
		return Bool(t)
	case string:
		return String(t)
	case int:
		return Int(int64(t))
	case int8:
		return Int(int64(t))
	case int16:
		return Int(int64(t))
	case int32:
		return Int(int64(t))
	case int64:
		return Int(t)
	case uint:
		return Uint(uint64(t))
	case uint8:
		return Uint(uint64(t))
	case uint16:
		return Uint(uint64(t))
	case uint32:
		return Uint(uint64(t))
	case uint64:
		return Uint(t)
	case float32:
		return Float(float64(t))
	case float64:
		return Float(t)
	case jdom.Number:
		return Number{t}
	case []Value:
		return Array(t)
	case []any:
		out := make(Array, len(t))
		for i, elt := range t {
			out[i] = ToValue(elt)
		}
		return out
	case []string:
		out := make(Array, len(t))
		for i, s := range t {
			out[i] = String(s)
		}
		return out
	case map[string]any:
		out := make(Object, 0, len(t))
		for key, val := range t {
			out = append(out, Field(key, val))
		}
		out.Sort()
		return out
	default:
		panic(fmt.Sprintf("ast: unsupported value type %T", v))
	}
}

func valueJSON(v Value) string {
	if v == nil {
		return "null"
	}
	return v.JSON()
}

// render returns the compact encoding of a container. Non-finite numbers are
// rendered as NaN, Infinity, or -Infinity.
func render(v Value) string {
	var sb strings.Builder
	appendJSON(&sb, v)
	return sb.String()
}

func appendJSON(sb *strings.Builder, v Value) {
	switch t := v.(type) {
	case Array:
		sb.WriteByte('[')
		for i, elt := range t {
			if i > 0 {
				sb.WriteByte(',')
			}
			appendJSON(sb, elt)
		}
		sb.WriteByte(']')
	case Object:
		sb.WriteByte('{')
		for i, m := range t {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(jdom.Quote(m.Key))
			sb.WriteByte(':')
			appendJSON(sb, m.Value)
		}
		sb.WriteByte('}')
	default:
		sb.WriteString(valueJSON(v))
	}
}
