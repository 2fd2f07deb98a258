// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jdom

import (
	"math"
	"strconv"
)

// Kind is the type of a JSON value.
type Kind byte

// Constants defining the valid Kind values.
const (
	NullKind   Kind = iota // null
	FalseKind              // false
	TrueKind               // true
	ObjectKind             // object
	ArrayKind              // array
	StringKind             // string
	NumberKind             // number
)

var kindStr = [...]string{
	NullKind:   "null",
	FalseKind:  "false",
	TrueKind:   "true",
	ObjectKind: "object",
	ArrayKind:  "array",
	StringKind: "string",
	NumberKind: "number",
}

func (k Kind) String() string {
	if int(k) >= len(kindStr) {
		return "invalid"
	}
	return kindStr[k]
}

// NumberRep identifies the representation used to store a Number.
type NumberRep byte

// Constants defining the valid NumberRep values.
const (
	IntRep   NumberRep = iota // signed 64-bit integer
	UintRep                   // unsigned 64-bit integer beyond the int64 range
	FloatRep                  // IEEE 754 double
)

// A Number is a JSON number. It records whether the number was stored as an
// integer or as a double, so that integers are written back without a
// decimal point and doubles are written back with one.
//
// The zero value is the integer 0.
type Number struct {
	rep NumberRep
	i   int64
	u   uint64
	f   float64
}

// Int returns an integer Number with value v.
func Int(v int64) Number { return Number{rep: IntRep, i: v} }

// Uint returns an integer Number with value v. If v fits in an int64, the
// result is the same as Int(int64(v)).
func Uint(v uint64) Number {
	if v <= math.MaxInt64 {
		return Int(int64(v))
	}
	return Number{rep: UintRep, u: v}
}

// Float returns a floating-point Number with value v.
func Float(v float64) Number { return Number{rep: FloatRep, f: v} }

// Rep reports the representation of n.
func (n Number) Rep() NumberRep { return n.rep }

// IsInt reports whether n is stored as an integer.
func (n Number) IsInt() bool { return n.rep != FloatRep }

// Int64 returns the value of n as an int64, and reports whether the
// conversion is exact.
func (n Number) Int64() (int64, bool) {
	switch n.rep {
	case IntRep:
		return n.i, true
	case UintRep:
		return int64(n.u), false
	default:
		v := int64(n.f)
		return v, n.f >= -(1<<63) && n.f < 1<<63 && float64(v) == n.f
	}
}

// Uint64 returns the value of n as a uint64, and reports whether the
// conversion is exact.
func (n Number) Uint64() (uint64, bool) {
	switch n.rep {
	case IntRep:
		return uint64(n.i), n.i >= 0
	case UintRep:
		return n.u, true
	default:
		v := uint64(n.f)
		return v, n.f >= 0 && n.f < 1<<64 && float64(v) == n.f
	}
}

// Float64 returns the value of n as a float64, rounding if necessary.
func (n Number) Float64() float64 {
	switch n.rep {
	case IntRep:
		return float64(n.i)
	case UintRep:
		return float64(n.u)
	default:
		return n.f
	}
}

// Equal reports whether n and m denote the same number.
//
// Two integers are equal if their values are equal. Two doubles are equal if
// they compare equal with ==, or if both are NaN. An integer and a double are
// equal only if the double is integral and has exactly the integer's value;
// no rounding is applied to either side.
func (n Number) Equal(m Number) bool {
	switch {
	case n.IsInt() && m.IsInt():
		if n.rep == m.rep {
			return n.i == m.i && n.u == m.u
		}
		return false // canonical: UintRep values never fit IntRep
	case !n.IsInt() && !m.IsInt():
		return n.f == m.f || (math.IsNaN(n.f) && math.IsNaN(m.f))
	case n.IsInt():
		return m.equalsInt(n)
	default:
		return n.equalsInt(m)
	}
}

// equalsInt reports whether the double n exactly equals the integer z.
func (n Number) equalsInt(z Number) bool {
	if z.rep == UintRep {
		v, ok := n.Uint64()
		return ok && v == z.u
	}
	v, ok := n.Int64()
	return ok && v == z.i
}

// String returns the JSON encoding of n. Non-finite doubles are rendered as
// NaN, Infinity, or -Infinity.
func (n Number) String() string { return string(n.AppendText(nil)) }

// AppendText appends the JSON encoding of n to buf and returns the result.
// Integers have no decimal point or exponent. Doubles use the shortest
// representation that parses back to the same value, and always include a
// decimal point or an exponent.
func (n Number) AppendText(buf []byte) []byte {
	switch n.rep {
	case IntRep:
		return strconv.AppendInt(buf, n.i, 10)
	case UintRep:
		return strconv.AppendUint(buf, n.u, 10)
	}
	switch {
	case math.IsNaN(n.f):
		return append(buf, "NaN"...)
	case math.IsInf(n.f, 1):
		return append(buf, "Infinity"...)
	case math.IsInf(n.f, -1):
		return append(buf, "-Infinity"...)
	}

	// Use plain notation for moderate magnitudes and exponent notation for
	// very large or very small ones.
	abs := math.Abs(n.f)
	fmtc := byte('f')
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		fmtc = 'e'
	}
	start := len(buf)
	buf = strconv.AppendFloat(buf, n.f, fmtc, -1, 64)
	for _, c := range buf[start:] {
		if c == '.' || c == 'e' {
			return buf
		}
	}
	return append(buf, '.', '0')
}

// IsFinite reports whether n is an integer or a finite double.
func (n Number) IsFinite() bool {
	return n.IsInt() || !(math.IsNaN(n.f) || math.IsInf(n.f, 0))
}

// ParseNumber parses text as a JSON number. Integers without fraction or
// exponent that fit in 64 bits are stored as integers; everything else is
// stored as a double.
//
// ParseNumber assumes text is syntactically valid. It reports NumberTooBig if
// the value cannot be represented as a finite double.
func ParseNumber(text []byte) (Number, ErrorCode) {
	isInt := true
	for _, c := range text {
		if c == '.' || c == 'e' || c == 'E' {
			isInt = false
			break
		}
	}
	if isInt {
		s := string(text)
		if len(s) > 0 && s[0] == '-' {
			if v, err := strconv.ParseInt(s, 10, 64); err == nil {
				return Int(v), None
			}
		} else if v, err := strconv.ParseUint(s, 10, 64); err == nil {
			return Uint(v), None
		}
		// Fall through: the integer does not fit 64 bits.
	}
	// A range error for underflow still yields a usable (zero) result; only
	// overflow to infinity is an error.
	f, err := strconv.ParseFloat(string(text), 64)
	if err != nil && math.IsInf(f, 0) {
		return Number{}, NumberTooBig
	}
	return Float(f), None
}
