// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jdom_test

import (
	"math"
	"testing"

	"github.com/creachadair/jdom"
)

func TestNumberEqual(t *testing.T) {
	nan := jdom.Float(math.NaN())
	tests := []struct {
		a, b jdom.Number
		want bool
	}{
		{jdom.Int(0), jdom.Int(0), true},
		{jdom.Int(1), jdom.Int(2), false},
		{jdom.Uint(5), jdom.Int(5), true},
		{jdom.Uint(math.MaxUint64), jdom.Uint(math.MaxUint64), true},
		{jdom.Uint(math.MaxUint64), jdom.Int(-1), false},

		{jdom.Float(1.5), jdom.Float(1.5), true},
		{jdom.Float(0), jdom.Float(math.Copysign(0, -1)), true},
		{nan, nan, true},
		{nan, jdom.Float(0), false},
		{jdom.Float(math.Inf(1)), jdom.Float(math.Inf(1)), true},

		// Mixed comparisons require exact equality.
		{jdom.Int(1), jdom.Float(1), true},
		{jdom.Float(-3), jdom.Int(-3), true},
		{jdom.Int(1), jdom.Float(1.5), false},
		{jdom.Int(0), jdom.Float(math.Copysign(0, -1)), true},
		{jdom.Int(math.MaxInt64), jdom.Float(math.MaxInt64), false}, // rounds to 2^63
		{jdom.Int(1 << 62), jdom.Float(1 << 62), true},
		{jdom.Uint(1 << 63), jdom.Float(1 << 63), true},
		{jdom.Uint(math.MaxUint64), jdom.Float(math.MaxUint64), false},
		{jdom.Int(0), nan, false},
		{jdom.Int(math.MaxInt64), jdom.Float(math.Inf(1)), false},
	}
	for _, test := range tests {
		if got := test.a.Equal(test.b); got != test.want {
			t.Errorf("%v.Equal(%v): got %v, want %v", test.a, test.b, got, test.want)
		}
		if got := test.b.Equal(test.a); got != test.want {
			t.Errorf("%v.Equal(%v): got %v, want %v", test.b, test.a, got, test.want)
		}
	}
}

func TestNumberConversions(t *testing.T) {
	t.Run("Int64", func(t *testing.T) {
		tests := []struct {
			n    jdom.Number
			want int64
			ok   bool
		}{
			{jdom.Int(-7), -7, true},
			{jdom.Uint(math.MaxUint64), -1, false},
			{jdom.Float(42), 42, true},
			{jdom.Float(42.5), 42, false},
			{jdom.Float(1e300), 0, false},
		}
		for _, test := range tests {
			got, ok := test.n.Int64()
			if ok != test.ok || (ok && got != test.want) {
				t.Errorf("%v.Int64(): got %v, %v; want %v, %v", test.n, got, ok, test.want, test.ok)
			}
		}
	})
	t.Run("Uint64", func(t *testing.T) {
		tests := []struct {
			n    jdom.Number
			want uint64
			ok   bool
		}{
			{jdom.Int(7), 7, true},
			{jdom.Int(-7), 0, false},
			{jdom.Uint(math.MaxUint64), math.MaxUint64, true},
			{jdom.Float(3), 3, true},
			{jdom.Float(-3), 0, false},
		}
		for _, test := range tests {
			got, ok := test.n.Uint64()
			if ok != test.ok || (ok && got != test.want) {
				t.Errorf("%v.Uint64(): got %v, %v; want %v, %v", test.n, got, ok, test.want, test.ok)
			}
		}
	})
	t.Run("Rep", func(t *testing.T) {
		if r := jdom.Uint(10).Rep(); r != jdom.IntRep {
			t.Errorf("Uint(10).Rep(): got %v, want %v", r, jdom.IntRep)
		}
		if r := jdom.Uint(math.MaxUint64).Rep(); r != jdom.UintRep {
			t.Errorf("Uint(max).Rep(): got %v, want %v", r, jdom.UintRep)
		}
		var zero jdom.Number
		if !zero.IsInt() || zero.String() != "0" {
			t.Errorf("Zero Number: got %v (int=%v), want integer 0", zero, zero.IsInt())
		}
	})
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		text string
		want string
		code jdom.ErrorCode
	}{
		{"0", "0", jdom.None},
		{"-12", "-12", jdom.None},
		{"3.25e-5", "0.0000325", jdom.None},
		{"2E3", "2000.0", jdom.None},
		{"1e309", "", jdom.NumberTooBig},
		{"-1e309", "", jdom.NumberTooBig},
		{"100000000000000000000", "100000000000000000000.0", jdom.None},
	}
	for _, test := range tests {
		n, code := jdom.ParseNumber([]byte(test.text))
		if code != test.code {
			t.Errorf("ParseNumber(%q): got code %v, want %v", test.text, code, test.code)
			continue
		}
		if code == jdom.None && n.String() != test.want {
			t.Errorf("ParseNumber(%q): got %q, want %q", test.text, n.String(), test.want)
		}
	}
}
