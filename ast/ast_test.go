// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package ast_test

import (
	"errors"
	"testing"

	"github.com/creachadair/jdom"
	"github.com/creachadair/jdom/ast"
	"github.com/creachadair/mds/mtest"
	"github.com/google/go-cmp/cmp"
)

const testJSON = `{
  "list": [
    {
      "x": 1
    },
    {
      "x": 2
    }
  ],
  "y": {
    "hello": "there"
  },
  "o": [
    "hi",
    "yourself"
  ],
  "xyz": {
    "p": true,
    "d": true,
    "q": false
  }
}`

func TestPath(t *testing.T) {
	v, err := ast.ParseString(testJSON, nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	tests := []struct {
		name string
		path []any
		want ast.Value
		fail bool
	}{
		{"NilInput", nil, v, false},
		{"NoMatch", []any{"nonesuch"}, v, true},
		{"WrongType", []any{11}, v, true},

		{"ArrayPos", []any{"list", 1},
			v.(ast.Object).Find("list").Value.(ast.Array)[1],
			false,
		},
		{"ArrayNeg", []any{"list", -1},
			v.(ast.Object).Find("list").Value.(ast.Array)[1],
			false,
		},
		{"ArrayRange", []any{"o", 25}, v, true},
		{"ObjPath", []any{"xyz", "d"},
			v.(ast.Object).Find("xyz").Value.(ast.Object).Find("d").Value,
			false,
		},
		{"ObjIndex", []any{"xyz", -1}, ast.Bool(false), false},
		{"Deep", []any{"list", 0, "x"}, ast.Int(1), false},
		{"BadElement", []any{"list", 1.5}, v, true},

		{"FuncArray", []any{"o", testPathFunc}, ast.ToValue(2), false},
		{"FuncObj", []any{"xyz", testPathFunc}, ast.ToValue(3), false},
		{"FuncWrong", []any{"xyz", "d", testPathFunc}, v, true},
	}
	opt := cmp.Comparer(ast.Equal)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ast.Path(v, tc.path...)
			if err != nil {
				if tc.fail {
					t.Logf("Got expected error: %v", err)
				} else {
					t.Fatalf("Path: unexpected error: %v", err)
				}
			} else if tc.fail {
				t.Fatalf("Path: got %s, want error", got.JSON())
			}
			if diff := cmp.Diff(got, tc.want, opt); diff != "" {
				t.Errorf("Wrong result (-got, +want):\n%s", diff)
			} else if err == nil {
				t.Logf("Found %s OK", got.JSON())
			}
		})
	}
}

func testPathFunc(v ast.Value) (ast.Value, error) {
	if ln, ok := v.(interface{ Len() int }); ok {
		return ast.ToValue(ln.Len()), nil
	}
	return nil, errors.New("not a thing with length")
}

func TestString(t *testing.T) {
	tests := []struct {
		input ast.Value
		want  string
	}{
		{ast.Null, "null"},

		{ast.Bool(false), "false"},
		{ast.Bool(true), "true"},

		{ast.String(""), `""`},
		{ast.String("a \t b"), `"a \t b"`},
		{ast.String("q\"\\"), `"q\"\\"`},

		{ast.Float(-0.00239), `-0.00239`},
		{ast.Float(3), `3.0`},

		{ast.Int(0), `0`},
		{ast.Int(15), `15`},
		{ast.Int(-25), `-25`},
		{ast.Uint(1 << 63), `9223372036854775808`},

		{ast.Array{}, `[]`},
		{ast.Array{
			ast.Bool(false),
		}, `[false]`},
		{ast.Array{
			ast.Bool(true),
			ast.Int(199),
		}, `[true,199]`},
		{ast.Array{
			ast.String("free"),
			ast.String("your"),
			ast.String("mind"),
		}, `["free","your","mind"]`},
		{ast.Array{nil, ast.Null}, `[null,null]`},

		{ast.Object{}, `{}`},
		{ast.Object{
			ast.Field("xs", ast.Null),
		}, `{"xs":null}`},
		{ast.Object{
			ast.Field("name", ast.String("Dennis")),
			ast.Field("age", ast.Int(37)),
			ast.Field("isOld", ast.Bool(false)),
		}, `{"name":"Dennis","age":37,"isOld":false}`},

		{ast.Object{
			ast.Field("values", ast.Array{
				ast.Int(5),
				ast.Int(10),
				ast.Bool(true),
			}),
			ast.Field("page", ast.Object{
				ast.Field("token", ast.String("xyz-pdq-zvm")),
				ast.Field("count", ast.Int(100)),
			}),
		}, `{"values":[5,10,true],"page":{"token":"xyz-pdq-zvm","count":100}}`},
	}
	for _, test := range tests {
		got := test.input.JSON()
		if got != test.want {
			t.Errorf("Input: %+v\nGot:  %s\nWant: %s", test.input, got, test.want)
		}
	}
}

func TestKinds(t *testing.T) {
	tests := []struct {
		input ast.Value
		want  jdom.Kind
	}{
		{nil, jdom.NullKind},
		{ast.Null, jdom.NullKind},
		{ast.Bool(false), jdom.FalseKind},
		{ast.Bool(true), jdom.TrueKind},
		{ast.Object{}, jdom.ObjectKind},
		{ast.Array{}, jdom.ArrayKind},
		{ast.String("x"), jdom.StringKind},
		{ast.Int(1), jdom.NumberKind},
		{ast.Float(1), jdom.NumberKind},
	}
	for _, test := range tests {
		if got := ast.KindOf(test.input); got != test.want {
			t.Errorf("KindOf(%v): got %v, want %v", test.input, got, test.want)
		}
	}
}

func TestToValue(t *testing.T) {
	tests := []struct {
		input any
		want  string
	}{
		{nil, "null"},
		{true, "true"},
		{"s", `"s"`},
		{int8(-3), "-3"},
		{uint16(9), "9"},
		{uint64(1 << 63), "9223372036854775808"},
		{float32(0.5), "0.5"},
		{2.0, "2.0"},
		{jdom.Int(12), "12"},
		{ast.String("v"), `"v"`},
		{[]any{1, "a", nil}, `[1,"a",null]`},
		{[]string{"p", "q"}, `["p","q"]`},
		{map[string]any{"z": 1, "a": []any{true}}, `{"a":[true],"z":1}`},
	}
	for _, test := range tests {
		if got := ast.ToValue(test.input).JSON(); got != test.want {
			t.Errorf("ToValue(%#v): got %s, want %s", test.input, got, test.want)
		}
	}

	mtest.MustPanic(t, func() { ast.ToValue([]bool{true}) })
	mtest.MustPanic(t, func() { ast.ToValue(func() {}) })
	mtest.MustPanic(t, func() { ast.ToValue(make(chan struct{})) })
}

func TestObject(t *testing.T) {
	var obj ast.Object
	obj.Append("b", 1)
	obj.Append("a", "x")
	obj.Append("b", true)

	if got := obj.Len(); got != 3 {
		t.Errorf("Len: got %d, want 3", got)
	}
	if m := obj.Find("b"); m == nil || !ast.Equal(m.Value, ast.Int(1)) {
		t.Errorf("Find(b): got %v, want the first member", m)
	}
	if m := obj.Find("c"); m != nil {
		t.Errorf("Find(c): got %v, want nil", m)
	}
	if ms := obj.FindAll("b"); len(ms) != 2 || !ast.Equal(ms[1].Value, ast.Bool(true)) {
		t.Errorf("FindAll(b): got %v, want 2 members", ms)
	}

	obj.Sort()
	if got, want := obj.JSON(), `{"a":"x","b":1,"b":true}`; got != want {
		t.Errorf("After Sort: got %s, want %s", got, want)
	}
}
