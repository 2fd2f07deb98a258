// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ast_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/creachadair/jdom"
	"github.com/creachadair/jdom/ast"
	"github.com/google/go-cmp/cmp"
)

const episodeJSON = `{
  "episodes": [
    {"episode": 1, "summary": "A \"pilot\" episode", "hasDetail": false},
    {"episode": 2, "summary": "Café society", "hasDetail": true, "rating": 8.5},
    {"episode": 3, "summary": null, "hasDetail": false, "tags": []}
  ],
  "count": 3
}`

func TestParse(t *testing.T) {
	v, err := ast.Parse(jdom.NewStringStream(episodeJSON), nil)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	root, ok := v.(ast.Object)
	if !ok {
		t.Fatalf("Root is %T, not object", v)
	}
	mem := root.Find("episodes")
	if mem == nil {
		t.Fatal(`Key "episodes" not found`)
	}
	lst, ok := mem.Value.(ast.Array)
	if !ok {
		t.Fatalf("Member value is %T, not array", mem.Value)
	} else if len(lst) != 3 {
		t.Fatalf("Array has %d elements, want 3", len(lst))
	}
	obj, ok := lst[1].(ast.Object)
	if !ok {
		t.Fatalf("Array entry is %T, not object", lst[1])
	}
	check(t, obj, "summary", func(s ast.String) {
		if s != "Café society" {
			t.Errorf("String field: got %q, want %q", s, "Café society")
		}
	})
	check(t, obj, "episode", func(v ast.Number) {
		if !v.IsInt() {
			t.Errorf("Number %s should be recognized as integer", v.JSON())
		}
	})
	check(t, obj, "rating", func(v ast.Number) {
		if v.IsInt() || v.Float64() != 8.5 {
			t.Errorf("Number %s should be the double 8.5", v.JSON())
		}
	})
	check(t, obj, "hasDetail", func(v ast.Bool) {
		if !v {
			t.Error("Bool field should be true")
		}
	})
	last := lst[2].(ast.Object)
	check(t, last, "summary", func(v ast.Value) {
		if ast.KindOf(v) != jdom.NullKind {
			t.Errorf("Field value is %v, want null", v)
		}
	})
	check(t, last, "tags", func(v ast.Array) {
		if v == nil || len(v) != 0 {
			t.Errorf("Field value is %#v, want an empty array", v)
		}
	})
}

func check[T any](t *testing.T, obj ast.Object, key string, f func(T)) {
	t.Helper()
	if v := obj.Find(key); v == nil {
		t.Fatalf("Key %q not found", key)
	} else if tv, ok := v.Value.(T); !ok {
		var zero T
		t.Fatalf("Key %q value is %T, not %T", key, v.Value, zero)
	} else if f != nil {
		f(tv)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input string
		code  jdom.ErrorCode
	}{
		{"", jdom.DocumentEmpty},
		{`{"a":[1,2}`, jdom.ArrayMissCommaOrSquareBracket},
		{`{"a":1} 2`, jdom.DocumentRootNotSingular},
		{`[1,2,"x`, jdom.StringMissQuotationMark},
	}
	for _, test := range tests {
		v, err := ast.ParseString(test.input, nil)
		var perr *jdom.ParseError
		if !errors.As(err, &perr) || perr.Code != test.code {
			t.Errorf("Parse %#q: got error %v, want %v", test.input, err, test.code)
		}
		if v != nil {
			t.Errorf("Parse %#q: got partial value %s, want nil", test.input, v.JSON())
		}
	}
}

func TestParseDuplicateKeys(t *testing.T) {
	v, err := ast.ParseString(`{"k": 1, "j": 0, "k": 2}`, nil)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	obj := v.(ast.Object)
	var got []string
	for _, m := range obj.FindAll("k") {
		got = append(got, m.Value.JSON())
	}
	if diff := cmp.Diff([]string{"1", "2"}, got); diff != "" {
		t.Errorf("FindAll: (-want, +got)\n%s", diff)
	}
	if got, want := v.JSON(), `{"k":1,"j":0,"k":2}`; got != want {
		t.Errorf("JSON: got %s, want %s", got, want)
	}
}

func TestParseAll(t *testing.T) {
	const input = `{"love": true} [] "ok" 15`
	vs, err := ast.ParseAll(strings.NewReader(input), nil)
	if err != nil {
		t.Fatalf("ParseAll failed: %v", err)
	}
	var got []string
	for _, v := range vs {
		got = append(got, v.JSON())
	}
	if diff := cmp.Diff([]string{`{"love":true}`, `[]`, `"ok"`, `15`}, got); diff != "" {
		t.Errorf("ParseAll: (-want, +got)\n%s", diff)
	}

	// On error, the complete values are returned.
	vs, err = ast.ParseAll(strings.NewReader(`1 2 [`), nil)
	if err == nil {
		t.Error("ParseAll: got nil, want error")
	}
	if len(vs) != 2 {
		t.Errorf("ParseAll: got %d values, want 2", len(vs))
	}

	p := jdom.NewParser(jdom.NewStringStream("  "), nil)
	if v, err := ast.ParseOne(p); err != io.EOF {
		t.Errorf("ParseOne: got %v, %v; want %v", v, err, io.EOF)
	}
}

func TestParseOptions(t *testing.T) {
	opts := &jdom.Options{
		AllowComments:       true,
		AllowTrailingCommas: true,
		AllowNaNAndInf:      true,
	}
	v, err := ast.ParseString(`{
  // settings
  "limit": Infinity,
  "ratio": NaN, /* unknown */
}`, opts)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got, want := v.JSON(), `{"limit":Infinity,"ratio":NaN}`; got != want {
		t.Errorf("JSON: got %s, want %s", got, want)
	}
}
