// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package cistring

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"
	"text/template"
)

var (
	empty = New("")
	alice = New("Alice")
	lower = New("alice")
	upper = New("ALICE")
	camel = New("Alice")
	reimu = New("Reimu")
)

func TestNew(t *testing.T) {
	tests := []struct {
		s    String
		want string
	}{
		{String{}, ""},
		{empty, ""},
		{alice, "Alice"},
		{lower, "alice"},
		{upper, "ALICE"},
		{New("  Alice \t"), "  Alice \t"},
		{New("ΑΒΔ"), "ΑΒΔ"},
		{New("a\xffb"), "a\xffb"},
	}
	for _, test := range tests {
		if got := test.s.Value(); got != test.want {
			t.Errorf("Value() = %q; want: %q", got, test.want)
		}
		if got := test.s.String(); got != test.want {
			t.Errorf("String() = %q; want: %q", got, test.want)
		}
		if got := test.s.Len(); got != len(test.want) {
			t.Errorf("Len() = %d; want: %d", got, len(test.want))
		}
	}
	if !(String{}).IsEmpty() || alice.IsEmpty() {
		t.Error("IsEmpty: invalid result")
	}
}

func TestZeroValue(t *testing.T) {
	var zero String
	if !zero.Equal(empty) {
		t.Errorf("%#v.Equal(%#v) = false", zero, empty)
	}
	if zero.Hash() != empty.Hash() {
		t.Errorf("%#v.Hash() != %#v.Hash()", zero, empty)
	}
	if Compare(zero, empty) != 0 {
		t.Errorf("Compare(%#v, %#v) != 0", zero, empty)
	}
}

func TestEqual(t *testing.T) {
	// X == X
	if !alice.Equal(alice) || alice.NotEqual(alice) {
		t.Error("alice != alice")
	}
	if alice.Hash() != alice.Hash() {
		t.Error("alice.Hash() != alice.Hash()")
	}

	// X == Y
	if !alice.Equal(camel) {
		t.Error("alice != camel")
	}
	if !alice.NotEqual(reimu) {
		t.Error("alice == reimu")
	}
	if alice.Hash() != camel.Hash() {
		t.Error("alice.Hash() != camel.Hash()")
	}

	// X == Y, case insensitive
	for _, x := range []String{alice, lower, upper} {
		for _, y := range []String{alice, lower, upper} {
			if !x.Equal(y) {
				t.Errorf("%q.Equal(%q) = false", x, y)
			}
			if x.Hash() != y.Hash() {
				t.Errorf("%q.Hash() != %q.Hash()", x, y)
			}
		}
	}
	if lower.Value() == upper.Value() {
		t.Errorf("lower.Value() == upper.Value(): %q", lower.Value())
	}

	// X == copy of X
	reffer := alice
	if !reffer.Equal(alice) || reffer.Hash() != alice.Hash() {
		t.Error("copy of alice != alice")
	}
}

func TestEqualAny(t *testing.T) {
	p := &alice
	var nilp *String
	var nilnp *NullString
	np := Some("aLiCe")
	tests := []struct {
		v    any
		want bool
	}{
		{&np, true},
		{nilnp, false},
		{&NullString{}, false},
		{alice, true},
		{upper, true},
		{p, true},
		{Some("ALICE"), true},
		{reimu, false},
		{nil, false},
		{nilp, false},
		{NullString{}, false},
		// Never equal to another type, but its value may be compared.
		{"Alice", false},
		{"alice", false},
		{[]byte("Alice"), false},
		{fmt.Stringer(alice), true},
	}
	for _, test := range tests {
		if got := alice.EqualAny(test.v); got != test.want {
			t.Errorf("alice.EqualAny(%#v) = %t; want: %t", test.v, got, test.want)
		}
	}
	if alice.Value() != "Alice" {
		t.Errorf("alice.Value() = %q; want: %q", alice.Value(), "Alice")
	}
}

func TestEqualString(t *testing.T) {
	tests := []struct {
		s    String
		str  string
		want bool
	}{
		{alice, "Alice", true},
		{alice, "aLiCe", true},
		{alice, "Alic", false},
		{empty, "", true},
		{New("ΑΒΔ"), "αβδ", true},
		{New("\u212A"), "k", true}, // Kelvin sign
	}
	for _, test := range tests {
		if got := test.s.EqualString(test.str); got != test.want {
			t.Errorf("%q.EqualString(%q) = %t; want: %t", test.s, test.str, got, test.want)
		}
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b String
		want int
	}{
		{alice, alice, 0},
		{alice, reimu, -1},
		{reimu, alice, 1},
		{alice, upper, 0},
		{lower, upper, 0},
		{empty, alice, -1},
		{alice, empty, 1},
		{String{}, empty, 0},
		{New("a"), New("AB"), -1},
		{New("_"), New("A"), -1},
	}
	for _, test := range tests {
		if got := Compare(test.a, test.b); got != test.want {
			t.Errorf("Compare(%q, %q) = %d; want: %d", test.a, test.b, got, test.want)
		}
		if got := test.a.Compare(test.b); got != test.want {
			t.Errorf("%q.Compare(%q) = %d; want: %d", test.a, test.b, got, test.want)
		}
	}
}

func TestCompareOperators(t *testing.T) {
	tests := []struct {
		a, b                     String
		lt, le, gt, ge, eq, neq bool
	}{
		// X op X
		{alice, alice, false, true, false, true, true, false},
		// X op Y
		{alice, reimu, true, true, false, false, false, true},
		{reimu, alice, false, false, true, true, false, true},
		// X op Y, case insensitive
		{alice, upper, false, true, false, true, true, false},
		{alice, lower, false, true, false, true, true, false},
		{upper, lower, false, true, false, true, true, false},
	}
	for _, test := range tests {
		a, b := test.a, test.b
		if got := a.Less(b); got != test.lt {
			t.Errorf("%q < %q = %t; want: %t", a, b, got, test.lt)
		}
		if got := a.LessEqual(b); got != test.le {
			t.Errorf("%q <= %q = %t; want: %t", a, b, got, test.le)
		}
		if got := a.Greater(b); got != test.gt {
			t.Errorf("%q > %q = %t; want: %t", a, b, got, test.gt)
		}
		if got := a.GreaterEqual(b); got != test.ge {
			t.Errorf("%q >= %q = %t; want: %t", a, b, got, test.ge)
		}
		if got := a.Equal(b); got != test.eq {
			t.Errorf("%q == %q = %t; want: %t", a, b, got, test.eq)
		}
		if got := a.NotEqual(b); got != test.neq {
			t.Errorf("%q != %q = %t; want: %t", a, b, got, test.neq)
		}
	}
}

func TestCompareAny(t *testing.T) {
	var nilp *String
	var nilnp *NullString
	np := Some("Reimu")
	tests := []struct {
		v    any
		want int
	}{
		{&np, -1},
		{nilnp, 1},
		{&NullString{}, 1},
		{alice, 0},
		{reimu, -1},
		{empty, 1},
		{&upper, 0},
		{Some("reimu"), -1},
		// Compare to null
		{nil, 1},
		{nilp, 1},
		{NullString{}, 1},
	}
	for _, test := range tests {
		got, err := alice.CompareAny(test.v)
		if err != nil {
			t.Errorf("alice.CompareAny(%#v): unexpected error: %v", test.v, err)
			continue
		}
		if got != test.want {
			t.Errorf("alice.CompareAny(%#v) = %d; want: %d", test.v, got, test.want)
		}
	}
}

// Comparing with a string is not allowed: String is strongly typed, but its
// value may be compared to a string.
func TestCompareAnyTypeMismatch(t *testing.T) {
	for _, v := range []any{"Yukari", "Alice", []byte("Alice"), 1, struct{}{}, NewSet()} {
		_, err := alice.CompareAny(v)
		if err == nil {
			t.Errorf("alice.CompareAny(%#v): expected error", v)
			continue
		}
		if !errors.Is(err, ErrTypeMismatch) {
			t.Errorf("alice.CompareAny(%#v): error %v does not match ErrTypeMismatch", v, err)
		}
		var te *TypeMismatchError
		if !errors.As(err, &te) {
			t.Fatalf("alice.CompareAny(%#v): error type %T; want: %T", v, err, te)
		}
		if want := fmt.Sprintf("%T", v); te.Got != want {
			t.Errorf("TypeMismatchError.Got = %q; want: %q", te.Got, want)
		}
	}
	if strings.Compare(alice.Value(), "Yukari") != -1 {
		t.Error("comparing values must be allowed")
	}
}

// Compare must be a total order consistent with Equal.
func TestCompareOrdering(t *testing.T) {
	values := FromStrings([]string{
		"", "a", "A", "ab", "AB", "Alice", "alice", "ALICE", "Reimu", "reimu",
		"_", "Z", "z", "αβδ", "ΑΒΔ", "\u212A", "k", "ſ", "S", "İ", "i", "ı",
		"a\xff", "a\uFFFD",
	})
	for _, a := range values {
		if Compare(a, a) != 0 {
			t.Errorf("Compare(%q, %q) != 0", a, a)
		}
		for _, b := range values {
			ab := Compare(a, b)
			if ba := Compare(b, a); ab != -ba {
				t.Errorf("Compare(%q, %q) = %d; Compare(%q, %q) = %d", a, b, ab, b, a, ba)
			}
			if (ab == 0) != a.Equal(b) {
				t.Errorf("Compare(%q, %q) = %d; Equal = %t", a, b, ab, a.Equal(b))
			}
			if a.Equal(b) && a.Hash() != b.Hash() {
				t.Errorf("%q == %q but hashes differ", a, b)
			}
			for _, c := range values {
				bc := Compare(b, c)
				if ab <= 0 && bc <= 0 && Compare(a, c) > 0 {
					t.Errorf("Compare is not transitive: %q <= %q <= %q", a, b, c)
				}
			}
		}
	}
}

func TestFormat(t *testing.T) {
	if got := fmt.Sprintf("Name is %s", alice); got != "Name is Alice" {
		t.Errorf("Sprintf(%%s) = %q; want: %q", got, "Name is Alice")
	}
	if got := fmt.Sprintf("Name is %v", upper); got != "Name is ALICE" {
		t.Errorf("Sprintf(%%v) = %q; want: %q", got, "Name is ALICE")
	}
	if got := fmt.Sprint(alice); got != "Alice" {
		t.Errorf("Sprint = %q; want: %q", got, "Alice")
	}
	if got := fmt.Sprintf("%#v", alice); got != `cistring.New("Alice")` {
		t.Errorf("Sprintf(%%#v) = %q; want: %q", got, `cistring.New("Alice")`)
	}

	tmpl := template.Must(template.New("").Parse("Name is {{.}}"))
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, alice); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "Name is Alice" {
		t.Errorf("template = %q; want: %q", got, "Name is Alice")
	}
}

func TestConvertStrings(t *testing.T) {
	in := []string{"Reimu", "", "Alice"}
	a := FromStrings(in)
	for i := range in {
		if a[i].Value() != in[i] {
			t.Errorf("FromStrings[%d] = %q; want: %q", i, a[i], in[i])
		}
	}
	out := ToStrings(a)
	if strings.Join(out, ",") != strings.Join(in, ",") {
		t.Errorf("ToStrings = %q; want: %q", out, in)
	}
}

func BenchmarkNew(b *testing.B) {
	s := strings.Repeat("Alice", 8)
	for i := 0; i < b.N; i++ {
		_ = New(s)
	}
}

func BenchmarkCompare(b *testing.B) {
	s1 := New(strings.Repeat("Alice", 8))
	s2 := New(strings.Repeat("ALICE", 8))
	for i := 0; i < b.N; i++ {
		Compare(s1, s2)
	}
}

func BenchmarkHash(b *testing.B) {
	s := New(strings.Repeat("Alice", 8))
	for i := 0; i < b.N; i++ {
		s.Hash()
	}
}
