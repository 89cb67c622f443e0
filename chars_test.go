package combi

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestAnyChar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "combi")
	defer teardown()
	//
	r := AnyChar().Run(strings.NewReader("hello"))
	if !r.OK() || r.Value() != 'h' {
		t.Errorf("Expected Ok('h'), got %v", r)
	}
	r = AnyChar().Run(strings.NewReader(""))
	if r.OK() {
		t.Errorf("Expected failure at end of input, got %v", r)
	}
	if msg := r.Err().Message(); msg != "unexpected end of input" {
		t.Errorf("Expected end-of-input message, got %q", msg)
	}
}

func TestChar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "combi")
	defer teardown()
	//
	input := strings.NewReader("hello")
	r := Char('h').Run(input)
	if !r.OK() || r.Value() != 'h' {
		t.Errorf("Expected Ok('h'), got %v", r)
	}
	if rest := remainder(input); rest != "ello" {
		t.Errorf("Expected remainder \"ello\", got %q", rest)
	}
	//
	input = strings.NewReader("hello")
	r = Char('x').Run(input)
	if r.OK() {
		t.Errorf("Expected failure, got %v", r)
	}
	if msg := r.Err().Message(); msg != `expected 'x', found 'h'` {
		t.Errorf("Unexpected failure message %q", msg)
	}
	if rest := remainder(input); rest != "hello" {
		t.Errorf("Expected rejected char to stay unconsumed, remainder is %q", rest)
	}
	//
	r = Char('x').Run(strings.NewReader(""))
	if msg := r.Err().Message(); msg != `expected 'x': unexpected end of input` {
		t.Errorf("Unexpected failure message %q", msg)
	}
}

func TestNotChar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "combi")
	defer teardown()
	//
	r := NotChar('x').Run(strings.NewReader("hello"))
	if !r.OK() || r.Value() != 'h' {
		t.Errorf("Expected Ok('h'), got %v", r)
	}
	//
	input := strings.NewReader("hello")
	r = NotChar('h').Run(input)
	if r.OK() {
		t.Errorf("Expected failure, got %v", r)
	}
	if msg := r.Err().Message(); msg != `unexpected 'h'` {
		t.Errorf("Unexpected failure message %q", msg)
	}
	if rest := remainder(input); rest != "hello" {
		t.Errorf("Expected rejected char to stay unconsumed, remainder is %q", rest)
	}
}

// The classic end-to-end scenario: read 'h' off "hello", then reject 'e'
// against a character class.
func TestCharThenOneOf(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "combi")
	defer teardown()
	//
	input := strings.NewReader("hello")
	r := Char('h').Run(input)
	if !r.OK() || r.Value() != 'h' {
		t.Errorf("Expected Ok('h'), got %v", r)
	}
	r = OneOf("xyz").Run(input)
	if r.OK() {
		t.Errorf("Expected failure, got %v", r)
	}
	if msg := r.Err().Message(); msg != `'e' is not one of "xyz"` {
		t.Errorf("Unexpected failure message %q", msg)
	}
	if rest := remainder(input); rest != "ello" {
		t.Errorf("Expected remainder \"ello\", got %q", rest)
	}
}

func TestOneOf(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "combi")
	defer teardown()
	//
	digits := OneOf("0123456789")
	tests := []struct {
		input string
		ok    bool
		val   rune
	}{
		{"7x", true, '7'},
		{"0", true, '0'},
		{"x7", false, 0},
		{"", false, 0},
	}
	for _, test := range tests {
		r := digits.Run(strings.NewReader(test.input))
		if r.OK() != test.ok {
			t.Errorf("Input %q: expected ok=%v, got %v", test.input, test.ok, r)
		}
		if test.ok && r.Value() != test.val {
			t.Errorf("Input %q: expected %q, got %v", test.input, test.val, r)
		}
	}
}

func TestManyNeverFails(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "combi")
	defer teardown()
	//
	zs := Many(Char('z'))
	tests := []struct {
		input string
		val   string
		rest  string
	}{
		{"", "", ""},
		{"abc", "", "abc"},
		{"zzzab", "zzz", "ab"},
		{"zzz", "zzz", ""},
	}
	for _, test := range tests {
		input := strings.NewReader(test.input)
		r := zs.Run(input)
		if !r.OK() {
			t.Errorf("Input %q: many must not fail, got %v", test.input, r)
			continue
		}
		if r.Value() != test.val {
			t.Errorf("Input %q: expected %q, got %q", test.input, test.val, r.Value())
		}
		if rest := remainder(input); rest != test.rest {
			t.Errorf("Input %q: expected remainder %q, got %q", test.input, test.rest, rest)
		}
	}
}

func TestMany1(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "combi")
	defer teardown()
	//
	as := Many1(Char('a'))
	input := strings.NewReader("aab")
	r := as.Run(input)
	if !r.OK() || r.Value() != "aa" {
		t.Errorf("Expected Ok(\"aa\"), got %v", r)
	}
	if rest := remainder(input); rest != "b" {
		t.Errorf("Expected cursor at 'b', remainder is %q", rest)
	}
	//
	r = as.Run(strings.NewReader("b"))
	if r.OK() {
		t.Errorf("Expected failure on input \"b\", got %v", r)
	}
	if msg := r.Err().Message(); msg != `expected 'a', found 'b'` {
		t.Errorf("Expected the first attempt's message, got %q", msg)
	}
}
