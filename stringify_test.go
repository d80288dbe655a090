package csstree

import (
	"testing"

	"github.com/boxesandglue/csstree/scanner"
)

func TestStringifyExcludeComments(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"/* a */ b{c:d}", " b{c:d}"},
		{"b{c:d/* x */}", "b{c:d}"},
		{"a { b: c; /* comment */ d: e }", "a { b: c;  d: e }"},
		{"@x f(/*c*/1);", "@x f(1);"},
	}
	opts := &StringifyOptions{ExcludeComments: true}
	for _, tt := range tests {
		if got := Stringify(Parse(tt.input), opts); got != tt.want {
			t.Errorf("Stringify(Parse(%q)) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestStringifyNode(t *testing.T) {
	nodes := Parse("@media print { a { b: c } }")
	if got, want := StringifyNode(nodes[0], nil), "@media print { a { b: c } }"; got != want {
		t.Errorf("StringifyNode = %q, want %q", got, want)
	}
}

func TestBuiltNodesSerialization(t *testing.T) {
	nodes := Parse(".a{color:green}")
	rule, ok := nodes[0].(*StyleRule)
	if !ok {
		t.Fatalf("nodes[0] = %T, want *StyleRule", nodes[0])
	}
	rule.Children = []Node{&Property{Name: "color", Value: "pink"}}
	if got, want := Stringify(nodes, nil), ".a{color: pink}"; got != want {
		t.Errorf("Stringify = %q, want %q", got, want)
	}

	sr := &StyleRule{
		Selector: &Selector{Value: ".b"},
		Children: []Node{&Property{Name: "margin", Value: "0", Important: true}},
	}
	if got, want := StringifyNode(sr, nil), ".b{margin: 0 !important}"; got != want {
		t.Errorf("StringifyNode(StyleRule) = %q, want %q", got, want)
	}

	d := &Declaration{Name: "color", Value: []Node{
		&Tok{&scanner.Token{Type: scanner.Ident, Value: "red", Raw: "red"}},
	}}
	if got, want := StringifyNode(d, nil), "color: red"; got != want {
		t.Errorf("StringifyNode(Declaration) = %q, want %q", got, want)
	}

	f := &Function{Name: "calc", Value: []Node{
		&Tok{&scanner.Token{Type: scanner.Number, Value: "1", Raw: "1"}},
	}}
	if got, want := StringifyNode(f, nil), "calc(1)"; got != want {
		t.Errorf("StringifyNode(Function) = %q, want %q", got, want)
	}
}

func TestStringifyInline(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"width : 10px ;", "width: 10px;"},
		{"a:b;c:d", "a:b;c:d"},
		{"a: b /* k */; c: d", "a: b /* k */; c: d"},
		{"  margin :  1.5em   0  ", "margin: 1.5em 0"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := StringifyInline(ParseDeclarationList(tt.input)); got != tt.want {
			t.Errorf("StringifyInline(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
