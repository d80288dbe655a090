package scanner

import (
	"strings"
	"testing"
)

func TestTokenTypes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		types []TokenType
	}{
		{
			name:  "simple rule",
			input: "a{b:c}",
			types: []TokenType{Ident, LBrace, Ident, Colon, Ident, RBrace},
		},
		{
			name:  "at rule",
			input: "@media screen;",
			types: []TokenType{AtKeyword, S, Ident, Semicolon},
		},
		{
			name:  "numbers",
			input: "1 1.5 -2em 50% +.5 3e2",
			types: []TokenType{Number, S, Number, S, Dimension, S, Percentage, S, Number, S, Number},
		},
		{
			name:  "hash and class",
			input: "#fff .cls",
			types: []TokenType{Hash, S, Delim, Ident},
		},
		{
			name:  "strings",
			input: `"a" 'b'`,
			types: []TokenType{String, S, String},
		},
		{
			name:  "url and function",
			input: "url(x.png) url(\"y.png\") calc(1)",
			types: []TokenType{URI, S, Function, String, RParen, S, Function, Number, RParen},
		},
		{
			name:  "comment",
			input: "/* c */x",
			types: []TokenType{Comment, Ident},
		},
		{
			name:  "cdo cdc",
			input: "<!-- -->",
			types: []TokenType{CDO, S, CDC},
		},
		{
			name:  "match operators",
			input: "~= |= ^= $= *= ||",
			types: []TokenType{Includes, S, DashMatch, S, PrefixMatch, S, SuffixMatch, S, SubstringMatch, S, Column},
		},
		{
			name:  "unicode range",
			input: "u+0-7F U+4??",
			types: []TokenType{UnicodeRange, S, UnicodeRange},
		},
		{
			name:  "custom property",
			input: "--x:y",
			types: []TokenType{Ident, Colon, Ident},
		},
		{
			name:  "important",
			input: "!important",
			types: []TokenType{Delim, Ident},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks := Tokenize(tt.input)
			if got, want := len(toks), len(tt.types); got != want {
				t.Fatalf("len(toks) = %d, want %d (%v)", got, want, toks)
			}
			for i, typ := range tt.types {
				if toks[i].Type != typ {
					t.Errorf("toks[%d].Type = %s, want %s", i, toks[i].Type, typ)
				}
			}
		})
	}
}

func TestTokenValues(t *testing.T) {
	tests := []struct {
		input string
		typ   TokenType
		value string
	}{
		{`"hello \"world\""`, String, `hello "world"`},
		{"@media", AtKeyword, "media"},
		{"#head", Hash, "head"},
		{"url( x.png )", URI, "x.png"},
		{"1.5em", Dimension, "1.5em"},
		{`\26 B`, Ident, "&B"},
		{"rgb(", Function, "rgb"},
	}
	for _, tt := range tests {
		toks := Tokenize(tt.input)
		if len(toks) == 0 {
			t.Fatalf("Tokenize(%q) returned no tokens", tt.input)
		}
		if toks[0].Type != tt.typ {
			t.Errorf("Tokenize(%q)[0].Type = %s, want %s", tt.input, toks[0].Type, tt.typ)
		}
		if toks[0].Value != tt.value {
			t.Errorf("Tokenize(%q)[0].Value = %q, want %q", tt.input, toks[0].Value, tt.value)
		}
	}
}

func TestRawRoundTrip(t *testing.T) {
	inputs := []string{
		"a{b:c}",
		"/* c */ .a #b , td[colspan=\"2\"] { margin: 1.5em 0 !important; background: url(img/x.png) no-repeat; width: calc(100% - 10px); }",
		"@media screen and (max-width: 600px) {\n\t.a { color: #fff }\n}",
		"@import \"other.css\";",
		"li              { display: list-item; padding-left: 0; }",
		"a::before { content: \"\\2192\" }",
		"<!-- a{b:c} -->",
		"u+26-7F { }",
		"x { y: \"unterminated",
	}
	for _, input := range inputs {
		var b strings.Builder
		for _, tok := range Tokenize(input) {
			b.WriteString(tok.Raw)
		}
		if got := b.String(); got != input {
			t.Errorf("raw concat = %q, want %q", got, input)
		}
	}
}

func TestEOFIdempotent(t *testing.T) {
	s := New("a")
	if tok := s.Next(); tok.Type != Ident {
		t.Fatalf("first token = %s, want IDENT", tok.Type)
	}
	for i := 0; i < 3; i++ {
		if tok := s.Next(); tok.Type != EOF {
			t.Fatalf("token after end = %s, want EOF", tok.Type)
		}
	}
}

func TestBadString(t *testing.T) {
	toks := Tokenize("a: \"oops\nb")
	var types []TokenType
	for _, tok := range toks {
		types = append(types, tok.Type)
	}
	want := []TokenType{Ident, Colon, S, BadString, S, Ident}
	if len(types) != len(want) {
		t.Fatalf("types = %v, want %v", types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Fatalf("types = %v, want %v", types, want)
		}
	}
}

func TestPositions(t *testing.T) {
	toks := Tokenize("a\n bc")
	// a, S("\n "), bc
	if got, want := toks[2].Line, 2; got != want {
		t.Errorf("toks[2].Line = %d, want %d", got, want)
	}
	if got, want := toks[2].Col, 2; got != want {
		t.Errorf("toks[2].Col = %d, want %d", got, want)
	}
}
