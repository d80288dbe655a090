// Package scanner tokenizes CSS source text according to the CSS Syntax
// Module Level 3 tokenization rules. Every token carries both the decoded
// value and the exact source substring it came from, so a token sequence
// can reproduce its input byte for byte.
package scanner

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// TokenType classifies a token.
type TokenType int

// The token types emitted by the scanner.
const (
	Error TokenType = iota
	EOF
	S
	Comment
	CDO
	CDC
	Ident
	AtKeyword
	String
	BadString
	Hash
	Number
	Percentage
	Dimension
	URI
	BadURI
	UnicodeRange
	Function
	Includes
	DashMatch
	PrefixMatch
	SuffixMatch
	SubstringMatch
	Column
	Colon
	Semicolon
	Comma
	LBrace
	RBrace
	LBrack
	RBrack
	LParen
	RParen
	Delim
)

var typeNames = map[TokenType]string{
	Error:          "ERROR",
	EOF:            "EOF",
	S:              "S",
	Comment:        "COMMENT",
	CDO:            "CDO",
	CDC:            "CDC",
	Ident:          "IDENT",
	AtKeyword:      "ATKEYWORD",
	String:         "STRING",
	BadString:      "BADSTRING",
	Hash:           "HASH",
	Number:         "NUMBER",
	Percentage:     "PERCENTAGE",
	Dimension:      "DIMENSION",
	URI:            "URI",
	BadURI:         "BADURI",
	UnicodeRange:   "UNICODERANGE",
	Function:       "FUNCTION",
	Includes:       "INCLUDES",
	DashMatch:      "DASHMATCH",
	PrefixMatch:    "PREFIXMATCH",
	SuffixMatch:    "SUFFIXMATCH",
	SubstringMatch: "SUBSTRINGMATCH",
	Column:         "COLUMN",
	Colon:          "COLON",
	Semicolon:      "SEMICOLON",
	Comma:          "COMMA",
	LBrace:         "LBRACE",
	RBrace:         "RBRACE",
	LBrack:         "LBRACK",
	RBrack:         "RBRACK",
	LParen:         "LPAREN",
	RParen:         "RPAREN",
	Delim:          "DELIM",
}

// String returns the name of the token type.
func (t TokenType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// Token is a single lexical unit. Value holds the decoded payload (an
// identifier without escapes, string contents without quotes, an
// at-keyword or hash without its sigil, url contents without the url()
// wrapper). Raw holds the exact source substring the token was scanned
// from.
type Token struct {
	Type  TokenType
	Value string
	Raw   string
	Line  int
	Col   int
}

// String returns the raw source text of the token.
func (t *Token) String() string {
	return t.Raw
}

// Scanner reads a CSS text as a stream of tokens.
type Scanner struct {
	input string
	pos   int
	line  int
	col   int
}

// New returns a Scanner for the given CSS text.
func New(input string) *Scanner {
	return &Scanner{input: input, line: 1, col: 1}
}

// Tokenize scans the whole input and returns all tokens up to EOF.
func Tokenize(input string) []*Token {
	s := New(input)
	var toks []*Token
	for {
		t := s.Next()
		if t.Type == EOF {
			return toks
		}
		toks = append(toks, t)
	}
}

const eof rune = -1

// Next returns the next token. Once the input is exhausted it returns an
// EOF token on every call.
func (s *Scanner) Next() *Token {
	if s.pos >= len(s.input) {
		return &Token{Type: EOF, Line: s.line, Col: s.col}
	}
	start, line, col := s.pos, s.line, s.col
	typ, value, decoded := s.scanToken()
	raw := s.input[start:s.pos]
	if !decoded {
		value = raw
	}
	for _, ch := range raw {
		if ch == '\n' {
			s.line++
			s.col = 1
		} else {
			s.col++
		}
	}
	return &Token{Type: typ, Value: value, Raw: raw, Line: line, Col: col}
}

// scanToken consumes one token and reports its type and, when the third
// return is true, the decoded value. Otherwise the caller uses the raw
// source slice as the value.
func (s *Scanner) scanToken() (TokenType, string, bool) {
	ch := s.peek()
	switch {
	case isWhitespace(ch):
		s.read()
		for isWhitespace(s.peek()) {
			s.read()
		}
		return S, "", false
	case ch == '/':
		if s.peekAt(1) == '*' {
			return s.scanComment()
		}
		s.read()
		return Delim, "/", true
	case ch == '"' || ch == '\'':
		s.read()
		return s.scanString(ch)
	case ch == '#':
		s.read()
		if isName(s.peek()) || s.validEscape(s.pos) {
			return Hash, s.scanName(), true
		}
		return Delim, "#", true
	case ch == '@':
		if s.startsIdent(s.pos + 1) {
			s.read()
			return AtKeyword, s.scanName(), true
		}
		s.read()
		return Delim, "@", true
	case ch == '+':
		if isDigit(s.peekAt(1)) || (s.peekAt(1) == '.' && isDigit(s.peekAt(2))) {
			return s.scanNumeric()
		}
		s.read()
		return Delim, "+", true
	case ch == '-':
		c1, c2 := s.peekAt(1), s.peekAt(2)
		if isDigit(c1) || (c1 == '.' && isDigit(c2)) {
			return s.scanNumeric()
		}
		if c1 == '-' && c2 == '>' {
			s.read()
			s.read()
			s.read()
			return CDC, "", false
		}
		if s.startsIdent(s.pos) {
			return s.scanIdentLike()
		}
		s.read()
		return Delim, "-", true
	case ch == '.':
		if isDigit(s.peekAt(1)) {
			return s.scanNumeric()
		}
		s.read()
		return Delim, ".", true
	case isDigit(ch):
		return s.scanNumeric()
	case ch == '<':
		if s.peekAt(1) == '!' && s.peekAt(2) == '-' && s.peekAt(3) == '-' {
			s.read()
			s.read()
			s.read()
			s.read()
			return CDO, "", false
		}
		s.read()
		return Delim, "<", true
	case ch == 'u' || ch == 'U':
		if s.peekAt(1) == '+' && (isHexDigit(s.peekAt(2)) || s.peekAt(2) == '?') {
			return s.scanUnicodeRange()
		}
		return s.scanIdentLike()
	case isNameStart(ch):
		return s.scanIdentLike()
	case ch == '\\':
		if s.validEscape(s.pos) {
			return s.scanIdentLike()
		}
		s.read()
		return Delim, "\\", true
	case ch == ':':
		s.read()
		return Colon, "", false
	case ch == ';':
		s.read()
		return Semicolon, "", false
	case ch == ',':
		s.read()
		return Comma, "", false
	case ch == '{':
		s.read()
		return LBrace, "", false
	case ch == '}':
		s.read()
		return RBrace, "", false
	case ch == '[':
		s.read()
		return LBrack, "", false
	case ch == ']':
		s.read()
		return RBrack, "", false
	case ch == '(':
		s.read()
		return LParen, "", false
	case ch == ')':
		s.read()
		return RParen, "", false
	case ch == '~':
		if s.peekAt(1) == '=' {
			s.read()
			s.read()
			return Includes, "", false
		}
		s.read()
		return Delim, "~", true
	case ch == '|':
		if s.peekAt(1) == '=' {
			s.read()
			s.read()
			return DashMatch, "", false
		}
		if s.peekAt(1) == '|' {
			s.read()
			s.read()
			return Column, "", false
		}
		s.read()
		return Delim, "|", true
	case ch == '^':
		if s.peekAt(1) == '=' {
			s.read()
			s.read()
			return PrefixMatch, "", false
		}
		s.read()
		return Delim, "^", true
	case ch == '$':
		if s.peekAt(1) == '=' {
			s.read()
			s.read()
			return SuffixMatch, "", false
		}
		s.read()
		return Delim, "$", true
	case ch == '*':
		if s.peekAt(1) == '=' {
			s.read()
			s.read()
			return SubstringMatch, "", false
		}
		s.read()
		return Delim, "*", true
	default:
		s.read()
		return Delim, string(ch), true
	}
}

// scanComment consumes "/*" through "*/" or EOF.
func (s *Scanner) scanComment() (TokenType, string, bool) {
	s.read() // '/'
	s.read() // '*'
	for {
		ch := s.read()
		if ch == eof {
			return Comment, "", false
		}
		if ch == '*' && s.peek() == '/' {
			s.read()
			return Comment, "", false
		}
	}
}

// scanString consumes a quoted string. The opening quote has been
// consumed. An EOF closes the string; an unescaped newline yields a
// bad-string token without consuming the newline.
func (s *Scanner) scanString(quote rune) (TokenType, string, bool) {
	var b strings.Builder
	for {
		p := s.pos
		ch := s.read()
		switch {
		case ch == eof || ch == quote:
			return String, b.String(), true
		case ch == '\n':
			s.pos = p
			return BadString, b.String(), true
		case ch == '\\':
			if s.peek() == eof {
				// escaped EOF, drop the backslash
			} else if s.peek() == '\n' {
				s.read()
			} else {
				b.WriteRune(s.scanEscape())
			}
		default:
			b.WriteRune(ch)
		}
	}
}

// scanNumeric consumes a number, percentage, or dimension token.
func (s *Scanner) scanNumeric() (TokenType, string, bool) {
	start := s.pos
	if c := s.peek(); c == '+' || c == '-' {
		s.read()
	}
	for isDigit(s.peek()) {
		s.read()
	}
	if s.peek() == '.' && isDigit(s.peekAt(1)) {
		s.read()
		for isDigit(s.peek()) {
			s.read()
		}
	}
	if c := s.peek(); c == 'e' || c == 'E' {
		c1 := s.peekAt(1)
		if c1 == '+' || c1 == '-' {
			if isDigit(s.peekAt(2)) {
				s.read()
				s.read()
				for isDigit(s.peek()) {
					s.read()
				}
			}
		} else if isDigit(c1) {
			s.read()
			for isDigit(s.peek()) {
				s.read()
			}
		}
	}
	repr := s.input[start:s.pos]
	if s.startsIdent(s.pos) {
		unit := s.scanName()
		return Dimension, repr + unit, true
	}
	if s.peek() == '%' {
		s.read()
		return Percentage, repr + "%", true
	}
	return Number, repr, true
}

// scanIdentLike consumes an identifier, function, or url token.
func (s *Scanner) scanIdentLike() (TokenType, string, bool) {
	name := s.scanName()
	if s.peek() != '(' {
		return Ident, name, true
	}
	if strings.EqualFold(name, "url") {
		// url( followed by optional whitespace and a quote stays a
		// function token; the string inside is scanned separately.
		p := s.pos + 1
		for {
			r, w := s.runeAt(p)
			if !isWhitespace(r) {
				break
			}
			p += w
		}
		if r, _ := s.runeAt(p); r != '"' && r != '\'' {
			s.read()
			return s.scanURL()
		}
	}
	s.read()
	return Function, name, true
}

// scanURL consumes the remainder of an unquoted url token. The "url("
// prefix has been consumed.
func (s *Scanner) scanURL() (TokenType, string, bool) {
	var b strings.Builder
	for isWhitespace(s.peek()) {
		s.read()
	}
	for {
		p := s.pos
		ch := s.read()
		switch {
		case ch == ')' || ch == eof:
			return URI, b.String(), true
		case isWhitespace(ch):
			for isWhitespace(s.peek()) {
				s.read()
			}
			if c := s.peek(); c == ')' {
				s.read()
				return URI, b.String(), true
			} else if c == eof {
				return URI, b.String(), true
			}
			return s.scanBadURL()
		case ch == '"' || ch == '\'' || ch == '(' || isNonPrintable(ch):
			return s.scanBadURL()
		case ch == '\\':
			if s.validEscape(p) {
				b.WriteRune(s.scanEscape())
			} else {
				return s.scanBadURL()
			}
		default:
			b.WriteRune(ch)
		}
	}
}

// scanBadURL consumes the remnants of a malformed url token up to the
// closing parenthesis or EOF.
func (s *Scanner) scanBadURL() (TokenType, string, bool) {
	for {
		p := s.pos
		ch := s.read()
		if ch == ')' || ch == eof {
			return BadURI, "", false
		}
		if ch == '\\' && s.validEscape(p) {
			s.scanEscape()
		}
	}
}

// scanUnicodeRange consumes a unicode-range token such as U+26 or
// U+0-7F or U+4??.
func (s *Scanner) scanUnicodeRange() (TokenType, string, bool) {
	s.read() // 'u' or 'U'
	s.read() // '+'
	n := 0
	for n < 6 && isHexDigit(s.peek()) {
		s.read()
		n++
	}
	q := 0
	for n+q < 6 && s.peek() == '?' {
		s.read()
		q++
	}
	if q == 0 && s.peek() == '-' && isHexDigit(s.peekAt(1)) {
		s.read()
		m := 0
		for m < 6 && isHexDigit(s.peek()) {
			s.read()
			m++
		}
	}
	return UnicodeRange, "", false
}

// scanName consumes name code points and escapes, returning the decoded
// name.
func (s *Scanner) scanName() string {
	var b strings.Builder
	for {
		p := s.pos
		ch := s.read()
		if isName(ch) {
			b.WriteRune(ch)
			continue
		}
		if ch == '\\' && s.validEscape(p) {
			b.WriteRune(s.scanEscape())
			continue
		}
		s.pos = p
		return b.String()
	}
}

// scanEscape decodes one escaped code point. The backslash has been
// consumed.
func (s *Scanner) scanEscape() rune {
	ch := s.read()
	if ch == eof {
		return '�'
	}
	if !isHexDigit(ch) {
		return ch
	}
	digits := string(ch)
	for len(digits) < 6 && isHexDigit(s.peek()) {
		digits += string(s.read())
	}
	if isWhitespace(s.peek()) {
		s.read()
	}
	v, _ := strconv.ParseInt(digits, 16, 32)
	if v == 0 || v > int64(unicode.MaxRune) || (v >= 0xD800 && v <= 0xDFFF) {
		return '�'
	}
	return rune(v)
}

// read consumes and returns the next code point, or eof at end of input
// without advancing.
func (s *Scanner) read() rune {
	if s.pos >= len(s.input) {
		return eof
	}
	r, w := utf8.DecodeRuneInString(s.input[s.pos:])
	s.pos += w
	return r
}

// peek returns the next code point without consuming it.
func (s *Scanner) peek() rune {
	r, _ := s.runeAt(s.pos)
	return r
}

// peekAt returns the n-th code point after the current position, zero
// based, without consuming anything.
func (s *Scanner) peekAt(n int) rune {
	p := s.pos
	for i := 0; i < n; i++ {
		_, w := s.runeAt(p)
		if w == 0 {
			return eof
		}
		p += w
	}
	r, _ := s.runeAt(p)
	return r
}

func (s *Scanner) runeAt(p int) (rune, int) {
	if p < 0 || p >= len(s.input) {
		return eof, 0
	}
	return utf8.DecodeRuneInString(s.input[p:])
}

// validEscape reports whether the byte at p begins a valid escape, i.e.
// a backslash not followed by a newline or EOF.
func (s *Scanner) validEscape(p int) bool {
	if p >= len(s.input) || s.input[p] != '\\' {
		return false
	}
	if p+1 >= len(s.input) {
		return false
	}
	return s.input[p+1] != '\n'
}

// startsIdent reports whether the input at byte offset p would start an
// identifier.
func (s *Scanner) startsIdent(p int) bool {
	r0, w0 := s.runeAt(p)
	switch {
	case r0 == '-':
		r1, _ := s.runeAt(p + w0)
		return isNameStart(r1) || r1 == '-' || s.validEscape(p+w0)
	case isNameStart(r0):
		return true
	case r0 == '\\':
		return s.validEscape(p)
	}
	return false
}

func isWhitespace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' || ch == '\f'
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isHexDigit(ch rune) bool {
	return isDigit(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

func isNameStart(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_' || ch >= 0x80
}

func isName(ch rune) bool {
	return isNameStart(ch) || isDigit(ch) || ch == '-'
}

func isNonPrintable(ch rune) bool {
	return (ch >= 0 && ch <= 8) || ch == 0x0B || (ch >= 0x0E && ch <= 0x1F) || ch == 0x7F
}
