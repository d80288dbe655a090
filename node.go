package csstree

import (
	"strings"

	"github.com/boxesandglue/csstree/scanner"
)

// Tokenstream is an ordered list of CSS tokens.
type Tokenstream []*scanner.Token

// String returns the concatenated raw source text of the tokens.
func (t Tokenstream) String() string {
	var b strings.Builder
	for _, tok := range t {
		b.WriteString(tok.Raw)
	}
	return b.String()
}

// Node is an element of the parse tree. Structural nodes carry the exact
// token sequence they were built from, so an unmodified node can always
// reproduce its source text.
type Node interface {
	node()
}

func (*Tok) node()           {}
func (*AtRule) node()        {}
func (*QualifiedRule) node() {}
func (*SimpleBlock) node()   {}
func (*Function) node()      {}
func (*Declaration) node()   {}
func (*StyleRule) node()     {}
func (*Selector) node()      {}
func (*Property) node()      {}

// Tok wraps a single lexer token as a parse tree node. Comments,
// whitespace, semicolons, and any token the grammar passes through
// unchanged appear in the tree as Tok nodes.
type Tok struct {
	*scanner.Token
}

// AtRule is a rule introduced by an at-keyword, with a prelude and an
// optional block.
type AtRule struct {
	Name    string
	Prelude []Node
	Block   *SimpleBlock
	Tokens  Tokenstream
}

// QualifiedRule is a prelude followed by a mandatory {}-block.
type QualifiedRule struct {
	Prelude []Node
	Block   *SimpleBlock
	Tokens  Tokenstream
}

// SimpleBlock is a bracketed region. Start is one of "{", "[", "(" and
// End is its mirror. Tokens include the opening bracket and everything
// through the closing bracket, or through end of input when the block is
// unterminated.
type SimpleBlock struct {
	Start  string
	End    string
	Value  []Node
	Tokens Tokenstream

	// closed reports whether the closing bracket was present in the
	// source, i.e. the last token in Tokens is the closer and not part
	// of the block's contents.
	closed bool
}

// Function is a function token with its arguments, through the closing
// parenthesis.
type Function struct {
	Name   string
	Value  []Node
	Tokens Tokenstream
}

// Declaration is a property name and value. Value holds the value nodes
// with interior whitespace and comments preserved; a trailing !important
// is removed from Value and reported through Important, while Tokens
// keep the full verbatim span.
type Declaration struct {
	Name      string
	Value     []Node
	Important bool
	Tokens    Tokenstream
}

// StyleRule is a qualified rule whose prelude has been interpreted as a
// selector and whose block has been split into properties and
// pass-through nodes.
type StyleRule struct {
	Selector *Selector
	Children []Node
	Tokens   Tokenstream
}

// Selector is the whitespace-trimmed, unescaped selector text of a style
// rule along with the prelude tokens it came from.
type Selector struct {
	Value  string
	Tokens Tokenstream
}

// Property is a declaration reduced to plain strings, produced when a
// style rule or declaration list is post-processed.
type Property struct {
	Name      string
	Value     string
	Important bool
	Tokens    Tokenstream
}

// blockEnd maps a block's opening bracket to its closing mirror.
var blockEnd = map[string]string{
	"{": "}",
	"[": "]",
	"(": ")",
}

// NewBlock wraps nodes in a fresh {}-block, e.g. for replacing an
// at-rule's block after parsing.
func NewBlock(nodes []Node) *SimpleBlock {
	return &SimpleBlock{Start: "{", End: "}", Value: nodes}
}

// innerTokens returns the block's tokens without the enclosing brackets.
func (b *SimpleBlock) innerTokens() []*scanner.Token {
	if len(b.Tokens) == 0 {
		return nodeTokens(b.Value)
	}
	toks := []*scanner.Token(b.Tokens[1:])
	if n := len(toks); b.closed && n > 0 {
		toks = toks[:n-1]
	}
	return toks
}

// nodeTokens flattens a node sequence into the tokens it was built from.
func nodeTokens(nodes []Node) Tokenstream {
	var ts Tokenstream
	for _, n := range nodes {
		switch n := n.(type) {
		case *Tok:
			ts = append(ts, n.Token)
		case *AtRule:
			ts = append(ts, n.Tokens...)
		case *QualifiedRule:
			ts = append(ts, n.Tokens...)
		case *SimpleBlock:
			ts = append(ts, n.Tokens...)
		case *Function:
			ts = append(ts, n.Tokens...)
		case *Declaration:
			ts = append(ts, n.Tokens...)
		case *StyleRule:
			ts = append(ts, n.Tokens...)
		case *Selector:
			ts = append(ts, n.Tokens...)
		case *Property:
			ts = append(ts, n.Tokens...)
		}
	}
	return ts
}
