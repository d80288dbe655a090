package csstree

import (
	"strings"

	"github.com/boxesandglue/csstree/scanner"
)

// parser holds the scanner a parse runs against. Consumption routines
// default to the parser's own scanner; declaration candidates are parsed
// by a sub-parser over an ad hoc scanner.
type parser struct {
	s *tokenScanner
}

func newParser(toks []*scanner.Token) *parser {
	return &parser{s: newTokenScanner(toks)}
}

// Parse parses a stylesheet into a sequence of top-level nodes. Comments
// and whitespace pass through unchanged, qualified rules are converted
// to style rules, and the legacy <!-- --> tokens are dropped.
func Parse(css string) []Node {
	p := newParser(scanner.Tokenize(css))
	return toStyleRules(p.consumeRules(true))
}

// ParseRules parses a rule list in a nested context: the legacy <!-- -->
// tokens are not dropped but treated as the start of a qualified rule,
// and qualified rules are kept as such.
func ParseRules(css string) []Node {
	p := newParser(scanner.Tokenize(css))
	return p.consumeRules(false)
}

// ParseDeclarationList parses a bare declaration list such as the
// contents of an inline style attribute. Declarations are converted to
// Property nodes; comments, whitespace, semicolons, and nested at-rules
// pass through. Malformed declarations are dropped.
func ParseDeclarationList(css string) []Node {
	p := newParser(scanner.Tokenize(css))
	return toProperties(p.consumeDeclarations())
}

// BlockDeclarations reinterprets a block's contents as a declaration
// list, the way a style rule's body is read.
func BlockDeclarations(b *SimpleBlock) []Node {
	p := newParser(b.innerTokens())
	return toProperties(p.consumeDeclarations())
}

// BlockRules reinterprets a block's contents as a rule list, the way the
// body of an @media rule is read.
func BlockRules(b *SimpleBlock) []Node {
	p := newParser(b.innerTokens())
	return toStyleRules(p.consumeRules(false))
}

// toStyleRules converts qualified rules in a rule list to style rules.
func toStyleRules(nodes []Node) []Node {
	out := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		if q, ok := n.(*QualifiedRule); ok {
			out = append(out, parseStyleRule(q))
			continue
		}
		out = append(out, n)
	}
	return out
}

// toProperties converts declarations in a declaration list to properties.
func toProperties(nodes []Node) []Node {
	out := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		if d, ok := n.(*Declaration); ok {
			out = append(out, d.toProperty())
			continue
		}
		out = append(out, n)
	}
	return out
}

// parseStyleRule interprets a qualified rule's prelude as a selector and
// its block as a declaration list.
func parseStyleRule(q *QualifiedRule) *StyleRule {
	return &StyleRule{
		Selector: &Selector{Value: parseSelector(q.Prelude), Tokens: nodeTokens(q.Prelude)},
		Children: BlockDeclarations(q.Block),
		Tokens:   q.Tokens,
	}
}

func (d *Declaration) toProperty() *Property {
	return &Property{Name: d.Name, Value: parseValue(d.Value), Important: d.Important, Tokens: d.Tokens}
}

// consumeRules consumes a list of rules until EOF. At the top level the
// legacy <!-- --> tokens are dropped; in nested contexts they start a
// qualified rule. A rule that fails to parse is omitted.
func (p *parser) consumeRules(topLevel bool) []Node {
	var rules []Node
	for {
		tok := p.s.consume()
		switch tok.Type {
		case scanner.S, scanner.Comment:
			rules = append(rules, &Tok{tok})
		case scanner.EOF:
			return rules
		case scanner.CDO, scanner.CDC:
			if !topLevel {
				p.s.reconsume()
				if r := p.consumeQualifiedRule(); r != nil {
					rules = append(rules, r)
				}
			}
		case scanner.AtKeyword:
			p.s.reconsume()
			if r := p.consumeAtRule(); r != nil {
				rules = append(rules, r)
			}
		default:
			p.s.reconsume()
			if r := p.consumeQualifiedRule(); r != nil {
				rules = append(rules, r)
			}
		}
	}
}

// consumeAtRule consumes an at-rule. The rule ends at a semicolon, at
// EOF, or with a {}-block. Comments in the prelude are kept in the token
// span but not in the prelude itself.
func (p *parser) consumeAtRule() *AtRule {
	r := &AtRule{}
	r.Tokens = p.s.record(func() {
		r.Name = p.s.consume().Value
		for {
			tok := p.s.consume()
			switch tok.Type {
			case scanner.Comment:
				// skipped
			case scanner.Semicolon, scanner.EOF:
				return
			case scanner.LBrace:
				r.Block = p.consumeSimpleBlock()
				return
			default:
				p.s.reconsume()
				r.Prelude = append(r.Prelude, p.consumeComponentValue())
			}
		}
	})
	return r
}

// consumeQualifiedRule consumes a qualified rule. Reaching EOF before
// the {}-block is a parse error and returns nil.
func (p *parser) consumeQualifiedRule() *QualifiedRule {
	r := &QualifiedRule{}
	ok := false
	r.Tokens = p.s.record(func() {
		for {
			tok := p.s.consume()
			switch tok.Type {
			case scanner.EOF:
				return
			case scanner.LBrace:
				r.Block = p.consumeSimpleBlock()
				ok = true
				return
			default:
				p.s.reconsume()
				r.Prelude = append(r.Prelude, p.consumeComponentValue())
			}
		}
	})
	if !ok {
		return nil
	}
	return r
}

// mirrorType maps a block opener to the token type that closes it.
var mirrorType = map[scanner.TokenType]scanner.TokenType{
	scanner.LBrace: scanner.RBrace,
	scanner.LBrack: scanner.RBrack,
	scanner.LParen: scanner.RParen,
}

// consumeSimpleBlock consumes a block opened by the current token, up to
// the matching closing bracket or EOF. The closing bracket is part of
// the token span but not of the block's value.
func (p *parser) consumeSimpleBlock() *SimpleBlock {
	open := p.s.current()
	b := &SimpleBlock{Start: open.Raw, End: blockEnd[open.Raw]}
	end := mirrorType[open.Type]
	inner := p.s.record(func() {
		for {
			tok := p.s.consume()
			if tok.Type == end {
				b.closed = true
				return
			}
			if tok.Type == scanner.EOF {
				return
			}
			p.s.reconsume()
			b.Value = append(b.Value, p.consumeComponentValue())
		}
	})
	b.Tokens = append(Tokenstream{open}, inner...)
	return b
}

// consumeFunction consumes a function's arguments up to the closing
// parenthesis or EOF. Comments are kept in the token span only.
func (p *parser) consumeFunction() *Function {
	nameTok := p.s.current()
	f := &Function{Name: nameTok.Value}
	inner := p.s.record(func() {
		for {
			tok := p.s.consume()
			switch tok.Type {
			case scanner.RParen, scanner.EOF:
				return
			case scanner.Comment:
				// skipped
			default:
				p.s.reconsume()
				f.Value = append(f.Value, p.consumeComponentValue())
			}
		}
	})
	f.Tokens = append(Tokenstream{nameTok}, inner...)
	return f
}

// consumeComponentValue consumes one component value: a block, a
// function, or a single pass-through token. Returns nil at EOF.
func (p *parser) consumeComponentValue() Node {
	tok := p.s.consume()
	switch tok.Type {
	case scanner.LBrace, scanner.LBrack, scanner.LParen:
		return p.consumeSimpleBlock()
	case scanner.Function:
		return p.consumeFunction()
	case scanner.EOF:
		return nil
	}
	return &Tok{tok}
}

// consumeDeclarations splits a token sequence into declarations at
// semicolon boundaries. Comments, whitespace, and semicolons pass
// through; at-keywords start a nested at-rule; an identifier starts a
// declaration candidate parsed in isolation; anything else is a parse
// error recovered by skipping to the next semicolon.
func (p *parser) consumeDeclarations() []Node {
	var nodes []Node
	for {
		tok := p.s.consume()
		switch tok.Type {
		case scanner.S, scanner.Comment, scanner.Semicolon:
			nodes = append(nodes, &Tok{tok})
		case scanner.EOF:
			return nodes
		case scanner.AtKeyword:
			p.s.reconsume()
			if r := p.consumeAtRule(); r != nil {
				nodes = append(nodes, r)
			}
		case scanner.Ident:
			p.s.reconsume()
			var candidate []*scanner.Token
			for {
				t := p.s.consume()
				if t.Type == scanner.Semicolon || t.Type == scanner.EOF {
					p.s.reconsume()
					break
				}
				candidate = append(candidate, t)
			}
			if d := newParser(candidate).consumeDeclaration(); d != nil {
				nodes = append(nodes, d)
			}
		default:
			p.s.reconsume()
			p.skipComponentValues()
		}
	}
}

// consumeDeclaration consumes a single declaration: an identifier,
// whitespace, a colon, then the value. Any other token before the colon
// is a parse error and returns nil.
func (p *parser) consumeDeclaration() *Declaration {
	d := &Declaration{}
	ok := false
	d.Tokens = p.s.record(func() {
		name := p.s.consume()
		if name.Type != scanner.Ident {
			return
		}
		d.Name = name.Value
		tok := p.s.consume()
		for tok.Type == scanner.S {
			tok = p.s.consume()
		}
		if tok.Type != scanner.Colon {
			return
		}
		for {
			tok = p.s.consume()
			if tok.Type == scanner.EOF {
				break
			}
			d.Value = append(d.Value, &Tok{tok})
		}
		ok = true
	})
	if !ok {
		return nil
	}
	d.Value, d.Important = detectImportant(d.Value)
	return d
}

// detectImportant reports whether the last two non-whitespace value
// tokens are a "!" delimiter followed by an identifier equal to
// "important" under case-insensitive comparison. When they are, the tail
// starting at the "!" is removed from the returned value.
func detectImportant(value []Node) ([]Node, bool) {
	i := len(value) - 1
	for i >= 0 && isWhitespaceNode(value[i]) {
		i--
	}
	j := i - 1
	for j >= 0 && isWhitespaceNode(value[j]) {
		j--
	}
	if j < 0 {
		return value, false
	}
	imp, ok := value[i].(*Tok)
	if !ok {
		return value, false
	}
	bang, ok := value[j].(*Tok)
	if !ok {
		return value, false
	}
	if bang.Type == scanner.Delim && bang.Value == "!" &&
		imp.Type == scanner.Ident && strings.EqualFold(imp.Value, "important") {
		return value[:j], true
	}
	return value, false
}

func isWhitespaceNode(n Node) bool {
	t, ok := n.(*Tok)
	return ok && t.Type == scanner.S
}

// skipComponentValues discards component values up to and including the
// next semicolon.
func (p *parser) skipComponentValues() {
	for {
		v := p.consumeComponentValue()
		if v == nil {
			return
		}
		if t, ok := v.(*Tok); ok && t.Type == scanner.Semicolon {
			return
		}
	}
}

// parseSelector flattens a rule prelude into the selector text: token
// text concatenated, comments dropped, surrounding whitespace trimmed.
func parseSelector(prelude []Node) string {
	return parseValue(prelude)
}

// parseValue flattens a component value sequence into a plain string.
// Identifiers contribute their unescaped text, functions and blocks
// recurse, comments and semicolons are dropped, and surrounding
// whitespace is trimmed.
func parseValue(nodes []Node) string {
	var b strings.Builder
	writeFlat(&b, nodes)
	return strings.TrimSpace(b.String())
}

func writeFlat(b *strings.Builder, nodes []Node) {
	for _, n := range nodes {
		switch n := n.(type) {
		case *Tok:
			switch n.Type {
			case scanner.Comment, scanner.Semicolon:
				// dropped
			case scanner.Ident:
				b.WriteString(n.Value)
			default:
				b.WriteString(n.Raw)
			}
		case *SimpleBlock:
			b.WriteString(n.Start)
			writeFlat(b, n.Value)
			b.WriteString(n.End)
		case *Function:
			b.WriteString(n.Name)
			b.WriteString("(")
			writeFlat(b, n.Value)
			b.WriteString(")")
		}
	}
}
