package csstree

import (
	"strings"

	"github.com/boxesandglue/csstree/scanner"
)

// StringifyOptions configures serialization. A nil options value means
// the defaults.
type StringifyOptions struct {
	// ExcludeComments drops comment tokens from the output.
	ExcludeComments bool
}

// Stringify renders a node sequence back into CSS text. Unmodified parse
// results reproduce their source text exactly; mutated nodes are
// reconstructed from their structural fields.
func Stringify(nodes []Node, opts *StringifyOptions) string {
	if opts == nil {
		opts = &StringifyOptions{}
	}
	var b strings.Builder
	for _, n := range nodes {
		writeNode(&b, n, opts)
	}
	return b.String()
}

// StringifyNode renders a single node back into CSS text.
func StringifyNode(n Node, opts *StringifyOptions) string {
	return Stringify([]Node{n}, opts)
}

func writeNode(b *strings.Builder, n Node, opts *StringifyOptions) {
	switch n := n.(type) {
	case nil:
	case *Tok:
		if n.Type == scanner.Comment && opts.ExcludeComments {
			return
		}
		b.WriteString(n.Raw)
	case *AtRule:
		b.WriteString("@")
		b.WriteString(n.Name)
		for _, v := range n.Prelude {
			writeNode(b, v, opts)
		}
		if n.Block != nil {
			writeNode(b, n.Block, opts)
		} else {
			b.WriteString(";")
		}
	case *QualifiedRule:
		for _, v := range n.Prelude {
			writeNode(b, v, opts)
		}
		if n.Block != nil {
			writeNode(b, n.Block, opts)
		}
	case *SimpleBlock:
		b.WriteString(n.Start)
		for _, v := range n.Value {
			writeNode(b, v, opts)
		}
		b.WriteString(n.End)
	case *Function:
		// The structured value omits comments, so a parsed function
		// serializes from its token span.
		if len(n.Tokens) > 0 {
			writeTokens(b, n.Tokens, opts)
			return
		}
		b.WriteString(n.Name)
		b.WriteString("(")
		for _, v := range n.Value {
			writeNode(b, v, opts)
		}
		b.WriteString(")")
	case *StyleRule:
		if n.Selector != nil {
			writeNode(b, n.Selector, opts)
		}
		b.WriteString("{")
		for _, c := range n.Children {
			writeNode(b, c, opts)
		}
		b.WriteString("}")
	case *Selector:
		if len(n.Tokens) > 0 {
			writeTokens(b, n.Tokens, opts)
			return
		}
		b.WriteString(n.Value)
	case *Declaration:
		if len(n.Tokens) > 0 {
			writeTokens(b, n.Tokens, opts)
			return
		}
		b.WriteString(n.Name)
		b.WriteString(": ")
		for _, v := range n.Value {
			writeNode(b, v, opts)
		}
		if n.Important {
			b.WriteString(" !important")
		}
	case *Property:
		if len(n.Tokens) > 0 {
			writeTokens(b, n.Tokens, opts)
			return
		}
		b.WriteString(n.Name)
		b.WriteString(": ")
		b.WriteString(n.Value)
		if n.Important {
			b.WriteString(" !important")
		}
	}
}

func writeTokens(b *strings.Builder, toks Tokenstream, opts *StringifyOptions) {
	for _, t := range toks {
		if t.Type == scanner.Comment && opts.ExcludeComments {
			continue
		}
		b.WriteString(t.Raw)
	}
}

// StringifyInline renders a declaration list in the form used for inline
// style attributes: whitespace runs collapse to a single space, there is
// no space before colons and semicolons, comments are preserved
// verbatim, and surrounding whitespace is trimmed.
func StringifyInline(nodes []Node) string {
	toks := nodeTokens(nodes)
	var b strings.Builder
	for i, t := range toks {
		if t.Type == scanner.S {
			if i+1 < len(toks) {
				if nt := toks[i+1].Type; nt == scanner.Colon || nt == scanner.Semicolon {
					continue
				}
			}
			b.WriteString(" ")
			continue
		}
		b.WriteString(t.Raw)
	}
	return strings.TrimSpace(b.String())
}
