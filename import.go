package csstree

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/boxesandglue/csstree/scanner"
)

// resolveImports replaces top-level @import rules with the rules of the
// imported stylesheets, resolved against the dir stack. Imports without
// a recognizable target are kept in place; unreadable files are an
// error.
func (c *CSS) resolveImports(nodes []Node) ([]Node, error) {
	var out []Node
	for _, n := range nodes {
		ar, ok := n.(*AtRule)
		if !ok || !strings.EqualFold(ar.Name, "import") || ar.Block != nil {
			out = append(out, n)
			continue
		}
		target := importTarget(ar.Prelude)
		if target == "" {
			out = append(out, n)
			continue
		}
		loc, err := c.findFile(target)
		if err != nil {
			return nil, err
		}
		data, err := os.ReadFile(loc)
		if err != nil {
			return nil, fmt.Errorf("resolve @import %q: %w", target, err)
		}
		c.PushDir(filepath.Dir(loc))
		imported, err := c.resolveImports(Parse(string(data)))
		c.PopDir()
		if err != nil {
			return nil, err
		}
		out = append(out, imported...)
	}
	return out, nil
}

// importTarget extracts the file reference from an @import prelude:
// either a quoted string, a url token, or a url() function.
func importTarget(prelude []Node) string {
	for _, n := range prelude {
		switch n := n.(type) {
		case *Tok:
			switch n.Type {
			case scanner.String, scanner.URI:
				return n.Value
			case scanner.S, scanner.Comment:
				// keep looking
			default:
				return ""
			}
		case *Function:
			if !strings.EqualFold(n.Name, "url") {
				return ""
			}
			for _, v := range n.Value {
				if t, ok := v.(*Tok); ok && t.Type != scanner.S {
					return t.Value
				}
			}
			return ""
		default:
			return ""
		}
	}
	return ""
}
