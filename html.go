package csstree

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// ProcessHTMLFile opens an HTML file, reads linked stylesheets, applies
// the CSS rules and returns the DOM structure.
func (c *CSS) ProcessHTMLFile(filename string) (*goquery.Document, error) {
	dir, fn := filepath.Split(filename)
	c.PushDir(dir)

	filename, err := c.findFile(fn)
	if err != nil {
		return nil, err
	}

	r, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}
	if err := c.readLinkedStylesheets(doc); err != nil {
		return nil, err
	}
	if err := c.ApplyCSS(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// ProcessHTMLChunk reads the HTML text. If there are linked style sheets
// (<link href=...) these are also read. After reading, the CSS is
// applied to the HTML DOM which is returned.
func (c *CSS) ProcessHTMLChunk(htmltext string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmltext))
	if err != nil {
		return nil, err
	}
	if err := c.readLinkedStylesheets(doc); err != nil {
		return nil, err
	}
	if err := c.ApplyCSS(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// readLinkedStylesheets loads every stylesheet referenced by a link
// element in the document head.
func (c *CSS) readLinkedStylesheets(doc *goquery.Document) error {
	var errcond error
	doc.Find(":root > head link").Each(func(i int, sel *goquery.Selection) {
		if stylesheetfile, attExists := sel.Attr("href"); attExists {
			if err := c.AddCSSFile(stylesheetfile); err != nil {
				errcond = err
			}
		}
	})
	return errcond
}

// ApplyCSS applies all added stylesheets to the document by merging the
// matching style rules into each element's style attribute. Later rules
// win over earlier ones; !important declarations win over plain ones.
// Rules inside conditional at-rules such as @media are applied
// unconditionally since query evaluation is out of scope.
func (c *CSS) ApplyCSS(doc *goquery.Document) error {
	for _, sheet := range c.stylesheets {
		if err := c.applyRules(doc, sheet); err != nil {
			return err
		}
	}
	return nil
}

func (c *CSS) applyRules(doc *goquery.Document, nodes []Node) error {
	for _, n := range nodes {
		switch n := n.(type) {
		case *StyleRule:
			sel, err := cascadia.Compile(n.Selector.Value)
			if err != nil {
				// not a selector cascadia understands
				continue
			}
			for _, root := range doc.Nodes {
				for _, match := range sel.MatchAll(root) {
					setStyle(match, n.Children)
				}
			}
		case *AtRule:
			if n.Block != nil && strings.EqualFold(n.Name, "media") {
				if err := c.applyRules(doc, BlockRules(n.Block)); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// setStyle merges the rule's properties into the node's style attribute.
func setStyle(n *html.Node, children []Node) {
	for i, a := range n.Attr {
		if a.Key == "style" {
			n.Attr[i].Val = mergeInlineStyle(a.Val, children)
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: "style", Val: mergeInlineStyle("", children)})
}

// mergeInlineStyle merges the properties of a style rule into an
// existing inline style attribute value. A property already present is
// overridden unless it is marked !important and the new one is not.
func mergeInlineStyle(existing string, children []Node) string {
	var order []string
	props := map[string]*Property{}
	absorb := func(nodes []Node) {
		for _, n := range nodes {
			p, ok := n.(*Property)
			if !ok {
				continue
			}
			if prev, ok := props[p.Name]; ok {
				if prev.Important && !p.Important {
					continue
				}
				props[p.Name] = p
				continue
			}
			order = append(order, p.Name)
			props[p.Name] = p
		}
	}
	absorb(ParseDeclarationList(existing))
	absorb(children)
	parts := make([]string, 0, len(order))
	for _, name := range order {
		p := props[name]
		v := p.Value
		if p.Important {
			v += " !important"
		}
		parts = append(parts, name+": "+v)
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, "; ") + ";"
}
