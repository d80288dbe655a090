package csstree

import (
	"fmt"
	"os"
	"path/filepath"
)

// CSS is the main structure that collects parsed stylesheets. Multiple
// stylesheets can be added to the CSS structure and then applied to
// HTML.
type CSS struct {
	FileFinder  func(string) (string, error)
	dirstack    []string
	stylesheets [][]Node
}

// NewCSSParser returns a new CSS object.
func NewCSSParser() *CSS {
	return &CSS{}
}

// NewCSSParserWithDefaults returns a new CSS object with the default
// stylesheet included. This is a convenience function which adds the
// CSSdefaults to the returned CSS struct.
func NewCSSParserWithDefaults() *CSS {
	c := &CSS{}
	_ = c.AddCSSText(CSSdefaults)
	return c
}

// PushDir adds a directory to the dir stack. When a file is opened, all
// new Open calls are relative to this directory. ProcessHTMLFile uses
// the dir stack internally when it reads a cascade of CSS files.
func (c *CSS) PushDir(dir string) {
	if filepath.IsAbs(dir) {
		c.dirstack = append(c.dirstack, dir)
		return
	}
	var newEntry string
	if len(c.dirstack) > 0 {
		lastEntry := c.dirstack[len(c.dirstack)-1]
		newEntry = filepath.Join(lastEntry, dir)
	} else {
		newEntry = dir
	}
	c.dirstack = append(c.dirstack, newEntry)
}

// PopDir removes the last entry from the dir stack.
func (c *CSS) PopDir() {
	c.dirstack = c.dirstack[:len(c.dirstack)-1]
}

// findFile returns the absolute path of the file. If the function in
// CSS.FileFinder is set, it is used to find the file. If it is unset,
// findFile returns the filename if is an absolute path or it prefixes
// the filename with the top entry of the dirstack.
func (c *CSS) findFile(filename string) (string, error) {
	if c.FileFinder != nil {
		if loc, err := c.FileFinder(filename); loc != "" && err == nil {
			return loc, nil
		}
	}
	if len(c.dirstack) == 0 {
		return filename, nil
	}
	lastEntry := c.dirstack[len(c.dirstack)-1]
	if filepath.IsAbs(filename) {
		return filename, nil
	}
	return filepath.Join(lastEntry, filename), nil
}

// AddCSSText parses CSS text and appends the rules to the previously
// read rules. If the fragment contains relative links to other
// stylesheets, the dir stack must be set in advance.
func (c *CSS) AddCSSText(fragment string) error {
	nodes, err := c.resolveImports(Parse(fragment))
	if err != nil {
		return err
	}
	c.stylesheets = append(c.stylesheets, nodes)
	return nil
}

// AddCSSFile reads a stylesheet from a file, resolves @import rules
// relative to its directory, and appends the rules to the previously
// read rules.
func (c *CSS) AddCSSFile(filename string) error {
	loc, err := c.findFile(filename)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(loc)
	if err != nil {
		return fmt.Errorf("add CSS file: %w", err)
	}
	c.PushDir(filepath.Dir(loc))
	defer c.PopDir()
	return c.AddCSSText(string(data))
}

// Stylesheets returns all rule lists added so far, in the order they
// were added.
func (c *CSS) Stylesheets() [][]Node {
	return c.stylesheets
}

// CSSdefaults contains browser-like styling of some elements.
var CSSdefaults = `
html            { font-size: 10pt; tab-size: 4; font-family: sans; }
li              { display: list-item; padding-left: 0; }
head            { display: none }
table           { display: table }
tr              { display: table-row }
thead           { display: table-header-group }
tbody           { display: table-row-group }
tfoot           { display: table-footer-group }
td, th          { display: table-cell }
caption         { display: table-caption }
th              { font-weight: bold; text-align: center }
caption         { text-align: center }
body            { margin: 0pt; line-height: 1.2; hyphens: auto; font-weight: normal; }
p               { font-size: 1em; margin: 1.5em 0 }
h1              { font-size: 2em; margin:  .67em 0 }
h2              { font-size: 1.5em; margin: .75em 0 }
h3              { font-size: 1.17em; margin: .83em 0 }
h4,
blockquote, ul,
fieldset, form,
ol, dl, dir,
h5              { font-size: 1em; margin: 1.5em 0; text-align: left; }
h6              { font-size: .75em; margin: 1.67em 0 }
h1, h2, h3, h4,
h5, h6, b,
strong          { font-weight: bold }
blockquote      { margin-left: 40px; margin-right: 40px }
i, cite, em,
var, address    { font-style: italic }
pre, tt, code,
kbd, samp       { font-family: monospace }
pre             { white-space: pre; margin: 1em 0px; }
button, textarea,
input, select   { display: inline-block }
big             { font-size: 1.17em }
small, sub, sup { font-size: .83em }
sub             { vertical-align: sub }
sup             { vertical-align: super }
table           { border-spacing: 2pt; }
thead, tbody,
tfoot           { vertical-align: middle }
td, th, tr      { vertical-align: inherit }
s, strike, del  { text-decoration: line-through }
hr              { border: 1px inset }
ol, ul, dir, dd { padding-left: 20pt }
ol              { list-style-type: decimal }
ul              { list-style-type: disc }
ol ul, ul ol,
ul ul, ol ol    { margin-top: 0; margin-bottom: 0 }
u, ins          { text-decoration: underline }
center          { text-align: center }
`
