// Package csstree parses CSS text into a mutable parse tree and writes
// the tree back to valid source text. Serializing an unmodified parse
// result reproduces the input byte for byte, including comments,
// whitespace, and constructs the grammar does not understand beyond
// their token sequence.
//
// The package can also collect stylesheets from files or strings,
// resolve @import rules, and apply the style rules to an HTML DOM as
// inline style attributes.
package csstree
