package csstree

import (
	"path/filepath"
	"testing"
)

func TestProcessHTMLChunk(t *testing.T) {
	c := NewCSSParser()
	if err := c.AddCSSText("p{color:red}"); err != nil {
		t.Fatal(err)
	}
	doc, err := c.ProcessHTMLChunk("<html><head></head><body><p>hello</p></body></html>")
	if err != nil {
		t.Fatal(err)
	}
	style, ok := doc.Find("p").Attr("style")
	if !ok {
		t.Fatal("p has no style attribute")
	}
	if want := "color: red;"; style != want {
		t.Errorf("style = %q, want %q", style, want)
	}
}

func TestLaterRuleWins(t *testing.T) {
	c := NewCSSParser()
	if err := c.AddCSSText("p{margin:1em} p{margin:2em}"); err != nil {
		t.Fatal(err)
	}
	doc, err := c.ProcessHTMLChunk("<p>x</p>")
	if err != nil {
		t.Fatal(err)
	}
	style, _ := doc.Find("p").Attr("style")
	if want := "margin: 2em;"; style != want {
		t.Errorf("style = %q, want %q", style, want)
	}
}

func TestImportantKept(t *testing.T) {
	c := NewCSSParser()
	if err := c.AddCSSText("p{color:red}"); err != nil {
		t.Fatal(err)
	}
	doc, err := c.ProcessHTMLChunk(`<p style="color: blue !important">x</p>`)
	if err != nil {
		t.Fatal(err)
	}
	style, _ := doc.Find("p").Attr("style")
	if want := "color: blue !important;"; style != want {
		t.Errorf("style = %q, want %q", style, want)
	}
}

func TestInlineStyleOverridden(t *testing.T) {
	c := NewCSSParser()
	if err := c.AddCSSText("p{color:red}"); err != nil {
		t.Fatal(err)
	}
	doc, err := c.ProcessHTMLChunk(`<p style="color: blue; margin: 0">x</p>`)
	if err != nil {
		t.Fatal(err)
	}
	style, _ := doc.Find("p").Attr("style")
	if want := "color: red; margin: 0;"; style != want {
		t.Errorf("style = %q, want %q", style, want)
	}
}

func TestMediaRulesApplied(t *testing.T) {
	c := NewCSSParser()
	if err := c.AddCSSText("@media print { p { margin: 0 } }"); err != nil {
		t.Fatal(err)
	}
	doc, err := c.ProcessHTMLChunk("<p>x</p>")
	if err != nil {
		t.Fatal(err)
	}
	style, _ := doc.Find("p").Attr("style")
	if want := "margin: 0;"; style != want {
		t.Errorf("style = %q, want %q", style, want)
	}
}

func TestBadSelectorSkipped(t *testing.T) {
	c := NewCSSParser()
	if err := c.AddCSSText("p::{oops:1} p{color:red}"); err != nil {
		t.Fatal(err)
	}
	doc, err := c.ProcessHTMLChunk("<p>x</p>")
	if err != nil {
		t.Fatal(err)
	}
	style, _ := doc.Find("p").Attr("style")
	if want := "color: red;"; style != want {
		t.Errorf("style = %q, want %q", style, want)
	}
}

func TestProcessHTMLFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "style.css"), "p{color:green}")
	writeFile(t, filepath.Join(dir, "index.html"),
		`<html><head><link rel="stylesheet" href="style.css" /></head><body><p>hi</p></body></html>`)

	c := NewCSSParser()
	doc, err := c.ProcessHTMLFile(filepath.Join(dir, "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	style, _ := doc.Find("p").Attr("style")
	if want := "color: green;"; style != want {
		t.Errorf("style = %q, want %q", style, want)
	}
}
