package csstree

import (
	"testing"

	"github.com/boxesandglue/csstree/scanner"
)

func TestTokenScannerEOF(t *testing.T) {
	s := newTokenScanner(scanner.Tokenize("a"))
	if tok := s.consume(); tok.Type != scanner.Ident {
		t.Fatalf("first consume = %s, want IDENT", tok.Type)
	}
	for i := 0; i < 3; i++ {
		if tok := s.consume(); tok.Type != scanner.EOF {
			t.Fatalf("consume after end = %s, want EOF", tok.Type)
		}
	}
	s.reconsume()
	if tok := s.consume(); tok.Type != scanner.EOF {
		t.Errorf("consume after reconsume at end = %s, want EOF", tok.Type)
	}
}

func TestTokenScannerReconsume(t *testing.T) {
	s := newTokenScanner(scanner.Tokenize("a b"))
	first := s.consume()
	s.reconsume()
	again := s.consume()
	if first != again {
		t.Errorf("consume after reconsume = %v, want the same token %v", again, first)
	}
	if tok := s.consume(); tok.Type != scanner.S {
		t.Errorf("next consume = %s, want S", tok.Type)
	}
}

func TestRecord(t *testing.T) {
	s := newTokenScanner(scanner.Tokenize("a b c"))
	var inner Tokenstream
	outer := s.record(func() {
		s.consume() // a
		inner = s.record(func() {
			s.consume() // space
			s.consume() // b
		})
	})
	if got, want := inner.String(), " b"; got != want {
		t.Errorf("inner.String() = %q, want %q", got, want)
	}
	if got, want := outer.String(), "a b"; got != want {
		t.Errorf("outer.String() = %q, want %q", got, want)
	}
}

func TestRecordReconsumeOnce(t *testing.T) {
	s := newTokenScanner(scanner.Tokenize("a b c"))
	span := s.record(func() {
		s.consume()
		s.reconsume()
		s.consume()
		s.consume()
	})
	if got, want := span.String(), "a "; got != want {
		t.Errorf("span.String() = %q, want %q", got, want)
	}
}

func TestRecordStopsBeforeEOF(t *testing.T) {
	s := newTokenScanner(scanner.Tokenize("a"))
	span := s.record(func() {
		for s.consume().Type != scanner.EOF {
		}
		s.consume()
	})
	if got, want := len(span), 1; got != want {
		t.Fatalf("len(span) = %d, want %d", got, want)
	}
	if span[0].Type != scanner.Ident {
		t.Errorf("span[0].Type = %s, want IDENT", span[0].Type)
	}
}
