package csstree

import (
	"github.com/boxesandglue/csstree/scanner"
)

// eofToken is the synthetic token returned once a scanner is exhausted.
var eofToken = &scanner.Token{Type: scanner.EOF}

// tokenScanner is a cursor over a fixed token sequence with one token of
// lookback and a recording primitive that captures the span of tokens
// consumed during a nested operation.
type tokenScanner struct {
	tokens []*scanner.Token
	i      int
}

func newTokenScanner(toks []*scanner.Token) *tokenScanner {
	return &tokenScanner{tokens: toks, i: -1}
}

// consume advances the cursor and returns the token now pointed at. At
// the end of the sequence it returns the EOF token on every call.
func (s *tokenScanner) consume() *scanner.Token {
	if s.i < len(s.tokens) {
		s.i++
	}
	return s.current()
}

// current returns the token last returned by consume without advancing.
func (s *tokenScanner) current() *scanner.Token {
	if s.i < 0 || s.i >= len(s.tokens) {
		return eofToken
	}
	return s.tokens[s.i]
}

// reconsume moves the cursor back one position so the next consume
// returns the same token again.
func (s *tokenScanner) reconsume() {
	if s.i > -1 {
		s.i--
	}
}

// record runs op and returns the span of tokens it consumed, from the
// first token past the current position through the position op left the
// cursor at. The synthetic EOF token is never part of the span, and a
// token consumed, reconsumed, and consumed again appears once.
func (s *tokenScanner) record(op func()) Tokenstream {
	start := s.i
	op()
	end := s.i
	if end >= len(s.tokens) {
		end = len(s.tokens) - 1
	}
	if end <= start {
		return nil
	}
	return Tokenstream(s.tokens[start+1 : end+1])
}
