package analysis

import "testing"

// stubStream replays fixed tokens. Each Reset moves on to the next queued
// input, if any.
type stubStream struct {
	tokens []Token
	queue  [][]Token
	final  int
	pos    int

	pulls  int
	resets int

	failAt int
	err    error
	endErr error
}

func newStub(tokens ...Token) *stubStream {
	return &stubStream{tokens: tokens, final: finalOffset(tokens), failAt: -1}
}

func (s *stubStream) Next() (Token, bool, error) {
	s.pulls++
	if s.failAt >= 0 && s.pos == s.failAt {
		return Token{}, false, s.err
	}
	if s.pos >= len(s.tokens) {
		return Token{}, false, nil
	}
	tok := s.tokens[s.pos]
	s.pos++
	return tok, true, nil
}

func (s *stubStream) End() (EndState, error) {
	if s.endErr != nil {
		return EndState{}, s.endErr
	}
	return EndState{FinalOffset: s.final}, nil
}

func (s *stubStream) Reset() error {
	s.resets++
	s.pos = 0
	if len(s.queue) > 0 {
		s.tokens = s.queue[0]
		s.queue = s.queue[1:]
		s.final = finalOffset(s.tokens)
	}
	return nil
}

func finalOffset(tokens []Token) int {
	if len(tokens) == 0 {
		return 0
	}
	return tokens[len(tokens)-1].EndByte + 1
}

// tk builds a token with increment 1 spanning term from start.
func tk(term, typ string, start int) Token {
	return Token{
		Term:              term,
		Type:              typ,
		StartByte:         start,
		EndByte:           start + len(term),
		PositionIncrement: 1,
	}
}

// collect pulls ts until exhaustion.
func collect(t *testing.T, ts TokenStream) []Token {
	t.Helper()
	var out []Token
	for {
		tok, ok, err := ts.Next()
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		if !ok {
			return out
		}
		out = append(out, tok)
	}
}

func tokenTerms(tokens []Token) []string {
	if len(tokens) == 0 {
		return nil
	}
	terms := make([]string, len(tokens))
	for i, t := range tokens {
		terms[i] = t.Term
	}
	return terms
}

func tokenTypes(tokens []Token) []string {
	if len(tokens) == 0 {
		return nil
	}
	types := make([]string, len(tokens))
	for i, t := range tokens {
		types[i] = t.Type
	}
	return types
}

func stringSliceEqual(a, b []string) bool {
	if len(a) == 0 && len(b) == 0 {
		return true
	}
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
