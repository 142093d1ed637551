package analysis

import "strings"

// termFilter rewrites the term of every token it passes through. Offsets,
// types and increments are left untouched.
type termFilter struct {
	in      TokenStream
	rewrite func(string) string
}

func (f *termFilter) Next() (Token, bool, error) {
	tok, ok, err := f.in.Next()
	if err != nil || !ok {
		return tok, ok, err
	}
	tok.Term = f.rewrite(tok.Term)
	return tok, true, nil
}

func (f *termFilter) End() (EndState, error) { return f.in.End() }

func (f *termFilter) Reset() error { return f.in.Reset() }

// LowerCaseFilter lowercases token terms.
type LowerCaseFilter struct {
	termFilter
}

// NewLowerCaseFilter wraps in with a LowerCaseFilter.
func NewLowerCaseFilter(in TokenStream) *LowerCaseFilter {
	return &LowerCaseFilter{termFilter{in: in, rewrite: strings.ToLower}}
}
