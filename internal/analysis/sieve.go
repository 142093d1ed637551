package analysis

// SieveFilter passes all tokens of an input through, or none of them,
// depending on which CJK scripts occur anywhere in the input.
//
// Tokens typed by a script-aware tokenizer are classified by their tag; for
// generic tags every codepoint of the term is inspected.
//
// Example: a "title_ja" field fed by the standard tokenizer and a sieve in
// EmitJapanese mode only receives titles containing kana, so a Japanese
// morphological chain downstream never sees Chinese or Korean text.
type SieveFilter struct {
	bufferedFilter
	mode EmitMode
}

// NewSieveFilter wraps in with a sieve that emits under mode.
func NewSieveFilter(in TokenStream, mode EmitMode) *SieveFilter {
	return &SieveFilter{
		bufferedFilter: newBufferedFilter(in, ClassifyToken, mode.Allows),
		mode:           mode,
	}
}

// Mode returns the configured emit mode.
func (f *SieveFilter) Mode() EmitMode { return f.mode }
