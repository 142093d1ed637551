package analysis

import (
	"io"
	"strings"
	"sync"
)

// TokenizerFactory creates a fresh tokenizer.
type TokenizerFactory func() Tokenizer

// Tokenizer names accepted by ChainDef.
const (
	TokenizerStandard   = "standard"
	TokenizerWhitespace = "whitespace"
	TokenizerKeyword    = "keyword"
)

var tokenizerFactories = map[string]TokenizerFactory{
	TokenizerStandard:   func() Tokenizer { return NewStandardTokenizer() },
	TokenizerWhitespace: func() Tokenizer { return NewWhitespaceTokenizer() },
	TokenizerKeyword:    func() Tokenizer { return NewKeywordTokenizer() },
}

// ChainAnalyzer runs a tokenizer followed by a sequence of filters.
//
// Stream chains are expensive to set up and carry per-input buffers, so they
// are pooled: each Analyze call takes a chain, resets it for the new input
// and returns it afterwards. A chain is never used by two calls at once.
type ChainAnalyzer struct {
	newTokenizer TokenizerFactory
	filters      []FilterFactory
	pool         sync.Pool
}

type chain struct {
	tokenizer Tokenizer
	stream    TokenStream
}

// NewChainAnalyzer creates an analyzer from a tokenizer factory and filter
// factories, applied in order.
func NewChainAnalyzer(newTokenizer TokenizerFactory, filters ...FilterFactory) *ChainAnalyzer {
	a := &ChainAnalyzer{
		newTokenizer: newTokenizer,
		filters:      filters,
	}
	a.pool.New = func() any { return a.build() }
	return a
}

func (a *ChainAnalyzer) build() *chain {
	tok := a.newTokenizer()
	var ts TokenStream = tok
	for _, f := range a.filters {
		ts = f(ts)
	}
	return &chain{tokenizer: tok, stream: ts}
}

// Analyze tokenizes text through the chain.
func (a *ChainAnalyzer) Analyze(field string, text string) ([]Token, error) {
	tokens, _, err := a.AnalyzeReader(field, strings.NewReader(text))
	return tokens, err
}

// AnalyzeReader tokenizes everything read from r through the chain and also
// returns the end state. Reader errors are returned unchanged.
func (a *ChainAnalyzer) AnalyzeReader(_ string, r io.Reader) ([]Token, EndState, error) {
	c := a.pool.Get().(*chain)
	defer a.release(c)

	c.tokenizer.SetReader(r)
	if err := c.stream.Reset(); err != nil {
		return nil, EndState{}, err
	}
	return Drain(c.stream)
}

// release drops the reader and everything buffered for the last input before
// the chain goes back to the pool. A chain that fails to reset is discarded.
func (a *ChainAnalyzer) release(c *chain) {
	c.tokenizer.SetReader(nil)
	if err := c.stream.Reset(); err != nil {
		return
	}
	a.pool.Put(c)
}
