package analysis

import "io"

// Token type tags. The four script tags are set by script-aware tokenizers;
// everything else is generic and carries no script information.
const (
	TypeIdeographic = "<IDEOGRAPHIC>"
	TypeHiragana    = "<HIRAGANA>"
	TypeKatakana    = "<KATAKANA>"
	TypeHangul      = "<HANGUL>"
	TypeAlphaNum    = "<ALPHANUM>"
	TypeNum         = "<NUM>"
	TypeWord        = "<WORD>"
)

// Token represents a single token produced by a tokenizer.
type Token struct {
	Term              string
	Type              string
	StartByte         int
	EndByte           int
	PositionIncrement int

	// Position is the absolute position, assigned by the analyzer when the
	// stream is drained. Streams themselves only deal in increments.
	Position int
}

// EndState is the trailing metadata a stream exposes after its last token.
type EndState struct {
	// FinalOffset is the byte length of the consumed input.
	FinalOffset int
}

// TokenStream is a pull-based producer of tokens.
//
// The consumer calls Reset, then Next until it reports ok == false, then End.
// A stream instance is reused for many inputs but is never shared between
// goroutines.
type TokenStream interface {
	// Next returns the next token. ok is false once the stream is exhausted.
	Next() (tok Token, ok bool, err error)

	// End returns the end-of-stream state. Only meaningful after exhaustion.
	End() (EndState, error)

	// Reset prepares the stream for a new input.
	Reset() error
}

// Tokenizer is the head of a chain: a TokenStream reading from text input.
type Tokenizer interface {
	TokenStream

	// SetReader sets the input consumed after the next Reset.
	SetReader(r io.Reader)
}

// Analyzer processes text into a stream of tokens.
// Implementations MUST be safe for concurrent use.
type Analyzer interface {
	// Analyze tokenizes the input text and returns tokens with positions.
	Analyze(field string, text string) ([]Token, error)
}

// Drain pulls every remaining token from ts and then calls End.
// Absolute positions are assigned from position increments.
func Drain(ts TokenStream) ([]Token, EndState, error) {
	var tokens []Token
	pos := -1
	for {
		tok, ok, err := ts.Next()
		if err != nil {
			return nil, EndState{}, err
		}
		if !ok {
			break
		}
		pos += tok.PositionIncrement
		if pos < 0 {
			pos = 0
		}
		tok.Position = pos
		tokens = append(tokens, tok)
	}
	end, err := ts.End()
	if err != nil {
		return nil, EndState{}, err
	}
	return tokens, end, nil
}
