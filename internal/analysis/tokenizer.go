package analysis

import (
	"errors"
	"io"
)

// ErrNoReader is returned when a tokenizer is pulled without an input.
var ErrNoReader = errors.New("tokenizer has no reader")

// baseTokenizer holds the reader plumbing shared by all tokenizers. The input
// is read and segmented on the first Next after Reset.
type baseTokenizer struct {
	reader  io.Reader
	split   func(text string) []Token
	loaded  bool
	tokens  []Token
	next    int
	textLen int
}

func (t *baseTokenizer) SetReader(r io.Reader) { t.reader = r }

func (t *baseTokenizer) load() error {
	if t.reader == nil {
		return ErrNoReader
	}
	data, err := io.ReadAll(t.reader)
	if err != nil {
		return err
	}
	text := string(data)
	t.tokens = t.split(text)
	t.textLen = len(text)
	t.next = 0
	t.loaded = true
	return nil
}

func (t *baseTokenizer) Next() (Token, bool, error) {
	if !t.loaded {
		if err := t.load(); err != nil {
			return Token{}, false, err
		}
	}
	if t.next >= len(t.tokens) {
		return Token{}, false, nil
	}
	tok := t.tokens[t.next]
	t.next++
	return tok, true, nil
}

func (t *baseTokenizer) End() (EndState, error) {
	return EndState{FinalOffset: t.textLen}, nil
}

func (t *baseTokenizer) Reset() error {
	t.loaded = false
	t.tokens = nil
	t.next = 0
	t.textLen = 0
	return nil
}
