package analysis

import "errors"

// ErrNotFilled is returned by Rewind before the buffer holds the current input.
var ErrNotFilled = errors.New("token buffer not filled")

// bufferedFilter drains its input completely on the first pull, records the
// scripts seen and decides once whether the buffered tokens are replayed.
//
// Lifecycle per input: unfilled -> filled (cursor at 0) -> exhausted. Reset
// returns to unfilled; Rewind moves the cursor back to 0 without touching the
// input.
type bufferedFilter struct {
	in       TokenStream
	classify func(Token) ScriptSet
	decide   func(ScriptSet) bool

	filled  bool
	tokens  []Token
	cursor  int
	scripts ScriptSet
	emit    bool
	end     EndState
}

func newBufferedFilter(in TokenStream, classify func(Token) ScriptSet, decide func(ScriptSet) bool) bufferedFilter {
	return bufferedFilter{
		in:       in,
		classify: classify,
		decide:   decide,
	}
}

// fill runs the first pass. The decision is taken only after the input and
// its end state have been consumed in full.
func (f *bufferedFilter) fill() error {
	tokens := f.tokens[:0]
	var scripts ScriptSet
	for {
		tok, ok, err := f.in.Next()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		tokens = append(tokens, tok)
		scripts |= f.classify(tok)
	}
	end, err := f.in.End()
	if err != nil {
		return err
	}

	f.tokens = tokens
	f.scripts = scripts
	f.end = end
	f.emit = f.decide(scripts)
	f.cursor = 0
	f.filled = true
	return nil
}

// Next returns the buffered tokens in input order if the stream is emitted,
// and nothing otherwise.
func (f *bufferedFilter) Next() (Token, bool, error) {
	if !f.filled {
		if err := f.fill(); err != nil {
			return Token{}, false, err
		}
	}
	if !f.emit || f.cursor >= len(f.tokens) {
		return Token{}, false, nil
	}
	tok := f.tokens[f.cursor]
	f.cursor++
	return tok, true, nil
}

// End returns the end state captured from the input.
func (f *bufferedFilter) End() (EndState, error) {
	if !f.filled {
		if err := f.fill(); err != nil {
			return EndState{}, err
		}
	}
	return f.end, nil
}

// Reset resets the input and discards everything buffered for the previous one.
func (f *bufferedFilter) Reset() error {
	if err := f.in.Reset(); err != nil {
		return err
	}
	clear(f.tokens)
	f.tokens = f.tokens[:0]
	f.filled = false
	f.cursor = 0
	f.scripts = ScriptNone
	f.emit = false
	f.end = EndState{}
	return nil
}

// Rewind replays the buffered tokens from the start without pulling the input.
func (f *bufferedFilter) Rewind() error {
	if !f.filled {
		return ErrNotFilled
	}
	f.cursor = 0
	return nil
}

// Scripts returns the scripts seen in the current input. It is ScriptNone
// until the buffer has been filled.
func (f *bufferedFilter) Scripts() ScriptSet { return f.scripts }

// Emitting reports whether the current input is passed through.
func (f *bufferedFilter) Emitting() bool { return f.filled && f.emit }

// Buffered returns the number of tokens held for the current input.
func (f *bufferedFilter) Buffered() int { return len(f.tokens) }
