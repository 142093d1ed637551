package analysis

import "strings"

// WhitespaceTokenizer splits text on whitespace without any normalization.
type WhitespaceTokenizer struct {
	baseTokenizer
}

// NewWhitespaceTokenizer creates a new WhitespaceTokenizer.
func NewWhitespaceTokenizer() *WhitespaceTokenizer {
	t := &WhitespaceTokenizer{}
	t.split = whitespaceSplit
	return t
}

func whitespaceSplit(text string) []Token {
	fields := strings.Fields(text)
	tokens := make([]Token, 0, len(fields))

	searchFrom := 0
	for _, f := range fields {
		idx := strings.Index(text[searchFrom:], f)
		startByte := searchFrom + idx
		endByte := startByte + len(f)

		tokens = append(tokens, Token{
			Term:              f,
			Type:              TypeWord,
			StartByte:         startByte,
			EndByte:           endByte,
			PositionIncrement: 1,
		})
		searchFrom = endByte
	}

	return tokens
}
