package analysis

// KeywordTokenizer passes the entire input as a single token.
type KeywordTokenizer struct {
	baseTokenizer
}

// NewKeywordTokenizer creates a new KeywordTokenizer.
func NewKeywordTokenizer() *KeywordTokenizer {
	t := &KeywordTokenizer{}
	t.split = keywordSplit
	return t
}

func keywordSplit(text string) []Token {
	if text == "" {
		return nil
	}
	return []Token{{
		Term:              text,
		Type:              TypeWord,
		StartByte:         0,
		EndByte:           len(text),
		PositionIncrement: 1,
	}}
}
