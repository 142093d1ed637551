package analysis

import (
	"unicode"
	"unicode/utf8"

	"github.com/clipperhouse/uax29/v2/words"
)

// StandardTokenizer segments text on Unicode (UAX #29) word boundaries and
// tags each token with its script. Han and Hiragana words are split into one
// token per character; Katakana and Hangul runs are kept whole.
type StandardTokenizer struct {
	baseTokenizer
}

// NewStandardTokenizer creates a new StandardTokenizer.
func NewStandardTokenizer() *StandardTokenizer {
	t := &StandardTokenizer{}
	t.split = standardSplit
	return t
}

func standardSplit(text string) []Token {
	var tokens []Token
	offset := 0
	seg := words.FromString(text)
	for seg.Next() {
		word := seg.Value()
		start := offset
		offset += len(word)

		if !hasWordRune(word) {
			continue
		}

		r, _ := utf8.DecodeRuneInString(word)
		switch ScriptOf(r) {
		case ScriptHan, ScriptHiragana:
			// One token per character.
			for i := 0; i < len(word); {
				c, size := utf8.DecodeRuneInString(word[i:])
				i += size
				if !isWordRune(c) {
					continue
				}
				tokens = append(tokens, Token{
					Term:              word[i-size : i],
					Type:              runeType(c),
					StartByte:         start + i - size,
					EndByte:           start + i,
					PositionIncrement: 1,
				})
			}
		default:
			tokens = append(tokens, Token{
				Term:              word,
				Type:              wordType(word, r),
				StartByte:         start,
				EndByte:           offset,
				PositionIncrement: 1,
			})
		}
	}
	return tokens
}

func runeType(r rune) string {
	switch ScriptOf(r) {
	case ScriptHan:
		return TypeIdeographic
	case ScriptHiragana:
		return TypeHiragana
	case ScriptKatakana:
		return TypeKatakana
	case ScriptHangul:
		return TypeHangul
	}
	if unicode.IsDigit(r) {
		return TypeNum
	}
	return TypeAlphaNum
}

// wordType tags a whole word by its first rune. A word made of digits and
// separators only is numeric.
func wordType(word string, first rune) string {
	if typ := runeType(first); typ != TypeNum {
		return typ
	}
	for _, r := range word {
		if unicode.IsLetter(r) {
			return TypeAlphaNum
		}
	}
	return TypeNum
}

func hasWordRune(s string) bool {
	for _, r := range s {
		if isWordRune(r) {
			return true
		}
	}
	return false
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
