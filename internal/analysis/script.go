package analysis

import (
	"strings"
	"unicode"
)

// ScriptSet is a set of writing systems seen in a token or a stream.
type ScriptSet uint8

const (
	ScriptHan ScriptSet = 1 << iota
	ScriptHiragana
	ScriptKatakana
	ScriptHangul

	// ScriptOther marks a token with no CJK type tag. Only the hopper
	// filter's type-based classification sets it.
	ScriptOther

	ScriptNone ScriptSet = 0

	// ScriptCJK is the union of the four tracked CJK scripts.
	ScriptCJK = ScriptHan | ScriptHiragana | ScriptKatakana | ScriptHangul
)

var scriptNames = []struct {
	set  ScriptSet
	name string
}{
	{ScriptHan, "han"},
	{ScriptHiragana, "hiragana"},
	{ScriptKatakana, "katakana"},
	{ScriptHangul, "hangul"},
	{ScriptOther, "other"},
}

// Has reports whether every script in o is in s.
func (s ScriptSet) Has(o ScriptSet) bool { return s&o == o }

// HasAny reports whether s and o share at least one script.
func (s ScriptSet) HasAny(o ScriptSet) bool { return s&o != 0 }

// IsCJK reports whether s contains any of the four CJK scripts.
func (s ScriptSet) IsCJK() bool { return s&ScriptCJK != 0 }

// String returns the script names joined by "|", or "none".
func (s ScriptSet) String() string {
	if s == ScriptNone {
		return "none"
	}
	var parts []string
	for _, sn := range scriptNames {
		if s&sn.set != 0 {
			parts = append(parts, sn.name)
		}
	}
	return strings.Join(parts, "|")
}

// basicLatin caches the script of every codepoint below 0x80.
var basicLatin [128]ScriptSet

func init() {
	for i := range basicLatin {
		basicLatin[i] = lookupScript(rune(i))
	}
}

// ScriptOf returns the tracked script of r, or ScriptNone.
func ScriptOf(r rune) ScriptSet {
	if r >= 0 && int(r) < len(basicLatin) {
		return basicLatin[r]
	}
	return lookupScript(r)
}

func lookupScript(r rune) ScriptSet {
	switch {
	case unicode.Is(unicode.Han, r):
		return ScriptHan
	case unicode.Is(unicode.Hiragana, r):
		return ScriptHiragana
	case unicode.Is(unicode.Katakana, r):
		return ScriptKatakana
	case unicode.Is(unicode.Hangul, r):
		return ScriptHangul
	default:
		return ScriptNone
	}
}

// ScanScripts returns the union of the scripts of every codepoint in text.
func ScanScripts(text string) ScriptSet {
	var s ScriptSet
	for _, r := range text {
		s |= ScriptOf(r)
		if s == ScriptCJK {
			break
		}
	}
	return s
}

// TypeScripts maps a script-aware type tag to its script.
// ok is false for generic tags.
func TypeScripts(typ string) (s ScriptSet, ok bool) {
	switch typ {
	case TypeIdeographic:
		return ScriptHan, true
	case TypeHiragana:
		return ScriptHiragana, true
	case TypeKatakana:
		return ScriptKatakana, true
	case TypeHangul:
		return ScriptHangul, true
	default:
		return ScriptNone, false
	}
}

// ClassifyToken returns the scripts of tok. The type tag is trusted when it
// names a script; otherwise every codepoint of the term is scanned.
func ClassifyToken(tok Token) ScriptSet {
	if s, ok := TypeScripts(tok.Type); ok {
		return s
	}
	return ScanScripts(tok.Term)
}

// classifyTokenType is the tag-only classification used by the hopper
// filter. Generic tags count as ScriptOther.
func classifyTokenType(tok Token) ScriptSet {
	if s, ok := TypeScripts(tok.Type); ok {
		return s
	}
	return ScriptOther
}

// ParseScriptSet parses a comma separated list of script names such as
// "han,hiragana". Names are case-insensitive; "cjk" means all four.
func ParseScriptSet(list string) (ScriptSet, error) {
	var s ScriptSet
	for _, name := range strings.Split(list, ",") {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		if name == "cjk" {
			s |= ScriptCJK
			continue
		}
		found := false
		for _, sn := range scriptNames[:4] {
			if sn.name == name {
				s |= sn.set
				found = true
				break
			}
		}
		if !found {
			return ScriptNone, configErrorf(ErrInvalidParam,
				"unknown script %q (must be one of: han, hiragana, katakana, hangul, cjk)", name)
		}
	}
	return s, nil
}
