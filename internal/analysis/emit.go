package analysis

import (
	"strings"
)

// EmitMode selects the condition under which a sieve filter passes a whole
// stream through.
type EmitMode uint8

const (
	// EmitJapanese emits iff Hiragana or Katakana is present.
	EmitJapanese EmitMode = iota
	// EmitHangul emits iff Hangul is present.
	EmitHangul
	// EmitHanSolo emits iff Han is present and none of Hangul, Hiragana or
	// Katakana is.
	EmitHanSolo
	// EmitCJ emits iff Han, Hiragana or Katakana is present and Hangul is not.
	EmitCJ
	// EmitAnyCJK emits iff any of the four CJK scripts is present.
	EmitAnyCJK
	// EmitNoCJK emits iff none of the four CJK scripts is present.
	EmitNoCJK

	numEmitModes
)

var emitRules = [numEmitModes]struct {
	key   string
	allow func(ScriptSet) bool
}{
	EmitJapanese: {"japanese", func(s ScriptSet) bool {
		return s.HasAny(ScriptHiragana | ScriptKatakana)
	}},
	EmitHangul: {"hangul", func(s ScriptSet) bool {
		return s.HasAny(ScriptHangul)
	}},
	EmitHanSolo: {"han_solo", func(s ScriptSet) bool {
		return s.HasAny(ScriptHan) && !s.HasAny(ScriptHangul|ScriptHiragana|ScriptKatakana)
	}},
	EmitCJ: {"cj", func(s ScriptSet) bool {
		return s.HasAny(ScriptHan|ScriptHiragana|ScriptKatakana) && !s.HasAny(ScriptHangul)
	}},
	EmitAnyCJK: {"any_cjk", func(s ScriptSet) bool {
		return s.IsCJK()
	}},
	EmitNoCJK: {"no_cjk", func(s ScriptSet) bool {
		return !s.IsCJK()
	}},
}

// EmitModes returns every mode in declaration order.
func EmitModes() []EmitMode {
	modes := make([]EmitMode, numEmitModes)
	for i := range modes {
		modes[i] = EmitMode(i)
	}
	return modes
}

// Allows reports whether a stream with scripts s is emitted under m.
// An invalid mode never emits.
func (m EmitMode) Allows(s ScriptSet) bool {
	if !m.Valid() {
		return false
	}
	return emitRules[m].allow(s)
}

// Valid reports whether m is one of the declared modes.
func (m EmitMode) Valid() bool { return m < numEmitModes }

// String returns the configuration key of m.
func (m EmitMode) String() string {
	if !m.Valid() {
		return "invalid"
	}
	return emitRules[m].key
}

// emitModeVocabulary lists the recognized keys, for error messages.
func emitModeVocabulary() string {
	keys := make([]string, numEmitModes)
	for i := range emitRules {
		keys[i] = emitRules[i].key
	}
	return strings.Join(keys, ", ")
}

// ParseEmitMode maps a configuration key such as "japanese" to its mode.
// Missing and unknown keys are configuration errors.
func ParseEmitMode(key string) (EmitMode, error) {
	if key == "" {
		return 0, configErrorf(ErrMissingParam, "%q (must be one of: %s)", ParamEmitIf, emitModeVocabulary())
	}
	for i := range emitRules {
		if emitRules[i].key == key {
			return EmitMode(i), nil
		}
	}
	return 0, configErrorf(ErrInvalidParam, "%q = %q (must be one of: %s)", ParamEmitIf, key, emitModeVocabulary())
}
