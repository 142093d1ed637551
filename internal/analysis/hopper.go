package analysis

// HopperFilter is the tag-driven sibling of SieveFilter. It passes an input
// through when any token is tagged with one of the selected scripts, or, if
// emitNonCJK is set, when any token carries a generic tag. Term text is never
// scanned, so it relies entirely on a script-aware tokenizer.
type HopperFilter struct {
	bufferedFilter
	scripts    ScriptSet
	emitNonCJK bool
}

// NewHopperFilter wraps in with a hopper emitting inputs that contain any of
// scripts, and inputs with non-CJK tokens when emitNonCJK is true.
func NewHopperFilter(in TokenStream, scripts ScriptSet, emitNonCJK bool) *HopperFilter {
	f := &HopperFilter{
		scripts:    scripts & ScriptCJK,
		emitNonCJK: emitNonCJK,
	}
	f.bufferedFilter = newBufferedFilter(in, classifyTokenType, f.allows)
	return f
}

func (f *HopperFilter) allows(seen ScriptSet) bool {
	if seen.HasAny(f.scripts) {
		return true
	}
	return f.emitNonCJK && seen.HasAny(ScriptOther)
}
