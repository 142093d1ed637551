package analysis

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"
)

var (
	hiraganaAndLatin = []Token{tk("い", TypeHiragana, 0), tk("chars", TypeAlphaNum, 4)}
	pureHan          = []Token{tk("壇", TypeIdeographic, 0), tk("君", TypeIdeographic, 3)}
	hangulAndHan     = []Token{tk("한국사", TypeHangul, 0), tk("壇", TypeIdeographic, 10)}
	noCJK            = []Token{tk("no", TypeAlphaNum, 0), tk("cjk", TypeAlphaNum, 3), tk("42", TypeNum, 7)}
	japaneseMix      = []Token{
		tk("日", TypeIdeographic, 0), tk("マンガ", TypeKatakana, 3), tk("を", TypeHiragana, 12),
	}
	japaneseMixHangul = append(append([]Token{}, japaneseMix...), tk("한국", TypeHangul, 16))
)

func TestSieveFilter_TruthTable(t *testing.T) {
	tests := []struct {
		name   string
		tokens []Token
		mode   EmitMode
		emit   bool
	}{
		{"hiragana japanese", hiraganaAndLatin, EmitJapanese, true},
		{"pure han han_solo", pureHan, EmitHanSolo, true},
		{"pure han hangul", pureHan, EmitHangul, false},
		{"hangul+han han_solo", hangulAndHan, EmitHanSolo, false},
		{"hangul+han hangul", hangulAndHan, EmitHangul, true},
		{"no cjk no_cjk", noCJK, EmitNoCJK, true},
		{"no cjk any_cjk", noCJK, EmitAnyCJK, false},
		{"japanese mix cj", japaneseMix, EmitCJ, true},
		{"japanese mix + hangul cj", japaneseMixHangul, EmitCJ, false},
		{"japanese mix japanese", japaneseMix, EmitJapanese, true},
		{"japanese mix han_solo", japaneseMix, EmitHanSolo, false},
		{"pure han cj", pureHan, EmitCJ, true},
		{"pure han japanese", pureHan, EmitJapanese, false},
		{"pure han any_cjk", pureHan, EmitAnyCJK, true},
		{"pure han no_cjk", pureHan, EmitNoCJK, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewSieveFilter(newStub(tt.tokens...), tt.mode)
			got := collect(t, f)
			if tt.emit {
				if !reflect.DeepEqual(got, tt.tokens) {
					t.Errorf("emitted %v, want %v", tokenTerms(got), tokenTerms(tt.tokens))
				}
			} else if len(got) != 0 {
				t.Errorf("emitted %v, want nothing", tokenTerms(got))
			}
			if f.Emitting() != tt.emit {
				t.Errorf("Emitting() = %v, want %v", f.Emitting(), tt.emit)
			}
		})
	}
}

func TestSieveFilter_ScriptsFromTermText(t *testing.T) {
	// Generic tags force the codepoint scan.
	tokens := []Token{tk("マンガ", TypeWord, 0), tk("is", TypeWord, 10), tk("katakana", TypeWord, 13)}

	f := NewSieveFilter(newStub(tokens...), EmitJapanese)
	if got := collect(t, f); len(got) != 3 {
		t.Fatalf("emitted %d tokens, want 3", len(got))
	}
	if f.Scripts() != ScriptKatakana {
		t.Errorf("Scripts() = %v, want katakana", f.Scripts())
	}

	f = NewSieveFilter(newStub(tokens...), EmitNoCJK)
	if got := collect(t, f); len(got) != 0 {
		t.Errorf("no_cjk emitted %v", tokenTerms(got))
	}
}

func TestSieveFilter_Fidelity(t *testing.T) {
	tokens := []Token{
		tk("日本", TypeIdeographic, 0),
		{Term: "にほん", Type: TypeHiragana, StartByte: 0, EndByte: 6, PositionIncrement: 0},
		tk("books", TypeAlphaNum, 7),
	}
	f := NewSieveFilter(newStub(tokens...), EmitJapanese)
	got := collect(t, f)
	if !reflect.DeepEqual(got, tokens) {
		t.Errorf("got %+v, want %+v", got, tokens)
	}
}

func TestSieveFilter_DrainsBeforeFirstToken(t *testing.T) {
	stub := newStub(japaneseMix...)
	f := NewSieveFilter(stub, EmitCJ)

	if _, ok, err := f.Next(); err != nil || !ok {
		t.Fatalf("Next() = ok %v err %v", ok, err)
	}
	// All tokens plus the exhaustion pull.
	if stub.pulls != len(japaneseMix)+1 {
		t.Errorf("upstream pulls after first Next = %d, want %d", stub.pulls, len(japaneseMix)+1)
	}
	if f.Buffered() != len(japaneseMix) {
		t.Errorf("Buffered() = %d, want %d", f.Buffered(), len(japaneseMix))
	}
}

func TestSieveFilter_Rewind(t *testing.T) {
	stub := newStub(pureHan...)
	f := NewSieveFilter(stub, EmitHanSolo)

	if err := f.Rewind(); !errors.Is(err, ErrNotFilled) {
		t.Fatalf("Rewind before fill = %v, want ErrNotFilled", err)
	}

	first := collect(t, f)
	pulls := stub.pulls
	if err := f.Rewind(); err != nil {
		t.Fatal(err)
	}
	second := collect(t, f)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("replay differs: %v vs %v", tokenTerms(first), tokenTerms(second))
	}
	if stub.pulls != pulls {
		t.Errorf("Rewind pulled upstream: %d pulls, want %d", stub.pulls, pulls)
	}

	// Rewind mid-iteration.
	if err := f.Rewind(); err != nil {
		t.Fatal(err)
	}
	if _, _, err := f.Next(); err != nil {
		t.Fatal(err)
	}
	if err := f.Rewind(); err != nil {
		t.Fatal(err)
	}
	if got := collect(t, f); len(got) != len(pureHan) {
		t.Errorf("after mid rewind got %d tokens, want %d", len(got), len(pureHan))
	}
}

func TestSieveFilter_ResetStartsNewInput(t *testing.T) {
	stub := newStub(hiraganaAndLatin...)
	stub.queue = [][]Token{hangulAndHan, japaneseMix}
	f := NewSieveFilter(stub, EmitJapanese)

	if got := collect(t, f); len(got) != len(hiraganaAndLatin) {
		t.Fatalf("input 1: got %d tokens, want %d", len(got), len(hiraganaAndLatin))
	}

	if err := f.Reset(); err != nil {
		t.Fatal(err)
	}
	if f.Scripts() != ScriptNone || f.Emitting() || f.Buffered() != 0 {
		t.Errorf("state not cleared by Reset: scripts=%v emitting=%v buffered=%d", f.Scripts(), f.Emitting(), f.Buffered())
	}
	if err := f.Rewind(); !errors.Is(err, ErrNotFilled) {
		t.Errorf("Rewind after Reset = %v, want ErrNotFilled", err)
	}
	if got := collect(t, f); len(got) != 0 {
		t.Fatalf("input 2: got %v, want nothing", tokenTerms(got))
	}
	if f.Scripts() != ScriptHangul|ScriptHan {
		t.Errorf("input 2 scripts = %v", f.Scripts())
	}

	if err := f.Reset(); err != nil {
		t.Fatal(err)
	}
	if got := collect(t, f); !reflect.DeepEqual(got, japaneseMix) {
		t.Fatalf("input 3: got %v, want %v", tokenTerms(got), tokenTerms(japaneseMix))
	}
	if stub.resets != 2 {
		t.Errorf("upstream resets = %d, want 2", stub.resets)
	}
}

func TestSieveFilter_EndStatePreserved(t *testing.T) {
	for _, mode := range []EmitMode{EmitHanSolo, EmitHangul} {
		stub := newStub(pureHan...)
		f := NewSieveFilter(stub, mode)
		collect(t, f)
		end, err := f.End()
		if err != nil {
			t.Fatal(err)
		}
		if end.FinalOffset != stub.final {
			t.Errorf("%v: FinalOffset = %d, want %d", mode, end.FinalOffset, stub.final)
		}
	}
}

func TestSieveFilter_EndWithoutPull(t *testing.T) {
	stub := newStub(noCJK...)
	f := NewSieveFilter(stub, EmitNoCJK)
	end, err := f.End()
	if err != nil {
		t.Fatal(err)
	}
	if end.FinalOffset != stub.final {
		t.Errorf("FinalOffset = %d, want %d", end.FinalOffset, stub.final)
	}
	if got := collect(t, f); len(got) != len(noCJK) {
		t.Errorf("got %d tokens after End, want %d", len(got), len(noCJK))
	}
}

func TestSieveFilter_UpstreamErrorPropagates(t *testing.T) {
	errRead := errors.New("read failed")
	stub := newStub(japaneseMix...)
	stub.failAt = 2
	stub.err = errRead

	f := NewSieveFilter(stub, EmitAnyCJK)
	_, ok, err := f.Next()
	if !errors.Is(err, errRead) {
		t.Fatalf("Next error = %v, want %v", err, errRead)
	}
	if ok {
		t.Error("ok = true on error")
	}
	if f.Emitting() {
		t.Error("Emitting() = true after failed fill")
	}

	stub.failAt = -1
	if err := f.Reset(); err != nil {
		t.Fatal(err)
	}
	if got := collect(t, f); len(got) != len(japaneseMix) {
		t.Errorf("after reset got %d tokens, want %d", len(got), len(japaneseMix))
	}
}

func TestSieveFilter_UpstreamEndErrorPropagates(t *testing.T) {
	errEnd := errors.New("end failed")
	stub := newStub(japaneseMix...)
	stub.endErr = errEnd

	f := NewSieveFilter(stub, EmitAnyCJK)
	if _, ok, err := f.Next(); !errors.Is(err, errEnd) || ok {
		t.Fatalf("Next = ok %v, err %v, want %v", ok, err, errEnd)
	}
	if f.Emitting() {
		t.Error("Emitting() = true after failed End")
	}

	g := NewSieveFilter(newStub(japaneseMix...), EmitAnyCJK)
	g.in.(*stubStream).endErr = errEnd
	if _, err := g.End(); !errors.Is(err, errEnd) {
		t.Fatalf("End error = %v, want %v", err, errEnd)
	}

	stub.endErr = nil
	if err := f.Reset(); err != nil {
		t.Fatal(err)
	}
	if got := collect(t, f); len(got) != len(japaneseMix) {
		t.Errorf("after reset got %d tokens, want %d", len(got), len(japaneseMix))
	}
}

func TestSieveFilter_EmptyInput(t *testing.T) {
	for _, mode := range EmitModes() {
		f := NewSieveFilter(newStub(), mode)
		if got := collect(t, f); len(got) != 0 {
			t.Errorf("%v: got %d tokens from empty input", mode, len(got))
		}
	}
}

func TestSieveFilter_AllOrNothing(t *testing.T) {
	pool := []Token{
		tk("日", TypeIdeographic, 0), tk("の", TypeHiragana, 0), tk("マンガ", TypeKatakana, 0),
		tk("한국", TypeHangul, 0), tk("abc", TypeAlphaNum, 0), tk("12", TypeNum, 0),
		tk("漢字かな", TypeWord, 0), tk("x", TypeWord, 0),
	}
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 500; i++ {
		n := rng.Intn(8)
		tokens := make([]Token, n)
		for j := range tokens {
			tokens[j] = pool[rng.Intn(len(pool))]
		}
		for _, mode := range EmitModes() {
			first := collect(t, NewSieveFilter(newStub(tokens...), mode))
			if len(first) != 0 && len(first) != n {
				t.Fatalf("%v: emitted %d of %d tokens", mode, len(first), n)
			}
			second := collect(t, NewSieveFilter(newStub(tokens...), mode))
			if !reflect.DeepEqual(first, second) {
				t.Fatalf("%v: non-deterministic output for %v", mode, tokenTerms(tokens))
			}
		}
	}
}

func TestSieveFilter_Mode(t *testing.T) {
	f := NewSieveFilter(newStub(), EmitCJ)
	if f.Mode() != EmitCJ {
		t.Errorf("Mode() = %v, want cj", f.Mode())
	}
}
