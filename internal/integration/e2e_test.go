package integration

import (
	"errors"
	"testing"

	"cjksieve/internal/analysis"
	"cjksieve/internal/config"
	"cjksieve/internal/indexing"
	"cjksieve/internal/testutil"
)

func TestE2E_RouteTitlesByScript(t *testing.T) {
	w := testutil.CreatePopulatedWriter(t)
	docs := testutil.SampleDocuments()

	if w.DocCount() != len(docs) {
		t.Fatalf("DocCount = %d, want %d", w.DocCount(), len(docs))
	}

	tests := []struct {
		field   string
		present []string
		absent  []string
	}{
		{"title_ja", []string{"マンガ", "ラーメン", "入"}, []string{"한국사", "中", "introduction", "manga"}},
		{"title_ko", []string{"한국사", "壇", "君"}, []string{"マンガ", "中"}},
		{"title_zh", []string{"中", "国", "研"}, []string{"日", "壇", "マンガ"}},
		{"title_latn", []string{"introduction", "engines", "manga", "guide"}, []string{"マンガ", "한국사"}},
		{"title", []string{"マンガ", "한국사", "中", "introduction"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			terms := testutil.Terms(w, tt.field)
			for _, term := range tt.present {
				if !terms[term] {
					t.Errorf("term %q missing from %s", term, tt.field)
				}
			}
			for _, term := range tt.absent {
				if terms[term] {
					t.Errorf("term %q should not be in %s", term, tt.field)
				}
			}
		})
	}
}

func TestE2E_FieldStats(t *testing.T) {
	w := testutil.CreatePopulatedWriter(t)

	stats := make(map[string]indexing.FieldStats)
	for _, s := range w.Stats() {
		stats[s.Field] = s
	}

	// Six documents, one with two titles. Docs counts documents, Suppressed
	// counts values.
	want := map[string]struct{ docs, suppressed int }{
		"title":      {6, 0},
		"title_ja":   {3, 4},
		"title_ko":   {1, 6},
		"title_zh":   {1, 6},
		"title_latn": {2, 5},
	}
	for field, exp := range want {
		s, ok := stats[field]
		if !ok {
			t.Errorf("no stats for %s", field)
			continue
		}
		if s.Docs != exp.docs || s.Suppressed != exp.suppressed {
			t.Errorf("%s: docs=%d suppressed=%d, want docs=%d suppressed=%d",
				field, s.Docs, s.Suppressed, exp.docs, exp.suppressed)
		}
	}
}

func TestE2E_ConfigFile(t *testing.T) {
	path := testutil.WriteConfig(t, `
log_level = "debug"

[analyzers.text_cjk]
tokenizer = "standard"
filters = [
  { type = "width" },
  { type = "cjk_hopper", scripts = ["han", "hiragana", "katakana", "hangul"] },
]

[analyzers.text_ws]
tokenizer = "whitespace"
filters = [ { type = "cjk_sieve", emit_if = "no_cjk" }, { type = "lowercase" } ]

[[fields]]
name = "body_cjk"
source = "body"
analyzer = "text_cjk"
positions = true

[[fields]]
name = "body_other"
source = "body"
analyzer = "text_ws"
`)

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	reg, err := cfg.Registry()
	if err != nil {
		t.Fatalf("Registry: %v", err)
	}
	w, err := indexing.NewWriter(cfg.Fields, reg, indexing.Options{})
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}
	testutil.IngestDocuments(t, w, []indexing.Document{
		{Fields: map[string]interface{}{"id": "a", "body": "ｶﾀｶﾅ text"}},
		{Fields: map[string]interface{}{"id": "b", "body": "Plain Text"}},
	})

	cjk := testutil.Terms(w, "body_cjk")
	if !cjk["カタカナ"] || !cjk["text"] {
		t.Errorf("body_cjk terms = %v, want folded katakana and text", cjk)
	}
	if cjk["plain"] || cjk["Plain"] {
		t.Errorf("body_cjk should not index latin-only input: %v", cjk)
	}

	other := testutil.Terms(w, "body_other")
	if !other["plain"] || !other["text"] || len(other) != 2 {
		t.Errorf("body_other terms = %v, want [plain text]", other)
	}
}

func TestE2E_BadConfigFailsEarly(t *testing.T) {
	path := testutil.WriteConfig(t, `
[analyzers.broken]
filters = [ { type = "cjk_sieve" } ]
`)
	_, err := config.Load(path)
	if !errors.Is(err, analysis.ErrConfig) || !errors.Is(err, analysis.ErrMissingParam) {
		t.Fatalf("Load error = %v, want missing parameter config error", err)
	}
}
