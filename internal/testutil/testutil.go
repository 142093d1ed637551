package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"cjksieve/internal/analysis"
	"cjksieve/internal/config"
	"cjksieve/internal/indexing"
)

// WriteConfig writes a TOML config into a temporary directory and returns
// its path.
func WriteConfig(t testing.TB, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cjksieve.toml")
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

// DefaultRegistry returns the registry of the default config: the built-in
// analyzers plus one sieve_<mode> analyzer per emit mode.
func DefaultRegistry(t testing.TB) *analysis.Registry {
	t.Helper()
	reg, err := config.Default().Registry()
	if err != nil {
		t.Fatalf("default registry: %v", err)
	}
	return reg
}

// SampleDocuments returns titles in Japanese, Korean, Chinese and English.
func SampleDocuments() []indexing.Document {
	return []indexing.Document{
		{Fields: map[string]interface{}{
			"id":    "doc-ja-1",
			"title": "日本マンガを知るためのブック・ガイド",
		}},
		{Fields: map[string]interface{}{
			"id":    "doc-ja-2",
			"title": "ラーメンの歴史",
		}},
		{Fields: map[string]interface{}{
			"id":    "doc-ko-1",
			"title": "한국사 의 壇君 인식",
		}},
		{Fields: map[string]interface{}{
			"id":    "doc-zh-1",
			"title": "中国古代史研究",
		}},
		{Fields: map[string]interface{}{
			"id":    "doc-en-1",
			"title": "Introduction to Search Engines",
		}},
		{Fields: map[string]interface{}{
			"id":    "doc-multi-1",
			"title": []interface{}{"Manga Guide", "マンガ入門"},
		}},
	}
}

// IngestDocuments indexes a set of documents into a writer.
func IngestDocuments(t testing.TB, w *indexing.Writer, docs []indexing.Document) {
	t.Helper()
	if err := w.AddDocuments(docs); err != nil {
		t.Fatalf("AddDocuments: %v", err)
	}
}

// CreatePopulatedWriter creates a writer over the default fields with the
// sample documents already ingested.
func CreatePopulatedWriter(t testing.TB) *indexing.Writer {
	t.Helper()
	cfg := config.Default()
	w, err := indexing.NewWriter(cfg.Fields, DefaultRegistry(t), indexing.Options{})
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}
	IngestDocuments(t, w, SampleDocuments())
	return w
}

// Terms returns the set of terms indexed for field.
func Terms(w *indexing.Writer, field string) map[string]bool {
	out := make(map[string]bool)
	for term := range w.Buffer().InvertedIndex[field] {
		out[term] = true
	}
	return out
}
