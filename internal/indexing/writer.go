package indexing

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"cjksieve/internal/analysis"
)

// Document represents a JSON document to be indexed.
type Document struct {
	Fields map[string]interface{}
}

// ParseDocument decodes a single JSON object into a Document.
func ParseDocument(data []byte) (Document, error) {
	var fields map[string]interface{}
	if err := json.Unmarshal(data, &fields); err != nil {
		return Document{}, fmt.Errorf("decode document: %w", err)
	}
	if fields == nil {
		return Document{}, errors.New("document must be a JSON object")
	}
	return Document{Fields: fields}, nil
}

// Options configures a Writer.
type Options struct {
	// Logger for indexing events. If nil, slog.Default() is used.
	Logger *slog.Logger
}

// Writer analyzes documents field by field into a WriteBuffer.
type Writer struct {
	fields    []FieldDef
	analyzers map[string]analysis.Analyzer
	buffer    *WriteBuffer
	logger    *slog.Logger

	mu     sync.Mutex
	active bool
}

// NewWriter creates a Writer for the given fields. Every analyzer a field
// names is resolved against registry here, so a bad field definition fails
// before the first document.
func NewWriter(fields []FieldDef, registry *analysis.Registry, opts Options) (*Writer, error) {
	if err := ValidateFields(fields); err != nil {
		return nil, err
	}
	analyzers := make(map[string]analysis.Analyzer, len(fields))
	for _, f := range fields {
		a, err := registry.Get(f.Analyzer)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", f.Name, err)
		}
		analyzers[f.Name] = a
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Writer{
		fields:    fields,
		analyzers: analyzers,
		buffer:    NewWriteBuffer(),
		logger:    logger,
		active:    true,
	}, nil
}

// AddDocument analyzes a single document into the write buffer. Every field
// is analyzed before a doc ID is allocated, so a rejected document leaves the
// buffer untouched.
func (w *Writer) AddDocument(doc Document) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.active {
		return ErrWriterNotActive
	}

	externalID, err := extractExternalID(doc)
	if err != nil {
		return err
	}
	if _, exists := w.buffer.ExternalToInternal[externalID]; exists {
		return ErrDuplicateDoc
	}

	var analyzed []analyzedField
	for _, f := range w.fields {
		val, exists := doc.Fields[f.SourceField()]
		if !exists {
			continue
		}
		values, err := textValues(val)
		if err != nil {
			return fmt.Errorf("field %q: %w", f.Name, err)
		}
		af, err := w.analyzeField(f, externalID, values)
		if err != nil {
			return fmt.Errorf("field %q: %w", f.Name, err)
		}
		analyzed = append(analyzed, af)
	}

	docID, err := w.buffer.AllocateDocID(externalID)
	if err != nil {
		return err
	}
	for _, af := range analyzed {
		w.postField(af, docID)
	}
	return nil
}

// AddDocuments analyzes multiple documents into the write buffer.
func (w *Writer) AddDocuments(docs []Document) error {
	for i, doc := range docs {
		if err := w.AddDocument(doc); err != nil {
			return fmt.Errorf("document %d: %w", i, err)
		}
	}
	return nil
}

// DocCount returns the number of documents currently in the write buffer.
func (w *Writer) DocCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.buffer.DocCount
}

// Buffer returns the current write buffer.
func (w *Writer) Buffer() *WriteBuffer {
	return w.buffer
}

// Stats returns per-field statistics for the buffered documents.
func (w *Writer) Stats() []FieldStats {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.buffer.Stats()
}

// Abort discards all buffered changes.
func (w *Writer) Abort() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.buffer.Reset()
}

// Release deactivates the writer.
func (w *Writer) Release() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.active = false
}

// analyzedField holds the postings of one field of one document, ready to be
// written once the document has been accepted.
type analyzedField struct {
	def           FieldDef
	values        []string
	termFreqs     map[string]uint32
	termPositions map[string][]uint32
	tokens        int
	suppressed    int
}

// analyzeField analyzes each value of a field as its own input. Positions of
// later values continue after the previous value, with a gap of one.
func (w *Writer) analyzeField(f FieldDef, externalID string, values []string) (analyzedField, error) {
	analyzer := w.analyzers[f.Name]
	af := analyzedField{
		def:           f,
		values:        values,
		termFreqs:     make(map[string]uint32),
		termPositions: make(map[string][]uint32),
	}
	base := 0

	for _, text := range values {
		tokens, err := analyzer.Analyze(f.Name, text)
		if err != nil {
			return analyzedField{}, err
		}
		if len(tokens) == 0 && strings.TrimSpace(text) != "" {
			af.suppressed++
			w.logger.Debug("value suppressed by analyzer",
				"doc", externalID,
				"field", f.Name,
				"analyzer", f.Analyzer,
			)
		}
		af.tokens += len(tokens)

		last := base - 1
		for _, tok := range tokens {
			pos := base + tok.Position
			af.termFreqs[tok.Term]++
			if f.Positions {
				af.termPositions[tok.Term] = append(af.termPositions[tok.Term], uint32(pos))
			}
			last = pos
		}
		base = last + 2
	}
	return af, nil
}

// postField writes an analyzed field into the buffer under docID.
func (w *Writer) postField(af analyzedField, docID uint32) {
	f := af.def
	w.buffer.recordField(f.Name, af.tokens, af.suppressed)
	for term, freq := range af.termFreqs {
		var positions []uint32
		if f.Positions {
			positions = af.termPositions[term]
		}
		w.buffer.AddPosting(f.Name, term, docID, freq, positions)
	}
	if f.Stored {
		w.buffer.StoreField(docID, f.Name, strings.Join(af.values, "\n"))
	}
}

func textValues(val interface{}) ([]string, error) {
	switch v := val.(type) {
	case string:
		return []string{v}, nil
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, errors.New("array values must be strings")
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, errors.New("value must be a string or string array")
	}
}

func extractExternalID(doc Document) (string, error) {
	idVal, ok := doc.Fields["id"]
	if !ok {
		return "", errors.New("document missing 'id' field")
	}
	id, ok := idVal.(string)
	if !ok {
		return "", errors.New("document 'id' must be a string")
	}
	return id, nil
}
