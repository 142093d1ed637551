package indexing

import (
	"errors"
	"sort"
)

// Buffer limits.
const (
	DefaultBufferMemoryLimit = 64 * 1024 * 1024 // 64MB
	DefaultMaxDocs           = 100_000
)

var (
	ErrBufferFull      = errors.New("write buffer limit reached")
	ErrDuplicateDoc    = errors.New("duplicate document ID in buffer")
	ErrWriterNotActive = errors.New("writer is not active")
)

// PostingEntry represents a single posting for a term in a field.
type PostingEntry struct {
	DocID     uint32
	Freq      uint32
	Positions []uint32
}

// PostingsList accumulates postings for a single term in a single field.
type PostingsList struct {
	Entries []PostingEntry
}

// FieldStats summarizes what a field received.
type FieldStats struct {
	Field string `json:"field"`
	// Docs is the number of documents that produced at least one token.
	Docs int `json:"docs"`
	// Suppressed is the number of non-empty values for which the analyzer
	// emitted nothing.
	Suppressed int `json:"suppressed"`
	Terms      int `json:"terms"`
	Tokens     int `json:"tokens"`
}

// WriteBuffer accumulates an in-memory inverted index.
type WriteBuffer struct {
	// InvertedIndex: field → term → postings list
	InvertedIndex map[string]map[string]*PostingsList

	// StoredFields: docID → field → value
	StoredFields map[uint32]map[string]string

	// ExternalToInternal maps external doc IDs to internal doc IDs.
	ExternalToInternal map[string]uint32

	NextDocID uint32
	DocCount  int
	TermCount int

	stats map[string]*FieldStats

	memoryUsed  int64
	MemoryLimit int64
	MaxDocs     int
}

// NewWriteBuffer creates a new empty write buffer.
func NewWriteBuffer() *WriteBuffer {
	return &WriteBuffer{
		InvertedIndex:      make(map[string]map[string]*PostingsList),
		StoredFields:       make(map[uint32]map[string]string),
		ExternalToInternal: make(map[string]uint32),
		stats:              make(map[string]*FieldStats),
		MemoryLimit:        DefaultBufferMemoryLimit,
		MaxDocs:            DefaultMaxDocs,
	}
}

// AddPosting adds a posting entry for the given field and term.
func (b *WriteBuffer) AddPosting(field, term string, docID uint32, freq uint32, positions []uint32) {
	fieldMap, ok := b.InvertedIndex[field]
	if !ok {
		fieldMap = make(map[string]*PostingsList)
		b.InvertedIndex[field] = fieldMap
	}

	pl, ok := fieldMap[term]
	if !ok {
		pl = &PostingsList{}
		fieldMap[term] = pl
		b.TermCount++
		b.fieldStats(field).Terms++
	}

	pl.Entries = append(pl.Entries, PostingEntry{
		DocID:     docID,
		Freq:      freq,
		Positions: positions,
	})

	// Approximate memory tracking.
	b.memoryUsed += int64(16 + len(term) + len(positions)*4)
}

// StoreField stores a field value for a document.
func (b *WriteBuffer) StoreField(docID uint32, field string, value string) {
	fields, ok := b.StoredFields[docID]
	if !ok {
		fields = make(map[string]string)
		b.StoredFields[docID] = fields
	}
	fields[field] = value
	b.memoryUsed += int64(len(value) + len(field))
}

// AllocateDocID assigns an internal doc ID for an external ID.
func (b *WriteBuffer) AllocateDocID(externalID string) (uint32, error) {
	if _, exists := b.ExternalToInternal[externalID]; exists {
		return 0, ErrDuplicateDoc
	}
	if b.IsFull() {
		return 0, ErrBufferFull
	}

	docID := b.NextDocID
	b.NextDocID++
	b.DocCount++
	b.ExternalToInternal[externalID] = docID
	return docID, nil
}

// recordField updates per-field counters once per document, after all of
// the field's values were analyzed.
func (b *WriteBuffer) recordField(field string, tokens, suppressed int) {
	s := b.fieldStats(field)
	s.Tokens += tokens
	if tokens > 0 {
		s.Docs++
	}
	s.Suppressed += suppressed
}

func (b *WriteBuffer) fieldStats(field string) *FieldStats {
	s, ok := b.stats[field]
	if !ok {
		s = &FieldStats{Field: field}
		b.stats[field] = s
	}
	return s
}

// Stats returns per-field statistics sorted by field name.
func (b *WriteBuffer) Stats() []FieldStats {
	out := make([]FieldStats, 0, len(b.stats))
	for _, s := range b.stats {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Field < out[j].Field })
	return out
}

// MemoryUsed returns the approximate memory used by the buffer.
func (b *WriteBuffer) MemoryUsed() int64 {
	return b.memoryUsed
}

// IsFull returns true if the buffer has reached its memory or document limit.
func (b *WriteBuffer) IsFull() bool {
	return b.DocCount >= b.MaxDocs || b.memoryUsed >= b.MemoryLimit
}

// Reset clears the buffer for reuse.
func (b *WriteBuffer) Reset() {
	b.InvertedIndex = make(map[string]map[string]*PostingsList)
	b.StoredFields = make(map[uint32]map[string]string)
	b.ExternalToInternal = make(map[string]uint32)
	b.stats = make(map[string]*FieldStats)
	b.NextDocID = 0
	b.DocCount = 0
	b.TermCount = 0
	b.memoryUsed = 0
}
