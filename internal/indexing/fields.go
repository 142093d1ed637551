package indexing

import (
	"errors"
	"fmt"
)

// Field limits.
const (
	MaxFields          = 256
	MaxFieldNameLength = 255
)

// Reserved field names that cannot be used as indexed field names.
var reservedFieldNames = map[string]bool{
	"_id":     true,
	"_score":  true,
	"_source": true,
}

var (
	ErrFieldLimit        = errors.New("field definitions exceed maximum count")
	ErrReservedField     = errors.New("field name is reserved")
	ErrDuplicateField    = errors.New("duplicate field name")
	ErrFieldNameTooLong  = errors.New("field name exceeds maximum length")
	ErrFieldMissingName  = errors.New("field requires a name")
	ErrFieldMissingInput = errors.New("field requires an analyzer")
)

// FieldDef maps a source field of incoming documents to an indexed field.
//
// Several indexed fields may share one source: "title" can feed "title_ja",
// "title_ko" and "title_zh", each with a sieve analyzer that only lets the
// matching language through.
type FieldDef struct {
	Name      string `toml:"name" json:"name"`
	Source    string `toml:"source" json:"source,omitempty"`
	Analyzer  string `toml:"analyzer" json:"analyzer"`
	Stored    bool   `toml:"stored" json:"stored"`
	Positions bool   `toml:"positions" json:"positions,omitempty"`
}

// SourceField returns the document field read for f. It defaults to Name.
func (f FieldDef) SourceField() string {
	if f.Source != "" {
		return f.Source
	}
	return f.Name
}

// ValidateFields checks field definitions for correctness. Analyzer names are
// resolved later, against the registry.
func ValidateFields(fields []FieldDef) error {
	if len(fields) > MaxFields {
		return fmt.Errorf("%w: %d fields (max %d)", ErrFieldLimit, len(fields), MaxFields)
	}

	seen := make(map[string]bool, len(fields))
	for i, f := range fields {
		if f.Name == "" {
			return fmt.Errorf("fields[%d]: %w", i, ErrFieldMissingName)
		}
		if reservedFieldNames[f.Name] {
			return fmt.Errorf("%w: %q", ErrReservedField, f.Name)
		}
		if seen[f.Name] {
			return fmt.Errorf("%w: %q", ErrDuplicateField, f.Name)
		}
		seen[f.Name] = true

		if len(f.Name) > MaxFieldNameLength {
			return fmt.Errorf("%w: %q (%d bytes, max %d)", ErrFieldNameTooLong, f.Name, len(f.Name), MaxFieldNameLength)
		}
		if f.Analyzer == "" {
			return fmt.Errorf("field %q: %w", f.Name, ErrFieldMissingInput)
		}
	}
	return nil
}
