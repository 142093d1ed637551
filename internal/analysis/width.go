package analysis

import "golang.org/x/text/width"

// WidthFilter folds full-width ASCII variants to ASCII and half-width
// Katakana to their standard (full-width) forms.
type WidthFilter struct {
	termFilter
}

// NewWidthFilter wraps in with a WidthFilter.
func NewWidthFilter(in TokenStream) *WidthFilter {
	return &WidthFilter{termFilter{in: in, rewrite: width.Fold.String}}
}
