package analysis

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// FilterDef is a string-keyed filter definition, as found in config files.
type FilterDef struct {
	Type string
	Args map[string]string
}

// ChainDef is a string-keyed analyzer definition.
type ChainDef struct {
	Tokenizer string
	Filters   []FilterDef
}

// Registry manages analyzer instances by name.
type Registry struct {
	analyzers map[string]Analyzer
	mu        sync.RWMutex
}

// NewRegistry creates a Registry with the built-in analyzers registered.
func NewRegistry() *Registry {
	r := &Registry{
		analyzers: make(map[string]Analyzer),
	}
	r.analyzers["standard"] = NewChainAnalyzer(tokenizerFactories[TokenizerStandard],
		func(in TokenStream) TokenStream { return NewWidthFilter(in) },
		func(in TokenStream) TokenStream { return NewLowerCaseFilter(in) },
	)
	r.analyzers["whitespace"] = NewChainAnalyzer(tokenizerFactories[TokenizerWhitespace])
	r.analyzers["keyword"] = NewChainAnalyzer(tokenizerFactories[TokenizerKeyword])
	return r
}

// Get returns the analyzer registered under the given name.
func (r *Registry) Get(name string) (Analyzer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.analyzers[name]
	if !ok {
		return nil, fmt.Errorf("unknown analyzer: %q", name)
	}
	return a, nil
}

// Register adds a custom analyzer to the registry.
func (r *Registry) Register(name string, a Analyzer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.analyzers[name]; exists {
		return fmt.Errorf("analyzer already registered: %q", name)
	}
	r.analyzers[name] = a
	return nil
}

// Define builds a ChainAnalyzer from def and registers it under name.
// All filter parameters are validated before anything is registered.
func (r *Registry) Define(name string, def ChainDef) error {
	a, err := BuildChain(def)
	if err != nil {
		return fmt.Errorf("analyzer %q: %w", name, err)
	}
	return r.Register(name, a)
}

// Names returns the names of all registered analyzers, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.analyzers))
	for name := range r.analyzers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// BuildChain validates def and creates the analyzer it describes.
func BuildChain(def ChainDef) (*ChainAnalyzer, error) {
	tokName := def.Tokenizer
	if tokName == "" {
		tokName = TokenizerStandard
	}
	newTokenizer, ok := tokenizerFactories[tokName]
	if !ok {
		return nil, configErrorf(ErrInvalidParam, "tokenizer %q (must be one of: %s)", tokName, strings.Join(TokenizerNames(), ", "))
	}

	filters := make([]FilterFactory, 0, len(def.Filters))
	for i, fd := range def.Filters {
		f, err := NewFilterFactory(fd.Type, fd.Args)
		if err != nil {
			return nil, fmt.Errorf("filters[%d]: %w", i, err)
		}
		filters = append(filters, f)
	}
	return NewChainAnalyzer(newTokenizer, filters...), nil
}

// TokenizerNames returns the recognized tokenizer names, sorted.
func TokenizerNames() []string {
	names := make([]string, 0, len(tokenizerFactories))
	for name := range tokenizerFactories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
