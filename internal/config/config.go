// Package config loads analyzer and field definitions from a TOML file.
//
// Example:
//
//	log_level = "debug"
//
//	[analyzers.text_ja]
//	tokenizer = "standard"
//	filters = [
//	  { type = "cjk_sieve", emit_if = "japanese" },
//	  { type = "lowercase" },
//	]
//
//	[[fields]]
//	name = "title_ja"
//	source = "title"
//	analyzer = "text_ja"
package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"cjksieve/internal/analysis"
	"cjksieve/internal/indexing"
)

// EnvLogLevel overrides the configured log level.
const EnvLogLevel = "CJKSIEVE_LOG_LEVEL"

var (
	ErrUnknownKey      = errors.New("unknown config key")
	ErrInvalidLogLevel = errors.New("invalid log level")
)

// Config is the parsed configuration file.
type Config struct {
	LogLevel  string                    `toml:"log_level"`
	Analyzers map[string]AnalyzerConfig `toml:"analyzers"`
	Fields    []indexing.FieldDef       `toml:"fields"`
}

// AnalyzerConfig describes one analyzer chain. Each filter is a table with a
// "type" key; every other key is passed to the filter as a parameter.
type AnalyzerConfig struct {
	Tokenizer string                   `toml:"tokenizer"`
	Filters   []map[string]interface{} `toml:"filters"`
}

// Default returns the configuration used when no file is given: one sieve
// analyzer per emit mode ("sieve_japanese", "sieve_hangul", ...) and a
// "title" source split into per-language fields.
func Default() Config {
	cfg := Config{
		LogLevel:  "info",
		Analyzers: make(map[string]AnalyzerConfig),
		Fields: []indexing.FieldDef{
			{Name: "title", Analyzer: "standard", Stored: true, Positions: true},
		},
	}
	for _, mode := range analysis.EmitModes() {
		name := "sieve_" + mode.String()
		cfg.Analyzers[name] = AnalyzerConfig{
			Tokenizer: analysis.TokenizerStandard,
			Filters: []map[string]interface{}{
				{"type": analysis.FilterCJKSieve, analysis.ParamEmitIf: mode.String()},
				{"type": analysis.FilterWidth},
				{"type": analysis.FilterLowerCase},
			},
		}
	}
	for _, f := range []struct{ suffix, mode string }{
		{"ja", "japanese"}, {"ko", "hangul"}, {"zh", "han_solo"}, {"latn", "no_cjk"},
	} {
		cfg.Fields = append(cfg.Fields, indexing.FieldDef{
			Name:      "title_" + f.suffix,
			Source:    "title",
			Analyzer:  "sieve_" + f.mode,
			Positions: true,
		})
	}
	return cfg
}

// Load reads the config file at path. An empty path returns Default().
// Unknown keys are rejected so that typos in filter tables surface early.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}
	return Parse(string(data))
}

// Parse decodes and validates a TOML document.
func Parse(data string) (Config, error) {
	cfg := Config{LogLevel: "info"}
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("parse config file: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the log level, every analyzer definition and every field.
func (c Config) Validate() error {
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	if _, err := c.Registry(); err != nil {
		return err
	}
	return indexing.ValidateFields(c.Fields)
}

// ChainDefs converts the analyzer tables to string-keyed chain definitions.
func (c Config) ChainDefs() (map[string]analysis.ChainDef, error) {
	defs := make(map[string]analysis.ChainDef, len(c.Analyzers))
	for name, ac := range c.Analyzers {
		def := analysis.ChainDef{Tokenizer: ac.Tokenizer}
		for i, table := range ac.Filters {
			fd, err := filterDef(table)
			if err != nil {
				return nil, fmt.Errorf("analyzer %q: filters[%d]: %w", name, i, err)
			}
			def.Filters = append(def.Filters, fd)
		}
		defs[name] = def
	}
	return defs, nil
}

// Registry returns a registry holding the built-in analyzers plus every
// analyzer defined in c.
func (c Config) Registry() (*analysis.Registry, error) {
	defs, err := c.ChainDefs()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(defs))
	for name := range defs {
		names = append(names, name)
	}
	sort.Strings(names)

	reg := analysis.NewRegistry()
	for _, name := range names {
		if err := reg.Define(name, defs[name]); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

func filterDef(table map[string]interface{}) (analysis.FilterDef, error) {
	typ, ok := table["type"].(string)
	if !ok || typ == "" {
		return analysis.FilterDef{}, fmt.Errorf("%w: filter table needs a string \"type\"", analysis.ErrConfig)
	}
	fd := analysis.FilterDef{Type: typ}
	for k, v := range table {
		if k == "type" {
			continue
		}
		if fd.Args == nil {
			fd.Args = make(map[string]string, len(table)-1)
		}
		switch v := v.(type) {
		case string:
			fd.Args[k] = v
		case []interface{}:
			parts := make([]string, len(v))
			for i, item := range v {
				parts[i] = fmt.Sprint(item)
			}
			fd.Args[k] = strings.Join(parts, ",")
		default:
			fd.Args[k] = fmt.Sprint(v)
		}
	}
	return fd, nil
}
