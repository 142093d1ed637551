package analysis

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Configuration errors. Every error returned while building a filter or an
// analyzer from string-keyed definitions wraps ErrConfig.
var (
	ErrConfig        = errors.New("configuration error")
	ErrMissingParam  = errors.New("missing parameter")
	ErrInvalidParam  = errors.New("invalid parameter")
	ErrUnknownFilter = errors.New("unknown filter type")
)

// Filter definition parameters.
const (
	ParamEmitIf     = "emit_if"
	ParamScripts    = "scripts"
	ParamEmitNonCJK = "emit_non_cjk"
)

// Filter type names.
const (
	FilterCJKSieve  = "cjk_sieve"
	FilterCJKHopper = "cjk_hopper"
	FilterLowerCase = "lowercase"
	FilterWidth     = "width"
)

func configErrorf(kind error, format string, args ...any) error {
	return fmt.Errorf("%w: %w %s", ErrConfig, kind, fmt.Sprintf(format, args...))
}

// FilterFactory wraps a stream with a configured filter.
type FilterFactory func(in TokenStream) TokenStream

// NewFilterFactory validates args for the filter type typ and returns a
// factory for it. Validation happens here, never on first use.
func NewFilterFactory(typ string, args map[string]string) (FilterFactory, error) {
	switch typ {
	case FilterCJKSieve:
		mode, err := ParseEmitMode(args[ParamEmitIf])
		if err != nil {
			return nil, fmt.Errorf("filter %s: %w", typ, err)
		}
		if err := rejectUnknownParams(typ, args, ParamEmitIf); err != nil {
			return nil, err
		}
		return func(in TokenStream) TokenStream { return NewSieveFilter(in, mode) }, nil

	case FilterCJKHopper:
		list, ok := args[ParamScripts]
		if !ok {
			return nil, fmt.Errorf("filter %s: %w", typ,
				configErrorf(ErrMissingParam, "%q (comma separated list of: han, hiragana, katakana, hangul, cjk)", ParamScripts))
		}
		scripts, err := ParseScriptSet(list)
		if err != nil {
			return nil, fmt.Errorf("filter %s: %w", typ, err)
		}
		emitNonCJK := false
		if v, ok := args[ParamEmitNonCJK]; ok {
			emitNonCJK, err = strconv.ParseBool(v)
			if err != nil {
				return nil, fmt.Errorf("filter %s: %w", typ,
					configErrorf(ErrInvalidParam, "%q = %q (must be true or false)", ParamEmitNonCJK, v))
			}
		}
		if err := rejectUnknownParams(typ, args, ParamScripts, ParamEmitNonCJK); err != nil {
			return nil, err
		}
		return func(in TokenStream) TokenStream { return NewHopperFilter(in, scripts, emitNonCJK) }, nil

	case FilterLowerCase:
		if err := rejectUnknownParams(typ, args); err != nil {
			return nil, err
		}
		return func(in TokenStream) TokenStream { return NewLowerCaseFilter(in) }, nil

	case FilterWidth:
		if err := rejectUnknownParams(typ, args); err != nil {
			return nil, err
		}
		return func(in TokenStream) TokenStream { return NewWidthFilter(in) }, nil

	default:
		return nil, configErrorf(ErrUnknownFilter, "%q (must be one of: %s)", typ, strings.Join(FilterTypes(), ", "))
	}
}

// FilterTypes returns the recognized filter type names, sorted.
func FilterTypes() []string {
	types := []string{FilterCJKSieve, FilterCJKHopper, FilterLowerCase, FilterWidth}
	sort.Strings(types)
	return types
}

func rejectUnknownParams(typ string, args map[string]string, known ...string) error {
	for k := range args {
		found := false
		for _, kk := range known {
			if k == kk {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("filter %s: %w", typ, configErrorf(ErrInvalidParam, "%q is not a parameter of this filter", k))
		}
	}
	return nil
}
