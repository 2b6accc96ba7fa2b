package builder

import (
	"slices"

	"github.com/potlib/potrec/internal/record"
)

// ParamFileBuilder builds records for the many-body styles whose
// coefficients live in a single parameter file covering all symbols:
//
//	pair_coeff * * <paramfile> <symbol 1> <symbol 2> ...
//
// The parameter file is optional; when absent the file token is omitted
// and only the symbol placeholder remains on the line.
type ParamFileBuilder struct {
	base
	paramFile string
	leading   []record.Term
	trailing  []record.Term
}

// ParamFileOption mutates a ParamFileBuilder during construction.
type ParamFileOption func(*ParamFileBuilder)

// WithParamFile names the parameter file on the pair_coeff line.
func WithParamFile(name string) ParamFileOption {
	return func(b *ParamFileBuilder) { b.paramFile = name }
}

// WithPrependTerms inserts extra terms before the parameter file token.
func WithPrependTerms(terms ...record.Term) ParamFileOption {
	return func(b *ParamFileBuilder) { b.leading = terms }
}

// WithAppendTerms adds extra terms after the symbol placeholder.
func WithAppendTerms(terms ...record.Term) ParamFileOption {
	return func(b *ParamFileBuilder) { b.trailing = terms }
}

// NewParamFile creates a ParamFileBuilder for the given pair style.
func NewParamFile(pairStyle string, opts Options, options ...ParamFileOption) (*ParamFileBuilder, error) {
	bs, err := newBase(pairStyle, paramFileStyles, opts)
	if err != nil {
		return nil, err
	}
	b := &ParamFileBuilder{base: bs}
	for _, opt := range options {
		opt(b)
	}
	return b, nil
}

// ParamFile returns the parameter-file name, or "" if none was set.
func (b *ParamFileBuilder) ParamFile() string {
	return b.paramFile
}

// Potential finalizes the record with its single universal pair_coeff line.
func (b *ParamFileBuilder) Potential() (*record.Record, error) {
	terms := slices.Clone(b.leading)
	if b.paramFile != "" {
		terms = append(terms, record.File(b.paramFile))
	}
	terms = append(terms, record.Symbols())
	terms = append(terms, b.trailing...)

	b.rec.PairCoeffs = []record.CoeffLine{{Terms: terms}}
	return b.rec, nil
}

// ParamFileStyles returns the pair styles ParamFileBuilder supports.
func ParamFileStyles() []string {
	return slices.Clone(paramFileStyles)
}

// paramFileStyles are the styles configured through one parameter file
// naming all symbols.
var paramFileStyles = []string{
	"adp",
	"agni",
	"airebo", "airebo/morse", "rebo",
	"bop",
	"comb", "comb3",
	"eam/alloy", "eam/cd", "eam/fs", "eam/he",
	"edip", "edip/multi",
	"eim",
	"gw", "gw/zbl",
	"lcbop",
	"meam/c", "meam/spline", "meam/sw/spline",
	"nb3b/harmonic",
	"polymorphic",
	"smtbq",
	"sw",
	"tersoff", "tersoff/mod", "tersoff/mod/c", "tersoff/table",
	"tersoff/zbl",
	"vashishta", "vashishta/table",
}
