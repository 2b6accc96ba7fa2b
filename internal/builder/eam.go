package builder

import (
	"fmt"
	"slices"

	"github.com/potlib/potrec/internal/record"
)

// EAMBuilder builds records for the original eam pair style, where each
// symbol has its own funcfl parameter file:
//
//	pair_coeff 1 1 <file 1>
//	pair_coeff 2 2 <file 2>
//	...
//
// Cross interactions are mixed by LAMMPS, so only the diagonal lines are
// emitted. Exactly one parameter file per symbol is required.
type EAMBuilder struct {
	base
	paramFiles []string
}

// NewEAM creates an EAMBuilder with one funcfl file per symbol, aligned
// with the option's symbol list.
func NewEAM(opts Options, paramFiles ...string) (*EAMBuilder, error) {
	bs, err := newBase("eam", []string{"eam"}, opts)
	if err != nil {
		return nil, err
	}
	b := &EAMBuilder{base: bs, paramFiles: slices.Clone(paramFiles)}
	return b, nil
}

// ParamFiles returns the per-symbol parameter files.
func (b *EAMBuilder) ParamFiles() []string {
	return slices.Clone(b.paramFiles)
}

// Potential finalizes the record with one diagonal pair_coeff line per
// symbol.
func (b *EAMBuilder) Potential() (*record.Record, error) {
	symbols := b.symbols()
	if len(b.paramFiles) != len(symbols) {
		return nil, fmt.Errorf("eam: %d parameter files for %d symbols", len(b.paramFiles), len(symbols))
	}

	coeffs := make([]record.CoeffLine, len(symbols))
	for i, s := range symbols {
		coeffs[i] = record.CoeffLine{
			Symbols: []string{s},
			Terms:   []record.Term{record.File(b.paramFiles[i])},
		}
	}
	b.rec.PairCoeffs = coeffs
	return b.rec, nil
}
