package builder

import (
	"fmt"
	"slices"
	"strings"

	"github.com/potlib/potrec/internal/record"
)

// Interaction is one unique pair interaction: the two model symbols it
// applies to and the pair_coeff terms for that pair. An interaction with
// no symbols applies universally and excludes all others.
type Interaction struct {
	Symbols []string
	Terms   []record.Term
}

// PairBuilder builds records for true pair styles whose coefficients are
// set directly by the pair_coeff lines:
//
//	pair_coeff 1 1 a11 b11 ...
//	pair_coeff 1 2 a12 b12 ...
//	...
type PairBuilder struct {
	base
	interactions []Interaction
}

// NewPair creates a PairBuilder for the given pair style and applies any
// initial interactions. With more than zero initial interactions, each
// must carry symbols unless it is the only one.
func NewPair(pairStyle string, opts Options, interactions ...Interaction) (*PairBuilder, error) {
	bs, err := newBase(pairStyle, pairStyles, opts)
	if err != nil {
		return nil, err
	}
	b := &PairBuilder{base: bs}

	if len(interactions) > 1 {
		for _, in := range interactions {
			if len(in.Symbols) == 0 {
				return nil, fmt.Errorf("symbols must be given with multiple interactions")
			}
		}
	}
	for _, in := range interactions {
		if err := b.SetInteraction(in.Symbols, in.Terms); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// Interactions returns the currently assigned interactions.
func (b *PairBuilder) Interactions() []Interaction {
	return slices.Clone(b.interactions)
}

// SetInteraction assigns the terms for one symbol pair.
//
// With no symbols the interaction is universal: it becomes the only
// interaction. Setting a symbol pair after a universal interaction
// discards the universal one. Setting a pair that is already assigned
// replaces its terms.
func (b *PairBuilder) SetInteraction(symbols []string, terms []record.Term) error {
	if len(terms) == 0 {
		return ErrNoTerms
	}

	if len(symbols) == 0 {
		b.interactions = []Interaction{{Terms: terms}}
		return nil
	}

	// A universal interaction cannot coexist with symbol pairs.
	if len(b.interactions) == 1 && len(b.interactions[0].Symbols) == 0 {
		b.interactions = nil
	}

	symbols = slices.Clone(symbols)
	slices.Sort(symbols)
	if len(symbols) != 2 {
		return ErrUnpairedSymbols
	}
	for _, s := range symbols {
		if !b.knownSymbol(s) {
			return fmt.Errorf("%w: %s", ErrUnknownSymbol, s)
		}
	}

	key := strings.Join(symbols, "-")
	for i, in := range b.interactions {
		if strings.Join(in.Symbols, "-") == key {
			b.interactions = slices.Delete(b.interactions, i, i+1)
			break
		}
	}
	b.interactions = append(b.interactions, Interaction{Symbols: symbols, Terms: terms})
	return nil
}

// Potential finalizes the record. Unless a universal interaction was set,
// every unique symbol pair must be covered: C(n+1, 2) interactions for n
// symbols (pairs with repetition).
func (b *PairBuilder) Potential() (*record.Record, error) {
	if len(b.interactions) == 1 && len(b.interactions[0].Symbols) == 0 {
		b.rec.PairCoeffs = []record.CoeffLine{{Terms: b.interactions[0].Terms}}
		return b.rec, nil
	}

	n := len(b.symbols())
	expected := n * (n + 1) / 2
	if len(b.interactions) != expected {
		return nil, fmt.Errorf("%w: expected %d, found %d",
			ErrIncompleteCoverage, expected, len(b.interactions))
	}

	coeffs := make([]record.CoeffLine, len(b.interactions))
	for i, in := range b.interactions {
		coeffs[i] = record.CoeffLine{Symbols: in.Symbols, Terms: in.Terms}
	}
	b.rec.PairCoeffs = coeffs
	return b.rec, nil
}

// PairStyles returns the pair styles PairBuilder supports.
func PairStyles() []string {
	return slices.Clone(pairStyles)
}

// pairStyles are the true pair styles whose coefficients go directly on
// the pair_coeff lines.
var pairStyles = []string{
	"beck",
	"born", "born/coul/long", "born/coul/msm", "born/coul/wolf", "born/coul/dsf",
	"brownian", "brownian/poly",
	"buck", "buck/coul/cut", "buck/coul/long", "buck/coul/msm", "buck/long/coul/long",
	"buck/mdf", "lennard/mdf", "lj/mdf",
	"colloid",
	"cosine/squared",
	"coul/cut", "coul/debye", "coul/dsf", "coul/long", "coul/msm", "coul/wolf",
	"dpd", "dpd/tstat",
	"gauss", "gauss/cut",
	"gayberne",
	"hbond/dreiding/lj", "hbond/dreiding/morse",
	"lj/charmm/coul/charmm", "lj/charmm/coul/charmm/implicit", "lj/charmm/coul/long",
	"lj/class2", "lj/class2/coul/cut", "lj/class2/coul/long",
	"lj/cubic",
	"lj/cut", "lj/cut/coul/cut", "lj/cut/coul/debye", "lj/cut/coul/dsf",
	"lj/cut/coul/long", "lj/cut/coul/msm", "lj/cut/coul/wolf",
	"lj/cut/dipole/cut", "lj/cut/dipole/long",
	"lj/expand", "lj/expand/coul/long",
	"lj/gromacs", "lj/gromacs/coul/gromacs",
	"lj/long/coul/long",
	"lj/smooth", "lj/smooth/linear",
	"lj96/cut",
	"mie/cut",
	"morse", "morse/smooth/linear",
	"nm/cut", "nm/cut/coul/cut", "nm/cut/coul/long",
	"soft",
	"srp",
	"thole",
	"ufm",
	"yukawa", "yukawa/colloid",
	"zbl",
}
