package builder

import (
	"fmt"
	"slices"

	"github.com/potlib/potrec/internal/record"
)

// Options are the shared parameters accepted by every builder variant.
// Zero-valued fields keep the record defaults (units "metal", atom_style
// "atomic", a fresh UUID key, active status).
type Options struct {
	ID     string
	Key    string
	PotID  string
	PotKey string
	Status string

	Units     string
	AtomStyle string
	Comments  string
	Dois      []string

	// Elements and Symbols describe the particle models. Either may be
	// omitted; symbols default to elements and vice versa. When both are
	// given their lengths must match.
	Elements []string
	Symbols  []string

	// Masses and Charges are per-atom overrides aligned with the symbol
	// list. Masses left zero resolve from the standard table by element.
	Masses  []float64
	Charges []float64

	// AllSymbols forces the full symbol list onto every coefficient line.
	AllSymbols bool

	// PairStyleTerms are extra tokens on the pair_style directive, such
	// as a cutoff distance.
	PairStyleTerms []record.Term

	// PotDir is the parameter-file directory used when rendering.
	PotDir string
}

// base carries the record under construction and the option-derived state
// shared by all builder variants.
type base struct {
	rec *record.Record
}

func newBase(pairStyle string, supported []string, opts Options) (base, error) {
	if pairStyle == "" {
		return base{}, fmt.Errorf("pair style not given")
	}
	if !slices.Contains(supported, pairStyle) {
		return base{}, fmt.Errorf("%w: %s", ErrUnsupportedStyle, pairStyle)
	}

	n := len(opts.Symbols)
	if n == 0 {
		n = len(opts.Elements)
	}
	if len(opts.Symbols) > 0 && len(opts.Elements) > 0 && len(opts.Symbols) != len(opts.Elements) {
		return base{}, fmt.Errorf("symbols and elements lengths differ: %d vs %d",
			len(opts.Symbols), len(opts.Elements))
	}
	if len(opts.Masses) > 0 && len(opts.Masses) != n {
		return base{}, fmt.Errorf("masses length %d does not match %d atoms", len(opts.Masses), n)
	}
	if len(opts.Charges) > 0 && len(opts.Charges) != n {
		return base{}, fmt.Errorf("charges length %d does not match %d atoms", len(opts.Charges), n)
	}

	rec := record.New()
	rec.ID = opts.ID
	if opts.Key != "" {
		rec.Key = opts.Key
	}
	rec.PotID = opts.PotID
	rec.PotKey = opts.PotKey
	if opts.Status != "" {
		rec.Status = opts.Status
	}
	if opts.Units != "" {
		rec.Units = opts.Units
	}
	if opts.AtomStyle != "" {
		rec.AtomStyle = opts.AtomStyle
	}
	rec.Comments = opts.Comments
	rec.Dois = slices.Clone(opts.Dois)
	rec.AllSymbols = opts.AllSymbols
	rec.PairStyle = pairStyle
	rec.PairStyleTerms = slices.Clone(opts.PairStyleTerms)
	rec.PotDir = opts.PotDir

	for i := 0; i < n; i++ {
		a := record.Atom{}
		if i < len(opts.Symbols) {
			a.Symbol = opts.Symbols[i]
		}
		if i < len(opts.Elements) {
			a.Element = opts.Elements[i]
		}
		if i < len(opts.Masses) {
			a.Mass = opts.Masses[i]
		}
		if i < len(opts.Charges) {
			a.Charge = opts.Charges[i]
		}
		rec.Atoms = append(rec.Atoms, a)
	}

	return base{rec: rec}, nil
}

// symbols returns the effective model symbols of the record being built.
func (b *base) symbols() []string {
	return b.rec.Symbols()
}

// knownSymbol reports whether s names one of the builder's particle models.
func (b *base) knownSymbol(s string) bool {
	return slices.Contains(b.symbols(), s)
}
