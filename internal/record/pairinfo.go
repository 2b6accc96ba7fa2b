package record

import (
	"fmt"
	"strings"
)

// PairInfo renders the LAMMPS input fragment for the record: mass
// declarations, the pair_style directive, the pair_coeff lines, and any
// extra command lines. The fragment is what gets pasted into a LAMMPS
// input script ahead of the simulation commands.
func (r *Record) PairInfo() (string, error) {
	if len(r.Atoms) == 0 {
		return "", fmt.Errorf("pair info: record has no atoms")
	}
	masses, err := r.Masses()
	if err != nil {
		return "", fmt.Errorf("pair info: %w", err)
	}
	symbols := r.Symbols()

	var b strings.Builder
	for i, m := range masses {
		fmt.Fprintf(&b, "mass %d %s\n", i+1, formatNumber(m))
	}
	b.WriteString("\n")

	b.WriteString("pair_style " + r.PairStyle)
	for _, term := range r.PairStyleTerms {
		s, err := renderTerm(term, symbols, r.PotDir)
		if err != nil {
			return "", fmt.Errorf("pair info: pair_style: %w", err)
		}
		b.WriteString(" " + s)
	}
	b.WriteString("\n")

	for _, line := range r.PairCoeffs {
		rendered, err := r.renderCoeffLine(line, symbols)
		if err != nil {
			return "", fmt.Errorf("pair info: %w", err)
		}
		b.WriteString(rendered + "\n")
	}

	if len(r.Commands) > 0 {
		b.WriteString("\n")
		for _, cmd := range r.Commands {
			tokens := make([]string, 0, len(cmd.Terms))
			for _, term := range cmd.Terms {
				s, err := renderTerm(term, symbols, r.PotDir)
				if err != nil {
					return "", fmt.Errorf("pair info: command: %w", err)
				}
				tokens = append(tokens, s)
			}
			b.WriteString(strings.Join(tokens, " ") + "\n")
		}
	}

	return b.String(), nil
}

// renderCoeffLine expands one pair_coeff line. Lines without interaction
// symbols apply to all type pairs; lines with a symbol pair apply to the
// numeric type indices of those symbols.
func (r *Record) renderCoeffLine(line CoeffLine, symbols []string) (string, error) {
	// Styles that need the full symbol list on every line (AllSymbols)
	// keep it regardless of the interaction pair.
	coeffSymbols := symbols
	if !r.AllSymbols && len(line.Symbols) > 0 {
		coeffSymbols = line.Symbols
	}

	var prefix string
	if len(line.Symbols) == 0 {
		prefix = "pair_coeff * *"
	} else if len(line.Symbols) == 1 {
		i, err := r.symbolIndex(line.Symbols[0])
		if err != nil {
			return "", err
		}
		prefix = fmt.Sprintf("pair_coeff %d %d", i, i)
	} else if len(line.Symbols) == 2 {
		i, err := r.symbolIndex(line.Symbols[0])
		if err != nil {
			return "", err
		}
		j, err := r.symbolIndex(line.Symbols[1])
		if err != nil {
			return "", err
		}
		if i > j {
			i, j = j, i
		}
		prefix = fmt.Sprintf("pair_coeff %d %d", i, j)
	} else {
		return "", fmt.Errorf("pair_coeff line has %d symbols, want at most 2", len(line.Symbols))
	}

	tokens := []string{prefix}
	for _, term := range line.Terms {
		s, err := renderTerm(term, coeffSymbols, r.PotDir)
		if err != nil {
			return "", err
		}
		tokens = append(tokens, s)
	}
	return strings.Join(tokens, " "), nil
}

// symbolIndex returns the 1-based LAMMPS atom type for a model symbol.
func (r *Record) symbolIndex(symbol string) (int, error) {
	for i, s := range r.Symbols() {
		if s == symbol {
			return i + 1, nil
		}
	}
	return 0, fmt.Errorf("symbol %s not in record", symbol)
}
