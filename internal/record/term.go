package record

import (
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/potlib/potrec/internal/model"
)

// TermKind discriminates the coefficient-line term variants.
type TermKind int

const (
	// TermParameter is a numeric coefficient.
	TermParameter TermKind = iota
	// TermOption is a literal string token.
	TermOption
	// TermFile is the name of an auxiliary parameter file. When rendered,
	// the filename is joined with the record's parameter-file directory.
	TermFile
	// TermSymbols is a placeholder that expands to the record's symbol
	// list when rendered.
	TermSymbols
)

// Term is one token of a coefficient or command line.
type Term struct {
	Kind   TermKind
	Value  float64 // TermParameter
	Option string  // TermOption, TermFile
}

// Param creates a numeric coefficient term.
func Param(v float64) Term {
	return Term{Kind: TermParameter, Value: v}
}

// Option creates a literal string term.
func Option(s string) Term {
	return Term{Kind: TermOption, Option: s}
}

// File creates a parameter-file term.
func File(name string) Term {
	return Term{Kind: TermFile, Option: name}
}

// Symbols creates a symbol-list placeholder term.
func Symbols() Term {
	return Term{Kind: TermSymbols}
}

// buildTerms appends the document form of each term under the "term" key.
// Parameters serialize as {"parameter": n}, options as {"option": s},
// files as {"file": s}, and the symbols placeholder as {"symbols": true}.
func buildTerms(m *model.Map, terms []Term) {
	for _, term := range terms {
		entry := model.NewMap()
		switch term.Kind {
		case TermParameter:
			entry.Set("parameter", model.Float(term.Value))
		case TermOption:
			entry.Set("option", model.String(term.Option))
		case TermFile:
			entry.Set("file", model.String(term.Option))
		case TermSymbols:
			entry.Set("symbols", model.Bool(true))
		}
		m.Append("term", entry)
	}
}

// loadTerms parses the "term" entries of a document node back into terms.
func loadTerms(m *model.Map) ([]Term, error) {
	entries := m.AsList("term")
	terms := make([]Term, 0, len(entries))
	for i, entry := range entries {
		sub, ok := entry.(*model.Map)
		if !ok {
			return nil, fmt.Errorf("term[%d]: expected object, got %T", i, entry)
		}
		switch {
		case sub.Has("parameter"):
			v, ok := sub.GetFloat("parameter")
			if !ok {
				return nil, fmt.Errorf("term[%d]: parameter is not numeric", i)
			}
			terms = append(terms, Param(v))
		case sub.Has("option"):
			terms = append(terms, Option(sub.GetString("option")))
		case sub.Has("file"):
			terms = append(terms, File(sub.GetString("file")))
		case sub.Has("symbols"):
			terms = append(terms, Symbols())
		default:
			return nil, fmt.Errorf("term[%d]: unknown term variant", i)
		}
	}
	return terms, nil
}

// renderTerm expands a term into its textual form on a coefficient line.
func renderTerm(term Term, symbols []string, potDir string) (string, error) {
	switch term.Kind {
	case TermParameter:
		return formatNumber(term.Value), nil
	case TermOption:
		return term.Option, nil
	case TermFile:
		if potDir == "" {
			return term.Option, nil
		}
		return filepath.Join(potDir, term.Option), nil
	case TermSymbols:
		return strings.Join(symbols, " "), nil
	default:
		return "", fmt.Errorf("unknown term kind %d", term.Kind)
	}
}

// formatNumber renders a coefficient without trailing zero noise.
func formatNumber(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatFloat(v, 'f', 1, 64)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
