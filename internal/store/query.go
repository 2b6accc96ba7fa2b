package store

import (
	"strings"
)

// Filter narrows record queries. Slice fields match any of their values;
// Elements and Symbols require all listed models to be present; Keyword
// matches a substring of the stored document. A zero Filter matches
// every record.
type Filter struct {
	IDs        []string
	Keys       []string
	PotIDs     []string
	PotKeys    []string
	PairStyles []string
	Statuses   []string
	Elements   []string
	Symbols    []string
	Keyword    string
}

// compileFilter converts a Filter to a parameterized WHERE clause.
// Every query built from it appends ORDER BY id COLLATE BINARY ASC so
// listings are deterministic. All values are parameterized, never
// interpolated.
func compileFilter(f Filter) (string, []any) {
	var clauses []string
	var params []any

	in := func(column string, values []string) {
		if len(values) == 0 {
			return
		}
		placeholders := make([]string, len(values))
		for i, v := range values {
			placeholders[i] = "?"
			params = append(params, v)
		}
		clauses = append(clauses, column+" IN ("+strings.Join(placeholders, ", ")+")")
	}

	in("id", f.IDs)
	in("key", f.Keys)
	in("pot_id", f.PotIDs)
	in("pot_key", f.PotKeys)
	in("pair_style", f.PairStyles)
	in("status", f.Statuses)

	// Element and symbol filters require every listed model, so each value
	// becomes its own EXISTS subquery.
	for _, element := range f.Elements {
		clauses = append(clauses, `EXISTS (
			SELECT 1 FROM record_models m
			WHERE m.record_id = records.id AND m.element = ?
		)`)
		params = append(params, element)
	}
	for _, symbol := range f.Symbols {
		clauses = append(clauses, `EXISTS (
			SELECT 1 FROM record_models m
			WHERE m.record_id = records.id AND m.symbol = ?
		)`)
		params = append(params, symbol)
	}

	if f.Keyword != "" {
		clauses = append(clauses, "instr(document, ?) > 0")
		params = append(params, f.Keyword)
	}

	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), params
}
