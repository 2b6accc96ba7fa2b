package store

import (
	"strings"
	"testing"
)

func TestCompileFilter_Empty(t *testing.T) {
	where, params := compileFilter(Filter{})
	if where != "" {
		t.Errorf("where = %q, expected empty", where)
	}
	if params != nil {
		t.Errorf("params = %v, expected nil", params)
	}
}

func TestCompileFilter_InClauses(t *testing.T) {
	where, params := compileFilter(Filter{
		IDs:        []string{"a", "b"},
		PairStyles: []string{"lj/cut"},
	})

	if !strings.Contains(where, "id IN (?, ?)") {
		t.Errorf("missing id clause: %q", where)
	}
	if !strings.Contains(where, "pair_style IN (?)") {
		t.Errorf("missing pair_style clause: %q", where)
	}
	if len(params) != 3 {
		t.Errorf("expected 3 params, got %d", len(params))
	}
}

func TestCompileFilter_ModelSubqueries(t *testing.T) {
	where, params := compileFilter(Filter{
		Elements: []string{"Al", "Ni"},
		Symbols:  []string{"AlS"},
	})

	if got := strings.Count(where, "EXISTS"); got != 3 {
		t.Errorf("expected 3 EXISTS subqueries, got %d in %q", got, where)
	}
	if len(params) != 3 {
		t.Errorf("expected 3 params, got %d", len(params))
	}
}

func TestCompileFilter_Keyword(t *testing.T) {
	where, params := compileFilter(Filter{Keyword: "morse"})

	if !strings.Contains(where, "instr(document, ?) > 0") {
		t.Errorf("missing keyword clause: %q", where)
	}
	if len(params) != 1 || params[0] != "morse" {
		t.Errorf("params = %v", params)
	}
}

func TestCompileFilter_ClausesJoinedWithAnd(t *testing.T) {
	where, _ := compileFilter(Filter{
		IDs:      []string{"a"},
		Statuses: []string{"active"},
	})

	if !strings.HasPrefix(where, " WHERE ") {
		t.Errorf("where does not start with WHERE: %q", where)
	}
	if !strings.Contains(where, " AND ") {
		t.Errorf("clauses not joined with AND: %q", where)
	}
}
