package store

import (
	"path/filepath"
	"testing"

	"github.com/potlib/potrec/internal/record"
)

// createTestStore creates a store backed by a fresh database file.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// createTestRecord creates a minimal saveable record with the given id and
// one particle model per element.
func createTestRecord(id string, elements ...string) *record.Record {
	rec := record.New()
	rec.ID = id
	rec.PotID = "2009--Demo-A--Al-Ni"
	rec.PairStyle = "lj/cut"
	rec.PairStyleTerms = []record.Term{record.Param(10)}
	rec.PairCoeffs = []record.CoeffLine{
		{Terms: []record.Term{record.Param(0.5), record.Param(2.62)}},
	}
	for _, e := range elements {
		rec.Atoms = append(rec.Atoms, record.Atom{Element: e})
	}
	return rec
}
