package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/potlib/potrec/internal/model"
	"github.com/potlib/potrec/internal/record"
)

func newTestValidator(t *testing.T) *Validator {
	t.Helper()
	v, err := New()
	require.NoError(t, err)
	return v
}

func validDocument(t *testing.T) []byte {
	t.Helper()
	rec := record.New()
	rec.ID = "2009--Demo-A--Al-Ni--LAMMPS--ipr1"
	rec.Atoms = []record.Atom{{Element: "Al"}, {Element: "Ni"}}
	rec.PairStyle = "lj/cut"
	rec.PairStyleTerms = []record.Term{record.Param(10)}
	rec.PairCoeffs = []record.CoeffLine{
		{Terms: []record.Term{record.Param(0.5), record.Param(2.62)}},
	}

	doc, err := rec.BuildModel()
	require.NoError(t, err)
	data, err := model.Marshal(doc)
	require.NoError(t, err)
	return data
}

func TestValidateJSONAcceptsBuiltRecords(t *testing.T) {
	v := newTestValidator(t)
	assert.Nil(t, v.ValidateJSON(validDocument(t)))
}

func TestValidateJSONAcceptsFullRecord(t *testing.T) {
	rec := record.New()
	rec.ID = "2009--Demo-A--Al-Ni--LAMMPS--ipr2"
	rec.Status = record.StatusSuperseded
	rec.Comments = "Demo record with every optional block."
	rec.Dois = []string{"10.0000/demo", "10.0000/demo2"}
	rec.AllSymbols = true
	rec.Atoms = []record.Atom{
		{Symbol: "AlS", Element: "Al", Mass: 26.98, Charge: 1.2},
		{Element: "Ni"},
	}
	rec.PairStyle = "meam/c"
	rec.PairCoeffs = []record.CoeffLine{
		{Terms: []record.Term{record.File("lib.meam"), record.Symbols(), record.Option("NULL")}},
	}
	rec.Commands = []record.CommandLine{
		{Terms: []record.Term{record.Option("pair_modify"), record.Option("shift"), record.Option("yes")}},
	}
	rec.Artifacts = []record.Artifact{
		{Filename: "lib.meam", URL: "https://example.org/lib.meam", Label: "library"},
	}

	doc, err := rec.BuildModel()
	require.NoError(t, err)
	data, err := model.Marshal(doc)
	require.NoError(t, err)

	v := newTestValidator(t)
	assert.Nil(t, v.ValidateJSON(data))
}

func TestValidateJSONRejections(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{
			"missing pair_style",
			`{"potential-LAMMPS":{"key":"k","units":"metal","atom_style":"atomic",
				"atom":{"element":"Al"}}}`,
		},
		{
			"missing units",
			`{"potential-LAMMPS":{"key":"k","atom_style":"atomic",
				"atom":{"element":"Al"},"pair_style":{"type":"lj/cut"}}}`,
		},
		{
			"unknown status",
			`{"potential-LAMMPS":{"key":"k","status":"draft","units":"metal",
				"atom_style":"atomic","atom":{"element":"Al"},
				"pair_style":{"type":"lj/cut"}}}`,
		},
		{
			"term with unknown variant",
			`{"potential-LAMMPS":{"key":"k","units":"metal","atom_style":"atomic",
				"atom":{"element":"Al"},
				"pair_style":{"type":"lj/cut"},
				"pair_coeff":{"term":{"wavelength":1}}}}`,
		},
		{
			"non-numeric parameter",
			`{"potential-LAMMPS":{"key":"k","units":"metal","atom_style":"atomic",
				"atom":{"element":"Al"},
				"pair_style":{"type":"lj/cut","term":{"parameter":"ten"}}}}`,
		},
	}

	v := newTestValidator(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := v.ValidateJSON([]byte(tt.doc))
			assert.NotEmpty(t, errs)
		})
	}
}

func TestValidateJSONReportsInvalidJSON(t *testing.T) {
	v := newTestValidator(t)

	errs := v.ValidateJSON([]byte(`{"potential-LAMMPS":`))
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "invalid JSON")
}

func TestValidationErrorFormat(t *testing.T) {
	e := &ValidationError{Path: "potential-LAMMPS.units", Message: "field is required"}
	assert.Equal(t, "potential-LAMMPS.units: field is required", e.Error())

	e = &ValidationError{Message: "invalid JSON: unexpected end"}
	assert.Equal(t, "invalid JSON: unexpected end", e.Error())
}
