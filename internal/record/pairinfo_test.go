package record

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPairInfoGolden(t *testing.T) {
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)

	t.Run("pair style with per-interaction lines", func(t *testing.T) {
		info, err := demoRecord().PairInfo()
		require.NoError(t, err)
		g.Assert(t, "pairinfo_lj_cut", []byte(info))
	})

	t.Run("parameter file style with universal line", func(t *testing.T) {
		r := &Record{
			Units:     "metal",
			AtomStyle: "atomic",
			Atoms:     []Atom{{Element: "Al"}, {Element: "Ni"}},
			PairStyle: "eam/alloy",
			PairCoeffs: []CoeffLine{
				{Terms: []Term{File("AlNi.eam.alloy"), Symbols()}},
			},
		}
		info, err := r.PairInfo()
		require.NoError(t, err)
		g.Assert(t, "pairinfo_eam_alloy", []byte(info))
	})
}

func TestPairInfoJoinsPotDir(t *testing.T) {
	r := &Record{
		Atoms:     []Atom{{Element: "Al"}, {Element: "Ni"}},
		PairStyle: "eam/alloy",
		PairCoeffs: []CoeffLine{
			{Terms: []Term{File("AlNi.eam.alloy"), Symbols()}},
		},
		PotDir: "/pots/demo",
	}

	info, err := r.PairInfo()
	require.NoError(t, err)
	assert.Contains(t, info, "pair_coeff * * /pots/demo/AlNi.eam.alloy Al Ni\n")
}

func TestPairInfoSymbolPairOrdering(t *testing.T) {
	r := demoRecord()
	r.PairCoeffs = []CoeffLine{
		{Symbols: []string{"Ni", "Al"}, Terms: []Term{Param(1.5)}},
	}

	info, err := r.PairInfo()
	require.NoError(t, err)
	// Type indices are emitted lower-first regardless of symbol order.
	assert.Contains(t, info, "pair_coeff 1 2 1.5\n")
}

func TestPairInfoAllSymbolsKeepsFullList(t *testing.T) {
	r := &Record{
		AllSymbols: true,
		Atoms:      []Atom{{Element: "Al"}, {Element: "Ni"}},
		PairStyle:  "meam/c",
		PairCoeffs: []CoeffLine{
			{Symbols: []string{"Ni", "Al"}, Terms: []Term{File("lib.meam"), Symbols()}},
		},
	}

	info, err := r.PairInfo()
	require.NoError(t, err)
	assert.Contains(t, info, "pair_coeff 1 2 lib.meam Al Ni\n")
}

func TestPairInfoCommands(t *testing.T) {
	r := demoRecord()
	r.Commands = []CommandLine{
		{Terms: []Term{Option("pair_modify"), Option("shift"), Option("yes")}},
	}

	info, err := r.PairInfo()
	require.NoError(t, err)
	assert.Contains(t, info, "pair_coeff 2 2 2.0 2.693\n\npair_modify shift yes\n")
}

func TestPairInfoErrors(t *testing.T) {
	t.Run("no atoms", func(t *testing.T) {
		r := &Record{PairStyle: "lj/cut"}
		_, err := r.PairInfo()
		require.Error(t, err)
	})

	t.Run("unresolvable mass", func(t *testing.T) {
		r := &Record{
			Atoms:     []Atom{{Symbol: "X", Element: "Xx"}},
			PairStyle: "lj/cut",
		}
		_, err := r.PairInfo()
		require.ErrorIs(t, err, ErrNoMass)
	})

	t.Run("symbol not in record", func(t *testing.T) {
		r := demoRecord()
		r.PairCoeffs = []CoeffLine{
			{Symbols: []string{"Cu", "Cu"}, Terms: []Term{Param(1)}},
		}
		_, err := r.PairInfo()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Cu")
	})

	t.Run("too many symbols on a line", func(t *testing.T) {
		r := demoRecord()
		r.PairCoeffs = []CoeffLine{
			{Symbols: []string{"Al", "Ni", "Al"}, Terms: []Term{Param(1)}},
		}
		_, err := r.PairInfo()
		require.Error(t, err)
	})
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in       float64
		expected string
	}{
		{10, "10.0"},
		{0.5, "0.5"},
		{2.62, "2.62"},
		{-3, "-3.0"},
		{26.9815385, "26.9815385"},
		{1e16, "1e+16"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, formatNumber(tt.in))
	}
}
