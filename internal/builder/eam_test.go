package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/potlib/potrec/internal/record"
)

func TestEAMBuilderDiagonalLines(t *testing.T) {
	b, err := NewEAM(twoElementOptions(), "Al.funcfl", "Ni.funcfl")
	require.NoError(t, err)
	assert.Equal(t, []string{"Al.funcfl", "Ni.funcfl"}, b.ParamFiles())

	rec, err := b.Potential()
	require.NoError(t, err)
	assert.Equal(t, "eam", rec.PairStyle)

	require.Len(t, rec.PairCoeffs, 2)
	assert.Equal(t, record.CoeffLine{
		Symbols: []string{"Al"},
		Terms:   []record.Term{record.File("Al.funcfl")},
	}, rec.PairCoeffs[0])
	assert.Equal(t, record.CoeffLine{
		Symbols: []string{"Ni"},
		Terms:   []record.Term{record.File("Ni.funcfl")},
	}, rec.PairCoeffs[1])
}

func TestEAMBuilderFileCountMismatch(t *testing.T) {
	b, err := NewEAM(twoElementOptions(), "Al.funcfl")
	require.NoError(t, err)

	_, err = b.Potential()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parameter files")
}

func TestEAMPairInfo(t *testing.T) {
	b, err := NewEAM(twoElementOptions(), "Al.funcfl", "Ni.funcfl")
	require.NoError(t, err)

	rec, err := b.Potential()
	require.NoError(t, err)

	info, err := rec.PairInfo()
	require.NoError(t, err)
	assert.Contains(t, info, "pair_style eam\n")
	assert.Contains(t, info, "pair_coeff 1 1 Al.funcfl\n")
	assert.Contains(t, info, "pair_coeff 2 2 Ni.funcfl\n")
}
