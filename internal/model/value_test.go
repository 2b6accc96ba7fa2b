package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapSetKeepsInsertionOrder(t *testing.T) {
	m := NewMap()
	m.Set("zebra", Int(1))
	m.Set("alpha", Int(2))
	m.Set("beta", Int(3))

	assert.Equal(t, []string{"zebra", "alpha", "beta"}, m.Keys())
}

func TestMapSetIsIdempotent(t *testing.T) {
	m := NewMap()
	m.Set("units", String("metal"))
	m.Set("atom_style", String("atomic"))
	m.Set("units", String("real"))

	// Latest value wins, position of the first assignment is kept.
	assert.Equal(t, []string{"units", "atom_style"}, m.Keys())
	v, ok := m.Get("units")
	require.True(t, ok)
	assert.Equal(t, String("real"), v)
	assert.Equal(t, 2, m.Len())
}

func TestMapAppendCollapsesIntoArray(t *testing.T) {
	m := NewMap()
	m.Append("atom", String("first"))

	// One entry stays scalar.
	v, ok := m.Get("atom")
	require.True(t, ok)
	assert.Equal(t, String("first"), v)

	m.Append("atom", String("second"))
	m.Append("atom", String("third"))

	v, _ = m.Get("atom")
	assert.Equal(t, Array{String("first"), String("second"), String("third")}, v)
}

func TestMapDelete(t *testing.T) {
	m := MapOf(
		P("a", Int(1)),
		P("b", Int(2)),
		P("c", Int(3)),
	)

	m.Delete("b")
	assert.Equal(t, []string{"a", "c"}, m.Keys())
	assert.False(t, m.Has("b"))

	// Deleting an absent key is a no-op.
	m.Delete("b")
	assert.Equal(t, 2, m.Len())
}

func TestMapAsList(t *testing.T) {
	m := NewMap()
	assert.Nil(t, m.AsList("missing"))

	m.Set("single", String("x"))
	assert.Equal(t, []Value{String("x")}, m.AsList("single"))

	m.Set("many", Array{Int(1), Int(2)})
	assert.Equal(t, []Value{Int(1), Int(2)}, m.AsList("many"))
}

func TestMapGetFloatWidensInt(t *testing.T) {
	m := MapOf(
		P("mass", Float(26.98)),
		P("count", Int(3)),
		P("name", String("Al")),
	)

	f, ok := m.GetFloat("mass")
	require.True(t, ok)
	assert.Equal(t, 26.98, f)

	f, ok = m.GetFloat("count")
	require.True(t, ok)
	assert.Equal(t, 3.0, f)

	_, ok = m.GetFloat("name")
	assert.False(t, ok)
}
