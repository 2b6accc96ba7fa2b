package model

// Value is a sealed interface over the document node types.
// Only String, Int, Float, Bool, Array, and *Map implement it.
type Value interface {
	value() // Sealed - only these types implement it
}

// String represents a string scalar.
type String string

func (String) value() {}

// Int represents an integer scalar. Always int64.
type Int int64

func (Int) value() {}

// Float represents a floating-point scalar. Coefficients, masses, and
// charges are physical quantities, so floats are first-class here.
type Float float64

func (Float) value() {}

// Bool represents a boolean scalar.
type Bool bool

func (Bool) value() {}

// Array represents an ordered list of values.
type Array []Value

func (Array) value() {}

// Map is an object whose keys iterate in insertion order.
// Use the zero value via NewMap; the nil *Map is not usable.
type Map struct {
	keys  []string
	items map[string]Value
}

func (*Map) value() {}

// NewMap creates an empty ordered map.
func NewMap() *Map {
	return &Map{items: make(map[string]Value)}
}

// Pair is a key-value pair for literal Map construction.
type Pair struct {
	Key   string
	Value Value
}

// P is a shorthand Pair constructor.
// Example: MapOf(P("id", String("demo")), P("mass", Float(26.98)))
func P(key string, value Value) Pair {
	return Pair{Key: key, Value: value}
}

// MapOf creates a Map from pairs, preserving the given order.
func MapOf(pairs ...Pair) *Map {
	m := NewMap()
	for _, p := range pairs {
		m.Set(p.Key, p.Value)
	}
	return m
}

// Set assigns key to value. Assignment is idempotent: setting a key twice
// keeps only the latest value, at the position of the first assignment.
func (m *Map) Set(key string, value Value) {
	if _, ok := m.items[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.items[key] = value
}

// Get returns the value for key and whether it is present.
func (m *Map) Get(key string) (Value, bool) {
	v, ok := m.items[key]
	return v, ok
}

// Has reports whether key is present.
func (m *Map) Has(key string) bool {
	_, ok := m.items[key]
	return ok
}

// Append adds value under key. A first append behaves like Set; appending
// to an existing key collapses the values into an Array. This mirrors how
// repeated elements (atom, pair_coeff, term) accumulate in a record.
func (m *Map) Append(key string, value Value) {
	existing, ok := m.items[key]
	if !ok {
		m.Set(key, value)
		return
	}
	if arr, isArr := existing.(Array); isArr {
		m.items[key] = append(arr, value)
		return
	}
	m.items[key] = Array{existing, value}
}

// Delete removes key if present.
func (m *Map) Delete(key string) {
	if _, ok := m.items[key]; !ok {
		return
	}
	delete(m.items, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the keys in insertion order. The returned slice is a copy.
func (m *Map) Keys() []string {
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// Len returns the number of keys.
func (m *Map) Len() int {
	return len(m.keys)
}

// GetMap returns the value for key as a *Map, or nil if absent or not a map.
func (m *Map) GetMap(key string) *Map {
	v, ok := m.items[key]
	if !ok {
		return nil
	}
	sub, _ := v.(*Map)
	return sub
}

// GetString returns the value for key as a string, or "" if absent.
func (m *Map) GetString(key string) string {
	v, ok := m.items[key]
	if !ok {
		return ""
	}
	s, _ := v.(String)
	return string(s)
}

// GetFloat returns the value for key as a float64. Int values are widened.
func (m *Map) GetFloat(key string) (float64, bool) {
	v, ok := m.items[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case Float:
		return float64(n), true
	case Int:
		return float64(n), true
	}
	return 0, false
}

// AsList returns the value for key as a slice. A scalar value yields a
// one-element slice; an Array yields its elements; absent yields nil.
func (m *Map) AsList(key string) []Value {
	v, ok := m.items[key]
	if !ok {
		return nil
	}
	if arr, isArr := v.(Array); isArr {
		return arr
	}
	return []Value{v}
}
