package stats

// OrderedMap is a map that iterates in first-insertion order.
type OrderedMap[K comparable, V any] struct {
	index map[K]int
	keys  []K
	vals  []V
}

// NewOrderedMap returns an empty map.
func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{index: make(map[K]int)}
}

// Set stores v under k. Overwriting keeps the original position.
func (m *OrderedMap[K, V]) Set(k K, v V) {
	if i, ok := m.index[k]; ok {
		m.vals[i] = v
		return
	}

	m.index[k] = len(m.keys)
	m.keys = append(m.keys, k)
	m.vals = append(m.vals, v)
}

// Get returns the value stored under k.
func (m *OrderedMap[K, V]) Get(k K) (V, bool) {
	i, ok := m.index[k]
	if !ok {
		var zero V
		return zero, false
	}

	return m.vals[i], true
}

// Has reports whether k is present.
func (m *OrderedMap[K, V]) Has(k K) bool {
	_, ok := m.index[k]
	return ok
}

// Len returns the number of entries.
func (m *OrderedMap[K, V]) Len() int {
	return len(m.keys)
}

// Keys returns the keys in iteration order.
func (m *OrderedMap[K, V]) Keys() []K {
	out := make([]K, len(m.keys))
	copy(out, m.keys)

	return out
}

// Entries returns key/value pairs in iteration order.
func (m *OrderedMap[K, V]) Entries() []Entry[K, V] {
	out := make([]Entry[K, V], len(m.keys))
	for i, k := range m.keys {
		out[i] = Entry[K, V]{Key: k, Value: m.vals[i]}
	}

	return out
}

// Entry is one key/value pair of an OrderedMap.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// FromEntries builds a map whose order follows entries. Later duplicates overwrite values.
func FromEntries[K comparable, V any](entries []Entry[K, V]) *OrderedMap[K, V] {
	m := NewOrderedMap[K, V]()
	for _, e := range entries {
		m.Set(e.Key, e.Value)
	}

	return m
}
