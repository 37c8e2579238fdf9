package grouping

// orderedMap is a map that remembers the order keys were first inserted in
type orderedMap[K comparable, V any] struct {
	index  map[K]int
	keys   []K
	values []V
}

func newOrderedMap[K comparable, V any]() *orderedMap[K, V] {
	return &orderedMap[K, V]{
		index: make(map[K]int),
	}
}

// getOrInsert returns a pointer to the value stored for key, inserting the result of init if the key is new.
// The pointer is only valid until the next insert.
func (m *orderedMap[K, V]) getOrInsert(key K, init func() V) (*V, bool) {
	if i, ok := m.index[key]; ok {
		return &m.values[i], false
	}

	m.index[key] = len(m.keys)
	m.keys = append(m.keys, key)
	m.values = append(m.values, init())
	return &m.values[len(m.values)-1], true
}

func (m *orderedMap[K, V]) len() int {
	return len(m.keys)
}

// valuesInOrder returns the values in first-seen key order
func (m *orderedMap[K, V]) valuesInOrder() []V {
	out := make([]V, len(m.values))
	copy(out, m.values)
	return out
}
