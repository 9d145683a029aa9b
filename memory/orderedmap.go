package memory

import "sort"

// orderedMap is a sorted-slice-backed map keyed by any type with a
// total order supplied via cmp. It exists because correctness of the
// outbound-edge range scan, the property range scans, and cascading
// deletion all depend on lexicographic composite-key ordering (spec
// §9, "Ordered-map requirement") - no third-party ordered-map library
// in the retrieved example pack provides that (the one ordered-map
// dependency anywhere in the corpus, wk8/go-ordered-map, preserves
// insertion order, not sort order, and so cannot serve here). A disk
// backend would encode these same composite keys as sortable byte
// strings (see the comment at the top of orderedkey.go); the
// in-memory engine uses ordinary struct comparison instead, which is
// equivalent for ordering purposes.
//
// Insert and delete are O(n) due to slice shifting; lookup and range
// start are O(log n) via binary search. This is an acceptable
// simplification for a reference in-memory engine, not a persistent
// store optimized for write-heavy workloads.
type orderedMap[K any, V any] struct {
	cmp     func(a, b K) int
	entries []mapEntry[K, V]
}

type mapEntry[K any, V any] struct {
	key K
	val V
}

func newOrderedMap[K any, V any](cmp func(a, b K) int) *orderedMap[K, V] {
	return &orderedMap[K, V]{cmp: cmp}
}

// lowerBound returns the index of the first entry whose key is >= key.
func (m *orderedMap[K, V]) lowerBound(key K) int {
	return sort.Search(len(m.entries), func(i int) bool {
		return m.cmp(m.entries[i].key, key) >= 0
	})
}

func (m *orderedMap[K, V]) Get(key K) (V, bool) {
	i := m.lowerBound(key)
	if i < len(m.entries) && m.cmp(m.entries[i].key, key) == 0 {
		return m.entries[i].val, true
	}
	var zero V
	return zero, false
}

// Set inserts key/val, or overwrites val if key is already present.
func (m *orderedMap[K, V]) Set(key K, val V) {
	i := m.lowerBound(key)
	if i < len(m.entries) && m.cmp(m.entries[i].key, key) == 0 {
		m.entries[i].val = val
		return
	}
	m.entries = append(m.entries, mapEntry[K, V]{})
	copy(m.entries[i+1:], m.entries[i:])
	m.entries[i] = mapEntry[K, V]{key: key, val: val}
}

// Delete removes key if present; a no-op otherwise.
func (m *orderedMap[K, V]) Delete(key K) {
	i := m.lowerBound(key)
	if i < len(m.entries) && m.cmp(m.entries[i].key, key) == 0 {
		m.entries = append(m.entries[:i], m.entries[i+1:]...)
	}
}

func (m *orderedMap[K, V]) Len() int {
	return len(m.entries)
}

// Range walks entries in order starting from the first key >= from,
// calling fn for each and stopping as soon as fn returns false.
func (m *orderedMap[K, V]) Range(from K, fn func(key K, val V) bool) {
	for i := m.lowerBound(from); i < len(m.entries); i++ {
		if !fn(m.entries[i].key, m.entries[i].val) {
			return
		}
	}
}

// All walks every entry in order, stopping early if fn returns false.
func (m *orderedMap[K, V]) All(fn func(key K, val V) bool) {
	for _, e := range m.entries {
		if !fn(e.key, e.val) {
			return
		}
	}
}
