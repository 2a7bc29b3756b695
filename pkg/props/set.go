package props

// Set is an insertion-ordered set of comparable values.
// The zero value is an empty set ready to use.
type Set[V comparable] struct {
	index map[V]struct{}
	items []V
}

// NewSet creates a set holding values in first-seen order.
func NewSet[V comparable](values ...V) *Set[V] {
	s := &Set[V]{index: make(map[V]struct{}, len(values))}
	s.AddAll(values...)
	return s
}

// Add inserts v if absent and reports whether it was added.
func (s *Set[V]) Add(v V) bool {
	if _, ok := s.index[v]; ok {
		return false
	}
	if s.index == nil {
		s.index = make(map[V]struct{})
	}
	s.index[v] = struct{}{}
	s.items = append(s.items, v)
	return true
}

// AddAll inserts each value in order, skipping ones already present.
func (s *Set[V]) AddAll(values ...V) {
	for _, v := range values {
		s.Add(v)
	}
}

// Has reports whether v is in the set.
func (s *Set[V]) Has(v V) bool {
	_, ok := s.index[v]
	return ok
}

// Len returns the number of elements.
func (s *Set[V]) Len() int { return len(s.items) }

// Values returns a copy of the elements in insertion order.
func (s *Set[V]) Values() []V {
	out := make([]V, len(s.items))
	copy(out, s.items)
	return out
}
