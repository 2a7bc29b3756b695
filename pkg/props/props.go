package props

import (
	"iter"
	"maps"
	"slices"

	"github.com/matzehuels/graphexport/pkg/errors"
)

// Pair is one key → values update.
type Pair[V comparable] struct {
	Key    string
	Values []V
}

// P is shorthand for building a Pair.
func P[V comparable](key string, values ...V) Pair[V] {
	return Pair[V]{Key: key, Values: values}
}

// Properties is a property accumulator.
//
// Keys live in exactly one of two maps: plain holds seeded lists that no merge
// has touched yet, sets holds keys that went through a merge.
type Properties[V comparable] struct {
	plain map[string][]V
	sets  map[string]*Set[V]
}

// New creates an empty accumulator.
func New[V comparable]() *Properties[V] {
	return &Properties[V]{
		plain: make(map[string][]V),
		sets:  make(map[string]*Set[V]),
	}
}

// FromMap creates an accumulator seeded with copies of the lists in m.
func FromMap[V comparable](m map[string][]V) *Properties[V] {
	p := New[V]()
	for k, vs := range m {
		p.plain[k] = slices.Clone(vs)
	}
	return p
}

// Merge applies updates in order and returns p.
func (p *Properties[V]) Merge(updates ...Pair[V]) *Properties[V] {
	for _, u := range updates {
		p.add(u.Key, u.Values)
	}
	return p
}

// MergeSeq applies every (key, values) pair yielded by seq and returns p.
func (p *Properties[V]) MergeSeq(seq iter.Seq2[string, []V]) *Properties[V] {
	for k, vs := range seq {
		p.add(k, vs)
	}
	return p
}

func (p *Properties[V]) add(key string, values []V) {
	if s, ok := p.sets[key]; ok {
		s.AddAll(values...)
		return
	}
	if p.sets == nil {
		p.sets = make(map[string]*Set[V])
	}
	if seeded, ok := p.plain[key]; ok {
		s := NewSet(seeded...)
		s.AddAll(values...)
		p.sets[key] = s
		delete(p.plain, key)
		return
	}
	p.sets[key] = NewSet(values...)
}

// Values returns the ordered values stored under key.
func (p *Properties[V]) Values(key string) ([]V, bool) {
	if s, ok := p.sets[key]; ok {
		return s.Values(), true
	}
	if vs, ok := p.plain[key]; ok {
		return slices.Clone(vs), true
	}
	return nil, false
}

// Has reports whether key holds any entry, even an empty list.
func (p *Properties[V]) Has(key string) bool {
	_, inSets := p.sets[key]
	_, inPlain := p.plain[key]
	return inSets || inPlain
}

// Len returns the number of keys.
func (p *Properties[V]) Len() int { return len(p.sets) + len(p.plain) }

// Keys returns all keys in sorted order.
func (p *Properties[V]) Keys() []string {
	keys := slices.Collect(maps.Keys(p.sets))
	keys = slices.AppendSeq(keys, maps.Keys(p.plain))
	slices.Sort(keys)
	return keys
}

// Map materializes the accumulator as plain ordered lists.
func (p *Properties[V]) Map() map[string][]V {
	out := make(map[string][]V, p.Len())
	for k, s := range p.sets {
		out[k] = s.Values()
	}
	for k, vs := range p.plain {
		out[k] = slices.Clone(vs)
	}
	return out
}

// Merge merges updates into acc and returns it.
// A nil accumulator is rejected; create one with [New] or [FromMap].
func Merge[V comparable](updates []Pair[V], acc *Properties[V]) (*Properties[V], error) {
	if acc == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "nil property accumulator")
	}
	return acc.Merge(updates...), nil
}
