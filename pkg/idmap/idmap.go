package idmap

import (
	"iter"
	"strconv"
)

// Resolver maps identifiers to labels, assigning new labels on first sight.
type Resolver interface {
	Resolve(id string) string
}

// Entry pairs an original identifier with its assigned label.
type Entry struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Map is an identifier-to-label mapping with a fixed label prefix.
// The zero value is ready to use and produces labels without a prefix.
type Map struct {
	base   string
	labels map[string]string
	order  []string
}

// New creates an empty Map whose labels start with base.
func New(base string) *Map {
	return &Map{base: base, labels: make(map[string]string)}
}

// Resolve returns the label for id, assigning base+(Len()+1) if id is new.
// Any string is accepted, including the empty string.
func (m *Map) Resolve(id string) string {
	if label, ok := m.labels[id]; ok {
		return label
	}
	if m.labels == nil {
		m.labels = make(map[string]string)
	}
	label := m.base + strconv.Itoa(len(m.order)+1)
	m.labels[id] = label
	m.order = append(m.order, id)
	return label
}

// Lookup returns the label previously assigned to id without assigning one.
func (m *Map) Lookup(id string) (string, bool) {
	label, ok := m.labels[id]
	return label, ok
}

// Len returns the number of distinct identifiers resolved so far.
func (m *Map) Len() int { return len(m.order) }

// Base returns the label prefix.
func (m *Map) Base() string { return m.base }

// Entries returns all assignments in first-seen order.
func (m *Map) Entries() []Entry {
	out := make([]Entry, len(m.order))
	for i, id := range m.order {
		out[i] = Entry{ID: id, Label: m.labels[id]}
	}
	return out
}

// All iterates over (identifier, label) pairs in first-seen order.
func (m *Map) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, id := range m.order {
			if !yield(id, m.labels[id]) {
				return
			}
		}
	}
}

var _ Resolver = (*Map)(nil)
