package cache

import "slices"

// MemoryStore keeps allocations in memory for the lifetime of the store.
// There is no eviction: once a row has a slot it keeps one.
type MemoryStore struct {
	slots map[int]Allocation
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{slots: make(map[int]Allocation)}
}

// Load returns the allocation for row.
func (s *MemoryStore) Load(row int) (Allocation, bool) {
	a, ok := s.slots[row]
	if !ok {
		return Allocation{}, false
	}
	a.Signatures = slices.Clone(a.Signatures)
	return a, true
}

// Save stores a copy of the allocation for row.
func (s *MemoryStore) Save(row int, a Allocation) {
	a.Signatures = slices.Clone(a.Signatures)
	s.slots[row] = a
}

// Len returns the number of stored rows.
func (s *MemoryStore) Len() int {
	return len(s.slots)
}

// Ensure MemoryStore implements Store.
var _ Store = (*MemoryStore)(nil)
