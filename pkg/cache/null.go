package cache

// NullStore is a no-op store that never keeps anything.
// Useful for one-shot renders where caching should be disabled.
type NullStore struct{}

// NewNullStore creates a null store.
func NewNullStore() Store {
	return NullStore{}
}

// Load always returns a miss.
func (NullStore) Load(int) (Allocation, bool) {
	return Allocation{}, false
}

// Save does nothing.
func (NullStore) Save(int, Allocation) {}

// Len is always zero.
func (NullStore) Len() int {
	return 0
}

// Ensure NullStore implements Store.
var _ Store = NullStore{}
