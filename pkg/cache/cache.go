// Package cache provides the per-row slot stores behind the layout engine's
// render cache.
//
// A slot holds the [Allocation] negotiated for one row of a layout: the auto
// width, the auto height and the signature vector that was current when they
// were negotiated. The layout package decides when a slot is stale; this
// package only keeps slots.
//
// Two stores are provided:
//
//   - [MemoryStore]: keeps every slot for the lifetime of the store; used for
//     animation sessions
//   - [NullStore]: never keeps anything; every load is a miss, which turns
//     the cached render path into a full negotiation on every call
//
// Stores are not safe for concurrent use. A store belongs to exactly one
// render loop.
package cache

import "slices"

// Allocation is the negotiated space for one row.
type Allocation struct {
	// Width is the auto width shared by every Auto-width element in the row.
	Width    int
	HasWidth bool

	// Height is the auto height shared by every Auto-height element in the row.
	Height    int
	HasHeight bool

	// Signatures holds one fingerprint per element, in request order.
	Signatures []uint64
}

// Matches reports whether sigs equals the stored signature vector.
func (a Allocation) Matches(sigs []uint64) bool {
	return slices.Equal(a.Signatures, sigs)
}

// Store keeps allocations by row index.
type Store interface {
	// Load returns the allocation for row and whether one is stored.
	Load(row int) (Allocation, bool)

	// Save stores the allocation for row, replacing any previous one.
	Save(row int, a Allocation)

	// Len returns the number of rows with a stored allocation.
	Len() int
}
