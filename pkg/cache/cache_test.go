package cache

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNullStore(t *testing.T) {
	s := NewNullStore()

	// Load always returns miss
	if _, ok := s.Load(0); ok {
		t.Error("NullStore.Load should always return miss")
	}

	s.Save(0, Allocation{Width: 10, HasWidth: true})

	// Still a miss after Save
	if _, ok := s.Load(0); ok {
		t.Error("NullStore should not store data")
	}
	if s.Len() != 0 {
		t.Errorf("NullStore.Len() = %d, want 0", s.Len())
	}
}

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()

	if _, ok := s.Load(3); ok {
		t.Fatal("empty store should miss")
	}

	want := Allocation{Width: 34, HasWidth: true, Height: 19, HasHeight: true, Signatures: []uint64{1, 2}}
	s.Save(3, want)

	got, ok := s.Load(3)
	if !ok {
		t.Fatal("Load after Save should hit")
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Load mismatch (-want +got):\n%s", diff)
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}

	// Other rows untouched
	if _, ok := s.Load(0); ok {
		t.Error("row 0 should still miss")
	}
}

func TestMemoryStoreCopiesSignatures(t *testing.T) {
	s := NewMemoryStore()
	sigs := []uint64{7, 8}
	s.Save(0, Allocation{Signatures: sigs})

	sigs[0] = 99
	got, _ := s.Load(0)
	if got.Signatures[0] != 7 {
		t.Error("Save should copy the signature vector")
	}

	got.Signatures[1] = 99
	again, _ := s.Load(0)
	if again.Signatures[1] != 8 {
		t.Error("Load should return a copy of the signature vector")
	}
}

func TestAllocationMatches(t *testing.T) {
	a := Allocation{Signatures: []uint64{1, 2, 3}}

	tests := []struct {
		name string
		sigs []uint64
		want bool
	}{
		{"equal", []uint64{1, 2, 3}, true},
		{"reordered", []uint64{2, 1, 3}, false},
		{"shorter", []uint64{1, 2}, false},
		{"longer", []uint64{1, 2, 3, 4}, false},
		{"changed", []uint64{1, 2, 4}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Matches(tt.sigs); got != tt.want {
				t.Errorf("Matches(%v) = %v, want %v", tt.sigs, got, tt.want)
			}
		})
	}
}
