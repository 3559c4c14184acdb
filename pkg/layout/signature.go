package layout

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"

	"github.com/matzehuels/termgrid/pkg/element"
)

// Signature is a content-addressed fingerprint of an element's kind and
// decorations. Elements that would render with the same chrome share a
// signature; any decoration change produces a different one.
type Signature uint64

// Sign fingerprints s without rendering it.
//
// The hash covers, in order: the kind tag, a nested hash of the full ordered
// decoration set, then the title, x-label and y-label when present. Every
// string is length-prefixed so adjacent fields cannot run together.
func Sign(s element.Signed) Signature {
	dec := s.Decorations()

	d := xxhash.New()
	writeField(d, string(s.Kind()))

	var nested [8]byte
	binary.LittleEndian.PutUint64(nested[:], hashDecorations(dec))
	_, _ = d.Write(nested[:])

	for _, key := range []string{element.KeyTitle, element.KeyXLabel, element.KeyYLabel} {
		if v, ok := dec.Get(key); ok {
			writeField(d, key)
			writeField(d, v)
		}
	}
	return Signature(d.Sum64())
}

// RowSignatures fingerprints every request of row, in order.
func RowSignatures(row Row) []Signature {
	sigs := make([]Signature, len(row))
	for i, req := range row {
		sigs[i] = Sign(req)
	}
	return sigs
}

// hashDecorations hashes an ordered decoration set.
func hashDecorations(dec element.Decorations) uint64 {
	d := xxhash.New()
	for _, e := range dec {
		writeField(d, e.Key)
		writeField(d, e.Value)
	}
	return d.Sum64()
}

// writeField writes a length-prefixed string.
func writeField(d *xxhash.Digest, s string) {
	var n [binary.MaxVarintLen64]byte
	_, _ = d.Write(n[:binary.PutUvarint(n[:], uint64(len(s)))])
	_, _ = d.WriteString(s)
}

// toUint64 converts a signature vector for storage.
func toUint64(sigs []Signature) []uint64 {
	out := make([]uint64, len(sigs))
	for i, s := range sigs {
		out[i] = uint64(s)
	}
	return out
}
