package bptree

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint returns an xxhash64 digest of the records in leaf order.
// Trees that received the same records, with equal keys inserted in the same
// relative order, have the same fingerprint whatever their order or shape.
func (t *Tree) Fingerprint() uint64 {
	d := xxhash.New()
	var buf [16]byte

	c := t.Cursor()
	for ok := c.First(); ok; ok = c.Next() {
		key := c.Key()
		if key == 0 {
			key = 0 // fold -0 into +0
		}
		val := c.Value()
		binary.LittleEndian.PutUint64(buf[:8], math.Float64bits(key))
		binary.LittleEndian.PutUint64(buf[8:], uint64(len(val)))
		_, _ = d.Write(buf[:])
		_, _ = d.WriteString(val)
	}
	return d.Sum64()
}
