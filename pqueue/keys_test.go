package pqueue

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriorityKeyRoundTrip(t *testing.T) {
	priorities := []uint64{0, 1, 255, 256, 1 << 32, 1<<64 - 1}
	for _, p := range priorities {
		key := priorityKey(p)
		assert.Len(t, key, keySize)
		assert.Equal(t, p, parsePriority(key))
	}
}

func TestPriorityKeyOrderMatchesNumericOrder(t *testing.T) {
	// Byte-lexicographic comparison of keys must agree with numeric
	// comparison of priorities; this is what lets the store's key order
	// stand in for priority order.
	pairs := []struct{ lo, hi uint64 }{
		{0, 1},
		{1, 255},
		{255, 256},
		{256, 1 << 16},
		{1<<32 - 1, 1 << 32},
		{1 << 32, 1<<64 - 1},
	}
	for _, p := range pairs {
		assert.Negative(t, bytes.Compare(priorityKey(p.lo), priorityKey(p.hi)),
			"key for %d should sort before key for %d", p.lo, p.hi)
	}
}
