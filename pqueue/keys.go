package pqueue

import "encoding/binary"

const keySize = 8

// priorityKey encodes a priority as a fixed-width big-endian key so that the
// store's byte-lexicographic key order matches numeric priority order.
func priorityKey(priority uint64) []byte {
	key := make([]byte, keySize)
	binary.BigEndian.PutUint64(key, priority)
	return key
}

// parsePriority decodes a store key back into its priority.
func parsePriority(key []byte) uint64 {
	return binary.BigEndian.Uint64(key)
}
