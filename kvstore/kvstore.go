package kvstore

// Store is an ordered key-value store. Keys are ordered by bytes.Compare and
// values are opaque byte sequences.
//
// Implementations are not required to be safe for concurrent use; a store
// instance is expected to be owned by a single consumer.
type Store interface {
	// Contains reports whether key is present.
	Contains(key []byte) (bool, error)

	// Get returns the value stored under key. The second return value is
	// false when the key is absent. The returned slice is a copy and may be
	// retained by the caller.
	Get(key []byte) ([]byte, bool, error)

	// Set stores value under key, overwriting any existing value.
	Set(key, value []byte) error

	// Delete removes key. Deleting an absent key is a no-op.
	Delete(key []byte) error

	// Len returns the number of distinct keys.
	Len() (int, error)

	// Max returns the entry with the largest key, or ok=false when the store
	// is empty. The returned slices are copies.
	Max() (key, value []byte, ok bool, err error)

	// Ascend calls fn for each entry in ascending key order until fn returns
	// false or the store is exhausted. The slices passed to fn are only valid
	// for the duration of the call.
	Ascend(fn func(key, value []byte) bool) error
}
