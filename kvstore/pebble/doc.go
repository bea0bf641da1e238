// Package pebble provides a kvstore.Store backed by a Pebble database.
// Pebble keeps keys in byte order, so the store's iteration and maximum-entry
// semantics come directly from the underlying LSM tree.
//
// Basic usage:
//
//	store, err := pebble.Open("./data")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer store.Close()
//
//	_ = store.Set([]byte("a"), []byte("1"))
//	key, value, ok, _ := store.Max()
package pebble
