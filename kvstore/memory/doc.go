// Package memory provides an in-memory kvstore.Store backed by a B-tree,
// giving ordered iteration and O(log n) point operations without any
// persistence.
//
// Basic usage:
//
//	store := memory.New()
//	_ = store.Set([]byte("a"), []byte("1"))
//	value, ok, _ := store.Get([]byte("a"))
package memory
