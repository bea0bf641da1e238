// Package pqueue implements a priority queue simulated entirely on top of an
// ordered key-value store. There is no in-memory heap: priority ordering is
// delegated to the store's native key ordering by encoding each uint64
// priority as an 8-byte big-endian key, and elements that share a priority
// are packed into that key's value using the packedlist format.
//
// Operations map directly onto store calls: Insert is a get-append-set (or a
// fresh set for a new priority), Peek reads the tail of the maximum key's
// list, Pop removes that tail and deletes the key once its list empties, and
// Len sums the list headers across all keys.
//
// Basic usage:
//
//	q := pqueue.New(memory.New())
//
//	_ = q.Insert([]byte("low"), 1)
//	_ = q.Insert([]byte("high"), 10)
//
//	element, ok, _ := q.Pop()
//	// ok == true, element == []byte("high")
//
// Duplicate priorities are expected: every insert appends, so two elements
// with the same priority (even with identical payloads) are both retained and
// are popped in last-inserted-first order.
package pqueue
