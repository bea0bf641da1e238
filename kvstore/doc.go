// Package kvstore defines the ordered key-value store interface consumed by
// the queue packages. The interface is deliberately small: point reads and
// writes, a distinct-key count, the maximum entry, and ascending iteration.
//
// Two implementations ship with this module:
//
//   - kvstore/memory: a btree-backed in-memory store
//   - kvstore/pebble: a Pebble-backed on-disk store
//
// All methods return errors so that fallible backends fit the same interface;
// the in-memory implementation never produces one.
package kvstore
