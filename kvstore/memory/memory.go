package memory

import (
	"bytes"

	"github.com/google/btree"

	"github.com/krebernisak/priority-queue/kvstore"
)

type entry struct {
	key   []byte
	value []byte
}

func lessEntry(a, b entry) bool {
	return bytes.Compare(a.key, b.key) < 0
}

// Store is an in-memory ordered key-value store backed by a B-tree.
// It is not safe for concurrent use.
type Store struct {
	tree *btree.BTreeG[entry]
}

var _ kvstore.Store = (*Store)(nil)

// New returns an empty store. Every call yields an independent instance;
// stores never share state.
func New() *Store {
	return &Store{
		tree: btree.NewG(2, lessEntry),
	}
}

func (s *Store) Contains(key []byte) (bool, error) {
	return s.tree.Has(entry{key: key}), nil
}

func (s *Store) Get(key []byte) ([]byte, bool, error) {
	e, ok := s.tree.Get(entry{key: key})
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), e.value...), true, nil
}

func (s *Store) Set(key, value []byte) error {
	// Copy both slices so later caller mutations cannot alias tree state.
	s.tree.ReplaceOrInsert(entry{
		key:   append([]byte(nil), key...),
		value: append([]byte(nil), value...),
	})
	return nil
}

func (s *Store) Delete(key []byte) error {
	s.tree.Delete(entry{key: key})
	return nil
}

func (s *Store) Len() (int, error) {
	return s.tree.Len(), nil
}

func (s *Store) Max() ([]byte, []byte, bool, error) {
	e, ok := s.tree.Max()
	if !ok {
		return nil, nil, false, nil
	}
	return append([]byte(nil), e.key...), append([]byte(nil), e.value...), true, nil
}

func (s *Store) Ascend(fn func(key, value []byte) bool) error {
	s.tree.Ascend(func(e entry) bool {
		return fn(e.key, e.value)
	})
	return nil
}
