package pebble

import (
	"errors"
	"fmt"

	"github.com/cockroachdb/pebble"

	"github.com/krebernisak/priority-queue/kvstore"
)

// Store is an on-disk ordered key-value store backed by Pebble. Writes are
// not synced; the store makes no durability promise.
type Store struct {
	db *pebble.DB
}

var _ kvstore.Store = (*Store)(nil)

// Open creates or opens a Pebble database at path.
func Open(path string) (*Store, error) {
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("opening pebble database: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Contains(key []byte) (bool, error) {
	_, closer, err := s.db.Get(key)
	if errors.Is(err, pebble.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, closer.Close()
}

func (s *Store) Get(key []byte) ([]byte, bool, error) {
	value, closer, err := s.db.Get(key)
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	// The value is only valid until the closer is closed; copy it out.
	buf := append([]byte(nil), value...)
	if err := closer.Close(); err != nil {
		return nil, false, err
	}
	return buf, true, nil
}

func (s *Store) Set(key, value []byte) error {
	return s.db.Set(key, value, pebble.NoSync)
}

func (s *Store) Delete(key []byte) error {
	return s.db.Delete(key, pebble.NoSync)
}

func (s *Store) Len() (int, error) {
	iter, err := s.db.NewIter(nil)
	if err != nil {
		return 0, err
	}
	n := 0
	for iter.First(); iter.Valid(); iter.Next() {
		n++
	}
	if err := iter.Error(); err != nil {
		iter.Close()
		return 0, err
	}
	return n, iter.Close()
}

func (s *Store) Max() ([]byte, []byte, bool, error) {
	iter, err := s.db.NewIter(nil)
	if err != nil {
		return nil, nil, false, err
	}
	if !iter.Last() {
		err := iter.Error()
		if cerr := iter.Close(); err == nil {
			err = cerr
		}
		return nil, nil, false, err
	}
	key := append([]byte(nil), iter.Key()...)
	value := append([]byte(nil), iter.Value()...)
	return key, value, true, iter.Close()
}

func (s *Store) Ascend(fn func(key, value []byte) bool) error {
	iter, err := s.db.NewIter(nil)
	if err != nil {
		return err
	}
	for iter.First(); iter.Valid(); iter.Next() {
		if !fn(iter.Key(), iter.Value()) {
			break
		}
	}
	if err := iter.Error(); err != nil {
		iter.Close()
		return err
	}
	return iter.Close()
}
