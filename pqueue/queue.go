package pqueue

import (
	"fmt"

	"github.com/krebernisak/priority-queue/kvstore"
	"github.com/krebernisak/priority-queue/packedlist"
)

// Queue is a priority queue whose entire state lives inside an ordered
// key-value store: each distinct priority maps to one store key (its 8-byte
// big-endian encoding) and the key's value is a packed list of every element
// inserted at that priority, oldest first.
//
// Higher priorities are served first. Elements sharing a priority are popped
// last-inserted-first, since Pop removes the tail of the packed list.
//
// A Queue is not safe for concurrent use.
type Queue struct {
	store kvstore.Store
}

// New returns a queue over store. The store is expected to be exclusively
// owned by the returned queue and either empty or previously populated by
// another Queue.
func New(store kvstore.Store) *Queue {
	return &Queue{store: store}
}

// IsEmpty reports whether the queue holds no elements.
func (q *Queue) IsEmpty() (bool, error) {
	n, err := q.store.Len()
	if err != nil {
		return false, fmt.Errorf("pqueue: reading store size: %w", err)
	}
	return n == 0, nil
}

// Len returns the total number of elements, summing the packed-list counts of
// every priority. It reads only the 4-byte list headers, so the cost scales
// with the number of distinct priorities rather than the number of elements.
func (q *Queue) Len() (int, error) {
	total := 0
	var countErr error
	err := q.store.Ascend(func(_, value []byte) bool {
		n, err := packedlist.Count(value)
		if err != nil {
			countErr = err
			return false
		}
		total += n
		return true
	})
	if err != nil {
		return 0, fmt.Errorf("pqueue: iterating store: %w", err)
	}
	if countErr != nil {
		return 0, countErr
	}
	return total, nil
}

// Insert adds element at the given priority. An element at an existing
// priority is appended to that priority's list; nothing is ever dropped, and
// identical payloads are retained as distinct entries. Elements larger than
// packedlist.MaxElementSize are rejected before any store write.
func (q *Queue) Insert(element []byte, priority uint64) error {
	if uint64(len(element)) > packedlist.MaxElementSize {
		return packedlist.ErrElementTooLarge
	}

	key := priorityKey(priority)
	existing, ok, err := q.store.Get(key)
	if err != nil {
		return fmt.Errorf("pqueue: reading priority %d: %w", priority, err)
	}

	var value []byte
	if ok {
		value, err = packedlist.Append(existing, element)
	} else {
		value, err = packedlist.Encode([][]byte{element})
	}
	if err != nil {
		return err
	}

	if err := q.store.Set(key, value); err != nil {
		return fmt.Errorf("pqueue: writing priority %d: %w", priority, err)
	}
	return nil
}

// Peek returns the element Pop would return next without modifying the
// queue. The second return value is false when the queue is empty.
func (q *Queue) Peek() ([]byte, bool, error) {
	_, value, ok, err := q.store.Max()
	if err != nil {
		return nil, false, fmt.Errorf("pqueue: reading max entry: %w", err)
	}
	if !ok {
		return nil, false, nil
	}

	element, err := packedlist.Last(value)
	if err != nil {
		return nil, false, err
	}
	return element, true, nil
}

// Pop removes and returns the highest-priority element. The second return
// value is false when the queue is empty. When the removed element was the
// last one at its priority, the priority's key is deleted rather than left
// holding an empty list.
func (q *Queue) Pop() ([]byte, bool, error) {
	key, value, ok, err := q.store.Max()
	if err != nil {
		return nil, false, fmt.Errorf("pqueue: reading max entry: %w", err)
	}
	if !ok {
		return nil, false, nil
	}

	removed, remaining, err := packedlist.RemoveLast(value)
	if err != nil {
		return nil, false, err
	}

	if remaining == nil {
		err = q.store.Delete(key)
	} else {
		err = q.store.Set(key, remaining)
	}
	if err != nil {
		return nil, false, fmt.Errorf("pqueue: updating priority %d: %w", parsePriority(key), err)
	}
	return removed, true, nil
}
