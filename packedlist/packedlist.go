package packedlist

import (
	"encoding/binary"
	"errors"
	"iter"
	"math"
)

const (
	countSize  = 4
	lengthSize = 4

	// MaxElementSize is the largest element the length field can describe.
	MaxElementSize = math.MaxUint32
)

var (
	// ErrElementTooLarge is returned when an element exceeds MaxElementSize.
	ErrElementTooLarge = errors.New("packedlist: element exceeds length field capacity")
	// ErrCorrupt is returned when a buffer does not hold the entries its
	// header declares.
	ErrCorrupt = errors.New("packedlist: truncated or malformed list")
)

// cursor walks the (length, bytes) pairs of a packed list front to back.
type cursor struct {
	data []byte
	off  int
	rem  int
}

func newCursor(data []byte) (cursor, error) {
	n, err := Count(data)
	if err != nil {
		return cursor{}, err
	}
	return cursor{data: data, off: countSize, rem: n}, nil
}

// next returns the next element, or ok=false once the declared count is
// exhausted. The returned slice aliases the cursor's buffer.
func (c *cursor) next() ([]byte, bool, error) {
	if c.rem == 0 {
		return nil, false, nil
	}
	if c.off+lengthSize > len(c.data) {
		return nil, false, ErrCorrupt
	}
	n := int(binary.BigEndian.Uint32(c.data[c.off:]))
	start := c.off + lengthSize
	if start+n > len(c.data) {
		return nil, false, ErrCorrupt
	}
	c.off = start + n
	c.rem--
	return c.data[start:c.off], true, nil
}

func appendEntry(buf, element []byte) []byte {
	var lb [lengthSize]byte
	binary.BigEndian.PutUint32(lb[:], uint32(len(element)))
	buf = append(buf, lb[:]...)
	return append(buf, element...)
}

// Encode serializes elements into a packed list, preserving order.
func Encode(elements [][]byte) ([]byte, error) {
	size := countSize
	for _, e := range elements {
		if uint64(len(e)) > MaxElementSize {
			return nil, ErrElementTooLarge
		}
		size += lengthSize + len(e)
	}

	buf := make([]byte, countSize, size)
	binary.BigEndian.PutUint32(buf, uint32(len(elements)))
	for _, e := range elements {
		buf = appendEntry(buf, e)
	}
	return buf, nil
}

// Decode parses a packed list back into its elements. The returned slices are
// copies and do not alias data.
func Decode(data []byte) ([][]byte, error) {
	c, err := newCursor(data)
	if err != nil {
		return nil, err
	}

	out := make([][]byte, 0, c.rem)
	for {
		e, ok, err := c.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, append([]byte(nil), e...))
	}
}

// Count returns the number of elements declared in the list header without
// walking the entries.
func Count(data []byte) (int, error) {
	if len(data) < countSize {
		return 0, ErrCorrupt
	}
	return int(binary.BigEndian.Uint32(data)), nil
}

// Append adds element to the tail of an encoded list without decoding the
// existing entries: the leading count is patched and one (length, bytes) pair
// is appended. The input buffer is not modified.
func Append(data []byte, element []byte) ([]byte, error) {
	if uint64(len(element)) > MaxElementSize {
		return nil, ErrElementTooLarge
	}
	n, err := Count(data)
	if err != nil {
		return nil, err
	}

	buf := make([]byte, len(data), len(data)+lengthSize+len(element))
	copy(buf, data)
	binary.BigEndian.PutUint32(buf, uint32(n+1))
	return appendEntry(buf, element), nil
}

// Last returns a copy of the tail element of an encoded list. A list with a
// zero count is reported as corrupt; a well-formed writer deletes the key
// instead of storing an empty list.
func Last(data []byte) ([]byte, error) {
	c, err := newCursor(data)
	if err != nil {
		return nil, err
	}

	var last []byte
	found := false
	for {
		e, ok, err := c.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		last, found = e, true
	}
	if !found {
		return nil, ErrCorrupt
	}
	return append([]byte(nil), last...), nil
}

// RemoveLast removes the tail element of an encoded list in a single forward
// scan. It returns the removed element and the re-encoded remainder; a nil
// remainder means the removed element was the only one and the caller should
// drop the list entirely.
func RemoveLast(data []byte) (removed, remaining []byte, err error) {
	c, err := newCursor(data)
	if err != nil {
		return nil, nil, err
	}
	count := c.rem
	if count == 0 {
		return nil, nil, ErrCorrupt
	}

	// Track where the last entry's length prefix begins; after the scan,
	// everything before it is the remainder and everything after it is the
	// removed payload.
	lastStart := 0
	for {
		start := c.off
		_, ok, err := c.next()
		if err != nil {
			return nil, nil, err
		}
		if !ok {
			break
		}
		lastStart = start
	}

	removed = append([]byte(nil), data[lastStart+lengthSize:c.off]...)
	if count == 1 {
		return removed, nil, nil
	}

	remaining = make([]byte, lastStart)
	copy(remaining, data[:lastStart])
	binary.BigEndian.PutUint32(remaining, uint32(count-1))
	return removed, remaining, nil
}

// Seq iterates the elements of an encoded list in insertion order. The
// yielded slices alias data and must be copied if retained. Iteration stops
// early on malformed input.
func Seq(data []byte) iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		c, err := newCursor(data)
		if err != nil {
			return
		}
		for {
			e, ok, err := c.next()
			if err != nil || !ok {
				return
			}
			if !yield(e) {
				return
			}
		}
	}
}
