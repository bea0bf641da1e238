// Package packedlist implements the binary format used to pack multiple
// elements sharing one priority into a single store value. The encoding is a
// big-endian uint32 element count followed by count length-prefixed entries:
//
//	count: uint32
//	repeated count times:
//	  length: uint32
//	  bytes:  length bytes
//
// Entries are kept in insertion order, oldest first. Append patches the count
// and extends the buffer without decoding the existing entries; RemoveLast
// finds the tail in one forward scan.
//
// Basic usage:
//
//	data, _ := packedlist.Encode([][]byte{[]byte("a")})
//	data, _ = packedlist.Append(data, []byte("b"))
//
//	removed, remaining, _ := packedlist.RemoveLast(data)
//	// removed == []byte("b"), remaining holds just "a"
package packedlist
