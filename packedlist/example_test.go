package packedlist_test

import (
	"fmt"

	"github.com/krebernisak/priority-queue/packedlist"
)

// Example demonstrates building up a packed list and draining it from the
// tail.
func Example() {
	data, _ := packedlist.Encode([][]byte{[]byte("first")})
	data, _ = packedlist.Append(data, []byte("second"))
	data, _ = packedlist.Append(data, []byte("third"))

	count, _ := packedlist.Count(data)
	fmt.Println("count:", count)

	for data != nil {
		removed, remaining, _ := packedlist.RemoveLast(data)
		fmt.Println("removed:", string(removed))
		data = remaining
	}

	// Output:
	// count: 3
	// removed: third
	// removed: second
	// removed: first
}

// ExampleSeq iterates the elements of a packed list in insertion order.
func ExampleSeq() {
	data, _ := packedlist.Encode([][]byte{[]byte("a"), []byte("b"), []byte("c")})

	for e := range packedlist.Seq(data) {
		fmt.Println(string(e))
	}

	// Output:
	// a
	// b
	// c
}
