package pqueue_test

import (
	"fmt"

	"github.com/krebernisak/priority-queue/kvstore/memory"
	"github.com/krebernisak/priority-queue/pqueue"
)

// Example demonstrates basic priority-ordered consumption.
func Example() {
	q := pqueue.New(memory.New())

	_ = q.Insert([]byte("medium"), 5)
	_ = q.Insert([]byte("high"), 10)
	_ = q.Insert([]byte("low"), 3)

	for {
		element, ok, _ := q.Pop()
		if !ok {
			break
		}
		fmt.Println(string(element))
	}

	// Output:
	// high
	// medium
	// low
}

// ExampleQueue_Insert shows that elements sharing a priority are all
// retained and come back last-inserted-first.
func ExampleQueue_Insert() {
	q := pqueue.New(memory.New())

	_ = q.Insert([]byte("first at 7"), 7)
	_ = q.Insert([]byte("second at 7"), 7)

	n, _ := q.Len()
	fmt.Println("size:", n)

	element, _, _ := q.Pop()
	fmt.Println("popped:", string(element))
	element, _, _ = q.Pop()
	fmt.Println("popped:", string(element))

	// Output:
	// size: 2
	// popped: second at 7
	// popped: first at 7
}
