// Package Queues holds FIFO containers used for breadth-first walks.
package Queues

type Queue[T any] interface {
	Push(item T)
	Pop() (T, error)
	Peek() T
	Empty() bool
}

// ArrayQueue is a Queue backed by a circular slice that grows when it's full.
type ArrayQueue[T any] interface {
	Queue[T]
	//Shrink the backing slice to about the number of items.
	Shrink()
	//Clear all items, keeping the backing slice.
	Clear()
	Size() uint
	resize(newLen uint)
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}
