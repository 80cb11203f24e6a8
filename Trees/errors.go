package Trees

import "fmt"

// InvalidSliceError is raised by From when the keys aren't strictly ascending
// or when the values don't match the keys.
type InvalidSliceError struct {
	Index  int
	Reason string
}

func (e InvalidSliceError) Error() string {
	return fmt.Sprintf("invalid slice at index %d: %s", e.Index, e.Reason)
}

// CorruptError is returned by Verify. Node is the arena index where the
// property was found broken; 0 is the sentinel.
type CorruptError struct {
	Node   uint64
	Reason string
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("corrupt tree at node %d: %s", e.Node, e.Reason)
}
