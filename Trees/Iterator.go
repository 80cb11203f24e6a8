package Trees

import "golang.org/x/exp/constraints"

// Iterator is a position in a tree: either an element or End.
// Rotations never move elements between slots, so an Iterator stays valid
// until its own element is removed or the tree is cleared. Using it after
// that is a programming error; it panics when it can be detected.
type Iterator[K, V any, S constraints.Unsigned] struct {
	t *base[K, V, S]
	n S
}

func (it Iterator[K, V, S]) mustLive(op string) {
	if it.n == 0 {
		panic("Trees: " + op + " on the end position")
	}
	if it.t.ifs[it.n].sz == 0 {
		panic("Trees: " + op + " on a removed element")
	}
}

// IsEnd reports whether it is the position after the last element.
func (it Iterator[K, V, S]) IsEnd() bool {
	return it.n == 0
}

// Equal reports whether it and o are the same position of the same tree.
func (it Iterator[K, V, S]) Equal(o Iterator[K, V, S]) bool {
	return it.t == o.t && it.n == o.n
}

// Key at the position. Panics on End.
func (it Iterator[K, V, S]) Key() K {
	it.mustLive("Key")
	return it.t.getP(it.n).k
}

// Value at the position, which may be modified in place. Panics on End.
func (it Iterator[K, V, S]) Value() *V {
	it.mustLive("Value")
	return &it.t.getP(it.n).v
}

// Next position. Next of the last element is End; Next of End panics.
// Time: amortized O(1), O(log n) worst case.
func (it Iterator[K, V, S]) Next() Iterator[K, V, S] {
	it.mustLive("Next")
	return Iterator[K, V, S]{it.t, it.t.next(it.n)}
}

// Prev position. Prev of the first element is End, Prev of End is the last element.
func (it Iterator[K, V, S]) Prev() Iterator[K, V, S] {
	if it.n == 0 {
		return Iterator[K, V, S]{it.t, it.t.highest(it.t.root)}
	}
	it.mustLive("Prev")
	return Iterator[K, V, S]{it.t, it.t.prev(it.n)}
}

// Offset moves d positions forward, or backward if d is negative. Moving
// outside the elements in either direction gives End. Offset of End panics.
// Time: O(log n)
func (it Iterator[K, V, S]) Offset(d int) Iterator[K, V, S] {
	it.mustLive("Offset")
	return Iterator[K, V, S]{it.t, it.t.distance(it.n, d)}
}

// Rank of the position, starting from 0. The rank of End is Size().
// Time: O(log n)
func (it Iterator[K, V, S]) Rank() int {
	if it.n != 0 {
		it.mustLive("Rank")
	}
	return it.t.orderOf(it.n)
}
