package Trees

import (
	"golang.org/x/exp/constraints"
)

// base is the balancing engine shared by RBTree and MultiTree. It only knows
// about structure: links, colors and sizes. Ordering is left to the wrappers.
type base[K, V any, S constraints.Unsigned] struct {
	root, free S            // free is the beginning of the linked list that contains all the free indexes; info[S]::l represents next.
	ifs        []info[S]    // ifs[0] is the sentinel and is never written. all index are based on ifs.
	ps         []pair[K, V] // ps[i] corresponds to ifs[i+1].
}

func makeBase[K, V any, S constraints.Unsigned](hint S) base[K, V, S] {
	ifs := make([]info[S], 1, int(hint)+1)
	return base[K, V, S]{ifs: ifs, ps: make([]pair[K, V], 0, hint)}
}

func (u *base[K, V, S]) getP(i S) *pair[K, V] {
	return &u.ps[i-1]
}

// addFree index once.
func (u *base[K, V, S]) addFree(a S) {
	u.ifs[a] = info[S]{l: u.free}
	u.ps[a-1] = pair[K, V]{}
	u.free = a
}

// popFree index once. Returns 0 when there's no free index(when u.free==0).
func (u *base[K, V, S]) popFree() S {
	b := u.free
	u.free = u.ifs[u.free].l
	return b
}

// malloc a red node of size 1 holding k and v. Holes are filled first before
// appending to the underlying arrays.
func (u *base[K, V, S]) malloc(k K, v V) S {
	i := u.popFree()
	if i == 0 {
		if uint64(len(u.ifs)) > uint64(^S(0)) {
			panic("Trees: the tree has reached the maximum number of nodes representable by its index type")
		}
		i = S(len(u.ifs))
		u.ifs = append(u.ifs, info[S]{})
		u.ps = append(u.ps, pair[K, V]{})
	}
	u.ifs[i] = info[S]{sz: 1, c: red}
	*u.getP(i) = pair[K, V]{k, v}
	return i
}

// Size of the tree.
// Time: O(1); Space: O(1)
func (u *base[K, V, S]) Size() int {
	return int(u.ifs[u.root].sz)
}

// Len is Size in the index type of the tree.
func (u *base[K, V, S]) Len() S {
	return u.ifs[u.root].sz
}

// Clear the tree. Every node is released and the root is reset to the sentinel.
// The underlying arrays are kept for reuse. Clearing twice is the same as clearing once.
// Time: O(n) to drop references held by keys and values.
func (u *base[K, V, S]) Clear() {
	clear(u.ps)
	u.ifs, u.ps = u.ifs[:1], u.ps[:0]
	u.root, u.free = 0, 0
}

func (u *base[K, V, S]) lowest(i S) S {
	for u.ifs[i].l != 0 {
		i = u.ifs[i].l
	}
	return i
}

func (u *base[K, V, S]) highest(i S) S {
	for u.ifs[i].r != 0 {
		i = u.ifs[i].r
	}
	return i
}

// next returns the in-order successor of i, 0 if i is the last node.
func (u *base[K, V, S]) next(i S) S {
	if r := u.ifs[i].r; r != 0 {
		return u.lowest(r)
	}
	p := u.ifs[i].p
	for p != 0 && i == u.ifs[p].r {
		i, p = p, u.ifs[p].p
	}
	return p
}

// prev returns the in-order predecessor of i, 0 if i is the first node.
func (u *base[K, V, S]) prev(i S) S {
	if l := u.ifs[i].l; l != 0 {
		return u.highest(l)
	}
	p := u.ifs[i].p
	for p != 0 && i == u.ifs[p].l {
		i, p = p, u.ifs[p].p
	}
	return p
}

func (u *base[K, V, S]) iter(i S) Iterator[K, V, S] {
	return Iterator[K, V, S]{u, i}
}

// Begin is the position of the smallest element, End if the tree is empty.
func (u *base[K, V, S]) Begin() Iterator[K, V, S] {
	return u.iter(u.lowest(u.root))
}

// End is the position after the largest element.
func (u *base[K, V, S]) End() Iterator[K, V, S] {
	return u.iter(0)
}

// Last is the position of the largest element, End if the tree is empty.
func (u *base[K, V, S]) Last() Iterator[K, V, S] {
	return u.iter(u.highest(u.root))
}

// At returns the k-th smallest element, starting from 0. End is returned
// when k is outside [0, Size()).
// Time: O(log n); Space: O(1)
func (u *base[K, V, S]) At(k int) Iterator[K, V, S] {
	return u.iter(u.byOrder(k))
}

// InOrder calls f on every element in ascending order until f returns false.
// The tree must not be modified by f.
func (u *base[K, V, S]) InOrder(f func(K, *V) bool) {
	for i := u.lowest(u.root); i != 0; i = u.next(i) {
		if p := u.getP(i); !f(p.k, &p.v) {
			return
		}
	}
}

// InOrderR is InOrder in descending order.
func (u *base[K, V, S]) InOrderR(f func(K, *V) bool) {
	for i := u.highest(u.root); i != 0; i = u.prev(i) {
		if p := u.getP(i); !f(p.k, &p.v) {
			return
		}
	}
}

// Erase the element at it and return the position of its successor, which
// is found before anything is unlinked. it must be a valid element of u.
// Time: O(log n)
func (u *base[K, V, S]) Erase(it Iterator[K, V, S]) Iterator[K, V, S] {
	if it.t != u {
		panic("Trees: Erase with a position of another tree")
	}
	it.mustLive("Erase")
	succ := u.next(it.n)
	u.remove(it.n)
	return u.iter(succ)
}
