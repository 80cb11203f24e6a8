package Trees

import (
	"cmp"
	"golang.org/x/exp/constraints"
)

// RBTree is a variant that supports only cmp.Ordered as keys and holds each key at most once.
// K is the type of the keys, V the type of the values, and S the type used for
// node indexes and subtree sizes. S bounds the number of nodes the tree can hold.
type RBTree[K cmp.Ordered, V any, S constraints.Unsigned] struct {
	base[K, V, S]
}

// New empty tree with room for hint elements before the arena grows.
func New[K cmp.Ordered, V any, S constraints.Unsigned](hint S) *RBTree[K, V, S] {
	return &RBTree[K, V, S]{makeBase[K, V, S](hint)}
}

// locate the node with key k. When there's none, returns 0 with the parent
// the key would be attached to and on which side.
func (u *RBTree[K, V, S]) locate(k K) (found, p S, left bool) {
	for curI := u.root; curI != 0; {
		p = curI
		if ck := u.getP(curI).k; k < ck {
			curI, left = u.ifs[curI].l, true
		} else if k > ck {
			curI, left = u.ifs[curI].r, false
		} else {
			return curI, p, false
		}
	}
	return 0, p, left
}

// Insert k with value v. If k is already in the tree nothing changes and the
// position of the existing element is returned with false.
// Time: O(log n)
func (u *RBTree[K, V, S]) Insert(k K, v V) (Iterator[K, V, S], bool) {
	found, p, left := u.locate(k)
	if found != 0 {
		return u.iter(found), false
	}
	ni := u.malloc(k, v)
	u.attach(p, left, ni)
	return u.iter(ni), true
}

// Put k with value v, overwriting the value if k is already in the tree.
func (u *RBTree[K, V, S]) Put(k K, v V) Iterator[K, V, S] {
	it, ok := u.Insert(k, v)
	if !ok {
		*it.Value() = v
	}
	return it
}

// Find the element with key k, End if it isn't in the tree.
// Time: O(log n); Space: O(1)
func (u *RBTree[K, V, S]) Find(k K) Iterator[K, V, S] {
	found, _, _ := u.locate(k)
	return u.iter(found)
}

// Get the pointer to the value of k, nil if k isn't in the tree.
func (u *RBTree[K, V, S]) Get(k K) *V {
	if found, _, _ := u.locate(k); found != 0 {
		return &u.getP(found).v
	}
	return nil
}

// Has k in the tree.
func (u *RBTree[K, V, S]) Has(k K) bool {
	found, _, _ := u.locate(k)
	return found != 0
}

// Remove k from the tree. Returns false if k wasn't there.
// Time: O(log n)
func (u *RBTree[K, V, S]) Remove(k K) bool {
	found, _, _ := u.locate(k)
	if found == 0 {
		return false
	}
	u.remove(found)
	return true
}

// RankOf k, starting from 0. If k isn't found, returns the rank as if k is added to the tree.
// Time: O(log n); Space: O(1)
func (u *RBTree[K, V, S]) RankOf(k K) (int, bool) {
	ra := 0
	for curI := u.root; curI != 0; {
		if cur := u.ifs[curI]; k < u.getP(curI).k {
			curI = cur.l
		} else if k > u.getP(curI).k {
			ra += int(u.ifs[cur.l].sz) + 1
			curI = cur.r
		} else {
			return ra + int(u.ifs[cur.l].sz), true
		}
	}
	return ra, false
}

// Predecessor of k. If strict is true, the result is <k if found; otherwise, <=k.
// End if there's no such element.
func (u *RBTree[K, V, S]) Predecessor(k K, strict bool) Iterator[K, V, S] {
	var p S
	for curI := u.root; curI != 0; {
		if ck := u.getP(curI).k; k < ck || (strict && k == ck) {
			curI = u.ifs[curI].l
		} else {
			p = curI
			curI = u.ifs[curI].r
		}
	}
	return u.iter(p)
}

// Successor of k. If strict is true, the result is >k if found; otherwise, >=k.
// End if there's no such element.
func (u *RBTree[K, V, S]) Successor(k K, strict bool) Iterator[K, V, S] {
	var p S
	for curI := u.root; curI != 0; {
		if ck := u.getP(curI).k; k > ck || (strict && k == ck) {
			curI = u.ifs[curI].r
		} else {
			p = curI
			curI = u.ifs[curI].l
		}
	}
	return u.iter(p)
}

// Verify [Tree.Verify]. Keys must be strictly ascending.
// Time: O(n)
func (u *RBTree[K, V, S]) Verify() error {
	return u.verify(cmp.Compare[K], true)
}

// Valid [Tree.Valid]
func (u *RBTree[K, V, S]) Valid() bool {
	return u.Verify() == nil
}
