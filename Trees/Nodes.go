package Trees

import "golang.org/x/exp/constraints"

// color of a node. The zero value is black, so a zeroed info is a valid sentinel.
type color bool

const (
	black color = false
	red   color = true
)

// A node in the tree.
// The zero value is the sentinel: black, size 0, every link pointing at index 0.
// A vacated slot keeps sz=0 and uses l as the next pointer of the free list.
type info[S constraints.Unsigned] struct {
	p, l, r, sz S
	c           color
}

type pair[K, V any] struct {
	k K
	v V
}

// replaceChild makes ni take oi's place under p. p=0 means oi was the root.
func (u *base[K, V, S]) replaceChild(p, oi, ni S) {
	if p == 0 {
		u.root = ni
	} else if u.ifs[p].l == oi {
		u.ifs[p].l = ni
	} else {
		u.ifs[p].r = ni
	}
}

// rotateLeft promotes the right child of ni into ni's position.
// The promoted node inherits ni's size; ni is recomputed from its new children.
// Time: O(1); Space: O(1)
func (u *base[K, V, S]) rotateLeft(ni S) {
	n := &u.ifs[ni]
	rci := n.r
	rc := &u.ifs[rci]

	n.r = rc.l
	if rc.l != 0 {
		u.ifs[rc.l].p = ni
	}
	rc.p = n.p
	u.replaceChild(n.p, ni, rci)
	rc.l, n.p = ni, rci

	rc.sz = n.sz
	n.sz = u.ifs[n.l].sz + u.ifs[n.r].sz + 1
}

// rotateRight promotes the left child of ni into ni's position.
// Time: O(1); Space: O(1)
func (u *base[K, V, S]) rotateRight(ni S) {
	n := &u.ifs[ni]
	lci := n.l
	lc := &u.ifs[lci]

	n.l = lc.r
	if lc.r != 0 {
		u.ifs[lc.r].p = ni
	}
	lc.p = n.p
	u.replaceChild(n.p, ni, lci)
	lc.r, n.p = ni, lci

	lc.sz = n.sz
	n.sz = u.ifs[n.l].sz + u.ifs[n.r].sz + 1
}
