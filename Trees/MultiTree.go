package Trees

import "golang.org/x/exp/constraints"

// MultiTree is a variant that orders keys with a custom comparator and allows
// repeated keys. Equal keys are kept in the order they were inserted.
type MultiTree[K, V any, S constraints.Unsigned] struct {
	base[K, V, S]
	Cmp func(K, K) int // negative if a<b, 0 if a==b, positive if a>b.
}

// NewMulti empty tree ordered by cmp.
func NewMulti[K, V any, S constraints.Unsigned](hint S, cmp func(K, K) int) *MultiTree[K, V, S] {
	return &MultiTree[K, V, S]{makeBase[K, V, S](hint), cmp}
}

// Insert k with v after every element with an equal key.
// Time: O(log n)
func (u *MultiTree[K, V, S]) Insert(k K, v V) Iterator[K, V, S] {
	var p S
	left := false
	for curI := u.root; curI != 0; {
		p = curI
		if u.Cmp(k, u.getP(curI).k) < 0 {
			curI, left = u.ifs[curI].l, true
		} else {
			curI, left = u.ifs[curI].r, false
		}
	}
	ni := u.malloc(k, v)
	u.attach(p, left, ni)
	return u.iter(ni)
}

// Find the first element with key k met on the way down, which isn't necessarily
// the leftmost one. End if there's none.
// Time: O(log n); Space: O(1)
func (u *MultiTree[K, V, S]) Find(k K) Iterator[K, V, S] {
	for curI := u.root; curI != 0; {
		if c := u.Cmp(k, u.getP(curI).k); c < 0 {
			curI = u.ifs[curI].l
		} else if c > 0 {
			curI = u.ifs[curI].r
		} else {
			return u.iter(curI)
		}
	}
	return u.End()
}

// bound finds the first node whose key is >=k, or >k if strict.
func (u *MultiTree[K, V, S]) bound(k K, strict bool) S {
	var p S
	for curI := u.root; curI != 0; {
		if c := u.Cmp(u.getP(curI).k, k); c > 0 || (!strict && c == 0) {
			p = curI
			curI = u.ifs[curI].l
		} else {
			curI = u.ifs[curI].r
		}
	}
	return p
}

// LowerBound is the first element whose key isn't less than k.
func (u *MultiTree[K, V, S]) LowerBound(k K) Iterator[K, V, S] {
	return u.iter(u.bound(k, false))
}

// UpperBound is the first element whose key is greater than k.
func (u *MultiTree[K, V, S]) UpperBound(k K) Iterator[K, V, S] {
	return u.iter(u.bound(k, true))
}

// Count the elements with key k.
// Time: O(log n)
func (u *MultiTree[K, V, S]) Count(k K) int {
	return u.orderOf(u.bound(k, true)) - u.orderOf(u.bound(k, false))
}

// RemoveOne removes the leftmost element with key k. Returns false if there's none.
// Time: O(log n)
func (u *MultiTree[K, V, S]) RemoveOne(k K) bool {
	lb := u.bound(k, false)
	if lb == 0 || u.Cmp(u.getP(lb).k, k) != 0 {
		return false
	}
	u.remove(lb)
	return true
}

// RemoveAll elements with key k and return how many were removed.
// Time: O(m log n) for m matches.
func (u *MultiTree[K, V, S]) RemoveAll(k K) int {
	c := 0
	for it := u.LowerBound(k); !it.IsEnd() && u.Cmp(it.Key(), k) == 0; c++ {
		it = u.Erase(it)
	}
	return c
}

// Verify [Tree.Verify]. Equal keys may be adjacent.
// Time: O(n)
func (u *MultiTree[K, V, S]) Verify() error {
	return u.verify(u.Cmp, false)
}

// Valid [Tree.Valid]
func (u *MultiTree[K, V, S]) Valid() bool {
	return u.Verify() == nil
}
