package Trees

import (
	"cmp"
	"golang.org/x/exp/constraints"
	"math/bits"
)

// buildIfs array of size n to represent a complete binary tree, where in-order
// position i is at index i+1. The nodes on the deepest level are red unless that
// level is full, which gives every path the same number of black nodes.
// st is a reusable stack of [lo, hi, mid, depth].
func buildIfs[S constraints.Unsigned](n S, st [][4]S) (root S, ifs []info[S]) {
	ifs = make([]info[S], int(n)+1)
	if n == 0 {
		return
	}
	partial := S(bits.Len64(uint64(n)+1) - 1) // depth of the level that may be incomplete.
	root = 1 + (n-1)/2
	for st = append(st[:0], [4]S{1, n, root, 0}); len(st) > 0; {
		top := st[len(st)-1]
		st = st[:len(st)-1]
		lo, hi, mid, d := top[0], top[1], top[2], top[3]
		cur := &ifs[mid]
		cur.sz = hi - lo + 1
		if d == partial {
			cur.c = red
		}
		if lo < mid {
			cur.l = lo + (mid-1-lo)/2
			ifs[cur.l].p = mid
			st = append(st, [4]S{lo, mid - 1, cur.l, d + 1})
		}
		if mid < hi {
			cur.r = mid + 1 + (hi-mid-1)/2
			ifs[cur.r].p = mid
			st = append(st, [4]S{mid + 1, hi, cur.r, d + 1})
		}
	}
	return
}

// From a given sorted key array and the matching values, directly build a tree.
// ks must be strictly ascending; vs must be nil, in which case every value is the
// zero value, or have the same length as ks. Otherwise From panics with InvalidSliceError.
// Time: O(n)
func From[K cmp.Ordered, V any, S constraints.Unsigned](ks []K, vs []V) *RBTree[K, V, S] {
	if vs != nil && len(vs) != len(ks) {
		panic(InvalidSliceError{len(vs), "number of values doesn't match number of keys"})
	}
	if uint64(len(ks)) > uint64(^S(0)) {
		panic(InvalidSliceError{len(ks), "too many keys for the index type"})
	}
	for i := 1; i < len(ks); i++ {
		if !(ks[i-1] < ks[i]) {
			panic(InvalidSliceError{i, "keys aren't strictly ascending"})
		}
	}
	root, ifs := buildIfs(S(len(ks)), make([][4]S, 0, bits.Len(uint(len(ks)))+1))
	ps := make([]pair[K, V], len(ks))
	for i, k := range ks {
		ps[i].k = k
		if vs != nil {
			ps[i].v = vs[i]
		}
	}
	return &RBTree[K, V, S]{base[K, V, S]{root: root, ifs: ifs, ps: ps}}
}
