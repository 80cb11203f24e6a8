package Trees

func (u *base[K, V, S]) corrupt(i S, reason string) error {
	return &CorruptError{uint64(i), reason}
}

// blackHeight of the subtree at i, checking links, sizes and colors on the way.
// Recursive.
func (u *base[K, V, S]) blackHeight(i S) (int, error) {
	if i == 0 {
		return 0, nil
	}
	cur := u.ifs[i]
	if cur.sz == 0 {
		return 0, u.corrupt(i, "free slot linked into the tree")
	}
	if cur.sz != u.ifs[cur.l].sz+u.ifs[cur.r].sz+1 {
		return 0, u.corrupt(i, "size is not the sum of the children plus one")
	}
	for _, c := range [2]S{cur.l, cur.r} {
		if c == 0 {
			continue
		}
		if u.ifs[c].p != i {
			return 0, u.corrupt(c, "parent link doesn't point back")
		}
		if cur.c == red && u.ifs[c].c == red {
			return 0, u.corrupt(c, "red node with a red parent")
		}
	}
	lh, err := u.blackHeight(cur.l)
	if err != nil {
		return 0, err
	}
	rh, err := u.blackHeight(cur.r)
	if err != nil {
		return 0, err
	}
	if lh != rh {
		return 0, u.corrupt(i, "black heights of the subtrees differ")
	}
	if cur.c == black {
		lh++
	}
	return lh, nil
}

// verify every red-black and size property; cmp orders keys, strict forbids equal neighbors.
// Time: O(n)
func (u *base[K, V, S]) verify(cmp func(K, K) int, strict bool) error {
	if u.ifs[0] != (info[S]{}) {
		return u.corrupt(0, "sentinel was written")
	}
	if u.ifs[u.root].c != black {
		return u.corrupt(u.root, "root is red")
	}
	if u.ifs[u.root].p != 0 {
		return u.corrupt(u.root, "root has a parent")
	}
	if _, err := u.blackHeight(u.root); err != nil {
		return err
	}
	count := 0
	for prev, i := S(0), u.lowest(u.root); i != 0; prev, i = i, u.next(i) {
		if prev != 0 {
			if c := cmp(u.getP(prev).k, u.getP(i).k); c > 0 || (strict && c == 0) {
				return u.corrupt(i, "keys out of order")
			}
		}
		count++
	}
	if count != u.Size() {
		return u.corrupt(u.root, "in-order walk disagrees with the root size")
	}
	free := 0
	for a := u.free; a != 0; a = u.ifs[a].l {
		if free++; free > len(u.ifs) {
			return u.corrupt(a, "free list has a cycle")
		}
	}
	if count+free != len(u.ifs)-1 {
		return u.corrupt(0, "slots leaked from both the tree and the free list")
	}
	return nil
}
