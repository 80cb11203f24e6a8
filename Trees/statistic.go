package Trees

// byOrder finds the k-th node in in-order, starting from 0. Returns 0 when
// k is outside [0, Size()).
// Time: O(log n); Space: O(1)
func (u *base[K, V, S]) byOrder(k int) S {
	if k < 0 || k >= u.Size() {
		return 0
	}
	for curI := u.root; curI != 0; {
		if ls := int(u.ifs[u.ifs[curI].l].sz); k < ls {
			curI = u.ifs[curI].l
		} else if k > ls {
			k -= ls + 1
			curI = u.ifs[curI].r
		} else {
			return curI
		}
	}
	return 0
}

// orderOf node i, starting from 0. The sentinel is ordered after every node.
// Time: O(log n); Space: O(1)
func (u *base[K, V, S]) orderOf(i S) int {
	if i == 0 {
		return u.Size()
	}
	o := int(u.ifs[u.ifs[i].l].sz)
	for p := u.ifs[i].p; p != 0; i, p = p, u.ifs[p].p {
		if i == u.ifs[p].r {
			o += int(u.ifs[u.ifs[p].l].sz) + 1
		}
	}
	return o
}

// distance finds the node d positions away from i, either direction.
func (u *base[K, V, S]) distance(i S, d int) S {
	return u.byOrder(u.orderOf(i) + d)
}
