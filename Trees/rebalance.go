package Trees

// attach links the fresh node ni as a child of p, then restores the tree.
// p=0 makes ni the root of an empty tree.
func (u *base[K, V, S]) attach(p S, left bool, ni S) {
	u.ifs[ni].p = p
	if p == 0 {
		u.root = ni
	} else if left {
		u.ifs[p].l = ni
	} else {
		u.ifs[p].r = ni
	}
	u.insertFixup(ni)
}

// insertFixup first counts ni in every ancestor, so that rotations recompute
// sizes from correct children, then repaints and rotates until no red node has a red parent.
// Time: O(log n)
func (u *base[K, V, S]) insertFixup(ni S) {
	for p := u.ifs[ni].p; p != 0; p = u.ifs[p].p {
		u.ifs[p].sz++
	}
	for ni != u.root && u.ifs[u.ifs[ni].p].c == red {
		pi := u.ifs[ni].p
		gi := u.ifs[pi].p // pi is red so it isn't the root.
		if pi == u.ifs[gi].l {
			if ui := u.ifs[gi].r; u.ifs[ui].c == red {
				u.ifs[pi].c, u.ifs[ui].c, u.ifs[gi].c = black, black, red
				ni = gi
				continue
			}
			if ni == u.ifs[pi].r {
				ni = pi
				u.rotateLeft(ni)
				pi = u.ifs[ni].p
			}
			u.ifs[pi].c, u.ifs[gi].c = black, red
			u.rotateRight(gi)
		} else {
			if ui := u.ifs[gi].l; u.ifs[ui].c == red {
				u.ifs[pi].c, u.ifs[ui].c, u.ifs[gi].c = black, black, red
				ni = gi
				continue
			}
			if ni == u.ifs[pi].l {
				ni = pi
				u.rotateRight(ni)
				pi = u.ifs[ni].p
			}
			u.ifs[pi].c, u.ifs[gi].c = black, red
			u.rotateLeft(gi)
		}
	}
	u.ifs[u.root].c = black
}

// transplant puts the subtree at ni where the subtree at oi was. ni may be 0.
func (u *base[K, V, S]) transplant(oi, ni S) {
	p := u.ifs[oi].p
	u.replaceChild(p, oi, ni)
	if ni != 0 {
		u.ifs[ni].p = p
	}
}

// remove unlinks the node ni, rebalances and releases its slot. When ni has two
// children its successor is relinked into ni's position, so no other node
// changes slot and iterators to them stay valid.
// Time: O(log n)
func (u *base[K, V, S]) remove(ni S) {
	n := u.ifs[ni]
	var xi, xp S // the node moved into the vacated position and its parent; xi may be 0.
	removed := n.c
	if n.l == 0 {
		xi, xp = n.r, n.p
		u.transplant(ni, n.r)
	} else if n.r == 0 {
		xi, xp = n.l, n.p
		u.transplant(ni, n.l)
	} else {
		yi := u.lowest(n.r)
		y := &u.ifs[yi]
		removed, xi = y.c, y.r
		if y.p == ni {
			xp = yi
		} else {
			xp = y.p
			u.transplant(yi, y.r)
			y.r = n.r
			u.ifs[y.r].p = yi
		}
		u.transplant(ni, yi)
		y.l = n.l
		u.ifs[y.l].p = yi
		y.c = n.c
	}

	for p := xp; p != 0; p = u.ifs[p].p {
		u.ifs[p].sz = u.ifs[u.ifs[p].l].sz + u.ifs[u.ifs[p].r].sz + 1
	}
	if removed == black {
		u.removeFixup(xi, xp)
	}
	u.addFree(ni)
}

// removeFixup resolves the missing black on the path through xi, whose parent is xp.
// xi may be the sentinel, which is why its parent is tracked separately.
func (u *base[K, V, S]) removeFixup(xi, xp S) {
	for xi != u.root && u.ifs[xi].c == black {
		if xi == u.ifs[xp].l {
			wi := u.ifs[xp].r
			if u.ifs[wi].c == red {
				u.ifs[wi].c, u.ifs[xp].c = black, red
				u.rotateLeft(xp)
				wi = u.ifs[xp].r
			}
			if w := u.ifs[wi]; u.ifs[w.l].c == black && u.ifs[w.r].c == black {
				u.ifs[wi].c = red
				xi, xp = xp, u.ifs[xp].p
				continue
			}
			if u.ifs[u.ifs[wi].r].c == black { // the near nephew is red.
				u.ifs[u.ifs[wi].l].c = black
				u.ifs[wi].c = red
				u.rotateRight(wi)
				wi = u.ifs[xp].r
			}
			u.ifs[wi].c = u.ifs[xp].c
			u.ifs[xp].c = black
			u.ifs[u.ifs[wi].r].c = black
			u.rotateLeft(xp)
		} else {
			wi := u.ifs[xp].l
			if u.ifs[wi].c == red {
				u.ifs[wi].c, u.ifs[xp].c = black, red
				u.rotateRight(xp)
				wi = u.ifs[xp].l
			}
			if w := u.ifs[wi]; u.ifs[w.l].c == black && u.ifs[w.r].c == black {
				u.ifs[wi].c = red
				xi, xp = xp, u.ifs[xp].p
				continue
			}
			if u.ifs[u.ifs[wi].l].c == black {
				u.ifs[u.ifs[wi].r].c = black
				u.ifs[wi].c = red
				u.rotateLeft(wi)
				wi = u.ifs[xp].l
			}
			u.ifs[wi].c = u.ifs[xp].c
			u.ifs[xp].c = black
			u.ifs[u.ifs[wi].l].c = black
			u.rotateRight(xp)
		}
		return
	}
	if xi != 0 {
		u.ifs[xi].c = black
	}
}
