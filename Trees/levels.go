package Trees

import "github.com/g-m-twostay/rbstat/Queues"

// levels walks the tree breadth first and calls f with the depth of every
// node, the root being at depth 1.
func (u *base[K, V, S]) levels(f func(depth int)) {
	if u.root == 0 {
		return
	}
	q := Queues.MakeArrayQueue[S](uint(u.Len()/2 + 1))
	q.Push(u.root)
	for depth := 1; !q.Empty(); depth++ {
		for width := q.Size(); width > 0; width-- {
			curI, _ := q.Pop()
			f(depth)
			if cur := u.ifs[curI]; cur.l != 0 {
				q.Push(cur.l)
			}
			if cur := u.ifs[curI]; cur.r != 0 {
				q.Push(cur.r)
			}
		}
	}
}

// Height is the number of nodes on the longest path from the root, 0 when empty.
// Time: O(n); Space: O(n)
func (u *base[K, V, S]) Height() (h int) {
	u.levels(func(d int) { h = d })
	return
}

// AverageDepth of the nodes, the root being at depth 1. 0 when empty.
// Time: O(n); Space: O(n)
func (u *base[K, V, S]) AverageDepth() float64 {
	total := 0
	u.levels(func(d int) { total += d })
	if n := u.Size(); n > 0 {
		return float64(total) / float64(n)
	}
	return 0
}
