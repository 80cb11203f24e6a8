package Trees

import (
	"cmp"
	"strings"
	"testing"
)

func TestMultiTree_Pair(t *testing.T) {
	tree := NewMulti[int, string](uint8(0), cmp.Compare[int])
	tree.Insert(1, "a")
	tree.Insert(1, "b")
	if tree.Size() != 2 {
		t.Fatalf("tree size is %d, want 2", tree.Size())
	}
	it := tree.Find(1)
	if it.IsEnd() || it.Key() != 1 {
		t.Fatalf("Find didn't find key 1")
	}
	erased := *it.Value()
	next := tree.Erase(it)
	if tree.Size() != 1 || tree.Count(1) != 1 {
		t.Fatalf("Erase didn't remove exactly one element")
	}
	rest := tree.Begin()
	if *rest.Value() == erased {
		t.Errorf("the remaining element is the erased one")
	}
	if !next.IsEnd() && !next.Equal(rest) {
		t.Errorf("Erase returned neither the remaining element nor the end")
	}
	if err := tree.Verify(); err != nil {
		t.Error(err)
	}
}

func TestMultiTree_Order(t *testing.T) {
	tree := NewMulti[int, int](uint16(0), cmp.Compare[int])
	for i := range 300 {
		tree.Insert(i%3, i)
	}
	for k := range 3 {
		want := k
		for it := tree.LowerBound(k); !it.Equal(tree.UpperBound(k)); it = it.Next() {
			if *it.Value() != want {
				t.Fatalf("key %d has value %d at this position, want %d", k, *it.Value(), want)
			}
			want += 3
		}
		if c := tree.Count(k); c != 100 {
			t.Errorf("count of %d is %d", k, c)
		}
	}
	if tree.Count(3) != 0 || !tree.LowerBound(3).IsEnd() || !tree.Find(-1).IsEnd() {
		t.Errorf("absent key was found")
	}
	if !tree.RemoveOne(1) || *tree.LowerBound(1).Value() != 4 {
		t.Errorf("RemoveOne didn't remove the leftmost element")
	}
	if tree.RemoveOne(5) {
		t.Errorf("RemoveOne removed an absent key")
	}
	if err := tree.Verify(); err != nil {
		t.Error(err)
	}
}

func TestMultiTree_RemoveAll(t *testing.T) {
	tree := NewMulti[int, struct{}](uint32(0), cmp.Compare[int])
	for range 1000 {
		tree.Insert(7, struct{}{})
	}
	if n := tree.RemoveAll(7); n != 1000 {
		t.Errorf("removed %d, want 1000", n)
	}
	if tree.Size() != 0 || !tree.Valid() {
		t.Errorf("tree isn't empty after removing all duplicates")
	}
	for i := range 1000 {
		tree.Insert(i%10, struct{}{})
	}
	if n := tree.RemoveAll(4); n != 100 {
		t.Errorf("removed %d, want 100", n)
	}
	if tree.Size() != 900 || tree.Count(3) != 100 || tree.Count(5) != 100 || tree.Count(4) != 0 {
		t.Errorf("RemoveAll touched other keys")
	}
	if tree.RemoveAll(4) != 0 {
		t.Errorf("RemoveAll removed an absent key")
	}
	if err := tree.Verify(); err != nil {
		t.Error(err)
	}
}

func TestMultiTree_Random(t *testing.T) {
	tree := NewMulti[int, int](uint16(0), cmp.Compare[int])
	content := make(map[int]int)
	size := 0
	for i := range 5000 {
		k := rg.Intn(200)
		switch rg.Intn(4) {
		case 0, 1:
			tree.Insert(k, i)
			content[k]++
			size++
		case 2:
			if ok := tree.RemoveOne(k); ok != (content[k] > 0) {
				t.Fatalf("RemoveOne of key %v returned %v", k, ok)
			} else if ok {
				content[k]--
				size--
			}
		case 3:
			if i%50 == 0 {
				size -= tree.RemoveAll(k)
				content[k] = 0
			}
		}
		if tree.Size() != size {
			t.Fatalf("tree size is %d, want %d", tree.Size(), size)
		}
		if i%10 == 0 {
			if err := tree.Verify(); err != nil {
				t.Fatal(err)
			}
		}
	}
	for k, c := range content {
		if tree.Count(k) != c {
			t.Errorf("count of %d is %d, want %d", k, tree.Count(k), c)
		}
	}
	for k := range tree.Size() {
		if r := tree.At(k).Rank(); r != k {
			t.Errorf("rank of the %d-th element is %d", k, r)
		}
	}
}

func TestMultiTree_Comparator(t *testing.T) {
	tree := NewMulti[string, int](uint8(0), func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	})
	for i, k := range []string{"b", "A", "a", "c", "B"} {
		tree.Insert(k, i)
	}
	var s []string
	tree.InOrder(func(k string, _ *int) bool {
		s = append(s, k)
		return true
	})
	if strings.Join(s, "") != "AabBc" {
		t.Errorf("in-order is %v", s)
	}
	if tree.Count("B") != 2 || tree.Find("C").IsEnd() {
		t.Errorf("comparator isn't used for lookups")
	}
	tree.getP(tree.lowest(tree.root)).k = "z"
	if tree.Valid() {
		t.Errorf("misordered keys weren't detected")
	}
}
