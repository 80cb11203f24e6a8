package comparisons

import (
	"testing"

	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	"github.com/g-m-twostay/rbstat/Trees"
	"github.com/puzpuzpuz/xsync/v3"
)

// point lookups only: the hash maps are a floor for what an ordered tree can
// reach when order isn't needed.
func BenchmarkLookup_RBTree(b *testing.B) {
	a := randomKeys(b)
	tree := Trees.From[int, int, uint32](sortedUnique(a), nil)
	b.ResetTimer()
	for range b.N {
		for _, k := range a {
			if !tree.Has(k) {
				b.Fail()
			}
		}
	}
}

func BenchmarkLookup_HashMap(b *testing.B) {
	a := randomKeys(b)
	m := hashmap.New[int, int]()
	for _, k := range a {
		m.Set(k, k)
	}
	b.ResetTimer()
	for range b.N {
		for _, k := range a {
			if _, ok := m.Get(k); !ok {
				b.Fail()
			}
		}
	}
}

func BenchmarkLookup_HaxMap(b *testing.B) {
	a := randomKeys(b)
	m := haxmap.New[int, int](uintptr(len(a)))
	for _, k := range a {
		m.Set(k, k)
	}
	b.ResetTimer()
	for range b.N {
		for _, k := range a {
			if _, ok := m.Get(k); !ok {
				b.Fail()
			}
		}
	}
}

func BenchmarkLookup_XSync(b *testing.B) {
	a := randomKeys(b)
	m := xsync.NewMapOf[int, int]()
	for _, k := range a {
		m.Store(k, k)
	}
	b.ResetTimer()
	for range b.N {
		for _, k := range a {
			if _, ok := m.Load(k); !ok {
				b.Fail()
			}
		}
	}
}
