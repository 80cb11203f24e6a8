package commands

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"

	"github.com/g-m-twostay/rbstat/Trees"
)

const btreeDegree = 32

// orderedSet is the common ground of the compared trees.
type orderedSet interface {
	insert(k int)
	has(k int) bool
	remove(k int)
	size() int
}

// ranked sets answer the k-th smallest element without walking.
type ranked interface {
	at(i int) (int, bool)
}

type rbSet struct{ t *Trees.RBTree[int, struct{}, uint32] }

func (s rbSet) insert(k int)   { s.t.Insert(k, struct{}{}) }
func (s rbSet) has(k int) bool { return s.t.Has(k) }
func (s rbSet) remove(k int)   { s.t.Remove(k) }
func (s rbSet) size() int      { return s.t.Size() }

func (s rbSet) at(i int) (int, bool) {
	it := s.t.At(i)
	if it.IsEnd() {
		return 0, false
	}

	return it.Key(), true
}

type godsSet struct{ t *redblacktree.Tree }

func (s godsSet) insert(k int) { s.t.Put(k, struct{}{}) }

func (s godsSet) has(k int) bool {
	_, found := s.t.Get(k)

	return found
}

func (s godsSet) remove(k int) { s.t.Remove(k) }
func (s godsSet) size() int    { return s.t.Size() }

type btreeSet struct{ t *btree.BTreeG[int] }

func (s btreeSet) insert(k int)   { s.t.ReplaceOrInsert(k) }
func (s btreeSet) has(k int) bool { return s.t.Has(k) }
func (s btreeSet) remove(k int)   { s.t.Delete(k) }
func (s btreeSet) size() int      { return s.t.Len() }

type llrbSet struct{ t *llrb.LLRB }

func (s llrbSet) insert(k int)   { s.t.ReplaceOrInsert(llrb.Int(k)) }
func (s llrbSet) has(k int) bool { return s.t.Has(llrb.Int(k)) }
func (s llrbSet) remove(k int)   { s.t.Delete(llrb.Int(k)) }
func (s llrbSet) size() int      { return s.t.Len() }

type contender struct {
	name string
	make func(hint int) orderedSet
}

func contenders() []contender {
	return []contender{
		{"Trees.RBTree", func(hint int) orderedSet { return rbSet{Trees.New[int, struct{}](uint32(hint))} }},
		{"gods/redblacktree", func(int) orderedSet { return godsSet{redblacktree.NewWithIntComparator()} }},
		{"google/btree", func(int) orderedSet { return btreeSet{btree.NewOrderedG[int](btreeDegree)} }},
		{"petar/GoLLRB", func(int) orderedSet { return llrbSet{llrb.New()} }},
	}
}

// RunCompare issues the same random keys to every tree: inserts, lookups, rank
// queries where supported, then removals. A tree whose size disagrees with the
// number of distinct keys is marked failed.
func RunCompare(ctx context.Context, cfg WorkloadConfig, logger *slog.Logger) ([]Phase, error) {
	rg := rand.New(rand.NewSource(cfg.Seed))
	keys := make([]int, cfg.Size)
	distinct := make(map[int]struct{}, cfg.Size)

	for i := range keys {
		keys[i] = rg.Intn(cfg.Size)
		distinct[keys[i]] = struct{}{}
	}

	ranks := make([]int, cfg.Repeat)
	for i := range ranks {
		ranks[i] = rg.Intn(len(distinct))
	}

	var phases []Phase

	for _, c := range contenders() {
		if err := ctx.Err(); err != nil {
			return phases, fmt.Errorf("compare %s: %w", c.name, err)
		}

		set := c.make(cfg.Size)
		timed := func(name string, ops int, want int, body func()) {
			start := time.Now()
			body()

			phase := Phase{Impl: c.name, Name: name, Ops: ops, Elapsed: time.Since(start), Size: set.size()}
			if phase.Size != want {
				phase.Status = StatusFailed
				logger.Error("size mismatch", "impl", c.name, "phase", name, "size", phase.Size, "expected", want)
			} else {
				logger.Info("phase done", "impl", c.name, "phase", name, "ops", ops, "elapsed", phase.Elapsed)
			}

			phases = append(phases, phase)
		}

		timed("insert", len(keys), len(distinct), func() {
			for _, k := range keys {
				set.insert(k)
			}
		})
		timed("lookup", len(keys), len(distinct), func() {
			for _, k := range keys {
				set.has(k)
			}
		})

		if r, ok := set.(ranked); ok {
			timed("at", len(ranks), len(distinct), func() {
				for _, i := range ranks {
					r.at(i)
				}
			})
		} else {
			phases = append(phases, Phase{Impl: c.name, Name: "at", Size: set.size(), Status: StatusSkipped})
		}

		timed("remove", len(keys), 0, func() {
			for _, k := range keys {
				set.remove(k)
			}
		})
	}

	return phases, nil
}
