package commands

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/g-m-twostay/rbstat/Trees"
)

// Sentinel workload errors.
var (
	ErrSizeMismatch  = errors.New("tree size differs from the expected count")
	ErrOrderMismatch = errors.New("positional lookup disagrees with iteration")
)

// Status of a phase.
type Status int

// Phase statuses.
const (
	StatusOK Status = iota
	StatusFailed
	StatusSkipped
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusFailed:
		return "failed"
	case StatusSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// Phase is one timed step of a workload.
type Phase struct {
	Impl    string
	Name    string
	Ops     int
	Elapsed time.Duration
	Size    int
	Status  Status
}

// NsPerOp is the average time of one operation, 0 without operations.
func (p Phase) NsPerOp() int64 {
	if p.Ops <= 0 {
		return 0
	}

	return p.Elapsed.Nanoseconds() / int64(p.Ops)
}

type multiTree = Trees.MultiTree[int, int, uint32]

// runner times phases against one tree and checks the tree after each of them.
type runner struct {
	tree   *multiTree
	logger *slog.Logger
	phases []Phase
}

// step runs body, which returns the size the tree must have afterwards.
// A negative ops counts the elements in the tree before body runs.
// Verification isn't part of the measured time.
func (r *runner) step(ctx context.Context, name string, ops int, body func() (int, error)) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("phase %q: %w", name, err)
	}

	if ops < 0 {
		ops = r.tree.Size()
	}

	start := time.Now()
	want, err := body()
	phase := Phase{Impl: "Trees.MultiTree", Name: name, Ops: ops, Elapsed: time.Since(start), Size: r.tree.Size()}

	if err == nil {
		err = r.tree.Verify()
	}

	if err == nil && phase.Size != want {
		err = fmt.Errorf("%w: %d, expected %d", ErrSizeMismatch, phase.Size, want)
	}

	if err != nil {
		phase.Status = StatusFailed
		r.phases = append(r.phases, phase)
		r.logger.Error("phase failed", "phase", name, "error", err)

		return fmt.Errorf("phase %q: %w", name, err)
	}

	r.phases = append(r.phases, phase)
	r.logger.Info("phase done", "phase", name, "ops", ops, "elapsed", phase.Elapsed, "size", phase.Size)

	return nil
}

// RunWorkload inserts, removes, clears and walks a multi-key tree following cfg,
// and returns the phases completed so far together with the first failure.
func RunWorkload(ctx context.Context, cfg WorkloadConfig, logger *slog.Logger) ([]Phase, error) {
	rg := rand.New(rand.NewSource(cfg.Seed))
	r := &runner{tree: Trees.NewMulti[int, int](uint32(cfg.Size), cmp.Compare[int]), logger: logger}
	size := cfg.Size

	steps := []struct {
		name string
		ops  int
		body func() (int, error)
	}{
		{"insert duplicates", size, func() (int, error) {
			for i := range size {
				r.tree.Insert(1, i)
			}

			return size, nil
		}},
		{"remove duplicates", size / 2, func() (int, error) {
			for range size / 2 {
				r.tree.RemoveOne(1)
			}

			return size - size/2, nil
		}},
		{"clear", -1, func() (int, error) {
			r.tree.Clear()

			return 0, nil
		}},
		{"insert random", size, func() (int, error) {
			for i := range size {
				r.tree.Insert(rg.Intn(size), i)
			}

			return size, nil
		}},
		{"remove random", size, func() (int, error) {
			removed := 0

			for range size {
				if r.tree.RemoveOne(rg.Intn(size)) {
					removed++
				}
			}

			return size - removed, nil
		}},
		{"clear", -1, func() (int, error) {
			r.tree.Clear()

			return 0, nil
		}},
		{"positional check", size, func() (int, error) {
			for i := range size {
				r.tree.Insert(rg.Intn(size), i)
			}

			it := r.tree.Begin()
			for i := range size {
				if !r.tree.At(i).Equal(it) {
					return 0, fmt.Errorf("%w: at %d", ErrOrderMismatch, i)
				}

				it = it.Next()
			}

			return size, nil
		}},
	}

	for _, s := range steps {
		if err := r.step(ctx, s.name, s.ops, s.body); err != nil {
			return r.phases, err
		}
	}

	var it Trees.Iterator[int, int, uint32]

	walk := func() (int, error) {
		for range cfg.Repeat {
			it = r.tree.Begin()
			for range cfg.Nth {
				it = it.Next()
			}
		}

		return size, nil
	}

	if err := r.step(ctx, fmt.Sprintf("step %d", cfg.Nth), cfg.Repeat, walk); err != nil {
		return r.phases, err
	}

	jump := func() (int, error) {
		for range cfg.Repeat {
			if !it.Equal(r.tree.At(0).Offset(cfg.Nth)) {
				return 0, fmt.Errorf("%w: offset %d", ErrOrderMismatch, cfg.Nth)
			}
		}

		return size, nil
	}

	if err := r.step(ctx, fmt.Sprintf("offset %d", cfg.Nth), cfg.Repeat, jump); err != nil {
		return r.phases, err
	}

	return r.phases, nil
}
