package Trees

import (
	"errors"
	"slices"
	"testing"
)

func TestFrom(t *testing.T) {
	sizes := []int{0, 1, 2, 3, 7, 15, 31, 511, 1023, 1024, 4095}
	for n := 4; n < 300; n++ {
		sizes = append(sizes, n)
	}
	for _, n := range sizes {
		ks, vs := make([]int, n), make([]int, n)
		for i := range ks {
			ks[i], vs[i] = 2*i, -i
		}
		tree := From[int, int, uint16](ks, vs)
		if err := tree.Verify(); err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}
		if tree.Size() != n {
			t.Fatalf("n=%d: tree size is %d", n, tree.Size())
		}
		if s := keys(&tree.base); !slices.Equal(s, ks) && n > 0 {
			t.Fatalf("n=%d: in-order is different from the input", n)
		}
		for i := 0; i < n; i += 1 + n/10 {
			if it := tree.At(i); *it.Value() != -i || it.Key() != 2*i {
				t.Fatalf("n=%d: %d-th element is wrong", n, i)
			}
		}
		tree.Insert(-1, 0)
		tree.Remove(0)
		if err := tree.Verify(); err != nil {
			t.Fatalf("n=%d after modifying: %v", n, err)
		}
	}
}

func TestFrom_NilValues(t *testing.T) {
	tree := From[string, int, uint8]([]string{"a", "b", "c"}, nil)
	if tree.Size() != 3 || *tree.Get("b") != 0 || !tree.Valid() {
		t.Errorf("tree isn't built from keys only")
	}
}

func TestFrom_Invalid(t *testing.T) {
	for name, f := range map[string]func(){
		"unsorted":   func() { From[int, int, uint8]([]int{1, 3, 2}, nil) },
		"duplicate":  func() { From[int, int, uint8]([]int{1, 2, 2}, nil) },
		"mismatched": func() { From[int, int, uint8]([]int{1, 2}, []int{1}) },
		"overflow":   func() { From[int, int, uint8](make([]int, 256), nil) },
	} {
		func() {
			defer func() {
				var e InvalidSliceError
				if r := recover(); r == nil {
					t.Errorf("%s input didn't panic", name)
				} else if err, ok := r.(error); !ok || !errors.As(err, &e) {
					t.Errorf("%s input panicked with %v", name, r)
				}
			}()
			f()
		}()
	}
	ks := make([]int, 255)
	for i := range ks {
		ks[i] = i
	}
	if tree := From[int, int, uint8](ks, nil); !tree.Valid() || tree.Size() != 255 {
		t.Errorf("tree using the whole index range is invalid")
	}
}
