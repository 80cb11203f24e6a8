package Queues

import (
	"errors"
	"math/rand"
	"testing"
)

func TestArrayQueue_FromZeroCap(t *testing.T) {
	q := MakeArrayQueue[int](0)
	if _, err := q.Pop(); err == nil {
		t.Fatal("pop on empty queue should fail")
	} else if e := new(EmptyQueueError); !errors.As(err, &e) {
		t.Fatalf("unexpected error %v", err)
	}
	for i := 0; i < 100; i++ {
		q.Push(i)
	}
	if q.Size() != 100 {
		t.Fatalf("size %d", q.Size())
	}
	for i := 0; i < 100; i++ {
		if q.Peek() != i {
			t.Fatalf("peek %d, expected %d", q.Peek(), i)
		}
		if v, err := q.Pop(); err != nil || v != i {
			t.Fatalf("pop %d %v, expected %d", v, err, i)
		}
	}
	if !q.Empty() {
		t.Fatal("queue should be empty")
	}
}

func TestArrayQueue_Wrapped(t *testing.T) {
	rg := rand.New(rand.NewSource(int64(7)))
	q := MakeArrayQueue[int](4)
	var ref []int
	next := 0
	for i := 0; i < 10000; i++ {
		switch rg.Intn(5) {
		case 0, 1, 2:
			q.Push(next)
			ref = append(ref, next)
			next++
		case 3:
			v, err := q.Pop()
			if len(ref) == 0 {
				if err == nil {
					t.Fatal("pop on empty queue should fail")
				}
				continue
			}
			if err != nil || v != ref[0] {
				t.Fatalf("pop %d %v, expected %d", v, err, ref[0])
			}
			ref = ref[1:]
		case 4:
			q.Shrink()
		}
		if q.Size() != uint(len(ref)) {
			t.Fatalf("size %d, expected %d", q.Size(), len(ref))
		}
	}
	q.Clear()
	if !q.Empty() || q.Peek() != 0 {
		t.Fatal("queue should be empty after Clear")
	}
	q.Push(1)
	if v, _ := q.Pop(); v != 1 {
		t.Fatal("queue unusable after Clear")
	}
}

func TestArrayQueue_ShrinkEmpty(t *testing.T) {
	q := MakeArrayQueue[string](10)
	for i := 0; i < 6; i++ {
		q.Push("a")
		q.Pop()
	}
	q.Shrink()
	q.Push("b")
	q.Push("c")
	if v, _ := q.Pop(); v != "b" {
		t.Fatalf("got %q", v)
	}
	if v, _ := q.Pop(); v != "c" {
		t.Fatalf("got %q", v)
	}
}
