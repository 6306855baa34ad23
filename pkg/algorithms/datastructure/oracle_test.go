package datastructure

import (
	"math/rand"
	"testing"

	"github.com/emirpasic/gods/lists/doublylinkedlist"
	"github.com/gammazero/deque"
)

// The tests below replay seeded random operation sequences against our
// containers and against established implementations, comparing every result.

func TestDeque_MatchesReference(t *testing.T) {
	for _, blockSize := range []int{1, 2, 8, DefaultBlockSize} {
		r := rand.New(rand.NewSource(int64(blockSize)))
		d := NewDeque[int](WithBlockSize(blockSize))
		ref := deque.New[int]()

		for step := 0; step < 20000; step++ {
			switch op := r.Intn(10); {
			case op < 3:
				d.PushBack(step)
				ref.PushBack(step)
			case op < 6:
				d.PushFront(step)
				ref.PushFront(step)
			case op < 7:
				v, err := d.PopBack()
				if ref.Len() == 0 {
					if err == nil {
						t.Fatalf("block %v step %v: PopBack on empty deque succeeded", blockSize, step)
					}
					continue
				}
				if want := ref.PopBack(); err != nil || v != want {
					t.Fatalf("block %v step %v: PopBack got %v, %v, want %v", blockSize, step, v, err, want)
				}
			case op < 8:
				v, err := d.PopFront()
				if ref.Len() == 0 {
					if err == nil {
						t.Fatalf("block %v step %v: PopFront on empty deque succeeded", blockSize, step)
					}
					continue
				}
				if want := ref.PopFront(); err != nil || v != want {
					t.Fatalf("block %v step %v: PopFront got %v, %v, want %v", blockSize, step, v, err, want)
				}
			case op < 9:
				if ref.Len() == 0 {
					continue
				}
				i := r.Intn(ref.Len())
				d.Set(i, -step)
				ref.Set(i, -step)
			default:
				if r.Intn(200) == 0 {
					d.Clear()
					ref.Clear()
				}
			}

			if d.Len() != ref.Len() {
				t.Fatalf("block %v step %v: size %v, want %v", blockSize, step, d.Len(), ref.Len())
			}
			if ref.Len() > 0 {
				i := r.Intn(ref.Len())
				if got, err := d.At(i); err != nil || got != ref.At(i) {
					t.Fatalf("block %v step %v: At(%v) got %v, %v, want %v", blockSize, step, i, got, err, ref.At(i))
				}
				if front, _ := d.Front(); front != ref.Front() {
					t.Fatalf("block %v step %v: front %v, want %v", blockSize, step, front, ref.Front())
				}
				if back, _ := d.Back(); back != ref.Back() {
					t.Fatalf("block %v step %v: back %v, want %v", blockSize, step, back, ref.Back())
				}
			}
		}

		for i := 0; i < ref.Len(); i++ {
			if d.Index(i) != ref.At(i) {
				t.Fatalf("block %v: final [%v] is %v, want %v", blockSize, i, d.Index(i), ref.At(i))
			}
		}
	}
}

func iteratorAt[T any](l *DoublyLinkedList[T], k int) ListIterator[T] {
	it := l.Begin()
	for ; k > 0; k-- {
		it = it.Next()
	}
	return it
}

func TestDoublyLinkedList_MatchesReference(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	l := NewDoublyLinkedList[int]()
	ref := doublylinkedlist.New()

	for step := 0; step < 5000; step++ {
		switch op := r.Intn(8); op {
		case 0:
			l.PushBack(step)
			ref.Add(step)
		case 1:
			l.PushFront(step)
			ref.Prepend(step)
		case 2:
			k := r.Intn(ref.Size() + 1)
			it, err := l.Insert(iteratorAt(l, k), step)
			if err != nil || it.Value() != step {
				t.Fatalf("step %v: Insert at %v returned %v", step, k, err)
			}
			ref.Insert(k, step)
		case 3:
			if ref.Size() == 0 {
				continue
			}
			k := r.Intn(ref.Size())
			next, err := l.Erase(iteratorAt(l, k))
			if err != nil {
				t.Fatalf("step %v: Erase at %v returned %v", step, k, err)
			}
			ref.Remove(k)
			if want, ok := ref.Get(k); ok != next.Valid() || (ok && next.Value() != want.(int)) {
				t.Fatalf("step %v: Erase at %v returned the wrong next position", step, k)
			}
		case 4:
			v, err := l.PopBack()
			if ref.Size() == 0 {
				if err == nil {
					t.Fatalf("step %v: PopBack on empty list succeeded", step)
				}
				continue
			}
			want, _ := ref.Get(ref.Size() - 1)
			ref.Remove(ref.Size() - 1)
			if err != nil || v != want.(int) {
				t.Fatalf("step %v: PopBack got %v, %v, want %v", step, v, err, want)
			}
		case 5:
			v, err := l.PopFront()
			if ref.Size() == 0 {
				if err == nil {
					t.Fatalf("step %v: PopFront on empty list succeeded", step)
				}
				continue
			}
			want, _ := ref.Get(0)
			ref.Remove(0)
			if err != nil || v != want.(int) {
				t.Fatalf("step %v: PopFront got %v, %v, want %v", step, v, err, want)
			}
		default:
			if r.Intn(100) == 0 {
				l.Clear()
				ref.Clear()
			}
		}

		if l.Len() != ref.Size() {
			t.Fatalf("step %v: size %v, want %v", step, l.Len(), ref.Size())
		}
	}

	got := l.Values()
	for i, want := range ref.Values() {
		if got[i] != want.(int) {
			t.Fatalf("final [%v] is %v, want %v", i, got[i], want)
		}
	}
	checkLinks(t, l)
}
