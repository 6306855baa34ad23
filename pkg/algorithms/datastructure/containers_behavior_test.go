package datastructure

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
)

var _ = Describe("Deque", func() {
	var d *Deque[int]

	BeforeEach(func() {
		d = NewDeque[int](WithBlockSize(8))
	})

	Describe("construction", func() {
		It("is empty by default", func() {
			Expect(d.IsEmpty()).To(BeTrue())
			Expect(d.Len()).To(Equal(0))
		})
		It("holds n zero values when built with a size", func() {
			sized := NewDequeWithSize[int](23)
			Expect(sized.IsEmpty()).To(BeFalse())
			Expect(sized.Len()).To(Equal(23))
			Expect(sized.Values()).To(Equal(make([]int, 23)))
		})
	})

	Describe("push back", func() {
		It("keeps insertion order across block boundaries", func() {
			for _, n := range []int{1, 7, 8, 9, 64, 65, 1000} {
				d.Clear()
				for i := 0; i < n; i++ {
					d.PushBack(i * 3)
				}
				Expect(d.Len()).To(Equal(n))
				Expect(d.Front()).To(Equal(0))
				Expect(d.Back()).To(Equal((n - 1) * 3))
				for i := 0; i < n; i++ {
					Expect(d.Index(i)).To(Equal(i * 3))
				}
			}
		})
	})

	Describe("push front", func() {
		It("always exposes the latest front push at index 0", func() {
			for i := 0; i < 100; i++ {
				if i%3 == 0 {
					d.PushBack(1000 + i)
				} else {
					d.PushFront(-i)
					Expect(d.Index(0)).To(Equal(-i))
				}
			}
			values := d.Values()
			Expect(values[0]).To(Equal(-98))
			Expect(values[len(values)-1]).To(Equal(1099))
		})
	})

	Describe("checked access", func() {
		It("fails only at or beyond the size", func() {
			for i := 0; i < 155; i++ {
				d.PushBack(69)
			}
			for i := 0; i < 155; i++ {
				_, err := d.At(i)
				Expect(err).Should(BeNil())
			}
			_, err := d.At(155)
			Expect(errors.Is(err, ErrOutOfRange)).To(BeTrue())
		})
		It("reports empty containers with a distinct error", func() {
			_, err := d.Front()
			Expect(errors.Is(err, ErrEmpty)).To(BeTrue())
			Expect(errors.Is(err, ErrOutOfRange)).To(BeFalse())
		})
	})

	Describe("clear", func() {
		It("leaves nothing addressable", func() {
			for i := 0; i < 150; i++ {
				d.PushFront(i)
				d.PushBack(69)
			}
			d.Clear()
			Expect(d.IsEmpty()).To(BeTrue())
			Expect(d.Len()).To(Equal(0))
			for i := -300; i < 300; i++ {
				_, err := d.At(i)
				Expect(errors.Is(err, ErrOutOfRange)).To(BeTrue())
			}
		})
	})

	Describe("copies", func() {
		It("are deep", func() {
			for i := 0; i < 100; i++ {
				d.PushBack(i)
			}
			c := d.Clone()
			for i := 0; i < d.Len(); i++ {
				Expect(d.Set(i, -1)).To(Succeed())
			}
			for i := 0; i < c.Len(); i++ {
				Expect(c.Index(i)).To(Equal(i))
			}
		})
	})

	Describe("equality", func() {
		It("follows the push sequence", func() {
			other := NewDeque[int]()
			for i := 0; i < 155; i++ {
				d.PushFront(169)
				d.PushBack(69)
				other.PushFront(169)
				other.PushBack(69)
			}
			Expect(EqualDeque(d, other)).To(BeTrue())
			other.PushBack(69)
			Expect(EqualDeque(d, other)).To(BeFalse())
			d.PushBack(70)
			Expect(EqualDeque(d, other)).To(BeFalse())
		})
	})
})

var _ = Describe("DoublyLinkedList", func() {
	var l *DoublyLinkedList[string]

	BeforeEach(func() {
		l = NewDoublyLinkedList[string]()
		for _, s := range []string{"a", "b", "c", "d", "e"} {
			l.PushBack(s)
		}
	})

	Context("erase", func() {
		It("skips exactly the erased element", func() {
			it := l.Begin()
			for it.Value() != "c" {
				it = it.Next()
			}
			next, err := l.Erase(it)
			Expect(err).Should(BeNil())
			Expect(next.Value()).To(Equal("d"))
			Expect(l.Values()).To(Equal([]string{"a", "b", "d", "e"}))
			Expect(l.Len()).To(Equal(4))
		})
	})

	Context("insert", func() {
		It("places the element before the position", func() {
			it, err := l.Insert(l.Begin().Next(), "x")
			Expect(err).Should(BeNil())
			Expect(it.Value()).To(Equal("x"))
			Expect(l.Values()).To(Equal([]string{"a", "x", "b", "c", "d", "e"}))
		})
	})

	Context("pop", func() {
		It("fails on an empty list", func() {
			l.Clear()
			_, err := l.PopBack()
			Expect(errors.Is(err, ErrEmpty)).To(BeTrue())
			_, err = l.PopFront()
			Expect(errors.Is(err, ErrEmpty)).To(BeTrue())
		})
	})

	Context("copies and equality", func() {
		It("are independent and compare element-wise", func() {
			c := l.Clone()
			Expect(EqualList(c, l)).To(BeTrue())
			Expect(l.Begin().Set("z")).To(Succeed())
			Expect(EqualList(c, l)).To(BeFalse())
			Expect(c.Front()).To(Equal("a"))
		})
	})
})
