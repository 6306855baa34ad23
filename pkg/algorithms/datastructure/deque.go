package datastructure

import (
	"github.com/golang/glog"
)

// Deque is a double-ended queue whose elements live in fixed-size blocks
// reached through a directory of block references. Growing at either end
// allocates at most one block and, now and then, rebuilds the directory;
// elements are never moved.
//
// The zero value is an empty deque using DefaultBlockSize.
type Deque[T any] struct {
	// blocks is the directory; a nil entry is an unallocated block.
	blocks    [][]T
	blockSize int
	shift     uint
	mask      int

	// front is the physical position of logical index 0. Physical position p
	// lives in blocks[p>>shift][p&mask].
	front int
	count int

	// one released block kept around so push/pop across a block boundary
	// does not allocate every time
	spare []T
}

// NewDeque returns an empty deque configured by opts.
func NewDeque[T any](opts ...DequeOption) *Deque[T] {
	var o dequeOptions
	for _, opt := range opts {
		opt(&o)
	}

	d := &Deque[T]{}
	d.setBlockSize(o.blockSize)
	if o.capacity > 0 {
		n := (o.capacity + d.mask) >> d.shift
		size := 2*n + 2
		if size < minDirectorySize {
			size = minDirectorySize
		}
		d.initDirectory(size)
	}
	return d
}

// NewDequeWithSize returns a deque holding n zero values.
func NewDequeWithSize[T any](n int, opts ...DequeOption) *Deque[T] {
	d := NewDeque[T](append(opts[:len(opts):len(opts)], WithCapacity(n))...)
	var zero T
	for i := 0; i < n; i++ {
		d.PushBack(zero)
	}
	return d
}

func (d *Deque[T]) setBlockSize(n int) {
	d.blockSize, d.shift = normalizeBlockSize(n)
	d.mask = d.blockSize - 1
}

func (d *Deque[T]) initDirectory(size int) {
	d.blocks = make([][]T, size)
	d.recenter()
}

func (d *Deque[T]) lazyInit() {
	if d.blockSize == 0 {
		d.setBlockSize(DefaultBlockSize)
	}
	if d.blocks == nil {
		d.initDirectory(minDirectorySize)
	}
}

// recenter moves the front of an empty deque to the middle of the directory.
func (d *Deque[T]) recenter() {
	d.front = (len(d.blocks) / 2) << d.shift
}

// rebuildDirectory replaces the directory with one sized after the blocks
// currently spanned, leaving free slots on both sides. Only block references
// are copied.
func (d *Deque[T]) rebuildDirectory() {
	first := d.front >> d.shift
	last := first
	if d.count > 0 {
		last = (d.front + d.count - 1) >> d.shift
	}
	used := last - first + 1

	size := 2*used + 2
	if size < minDirectorySize {
		size = minDirectorySize
	}
	blocks := make([][]T, size)
	start := (size - used) / 2
	copy(blocks[start:], d.blocks[first:last+1])

	glog.V(4).Infof("deque: rebuilt block directory %d -> %d slots, %d blocks in use", len(d.blocks), size, used)

	d.front = start<<d.shift | d.front&d.mask
	d.blocks = blocks
}

// block returns the block at directory slot i, allocating it if needed.
func (d *Deque[T]) block(i int) []T {
	b := d.blocks[i]
	if b == nil {
		if d.spare != nil {
			b, d.spare = d.spare, nil
		} else {
			b = make([]T, d.blockSize)
		}
		d.blocks[i] = b
	}
	return b
}

// release drops the block at directory slot i. Its slots are already zeroed.
func (d *Deque[T]) release(i int) {
	if d.spare == nil {
		d.spare = d.blocks[i]
	}
	d.blocks[i] = nil
}

// IsEmpty reports whether the deque holds no elements.
func (d *Deque[T]) IsEmpty() bool {
	return d.count == 0
}

// Len returns the number of elements.
func (d *Deque[T]) Len() int {
	return d.count
}

// BlockSize returns the number of elements per block.
func (d *Deque[T]) BlockSize() int {
	if d.blockSize == 0 {
		return DefaultBlockSize
	}
	return d.blockSize
}

// PushBack adds an element to the end of the deque.
func (d *Deque[T]) PushBack(v T) {
	d.lazyInit()
	pos := d.front + d.count
	if pos>>d.shift == len(d.blocks) {
		d.rebuildDirectory()
		pos = d.front + d.count
	}
	d.block(pos >> d.shift)[pos&d.mask] = v
	d.count++
}

// PushFront adds an element to the front of the deque. It becomes index 0.
func (d *Deque[T]) PushFront(v T) {
	d.lazyInit()
	if d.front == 0 {
		d.rebuildDirectory()
	}
	d.front--
	d.block(d.front >> d.shift)[d.front&d.mask] = v
	d.count++
}

// PopBack removes and returns the last element.
func (d *Deque[T]) PopBack() (T, error) {
	var zero T
	if d.count == 0 {
		return zero, emptyError("PopBack")
	}

	pos := d.front + d.count - 1
	i, slot := pos>>d.shift, pos&d.mask
	v := d.blocks[i][slot]
	d.blocks[i][slot] = zero
	d.count--

	if slot == 0 || d.count == 0 {
		d.release(i)
	}
	if d.count == 0 {
		d.recenter()
	}
	return v, nil
}

// PopFront removes and returns the first element.
func (d *Deque[T]) PopFront() (T, error) {
	var zero T
	if d.count == 0 {
		return zero, emptyError("PopFront")
	}

	i, slot := d.front>>d.shift, d.front&d.mask
	v := d.blocks[i][slot]
	d.blocks[i][slot] = zero
	d.front++
	d.count--

	if slot == d.mask || d.count == 0 {
		d.release(i)
	}
	if d.count == 0 {
		d.recenter()
	}
	return v, nil
}

// Front returns the first element without removing it.
func (d *Deque[T]) Front() (T, error) {
	if d.count == 0 {
		var zero T
		return zero, emptyError("Front")
	}
	return d.Index(0), nil
}

// Back returns the last element without removing it.
func (d *Deque[T]) Back() (T, error) {
	if d.count == 0 {
		var zero T
		return zero, emptyError("Back")
	}
	return d.Index(d.count - 1), nil
}

// Index returns the element at logical index i without checking i against
// Len. An index outside [0, Len()) either panics with a runtime index error
// or yields a vacated slot's zero value; use At when i is not known to be
// valid.
func (d *Deque[T]) Index(i int) T {
	pos := d.front + i
	return d.blocks[pos>>d.shift][pos&d.mask]
}

// At returns the element at logical index i, or ErrOutOfRange.
func (d *Deque[T]) At(i int) (T, error) {
	if i < 0 || i >= d.count {
		var zero T
		return zero, outOfRangeError("At", i, d.count)
	}
	return d.Index(i), nil
}

// Set replaces the element at logical index i, or returns ErrOutOfRange.
func (d *Deque[T]) Set(i int, v T) error {
	if i < 0 || i >= d.count {
		return outOfRangeError("Set", i, d.count)
	}
	pos := d.front + i
	d.blocks[pos>>d.shift][pos&d.mask] = v
	return nil
}

// Clear removes all elements and releases every block. Iterators obtained
// before Clear are no longer valid.
func (d *Deque[T]) Clear() {
	d.blocks = nil
	d.spare = nil
	d.front = 0
	d.count = 0
}

// Clone returns a deep copy of d that shares no blocks with it.
func (d *Deque[T]) Clone() *Deque[T] {
	c := &Deque[T]{
		blockSize: d.blockSize,
		shift:     d.shift,
		mask:      d.mask,
		front:     d.front,
		count:     d.count,
	}
	if d.blocks == nil {
		return c
	}
	c.blocks = make([][]T, len(d.blocks))
	for i, b := range d.blocks {
		if b == nil {
			continue
		}
		c.blocks[i] = make([]T, len(b))
		copy(c.blocks[i], b)
	}
	return c
}

// Assign replaces the contents of d with a deep copy of src.
func (d *Deque[T]) Assign(src *Deque[T]) {
	if d == src {
		return
	}
	*d = *src.Clone()
}

// Range calls fn for each element from front to back, stopping early if fn
// returns false.
func (d *Deque[T]) Range(fn func(i int, v T) bool) {
	for i := 0; i < d.count; {
		pos := d.front + i
		b := d.blocks[pos>>d.shift]
		for slot := pos & d.mask; slot < len(b) && i < d.count; slot++ {
			if !fn(i, b[slot]) {
				return
			}
			i++
		}
	}
}

// Values returns the elements from front to back in a new slice.
func (d *Deque[T]) Values() []T {
	values := make([]T, 0, d.count)
	d.Range(func(_ int, v T) bool {
		values = append(values, v)
		return true
	})
	return values
}

// EqualDeque reports whether a and b hold equal elements in the same order.
func EqualDeque[T comparable](a, b *Deque[T]) bool {
	return EqualDequeFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualDequeFunc is like EqualDeque but compares elements with eq.
func EqualDequeFunc[T any](a, b *Deque[T], eq func(x, y T) bool) bool {
	if a == b {
		return true
	}
	if a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		if !eq(a.Index(i), b.Index(i)) {
			return false
		}
	}
	return true
}

// DequeIterator is a position in a Deque. Iterators compare equal when they
// refer to the same deque and index; End() is one past the last element.
type DequeIterator[T any] struct {
	d     *Deque[T]
	index int
}

// Begin returns an iterator to the first element.
func (d *Deque[T]) Begin() DequeIterator[T] {
	return DequeIterator[T]{d: d}
}

// End returns the past-the-end iterator.
func (d *Deque[T]) End() DequeIterator[T] {
	return DequeIterator[T]{d: d, index: d.count}
}

func (it DequeIterator[T]) Next() DequeIterator[T] {
	it.index++
	return it
}

func (it DequeIterator[T]) Prev() DequeIterator[T] {
	it.index--
	return it
}

func (it DequeIterator[T]) Index() int {
	return it.index
}

// Valid reports whether the iterator refers to an element.
func (it DequeIterator[T]) Valid() bool {
	return it.d != nil && it.index >= 0 && it.index < it.d.count
}

// Value returns the element the iterator refers to. It panics if the
// iterator is not Valid.
func (it DequeIterator[T]) Value() T {
	if it.d == nil {
		panic(ErrInvalidIterator)
	}
	if !it.Valid() {
		panic(outOfRangeError("DequeIterator.Value", it.index, it.d.count))
	}
	return it.d.Index(it.index)
}

// Set replaces the element the iterator refers to.
func (it DequeIterator[T]) Set(v T) error {
	if it.d == nil {
		return ErrInvalidIterator
	}
	return it.d.Set(it.index, v)
}
