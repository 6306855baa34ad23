package datastructure

import "math/bits"

const (
	// DefaultBlockSize is the number of elements per deque block.
	DefaultBlockSize = 128

	minDirectorySize = 8
)

type dequeOptions struct {
	blockSize int
	capacity  int
}

// DequeOption configures a Deque at construction time.
type DequeOption func(*dequeOptions)

// WithBlockSize sets the number of elements per block. The value is rounded
// up to the next power of two; values below 1 select DefaultBlockSize.
func WithBlockSize(n int) DequeOption {
	return func(o *dequeOptions) {
		o.blockSize = n
	}
}

// WithCapacity sizes the block directory so that n elements fit without
// rebuilding it. Blocks themselves are still allocated on demand.
func WithCapacity(n int) DequeOption {
	return func(o *dequeOptions) {
		o.capacity = n
	}
}

// normalizeBlockSize returns the power of two used for n together with its log2.
func normalizeBlockSize(n int) (int, uint) {
	if n < 1 {
		n = DefaultBlockSize
	}
	shift := uint(bits.Len(uint(n - 1)))
	return 1 << shift, shift
}
