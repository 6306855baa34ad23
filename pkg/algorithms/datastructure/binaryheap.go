package datastructure

// Distance is a tentative shortest-path distance to a node.
type Distance struct {
	NodeID   uint64
	Distance int64
}

// BinaryMinHeap orders Distances by ascending Distance. Use it through
// container/heap.
type BinaryMinHeap []*Distance

// NewBinaryMinHeap returns an empty heap with room for capacity entries.
func NewBinaryMinHeap(capacity int) *BinaryMinHeap {
	pq := make(BinaryMinHeap, 0, capacity)
	return &pq
}

func (pq BinaryMinHeap) Len() int { return len(pq) }

func (pq BinaryMinHeap) Less(i, j int) bool {
	return pq[i].Distance < pq[j].Distance
}

func (pq BinaryMinHeap) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
}

func (pq *BinaryMinHeap) Push(x interface{}) {
	*pq = append(*pq, x.(*Distance))
}

// Pop removes the last entry; container/heap has already moved the minimum
// there. It returns nil on an empty heap.
func (pq *BinaryMinHeap) Pop() interface{} {
	old := *pq
	n := len(old)
	if n == 0 {
		return nil
	}
	x := old[n-1]
	old[n-1] = nil
	*pq = old[0 : n-1]
	return x
}

// Peek returns the minimum without removing it, or nil if the heap is empty.
func (pq BinaryMinHeap) Peek() *Distance {
	if len(pq) == 0 {
		return nil
	}
	return pq[0]
}
