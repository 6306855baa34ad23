package datastructure

import (
	"container/heap"
	"testing"
)

func TestBinaryHeap_PushAndPop(t *testing.T) {
	items := map[uint64]int64{
		1: 20, 2: 5, 3: 100,
	}

	pq := NewBinaryMinHeap(len(items))
	for id, d := range items {
		*pq = append(*pq, &Distance{NodeID: id, Distance: d})
	}
	heap.Init(pq)

	if top := pq.Peek(); top == nil || top.NodeID != 2 {
		t.Errorf("Peek is %v, should be node 2", top)
	}

	item1 := heap.Pop(pq).(*Distance)
	item2 := heap.Pop(pq).(*Distance)
	if item1.NodeID != 2 || item2.NodeID != 1 {
		t.Errorf("popped %v then %v, should be nodes 2 then 1", item1.NodeID, item2.NodeID)
	}

	heap.Push(pq, &Distance{NodeID: 4, Distance: 50})
	item3 := heap.Pop(pq).(*Distance)
	if item3.NodeID != 4 {
		t.Errorf("popped %v, should be node 4", item3.NodeID)
	}

	if pq.Len() != 1 {
		t.Errorf("heap length is %v, should be 1", pq.Len())
	}
}

func TestBinaryHeap_Empty(t *testing.T) {
	pq := NewBinaryMinHeap(0)
	if pq.Peek() != nil {
		t.Errorf("Peek on empty heap should be nil")
	}
	if pq.Pop() != nil {
		t.Errorf("Pop on empty heap should be nil")
	}
}
