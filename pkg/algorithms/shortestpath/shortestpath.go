package shortestpath

import (
	"container/heap"
	"math"

	"github.com/pkg/errors"

	"github.com/stiliangoranov/data-structures-and-algorithms/pkg/algorithms/datastructure"
	"github.com/stiliangoranov/data-structures-and-algorithms/pkg/flowgraph"
)

/**
This file contains shortest-path algorithms over a flowgraph.Graph.
Only arcs with remaining capacity are followed.
*/

// ErrUnreachable is returned by PathTo when dst has no parent chain to src.
var ErrUnreachable = errors.New("destination is unreachable")

// node states used by DEsopoPape
const (
	expanded = 0
	queued   = 1
	unseen   = 2
)

func newLabels(graph *flowgraph.Graph) ([]int64, []flowgraph.NodeID) {
	distance := make([]int64, graph.MaxNodeID())
	parent := make([]flowgraph.NodeID, graph.MaxNodeID())
	for i := range distance {
		distance[i] = math.MaxInt64
	}
	return distance, parent
}

// DEsopoPape computes distances from src and tolerates negative arc costs as
// long as there is no negative cycle. Distances and parents are indexed by
// node id; unreachable nodes keep math.MaxInt64 and parent 0.
//
// Nodes seen for the first time are queued at the back, nodes that were
// already expanded go to the front.
func DEsopoPape(graph *flowgraph.Graph, src flowgraph.NodeID) ([]int64, []flowgraph.NodeID) {
	distance, parent := newLabels(graph)
	state := make([]int, graph.MaxNodeID())
	for i := range state {
		state[i] = unseen
	}
	distance[src] = 0

	deque := datastructure.NewDeque[flowgraph.NodeID](datastructure.WithCapacity(graph.NumNodes()))
	deque.PushBack(src)
	state[src] = queued

	for !deque.IsEmpty() {
		current, _ := deque.PopFront()
		state[current] = expanded
		graph.Node(current).OutgoingArcs(func(arc *flowgraph.Arc) bool {
			next := arc.Dst
			if arc.CapUpperBound > 0 && distance[next] > distance[current]+arc.Cost {
				distance[next] = distance[current] + arc.Cost
				parent[next] = current
				switch state[next] {
				case unseen:
					state[next] = queued
					deque.PushBack(next)
				case expanded:
					state[next] = queued
					deque.PushFront(next)
				}
			}
			return true
		})
	}

	return distance, parent
}

// Dijkstra computes distances from src using reduced costs
// cost - potential(u) + potential(v), which must be non-negative. It stops as
// soon as dst is settled. visitCount must be larger than any Visited mark
// already on the nodes.
func Dijkstra(graph *flowgraph.Graph, src, dst flowgraph.NodeID, visitCount uint32) ([]int64, []flowgraph.NodeID) {
	distance, parent := newLabels(graph)
	pq := datastructure.NewBinaryMinHeap(graph.NumNodes())
	heap.Push(pq, &datastructure.Distance{NodeID: uint64(src), Distance: 0})
	distance[src] = 0

	for pq.Len() > 0 {
		current := heap.Pop(pq).(*datastructure.Distance)
		currentNode := graph.Node(flowgraph.NodeID(current.NodeID))
		if currentNode.Visited == visitCount {
			continue
		}
		currentNode.Visited = visitCount

		if currentNode.ID == dst {
			return distance, parent
		}

		currentNode.OutgoingArcs(func(arc *flowgraph.Arc) bool {
			nextNode := arc.DstNode
			if nextNode.Visited < visitCount && arc.CapUpperBound > 0 {
				arcCost := arc.Cost - currentNode.Potential + nextNode.Potential
				updatedCost := current.Distance + arcCost
				if updatedCost < distance[nextNode.ID] {
					distance[nextNode.ID] = updatedCost
					parent[nextNode.ID] = currentNode.ID
					heap.Push(pq, &datastructure.Distance{NodeID: uint64(nextNode.ID), Distance: updatedCost})
				}
			}
			return true
		})
	}

	return distance, parent
}

// PathTo rebuilds the node sequence src..dst from a parent slice returned by
// DEsopoPape or Dijkstra.
func PathTo(parent []flowgraph.NodeID, src, dst flowgraph.NodeID) ([]flowgraph.NodeID, error) {
	path := datastructure.NewDeque[flowgraph.NodeID]()
	for current := dst; ; current = parent[current] {
		if int(current) >= len(parent) {
			return nil, errors.Wrapf(ErrUnreachable, "node %d is not in the graph", current)
		}
		path.PushFront(current)
		if current == src {
			break
		}
		if parent[current] == 0 || path.Len() > len(parent) {
			return nil, errors.Wrapf(ErrUnreachable, "no path from %d to %d", src, dst)
		}
	}
	return path.Values(), nil
}
