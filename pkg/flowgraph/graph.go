package flowgraph

import (
	"math/rand"
	"time"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/stiliangoranov/data-structures-and-algorithms/pkg/algorithms/datastructure"
)

type NodeID uint64

type Arc struct {
	Src     NodeID
	Dst     NodeID
	SrcNode *Node
	DstNode *Node

	CapUpperBound uint64
	Cost          int64
}

type Node struct {
	ID        NodeID
	Potential int64
	// Visited holds the visit round that last reached this node.
	Visited uint32

	// outgoing keeps arcs in insertion order; outgoingIndex finds the list
	// position of the arc to a given destination so it can be erased in O(1).
	outgoing      datastructure.DoublyLinkedList[*Arc]
	outgoingIndex map[NodeID]datastructure.ListIterator[*Arc]
	incoming      map[NodeID]*Arc
}

// OutgoingArcs calls fn for each outgoing arc in the order the arcs were
// added, stopping early if fn returns false.
func (n *Node) OutgoingArcs(fn func(*Arc) bool) {
	n.outgoing.Range(fn)
}

func (n *Node) NumOutgoing() int {
	return n.outgoing.Len()
}

func (n *Node) NumIncoming() int {
	return len(n.incoming)
}

type Graph struct {
	// Next node id to use
	NextID NodeID
	// Unordered set of arcs in graph
	ArcSet map[*Arc]struct{}

	SinkID   NodeID
	SourceID NodeID

	NodeMap map[NodeID]*Node
	// FIFO of ids freed by DeleteNode, or shuffled ids when RandomizeNodeIDs
	// is set.
	UnusedIDs *datastructure.Deque[NodeID]

	// If true then the graph will not generate node ids in order
	RandomizeNodeIDs bool
}

// NewGraph returns an empty graph. Node ids start at 1.
func NewGraph(randomizeNodeIDs bool) *Graph {
	fg := &Graph{
		NextID:    1,
		ArcSet:    make(map[*Arc]struct{}),
		NodeMap:   make(map[NodeID]*Node),
		UnusedIDs: datastructure.NewDeque[NodeID](datastructure.WithBlockSize(64)),
	}
	if randomizeNodeIDs {
		fg.RandomizeNodeIDs = true
		fg.PopulateUnusedIds(50)
	}
	return fg
}

func (fg *Graph) AddNode() *Node {
	id := fg.NextId()
	node := &Node{
		ID:            id,
		outgoingIndex: make(map[NodeID]datastructure.ListIterator[*Arc]),
		incoming:      make(map[NodeID]*Arc),
	}
	fg.NodeMap[id] = node
	return node
}

// AddArc adds an arc between two nodes of the graph.
func (fg *Graph) AddArc(src, dst *Node) (*Arc, error) {
	return fg.AddArcByID(src.ID, dst.ID)
}

func (fg *Graph) AddArcByID(src, dst NodeID) (*Arc, error) {
	srcNode := fg.NodeMap[src]
	if srcNode == nil {
		return nil, errors.Errorf("graph: AddArc error, src node with id:%d not found", src)
	}
	dstNode := fg.NodeMap[dst]
	if dstNode == nil {
		return nil, errors.Errorf("graph: AddArc error, dst node with id:%d not found", dst)
	}
	if _, ok := srcNode.outgoingIndex[dst]; ok {
		return nil, errors.Errorf("graph: AddArc error, arc %d->%d already present", src, dst)
	}

	arc := &Arc{Src: src, Dst: dst, SrcNode: srcNode, DstNode: dstNode}
	srcNode.outgoing.PushBack(arc)
	srcNode.outgoingIndex[dst] = srcNode.outgoing.End().Prev()
	dstNode.incoming[src] = arc
	fg.ArcSet[arc] = struct{}{}
	return arc, nil
}

func (fg *Graph) AddArcWithCapAndCost(src, dst NodeID, cap uint64, cost int64) (*Arc, error) {
	arc, err := fg.AddArcByID(src, dst)
	if err != nil {
		return nil, err
	}
	arc.Cost = cost
	arc.CapUpperBound = cap
	return arc, nil
}

func (fg *Graph) DeleteArc(arc *Arc) {
	src := arc.SrcNode
	if it, ok := src.outgoingIndex[arc.Dst]; ok {
		if _, err := src.outgoing.Erase(it); err != nil {
			glog.Errorf("graph: DeleteArc %d->%d: %v", arc.Src, arc.Dst, err)
		}
		delete(src.outgoingIndex, arc.Dst)
	}
	delete(arc.DstNode.incoming, arc.Src)
	delete(fg.ArcSet, arc)
}

// DeleteNode removes node and every arc touching it. Its id is reused by a
// later AddNode.
func (fg *Graph) DeleteNode(node *Node) {
	var arcs []*Arc
	node.OutgoingArcs(func(arc *Arc) bool {
		arcs = append(arcs, arc)
		return true
	})
	for _, arc := range node.incoming {
		arcs = append(arcs, arc)
	}
	for _, arc := range arcs {
		fg.DeleteArc(arc)
	}

	delete(fg.NodeMap, node.ID)
	fg.UnusedIDs.PushBack(node.ID)
}

func (fg *Graph) NumArcs() int {
	return len(fg.ArcSet)
}

func (fg *Graph) Node(id NodeID) *Node {
	return fg.NodeMap[id]
}

func (fg *Graph) NumNodes() int {
	return len(fg.NodeMap)
}

// MaxNodeID is an exclusive upper bound on the ids handed out so far.
// Slices indexed by NodeID need this length.
func (fg *Graph) MaxNodeID() NodeID {
	return fg.NextID
}

// Returns nil if arc not found
func (fg *Graph) GetArcByIDs(src, dst NodeID) *Arc {
	node := fg.NodeMap[src]
	if node == nil {
		return nil
	}
	it, ok := node.outgoingIndex[dst]
	if !ok {
		return nil
	}
	return it.Value()
}

// Returns the NextID to assign to a node
func (fg *Graph) NextId() NodeID {
	if fg.RandomizeNodeIDs && fg.UnusedIDs.IsEmpty() {
		fg.PopulateUnusedIds(fg.NextID * 2)
	}
	if id, err := fg.UnusedIDs.PopFront(); err == nil {
		return id
	}
	newID := fg.NextID
	fg.NextID++
	return newID
}

// PopulateUnusedIds queues the ids in [NextID, newNextID) in random order.
func (fg *Graph) PopulateUnusedIds(newNextID NodeID) {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	ids := make([]NodeID, 0, newNextID-fg.NextID)
	for i := fg.NextID; i < newNextID; i++ {
		ids = append(ids, i)
	}
	// Fisher-Yates shuffle
	for i := range ids {
		j := r.Intn(i + 1)
		ids[i], ids[j] = ids[j], ids[i]
	}
	for _, id := range ids {
		fg.UnusedIDs.PushBack(id)
	}
	glog.V(4).Infof("graph: queued %d shuffled node ids, next id %d", len(ids), newNextID)
	fg.NextID = newNextID
}
