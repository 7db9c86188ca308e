package shadowtree

import (
	"errors"

	"github.com/katalvlaran/orbitals/bounds"
)

// ErrUnknownNode indicates a NodeID outside the tree's arena.
var ErrUnknownNode = errors.New("shadowtree: unknown node id")

// NodeID addresses a node in the tree's arena.
type NodeID int

// None is the parent of the root and the result of failed lookups.
const None NodeID = -1

// BoundUpdate records one bound change: the variable, the side of its
// interval, and the value the bound was changed to.
type BoundUpdate struct {
	Var      *bounds.Var
	Type     bounds.BoundType
	NewBound float64
}

// node is one shadow node. Parent is None for the root.
type node struct {
	parent       NodeID
	propagations []BoundUpdate
	branchings   []BoundUpdate
}

// Tree is an arena of shadow nodes rooted at Root().
type Tree struct {
	nodes []node
}

// New creates a tree holding only the root node.
func New() *Tree {
	return &Tree{nodes: []node{{parent: None}}}
}

// Root returns the root's id.
func (t *Tree) Root() NodeID { return 0 }

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int { return len(t.nodes) }

// Valid reports whether id addresses a node of this tree.
func (t *Tree) Valid(id NodeID) bool { return id >= 0 && int(id) < len(t.nodes) }

// NewChild appends a child of parent and returns its id.
func (t *Tree) NewChild(parent NodeID) (NodeID, error) {
	if !t.Valid(parent) {
		return None, ErrUnknownNode
	}
	t.nodes = append(t.nodes, node{parent: parent})

	return NodeID(len(t.nodes) - 1), nil
}

// Parent returns the parent of id, or None for the root.
func (t *Tree) Parent(id NodeID) (NodeID, error) {
	if !t.Valid(id) {
		return None, ErrUnknownNode
	}

	return t.nodes[id].parent, nil
}

// RecordPropagation appends a propagation-found bound change to id.
func (t *Tree) RecordPropagation(id NodeID, u BoundUpdate) error {
	if !t.Valid(id) {
		return ErrUnknownNode
	}
	t.nodes[id].propagations = append(t.nodes[id].propagations, u)

	return nil
}

// RecordBranching appends a branching decision to id. Decisions keep the
// order they are recorded in; replay honours that order.
func (t *Tree) RecordBranching(id NodeID, u BoundUpdate) error {
	if !t.Valid(id) {
		return ErrUnknownNode
	}
	t.nodes[id].branchings = append(t.nodes[id].branchings, u)

	return nil
}

// Propagations returns id's propagation records in recorded order.
// The slice is shared; callers must not modify it.
func (t *Tree) Propagations(id NodeID) []BoundUpdate {
	if !t.Valid(id) {
		return nil
	}

	return t.nodes[id].propagations
}

// Branchings returns id's branching decisions in recorded order.
// The slice is shared; callers must not modify it.
func (t *Tree) Branchings(id NodeID) []BoundUpdate {
	if !t.Valid(id) {
		return nil
	}

	return t.nodes[id].branchings
}

// PathFromRoot returns the node ids from the root to id inclusive.
//
// Complexity: O(depth), walking parent links once to size the path and
// once to fill it back-to-front.
func (t *Tree) PathFromRoot(id NodeID) ([]NodeID, error) {
	if !t.Valid(id) {
		return nil, ErrUnknownNode
	}

	length := 0
	for cur := id; cur != None; cur = t.nodes[cur].parent {
		length++
	}

	path := make([]NodeID, length)
	for cur := id; cur != None; cur = t.nodes[cur].parent {
		length--
		path[length] = cur
	}

	return path, nil
}
