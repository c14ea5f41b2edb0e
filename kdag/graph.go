package kdag

import (
	"errors"
	"fmt"
	"slices"
)

// Node is a vertex of the graph together with its edges.
type Node[K comparable] struct {
	ID K

	// Parent edges (incoming)
	Parents []K

	// Child edges (outgoing)
	Children []K
}

// Graph is a directed graph over comparable keys. An edge from -> to states
// that from must precede to in topological order.
//
// Graph is NOT safe for concurrent mutation. Once built it may be sorted
// from multiple goroutines.
type Graph[K comparable] struct {
	nodes map[K]*Node[K]

	// Deterministic node ordering (insertion order)
	order []K
	index map[K]int
}

// NewGraph creates a new empty graph.
func NewGraph[K comparable]() *Graph[K] {
	return &Graph[K]{
		nodes: make(map[K]*Node[K]),
		order: make([]K, 0),
		index: make(map[K]int),
	}
}

// AddNode adds a node to the graph.
// Returns ErrNodeAlreadyExists if the node is already registered.
func (g *Graph[K]) AddNode(id K) error {
	if _, exists := g.nodes[id]; exists {
		return fmt.Errorf("%w: %v", ErrNodeAlreadyExists, id)
	}
	g.nodes[id] = &Node[K]{
		ID:       id,
		Parents:  []K{},
		Children: []K{},
	}
	g.index[id] = len(g.order)
	g.order = append(g.order, id)
	return nil
}

// HasNode reports whether id is registered.
func (g *Graph[K]) HasNode(id K) bool {
	_, ok := g.nodes[id]
	return ok
}

// GetNode returns a node by ID if it exists.
func (g *Graph[K]) GetNode(id K) (*Node[K], bool) {
	node, ok := g.nodes[id]
	return node, ok
}

// AddEdge adds a directed edge from parent to child.
// Both nodes must be registered. Adding the same edge twice is a no-op.
func (g *Graph[K]) AddEdge(parentID, childID K) error {
	parent, ok := g.nodes[parentID]
	if !ok {
		return fmt.Errorf("%w: parent %v", ErrNodeNotFound, parentID)
	}
	child, ok := g.nodes[childID]
	if !ok {
		return fmt.Errorf("%w: child %v", ErrNodeNotFound, childID)
	}

	if slices.Contains(parent.Children, childID) {
		return nil
	}
	parent.Children = append(parent.Children, childID)
	child.Parents = append(child.Parents, parentID)
	return nil
}

// Nodes returns all node IDs in insertion order.
func (g *Graph[K]) Nodes() []K {
	return slices.Clone(g.order)
}

// Len returns the number of nodes.
func (g *Graph[K]) Len() int {
	return len(g.order)
}

// TopologicalSort returns nodes so that every parent comes before its children.
func (g *Graph[K]) TopologicalSort() ([]K, error) {
	return g.topologicalSort()
}

// ReverseTopologicalSort returns nodes in reverse topological order.
// This means children come before parents - useful for bottom-up construction.
func (g *Graph[K]) ReverseTopologicalSort() ([]K, error) {
	order, err := g.topologicalSort()
	if err != nil {
		return nil, err
	}

	slices.Reverse(order)
	return order, nil
}

// Sentinel errors for common failure cases.
var (
	ErrNodeAlreadyExists = errors.New("node already exists")
	ErrNodeNotFound      = errors.New("node not found")
	ErrCycleDetected     = errors.New("cycle detected")
)
