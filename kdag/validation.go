package kdag

import (
	"fmt"
	"slices"
	"sort"
	"strings"
)

// Validate checks that the graph is acyclic.
// Returns an error wrapping ErrCycleDetected that names the cycle path.
func (g *Graph[K]) Validate() error {
	return g.detectCycles()
}

// detectCycles uses Depth-First Search (DFS) to find cycles in the graph.
// Time complexity: O(V + E) where V is vertices and E is edges.
func (g *Graph[K]) detectCycles() error {
	visited := make(map[K]bool, len(g.nodes))
	recStack := make(map[K]bool, len(g.nodes))

	var dfs func(K, []K) error
	dfs = func(nodeID K, path []K) error {
		visited[nodeID] = true
		recStack[nodeID] = true
		path = append(path, nodeID)

		for _, childID := range g.nodes[nodeID].Children {
			if !visited[childID] {
				if err := dfs(childID, path); err != nil {
					return err
				}
			} else if recStack[childID] {
				cyclePath := append(path, childID)
				// Trim the path to the cycle itself.
				start := slices.Index(cyclePath, childID)
				pathStr := make([]string, 0, len(cyclePath)-start)
				for _, id := range cyclePath[start:] {
					pathStr = append(pathStr, fmt.Sprint(id))
				}
				return fmt.Errorf("%w: %s", ErrCycleDetected, strings.Join(pathStr, " -> "))
			}
		}

		recStack[nodeID] = false
		return nil
	}

	// Check all nodes in insertion order (handles disconnected components)
	for _, nodeID := range g.order {
		if !visited[nodeID] {
			if err := dfs(nodeID, nil); err != nil {
				return err
			}
		}
	}

	return nil
}

// insertSorted inserts an item into a slice kept sorted by insertion index.
// Time complexity: O(log n + n) for binary search + insert.
func (g *Graph[K]) insertSorted(queue []K, item K) []K {
	pos := g.index[item]
	idx := sort.Search(len(queue), func(i int) bool {
		return g.index[queue[i]] >= pos
	})
	return slices.Insert(queue, idx, item)
}

// topologicalSort creates a deterministic topological ordering using Kahn's algorithm.
// Among nodes that are ready at the same time, the one registered first wins.
// Time complexity: O(V log V + E) where V is vertices and E is edges.
func (g *Graph[K]) topologicalSort() ([]K, error) {
	inDegree := make(map[K]int, len(g.nodes))
	for _, node := range g.nodes {
		for _, childID := range node.Children {
			inDegree[childID]++
		}
	}

	// Queue of nodes with no incoming edges, in insertion order
	queue := make([]K, 0, len(g.nodes)/4)
	for _, nodeID := range g.order {
		if inDegree[nodeID] == 0 {
			queue = append(queue, nodeID)
		}
	}

	result := make([]K, 0, len(g.nodes))
	for len(queue) > 0 {
		nodeID := queue[0]
		queue = queue[1:]
		result = append(result, nodeID)

		for _, childID := range g.nodes[nodeID].Children {
			inDegree[childID]--
			if inDegree[childID] == 0 {
				queue = g.insertSorted(queue, childID)
			}
		}
	}

	// If we didn't process all nodes, there must be a cycle
	if len(result) != len(g.nodes) {
		if err := g.detectCycles(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: topological sort failed", ErrCycleDetected)
	}

	return result, nil
}
