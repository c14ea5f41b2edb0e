// Package kdag provides a small generic Directed Acyclic Graph (DAG) used to
// derive orderings from precedence constraints.
//
// # Overview
//
// Nodes are identified by any comparable key. An edge from -> to states that
// from must come before to. The graph is consumed once by a topological sort;
// construction and sorting are kept apart so callers can report reference
// errors while wiring and cycle errors while sorting.
//
// # Basic Usage
//
//	g := kdag.NewGraph[string]()
//	_ = g.AddNode("name")
//	_ = g.AddNode("age")
//	_ = g.AddEdge("age", "name") // age must precede name
//
//	order, err := g.TopologicalSort() // [age name]
//
// # Validation
//
// TopologicalSort and Validate report cycles with ErrCycleDetected. The error
// message names the cycle path, e.g. "cycle detected: a -> b -> a".
// AddEdge returns ErrNodeNotFound when either endpoint is unknown.
// All errors can be checked with errors.Is().
//
// # Determinism
//
// Kahn's algorithm is used for sorting. When several nodes are ready at the
// same time, the node registered first is emitted first, so the same graph
// always yields the same order.
//
// # Thread Safety
//
// IMPORTANT: Graph is NOT safe for concurrent mutation. Sorting a graph that
// is no longer mutated is safe from multiple goroutines.
package kdag
