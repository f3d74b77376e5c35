// Package reptree implements Monien's representative tree B(q, u, v, p)
// and Algorithm 1, the disjoint-witness query.
//
// A Tree is a node arena — a flat slice of nodes linked by parent/child
// indices, not pointers — instead of a graph-library-backed node object
// graph with parent/child object references, which is cyclic and needs a
// separate attribute dictionary per node. An arena of indices has neither
// problem. This mirrors `core.Graph`, which stores its adjacency as
// index/ID maps rather than a pointer graph.
//
// Each non-root node's single incoming edge carries a vertex label (an
// int in [0, n)); an internal node's label, if not ⊥, has exactly as many
// children as its cardinality, one per member.
package reptree
