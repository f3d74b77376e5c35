// Package graph is the read-only graph adapter consumed by the longpath
// family of packages (longpath, induce, reptree).
//
// A Graph exposes exactly the two operations Monien's algorithm needs
// (Vertices and Neighbours), over a dense vertex index space 0..n-1 so
// that callers can represent interior-vertex sets as fixed-width bitsets
// (see internal/bitset). It is built once via New/a Builder and is
// immutable for its lifetime: there is no concurrent-mutation story to
// support, unlike `core.Graph`'s mutable, lock-protected model.
//
// Self-loops and parallel edges collapse: AddEdge is a no-op for a
// self-loop and idempotent for a repeated edge, since neither can
// participate in a simple path.
package graph
