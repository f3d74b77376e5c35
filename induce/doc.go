// Package induce implements Algorithm 2 of Monien's construction: given
// representative trees B(q, w, v, p) for every ordered pair (w, v), build
// B(q-1, u, v, p+1) for every ordered pair (u, v).
//
// Construction is level-by-level and pure: the previous layer is only
// read (via reptree.Query), never mutated, so the outer driver can fold
// one layer into the next without any shared mutable state between
// steps.
package induce
