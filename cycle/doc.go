// Package cycle recovers one simple directed cycle of a given length from
// a longpath.Result:
//
//	For every edge v → u of the graph, look up the length-(k − 1) path
//	witness for the pair (u, v). A non-⊥ witness S (which never holds u
//	or v) orders into a path u → ... → v through S, and the edge v → u
//	closes it into the cycle u → ... → v → u of length k.
//
// This is explicitly a client concern, not part of the longpath core: it
// is kept as its own package rather than folded into longpath, mirroring
// tsp/eulerian.go's separation of "find a structure" from "reconstruct
// an ordered walk from it".
package cycle
