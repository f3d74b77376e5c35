// Package longpath decides, for a finite directed graph and an integer
// k >= 1, whether a simple path of length k exists between each ordered
// pair of vertices — and exhibits one witness (its k-1 interior vertices)
// when it does.
//
// 🧭 What is longpath?
//
//	An implementation of Monien's 1985 fixed-parameter-tractable long-path
//	algorithm ("How to find long paths efficiently"), built from three
//	layered subsystems:
//
//	  • reptree — representative trees and the disjoint-witness query (Algorithm 1)
//	  • induce  — the inductive constructor advancing one path-length layer at a time (Algorithm 2)
//	  • longpath.FindPaths — the outer driver folding the induction k-1 times (Algorithm 3)
//
// ✨ Why Monien's construction?
//
//   - Fixed-parameter tractable in k: polynomial in |V| for fixed k,
//     rather than the factorial blow-up of naive path enumeration.
//   - Deterministic — every iteration order and witness choice (candidate
//     neighbours, tie-breaks in the disjoint-witness query) is pinned to
//     ascending vertex index, so repeated calls on the same graph always
//     agree on every ⊥/non-⊥ verdict and witness.
//   - Pure and single-threaded core — each layer is read-only once built,
//     so induction steps never race and results don't depend on goroutine
//     scheduling.
//
// Under the hood:
//
//	graph/      — read-only dense-index graph adapter
//	label/      — the label algebra {⊥} ∪ 𝒫(V)
//	reptree/    — representative trees + Algorithm 1
//	induce/     — Algorithm 2, the inductive constructor
//	cycle/      — client-side cycle recovery built on FindPaths
//
// Quick usage:
//
//	g := graph.New(5, 0, 1, 1, 2, 2, 3, 3, 4, 4, 0) // a five-cycle
//	result, err := longpath.FindPaths(g, 4)
//	// result.Witness(0, 4) == {1, 2, 3}: 0 -> 1 -> 2 -> 3 -> 4
//
//	go get github.com/abclark/cycle-finder
package longpath
