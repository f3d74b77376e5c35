package longpath

import (
	"github.com/abclark/cycle-finder/graph"
	"github.com/abclark/cycle-finder/induce"
	"github.com/abclark/cycle-finder/internal/bitset"
	"github.com/abclark/cycle-finder/label"
	"github.com/abclark/cycle-finder/reptree"
)

// FindPaths is Algorithm 3, the outer driver: it initialises the p=0
// layer from g's edges and folds the inductive constructor (induce.Build)
// k-1 times to reach p=k-1, returning for every ordered pair (u, v)
// either ⊥ or the interior-vertex set of one witness simple path of
// length k from u to v.
//
// k < 1 is rejected as ErrInvalidK. k = 1 never enters the induction: the
// p=0 layer already is the terminal layer, and its root labels ({} for
// an edge, ⊥ otherwise) are the answer.
func FindPaths(g *graph.Graph, k int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if k < 1 {
		return nil, ErrInvalidK
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	layer := initialLayer(g)
	n := g.N()

	for p := 0; p < k-1; p++ {
		select {
		case <-o.ctx.Done():
			return nil, o.ctx.Err()
		default:
		}

		q := k - 1 - p
		layer = induce.Build(g, layer, q-1)
		o.onLayer(p, q-1, countResolved(layer, n))
	}

	return &Result{k: k, n: n, witness: extractWitness(layer, n)}, nil
}

// initialLayer builds B(k-1, u, v, 0) for every ordered pair (the p = 0
// base layer): a single-node tree labelled the empty set if (u,v) is an
// edge, ⊥ otherwise. F(u, v, 0) = {∅} if (u,v) ∈ E, else ∅.
func initialLayer(g *graph.Graph) induce.Layer {
	n := g.N()
	layer := make(induce.Layer, n*n)
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if g.HasEdge(u, v) {
				layer[induce.Pair{U: u, V: v}] = reptree.MakeLeaf(n, label.Of(bitset.New(n)))
			} else {
				layer[induce.Pair{U: u, V: v}] = reptree.MakeLeaf(n, label.Bottom)
			}
		}
	}
	return layer
}

// extractWitness reads the root label of every pair's terminal tree into
// the dense witness table backing Result.Witness.
func extractWitness(layer induce.Layer, n int) [][][]int {
	w := make([][][]int, n)
	for u := 0; u < n; u++ {
		w[u] = make([][]int, n)
		for v := 0; v < n; v++ {
			lbl := layer[induce.Pair{U: u, V: v}].RootLabel()
			if lbl.IsBottom() {
				continue
			}
			w[u][v] = lbl.Members().Elements() // make() always yields non-nil, even for k=1's empty interior set
		}
	}
	return w
}

func countResolved(layer induce.Layer, n int) int {
	cnt := 0
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if !layer[induce.Pair{U: u, V: v}].RootLabel().IsBottom() {
				cnt++
			}
		}
	}
	return cnt
}
