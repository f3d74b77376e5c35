package longpath

import (
	"context"
	"errors"
)

// Sentinel errors for FindPaths.
var (
	// ErrGraphNil is returned when a nil *graph.Graph is passed.
	ErrGraphNil = errors.New("longpath: graph is nil")

	// ErrInvalidK is returned for k < 1.
	ErrInvalidK = errors.New("longpath: k must be >= 1")
)

// Option configures FindPaths via functional arguments, mirroring
// bfs.Option / dfs.Option.
type Option func(*options)

type options struct {
	ctx     context.Context
	onLayer func(p, q, pairsResolved int)
}

func defaultOptions() options {
	return options{
		ctx:     context.Background(),
		onLayer: func(int, int, int) {},
	}
}

// WithContext sets a context checked for cancellation at each layer
// boundary. Cancellation is cooperative between induction layers; no
// finer granularity is offered.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithOnLayer registers a diagnostic hook invoked once per completed
// induction layer, receiving the index p of the layer the step started
// from (the step builds layer p+1), the depth q of the newly built trees,
// and the number of ordered pairs resolved to a non-⊥ witness in the
// newly built layer.
func WithOnLayer(fn func(p, q, pairsResolved int)) Option {
	return func(o *options) {
		if fn != nil {
			o.onLayer = fn
		}
	}
}

// Result holds the outcome of FindPaths: for every ordered vertex pair
// (u, v), either ⊥ (no simple path of length k from u to v) or the
// (k-1)-element interior-vertex set of one witness path.
type Result struct {
	k int
	n int
	// witness[u][v] holds the interior set for (u,v), or nil for ⊥.
	witness [][][]int
}

// K returns the path length this Result was computed for.
func (r *Result) K() int { return r.k }

// N returns the vertex count of the graph this Result was computed over.
func (r *Result) N() int { return r.n }

// Witness returns the interior-vertex set of one simple path of length k
// from u to v, and true — or (nil, false) if no such path exists.
//
// Panics if u or v is out of range: out-of-range vertex handles are a
// programmer error, not a runtime ⊥ result.
func (r *Result) Witness(u, v int) ([]int, bool) {
	if u < 0 || u >= r.n || v < 0 || v >= r.n {
		panic("longpath: vertex out of range")
	}
	w := r.witness[u][v]
	if w == nil {
		return nil, false
	}
	return w, true
}
