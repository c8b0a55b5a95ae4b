package lattice

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/kaleido/schema"
)

// triads returns the expansion directions for even and odd depths.
// Multiples of π/6 are computed in float64 at run time.
func triads() (even, odd [3]float64) {
	step := math.Pi
	step /= 6
	even = [3]float64{step * 3, step * 7, step * 11}
	odd = [3]float64{step * 1, step * 5, step * 9}
	return even, odd
}

// walker encapsulates mutable expansion state.
type walker struct {
	opts     Options
	ctx      context.Context
	visited  map[Key]struct{}
	cells    []Cell
	frontier []Cell
}

// Build returns every distinct cell reachable within maxDepth expansions,
// origin first, in discovery order.
// Returns ErrNegativeDepth, ErrOptionViolation or the context error.
func Build(maxDepth int, opts ...Option) ([]Cell, error) {
	if maxDepth < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeDepth, maxDepth)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := cellCount(maxDepth)
	w := &walker{
		opts:    o,
		ctx:     o.Ctx,
		visited: make(map[Key]struct{}, n),
		cells:   make([]Cell, 0, n),
	}
	w.record(Cell{Path: []float64{}, Position: schema.Point{}})
	w.frontier = w.cells[:1:1]

	even, odd := triads()
	for depth := 0; depth < maxDepth && len(w.frontier) > 0; depth++ {
		dirs := even
		if depth%2 == 1 {
			dirs = odd
		}
		if err := w.expand(dirs); err != nil {
			return nil, err
		}
	}
	return w.cells, nil
}

// record stores c under its key and reports whether it was new.
func (w *walker) record(c Cell) bool {
	k := c.Key()
	if _, seen := w.visited[k]; seen {
		return false
	}
	w.visited[k] = struct{}{}
	w.cells = append(w.cells, c)
	w.opts.OnDiscover(c)
	return true
}

// expand replaces the frontier with the cells first discovered from it.
func (w *walker) expand(dirs [3]float64) error {
	var next []Cell
	for _, c := range w.frontier {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}
		for _, dir := range dirs {
			path := make([]float64, len(c.Path)+1)
			copy(path, c.Path)
			path[len(c.Path)] = dir
			cand := Cell{
				Path: path,
				Position: schema.Point{
					X: c.Position.X + math.Cos(dir),
					Y: c.Position.Y + math.Sin(dir),
				},
				Depth: c.Depth + 1,
			}
			if w.record(cand) {
				next = append(next, cand)
			}
		}
	}
	w.frontier = next
	return nil
}

// cellCount is the honeycomb ball size 1 + 3·d(d+1)/2, used for preallocation.
func cellCount(depth int) int {
	return 1 + 3*depth*(depth+1)/2
}
