package lattice

import (
	"context"
	"errors"
	"math"

	"github.com/katalvlaran/kaleido/schema"
	"github.com/katalvlaran/kaleido/transform"
)

// Sentinel errors for lattice construction.
var (
	// ErrNegativeDepth is returned when maxDepth < 0.
	ErrNegativeDepth = errors.New("lattice: negative depth")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("lattice: invalid option supplied")
)

// keyScale turns positions into two-decimal integer keys.
const keyScale = 100

// Key is the canonical identity of a cell: its position rounded to two
// decimals, stored as scaled integers.
type Key struct {
	X int64
	Y int64
}

// KeyOf returns the canonical key of p, a position in lattice units.
// Halves round toward +∞.
func KeyOf(p schema.Point) Key {
	return Key{X: roundScaled(p.X), Y: roundScaled(p.Y)}
}

func roundScaled(v float64) int64 {
	return int64(math.Floor(v*keyScale + 0.5))
}

// Cell is one triangle of the lattice.
type Cell struct {
	// Path lists the reflection directions (radians) from the origin.
	Path []float64 `json:"path"`
	// Position is the cell center in lattice units.
	Position schema.Point `json:"position"`
	// Depth equals len(Path).
	Depth int `json:"depth"`
}

// Key returns the canonical key of c.
func (c Cell) Key() Key {
	return KeyOf(c.Position)
}

// Transform returns the mirroring map for c.
func (c Cell) Transform() transform.Mat2 {
	return transform.Compose(c.Path)
}

// Option configures Build via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds parameters and callbacks for Build.
type Options struct {
	// Ctx is checked once per frontier cell.
	Ctx context.Context

	// OnDiscover is called for every cell when it is first recorded,
	// origin included.
	OnDiscover func(c Cell)

	err error
}

// DefaultOptions returns Options with a background context and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		OnDiscover: func(Cell) {},
	}
}

// WithContext sets a context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx == nil {
			o.err = ErrOptionViolation
			return
		}
		o.Ctx = ctx
	}
}

// WithOnDiscover registers a discovery callback.
func WithOnDiscover(fn func(c Cell)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDiscover = fn
		}
	}
}
