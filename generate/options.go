// SPDX-License-Identifier: MIT
// Package: kaleido/generate
//
// options.go — functional options for Resolver and Generate.
//
// Contract:
//   • Option constructors validate and PANIC on meaningless inputs (nil rng,
//     nil logger, negative object limit). Resolution itself never panics.
//   • Determinism is explicit: WithSeed or WithRand.

package generate

import (
	"io"
	"log/slog"
	"math/rand"
	"time"
)

// Option customizes a Resolver before any value is resolved.
type Option func(*config)

// config aggregates every generator knob.
type config struct {
	// rng is the random stream; nil means “seed a private source”.
	rng *rand.Rand
	// biased selects the random-comparator sort instead of Fisher–Yates.
	biased bool
	// log receives Debug records only.
	log *slog.Logger
	// maxObjects caps the resolved object total; 0 means unlimited.
	maxObjects int
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG. The caller keeps ownership and must not
// share it between goroutines. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("generate: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithBiasedShuffle orders objects with a comparison sort driven by a random
// comparator instead of a uniform shuffle.
func WithBiasedShuffle() Option {
	return func(c *config) {
		c.biased = true
	}
}

// WithMaxObjects rejects scenes whose resolved counts add up to more than n
// objects with ErrTooManyObjects. Zero disables the limit. Panics on n < 0.
func WithMaxObjects(n int) Option {
	if n < 0 {
		panic("generate: WithMaxObjects(n < 0)")
	}
	return func(c *config) {
		c.maxObjects = n
	}
}

// WithLogger routes debug records to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("generate: WithLogger(nil)")
	}
	return func(c *config) {
		c.log = l
	}
}

// newConfig applies opts in order (last wins) and fills the remaining
// defaults.
func newConfig(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg.log == nil {
		cfg.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return cfg
}
