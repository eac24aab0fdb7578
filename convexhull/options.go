// SPDX-License-Identifier: MIT
// Package: courselab/convexhull
//
// options.go: functional options for RandomPoints.

package convexhull

import (
	"math/rand"
	"time"
)

// DefaultRange is the upper coordinate bound used when WithRange is absent.
const DefaultRange = 10000

// Option customizes RandomPoints.
type Option func(*config)

type config struct {
	rng      *rand.Rand
	maxCoord int
}

func newConfig(opts []Option) config {
	c := config{maxCoord: DefaultRange}
	for _, fn := range opts {
		fn(&c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return c
}

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed for
// reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("convexhull: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRange sets the inclusive upper coordinate bound; coordinates are
// drawn from [1, upper].
func WithRange(upper int) Option {
	return func(c *config) {
		c.maxCoord = upper
	}
}
