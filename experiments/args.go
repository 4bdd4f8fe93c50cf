package experiments

import (
	"pacman/experiments/metrics"
	"pacman/meta"
)

type Option func(c *config)

type config struct {
	store    *metrics.Store
	seed     uint64
	script   string
	maxMoves int
}

func newConfig(options []Option) config {
	c := config{ // Default values
		seed:     1,
		maxMoves: meta.MAX_MOVES,
	}
	for _, option := range options {
		option(&c)
	}
	return c
}

// WithStore also saves every game record to the store.
func WithStore(store *metrics.Store) Option {
	return func(c *config) {
		c.store = store
	}
}

// WithSeed seeds the random ghosts. Game i of a configuration uses seed+i, so
// every configuration meets the same ghosts.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.seed = seed
	}
}

// WithScript sets the Lua source of "lua" ghosts.
func WithScript(script string) Option {
	return func(c *config) {
		c.script = script
	}
}

func WithMaxMoves(maxMoves int) Option {
	return func(c *config) {
		if maxMoves > 0 {
			c.maxMoves = maxMoves
		}
	}
}
