package searcher

import (
	"pacman/experiments/metrics"
	"pacman/game"
	"pacman/meta"
)

type Option func(c *config)

type config struct {
	depth    int
	evaluate game.Evaluate
	guarded  bool
	metrics  func() metrics.Collector // Called once per decision
}

func newConfig(options []Option) config {
	c := config{ // Default values
		depth:    meta.DEPTH,
		evaluate: game.EvaluateFeatures,
		metrics:  metrics.NewDummyCollector,
	}
	for _, option := range options {
		option(&c)
	}
	return c
}

// WithDepth bounds the search depth. A depth of 0 evaluates the root's
// successors directly.
func WithDepth(depth int) Option {
	return func(c *config) {
		if depth >= 0 {
			c.depth = depth
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(c *config) {
		if evaluate != nil {
			c.evaluate = evaluate
		}
	}
}

// WithCycleGuard replaces the depth bound by loop detection: the search runs
// until terminal states and skips states already visited during the decision.
func WithCycleGuard() Option {
	return func(c *config) {
		c.guarded = true
	}
}

func WithMetrics() Option {
	return func(c *config) {
		c.metrics = metrics.NewCollector
	}
}
