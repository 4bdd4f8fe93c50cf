package agent

import (
	"pacman/experiments/metrics"
	"pacman/game"
)

type Agent interface {
	// FindMove returns the agent's move and the search metrics (if collected)
	// of the decision
	FindMove(state game.State) (game.Move, metrics.SearchMetric)
}
