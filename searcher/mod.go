package searcher

import (
	"pacman/experiments/metrics"
	"pacman/game"
)

// Searcher picks Pacman's next move.
type Searcher interface {
	// Decide returns the chosen move and the metrics of the search that
	// produced it (empty unless collected)
	Decide(state game.State) (game.Move, metrics.SearchMetric)
	FindNextMove(state game.State) game.Move
}
