package agent

import (
	"pacman/experiments/metrics"
	"pacman/game"
	"pacman/searcher"
)

type pacmanAgent struct {
	searcher searcher.Searcher
}

// NewPacmanAgent returns the maximizing agent backed by a searcher.
func NewPacmanAgent(s searcher.Searcher) Agent {
	return pacmanAgent{searcher: s}
}

func (a pacmanAgent) FindMove(state game.State) (game.Move, metrics.SearchMetric) {
	return a.searcher.Decide(state)
}
