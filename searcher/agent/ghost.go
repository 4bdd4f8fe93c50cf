package agent

import (
	"math"
	"pacman/experiments/metrics"
	"pacman/game"

	"golang.org/x/exp/rand"
)

type randomGhost struct {
	index int
	rng   *rand.Rand
}

// NewRandomGhost returns a ghost that picks uniformly among its legal moves.
func NewRandomGhost(index int, seed uint64) Agent {
	return &randomGhost{index: index, rng: rand.New(rand.NewSource(seed))}
}

func (g *randomGhost) FindMove(state game.State) (game.Move, metrics.SearchMetric) {
	successors := state.Successors(g.index)
	if len(successors) == 0 {
		panic("ghost has no legal moves")
	}
	return successors[g.rng.Intn(len(successors))].Move, metrics.SearchMetric{}
}

type greedyGhost struct {
	index int
}

// NewGreedyGhost returns a ghost that moves to the cell closest to Pacman,
// taking the first such move on ties.
func NewGreedyGhost(index int) Agent {
	return greedyGhost{index: index}
}

func (g greedyGhost) FindMove(state game.State) (game.Move, metrics.SearchMetric) {
	f, ok := state.(game.Features)
	if !ok {
		panic("unexpected state type")
	}
	pacman := f.PacmanPosition()

	var best game.Move
	bestDistance := math.MaxInt
	for _, successor := range state.Successors(g.index) {
		next, ok := successor.State.(game.Features)
		if !ok {
			panic("unexpected state type")
		}
		ghost := next.GhostPositions()[g.index-1]
		if d := game.ManhattanDistance(ghost, pacman); d < bestDistance {
			best, bestDistance = successor.Move, d
		}
	}
	if best == nil {
		panic("ghost has no legal moves")
	}
	return best, metrics.SearchMetric{}
}
