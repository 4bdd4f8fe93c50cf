package searcher

import (
	"math"
	"pacman/experiments/metrics"
	"pacman/game"
	"pacman/utils"
)

// Minimax is the unpruned depth-bounded search, with the same depth
// accounting and tie-breaking as AlphaBeta. It ignores WithCycleGuard.
type Minimax struct {
	config
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{config: newConfig(options)}
	m.guarded = false
	return m
}

func (m *Minimax) FindNextMove(state game.State) game.Move {
	move, _ := m.Decide(state)
	return move
}

func (m *Minimax) Decide(state game.State) (game.Move, metrics.SearchMetric) {
	s := &search{
		ghosts:   state.NumAgents() - 1,
		evaluate: m.evaluate,
		metrics:  m.metrics(),
	}
	s.metrics.Start(m.depth, game.EvaluationName(m.evaluate), false)

	successors := state.Successors(0)
	if len(successors) == 0 {
		panic("root has no legal moves")
	}

	values := make([]float64, len(successors))
	for i, successor := range successors {
		values[i] = s.minimaxAfterMax(successor.State, m.depth)
	}

	best := utils.IndexOfMax(values)
	return successors[best].Move, s.metrics.Complete(values[best])
}

func (s *search) minimaxAfterMax(state game.State, depth int) float64 {
	if s.ghosts == 0 {
		return s.minimax(state, depth-1, 0)
	}
	return s.minimax(state, depth, s.ghosts)
}

// minimax values a state where agent is to move.
func (s *search) minimax(state game.State, depth int, agent int) float64 {
	if state.IsWin() || state.IsLose() || depth <= 0 {
		s.metrics.AddEvaluation()
		return s.evaluate(state)
	}
	s.metrics.AddNode()

	if agent == 0 {
		value := math.Inf(-1)
		for _, successor := range state.Successors(0) {
			value = max(value, s.minimaxAfterMax(successor.State, depth-1))
		}
		return value
	}

	value := math.Inf(1)
	for _, successor := range state.Successors(agent) {
		if agent > 1 {
			value = min(value, s.minimax(successor.State, depth, agent-1))
		} else {
			value = min(value, s.minimax(successor.State, depth-1, 0))
		}
	}
	return value
}
