package searcher

import (
	"math"
	"pacman/experiments/metrics"
	"pacman/game"
	"pacman/utils"

	"github.com/rs/zerolog/log"
)

// AlphaBeta is a minimax searcher with alpha-beta pruning for one maximizer
// (agent 0) against ghosts that move in sequence. Ghosts move from the
// highest index down to 1; after ghost 1 moves, Pacman moves again.
type AlphaBeta struct {
	config
}

func NewAlphaBeta(options ...Option) *AlphaBeta {
	return &AlphaBeta{config: newConfig(options)}
}

// search holds what one decision shares across its recursion. Searchers are
// safe for concurrent decisions since nothing mutable outlives a search.
type search struct {
	ghosts   int
	evaluate game.Evaluate
	guard    *CycleGuard // nil unless cycle guarded
	metrics  metrics.Collector
}

func (ab *AlphaBeta) FindNextMove(state game.State) game.Move {
	move, _ := ab.Decide(state)
	return move
}

// Decide scores every legal Pacman move and returns the first one with the
// highest value. It panics if Pacman has no legal move.
func (ab *AlphaBeta) Decide(state game.State) (game.Move, metrics.SearchMetric) {
	s := &search{
		ghosts:   state.NumAgents() - 1,
		evaluate: ab.evaluate,
		metrics:  ab.metrics(),
	}
	if ab.guarded {
		s.guard = NewCycleGuard()
		s.guard.Reset(state.Signature())
	}
	s.metrics.Start(ab.depth, game.EvaluationName(ab.evaluate), ab.guarded)

	successors := state.Successors(0)
	if len(successors) == 0 {
		panic("root has no legal moves")
	}

	alpha := math.Inf(-1)
	beta := math.Inf(1)
	values := make([]float64, 0, len(successors))
	moves := make([]game.Move, 0, len(successors))
	for _, successor := range successors {
		var value float64
		if s.guard != nil {
			value = s.guardedAfterMax(successor.State, alpha, beta)
		} else {
			value = s.afterMax(successor.State, alpha, beta, ab.depth)
		}

		if value >= beta {
			s.metrics.AddCutoff()
			return ab.complete(s, successor.Move, value)
		}
		alpha = max(alpha, value)
		values = append(values, value)
		moves = append(moves, successor.Move)
	}

	best := utils.IndexOfMax(values)
	return ab.complete(s, moves[best], values[best])
}

func (ab *AlphaBeta) complete(s *search, move game.Move, value float64) (game.Move, metrics.SearchMetric) {
	metric := s.metrics.Complete(value)
	log.Debug().
		Str("move", move.String()).
		Float64("value", value).
		Int("depth", ab.depth).
		Bool("guarded", ab.guarded).
		Int("nodes", metric.Nodes).
		Int("evaluations", metric.Evaluations).
		Int("cutoffs", metric.Cutoffs).
		Msg("decided")
	return move, metric
}

// afterMax values a state reached by a Pacman move, starting the ghosts'
// round. depth is what the first ghost node receives.
func (s *search) afterMax(state game.State, alpha, beta float64, depth int) float64 {
	if s.ghosts == 0 {
		return s.maxValue(state, alpha, beta, depth-1)
	}
	return s.minValue(state, alpha, beta, depth, s.ghosts)
}

func (s *search) maxValue(state game.State, alpha, beta float64, depth int) float64 {
	if state.IsWin() || state.IsLose() || depth <= 0 {
		s.metrics.AddEvaluation()
		return s.evaluate(state)
	}
	s.metrics.AddNode()

	value := math.Inf(-1)
	for _, successor := range state.Successors(0) {
		value = max(value, s.afterMax(successor.State, alpha, beta, depth-1))
		if value >= beta {
			s.metrics.AddCutoff()
			return value
		}
		alpha = max(alpha, value)
	}
	return value
}

func (s *search) minValue(state game.State, alpha, beta float64, depth int, ghost int) float64 {
	if state.IsWin() || state.IsLose() || depth <= 0 {
		s.metrics.AddEvaluation()
		return s.evaluate(state)
	}
	s.metrics.AddNode()

	value := math.Inf(1)
	for _, successor := range state.Successors(ghost) {
		if ghost > 1 {
			// Ghosts of the same round share a depth
			value = min(value, s.minValue(successor.State, alpha, beta, depth, ghost-1))
		} else {
			value = min(value, s.maxValue(successor.State, alpha, beta, depth-1))
		}
		if value <= alpha {
			s.metrics.AddCutoff()
			return value
		}
		beta = min(beta, value)
	}
	return value
}
