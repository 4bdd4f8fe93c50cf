package searcher

import (
	"math"
	"pacman/game"
)

// The cycle guarded variant has no depth bound. Every maximizer marks its
// signature as visited and no node expands a successor whose signature has
// been visited, so each signature is expanded as a maximizer at most once.
//
// A maximizer left at -Inf returns +Inf and a minimizer left at +Inf returns
// -Inf, so a branch that only leads back into visited states does not look
// like the worst case to its parent.

func (s *search) guardedAfterMax(state game.State, alpha, beta float64) float64 {
	if s.ghosts == 0 {
		return s.guardedMax(state, alpha, beta)
	}
	return s.guardedMin(state, alpha, beta, s.ghosts)
}

func (s *search) guardedMax(state game.State, alpha, beta float64) float64 {
	if value, ok := s.guardedTerminal(state); ok {
		return value
	}
	s.metrics.AddNode()
	s.guard.Visit(state.Signature())

	value := math.Inf(-1)
	for _, successor := range state.Successors(0) {
		if s.guard.Visited(successor.State.Signature()) {
			continue
		}
		value = max(value, s.guardedAfterMax(successor.State, alpha, beta))
		if value >= beta {
			s.metrics.AddCutoff()
			return value
		}
		alpha = max(alpha, value)
	}

	if value == math.Inf(-1) {
		return math.Inf(1)
	}
	return value
}

func (s *search) guardedMin(state game.State, alpha, beta float64, ghost int) float64 {
	if value, ok := s.guardedTerminal(state); ok {
		return value
	}
	s.metrics.AddNode()

	value := math.Inf(1)
	for _, successor := range state.Successors(ghost) {
		if s.guard.Visited(successor.State.Signature()) {
			continue
		}
		if ghost > 1 {
			value = min(value, s.guardedMin(successor.State, alpha, beta, ghost-1))
		} else {
			value = min(value, s.guardedMax(successor.State, alpha, beta))
		}
		if value <= alpha {
			s.metrics.AddCutoff()
			return value
		}
		beta = min(beta, value)
	}

	if value == math.Inf(1) {
		return math.Inf(-1)
	}
	return value
}

// guardedTerminal values wins by their score and losses as -Inf.
func (s *search) guardedTerminal(state game.State) (float64, bool) {
	if state.IsWin() {
		s.metrics.AddEvaluation()
		return state.Score(), true
	}
	if state.IsLose() {
		s.metrics.AddEvaluation()
		return math.Inf(-1), true
	}
	return 0, false
}
