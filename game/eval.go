package game

import (
	"math"
	"reflect"
)

// Heuristic weights of EvaluateFeatures.
const (
	ScoreWeight     = 1.0
	GhostWeight     = 2.0
	FoodWeight      = -1.5
	FoodLeftWeight  = -4.0
	SafeGhostRadius = 4 // Floor of the nearest ghost distance term
)

// Evaluations maps configuration names to evaluation functions.
var Evaluations = map[string]Evaluate{
	"score":    EvaluateScore,
	"features": EvaluateFeatures,
}

// EvaluateScore passes the game's own score through unchanged.
func EvaluateScore(s State) float64 {
	return s.Score()
}

// EvaluateFeatures combines the score with the distances to the nearest ghost
// and the nearest food and the amount of food left. Wins and losses map to
// +Inf and -Inf before any feature is computed.
func EvaluateFeatures(s State) float64 {
	if s.IsWin() {
		return math.Inf(1)
	}
	if s.IsLose() {
		return math.Inf(-1)
	}

	f, ok := s.(Features)
	if !ok {
		panic("unexpected state type")
	}
	pacman := f.PacmanPosition()
	food := f.Food()
	if len(food) == 0 {
		panic("no food left on a non-terminal state")
	}

	closestFood := math.MaxInt
	for _, p := range food {
		closestFood = min(closestFood, ManhattanDistance(pacman, p))
	}

	// No ghosts counts as every ghost being out of range
	closestGhost := SafeGhostRadius
	ghosts := f.GhostPositions()
	if len(ghosts) > 0 {
		closestGhost = math.MaxInt
		for _, p := range ghosts {
			closestGhost = min(closestGhost, ManhattanDistance(pacman, p))
		}
	}

	return ScoreWeight*s.Score() +
		GhostWeight*ghostTerm(closestGhost) +
		FoodWeight*float64(closestFood) +
		FoodLeftWeight*float64(len(food))
}

// ghostTerm clamps the nearest ghost distance from below at SafeGhostRadius.
func ghostTerm(distance int) float64 {
	return float64(max(distance, SafeGhostRadius))
}

// EvaluationName returns the registered name of an evaluation function, or
// "custom".
func EvaluationName(evaluate Evaluate) string {
	if evaluate == nil {
		return ""
	}
	target := reflect.ValueOf(evaluate).Pointer()
	for name, fn := range Evaluations {
		if reflect.ValueOf(fn).Pointer() == target {
			return name
		}
	}
	return "custom"
}
