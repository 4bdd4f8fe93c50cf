package engine

import "pacman/experiments/metrics"

type Engine interface {
	// Run plays a game until Pacman wins, loses or the move limit is reached
	Run() (gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
