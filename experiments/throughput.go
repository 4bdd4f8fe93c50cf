package experiments

import (
	"fmt"
	"pacman/engine"
	"pacman/experiments/metrics"
	"pacman/game"
	"pacman/searcher"
	"pacman/searcher/agent"

	"github.com/rs/zerolog/log"
)

const ThroughputExperiment = "throughput"

// RunThroughputExperiment compares the work of alpha-beta and unpruned
// minimax at each depth on the same Pacman-to-move positions, taken from one
// recorded game on the layout. It returns the directory holding the CSV.
func RunThroughputExperiment(layout string, depths []int, positions int, outDir string, options ...Option) (string, error) {
	c := newConfig(options)

	states, err := recordPositions(layout, positions, c)
	if err != nil {
		return "", err
	}
	log.Info().Str("experiment", ThroughputExperiment).Int("positions", len(states)).Ints("depths", depths).Msg("starting experiment")

	records := []metrics.ThroughputRecord{}
	for _, depth := range depths {
		searchers := map[string]searcher.Searcher{
			"alphabeta": searcher.NewAlphaBeta(searcher.WithDepth(depth), searcher.WithMetrics()),
			"minimax":   searcher.NewMinimax(searcher.WithDepth(depth), searcher.WithMetrics()),
		}
		for _, name := range []string{"alphabeta", "minimax"} {
			record := metrics.ThroughputRecord{Searcher: name, Depth: depth, Positions: len(states)}
			for _, state := range states {
				_, metric := searchers[name].Decide(state)
				record.Nodes += metric.Nodes
				record.Evaluations += metric.Evaluations
				record.Cutoffs += metric.Cutoffs
				record.Duration += metric.Duration
			}
			records = append(records, record)

			log.Info().Str("searcher", name).Int("depth", depth).Int("nodes", record.Nodes).Float64("nodes_per_second", record.NodesPerSecond()).Msg("measured throughput")
		}
	}

	writer, err := metrics.NewWriter(outDir, ThroughputExperiment)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteThroughputRecords(records); err != nil {
		return "", err
	}
	return writer.Dir(), nil
}

// recordPositions plays a depth 2 game and keeps up to n of its
// non-terminal states with Pacman to move.
func recordPositions(layout string, n int, c config) ([]*game.GameState, error) {
	l, err := game.LoadLayout(layout)
	if err != nil {
		return nil, err
	}
	state := game.NewGameState(l, game.NewStandardRules())
	ghosts, err := agent.NewGhosts("random", len(state.Ghosts), c.seed, "")
	if err != nil {
		return nil, err
	}

	pacman := agent.NewPacmanAgent(searcher.NewAlphaBeta(searcher.WithDepth(2)))
	e := engine.NewLocalEngine(state, pacman, ghosts)
	e.Layout = layout
	e.MaxMoves = c.maxMoves
	e.Run()

	round := state.NumAgents()
	states := []*game.GameState{}
	for i, s := range e.History() {
		if len(states) == n {
			break
		}
		if i%round == 0 && !s.IsWin() && !s.IsLose() {
			states = append(states, s)
		}
	}
	return states, nil
}
