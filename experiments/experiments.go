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

const DepthExperiment = "depth"

// DepthConfigs returns one configuration per depth from 1 to maxDepth.
func DepthConfigs(maxDepth int, evaluation string, ghost string) []metrics.AgentConfig {
	configs := make([]metrics.AgentConfig, 0, maxDepth)
	for depth := 1; depth <= maxDepth; depth++ {
		configs = append(configs, metrics.AgentConfig{
			ID:         depth,
			Depth:      depth,
			Evaluation: evaluation,
			Ghost:      ghost,
		})
	}
	return configs
}

// RunDepthExperiment plays games with every configuration on the layout and
// writes the agent configs, game records and move records as CSV under
// outDir. It returns the directory holding the files.
func RunDepthExperiment(layout string, configs []metrics.AgentConfig, games int, outDir string, options ...Option) (string, error) {
	return runExperiment(DepthExperiment, layout, configs, games, outDir, newConfig(options))
}

func runExperiment(name, layout string, configs []metrics.AgentConfig, games int, outDir string, c config) (string, error) {
	l, err := game.LoadLayout(layout)
	if err != nil {
		return "", err
	}

	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Str("experiment", name).Str("layout", layout).Int("configs", len(configs)).Int("games", games).Msg("starting experiment")

	for ci, config := range configs {
		log.Info().Msgf("starting config %d of %d %+v", ci+1, len(configs), config)

		for i := 0; i < games; i++ {
			gameMetric, moveMetrics, err := runGame(l, layout, config, c.seed+uint64(i), c)
			if err != nil {
				return "", err
			}
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent:      config.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			if c.store != nil {
				if err := c.store.SaveGame(name, config, gameMetric); err != nil {
					return "", err
				}
			}
			log.Info().Msgf("completed config %d game %d of %d: win=%t score=%g", config.ID, i+1, games, gameMetric.Win, gameMetric.Score)
		}
	}

	log.Info().Str("experiment", name).Msg("completed experiment")

	writer, err := metrics.NewWriter(outDir, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return "", err
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", err
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return "", err
	}
	log.Info().Str("dir", writer.Dir()).Msg("stored experiment records")

	return writer.Dir(), nil
}

// runGame plays one game of the configured Pacman against the configured
// ghosts.
func runGame(l *game.Layout, layout string, config metrics.AgentConfig, seed uint64, c config) (metrics.GameMetric, []metrics.MoveMetric, error) {
	s, err := CreateSearcher(config)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}

	state := game.NewGameState(l, game.NewStandardRules())
	ghosts, err := agent.NewGhosts(config.Ghost, len(state.Ghosts), seed, c.script)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}
	defer agent.Close(ghosts)

	e := engine.NewLocalEngine(state, agent.NewPacmanAgent(s), ghosts)
	e.Layout = layout
	e.MaxMoves = c.maxMoves

	gameMetric, moveMetrics := e.Run()
	return gameMetric, moveMetrics, nil
}

// CreateSearcher builds the alpha-beta searcher of a configuration with
// metrics collection on.
func CreateSearcher(config metrics.AgentConfig) (*searcher.AlphaBeta, error) {
	evaluate, ok := game.Evaluations[config.Evaluation]
	if !ok {
		return nil, fmt.Errorf("unknown evaluation %q", config.Evaluation)
	}

	options := []searcher.Option{
		searcher.WithDepth(config.Depth),
		searcher.WithEvaluationFn(evaluate),
		searcher.WithMetrics(),
	}
	if config.Guarded {
		options = append(options, searcher.WithCycleGuard())
	}
	return searcher.NewAlphaBeta(options...), nil
}
