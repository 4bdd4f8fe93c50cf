package main

import (
	"flag"
	"fmt"
	"os"
	"pacman/display"
	"pacman/engine"
	"pacman/experiments"
	"pacman/experiments/metrics"
	"pacman/game"
	"pacman/meta"
	"pacman/searcher"
	"pacman/searcher/agent"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type options struct {
	layout     string
	depth      int
	evaluation string
	guarded    bool
	ghost      string
	script     string
	seed       uint64
	maxMoves   int
	view       bool
	experiment string
	games      int
	out        string
	db         string
	serve      string
	remote     string
}

func main() {
	var o options
	flag.StringVar(&o.layout, "layout", meta.LAYOUT, "Embedded layout name or layout file")
	flag.IntVar(&o.depth, "depth", meta.DEPTH, "Search depth bound")
	flag.StringVar(&o.evaluation, "eval", meta.EVALUATION, "Evaluation function (score|features)")
	flag.BoolVar(&o.guarded, "guard", false, "Search without depth bound, skipping visited states (small boards such as loop only)")
	flag.StringVar(&o.ghost, "ghost", "random", "Ghost agent (random|greedy|lua)")
	flag.StringVar(&o.script, "script", "", "Lua script of lua ghosts")
	flag.Uint64Var(&o.seed, "seed", 1, "Seed of random ghosts")
	flag.IntVar(&o.maxMoves, "max-moves", meta.MAX_MOVES, "Maximum number of agent moves per game")
	flag.BoolVar(&o.view, "view", false, "Replay the game in the terminal")
	flag.StringVar(&o.experiment, "experiment", "", "Run an experiment (depth|throughput)")
	flag.IntVar(&o.games, "games", meta.GAMES, "Games per experiment configuration")
	flag.StringVar(&o.out, "out", "experiments/results", "Experiment output directory")
	flag.StringVar(&o.db, "db", "", "SQLite database accumulating experiment games")
	flag.StringVar(&o.serve, "serve", "", "Serve Pacman moves over HTTP on this address")
	flag.StringVar(&o.remote, "remote", "", "Ask the agent server at this URL for Pacman's moves")
	level := flag.String("log-level", "info", "Log level")
	flag.Parse()

	setupLogger(*level, o.view)

	var err error
	switch {
	case o.serve != "":
		err = serve(o)
	case o.experiment != "":
		err = runExperiment(o)
	default:
		err = play(o)
	}
	if err != nil {
		log.Error().Err(err).Msg("failed")
		os.Exit(1)
	}
}

func setupLogger(level string, quiet bool) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	l, err := zerolog.ParseLevel(level)
	if err != nil {
		log.Warn().Str("level", level).Msg("unknown log level, using info")
		l = zerolog.InfoLevel
	}
	if quiet && l < zerolog.WarnLevel {
		// Log lines would tear the replay
		l = zerolog.WarnLevel
	}
	zerolog.SetGlobalLevel(l)
}

func createSearcher(o options) (searcher.Searcher, error) {
	return experiments.CreateSearcher(metrics.AgentConfig{
		Depth:      o.depth,
		Evaluation: o.evaluation,
		Guarded:    o.guarded,
	})
}

func readScript(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	script, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read ghost script %s: %w", path, err)
	}
	return string(script), nil
}

// warnGuarded reports whether the cycle guarded search is likely to run
// without end on the layout, and logs a warning when it is.
func warnGuarded(o options, l *game.Layout) bool {
	if !o.guarded || l.OpenCells() <= meta.GUARDED_CELLS {
		return false
	}
	log.Warn().
		Str("layout", o.layout).
		Int("open_cells", l.OpenCells()).
		Int("limit", meta.GUARDED_CELLS).
		Msg("the guarded search visits every reachable board and may not finish on this layout, try -layout loop or drop -guard")
	return true
}

func serve(o options) error {
	if o.guarded {
		log.Warn().Int("limit", meta.GUARDED_CELLS).Msg("guarded search is only practical on boards with few open cells")
	}
	s, err := createSearcher(o)
	if err != nil {
		return err
	}
	return agent.Serve(o.serve, s)
}

func play(o options) error {
	l, err := game.LoadLayout(o.layout)
	if err != nil {
		return err
	}
	if o.remote == "" {
		warnGuarded(o, l)
	}
	script, err := readScript(o.script)
	if err != nil {
		return err
	}

	var pacman agent.Agent
	if o.remote != "" {
		pacman = engine.NewRemoteAgent(o.remote)
	} else {
		s, err := createSearcher(o)
		if err != nil {
			return err
		}
		pacman = agent.NewPacmanAgent(s)
	}

	state := game.NewGameState(l, game.NewStandardRules())
	ghosts, err := agent.NewGhosts(o.ghost, len(state.Ghosts), o.seed, script)
	if err != nil {
		return err
	}
	defer agent.Close(ghosts)

	e := engine.NewLocalEngine(state, pacman, ghosts)
	e.Layout = o.layout
	e.MaxMoves = o.maxMoves
	gameMetric, _ := e.Run()

	if o.view {
		if err := display.Replay(e.History()); err != nil {
			return err
		}
	}
	fmt.Printf("win=%t score=%g moves=%d duration=%s\n", gameMetric.Win, gameMetric.Score, gameMetric.TotalMoves, gameMetric.Duration)
	return nil
}

func runExperiment(o options) error {
	script, err := readScript(o.script)
	if err != nil {
		return err
	}
	opts := []experiments.Option{
		experiments.WithSeed(o.seed),
		experiments.WithScript(script),
		experiments.WithMaxMoves(o.maxMoves),
	}

	var dir string
	switch o.experiment {
	case experiments.DepthExperiment:
		if o.db != "" {
			store, err := metrics.NewStore(o.db)
			if err != nil {
				return err
			}
			defer store.Close()
			opts = append(opts, experiments.WithStore(store))
			defer printSummaries(store)
		}
		configs := experiments.DepthConfigs(o.depth, o.evaluation, o.ghost)
		dir, err = experiments.RunDepthExperiment(o.layout, configs, o.games, o.out, opts...)
	case experiments.ThroughputExperiment:
		depths := make([]int, 0, o.depth)
		for d := 1; d <= o.depth; d++ {
			depths = append(depths, d)
		}
		dir, err = experiments.RunThroughputExperiment(o.layout, depths, o.games, o.out, opts...)
	default:
		return fmt.Errorf("unknown experiment %q", o.experiment)
	}
	if err != nil {
		return err
	}
	fmt.Printf("results written to %s\n", dir)
	return nil
}

func printSummaries(store *metrics.Store) {
	summaries, err := store.Summaries(experiments.DepthExperiment)
	if err != nil {
		log.Error().Err(err).Msg("failed to summarize games")
		return
	}
	for _, s := range summaries {
		fmt.Printf("depth=%d eval=%s guarded=%t games=%d wins=%d mean_score=%.1f mean_moves=%.1f\n",
			s.Depth, s.Evaluation, s.Guarded, s.Games, s.Wins, s.MeanScore, s.MeanMoves)
	}
}
