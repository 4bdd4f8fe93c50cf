package engine

import (
	"pacman/experiments/metrics"
	"pacman/game"
	"pacman/meta"
	"pacman/searcher/agent"
	"pacman/utils"
	"time"

	"github.com/rs/zerolog/log"
)

type LocalEngine struct {
	State    *game.GameState
	Agents   []agent.Agent // Pacman first, then ghost i at index i
	Layout   string        // Reported in the game metric
	MaxMoves int
	history  []*game.GameState
}

// NewLocalEngine seats Pacman and one agent per ghost of the state.
func NewLocalEngine(state *game.GameState, pacman agent.Agent, ghosts []agent.Agent) *LocalEngine {
	if len(ghosts) != len(state.Ghosts) {
		panic("number of ghost agents does not match the layout")
	}

	agents := make([]agent.Agent, 0, 1+len(ghosts))
	agents = append(agents, pacman)
	agents = append(agents, ghosts...)

	return &LocalEngine{
		State:    state,
		Agents:   agents,
		MaxMoves: meta.MAX_MOVES,
		history:  []*game.GameState{state},
	}
}

// Run executes the game loop. Each round Pacman moves first and the ghosts
// follow in index order.
func (e *LocalEngine) Run() (metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		Layout:    e.Layout,
		StartTime: time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Str("layout", e.Layout).Int("ghosts", len(e.Agents)-1).Msg("game started")

	step := 0
	for !e.over() && step < e.MaxMoves {
		for i := range e.Agents {
			if e.over() || step >= e.MaxMoves {
				break
			}
			move, searchMetric := e.move(i)
			step++
			moveMetrics = append(moveMetrics, metrics.MoveMetric{
				Step:         step,
				Agent:        i,
				Move:         move.String(),
				SearchMetric: searchMetric,
			})

			e.State = e.State.Play(i, move)
			e.history = append(e.history, e.State)
		}
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.Win = e.State.IsWin()
	gameMetric.Score = e.State.Score()
	gameMetric.TotalMoves = step

	if e.over() {
		log.Info().Bool("win", gameMetric.Win).Float64("score", gameMetric.Score).Int("moves", step).Msg("game over")
	} else {
		log.Info().Float64("score", gameMetric.Score).Int("moves", step).Msg("stopped at the move limit")
	}
	return gameMetric, moveMetrics
}

// History returns every state of the game so far, starting position first.
func (e *LocalEngine) History() []*game.GameState {
	return e.history
}

func (e *LocalEngine) over() bool {
	return e.State.IsWin() || e.State.IsLose()
}

// move asks agent i for a move and replaces an illegal answer with the first
// legal move.
func (e *LocalEngine) move(i int) (game.Move, metrics.SearchMetric) {
	candidate, searchMetric := e.Agents[i].FindMove(e.State)

	legal := e.State.LegalMoves(i)
	if len(legal) == 0 {
		panic("no legal moves at all")
	}
	if candidate == nil || utils.FindIndex(legal, candidate) < 0 {
		log.Warn().Int("agent", i).Interface("move", candidate).Msg("illegal move, forcing the first legal move")
		return legal[0], searchMetric
	}
	return candidate, searchMetric
}
