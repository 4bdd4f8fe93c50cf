package engine

import (
	"pacman/experiments/metrics"
	"pacman/game"
	"pacman/searcher"
	"pacman/searcher/agent"
	"testing"

	"github.com/stretchr/testify/require"
)

type fixedAgent struct {
	move game.Move
}

func (a fixedAgent) FindMove(state game.State) (game.Move, metrics.SearchMetric) {
	return a.move, metrics.SearchMetric{}
}

func newState(t *testing.T, text string) *game.GameState {
	l, err := game.ParseLayout(text)
	require.NoError(t, err)
	return game.NewGameState(l, game.NewStandardRules())
}

func TestLocalEngine(t *testing.T) {
	t.Run("playing a full game", func(t *testing.T) {
		l, err := game.LoadLayout("small")
		require.NoError(t, err)
		state := game.NewGameState(l, game.NewStandardRules())
		pacman := agent.NewPacmanAgent(searcher.NewAlphaBeta(searcher.WithDepth(2), searcher.WithMetrics()))
		e := NewLocalEngine(state, pacman, []agent.Agent{agent.NewGreedyGhost(1)})
		e.Layout = "small"

		gameMetric, moveMetrics := e.Run()

		require.True(t, e.State.IsWin() || e.State.IsLose() || gameMetric.TotalMoves == e.MaxMoves)
		require.Equal(t, "small", gameMetric.Layout)
		require.Equal(t, gameMetric.TotalMoves, len(moveMetrics))
		require.Len(t, e.History(), gameMetric.TotalMoves+1, "History should hold the start and every move")
		require.Same(t, state, e.History()[0])
		require.Equal(t, e.State.Score(), gameMetric.Score)
		for i, m := range moveMetrics {
			require.Equal(t, i+1, m.Step)
			require.Equal(t, i%2, m.Agent, "Pacman and the ghost should alternate")
			if m.Agent == 0 {
				require.Equal(t, 2, m.Depth)
			}
		}
	})

	t.Run("replacing illegal moves", func(t *testing.T) {
		e := NewLocalEngine(newState(t, "%%%%%\n%P .%\n%%%%%"), fixedAgent{move: game.North}, nil)

		gameMetric, moveMetrics := e.Run()

		require.True(t, gameMetric.Win)
		require.Equal(t, 2, gameMetric.TotalMoves)
		require.Equal(t, 508.0, gameMetric.Score)
		require.Equal(t, "East", moveMetrics[0].Move)
		require.Equal(t, "East", moveMetrics[1].Move)
	})

	t.Run("stopping at the move limit", func(t *testing.T) {
		e := NewLocalEngine(newState(t, "%%%%%\n%P .%\n%%%%%"), fixedAgent{move: game.Stop}, nil)
		e.MaxMoves = 5

		gameMetric, _ := e.Run()

		require.False(t, gameMetric.Win)
		require.Equal(t, 5, gameMetric.TotalMoves)
		require.Equal(t, -5.0, gameMetric.Score)
	})

	t.Run("ending on a collision", func(t *testing.T) {
		e := NewLocalEngine(newState(t, "%%%%%%\n%P G.%\n%%%%%%"), fixedAgent{move: game.East}, []agent.Agent{agent.NewGreedyGhost(1)})

		gameMetric, moveMetrics := e.Run()

		require.False(t, gameMetric.Win)
		require.True(t, e.State.IsLose())
		require.Len(t, moveMetrics, 2, "Pacman steps next to the ghost and the ghost steps onto Pacman")
	})

	t.Run("rejecting a missing ghost agent", func(t *testing.T) {
		require.Panics(t, func() {
			NewLocalEngine(newState(t, "%%%%%\n%PG.%\n%%%%%"), fixedAgent{move: game.Stop}, nil)
		})
	})
}
