package searcher

import (
	"fmt"
	"math"
	"pacman/experiments/metrics"
	"pacman/game"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestAlphaBetaDecide(t *testing.T) {
	t.Run("breaking ties by first occurrence", func(t *testing.T) {
		root := tree("root", 2,
			tree("A", 2, leaf("a", 5)),
			tree("B", 2, leaf("b", 7)),
			tree("C", 2, leaf("c", 7)),
		)
		ab := NewAlphaBeta(WithDepth(1), WithEvaluationFn(scoreOf), WithMetrics())

		move, metric := ab.Decide(root)

		require.Equal(t, mockMove{id: "B"}, move, "Should pick the first of the tied maxima")
		require.Equal(t, 7.0, metric.Value)
	})

	t.Run("pruning a root sibling after its first child", func(t *testing.T) {
		b2 := tree("b2", 2, leaf("b2x", 0))
		b3 := tree("b3", 2, leaf("b3x", 0))
		b := tree("B", 2, leaf("b1", 3), b2, b3)
		root := tree("root", 2,
			tree("A", 2, leaf("a1", 10), leaf("a2", 12)),
			b,
		)
		e := &evaluations{}
		ab := NewAlphaBeta(WithDepth(1), WithEvaluationFn(e.evaluate))

		move := ab.FindNextMove(root)

		require.Equal(t, mockMove{id: "A"}, move)
		require.Equal(t, []string{"a1", "a2", "b1"}, e.ids, "B's remaining children should never be evaluated")
		require.Equal(t, 1, b.calls, "B should be expanded once")
		require.Equal(t, 0, b2.calls, "Pruned sibling should never be expanded")
		require.Equal(t, 0, b3.calls, "Pruned sibling should never be expanded")
	})

	t.Run("returning a winning move immediately", func(t *testing.T) {
		won := &mockState{id: "W", win: true, score: math.Inf(1)}
		other := tree("X", 2, leaf("x", 100))
		root := tree("root", 2, won, other)
		ab := NewAlphaBeta(WithDepth(3), WithEvaluationFn(scoreOf))

		move := ab.FindNextMove(root)

		require.Equal(t, mockMove{id: "W"}, move)
		require.Equal(t, 0, other.calls, "Siblings after a root cutoff should never be expanded")
	})

	t.Run("evaluating root successors directly at depth 0", func(t *testing.T) {
		root := tree("root", 2,
			tree("A", 2, leaf("a", 100)),
			tree("B", 2, leaf("b", 100)),
		)
		root.children[0].score = 1
		root.children[1].score = 2
		e := &evaluations{}
		ab := NewAlphaBeta(WithDepth(0), WithEvaluationFn(e.evaluate), WithMetrics())

		move, metric := ab.Decide(root)

		require.Equal(t, mockMove{id: "B"}, move)
		require.Equal(t, []string{"A", "B"}, e.ids)
		require.Equal(t, 2, metric.Evaluations)
		require.Equal(t, 0, root.children[0].calls, "Depth 0 should not expand below the root")
	})

	t.Run("ghosts move from the highest index down", func(t *testing.T) {
		max2 := tree("max2", 3, leaf("leaf", 1))
		ghost1 := tree("ghost1", 3, max2)
		ghost2 := tree("ghost2", 3, ghost1)
		root := tree("root", 3, ghost2)
		ab := NewAlphaBeta(WithDepth(2), WithEvaluationFn(scoreOf))

		ab.FindNextMove(root)

		require.Equal(t, []int{0}, root.agentsAsk)
		require.Equal(t, []int{2}, ghost2.agentsAsk)
		require.Equal(t, []int{1}, ghost1.agentsAsk)
		require.Equal(t, []int{0}, max2.agentsAsk, "Pacman should move again after ghost 1")
	})

	t.Run("searching without ghosts", func(t *testing.T) {
		root := tree("root", 1,
			tree("A", 1, leaf("a", 1)),
			tree("B", 1, leaf("b", 5)),
		)
		e := &evaluations{}
		ab := NewAlphaBeta(WithDepth(2), WithEvaluationFn(e.evaluate))

		move := ab.FindNextMove(root)

		require.Equal(t, mockMove{id: "B"}, move)
		require.Equal(t, []int{0}, root.children[0].agentsAsk, "Pacman should move again")
	})

	t.Run("panics without legal moves", func(t *testing.T) {
		root := tree("root", 2)
		ab := NewAlphaBeta()

		require.Panics(t, func() { ab.FindNextMove(root) })
	})
}

func TestNewAlphaBeta(t *testing.T) {
	t.Run("default values", func(t *testing.T) {
		ab := NewAlphaBeta()

		require.Equal(t, 5, ab.depth)
		require.False(t, ab.guarded)
		require.Equal(t, "features", game.EvaluationName(ab.evaluate))
	})

	t.Run("ignoring invalid options", func(t *testing.T) {
		ab := NewAlphaBeta(WithDepth(-1), WithEvaluationFn(nil))

		require.Equal(t, 5, ab.depth)
		require.NotNil(t, ab.evaluate)
	})
}

// randomTree builds a game tree with occasional terminal nodes and small
// integer scores so that ties are common.
func randomTree(r *rand.Rand, id string, level, maxLevel, agents int) *mockState {
	node := &mockState{id: id, agents: agents, score: float64(r.Intn(10))}
	if level == maxLevel {
		return node
	}
	if level > 0 && r.Intn(8) == 0 {
		node.win = r.Intn(2) == 0
		node.lose = !node.win
		return node
	}
	for i := 0; i < 1+r.Intn(3); i++ {
		node.children = append(node.children, randomTree(r, fmt.Sprintf("%s.%d", id, i), level+1, maxLevel, agents))
	}
	return node
}

func TestPruningEquivalence(t *testing.T) {
	t.Run("random trees", func(t *testing.T) {
		r := rand.New(rand.NewSource(42))
		for i := 0; i < 200; i++ {
			agents := 2 + r.Intn(2)
			root := randomTree(r, "root", 0, 6, agents)
			for _, depth := range []int{1, 2} {
				pruned := NewAlphaBeta(WithDepth(depth), WithEvaluationFn(scoreOf), WithMetrics())
				full := NewMinimax(WithDepth(depth), WithEvaluationFn(scoreOf), WithMetrics())

				prunedMove, prunedMetric := pruned.Decide(root)
				fullMove, fullMetric := full.Decide(root)

				require.Equal(t, fullMove, prunedMove, "tree %d depth %d: pruning should not change the move", i, depth)
				require.Equal(t, fullMetric.Value, prunedMetric.Value, "tree %d depth %d: pruning should not change the value", i, depth)
				require.LessOrEqual(t, prunedMetric.Evaluations, fullMetric.Evaluations, "Pruning should never evaluate more")
			}
		}
	})

	t.Run("Pacman game", func(t *testing.T) {
		l, err := game.LoadLayout("small")
		require.NoError(t, err)
		state := game.NewGameState(l, game.NewStandardRules())

		for _, evaluate := range []game.Evaluate{game.EvaluateScore, game.EvaluateFeatures} {
			pruned := NewAlphaBeta(WithDepth(3), WithEvaluationFn(evaluate))
			full := NewMinimax(WithDepth(3), WithEvaluationFn(evaluate))

			require.Equal(t, full.FindNextMove(state), pruned.FindNextMove(state))
		}
	})
}

func TestDepthMonotonicity(t *testing.T) {
	l, err := game.LoadLayout("medium")
	require.NoError(t, err)
	state := game.NewGameState(l, game.NewStandardRules())

	previous := 0
	for depth := 0; depth <= 4; depth++ {
		m := NewMinimax(WithDepth(depth), WithEvaluationFn(game.EvaluateScore), WithMetrics())
		_, metric := m.Decide(state)

		require.GreaterOrEqual(t, metric.Evaluations, previous, "Depth %d should evaluate at least as many states", depth)
		previous = metric.Evaluations
	}

	t.Run("depth 0 evaluates the root successors", func(t *testing.T) {
		ab := NewAlphaBeta(WithDepth(0), WithEvaluationFn(game.EvaluateFeatures), WithMetrics())

		move, metric := ab.Decide(state)

		successors := state.Successors(0)
		best, bestValue := successors[0].Move, math.Inf(-1)
		for _, successor := range successors {
			if v := game.EvaluateFeatures(successor.State); v > bestValue {
				best, bestValue = successor.Move, v
			}
		}
		require.Equal(t, best, move)
		require.Equal(t, bestValue, metric.Value)
		require.Equal(t, len(successors), metric.Evaluations)
	})
}

func TestAlphaBetaPlaysPacman(t *testing.T) {
	t.Run("eating adjacent food", func(t *testing.T) {
		l, err := game.ParseLayout("%%%%%%%%\n%.P    %\n%%%%%% %\n%G     %\n%%%%%%%%")
		require.NoError(t, err)
		state := game.NewGameState(l, game.NewStandardRules())

		move := NewAlphaBeta(WithDepth(2)).FindNextMove(state)

		require.Equal(t, game.West, move, "Should eat the last food and win")
	})

	t.Run("avoiding an adjacent ghost", func(t *testing.T) {
		l, err := game.ParseLayout("%%%%%%%\n%GP  .%\n%%%%%%%")
		require.NoError(t, err)
		state := game.NewGameState(l, game.NewStandardRules())

		move := NewAlphaBeta(WithDepth(2)).FindNextMove(state)

		require.NotEqual(t, game.West, move, "Should not walk into the ghost")
		require.NotEqual(t, game.Stop, move, "Should not wait for the ghost")
	})
}

func TestConcurrentDecisions(t *testing.T) {
	l, err := game.LoadLayout("small")
	require.NoError(t, err)
	state := game.NewGameState(l, game.NewStandardRules())

	for _, guarded := range []bool{false, true} {
		options := []Option{WithDepth(3), WithMetrics()}
		if guarded {
			options = append(options, WithCycleGuard())
		}
		ab := NewAlphaBeta(options...)
		wantMove, want := ab.Decide(state)

		const decisions = 8
		moves := make([]game.Move, decisions)
		got := make([]metrics.SearchMetric, decisions)
		var wg sync.WaitGroup
		for i := 0; i < decisions; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				moves[i], got[i] = ab.Decide(state)
			}(i)
		}
		wg.Wait()

		for i := 0; i < decisions; i++ {
			require.Equal(t, wantMove, moves[i], "guarded=%t", guarded)
			require.Equal(t, want.Nodes, got[i].Nodes, "Concurrent decisions should count their own nodes")
			require.Equal(t, want.Evaluations, got[i].Evaluations)
			require.Equal(t, want.Cutoffs, got[i].Cutoffs)
			require.Equal(t, want.Value, got[i].Value)
		}
	}
}
