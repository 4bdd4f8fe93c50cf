package metrics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("counting search work", func(t *testing.T) {
		c := NewCollector()
		c.Start(3, "features", false)
		c.AddNode()
		c.AddNode()
		c.AddEvaluation()
		c.AddCutoff()

		got := c.Complete(12.5)

		require.Equal(t, 3, got.Depth)
		require.Equal(t, "features", got.Evaluation)
		require.False(t, got.Guarded)
		require.Equal(t, 2, got.Nodes)
		require.Equal(t, 1, got.Evaluations)
		require.Equal(t, 1, got.Cutoffs)
		require.Equal(t, 12.5, got.Value)
	})

	t.Run("starting again resets the counters", func(t *testing.T) {
		c := NewCollector()
		c.Start(3, "score", false)
		c.AddNode()
		c.Start(1, "score", true)

		got := c.Complete(0)

		require.Equal(t, 0, got.Nodes, "Counters should reset per decision")
		require.True(t, got.Guarded)
	})

	t.Run("dummy collector records nothing", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start(3, "score", false)
		c.AddNode()

		require.Equal(t, SearchMetric{}, c.Complete(1))
	})
}
