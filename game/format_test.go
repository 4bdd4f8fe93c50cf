package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	const text = "%%%%%%\n%P.. %\n% %G %\n%%%%%%\n"

	t.Run("drawing the starting state as its layout", func(t *testing.T) {
		l, err := ParseLayout(text)
		require.NoError(t, err)

		require.Equal(t, text, NewGameState(l, NewStandardRules()).String())
	})

	t.Run("reparsing a drawn state", func(t *testing.T) {
		l, err := ParseLayout(text)
		require.NoError(t, err)
		state := NewGameState(l, NewStandardRules()).Play(0, East).Play(1, East)

		reparsed, err := ParseLayout(state.String())
		require.NoError(t, err)
		again := NewGameState(reparsed, NewStandardRules())

		require.Equal(t, state.Signature(), again.Signature())
	})

	t.Run("keeping food under ghosts on the board", func(t *testing.T) {
		l, err := ParseLayout(text)
		require.NoError(t, err)
		state := NewGameState(l, NewStandardRules()).Play(1, North)

		require.Equal(t, 'G', state.Glyph(Position{X: 3, Y: 2}))
		require.Equal(t, "%%%%%%\n%P.. %\n% %  %\n%%%%%%\n", state.Board())
	})
}
