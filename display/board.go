package display

import (
	"fmt"
	"strings"

	"pacman/game"

	"github.com/charmbracelet/lipgloss"
)

var (
	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("240"))

	statusStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Padding(0, 1)

	wallCell   = lipgloss.NewStyle().Foreground(lipgloss.Color("27")).Render("█")
	foodCell   = lipgloss.NewStyle().Foreground(lipgloss.Color("223")).Render("·")
	pacmanCell = lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true).Render("ᗧ")
	ghostCell  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true).Render("ᗣ")
	floorCell  = " "
)

// Render draws the board inside a border with the score below it.
func Render(state *game.GameState) string {
	var sb strings.Builder
	for y := state.Layout.Height - 1; y >= 0; y-- {
		for x := 0; x < state.Layout.Width; x++ {
			sb.WriteString(cell(state.Glyph(game.Position{X: x, Y: y})))
		}
		if y > 0 {
			sb.WriteByte('\n')
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		boardStyle.Render(sb.String()),
		statusStyle.Render(status(state)),
	)
}

func cell(glyph rune) string {
	switch glyph {
	case '%':
		return wallCell
	case '.':
		return foodCell
	case 'P':
		return pacmanCell
	case 'G':
		return ghostCell
	}
	return floorCell
}

func status(state *game.GameState) string {
	s := fmt.Sprintf("Score: %g  Food: %d", state.Score(), state.FoodLeft())
	switch {
	case state.IsWin():
		s += "  WIN"
	case state.IsLose():
		s += "  LOSE"
	}
	return s
}
