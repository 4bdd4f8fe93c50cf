package display

import (
	"fmt"
	"time"

	"pacman/game"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const autoplayInterval = 150 * time.Millisecond

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

// tickMsg carries the autoplay run it belongs to, so ticks left over from a
// paused run are dropped.
type tickMsg struct {
	run int
}

// ReplayModel steps through the recorded states of a game.
type ReplayModel struct {
	frames  []*game.GameState
	current int
	playing bool
	run     int
}

func NewReplay(frames []*game.GameState) ReplayModel {
	if len(frames) == 0 {
		panic("nothing to replay")
	}
	return ReplayModel{frames: frames}
}

// Replay runs the replay in the terminal until the user quits.
func Replay(frames []*game.GameState) error {
	_, err := tea.NewProgram(NewReplay(frames)).Run()
	return err
}

func (m ReplayModel) Init() tea.Cmd {
	return nil
}

func (m ReplayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h":
			m.playing = false
			m.current = max(0, m.current-1)
		case "right", "l":
			m.playing = false
			m.current = min(len(m.frames)-1, m.current+1)
		case "home":
			m.current = 0
		case "end":
			m.current = len(m.frames) - 1
		case " ":
			m.playing = !m.playing
			if m.playing {
				m.run++
				return m, tick(m.run)
			}
		}
		return m, nil

	case tickMsg:
		if !m.playing || msg.run != m.run {
			return m, nil
		}
		if m.current == len(m.frames)-1 {
			m.playing = false
			return m, nil
		}
		m.current++
		return m, tick(m.run)
	}
	return m, nil
}

func (m ReplayModel) View() string {
	help := fmt.Sprintf("move %d/%d  ←/→ step  space play  q quit", m.current, len(m.frames)-1)
	return lipgloss.JoinVertical(lipgloss.Left,
		Render(m.frames[m.current]),
		helpStyle.Render(help),
	) + "\n"
}

// Current returns the index of the displayed frame.
func (m ReplayModel) Current() int {
	return m.current
}

func (m ReplayModel) Playing() bool {
	return m.playing
}

func tick(run int) tea.Cmd {
	return tea.Tick(autoplayInterval, func(time.Time) tea.Msg {
		return tickMsg{run: run}
	})
}
