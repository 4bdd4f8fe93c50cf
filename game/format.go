package game

import "strings"

// String draws the state in layout text, top row first.
func (gs *GameState) String() string {
	return gs.draw(true)
}

// Board draws the state without the ghosts, so food under a ghost stays
// visible. Ghost positions have to travel separately.
func (gs *GameState) Board() string {
	return gs.draw(false)
}

// Glyph returns the layout glyph of p. Ghosts are drawn over food and
// Pacman over everything.
func (gs *GameState) Glyph(p Position) rune {
	return gs.glyph(p, true)
}

func (gs *GameState) glyph(p Position, ghosts bool) rune {
	switch {
	case gs.Layout.IsWall(p):
		return '%'
	case p == gs.Pacman:
		return 'P'
	}
	if ghosts {
		for _, ghost := range gs.Ghosts {
			if ghost == p {
				return 'G'
			}
		}
	}
	if gs.HasFood(p) {
		return '.'
	}
	return ' '
}

func (gs *GameState) draw(ghosts bool) string {
	var sb strings.Builder
	for y := gs.Layout.Height - 1; y >= 0; y-- {
		for x := 0; x < gs.Layout.Width; x++ {
			sb.WriteRune(gs.glyph(Position{X: x, Y: y}, ghosts))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
