package game

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"strings"
)

//go:embed layouts/*.lay
var embeddedLayouts embed.FS

var ErrInvalidLayout = errors.New("invalid layout")

// Layout is the static part of a board: walls plus the starting positions.
type Layout struct {
	Width       int
	Height      int
	walls       []bool // Indexed by y*Width + x
	food        []bool // Starting food, same indexing as walls
	PacmanStart Position
	GhostStarts []Position
}

// ParseLayout reads a layout drawn with '%' walls, '.' food, 'o' capsules
// (eaten like food), 'P' Pacman, 'G' ghosts and ' ' floor. The first text row
// is the top of the board.
func ParseLayout(text string) (*Layout, error) {
	rows := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	// Only blank lines around the board are dropped; an inner all-floor row
	// is part of it
	for len(rows) > 0 && strings.TrimSpace(rows[0]) == "" {
		rows = rows[1:]
	}
	for len(rows) > 0 && strings.TrimSpace(rows[len(rows)-1]) == "" {
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: empty layout", ErrInvalidLayout)
	}

	width := len(rows[0])
	height := len(rows)
	l := &Layout{
		Width:  width,
		Height: height,
		walls:  make([]bool, width*height),
		food:   make([]bool, width*height),
	}

	pacmanFound := false
	for row, line := range rows {
		if len(line) != width {
			return nil, fmt.Errorf("%w: row %d has width %d, expected %d", ErrInvalidLayout, row, len(line), width)
		}
		y := height - 1 - row
		for x, glyph := range line {
			i := y*width + x
			switch glyph {
			case '%':
				l.walls[i] = true
			case '.', 'o':
				l.food[i] = true
			case 'P':
				if pacmanFound {
					return nil, fmt.Errorf("%w: more than one Pacman", ErrInvalidLayout)
				}
				pacmanFound = true
				l.PacmanStart = Position{X: x, Y: y}
			case 'G':
				l.GhostStarts = append(l.GhostStarts, Position{X: x, Y: y})
			case ' ':
			default:
				return nil, fmt.Errorf("%w: unknown glyph %q at row %d column %d", ErrInvalidLayout, glyph, row, x)
			}
		}
	}
	if !pacmanFound {
		return nil, fmt.Errorf("%w: no Pacman", ErrInvalidLayout)
	}

	return l, nil
}

// LoadLayout loads an embedded layout by name (e.g. "small") or a layout
// file from disk. Unlike ParseLayout it rejects layouts without food.
func LoadLayout(nameOrPath string) (*Layout, error) {
	data, err := embeddedLayouts.ReadFile("layouts/" + nameOrPath + ".lay")
	if err != nil {
		data, err = os.ReadFile(nameOrPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read layout %s: %w", nameOrPath, err)
		}
	}

	l, err := ParseLayout(string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse layout %s: %w", nameOrPath, err)
	}
	// A game without food can never be won and has nothing to evaluate
	if l.FoodCount() == 0 {
		return nil, fmt.Errorf("%w: layout %s has no food", ErrInvalidLayout, nameOrPath)
	}
	return l, nil
}

// IsWall reports whether p is a wall. Cells outside the board count as walls.
func (l *Layout) IsWall(p Position) bool {
	if p.X < 0 || p.Y < 0 || p.X >= l.Width || p.Y >= l.Height {
		return true
	}
	return l.walls[l.index(p)]
}

// FoodCount returns the number of starting food cells.
func (l *Layout) FoodCount() int {
	count := 0
	for _, f := range l.food {
		if f {
			count++
		}
	}
	return count
}

// OpenCells returns the number of cells that are not walls.
func (l *Layout) OpenCells() int {
	count := 0
	for _, wall := range l.walls {
		if !wall {
			count++
		}
	}
	return count
}

func (l *Layout) index(p Position) int {
	return p.Y*l.Width + p.X
}
