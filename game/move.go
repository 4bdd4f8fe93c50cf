package game

import "fmt"

// Direction is the move type of the Pacman game.
type Direction int

const (
	North Direction = iota
	South
	East
	West
	Stop
)

// Directions lists every direction in legal-move order.
var Directions = []Direction{North, South, East, West, Stop}

func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case South:
		return "South"
	case East:
		return "East"
	case West:
		return "West"
	case Stop:
		return "Stop"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Vector returns the (dx, dy) offset of the direction. North increases y.
func (d Direction) Vector() (dx, dy int) {
	switch d {
	case North:
		return 0, 1
	case South:
		return 0, -1
	case East:
		return 1, 0
	case West:
		return -1, 0
	}
	return 0, 0
}

// ParseDirection maps a direction name back to its value.
func ParseDirection(name string) (Direction, error) {
	for _, d := range Directions {
		if d.String() == name {
			return d, nil
		}
	}
	return Stop, fmt.Errorf("unknown direction %q", name)
}

// Position is a board cell; y is counted from the bottom row.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Step returns the position reached by moving one cell in direction d.
func (p Position) Step(d Direction) Position {
	dx, dy := d.Vector()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// ManhattanDistance returns |x1-x2| + |y1-y2|.
func ManhattanDistance(a, b Position) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
