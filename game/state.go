package game

import (
	"encoding/binary"
	"hash/fnv"
)

// GameState represents the dynamic state of the game at any point. The layout
// and rules are static and shared between copies.
type GameState struct {
	Layout   *Layout
	Rules    Rules
	Pacman   Position
	Ghosts   []Position
	food     []bool // Remaining food, indexed like Layout.walls
	foodLeft int
	score    float64
	win      bool
	lose     bool
}

// NewGameState initializes a game at the layout's starting positions.
func NewGameState(l *Layout, rules Rules) *GameState {
	food := make([]bool, len(l.food))
	copy(food, l.food)
	foodLeft := 0
	for _, f := range food {
		if f {
			foodLeft++
		}
	}

	ghosts := make([]Position, len(l.GhostStarts))
	copy(ghosts, l.GhostStarts)

	return &GameState{
		Layout:   l,
		Rules:    rules,
		Pacman:   l.PacmanStart,
		Ghosts:   ghosts,
		food:     food,
		foodLeft: foodLeft,
	}
}

// Copy returns a deep copy of the dynamic state.
func (gs *GameState) Copy() *GameState {
	ghostsCopy := make([]Position, len(gs.Ghosts))
	copy(ghostsCopy, gs.Ghosts)

	foodCopy := make([]bool, len(gs.food))
	copy(foodCopy, gs.food)

	return &GameState{
		Layout:   gs.Layout, // Layout is immutable
		Rules:    gs.Rules,  // Rules are immutable
		Pacman:   gs.Pacman,
		Ghosts:   ghostsCopy,
		food:     foodCopy,
		foodLeft: gs.foodLeft,
		score:    gs.score,
		win:      gs.win,
		lose:     gs.lose,
	}
}

func (gs *GameState) IsWin() bool {
	return gs.win
}

func (gs *GameState) IsLose() bool {
	return gs.lose
}

func (gs *GameState) Score() float64 {
	return gs.score
}

func (gs *GameState) NumAgents() int {
	return 1 + len(gs.Ghosts)
}

func (gs *GameState) PacmanPosition() Position {
	return gs.Pacman
}

func (gs *GameState) GhostPositions() []Position {
	positions := make([]Position, len(gs.Ghosts))
	copy(positions, gs.Ghosts)
	return positions
}

// Food lists the remaining food, column by column.
func (gs *GameState) Food() []Position {
	positions := make([]Position, 0, gs.foodLeft)
	for x := 0; x < gs.Layout.Width; x++ {
		for y := 0; y < gs.Layout.Height; y++ {
			if gs.food[y*gs.Layout.Width+x] {
				positions = append(positions, Position{X: x, Y: y})
			}
		}
	}
	return positions
}

// HasFood reports whether food remains at p.
func (gs *GameState) HasFood(p Position) bool {
	if gs.Layout.IsWall(p) {
		return false
	}
	return gs.food[gs.Layout.index(p)]
}

// FoodLeft returns the number of remaining food items.
func (gs *GameState) FoodLeft() int {
	return gs.foodLeft
}

// LegalMoves returns the moves available to an agent. Pacman may always stop;
// a ghost only stops when boxed in. Terminal states have no legal moves.
func (gs *GameState) LegalMoves(agent int) []Move {
	if gs.win || gs.lose {
		return nil
	}

	var from Position
	if agent == 0 {
		from = gs.Pacman
	} else {
		from = gs.Ghosts[agent-1]
	}

	moves := []Move{}
	for _, d := range Directions[:4] {
		if !gs.Layout.IsWall(from.Step(d)) {
			moves = append(moves, d)
		}
	}
	if agent == 0 || len(moves) == 0 {
		moves = append(moves, Stop)
	}
	return moves
}

func (gs *GameState) Successors(agent int) []Successor {
	moves := gs.LegalMoves(agent)
	successors := make([]Successor, 0, len(moves))
	for _, move := range moves {
		successors = append(successors, Successor{State: gs.Play(agent, move), Move: move})
	}
	return successors
}

// Play returns the state reached after the agent makes the move. The move is
// assumed to be legal.
func (gs *GameState) Play(agent int, move Move) *GameState {
	d, ok := move.(Direction)
	if !ok {
		panic("unexpected move type")
	}

	next := gs.Copy()
	if agent == 0 {
		next.movePacman(d)
	} else {
		next.moveGhost(agent-1, d)
	}
	return next
}

func (gs *GameState) movePacman(d Direction) {
	gs.Pacman = gs.Pacman.Step(d)
	gs.score -= gs.Rules.TimePenalty()

	i := gs.Layout.index(gs.Pacman)
	if gs.food[i] {
		gs.food[i] = false
		gs.foodLeft--
		gs.score += gs.Rules.FoodReward()
		if gs.foodLeft == 0 {
			gs.score += gs.Rules.WinReward()
			gs.win = true
		}
	}

	for _, ghost := range gs.Ghosts {
		if ghost == gs.Pacman {
			gs.collide()
			return
		}
	}
}

func (gs *GameState) moveGhost(ghost int, d Direction) {
	gs.Ghosts[ghost] = gs.Ghosts[ghost].Step(d)
	if gs.Ghosts[ghost] == gs.Pacman {
		gs.collide()
	}
}

// collide ends the game as a loss unless Pacman has already won.
func (gs *GameState) collide() {
	if gs.win {
		return
	}
	gs.score -= gs.Rules.LosePenalty()
	gs.lose = true
}

// Signature hashes Pacman's position, the remaining food and the ghost
// positions.
func (gs *GameState) Signature() Signature {
	hasher := fnv.New64a()

	// Hash Pacman position
	binary.Write(hasher, binary.LittleEndian, int64(gs.Pacman.X))
	binary.Write(hasher, binary.LittleEndian, int64(gs.Pacman.Y))

	// Hash food grid
	for _, f := range gs.food {
		binary.Write(hasher, binary.LittleEndian, f)
	}

	// Hash ghost positions in agent order
	for _, ghost := range gs.Ghosts {
		binary.Write(hasher, binary.LittleEndian, int64(ghost.X))
		binary.Write(hasher, binary.LittleEndian, int64(ghost.Y))
	}

	return Signature(hasher.Sum64())
}
