package game

// Move is an opaque action token. The search only compares moves with ==.
type Move interface {
	String() string
}

// Signature fingerprints a state for loop detection.
type Signature uint64

// Successor pairs a resulting state with the move that produced it.
type Successor struct {
	State State
	Move  Move
}

// State should be immutable - Successors always returns new copies.
// Agent 0 is Pacman (the maximizer), agents 1..NumAgents()-1 are ghosts.
type State interface {
	IsWin() bool
	IsLose() bool
	Score() float64
	Successors(agent int) []Successor
	NumAgents() int
	Signature() Signature
}

// Features are the read-only board queries used by heuristics and ghost
// policies.
type Features interface {
	State
	PacmanPosition() Position
	GhostPositions() []Position
	Food() []Position
}

// Evaluates a non-terminal (or depth-cut) state to a utility from Pacman's
// perspective.
type Evaluate func(State) float64
