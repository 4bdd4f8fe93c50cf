package searcher

import "pacman/game"

// CycleGuard is the set of signatures visited during one decision.
type CycleGuard struct {
	visited map[game.Signature]struct{}
}

func NewCycleGuard() *CycleGuard {
	return &CycleGuard{visited: make(map[game.Signature]struct{})}
}

// Reset empties the guard and marks the root as visited.
func (g *CycleGuard) Reset(root game.Signature) {
	clear(g.visited)
	g.visited[root] = struct{}{}
}

func (g *CycleGuard) Visit(signature game.Signature) {
	g.visited[signature] = struct{}{}
}

func (g *CycleGuard) Visited(signature game.Signature) bool {
	_, ok := g.visited[signature]
	return ok
}

func (g *CycleGuard) Len() int {
	return len(g.visited)
}
