package agent

import "fmt"

// GhostKinds lists the names NewGhost accepts.
var GhostKinds = []string{"random", "greedy", "lua"}

// NewGhost builds the ghost agent of the given kind. script is Lua source for
// "lua" ghosts; an empty script uses DefaultGhostScript.
func NewGhost(kind string, index int, seed uint64, script string) (Agent, error) {
	switch kind {
	case "random":
		return NewRandomGhost(index, seed+uint64(index)), nil
	case "greedy":
		return NewGreedyGhost(index), nil
	case "lua":
		if script == "" {
			script = DefaultGhostScript
		}
		return NewLuaGhost(index, script)
	}
	return nil, fmt.Errorf("unknown ghost kind %q, expected one of %v", kind, GhostKinds)
}

// NewGhosts builds one ghost of the given kind per ghost index 1..n.
func NewGhosts(kind string, n int, seed uint64, script string) ([]Agent, error) {
	ghosts := make([]Agent, 0, n)
	for i := 1; i <= n; i++ {
		ghost, err := NewGhost(kind, i, seed, script)
		if err != nil {
			Close(ghosts)
			return nil, err
		}
		ghosts = append(ghosts, ghost)
	}
	return ghosts, nil
}

// Close releases agents that hold resources, such as Lua interpreters.
func Close(agents []Agent) {
	for _, a := range agents {
		if closer, ok := a.(interface{ Close() }); ok {
			closer.Close()
		}
	}
}
