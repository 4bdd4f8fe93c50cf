package agent

import (
	"errors"
	"fmt"
	"os"
	"pacman/experiments/metrics"
	"pacman/game"

	"github.com/rs/zerolog/log"
	lua "github.com/yuin/gopher-lua"
)

var ErrScript = errors.New("ghost script error")

// DefaultGhostScript chases Pacman along the axis with the larger gap.
const DefaultGhostScript = `
function choose(ghost, pacman, moves)
	local want
	if math.abs(pacman.x - ghost.x) >= math.abs(pacman.y - ghost.y) then
		if pacman.x > ghost.x then want = "East" else want = "West" end
	else
		if pacman.y > ghost.y then want = "North" else want = "South" end
	end
	for _, move in ipairs(moves) do
		if move == want then
			return move
		end
	end
	return moves[1]
end
`

// LuaGhost delegates its policy to a Lua function
// choose(ghost, pacman, moves) that receives positions as {x=, y=} tables and
// the legal move names, and returns one of the names.
type LuaGhost struct {
	index int
	state *lua.LState
}

func NewLuaGhost(index int, script string) (*LuaGhost, error) {
	luaState := lua.NewState()
	if err := luaState.DoString(script); err != nil {
		luaState.Close()
		return nil, fmt.Errorf("%w: could not parse script: %v", ErrScript, err)
	}
	if luaState.GetGlobal("choose").Type() != lua.LTFunction {
		luaState.Close()
		return nil, fmt.Errorf("%w: script does not define choose", ErrScript)
	}
	return &LuaGhost{index: index, state: luaState}, nil
}

// LoadLuaGhost reads the script from a file.
func LoadLuaGhost(index int, path string) (*LuaGhost, error) {
	script, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read ghost script %s: %w", path, err)
	}
	return NewLuaGhost(index, string(script))
}

func (g *LuaGhost) Close() {
	g.state.Close()
}

// FindMove falls back to the first legal move when the script fails or
// returns an illegal move.
func (g *LuaGhost) FindMove(state game.State) (game.Move, metrics.SearchMetric) {
	f, ok := state.(game.Features)
	if !ok {
		panic("unexpected state type")
	}
	successors := state.Successors(g.index)
	if len(successors) == 0 {
		panic("ghost has no legal moves")
	}

	move, err := g.choose(f, successors)
	if err != nil {
		log.Warn().Err(err).Int("ghost", g.index).Msg("falling back to the first legal move")
		return successors[0].Move, metrics.SearchMetric{}
	}
	return move, metrics.SearchMetric{}
}

func (g *LuaGhost) choose(f game.Features, successors []game.Successor) (game.Move, error) {
	moves := g.state.NewTable()
	for _, successor := range successors {
		moves.Append(lua.LString(successor.Move.String()))
	}

	g.state.Push(g.state.GetGlobal("choose"))
	g.state.Push(g.position(f.GhostPositions()[g.index-1]))
	g.state.Push(g.position(f.PacmanPosition()))
	g.state.Push(moves)
	if err := g.state.PCall(3, 1, nil); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScript, err)
	}

	ret := g.state.Get(-1)
	g.state.Pop(1)
	name, ok := ret.(lua.LString)
	if !ok {
		return nil, fmt.Errorf("%w: choose returned %s, expected string", ErrScript, ret.Type().String())
	}
	for _, successor := range successors {
		if successor.Move.String() == string(name) {
			return successor.Move, nil
		}
	}
	return nil, fmt.Errorf("%w: choose returned illegal move %q", ErrScript, string(name))
}

func (g *LuaGhost) position(p game.Position) *lua.LTable {
	table := g.state.NewTable()
	table.RawSetString("x", lua.LNumber(p.X))
	table.RawSetString("y", lua.LNumber(p.Y))
	return table
}
