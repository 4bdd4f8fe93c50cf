package searcher

import (
	"pacman/game"
)

type mockMove struct {
	id string
}

func (m mockMove) String() string {
	return m.id
}

// mockState is a node of an explicit game tree (or graph). Every agent sees
// the same children.
type mockState struct {
	id        string
	score     float64
	win       bool
	lose      bool
	agents    int
	signature game.Signature
	children  []*mockState
	calls     int   // Successors calls
	agentsAsk []int // Agents passed to Successors
}

func (m *mockState) IsWin() bool {
	return m.win
}

func (m *mockState) IsLose() bool {
	return m.lose
}

func (m *mockState) Score() float64 {
	return m.score
}

func (m *mockState) NumAgents() int {
	return m.agents
}

func (m *mockState) Signature() game.Signature {
	return m.signature
}

func (m *mockState) Successors(agent int) []game.Successor {
	m.calls++
	m.agentsAsk = append(m.agentsAsk, agent)
	successors := make([]game.Successor, len(m.children))
	for i, child := range m.children {
		successors[i] = game.Successor{State: child, Move: mockMove{id: child.id}}
	}
	return successors
}

// tree builds a node with the given children, all sharing the agent count.
func tree(id string, agents int, children ...*mockState) *mockState {
	for _, child := range children {
		child.agents = agents
	}
	return &mockState{id: id, agents: agents, children: children}
}

func leaf(id string, score float64) *mockState {
	return &mockState{id: id, score: score}
}

// evaluations records the ids of evaluated states.
type evaluations struct {
	ids []string
}

func (e *evaluations) evaluate(s game.State) float64 {
	m := s.(*mockState)
	e.ids = append(e.ids, m.id)
	return m.score
}

func scoreOf(s game.State) float64 {
	return s.Score()
}
