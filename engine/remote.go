package engine

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"pacman/experiments/metrics"
	"pacman/game"
	"time"

	"github.com/rs/zerolog/log"
)

// RemoteAgent asks an agent server for Pacman's moves over HTTP.
type RemoteAgent struct {
	URL    string
	Client *http.Client
}

func NewRemoteAgent(url string) *RemoteAgent {
	return &RemoteAgent{
		URL:    url,
		Client: &http.Client{Timeout: 30 * time.Second},
	}
}

type remoteRequest struct {
	Layout string          `json:"layout"`
	Ghosts []game.Position `json:"ghosts"`
}

type remoteResponse struct {
	Move string `json:"move"`
}

// FindMove returns nil when the server cannot be reached or answers with
// something other than a direction. The engine replaces it with a legal move.
func (a *RemoteAgent) FindMove(state game.State) (game.Move, metrics.SearchMetric) {
	start := time.Now()
	move, err := a.requestMove(state)
	if err != nil {
		log.Error().Err(err).Str("url", a.URL).Msg("remote agent failed")
		return nil, metrics.SearchMetric{}
	}
	return move, metrics.SearchMetric{Duration: time.Since(start)}
}

// requestMove posts the board and ghost positions to /findmove.
func (a *RemoteAgent) requestMove(state game.State) (game.Move, error) {
	gs, ok := state.(*game.GameState)
	if !ok {
		return nil, fmt.Errorf("unexpected state type %T", state)
	}

	body, err := json.Marshal(remoteRequest{Layout: gs.Board(), Ghosts: gs.GhostPositions()})
	if err != nil {
		return nil, fmt.Errorf("failed to encode state: %w", err)
	}

	resp, err := a.Client.Post(a.URL+"/findmove", "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to post state: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		out, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("agent returned status %d: %s", resp.StatusCode, bytes.TrimSpace(out))
	}

	var response remoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("failed to decode move: %w", err)
	}
	move, err := game.ParseDirection(response.Move)
	if err != nil {
		return nil, err
	}
	return move, nil
}
