package agent

import (
	"encoding/json"
	"net/http"

	"pacman/game"
	"pacman/searcher"

	"github.com/rs/zerolog/log"
)

type findMoveRequest struct {
	Layout string          `json:"layout"`
	Ghosts []game.Position `json:"ghosts,omitempty"` // Replaces the ghosts drawn in the layout
}

type findMoveResponse struct {
	Move string `json:"move"`
}

// Handler serves POST /findmove. The request carries the current board in
// layout text, optionally with the ghost positions listed apart, and the
// response names Pacman's move.
func Handler(s searcher.Searcher) http.Handler {
	pacman := NewPacmanAgent(s)

	// Create a local mux rather than using the global DefaultServeMux
	mux := http.NewServeMux()
	mux.HandleFunc("POST /findmove", func(w http.ResponseWriter, r *http.Request) {
		handleFindMove(pacman, w, r)
	})
	return mux
}

// Serve starts an agent HTTP server on addr.
func Serve(addr string, s searcher.Searcher) error {
	log.Info().Str("addr", addr).Msg("starting agent server")
	return http.ListenAndServe(addr, Handler(s))
}

func handleFindMove(pacman Agent, w http.ResponseWriter, r *http.Request) {
	var payload findMoveRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "bad request: "+err.Error(), http.StatusBadRequest)
		return
	}
	layout, err := game.ParseLayout(payload.Layout)
	if err != nil {
		http.Error(w, "bad request: "+err.Error(), http.StatusBadRequest)
		return
	}
	state := game.NewGameState(layout, game.NewStandardRules())
	if payload.Ghosts != nil {
		for _, ghost := range payload.Ghosts {
			if layout.IsWall(ghost) {
				http.Error(w, "bad request: ghost inside a wall", http.StatusBadRequest)
				return
			}
		}
		state.Ghosts = payload.Ghosts
	}
	if state.FoodLeft() == 0 {
		http.Error(w, "no food left on the board", http.StatusUnprocessableEntity)
		return
	}
	for _, ghost := range state.Ghosts {
		if ghost == state.Pacman {
			http.Error(w, "pacman shares a square with a ghost", http.StatusUnprocessableEntity)
			return
		}
	}

	move, metric := pacman.FindMove(state)
	log.Debug().
		Str("move", move.String()).
		Float64("value", metric.Value).
		Dur("duration", metric.Duration).
		Msg("served move")

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(findMoveResponse{Move: move.String()}); err != nil {
		http.Error(w, "failed to encode move: "+err.Error(), http.StatusInternalServerError)
	}
}
