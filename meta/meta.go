// meta/meta.go
package meta

// DEPTH defines the default search depth bound.
const DEPTH = 5

// EVALUATION defines the default evaluation function name.
const EVALUATION = "features"

// LAYOUT defines the default layout.
const LAYOUT = "medium"

// MAX_MOVES defines the maximum number of agent moves in one game.
const MAX_MOVES = 1000

// GAMES defines the number of games per experiment configuration.
const GAMES = 10

// GUARDED_CELLS bounds the open cells of layouts the cycle guarded search is
// expected to finish on.
const GUARDED_CELLS = 20
