package metrics

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const gamesTable = "games"

// Store keeps game records in a SQLite database so results accumulate across
// experiment runs.
type Store struct {
	db *sql.DB
}

func NewStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}

	store := &Store{db: db}
	if err := store.createTable(); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

func (s *Store) createTable() error {
	const createTableSQL = `
	CREATE TABLE IF NOT EXISTS ` + gamesTable + ` (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		experiment TEXT NOT NULL,
		depth INTEGER NOT NULL,
		evaluation TEXT NOT NULL,
		guarded INTEGER NOT NULL,
		ghost TEXT NOT NULL,
		layout TEXT NOT NULL,
		win INTEGER NOT NULL,
		score REAL NOT NULL,
		total_moves INTEGER NOT NULL,
		duration_ms INTEGER NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);`

	if _, err := s.db.Exec(createTableSQL); err != nil {
		return fmt.Errorf("failed to execute CREATE TABLE: %w", err)
	}
	return nil
}

// SaveGame stores one finished game played by the given agent configuration.
func (s *Store) SaveGame(experiment string, config AgentConfig, game GameMetric) error {
	const insertSQL = `
	INSERT INTO ` + gamesTable + ` (experiment, depth, evaluation, guarded, ghost, layout, win, score, total_moves, duration_ms)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`

	_, err := s.db.Exec(insertSQL,
		experiment,
		config.Depth,
		config.Evaluation,
		config.Guarded,
		config.Ghost,
		game.Layout,
		game.Win,
		game.Score,
		game.TotalMoves,
		game.Duration.Milliseconds(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert game for experiment %s: %w", experiment, err)
	}
	return nil
}

// Summary aggregates the stored games of one configuration.
type Summary struct {
	Depth      int
	Evaluation string
	Guarded    bool
	Games      int
	Wins       int
	MeanScore  float64
	MeanMoves  float64
	MeanLength time.Duration
}

// Summaries aggregates an experiment's games per search configuration.
func (s *Store) Summaries(experiment string) ([]Summary, error) {
	const selectSQL = `
	SELECT depth, evaluation, guarded, COUNT(*), SUM(win), AVG(score), AVG(total_moves), AVG(duration_ms)
	FROM ` + gamesTable + `
	WHERE experiment = ?
	GROUP BY depth, evaluation, guarded
	ORDER BY depth, evaluation, guarded;`

	rows, err := s.db.Query(selectSQL, experiment)
	if err != nil {
		return nil, fmt.Errorf("failed to query summaries: %w", err)
	}
	defer rows.Close()

	var summaries []Summary
	for rows.Next() {
		var summary Summary
		var meanMillis float64
		err := rows.Scan(&summary.Depth, &summary.Evaluation, &summary.Guarded, &summary.Games,
			&summary.Wins, &summary.MeanScore, &summary.MeanMoves, &meanMillis)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		summary.MeanLength = time.Duration(meanMillis * float64(time.Millisecond))
		summaries = append(summaries, summary)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating rows: %w", err)
	}
	return summaries, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
