// Package score persists match results and aggregates them into a
// scoreboard. Storage is a single sqlite table of outcomes; the engine
// never writes here, the UI records results after a terminal
// classification.
package score

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Result is one finished game.
type Result struct {
	White    string
	Black    string
	Outcome  string // "1-0", "0-1" or "1/2-1/2"
	Method   string // "Checkmate" or "Stalemate"
	PlayedAt time.Time
}

// Row is one scoreboard line, aggregated over both colors.
type Row struct {
	Name   string
	Games  int
	Wins   int
	Draws  int
	Losses int
}

// Store wraps the results database.
type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS results (
	id        INTEGER PRIMARY KEY AUTOINCREMENT,
	white     TEXT NOT NULL,
	black     TEXT NOT NULL,
	outcome   TEXT NOT NULL,
	method    TEXT NOT NULL,
	played_at TIMESTAMP NOT NULL
);`

// Open opens (creating if needed) the results database at path.
// ":memory:" gives an ephemeral store, which the tests use.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open results db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create results table: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record inserts one finished game. A zero PlayedAt is stamped now.
func (s *Store) Record(r Result) error {
	if r.PlayedAt.IsZero() {
		r.PlayedAt = time.Now()
	}
	_, err := s.db.Exec(
		`INSERT INTO results (white, black, outcome, method, played_at) VALUES (?, ?, ?, ?, ?)`,
		r.White, r.Black, r.Outcome, r.Method, r.PlayedAt,
	)
	if err != nil {
		return fmt.Errorf("record result: %w", err)
	}
	return nil
}

// Recent returns the latest n results, newest first.
func (s *Store) Recent(n int) ([]Result, error) {
	rows, err := s.db.Query(
		`SELECT white, black, outcome, method, played_at FROM results ORDER BY id DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("recent results: %w", err)
	}
	defer rows.Close()

	var out []Result
	for rows.Next() {
		var r Result
		if err := rows.Scan(&r.White, &r.Black, &r.Outcome, &r.Method, &r.PlayedAt); err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Scoreboard aggregates wins, draws and losses per player name across
// both colors, best record first.
func (s *Store) Scoreboard() ([]Row, error) {
	rows, err := s.db.Query(`
SELECT name, COUNT(*) AS games, SUM(win) AS wins, SUM(draw) AS draws, SUM(loss) AS losses
FROM (
	SELECT white AS name,
	       CASE WHEN outcome = '1-0' THEN 1 ELSE 0 END AS win,
	       CASE WHEN outcome = '1/2-1/2' THEN 1 ELSE 0 END AS draw,
	       CASE WHEN outcome = '0-1' THEN 1 ELSE 0 END AS loss
	FROM results
	UNION ALL
	SELECT black,
	       CASE WHEN outcome = '0-1' THEN 1 ELSE 0 END,
	       CASE WHEN outcome = '1/2-1/2' THEN 1 ELSE 0 END,
	       CASE WHEN outcome = '1-0' THEN 1 ELSE 0 END
	FROM results
)
GROUP BY name
ORDER BY wins DESC, games DESC, name ASC`)
	if err != nil {
		return nil, fmt.Errorf("scoreboard query: %w", err)
	}
	defer rows.Close()

	var board []Row
	for rows.Next() {
		var r Row
		if err := rows.Scan(&r.Name, &r.Games, &r.Wins, &r.Draws, &r.Losses); err != nil {
			return nil, fmt.Errorf("scan scoreboard row: %w", err)
		}
		board = append(board, r)
	}
	return board, rows.Err()
}
