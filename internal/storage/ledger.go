// Package storage keeps the session run ledger: every finished run of the
// current process, held in an in-memory SQLite database.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// Nothing is written to disk; the ledger ends with the process.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// memoryDSN opens a private in-memory database. It only survives while a
// connection is open, so the pool is pinned to a single connection.
const memoryDSN = "file::memory:"

// Ledger records finished runs for the lifetime of the process.
type Ledger struct {
	db *sql.DB
}

// Run represents a single finished run.
type Run struct {
	ID         int64
	GameID     string
	Player     string
	Score      int
	Ticks      int
	Autopilots int // Autopilots still alive when the run ended
	EndedAt    time.Time
}

// Open creates an empty in-memory ledger.
func Open() (*Ledger, error) {
	db, err := sql.Open("sqlite", memoryDSN)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open ledger: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to ledger: %w", err)
	}

	l := &Ledger{db: db}
	if err := l.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return l, nil
}

// migrate creates the schema.
func (l *Ledger) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			player TEXT NOT NULL,
			score INTEGER NOT NULL,
			ticks INTEGER NOT NULL,
			autopilots INTEGER NOT NULL,
			ended_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(game_id, score DESC);
	`

	_, err := l.db.Exec(schema)
	return err
}

// Close releases the ledger. All recorded runs are discarded.
func (l *Ledger) Close() error {
	if l.db != nil {
		return l.db.Close()
	}
	return nil
}

// Record stores a finished run and returns its ID.
// A zero EndedAt is stamped with the current time.
func (l *Ledger) Record(r Run) (int64, error) {
	if r.EndedAt.IsZero() {
		r.EndedAt = time.Now()
	}

	result, err := l.db.Exec(
		`INSERT INTO runs (game_id, player, score, ticks, autopilots, ended_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.GameID, r.Player, r.Score, r.Ticks, r.Autopilots, r.EndedAt.UnixNano(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopRuns returns the best runs for the given game, highest score first.
// Ties are broken by longer survival, then by the earlier run.
func (l *Ledger) TopRuns(gameID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := l.db.Query(
		`SELECT id, game_id, player, score, ticks, autopilots, ended_at
		 FROM runs
		 WHERE game_id = ?
		 ORDER BY score DESC, ticks DESC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var endedAt int64
		if err := rows.Scan(&r.ID, &r.GameID, &r.Player, &r.Score, &r.Ticks, &r.Autopilots, &endedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.EndedAt = time.Unix(0, endedAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// Best returns the highest score recorded for the given game.
// Returns 0 if no runs exist.
func (l *Ledger) Best(gameID string) (int, error) {
	var score sql.NullInt64
	err := l.db.QueryRow(
		"SELECT MAX(score) FROM runs WHERE game_id = ?",
		gameID,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// RunCount returns how many runs were recorded for the given game.
func (l *Ledger) RunCount(gameID string) (int, error) {
	var n int
	err := l.db.QueryRow("SELECT COUNT(*) FROM runs WHERE game_id = ?", gameID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count runs: %w", err)
	}
	return n, nil
}
