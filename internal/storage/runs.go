package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Run records one finished autoplayed game.
type Run struct {
	ID        int64
	RunID     string // Generated when empty
	GameID    string
	Seed      int64
	Width     int
	Height    int
	ItemTypes int
	Turns     int
	Cascades  int
	Score     int
	GameOver  bool
	CreatedAt time.Time
}

// SaveRun records a run and returns its run ID.
func (s *Store) SaveRun(run Run) (string, error) {
	if run.RunID == "" {
		run.RunID = uuid.NewString()
	} else if _, err := uuid.Parse(run.RunID); err != nil {
		return "", fmt.Errorf("storage: invalid run id %q: %w", run.RunID, err)
	}

	_, err := s.db.Exec(
		`INSERT INTO runs
		 (run_id, game_id, seed, width, height, item_types, turns, cascades, score, game_over)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.RunID,
		run.GameID,
		run.Seed,
		run.Width,
		run.Height,
		run.ItemTypes,
		run.Turns,
		run.Cascades,
		run.Score,
		run.GameOver,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}

	return run.RunID, nil
}

// RunByID retrieves a run by its run ID. Returns nil if it does not exist.
func (s *Store) RunByID(runID string) (*Run, error) {
	row := s.db.QueryRow(
		`SELECT id, run_id, game_id, seed, width, height, item_types,
		        turns, cascades, score, game_over, created_at
		 FROM runs
		 WHERE run_id = ?`,
		runID,
	)

	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	return run, nil
}

// RecentRuns retrieves the most recent runs for the given game.
func (s *Store) RecentRuns(gameID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, run_id, game_id, seed, width, height, item_types,
		        turns, cascades, score, game_over, created_at
		 FROM runs
		 WHERE game_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan run: %w", err)
		}
		runs = append(runs, *run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*Run, error) {
	var run Run
	var createdAt any
	err := row.Scan(
		&run.ID,
		&run.RunID,
		&run.GameID,
		&run.Seed,
		&run.Width,
		&run.Height,
		&run.ItemTypes,
		&run.Turns,
		&run.Cascades,
		&run.Score,
		&run.GameOver,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}
	run.CreatedAt = parseTime(createdAt)
	return &run, nil
}
