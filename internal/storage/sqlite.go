// Package storage provides SQLite-based persistence for traced shots.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/brickshot/internal/config"
	"github.com/vovakirdan/brickshot/internal/session"
)

// Store manages the SQLite database connection for shot history.
type Store struct {
	db *sql.DB
}

// ShotEntry represents a single recorded shot.
type ShotEntry struct {
	ID        int64
	LevelID   string
	LaunchX   float64
	LaunchY   float64
	AimX      float64
	AimY      float64
	Wall      string // Empty when the shot had no exit
	ExitX     float64
	ExitY     float64
	TrailLen  int
	Outcome   string // "exit", "degenerate", "no_intersection"
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath, err := config.ExpandHome(dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS shots (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			level_id TEXT NOT NULL,
			launch_x REAL NOT NULL,
			launch_y REAL NOT NULL,
			aim_x REAL NOT NULL,
			aim_y REAL NOT NULL,
			wall TEXT,
			exit_x REAL NOT NULL DEFAULT 0,
			exit_y REAL NOT NULL DEFAULT 0,
			trail_len INTEGER NOT NULL DEFAULT 0,
			outcome TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_shots_level_id ON shots(level_id);
		CREATE INDEX IF NOT EXISTS idx_shots_created_at ON shots(created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveShot records a shot. Returns the ID of the inserted record.
func (s *Store) SaveShot(e ShotEntry) (int64, error) {
	var wall sql.NullString
	if e.Wall != "" {
		wall = sql.NullString{String: e.Wall, Valid: true}
	}

	result, err := s.db.Exec(
		`INSERT INTO shots
		 (level_id, launch_x, launch_y, aim_x, aim_y, wall, exit_x, exit_y, trail_len, outcome)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.LevelID, e.LaunchX, e.LaunchY, e.AimX, e.AimY, wall, e.ExitX, e.ExitY, e.TrailLen, e.Outcome,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save shot: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecordShot implements session.ShotRecorder.
// This adapter lets the session persist shots without a storage dependency.
func (s *Store) RecordShot(rec session.ShotRecord) error {
	e := ShotEntry{
		LevelID:  rec.LevelID,
		LaunchX:  rec.Launch.X,
		LaunchY:  rec.Launch.Y,
		AimX:     rec.Aim.X,
		AimY:     rec.Aim.Y,
		TrailLen: rec.TrailLen,
		Outcome:  rec.Outcome,
	}
	if rec.Exit != nil {
		e.Wall = rec.Exit.Wall.String()
		e.ExitX = rec.Exit.Point.X
		e.ExitY = rec.Exit.Point.Y
	}
	_, err := s.SaveShot(e)
	return err
}

// Ensure Store implements ShotRecorder
var _ session.ShotRecorder = (*Store)(nil)

// RecentShots retrieves the most recent shots, optionally filtered by level.
// An empty levelID returns shots for all levels.
func (s *Store) RecentShots(levelID string, limit int) ([]ShotEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT id, level_id, launch_x, launch_y, aim_x, aim_y, wall,
	                 exit_x, exit_y, trail_len, outcome, created_at
	          FROM shots`
	args := []any{}
	if levelID != "" {
		query += ` WHERE level_id = ?`
		args = append(args, levelID)
	}
	query += ` ORDER BY id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query shots: %w", err)
	}
	defer rows.Close()

	var entries []ShotEntry
	for rows.Next() {
		var e ShotEntry
		var wall sql.NullString
		var createdAt any
		if err := rows.Scan(
			&e.ID, &e.LevelID, &e.LaunchX, &e.LaunchY, &e.AimX, &e.AimY, &wall,
			&e.ExitX, &e.ExitY, &e.TrailLen, &e.Outcome, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		if wall.Valid {
			e.Wall = wall.String
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// WallCounts returns how many shots on a level exited through each wall.
// Shots without an exit are counted under the empty key.
func (s *Store) WallCounts(levelID string) (map[string]int, error) {
	rows, err := s.db.Query(
		`SELECT COALESCE(wall, ''), COUNT(*)
		 FROM shots
		 WHERE level_id = ?
		 GROUP BY wall`,
		levelID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query wall counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var wall string
		var n int
		if err := rows.Scan(&wall, &n); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		counts[wall] = n
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return counts, nil
}

// ClearShots deletes all shots for the given level, or every shot when
// levelID is empty.
func (s *Store) ClearShots(levelID string) error {
	var err error
	if levelID == "" {
		_, err = s.db.Exec("DELETE FROM shots")
	} else {
		_, err = s.db.Exec("DELETE FROM shots WHERE level_id = ?", levelID)
	}
	if err != nil {
		return fmt.Errorf("storage: cannot clear shots: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
