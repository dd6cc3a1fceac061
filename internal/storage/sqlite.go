// Package storage provides SQLite-based persistence for episode outcomes.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for episode persistence.
type Store struct {
	db *sql.DB
}

// EpisodeRecord is the persisted outcome of one episode.
type EpisodeRecord struct {
	ID        int64
	Seed      int32
	Steps     int
	Reward    float64
	Cause     string // "angle", "position", or "cutoff"
	Policy    string // "random", "left", "right", "keyboard"
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
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
		CREATE TABLE IF NOT EXISTS episodes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			seed INTEGER NOT NULL,
			steps INTEGER NOT NULL,
			reward REAL NOT NULL,
			cause TEXT NOT NULL,
			policy TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_episodes_seed ON episodes(seed);
		CREATE INDEX IF NOT EXISTS idx_episodes_steps ON episodes(steps DESC);
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

// SaveEpisode records an episode outcome. Returns the inserted row ID.
func (s *Store) SaveEpisode(rec EpisodeRecord) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO episodes (seed, steps, reward, cause, policy) VALUES (?, ?, ?, ?, ?)",
		rec.Seed, rec.Steps, rec.Reward, rec.Cause, rec.Policy,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save episode: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// LongestEpisodes retrieves the top N episodes by step count, descending.
func (s *Store) LongestEpisodes(limit int) ([]EpisodeRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.query(
		`SELECT id, seed, steps, reward, cause, policy, created_at
		 FROM episodes
		 ORDER BY steps DESC
		 LIMIT ?`, limit)
}

// RecentEpisodes retrieves the N most recently recorded episodes.
func (s *Store) RecentEpisodes(limit int) ([]EpisodeRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.query(
		`SELECT id, seed, steps, reward, cause, policy, created_at
		 FROM episodes
		 ORDER BY id DESC
		 LIMIT ?`, limit)
}

// EpisodesBySeed retrieves all episodes recorded for one seed, newest first.
func (s *Store) EpisodesBySeed(seed int32) ([]EpisodeRecord, error) {
	return s.query(
		`SELECT id, seed, steps, reward, cause, policy, created_at
		 FROM episodes
		 WHERE seed = ?
		 ORDER BY id DESC`, seed)
}

// LongestRun returns the highest recorded step count, or 0 with no rows.
func (s *Store) LongestRun() (int, error) {
	var steps sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(steps) FROM episodes").Scan(&steps)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query longest run: %w", err)
	}
	if !steps.Valid {
		return 0, nil
	}
	return int(steps.Int64), nil
}

func (s *Store) query(q string, args ...any) ([]EpisodeRecord, error) {
	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query episodes: %w", err)
	}
	defer rows.Close()

	var entries []EpisodeRecord
	for rows.Next() {
		var e EpisodeRecord
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Seed, &e.Steps, &e.Reward, &e.Cause, &e.Policy, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			e.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				e.CreatedAt = parsed
			}
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}
