// Package storage provides SQLite-based persistence for the seed log.
// The seed string is the only state worth keeping between sessions: it
// regenerates the whole world. Uses the pure-Go modernc.org/sqlite driver
// to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for the seed log.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// SeedEntry is one remembered seed.
type SeedEntry struct {
	Seed      string
	Islands   int // Islands placed the last time the seed was loaded
	Visits    int
	FirstSeen time.Time
	LastUsed  time.Time
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

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// Single connection: concurrent SSH sessions share one writer.
	db.SetMaxOpenConns(1)

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db, now: time.Now}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS seeds (
			seed TEXT PRIMARY KEY,
			islands INTEGER NOT NULL DEFAULT 0,
			visits INTEGER NOT NULL DEFAULT 1,
			first_seen INTEGER NOT NULL,
			last_used INTEGER NOT NULL,
			use_seq INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_seeds_use_seq ON seeds(use_seq DESC);
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

// RecordSeed remembers a loaded seed, bumping it to the most recent entry.
func (s *Store) RecordSeed(seed string, islands int) error {
	seed = strings.TrimSpace(seed)
	if seed == "" {
		return errors.New("storage: cannot record empty seed")
	}

	now := s.now().UnixNano()
	_, err := s.db.Exec(
		`INSERT INTO seeds (seed, islands, visits, first_seen, last_used, use_seq)
		 VALUES (?, ?, 1, ?, ?, (SELECT COALESCE(MAX(use_seq), 0) + 1 FROM seeds))
		 ON CONFLICT(seed) DO UPDATE SET
		   islands = excluded.islands,
		   visits = visits + 1,
		   last_used = excluded.last_used,
		   use_seq = excluded.use_seq`,
		seed, islands, now, now,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot record seed: %w", err)
	}
	return nil
}

// RecentSeeds returns the most recently used seeds, newest first.
func (s *Store) RecentSeeds(limit int) ([]SeedEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT seed, islands, visits, first_seen, last_used
		 FROM seeds
		 ORDER BY use_seq DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query seeds: %w", err)
	}
	defer rows.Close()

	var entries []SeedEntry
	for rows.Next() {
		var e SeedEntry
		var firstSeen, lastUsed int64
		if err := rows.Scan(&e.Seed, &e.Islands, &e.Visits, &firstSeen, &lastUsed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.FirstSeen = time.Unix(0, firstSeen)
		e.LastUsed = time.Unix(0, lastUsed)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// LastSeed returns the most recently used seed.
// The boolean is false when the log is empty.
func (s *Store) LastSeed() (string, bool, error) {
	var seed string
	err := s.db.QueryRow("SELECT seed FROM seeds ORDER BY use_seq DESC LIMIT 1").Scan(&seed)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("storage: cannot query last seed: %w", err)
	}
	return seed, true, nil
}

// ForgetSeed deletes a seed from the log. It reports whether the seed existed.
func (s *Store) ForgetSeed(seed string) (bool, error) {
	res, err := s.db.Exec("DELETE FROM seeds WHERE seed = ?", strings.TrimSpace(seed))
	if err != nil {
		return false, fmt.Errorf("storage: cannot forget seed: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("storage: cannot count deleted rows: %w", err)
	}
	return n > 0, nil
}

// ClearSeeds deletes the whole log.
func (s *Store) ClearSeeds() error {
	if _, err := s.db.Exec("DELETE FROM seeds"); err != nil {
		return fmt.Errorf("storage: cannot clear seeds: %w", err)
	}
	return nil
}
