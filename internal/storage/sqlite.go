// Package storage provides SQLite-based persistence for brick breaker scores.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Store manages the SQLite database connection for score persistence.
type Store struct {
	db  *sqlx.DB
	now func() time.Time
}

// ScoreEntry represents a single finished run.
type ScoreEntry struct {
	ID        int64     `json:"id"`
	Host      string    `json:"host"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
}

// scoreRow is the on-disk shape of a score; created_at is unix seconds.
type scoreRow struct {
	ID        int64  `db:"id"`
	Host      string `db:"host"`
	Score     int    `db:"score"`
	CreatedAt int64  `db:"created_at"`
}

func (r scoreRow) entry() ScoreEntry {
	return ScoreEntry{
		ID:        r.ID,
		Host:      r.Host,
		Score:     r.Score,
		CreatedAt: time.Unix(r.CreatedAt, 0),
	}
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

	db, err := sqlx.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db, now: time.Now}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate applies the embedded schema migrations.
// The migrate instance is not closed: that would close the shared *sql.DB.
func (s *Store) migrate() error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("cannot read migrations: %w", err)
	}

	driver, err := sqlite.WithInstance(s.db.DB, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("cannot create migrate driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("cannot create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration up failed: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveScore records a finished run for the given host ("tui", "window", ...).
// Returns the ID of the inserted record.
func (s *Store) SaveScore(host string, score int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO scores (host, score, created_at) VALUES (?, ?, ?)",
		host, score, s.now().Unix(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopScores retrieves the top N scores. Ties keep insertion order.
func (s *Store) TopScores(limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	var rows []scoreRow
	err := s.db.Select(&rows,
		`SELECT id, host, score, created_at
		 FROM scores
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}

	entries := make([]ScoreEntry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, r.entry())
	}
	return entries, nil
}

// HighScore returns the highest score. Returns 0 if no scores exist.
func (s *Store) HighScore() (int, error) {
	var score sql.NullInt64
	if err := s.db.Get(&score, "SELECT MAX(score) FROM scores"); err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// ClearScores deletes all scores.
func (s *Store) ClearScores() error {
	if _, err := s.db.Exec("DELETE FROM scores"); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// Stats contains aggregated statistics over all runs.
type Stats struct {
	GamesCount int       `json:"games_count"`
	HighScore  int       `json:"high_score"`
	AvgScore   float64   `json:"avg_score"`
	TotalScore int64     `json:"total_score"`
	LastPlayed time.Time `json:"last_played"`
}

type statsRow struct {
	GamesCount int           `db:"games_count"`
	HighScore  int           `db:"high_score"`
	AvgScore   float64       `db:"avg_score"`
	TotalScore int64         `db:"total_score"`
	LastPlayed sql.NullInt64 `db:"last_played"`
}

// GetStats retrieves aggregated statistics. LastPlayed is zero when no runs exist.
func (s *Store) GetStats() (*Stats, error) {
	var row statsRow
	err := s.db.Get(&row,
		`SELECT COUNT(*) AS games_count,
		        COALESCE(MAX(score), 0) AS high_score,
		        COALESCE(AVG(score), 0) AS avg_score,
		        COALESCE(SUM(score), 0) AS total_score,
		        MAX(created_at) AS last_played
		 FROM scores`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	stats := &Stats{
		GamesCount: row.GamesCount,
		HighScore:  row.HighScore,
		AvgScore:   row.AvgScore,
		TotalScore: row.TotalScore,
	}
	if row.LastPlayed.Valid {
		stats.LastPlayed = time.Unix(row.LastPlayed.Int64, 0)
	}
	return stats, nil
}
