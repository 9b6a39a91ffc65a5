// Package settings provides SQLite-based persistence for high scores and
// small per-game key/value settings blobs. Uses the pure-Go
// modernc.org/sqlite driver to avoid CGO dependencies.
//
// Persistence is best-effort by design: the device this mirrors has a
// filesystem that is frequently read-only, so every game-facing helper
// degrades to defaults instead of surfacing an error into gameplay.
package settings

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// ScoreEntry is a single high score record.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Score     int
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path, creating
// parent directories and running migrations as needed.
func Open(dbPath string) (*Store, error) {
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("settings: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("settings: cannot create directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("settings: cannot open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("settings: cannot connect to database: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("settings: migration failed: %w", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_game_id ON scores(game_id);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(game_id, score DESC);

		CREATE TABLE IF NOT EXISTS settings (
			game_id TEXT NOT NULL,
			key TEXT NOT NULL,
			value TEXT NOT NULL,
			PRIMARY KEY (game_id, key)
		);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection. Safe on a nil store.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// SaveScore records a new score for the given game.
func (s *Store) SaveScore(gameID string, score int) (int64, error) {
	if s == nil {
		return 0, nil
	}
	result, err := s.db.Exec(
		"INSERT INTO scores (game_id, score) VALUES (?, ?)",
		gameID, score,
	)
	if err != nil {
		return 0, fmt.Errorf("settings: cannot save score: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("settings: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// TopScores retrieves the top N scores for the given game, descending.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if s == nil {
		return nil, nil
	}
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, score, created_at
		 FROM scores
		 WHERE game_id = ?
		 ORDER BY score DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("settings: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("settings: cannot scan row: %w", err)
		}
		e.CreatedAt = parseCreatedAt(createdAt)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("settings: row iteration error: %w", err)
	}
	return entries, nil
}

// HighScore returns the highest score for the given game, 0 if none.
func (s *Store) HighScore(gameID string) (int, error) {
	if s == nil {
		return 0, nil
	}
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE game_id = ?",
		gameID,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("settings: cannot query high score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// ClearScores deletes all scores for the given game.
func (s *Store) ClearScores(gameID string) error {
	if s == nil {
		return nil
	}
	if _, err := s.db.Exec("DELETE FROM scores WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("settings: cannot clear scores: %w", err)
	}
	return nil
}

// Save stores one settings value for a game, overwriting any previous one.
func (s *Store) Save(gameID, key, value string) error {
	if s == nil {
		return nil
	}
	_, err := s.db.Exec(
		`INSERT INTO settings (game_id, key, value) VALUES (?, ?, ?)
		 ON CONFLICT(game_id, key) DO UPDATE SET value = excluded.value`,
		gameID, key, value,
	)
	if err != nil {
		return fmt.Errorf("settings: cannot save %s/%s: %w", gameID, key, err)
	}
	return nil
}

// Load retrieves one settings value, reporting whether it existed.
func (s *Store) Load(gameID, key string) (string, bool) {
	if s == nil {
		return "", false
	}
	var value string
	err := s.db.QueryRow(
		"SELECT value FROM settings WHERE game_id = ? AND key = ?",
		gameID, key,
	).Scan(&value)
	if err != nil {
		return "", false
	}
	return value, true
}

// LoadInt is Load for integer settings, falling back to def on any
// missing or malformed value. Games use this for tunables they persist
// between runs (starting speed, last difficulty) without caring whether
// the store works.
func (s *Store) LoadInt(gameID, key string, def int) int {
	v, ok := s.Load(gameID, key)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// SaveInt is Save for integer settings, discarding errors.
func (s *Store) SaveInt(gameID, key string, value int) {
	_ = s.Save(gameID, key, strconv.Itoa(value))
}

// parseCreatedAt handles both time.Time and string datetimes from the
// driver.
func parseCreatedAt(v any) time.Time {
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
