package storage

import (
	"database/sql"
	"os"
	"os/user"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

type Store struct {
	db *sql.DB
}

// Solve is one recorded solver run.
type Solve struct {
	ID        int64
	Timestamp time.Time
	Jumble    string
	Matches   int
	BestWord  string
	BestScore int
}

func getDataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback: get home dir from user.Current()
		if u, userErr := user.Current(); userErr == nil {
			home = u.HomeDir
		} else {
			return "", err
		}
	}
	dataDir := filepath.Join(home, ".local", "share", "jumble")
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}
	return dataDir, nil
}

func New() (*Store, error) {
	dataDir, err := getDataDir()
	if err != nil {
		return nil, err
	}

	dbPath := filepath.Join(dataDir, "jumble.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	if err := initSchema(db); err != nil {
		return nil, err
	}

	return &Store{db: db}, nil
}

func initSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS solves (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp DATETIME DEFAULT CURRENT_TIMESTAMP,
		jumble TEXT NOT NULL,
		matches INTEGER DEFAULT 0,
		best_word TEXT DEFAULT '',
		best_score INTEGER DEFAULT 0
	);

	CREATE INDEX IF NOT EXISTS idx_solves_timestamp ON solves(timestamp);
	CREATE INDEX IF NOT EXISTS idx_solves_best_score ON solves(best_score);
	`
	_, err := db.Exec(schema)
	return err
}

// RecordSolve appends one solve to the history. bestWord and bestScore
// are empty/zero when the solve found no matches.
func (s *Store) RecordSolve(jumble string, matches int, bestWord string, bestScore int) error {
	_, err := s.db.Exec(
		"INSERT INTO solves (jumble, matches, best_word, best_score) VALUES (?, ?, ?, ?)",
		jumble, matches, bestWord, bestScore,
	)
	return err
}

// RecentSolves returns the latest n solves, newest first.
func (s *Store) RecentSolves(n int) ([]Solve, error) {
	rows, err := s.db.Query(`
		SELECT id, timestamp, jumble, matches, best_word, best_score
		FROM solves ORDER BY id DESC LIMIT ?`, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSolves(rows)
}

// TopSolves returns the n solves with the highest best scores.
func (s *Store) TopSolves(n int) ([]Solve, error) {
	rows, err := s.db.Query(`
		SELECT id, timestamp, jumble, matches, best_word, best_score
		FROM solves ORDER BY best_score DESC, id DESC LIMIT ?`, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSolves(rows)
}

// TotalSolves returns how many solves have been recorded.
func (s *Store) TotalSolves() (int64, error) {
	var count int64
	err := s.db.QueryRow("SELECT COUNT(*) FROM solves").Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func scanSolves(rows *sql.Rows) ([]Solve, error) {
	var solves []Solve
	for rows.Next() {
		var sv Solve
		if err := rows.Scan(&sv.ID, &sv.Timestamp, &sv.Jumble, &sv.Matches, &sv.BestWord, &sv.BestScore); err != nil {
			return nil, err
		}
		solves = append(solves, sv)
	}
	return solves, rows.Err()
}

func (s *Store) Close() error {
	return s.db.Close()
}
