// Package history persists derived architecture decisions in a local SQLite
// database so earlier derivations can be reviewed and compared. Only the
// final decision (requirements, facts, blocks, trace) is stored; the solver
// itself never touches the store.
package history

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/harrison/blueprint/internal/filelock"
	"github.com/harrison/blueprint/internal/models"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS derivations (
    id           TEXT PRIMARY KEY,
    created_at   TIMESTAMP NOT NULL,
    requirements TEXT NOT NULL,
    facts        TEXT NOT NULL,
    blocks       TEXT NOT NULL,
    trace        TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_derivations_created_at ON derivations(created_at);
`

// Record is one stored derivation.
type Record struct {
	ID         string
	CreatedAt  time.Time
	Derivation models.Derivation
}

// Store manages the SQLite history database.
type Store struct {
	db     *sql.DB
	dbPath string
}

// NewStore opens (and if necessary creates) the history database at dbPath.
// ":memory:" is accepted for tests.
func NewStore(dbPath string) (*Store, error) {
	if dbPath != ":memory:" {
		dir := filepath.Dir(dbPath)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// busy_timeout first so subsequent statements wait on locks held by
	// concurrent blueprint invocations.
	pragmas := []string{
		"PRAGMA busy_timeout=5000",
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("set %s: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &Store{db: db, dbPath: dbPath}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record stores a derivation and returns its generated ID.
func (s *Store) Record(d models.Derivation) (string, error) {
	requirements, err := json.Marshal(d.Requirements)
	if err != nil {
		return "", fmt.Errorf("marshal requirements: %w", err)
	}
	facts, err := json.Marshal(d.Facts)
	if err != nil {
		return "", fmt.Errorf("marshal facts: %w", err)
	}
	blocks, err := json.Marshal(d.Blocks)
	if err != nil {
		return "", fmt.Errorf("marshal blocks: %w", err)
	}
	trace, err := json.Marshal(d.Trace)
	if err != nil {
		return "", fmt.Errorf("marshal trace: %w", err)
	}

	id := uuid.NewString()
	_, err = s.db.Exec(
		`INSERT INTO derivations (id, created_at, requirements, facts, blocks, trace) VALUES (?, ?, ?, ?, ?, ?)`,
		id, time.Now().UTC(), string(requirements), string(facts), string(blocks), string(trace),
	)
	if err != nil {
		return "", fmt.Errorf("insert derivation: %w", err)
	}
	return id, nil
}

// List returns the most recent derivations, newest first, up to limit
// (0 means no limit).
func (s *Store) List(limit int) ([]Record, error) {
	query := `SELECT id, created_at, requirements, facts, blocks, trace FROM derivations ORDER BY created_at DESC`
	args := []interface{}{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query derivations: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		var requirements, facts, blocks, trace string
		if err := rows.Scan(&rec.ID, &rec.CreatedAt, &requirements, &facts, &blocks, &trace); err != nil {
			return nil, fmt.Errorf("scan derivation: %w", err)
		}
		if err := json.Unmarshal([]byte(requirements), &rec.Derivation.Requirements); err != nil {
			return nil, fmt.Errorf("unmarshal requirements for %s: %w", rec.ID, err)
		}
		if err := json.Unmarshal([]byte(facts), &rec.Derivation.Facts); err != nil {
			return nil, fmt.Errorf("unmarshal facts for %s: %w", rec.ID, err)
		}
		if err := json.Unmarshal([]byte(blocks), &rec.Derivation.Blocks); err != nil {
			return nil, fmt.Errorf("unmarshal blocks for %s: %w", rec.ID, err)
		}
		if err := json.Unmarshal([]byte(trace), &rec.Derivation.Trace); err != nil {
			return nil, fmt.Errorf("unmarshal trace for %s: %w", rec.ID, err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Clear deletes all stored derivations. The operation takes a file lock so
// two concurrent invocations cannot interleave clear and insert on a
// half-initialized database.
func (s *Store) Clear() error {
	deleteAll := func() error {
		if _, err := s.db.Exec(`DELETE FROM derivations`); err != nil {
			return fmt.Errorf("clear derivations: %w", err)
		}
		return nil
	}
	if s.dbPath == ":memory:" {
		return deleteAll()
	}
	return filelock.WithLock(s.dbPath, deleteAll)
}
