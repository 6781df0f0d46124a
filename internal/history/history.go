// Package history records copied gitmojis in a local SQLite database.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS copies (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	code TEXT NOT NULL,
	action TEXT NOT NULL,
	copied_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_copies_code ON copies(code);
CREATE INDEX IF NOT EXISTS idx_copies_copied_at ON copies(copied_at);
`

// Entry is one recorded copy.
type Entry struct {
	ID       int64     `json:"id"`
	Code     string    `json:"code"`
	Action   string    `json:"action"`
	CopiedAt time.Time `json:"copied_at"`
}

// Usage is how often a code was copied.
type Usage struct {
	Code     string    `json:"code"`
	Count    int       `json:"count"`
	LastUsed time.Time `json:"last_used"`
}

// Store is the copy history database.
type Store struct {
	db  *sql.DB
	sq  sq.StatementBuilderType
	now func() time.Time
}

// Open opens or creates the history database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}

	dsn := path +
		"?_pragma=journal_mode(WAL)" +
		"&_pragma=synchronous(NORMAL)" +
		"&_pragma=busy_timeout(2000)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to history database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create history schema: %w", err)
	}

	return &Store{db: db, sq: sq.StatementBuilder, now: time.Now}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record stores a copy of code made with the named action.
func (s *Store) Record(ctx context.Context, code, action string) error {
	q := s.sq.
		Insert("copies").
		Columns("code", "action", "copied_at").
		Values(code, action, s.now().UTC().Format(time.RFC3339Nano))

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, sqlStr, args...); err != nil {
		return fmt.Errorf("failed to record copy of %s: %w", code, err)
	}
	return nil
}

// Recent returns the latest copies, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	q := s.sq.
		Select("id", "code", "action", "copied_at").
		From("copies").
		OrderBy("id DESC")
	if limit > 0 {
		q = q.Limit(uint64(limit))
	}

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		var copied string
		if err := rows.Scan(&e.ID, &e.Code, &e.Action, &copied); err != nil {
			return nil, err
		}
		if e.CopiedAt, err = time.Parse(time.RFC3339Nano, copied); err != nil {
			return nil, fmt.Errorf("history entry %d has invalid time %q: %w", e.ID, copied, err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Usage returns copy counts per code, most used first.
func (s *Store) Usage(ctx context.Context, limit int) ([]Usage, error) {
	q := s.sq.
		Select("code", "COUNT(*) AS n", "MAX(copied_at) AS last").
		From("copies").
		GroupBy("code").
		OrderBy("n DESC", "last DESC")
	if limit > 0 {
		q = q.Limit(uint64(limit))
	}

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query usage: %w", err)
	}
	defer rows.Close()

	var out []Usage
	for rows.Next() {
		var u Usage
		var last string
		if err := rows.Scan(&u.Code, &u.Count, &last); err != nil {
			return nil, err
		}
		if u.LastUsed, err = time.Parse(time.RFC3339Nano, last); err != nil {
			return nil, fmt.Errorf("history for %s has invalid time %q: %w", u.Code, last, err)
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// Clear deletes all recorded copies.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	sqlStr, args, err := s.sq.Delete("copies").ToSql()
	if err != nil {
		return 0, err
	}
	res, err := s.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to clear history: %w", err)
	}
	return res.RowsAffected()
}
