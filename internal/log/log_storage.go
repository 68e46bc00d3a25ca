// log_storage.go implements SQLite-based persistent audit logging.
//
// Separated from log.go to isolate database concerns. The main log.go provides
// the fluent API for building log entries, while this file handles persistence
// and the read side used by "mdfiles log". The project field is a hash of the
// root directory so entries from different roots can be told apart without
// storing their locations.
//
// Design: Errors during logging are reported to stderr and otherwise ignored.
// An upload should succeed even if we can't record it in the audit log.

package log

import (
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"path/filepath"
	"time"

	"golang.org/x/crypto/blake2b"
	_ "modernc.org/sqlite"
)

// ErrNotOpen is returned when reading before Open.
var ErrNotOpen = errors.New("audit log not open")

// Logger writes audit log entries to a SQLite database.
type Logger struct {
	db      *sql.DB
	project string
}

func (l *Logger) log(e Entry) {
	var detail *string
	if len(e.Detail) > 0 {
		if b, err := json.Marshal(e.Detail); err == nil {
			s := string(b)
			detail = &s
		}
	}

	success := 0
	if e.Success {
		success = 1
	}

	_, err := l.db.Exec(`
		INSERT INTO log (start, end, project, source, author, action, path,
		                 resolved_path, success, error, detail)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.Start.Unix(), e.End.Unix(), l.project, e.Source, nilIfEmpty(e.Author), e.Action,
		nilIfEmpty(e.Path), nilIfEmpty(e.ResolvedPath),
		success, nilIfEmpty(e.Error), detail,
	)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "mdfiles: audit log write failed: %v\n", err)
	}
}

// Record is a stored log entry.
type Record struct {
	ID       int64          `json:"id"`
	Time     time.Time      `json:"time"`
	Source   string         `json:"source"`
	Author   string         `json:"author,omitempty"`
	Action   string         `json:"action"`
	Path     string         `json:"path,omitempty"`
	Resolved string         `json:"resolved_path,omitempty"`
	Success  bool           `json:"success"`
	Error    string         `json:"error,omitempty"`
	Detail   map[string]any `json:"detail,omitempty"`
}

// Filter narrows the entries Recent returns.
type Filter struct {
	// Limit caps the number of entries; zero means 20.
	Limit int
	// All includes entries for every root, not just the current project.
	All bool
	// Since drops entries that started before it, when set.
	Since time.Time
}

// Recent returns up to f.Limit entries, newest first.
func Recent(f Filter) ([]Record, error) {
	l := current()
	if l == nil {
		return nil, ErrNotOpen
	}
	limit := f.Limit
	if limit <= 0 {
		limit = 20
	}

	var where []string
	var args []any
	if !f.All {
		where = append(where, "project = ?")
		args = append(args, l.project)
	}
	if !f.Since.IsZero() {
		where = append(where, "start >= ?")
		args = append(args, f.Since.Unix())
	}

	q := `SELECT id, start, source, author, action, path, resolved_path, success, error, detail
	      FROM log`
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += ` ORDER BY id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := l.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("querying audit log: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var r Record
		var start int64
		var success int
		var author, path, resolved, errMsg, detail sql.NullString
		if err := rows.Scan(&r.ID, &start, &r.Source, &author, &r.Action, &path, &resolved, &success, &errMsg, &detail); err != nil {
			return nil, fmt.Errorf("reading audit log: %w", err)
		}
		r.Time = time.Unix(start, 0)
		r.Author = author.String
		r.Path = path.String
		r.Resolved = resolved.String
		r.Success = success == 1
		r.Error = errMsg.String
		if detail.Valid {
			_ = json.Unmarshal([]byte(detail.String), &r.Detail)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// dbPathFunc is the function that returns the database path.
// Tests can override this to use a temp directory.
var dbPathFunc = defaultDBPath

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fall back to current directory if home cannot be determined
		// (containers, service accounts).
		return filepath.Join(".mdfiles", "log", "mdfiles-log.db")
	}
	return filepath.Join(home, ".mdfiles", "log", "mdfiles-log.db")
}

func dbPath() string {
	return dbPathFunc()
}

// DBPath returns the path to the log database.
func DBPath() string {
	return dbPath()
}

// hash creates a project identifier from the root directory.
func hash(s string) string {
	h, err := blake2b.New(8, nil) // 64-bit = 16 hex chars
	if err != nil {
		// Should never happen with nil key, but don't silently ignore
		panic("blake2b.New failed: " + err.Error())
	}
	h.Write([]byte(s))
	return hex.EncodeToString(h.Sum(nil))
}

// migrate creates the log table if it doesn't exist. Safe for concurrent access.
func migrate(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS log (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			start         INTEGER NOT NULL,
			end           INTEGER NOT NULL,
			project       TEXT NOT NULL,
			source        TEXT NOT NULL,
			author        TEXT,
			action        TEXT NOT NULL,
			path          TEXT,
			resolved_path TEXT,
			success       INTEGER NOT NULL,
			error         TEXT,
			detail        TEXT
		);
		CREATE INDEX IF NOT EXISTS idx_log_start ON log(start);
		CREATE INDEX IF NOT EXISTS idx_log_project ON log(project);
		CREATE INDEX IF NOT EXISTS idx_log_source ON log(source);
	`)
	return err
}

// nilIfEmpty returns nil for empty strings, reducing NULL checks in queries.
func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
