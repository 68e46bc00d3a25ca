// Package log records who changed what in the document tree.
//
// Entries go to a SQLite database at ~/.mdfiles/log/mdfiles-log.db shared by
// every root the tool has served; each entry carries a hash of its root so
// "mdfiles log" can show one root at a time. Sources name the surface and
// operation: "{extension}:{command}" for the CLI (files:rm), "http:{route}"
// for the web server (http:upload) and "mcp:{tool}" for MCP (mcp:files_write).
//
// Entries are built fluently and written once the outcome is known:
//
//	res, err := svc.Write(ctx, p, content)
//	log.Event("files:write", "write").
//		Author(cmd.Author()).
//		Path(p).
//		Detail("bytes", res.Bytes).
//		Write(err)
//
// Logging is best effort. Before Open, or after a failed Open, every call is
// a no-op and the operation being recorded carries on regardless.
package log

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

var (
	global *Logger
	mu     sync.Mutex
)

// current returns the open logger, or nil.
func current() *Logger {
	mu.Lock()
	defer mu.Unlock()
	return global
}

// Entry is one recorded operation.
type Entry struct {
	Source string // where it came from, e.g. "http:delete"
	Author string // who asked for it
	Action string // verb: write, upload, mkdir, delete, rename, search...
	Path   string // the relative path as requested

	// ResolvedPath is the path actually affected when it differs from Path,
	// such as the destination of a rename or the file an upload created.
	ResolvedPath string

	Start time.Time // when Event was called
	End   time.Time // when Write was called

	Success bool
	Error   string
	Detail  map[string]any
}

// Builder accumulates an Entry. Create one with Event and finish it with
// Write.
type Builder struct {
	entry Entry
}

// Event starts an entry for action performed through source.
func Event(source, action string) *Builder {
	return &Builder{entry: Entry{
		Source: source,
		Action: action,
		Start:  time.Now(),
	}}
}

// Author sets who performed the operation: the CLI author, "http" or "mcp".
func (b *Builder) Author(author string) *Builder {
	b.entry.Author = author
	return b
}

// Path sets the relative path the operation was asked to act on.
func (b *Builder) Path(path string) *Builder {
	b.entry.Path = path
	return b
}

// Resolved sets the path the operation ended up affecting.
func (b *Builder) Resolved(path string) *Builder {
	b.entry.ResolvedPath = path
	return b
}

// Detail attaches an operation-specific value such as a byte count, a
// search query or a result count. Later calls with the same key win.
func (b *Builder) Detail(key string, value any) *Builder {
	if b.entry.Detail == nil {
		b.entry.Detail = make(map[string]any)
	}
	b.entry.Detail[key] = value
	return b
}

// Write records the entry. A nil err marks it successful; otherwise the
// error text is stored.
func (b *Builder) Write(err error) {
	b.entry.End = time.Now()
	b.entry.Success = err == nil
	if err != nil {
		b.entry.Error = err.Error()
	}
	Log(b.entry)
}

// Log records e as is.
func Log(e Entry) {
	if l := current(); l != nil {
		l.log(e)
	}
}

// Open opens (creating if needed) the audit database. Calling it again
// while open does nothing.
func Open() error {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		return nil
	}

	p := dbPath()
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return err
	}
	db, err := sql.Open("sqlite", p)
	if err != nil {
		return err
	}
	if err := migrate(db); err != nil {
		db.Close()
		return err
	}
	global = &Logger{db: db}
	return nil
}

// SetProject scopes later entries, and Recent, to root: the canonical
// directory being served.
func SetProject(root string) {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.project = hash(root)
	}
}

// Close closes the database. Entries logged afterwards are dropped.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.db.Close()
		global = nil
	}
}
