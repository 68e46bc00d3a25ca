// Package service defines the shared interface for file operations.
// Commands, extensions and servers depend on this interface rather than the
// concrete file service, so each surface can be tested against a fake.
package service

import (
	"context"
	"io"
	"io/fs"
	"os"

	"github.com/jpl-au/mdfiles/internal/diff"
	"github.com/jpl-au/mdfiles/internal/files"
)

// Service defines every operation on the document tree.
//
// Use files.New to obtain an implementation:
//
//	svc, err := files.New(root, files.Options{})
//	if err != nil {
//	    return err
//	}
//	view, err := svc.View(ctx, "notes/today.md")
//
// All paths are relative to the root, slash-separated and untrusted. A path
// that escapes the root is reported as files.ErrNotFound.
type Service interface {
	// Root returns the absolute, canonical root directory.
	Root() string

	// List returns the entries of a directory, directories first.
	List(ctx context.Context, rel string) (*files.Listing, error)

	// Stat returns a listing item for a single entry.
	Stat(ctx context.Context, rel string) (files.Item, error)

	// Read returns a file's body, front matter and tags.
	Read(ctx context.Context, rel string) (*files.Document, error)

	// View reads a markdown file and renders it to HTML.
	View(ctx context.Context, rel string) (*files.View, error)

	// Raw returns a file's text exactly as stored.
	Raw(ctx context.Context, rel string) (string, error)

	// Open opens a file for streaming. The caller closes it.
	Open(ctx context.Context, rel string) (*os.File, fs.FileInfo, error)

	// Render converts a markdown body to HTML with the configured options.
	Render(body string) (string, error)

	// Write creates or replaces a file, creating parent directories.
	Write(ctx context.Context, rel, content string) (files.WriteResult, error)

	// Upload stores r as name inside dir.
	Upload(ctx context.Context, dir, name string, r io.Reader) (files.WriteResult, error)

	// Mkdir creates name inside dir and returns the new relative path.
	// Creating a folder that already exists is not an error.
	Mkdir(ctx context.Context, dir, name string) (string, error)

	// Delete removes a file, or an empty directory when isDir is set.
	// The root itself is never removed.
	Delete(ctx context.Context, rel string, isDir bool) error

	// Rename gives an entry a new name within the same directory and
	// returns the new relative path. Existing targets are never replaced.
	Rename(ctx context.Context, rel, newName string) (string, error)

	// Search matches markdown files under rel against query by id, title,
	// tag and then body.
	Search(ctx context.Context, query, rel string, recursive bool) (*files.SearchResults, error)

	// Find is Search with a path pattern and result limit.
	Find(ctx context.Context, req files.SearchRequest) (*files.SearchResults, error)

	// Tags summarises tag usage across markdown files under rel. A
	// non-empty pattern restricts the walk to matching paths.
	Tags(ctx context.Context, rel, pattern string) (*files.TagSummary, error)

	// Diff compares two files line by line.
	Diff(ctx context.Context, a, b string) (diff.Result, error)
}

// Compile-time check that the file service satisfies Service.
var _ Service = (*files.Service)(nil)
