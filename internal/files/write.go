package files

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jpl-au/mdfiles/internal/validate"
)

// WriteResult describes a completed write or upload.
type WriteResult struct {
	Path    string `json:"path"`
	Bytes   int64  `json:"bytes"`
	Created bool   `json:"created"`
}

// Write stores content at rel, creating parent directories as needed and
// replacing any existing file. Directories cannot be overwritten.
func (s *Service) Write(ctx context.Context, rel, content string) (WriteResult, error) {
	if err := ctx.Err(); err != nil {
		return WriteResult{}, err
	}
	if err := validate.Content(content, s.opts.MaxContent); err != nil {
		return WriteResult{}, err
	}
	t, err := s.resolveEntry(rel)
	if errors.Is(err, ErrRoot) {
		return WriteResult{}, fmt.Errorf("/: %w", ErrIsDir)
	}
	if err != nil {
		return WriteResult{}, err
	}
	return s.store(t, strings.NewReader(content), s.opts.MaxContent)
}

// Upload saves r as name inside the directory dir, creating dir if needed.
// An existing file of the same name is replaced.
func (s *Service) Upload(ctx context.Context, dir, name string, r io.Reader) (WriteResult, error) {
	if err := ctx.Err(); err != nil {
		return WriteResult{}, err
	}
	if err := validate.Name(name); err != nil {
		return WriteResult{}, err
	}
	d, err := s.resolve(dir)
	if err != nil {
		return WriteResult{}, err
	}
	if info, err := os.Stat(d.abs); err == nil && !info.IsDir() {
		return WriteResult{}, fmt.Errorf("%s: %w", d.display(), ErrNotDir)
	}
	t, err := s.child(d, name)
	if err != nil {
		return WriteResult{}, err
	}
	return s.store(t, r, s.opts.MaxUpload)
}

// store writes r to t through the root, refusing to replace a directory.
func (s *Service) store(t target, r io.Reader, limit int64) (WriteResult, error) {
	// A missing entry, or a parent that is not a directory, falls through
	// to writeInRoot which creates or reports it.
	info, err := os.Lstat(t.abs)
	if err == nil && info.IsDir() {
		return WriteResult{}, fmt.Errorf("%s: %w", t.display(), ErrIsDir)
	}
	created := err != nil

	var n int64
	err = s.withRoot(func(root *os.Root) error {
		var err error
		n, err = writeInRoot(root, localName(t.rel), r, limit)
		return err
	})
	if err != nil {
		return WriteResult{}, err
	}
	return WriteResult{Path: t.rel, Bytes: n, Created: created}, nil
}

// Mkdir creates the folder name inside dir, along with any missing parents.
// Creating a folder that already exists succeeds; a file in the way fails
// with ErrExists.
func (s *Service) Mkdir(ctx context.Context, dir, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := validate.Name(name); err != nil {
		return "", err
	}
	d, err := s.resolve(dir)
	if err != nil {
		return "", err
	}
	t, err := s.child(d, name)
	if err != nil {
		return "", err
	}
	if info, err := os.Stat(t.abs); err == nil && !info.IsDir() {
		return "", fmt.Errorf("%s: %w", t.display(), ErrExists)
	}

	err = s.withRoot(func(root *os.Root) error {
		return mkdirAllInRoot(root, localName(t.rel))
	})
	if errors.Is(err, ErrNotDir) {
		return "", fmt.Errorf("%s: %w", t.display(), ErrNotDir)
	}
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", t.display(), err)
	}
	return t.rel, nil
}
