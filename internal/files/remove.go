package files

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jpl-au/mdfiles/internal/path"
	"github.com/jpl-au/mdfiles/internal/validate"
)

// Delete removes the file or empty directory at rel. isDir states what the
// caller believes rel to be; a mismatch fails rather than removing the
// wrong kind of entry. The root itself can never be deleted.
func (s *Service) Delete(ctx context.Context, rel string, isDir bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	t, err := s.resolveEntry(rel)
	if err != nil {
		return err
	}
	info, err := os.Lstat(t.abs)
	if missing(err) {
		return fmt.Errorf("%w: %s", ErrNotFound, t.display())
	}
	if err != nil {
		return fmt.Errorf("stat %s: %w", t.display(), err)
	}

	switch {
	case isDir && !info.IsDir():
		return fmt.Errorf("%s: %w", t.display(), ErrNotDir)
	case !isDir && info.IsDir():
		return fmt.Errorf("%s: %w", t.display(), ErrIsDir)
	}

	return s.withRoot(func(root *os.Root) error {
		name := localName(t.rel)
		if info.IsDir() {
			empty, err := emptyDir(root, name)
			if err != nil {
				return fmt.Errorf("reading %s: %w", t.display(), err)
			}
			if !empty {
				return fmt.Errorf("%s: %w", t.display(), ErrNotEmpty)
			}
		}
		if err := root.Remove(name); err != nil {
			return fmt.Errorf("removing %s: %w", t.display(), err)
		}
		return nil
	})
}

func emptyDir(root *os.Root, name string) (bool, error) {
	f, err := root.Open(name)
	if err != nil {
		return false, err
	}
	defer f.Close()
	_, err = f.ReadDir(1)
	if errors.Is(err, io.EOF) {
		return true, nil
	}
	return false, err
}

// Rename gives the entry at rel a new name in the same directory and
// returns its new relative path. An existing entry under the new name is
// never replaced.
func (s *Service) Rename(ctx context.Context, rel, newName string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := validate.Name(newName); err != nil {
		return "", err
	}
	src, err := s.resolveEntry(rel)
	if err != nil {
		return "", err
	}
	srcInfo, err := os.Lstat(src.abs)
	if missing(err) {
		return "", fmt.Errorf("%w: %s", ErrNotFound, src.display())
	}
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", src.display(), err)
	}

	parentRel, _ := path.Parent(src.rel)
	parent, err := s.resolve(parentRel)
	if err != nil {
		return "", err
	}
	dst, err := s.child(parent, newName)
	if err != nil {
		return "", err
	}
	if dst.rel == src.rel {
		return src.rel, nil
	}
	// A case-only rename on a case-insensitive filesystem finds the source
	// again under the new name; that is not a conflict.
	if dstInfo, err := os.Lstat(dst.abs); err == nil && !os.SameFile(srcInfo, dstInfo) {
		return "", fmt.Errorf("%s: %w", dst.display(), ErrExists)
	}

	err = s.withRoot(func(root *os.Root) error {
		return root.Rename(localName(src.rel), localName(dst.rel))
	})
	if err != nil {
		return "", fmt.Errorf("renaming %s: %w", src.display(), err)
	}
	return dst.rel, nil
}
