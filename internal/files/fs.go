// fs.go performs mutations through an os.Root.
//
// Separated from the operations so every write, mkdir, remove and rename
// shares one confinement mechanism. os.Root refuses any name that would
// leave the directory it was opened on, including via symlinks, so it is a
// second line of defence after the resolver's checks.
//
// Writes are atomic: content goes to a temporary sibling which is renamed
// over the destination only once fully written. A rejected or interrupted
// upload never truncates the file it was meant to replace.

package files

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// withRoot opens the root directory as an os.Root for the duration of fn.
func (s *Service) withRoot(fn func(root *os.Root) error) error {
	root, err := os.OpenRoot(s.paths.Root())
	if err != nil {
		return fmt.Errorf("opening root: %w", err)
	}
	defer root.Close()
	return fn(root)
}

// localName converts a relative path into an os.Root name.
func localName(rel string) string {
	if rel == "" {
		return "."
	}
	return filepath.FromSlash(rel)
}

// mkdirAllInRoot creates a directory and all parents within an os.Root.
func mkdirAllInRoot(root *os.Root, dir string) error {
	if dir == "." || dir == "" {
		return nil
	}
	parts := strings.Split(filepath.Clean(dir), string(filepath.Separator))
	for i := range parts {
		d := filepath.Join(parts[:i+1]...)
		if err := root.Mkdir(d, 0755); err != nil && !errors.Is(err, fs.ErrExist) {
			return err
		}
	}
	info, err := root.Stat(dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s: %w", filepath.ToSlash(dir), ErrNotDir)
	}
	return nil
}

// writeInRoot copies r into name, creating parent directories. When limit
// is positive, more than limit bytes fails with ErrTooLarge and leaves any
// existing file untouched.
func writeInRoot(root *os.Root, name string, r io.Reader, limit int64) (int64, error) {
	if err := mkdirAllInRoot(root, filepath.Dir(name)); err != nil {
		return 0, fmt.Errorf("creating directory for %s: %w", filepath.ToSlash(name), err)
	}

	tmp := tempName(name)
	f, err := root.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return 0, fmt.Errorf("creating %s: %w", filepath.ToSlash(name), err)
	}

	src := r
	if limit > 0 {
		src = io.LimitReader(r, limit+1)
	}
	n, err := io.Copy(f, src)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err == nil && limit > 0 && n > limit {
		err = ErrTooLarge
	}
	if err != nil {
		_ = root.Remove(tmp)
		if errors.Is(err, ErrTooLarge) {
			return 0, err
		}
		return 0, fmt.Errorf("writing %s: %w", filepath.ToSlash(name), err)
	}

	if err := root.Rename(tmp, name); err != nil {
		_ = root.Remove(tmp)
		return 0, fmt.Errorf("replacing %s: %w", filepath.ToSlash(name), err)
	}
	return n, nil
}

// tempName returns a hidden sibling of name unlikely to collide.
func tempName(name string) string {
	dir, base := filepath.Split(name)
	return dir + "." + base + ".tmp-" + strconv.FormatInt(time.Now().UnixNano(), 36)
}
