// Package files is the only code that touches the document tree.
//
// Every operation takes a client-supplied relative path, resolves it against
// the root and checks confinement before any I/O. Reads go through the
// canonical (symlink-free) path. Mutations go through an os.Root opened on
// the root directory, so even a path that changes between check and use
// cannot escape it.
//
// The service holds no state besides its configuration. Nothing is cached
// between calls and it is safe for concurrent use.
package files

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	gopath "path"
	"path/filepath"
	"syscall"

	"github.com/jpl-au/mdfiles/internal/markdown"
	"github.com/jpl-au/mdfiles/internal/path"
	"github.com/jpl-au/mdfiles/internal/validate"
)

// Options configures a Service. Zero values mean "no limit".
type Options struct {
	MaxPath    int   // longest accepted relative path in bytes
	MaxContent int64 // largest document accepted by Write
	MaxUpload  int64 // largest file accepted by Upload
	Render     markdown.RenderOptions
}

// Service performs file operations confined to a single root directory.
type Service struct {
	paths    *path.Resolver
	renderer *markdown.Renderer
	opts     Options
}

// New returns a service rooted at root, creating the directory if needed.
func New(root string, opts Options) (*Service, error) {
	if root == "" {
		return nil, errors.New("root directory required")
	}
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("creating root %s: %w", root, err)
	}
	r, err := path.New(root)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(r.Root())
	if err != nil {
		return nil, fmt.Errorf("opening root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root %s: %w", r.Root(), ErrNotDir)
	}
	return &Service{
		paths:    r,
		renderer: markdown.NewRenderer(opts.Render),
		opts:     opts,
	}, nil
}

// Root returns the absolute, canonical root directory.
func (s *Service) Root() string {
	return s.paths.Root()
}

// Render converts a markdown body to HTML with the service's renderer.
func (s *Service) Render(body string) (string, error) {
	return s.renderer.Render(body)
}

// target is a resolved location under the root.
type target struct {
	rel string // slash-separated, "" for the root
	abs string
}

// display names the target in error messages.
func (t target) display() string {
	if t.rel == "" {
		return "/"
	}
	return t.rel
}

// resolve maps rel to a canonical location, following symlinks. Paths that
// escape the root are reported as not found.
func (s *Service) resolve(rel string) (target, error) {
	clean, err := validate.Path(rel, s.opts.MaxPath)
	if err != nil {
		return target{}, err
	}
	abs, err := s.paths.Join(clean)
	if err != nil {
		return target{}, fmt.Errorf("%w: %s", ErrNotFound, clean)
	}
	return target{rel: s.paths.Rel(abs), abs: abs}, nil
}

// resolveEntry resolves the parent of rel canonically but keeps the final
// segment as written, so operations on a symlink act on the link itself
// rather than on whatever it points to. The root has no entry.
func (s *Service) resolveEntry(rel string) (target, error) {
	clean, err := validate.Path(rel, s.opts.MaxPath)
	if err != nil {
		return target{}, err
	}
	if clean == "" {
		return target{}, ErrRoot
	}
	dir, name := gopath.Split(clean)
	if err := validate.Name(name); err != nil {
		return target{}, fmt.Errorf("%w: %s", ErrNotFound, clean)
	}
	parent, err := s.resolve(dir)
	if err != nil {
		return target{}, err
	}
	return s.child(parent, name)
}

// child returns the entry name inside dir. The final segment is not
// canonicalised, but the location it leads to must still be under the root.
func (s *Service) child(dir target, name string) (target, error) {
	t := target{rel: path.JoinRel(dir.rel, name), abs: filepath.Join(dir.abs, name)}
	if !s.paths.IsSafe(t.abs) {
		return target{}, fmt.Errorf("%w: %s", ErrNotFound, t.rel)
	}
	return t, nil
}

// stat returns info for t, following symlinks.
func stat(t target) (fs.FileInfo, error) {
	info, err := os.Stat(t.abs)
	if missing(err) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, t.display())
	}
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", t.display(), err)
	}
	return info, nil
}

// missing reports whether err means nothing exists at a path, including
// the case where a parent component is a file.
func missing(err error) bool {
	return errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR)
}
