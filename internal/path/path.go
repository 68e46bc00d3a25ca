// Package path confines user-supplied relative paths to a single root
// directory.
//
// Every filesystem operation in mdfiles passes its relative path through a
// Resolver before touching the disk. Resolve never fails; it produces the
// canonical absolute form of the request. IsSafe then decides whether that
// form is still inside the root. Callers treat an unsafe path exactly like a
// missing one so that responses never reveal what lies outside the root.
//
// Canonicalisation resolves ".", ".." and symlinks. Targets that do not exist
// yet (a file about to be written, a folder about to be created) are resolved
// through their longest existing ancestor, so a symlinked parent directory
// cannot be used to escape the root either.
package path

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// ErrUnsafe indicates a path that resolves outside the root.
var ErrUnsafe = errors.New("path escapes root")

// Resolver maps relative paths onto a fixed root directory.
// It is immutable after construction and safe for concurrent use.
type Resolver struct {
	root string // canonical absolute root
}

// New returns a Resolver anchored at root. The root is made absolute and
// canonicalised once; it does not need to exist yet.
func New(root string) (*Resolver, error) {
	if root == "" {
		return nil, errors.New("root directory not configured")
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	return &Resolver{root: canonical(abs)}, nil
}

// Root returns the canonical absolute root directory.
func (r *Resolver) Root() string {
	return r.root
}

// Resolve joins relative onto the root and returns the canonical absolute
// path. An empty relative path returns the root. The result may lie outside
// the root; check it with IsSafe before use.
func (r *Resolver) Resolve(relative string) string {
	if relative == "" {
		return r.root
	}
	return canonical(filepath.Join(r.root, fromSlash(relative)))
}

// IsSafe reports whether absolute is the root or a descendant of it.
//
// The comparison happens on path segments: the root gets a trailing
// separator before the prefix test so that a sibling sharing the root as a
// string prefix ("/data-evil" for root "/data") is rejected.
func (r *Resolver) IsSafe(absolute string) bool {
	if absolute == "" {
		return false
	}
	abs, err := filepath.Abs(absolute)
	if err != nil {
		return false
	}
	c := canonical(abs)
	if samePath(c, r.root) {
		return true
	}
	prefix := r.root
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}
	return hasPathPrefix(c, prefix)
}

// Join resolves relative and checks it in one step.
// Returns ErrUnsafe when the result escapes the root.
func (r *Resolver) Join(relative string) (string, error) {
	abs := r.Resolve(relative)
	if !r.IsSafe(abs) {
		return "", ErrUnsafe
	}
	return abs, nil
}

// Rel returns absolute relative to the root in forward-slash form.
// The root itself maps to "".
func (r *Resolver) Rel(absolute string) string {
	rel, err := filepath.Rel(r.root, canonical(absolute))
	if err != nil || rel == "." {
		return ""
	}
	return filepath.ToSlash(rel)
}

// Parent returns the parent of a relative path in forward-slash form.
//
// Examples:
//   - "docs/api/auth.md" -> "docs/api", true
//   - "readme.md" -> "", true (the root listing)
//   - "" -> "", false (the root has no parent)
func Parent(relative string) (string, bool) {
	p := strings.Trim(toSlash(relative), "/")
	if p == "" {
		return "", false
	}
	i := strings.LastIndex(p, "/")
	if i < 0 {
		return "", true
	}
	return p[:i], true
}

// JoinRel joins a relative directory and a child name in forward-slash form.
func JoinRel(dir, name string) string {
	dir = strings.Trim(toSlash(dir), "/")
	if dir == "" {
		return name
	}
	return dir + "/" + name
}

// canonical returns the absolute, cleaned, symlink-free form of p.
//
// When p does not exist, the longest existing ancestor is resolved and the
// missing tail is appended. Cleaning happens first so ".." segments are
// applied lexically before any symlink lookup.
func canonical(p string) string {
	p = filepath.Clean(p)
	if resolved, err := filepath.EvalSymlinks(p); err == nil {
		return resolved
	}

	var tail []string
	cur := p
	for {
		parent := filepath.Dir(cur)
		tail = append(tail, filepath.Base(cur))
		if parent == cur {
			return p
		}
		if resolved, err := filepath.EvalSymlinks(parent); err == nil {
			for i := len(tail) - 1; i >= 0; i-- {
				resolved = filepath.Join(resolved, tail[i])
			}
			return resolved
		} else if !errors.Is(err, os.ErrNotExist) {
			return p
		}
		cur = parent
	}
}
