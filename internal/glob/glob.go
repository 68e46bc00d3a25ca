// Package glob matches relative file paths against glob patterns.
//
// Extends path.Match with ** support for matching any path segments. This
// enables patterns like "docs/**" to select every file under docs/,
// regardless of nesting depth. Used to narrow searches and tag summaries.
package glob

import (
	"path"
	"path/filepath"
	"strings"
)

// Match reports whether p, a slash-separated path relative to the root,
// matches pattern. Supports standard glob patterns (*, ?, [..]) plus ** for
// any number of path segments. A pattern without a slash may also match the
// file name alone, so "*.md" selects markdown files at any depth.
// Returns an error if the pattern is malformed.
func Match(pattern, p string) (bool, error) {
	pattern = filepath.ToSlash(pattern)

	if strings.Contains(pattern, "**") {
		parts := strings.Split(pattern, "**")
		if len(parts) == 2 {
			prefix := strings.TrimSuffix(parts[0], "/")
			suffix := strings.TrimPrefix(parts[1], "/")

			if prefix != "" && p != prefix && !strings.HasPrefix(p, prefix+"/") {
				return false, nil
			}
			if suffix == "" {
				return true, nil
			}
			// Match suffix against every tail, and every single segment.
			segments := strings.Split(p, "/")
			for i := range segments {
				m, err := path.Match(suffix, strings.Join(segments[i:], "/"))
				if err != nil {
					return false, err
				}
				if m {
					return true, nil
				}
				m, err = path.Match(suffix, segments[i])
				if err != nil {
					return false, err
				}
				if m {
					return true, nil
				}
			}
			return false, nil
		}
	}

	matched, err := path.Match(pattern, p)
	if err != nil || matched {
		return matched, err
	}
	if strings.Contains(pattern, "/") {
		return false, nil
	}
	return path.Match(pattern, path.Base(p))
}
