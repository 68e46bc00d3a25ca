//go:build !windows

// path_unix.go provides Unix-specific separator handling and comparison.
//
// On Unix systems, backslashes are valid filename characters, not path
// separators, so only forward slashes are converted. Filesystems are treated
// as case-sensitive for the containment check.

package path

import (
	"path/filepath"
	"strings"
)

func fromSlash(p string) string {
	return filepath.FromSlash(p)
}

func toSlash(p string) string {
	return p
}

func samePath(a, b string) bool {
	return a == b
}

func hasPathPrefix(p, prefix string) bool {
	return strings.HasPrefix(p, prefix)
}
