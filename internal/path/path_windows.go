//go:build windows

// path_windows.go provides Windows-specific separator handling and comparison.
//
// Both slash styles are separators on Windows. NTFS is case-insensitive, so
// "C:\Data\x" must count as inside a root configured as "c:\data".

package path

import (
	"path/filepath"
	"strings"
)

func fromSlash(p string) string {
	return filepath.FromSlash(p)
}

func toSlash(p string) string {
	return filepath.ToSlash(p)
}

func samePath(a, b string) bool {
	return strings.EqualFold(a, b)
}

func hasPathPrefix(p, prefix string) bool {
	return len(p) >= len(prefix) && strings.EqualFold(p[:len(prefix)], prefix)
}
