package validate

import (
	"fmt"
	"path"
	"strings"
)

// Path validates a client-supplied relative path and returns it tidied:
// leading and trailing slashes removed, "." segments dropped and the root
// itself returned as "". Spaces are kept; " notes.md" is a legal file name.
//
// Validation rules:
//   - Null bytes rejected (the OS would truncate at them)
//   - Max length enforced if maxLen > 0 (0 means no limit)
//
// ".." segments are kept. Whether they escape the root is decided by the
// resolver after symlinks are followed, not by string inspection here.
func Path(p string, maxLen int) (string, error) {
	if strings.ContainsRune(p, 0) {
		return "", fmt.Errorf("%w: null byte in path", ErrInvalidPath)
	}
	if maxLen > 0 && len(p) > maxLen {
		return "", ErrPathTooLong
	}

	p = strings.Trim(p, "/")
	if p == "" {
		return "", nil
	}
	clean := path.Clean(p)
	if clean == "." {
		return "", nil
	}
	return clean, nil
}
