// name.go validates single path segments.
//
// Separated from path.go because a name is never a path. Folder names,
// rename targets and uploaded file names are all joined onto a directory
// the caller already resolved, so any separator in them would let a client
// pick a different directory.

package validate

import (
	"fmt"
	"strings"
)

// MaxName is the longest name, in bytes, most filesystems accept.
const MaxName = 255

// Name validates a single file or folder name.
//
// Validation rules:
//   - Empty or whitespace-only names rejected
//   - "." and ".." rejected (they name existing directories)
//   - Separators rejected, both "/" and "\" on every platform
//   - Null bytes rejected
//   - At most MaxName bytes
func Name(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidName)
	}
	if name == "." || name == ".." {
		return fmt.Errorf("%w: %q is reserved", ErrInvalidName, name)
	}
	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: %q contains a path separator", ErrInvalidName, name)
	}
	if strings.ContainsRune(name, 0) {
		return fmt.Errorf("%w: null byte in name", ErrInvalidName)
	}
	if len(name) > MaxName {
		return fmt.Errorf("%w: longer than %d bytes", ErrInvalidName, MaxName)
	}
	return nil
}
