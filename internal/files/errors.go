// errors.go defines the sentinel errors returned by the file service.
//
// Separated so presentation layers (HTTP, CLI, MCP) can map failures to
// status codes and messages with errors.Is, without importing the service
// implementation details.
//
// ErrNotFound deliberately covers both missing paths and paths that resolve
// outside the root. Callers must not be able to probe for files beyond it.

package files

import (
	"errors"

	"github.com/jpl-au/mdfiles/internal/validate"
)

var (
	ErrNotFound = errors.New("not found")
	ErrExists   = errors.New("already exists")
	ErrNotEmpty = errors.New("directory not empty")
	ErrNotDir   = errors.New("not a directory")
	ErrIsDir    = errors.New("is a directory")
	ErrRoot     = errors.New("root directory cannot be modified")

	ErrInvalidName = validate.ErrInvalidName
	ErrInvalidPath = validate.ErrInvalidPath
	ErrTooLarge    = validate.ErrContentTooLarge
)
