// Package validate checks user input before it reaches the filesystem.
//
// These checks are syntactic. They reject names and paths that can never be
// valid (NUL bytes, separators inside a name, excessive length) so the file
// service can report a precise error instead of an opaque I/O failure.
// Confinement to the root directory is NOT decided here: that belongs to
// internal/path, which sees the resolved, symlink-free form.
//
// # Validation Functions
//
// Name validates a single path segment (new folder, rename target, upload).
// Path validates and tidies a relative path supplied by a client.
// Content validates document body size limits.
//
// # Error Handling
//
// All validation errors wrap one of the sentinel errors defined in errors.go.
// Use errors.Is() for type-safe error checking:
//
//	if errors.Is(err, validate.ErrInvalidName) {
//	    // handle invalid name
//	}
package validate
