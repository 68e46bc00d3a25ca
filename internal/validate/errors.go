// errors.go defines sentinel errors for validation failures.
//
// Separated to centralise error definitions. Each error represents a
// distinct validation failure category; detail is added by wrapping with
// fmt.Errorf in the validation functions.

package validate

import "errors"

var (
	ErrInvalidName     = errors.New("invalid name")
	ErrInvalidPath     = errors.New("invalid path")
	ErrPathTooLong     = errors.New("path too long")
	ErrContentTooLarge = errors.New("content too large")
)
