// content.go implements document content validation.
//
// Only size is checked. Documents can hold any text, and uploads any bytes,
// so format is never inspected.

package validate

// Content validates content size. A maxLen of 0 means no limit.
func Content(content string, maxLen int64) error {
	return Size(int64(len(content)), maxLen)
}

// Size validates a byte count against maxLen. A maxLen of 0 means no limit.
func Size(n, maxLen int64) error {
	if maxLen > 0 && n > maxLen {
		return ErrContentTooLarge
	}
	return nil
}
