// Package duration parses the look-back windows accepted by "mdfiles log
// --since".
//
// Days and weeks are what people reach for when auditing ("7d", "2w"), and
// Go's own syntax ("36h", "90m") still works for anything shorter.
package duration

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

var calendar = regexp.MustCompile(`^(\d+)([dw])$`)

// Parse parses a window such as "7d", "2w" or "12h". Windows must be
// positive.
func Parse(s string) (time.Duration, error) {
	if m := calendar.FindStringSubmatch(s); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return 0, fmt.Errorf("invalid number: %w", err)
		}
		day := 24 * time.Hour
		if m[2] == "w" {
			day *= 7
		}
		if n == 0 {
			return 0, fmt.Errorf("invalid duration %q: must be positive", s)
		}
		return time.Duration(n) * day, nil
	}

	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q (use 7d, 2w or 12h)", s)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid duration %q: must be positive", s)
	}
	return d, nil
}

// Since returns the instant s before now.
func Since(now time.Time, s string) (time.Time, error) {
	d, err := Parse(s)
	if err != nil {
		return time.Time{}, err
	}
	return now.Add(-d), nil
}
