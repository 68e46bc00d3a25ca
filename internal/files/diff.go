package files

import (
	"context"

	"github.com/jpl-au/mdfiles/internal/diff"
)

// Diff compares the files at a and b line by line.
func (s *Service) Diff(ctx context.Context, a, b string) (diff.Result, error) {
	ta, oldContent, err := s.readFile(ctx, a)
	if err != nil {
		return diff.Result{}, err
	}
	tb, newContent, err := s.readFile(ctx, b)
	if err != nil {
		return diff.Result{}, err
	}
	return diff.Compute(oldContent, newContent, ta.display(), tb.display()), nil
}
