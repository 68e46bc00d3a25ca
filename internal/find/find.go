// Package find provides markdown search for the CLI layer.
//
// This wraps the service Find method with output formatting, separating
// the matching logic from presentation. A query matches a document's id,
// title, tags or body in that priority; the first hit kind is reported.
package find

import (
	"context"
	"io"

	"github.com/jpl-au/mdfiles/internal/files"
	"github.com/jpl-au/mdfiles/internal/format"
	"github.com/jpl-au/mdfiles/internal/service"
)

// Options configures a search operation.
type Options struct {
	Path      string // Directory to search, "" for the root
	Recursive bool   // Descend into subdirectories
	Pattern   string // Glob the relative path must match
	Limit     int    // Stop after this many results (0 = all)
	PathsOnly bool   // Only output paths
}

// Result contains the outcome of a search operation.
type Result struct {
	Results []files.SearchResult `json:"results"`
	Skipped []files.Skipped      `json:"skipped,omitempty"`
}

// Run searches markdown files and writes output to w. Skipped files are
// written to errw.
func Run(ctx context.Context, w, errw io.Writer, svc service.Service, query string, opts Options) (Result, error) {
	var result Result

	res, err := svc.Find(ctx, files.SearchRequest{
		Query:     query,
		Path:      opts.Path,
		Recursive: opts.Recursive,
		Pattern:   opts.Pattern,
		Limit:     opts.Limit,
	})
	if err != nil {
		return result, err
	}

	result.Results = res.Results
	result.Skipped = res.Skipped

	if opts.PathsOnly {
		err = format.Paths(w, res.Results)
	} else {
		err = format.SearchResults(w, res.Results)
	}
	if err != nil {
		return result, err
	}
	return result, format.Skipped(errw, res.Skipped)
}
