// Package tag provides tag listing for the CLI layer.
//
// Tags are never stored separately: they are extracted from each markdown
// file's front-matter list, hashtags and wiki links every time they are
// asked for. This package formats either one document's tags or a
// frequency summary across a directory.

package tag

import (
	"context"
	"fmt"
	"io"

	"github.com/jpl-au/mdfiles/internal/files"
	"github.com/jpl-au/mdfiles/internal/format"
	"github.com/jpl-au/mdfiles/internal/service"
)

// Result contains the outcome of a tag operation. Path is set and Tags
// populated for a single document; Summary is set for a directory.
type Result struct {
	Path    string           `json:"path"`
	Tags    []string         `json:"tags,omitempty"`
	Summary []files.TagCount `json:"summary,omitempty"`
	Skipped []files.Skipped  `json:"skipped,omitempty"`
}

// Options configures a tag operation.
type Options struct {
	Pattern string // Glob restricting which files are summarised
}

// Run lists the tags of the file at rel, or summarises tags under rel when
// it is a directory.
func Run(ctx context.Context, w, errw io.Writer, svc service.Service, rel string, opts Options) (Result, error) {
	item, err := svc.Stat(ctx, rel)
	if err != nil {
		return Result{Path: rel}, err
	}
	if item.IsDir {
		return Summary(ctx, w, errw, svc, rel, opts)
	}
	return List(ctx, w, svc, rel)
}

// List lists the tags of a single document, one per line.
func List(ctx context.Context, w io.Writer, svc service.Service, rel string) (Result, error) {
	result := Result{Path: rel}

	doc, err := svc.Read(ctx, rel)
	if err != nil {
		return result, err
	}
	result.Path = doc.Path
	result.Tags = doc.Tags

	for _, t := range doc.Tags {
		fmt.Fprintln(w, t)
	}
	return result, nil
}

// Summary counts tags across every markdown file under rel.
func Summary(ctx context.Context, w, errw io.Writer, svc service.Service, rel string, opts Options) (Result, error) {
	result := Result{Path: rel}

	sum, err := svc.Tags(ctx, rel, opts.Pattern)
	if err != nil {
		return result, err
	}
	result.Summary = sum.Tags
	result.Skipped = sum.Skipped

	if err := format.Tags(w, sum.Tags); err != nil {
		return result, err
	}
	return result, format.Skipped(errw, sum.Skipped)
}
