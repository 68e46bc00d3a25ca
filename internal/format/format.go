// Package format provides output formatting utilities for CLI display.
//
// Centralises formatting logic so that command implementations focus on
// business logic while this package handles presentation concerns like
// column alignment and the layout of search hits.
package format

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/jpl-au/mdfiles/internal/files"
	"github.com/jpl-au/mdfiles/internal/log"
	"github.com/jpl-au/mdfiles/internal/markdown"
)

// List prints entry names, one per line. Directories get a trailing slash
// so they stand out in plain output.
func List(w io.Writer, items []files.Item) error {
	for _, it := range items {
		if it.IsDir {
			fmt.Fprintf(w, "%s/\n", it.Name)
			continue
		}
		fmt.Fprintln(w, it.Name)
	}
	return nil
}

// Long prints entries with size, modification time and markdown title.
//
// Column order is SIZE, MODIFIED, NAME, TITLE. Fixed-width columns come
// first so they align; the name column is padded to the longest name.
func Long(w io.Writer, items []files.Item) error {
	if len(items) == 0 {
		return nil
	}

	maxName := 4 // minimum "NAME"
	for _, it := range items {
		maxName = max(maxName, len(displayName(it)))
	}

	fmt.Fprintf(w, "%9s  %-16s  %-*s  %s\n", "SIZE", "MODIFIED", maxName, "NAME", "TITLE")
	for _, it := range items {
		title := it.Title
		if title == "" {
			title = "-"
		}
		fmt.Fprintf(w, "%9s  %s  %-*s  %s\n",
			it.FormattedSize,
			it.Modified.Format("2006-01-02 15:04"),
			maxName, displayName(it),
			title,
		)
	}
	return nil
}

func displayName(it files.Item) string {
	if it.IsDir {
		return it.Name + "/"
	}
	return it.Name
}

// SearchResults prints each hit as "path [kind] title" followed by an
// indented snippet for body matches.
func SearchResults(w io.Writer, results []files.SearchResult) error {
	for _, r := range results {
		fmt.Fprintf(w, "%s  [%s]  %s\n", r.Path, r.Kind, r.Title)
		if r.Kind == markdown.MatchContent && r.Snippet != "" {
			fmt.Fprintf(w, "    %s\n", r.Snippet)
		}
	}
	return nil
}

// Paths prints just result paths, one per line.
func Paths(w io.Writer, results []files.SearchResult) error {
	for _, r := range results {
		fmt.Fprintln(w, r.Path)
	}
	return nil
}

// Tags prints a tag frequency table, widest count first.
func Tags(w io.Writer, tags []files.TagCount) error {
	for _, t := range tags {
		fmt.Fprintf(w, "%5d  %s\n", t.Count, t.Tag)
	}
	return nil
}

// Meta prints front-matter metadata as sorted "key: value" lines.
func Meta(w io.Writer, meta markdown.Metadata, tags []string) error {
	keys := make([]string, 0, len(meta))
	for k := range meta {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "%s: %s\n", k, meta[k])
	}
	if len(tags) > 0 {
		fmt.Fprintf(w, "#tags: %s\n", strings.Join(tags, ", "))
	}
	return nil
}

// Skipped prints entries an operation could not process. Written to the
// caller's error stream so they never mix with results.
func Skipped(w io.Writer, skipped []files.Skipped) error {
	for _, s := range skipped {
		fmt.Fprintf(w, "skipped %s: %s\n", s.Path, s.Reason)
	}
	return nil
}

// Log prints audit log records, oldest first.
func Log(w io.Writer, records []log.Record) error {
	for i := len(records) - 1; i >= 0; i-- {
		r := records[i]
		status := "ok"
		if !r.Success {
			status = "FAIL"
		}
		path := r.Path
		if path == "" {
			path = "-"
		}
		author := r.Author
		if author == "" {
			author = "-"
		}
		fmt.Fprintf(w, "%s  %-4s  %-18s  %-8s  %-12s  %s\n",
			r.Time.Local().Format(time.DateTime),
			status,
			r.Source,
			r.Action,
			author,
			path,
		)
		if r.Error != "" {
			fmt.Fprintf(w, "    %s\n", r.Error)
		}
	}
	return nil
}
