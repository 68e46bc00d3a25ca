// search.go walks markdown files under a directory.
//
// Search and the tag summary share one walker. It visits *.md files in
// lexical order, re-checks confinement for every file (a symlinked file can
// point anywhere) and reports unreadable files as skipped instead of failing
// the whole walk. Cancellation is checked between files.

package files

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/jpl-au/mdfiles/internal/glob"
	"github.com/jpl-au/mdfiles/internal/markdown"
	"github.com/jpl-au/mdfiles/internal/path"
)

// SearchResult is one matching document.
type SearchResult struct {
	Name     string             `json:"fileName"`
	Path     string             `json:"filePath"`
	Title    string             `json:"title"`
	ID       string             `json:"id,omitempty"`
	Tags     []string           `json:"tags"`
	Kind     markdown.MatchKind `json:"matchType"`
	Snippet  string             `json:"snippet,omitempty"`
	Modified time.Time          `json:"lastModified"`
}

// SearchResults holds the matches of a search and any files it skipped.
type SearchResults struct {
	Results []SearchResult `json:"results"`
	Skipped []Skipped      `json:"skipped,omitempty"`
}

// SearchRequest describes a search.
type SearchRequest struct {
	Query     string
	Path      string // directory to search, "" for the root
	Recursive bool
	Pattern   string // optional glob on paths relative to the root
	Limit     int    // maximum results, 0 for all
}

// Search finds markdown files under rel matching query. See markdown.Match
// for how a single document is matched. A blank query yields no results.
func (s *Service) Search(ctx context.Context, query, rel string, recursive bool) (*SearchResults, error) {
	return s.Find(ctx, SearchRequest{Query: query, Path: rel, Recursive: recursive})
}

// Find runs a search with the full set of options.
func (s *Service) Find(ctx context.Context, req SearchRequest) (*SearchResults, error) {
	res := &SearchResults{Results: []SearchResult{}}
	if strings.TrimSpace(req.Query) == "" {
		return res, nil
	}

	err := s.walkMarkdown(ctx, req.Path, req.Recursive, req.Pattern, &res.Skipped, func(f walkedFile) error {
		doc := markdown.Parse(f.raw)
		hit, ok := doc.Match(req.Query)
		if !ok {
			return nil
		}
		res.Results = append(res.Results, SearchResult{
			Name:     f.info.Name(),
			Path:     f.rel,
			Title:    doc.Title(f.rel),
			ID:       doc.ID(),
			Tags:     nonNil(doc.Tags),
			Kind:     hit.Kind,
			Snippet:  hit.Snippet,
			Modified: f.info.ModTime(),
		})
		if req.Limit > 0 && len(res.Results) >= req.Limit {
			return errStopWalk
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// TagCount is a tag and the number of documents declaring it.
type TagCount struct {
	Tag   string   `json:"tag"`
	Count int      `json:"count"`
	Paths []string `json:"paths"`
}

// TagSummary lists tags found under a directory.
type TagSummary struct {
	Tags    []TagCount `json:"tags"`
	Skipped []Skipped  `json:"skipped,omitempty"`
}

// Tags summarises the tags of every markdown file under rel, recursively.
// Tags are grouped case-insensitively under the first spelling seen and
// ordered by document count, then name.
func (s *Service) Tags(ctx context.Context, rel, pattern string) (*TagSummary, error) {
	sum := &TagSummary{Tags: []TagCount{}}
	index := make(map[string]int)

	err := s.walkMarkdown(ctx, rel, true, pattern, &sum.Skipped, func(f walkedFile) error {
		for _, tag := range markdown.ExtractTags(f.raw) {
			key := strings.ToLower(tag)
			i, ok := index[key]
			if !ok {
				i = len(sum.Tags)
				index[key] = i
				sum.Tags = append(sum.Tags, TagCount{Tag: tag})
			}
			sum.Tags[i].Count++
			sum.Tags[i].Paths = append(sum.Tags[i].Paths, f.rel)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(sum.Tags, func(a, b TagCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(strings.ToLower(a.Tag), strings.ToLower(b.Tag))
	})
	return sum, nil
}

// errStopWalk ends a walk early without error.
var errStopWalk = errors.New("stop walk")

type walkedFile struct {
	rel  string
	info fs.FileInfo
	raw  string
}

// walkMarkdown calls fn for each readable markdown file under rel.
func (s *Service) walkMarkdown(ctx context.Context, rel string, recursive bool, pattern string, skipped *[]Skipped, fn func(walkedFile) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	base, err := s.resolve(rel)
	if err != nil {
		return err
	}
	info, err := stat(base)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s: %w", base.display(), ErrNotDir)
	}
	if pattern != "" {
		if _, err := glob.Match(pattern, ""); err != nil {
			return fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}
	}

	skip := func(p, reason string) {
		*skipped = append(*skipped, Skipped{Path: p, Reason: reason})
	}

	err = filepath.WalkDir(base.abs, func(p string, d fs.DirEntry, err error) error {
		if cerr := ctx.Err(); cerr != nil {
			return cerr
		}
		rel := walkRel(base, p)
		if err != nil {
			if p == base.abs {
				return err
			}
			skip(rel, err.Error())
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if !recursive && p != base.abs {
				return filepath.SkipDir
			}
			return nil
		}
		if !markdown.IsMarkdown(d.Name()) {
			return nil
		}
		if pattern != "" {
			if ok, _ := glob.Match(pattern, rel); !ok {
				return nil
			}
		}
		if !s.paths.IsSafe(p) {
			skip(rel, "outside root")
			return nil
		}
		fi, err := os.Stat(p)
		if err != nil {
			skip(rel, err.Error())
			return nil
		}
		if fi.IsDir() {
			return nil
		}
		data, err := os.ReadFile(p)
		if err != nil {
			skip(rel, err.Error())
			return nil
		}
		return fn(walkedFile{rel: rel, info: fi, raw: string(data)})
	})
	if errors.Is(err, errStopWalk) {
		return nil
	}
	if err != nil && ctx.Err() == nil {
		return fmt.Errorf("searching %s: %w", base.display(), err)
	}
	return err
}

// walkRel names p relative to the root without following symlinks, so a
// linked file is reported under the name it was found by.
func walkRel(base target, p string) string {
	r, err := filepath.Rel(base.abs, p)
	if err != nil || r == "." {
		return base.rel
	}
	return path.JoinRel(base.rel, filepath.ToSlash(r))
}
