package files

import (
	"cmp"
	"context"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/jpl-au/mdfiles/internal/markdown"
	"github.com/jpl-au/mdfiles/internal/path"
)

// Listing is the content of one directory.
type Listing struct {
	Path    string    `json:"path"`
	Parent  *string   `json:"parent,omitempty"` // nil at the root
	Items   []Item    `json:"items"`
	Skipped []Skipped `json:"skipped,omitempty"`
}

// List returns the entries of the directory rel, directories first and then
// by name. Markdown files carry their front-matter title, id, author and
// tags. A markdown file that cannot be read is still listed, without
// metadata, and reported in Skipped. Entries whose symlinks lead outside the
// root are omitted and reported.
func (s *Service) List(ctx context.Context, rel string) (*Listing, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	t, err := s.resolve(rel)
	if err != nil {
		return nil, err
	}
	info, err := stat(t)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s: %w", t.display(), ErrNotDir)
	}

	entries, err := os.ReadDir(t.abs)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", t.display(), err)
	}

	l := &Listing{Path: t.rel, Items: make([]Item, 0, len(entries))}
	if parent, ok := path.Parent(t.rel); ok {
		l.Parent = &parent
	}

	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		entry, err := s.child(t, e.Name())
		if err != nil {
			l.Skipped = append(l.Skipped, Skipped{Path: path.JoinRel(t.rel, e.Name()), Reason: "outside root"})
			continue
		}
		fi, err := os.Stat(entry.abs)
		if err != nil {
			l.Skipped = append(l.Skipped, Skipped{Path: entry.rel, Reason: err.Error()})
			continue
		}
		item := newItem(entry.rel, fi)
		if !item.IsDir && markdown.IsMarkdown(item.Name) {
			raw, err := os.ReadFile(entry.abs)
			if err != nil {
				l.Skipped = append(l.Skipped, Skipped{Path: entry.rel, Reason: err.Error()})
			} else {
				item.applyDocument(markdown.Parse(string(raw)))
			}
		}
		l.Items = append(l.Items, item)
	}

	slices.SortStableFunc(l.Items, compareItems)
	return l, nil
}

// compareItems orders directories before files, then names
// case-insensitively with a byte-order tiebreak.
func compareItems(a, b Item) int {
	if a.IsDir != b.IsDir {
		if a.IsDir {
			return -1
		}
		return 1
	}
	if c := cmp.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)); c != 0 {
		return c
	}
	return cmp.Compare(a.Name, b.Name)
}
