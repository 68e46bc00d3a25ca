package files

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/jpl-au/mdfiles/internal/markdown"
)

// View is a markdown document prepared for display.
type View struct {
	Path     string            `json:"path"`
	Title    string            `json:"title"`
	ID       string            `json:"id,omitempty"`
	Author   string            `json:"author,omitempty"`
	Date     string            `json:"date,omitempty"`
	Tags     []string          `json:"tags"`
	HTML     string            `json:"html"`
	Metadata markdown.Metadata `json:"metadata"`
}

// Document is a file's raw text alongside its parsed form.
type Document struct {
	Path     string            `json:"path"`
	Raw      string            `json:"-"`
	Body     string            `json:"content"`
	Metadata markdown.Metadata `json:"metadata"`
	Tags     []string          `json:"tags"`
}

// readFile reads a regular file at rel.
func (s *Service) readFile(ctx context.Context, rel string) (target, string, error) {
	if err := ctx.Err(); err != nil {
		return target{}, "", err
	}
	t, err := s.resolve(rel)
	if err != nil {
		return target{}, "", err
	}
	info, err := stat(t)
	if err != nil {
		return target{}, "", err
	}
	if info.IsDir() {
		return target{}, "", fmt.Errorf("%s: %w", t.display(), ErrIsDir)
	}
	data, err := os.ReadFile(t.abs)
	if err != nil {
		return target{}, "", fmt.Errorf("reading %s: %w", t.display(), err)
	}
	return t, string(data), nil
}

// Raw returns the text of the file at rel, unparsed.
func (s *Service) Raw(ctx context.Context, rel string) (string, error) {
	_, raw, err := s.readFile(ctx, rel)
	return raw, err
}

// Read returns the file at rel with its front matter parsed and tags
// extracted. Body excludes the front-matter block.
func (s *Service) Read(ctx context.Context, rel string) (*Document, error) {
	t, raw, err := s.readFile(ctx, rel)
	if err != nil {
		return nil, err
	}
	doc := markdown.Parse(raw)
	return &Document{
		Path:     t.rel,
		Raw:      raw,
		Body:     doc.Body,
		Metadata: doc.Metadata,
		Tags:     nonNil(doc.Tags),
	}, nil
}

// View reads, parses and renders the file at rel. The title falls back to
// the file name without its extension.
func (s *Service) View(ctx context.Context, rel string) (*View, error) {
	t, raw, err := s.readFile(ctx, rel)
	if err != nil {
		return nil, err
	}
	doc := markdown.Parse(raw)
	html, err := s.renderer.Render(doc.Body)
	if err != nil {
		return nil, fmt.Errorf("rendering %s: %w", t.display(), err)
	}
	return &View{
		Path:     t.rel,
		Title:    doc.Title(t.rel),
		ID:       doc.ID(),
		Author:   doc.Author(),
		Date:     doc.Date(),
		Tags:     nonNil(doc.Tags),
		HTML:     html,
		Metadata: doc.Metadata,
	}, nil
}

// Open opens the file at rel for streaming, typically a download. The
// caller must close the returned file.
func (s *Service) Open(ctx context.Context, rel string) (*os.File, fs.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	t, err := s.resolve(rel)
	if err != nil {
		return nil, nil, err
	}
	info, err := stat(t)
	if err != nil {
		return nil, nil, err
	}
	if info.IsDir() {
		return nil, nil, fmt.Errorf("%s: %w", t.display(), ErrIsDir)
	}
	f, err := os.Open(t.abs)
	if err != nil {
		return nil, nil, fmt.Errorf("opening %s: %w", t.display(), err)
	}
	return f, info, nil
}

// Stat returns a listing item for rel without reading markdown metadata.
func (s *Service) Stat(ctx context.Context, rel string) (Item, error) {
	if err := ctx.Err(); err != nil {
		return Item{}, err
	}
	t, err := s.resolve(rel)
	if err != nil {
		return Item{}, err
	}
	info, err := stat(t)
	if err != nil {
		return Item{}, err
	}
	return newItem(t.rel, info), nil
}

func nonNil(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
