// Package guide holds the help pages shown by "mdfiles guide" and the
// files_guide MCP tool. Pages are markdown files embedded at build time;
// guide.md is the overview and every other file is a topic.
package guide

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"slices"
	"strings"
)

//go:embed *.md
var pages embed.FS

const overview = "guide"

// ErrNotFound is returned by Get for a topic with no page.
var ErrNotFound = errors.New("guide page not found")

// Get returns a page by topic. An empty topic is the overview. Topics are
// matched case-insensitively, with or without a ".md" suffix.
func Get(topic string) (string, error) {
	topic = strings.TrimSuffix(strings.ToLower(strings.TrimSpace(topic)), ".md")
	if topic == "" {
		topic = overview
	}
	data, err := pages.ReadFile(topic + ".md")
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", ErrNotFound, topic)
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// List returns the topic names in order, excluding the overview.
func List() ([]string, error) {
	matches, err := fs.Glob(pages, "*.md")
	if err != nil {
		return nil, err
	}
	topics := make([]string, 0, len(matches))
	for _, m := range matches {
		if t := strings.TrimSuffix(m, ".md"); t != overview {
			topics = append(topics, t)
		}
	}
	slices.Sort(topics)
	return topics, nil
}
