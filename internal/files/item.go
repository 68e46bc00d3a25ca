package files

import (
	"io/fs"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/jpl-au/mdfiles/internal/markdown"
)

// Item is one entry in a directory listing.
type Item struct {
	Name          string    `json:"name"`
	Path          string    `json:"path"`
	IsDir         bool      `json:"isDirectory"`
	Size          int64     `json:"size"`
	FormattedSize string    `json:"formattedSize"`
	Modified      time.Time `json:"lastModified"`
	Ext           string    `json:"extension,omitempty"`
	Icon          string    `json:"icon"`

	// Populated for markdown files only.
	Title  string   `json:"title,omitempty"`
	ID     string   `json:"id,omitempty"`
	Author string   `json:"author,omitempty"`
	Tags   []string `json:"tags,omitempty"`
}

// Skipped records an entry an operation could not process. The operation
// itself still succeeds.
type Skipped struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
}

func newItem(rel string, info fs.FileInfo) Item {
	it := Item{
		Name:     info.Name(),
		Path:     rel,
		IsDir:    info.IsDir(),
		Modified: info.ModTime(),
	}
	if !it.IsDir {
		it.Size = info.Size()
		it.Ext = filepath.Ext(it.Name)
	}
	it.FormattedSize = FormatSize(it.Size, it.IsDir)
	it.Icon = Icon(it.Ext, it.IsDir)
	return it
}

// applyDocument copies markdown metadata onto the item.
func (it *Item) applyDocument(doc markdown.Document) {
	it.Title = doc.Metadata.Get("title")
	it.ID = doc.ID()
	it.Author = doc.Author()
	it.Tags = doc.Tags
}

// FormatSize renders a byte count with binary units and at most two
// decimals, e.g. "512 B", "1.5 KB". Directories have no size and render as
// "-".
func FormatSize(size int64, isDir bool) string {
	if isDir {
		return "-"
	}
	units := []string{"B", "KB", "MB", "GB"}
	v := float64(size)
	i := 0
	for v >= 1024 && i < len(units)-1 {
		v /= 1024
		i++
	}
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	return s + " " + units[i]
}

// Icon returns a display glyph for a file extension.
func Icon(ext string, isDir bool) string {
	if isDir {
		return "📁"
	}
	switch strings.ToLower(ext) {
	case ".md":
		return "📝"
	case ".jpg", ".jpeg", ".png", ".gif":
		return "🖼️"
	case ".zip", ".rar":
		return "📦"
	case ".json":
		return "📋"
	default:
		return "📄"
	}
}
