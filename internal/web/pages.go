// pages.go implements the HTML pages and the raw/download endpoints.

package web

import (
	"bytes"
	"errors"
	"html/template"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/jpl-au/mdfiles/internal/files"
	"github.com/jpl-au/mdfiles/internal/markdown"
	"github.com/jpl-au/mdfiles/internal/version"
)

var funcs = template.FuncMap{
	"pathURL": pathURL,
	"date": func(t time.Time) string {
		return t.Local().Format("2006-01-02 15:04")
	},
	"isMarkdown": markdown.IsMarkdown,
	"joinTags":   func(tags []string) string { return strings.Join(tags, ", ") },
}

// pathURL escapes each segment of a relative path for use in a URL.
func pathURL(p string) string {
	segs := strings.Split(p, "/")
	for i, s := range segs {
		segs[i] = url.PathEscape(s)
	}
	return strings.Join(segs, "/")
}

// crumb is one link in the breadcrumb trail.
type crumb struct {
	Name string
	Path string
}

// crumbs splits rel into a breadcrumb trail starting at the root.
func crumbs(rel string) []crumb {
	out := []crumb{{Name: "Home", Path: ""}}
	if rel == "" {
		return out
	}
	parts := strings.Split(rel, "/")
	for i, p := range parts {
		out = append(out, crumb{Name: p, Path: strings.Join(parts[:i+1], "/")})
	}
	return out
}

type browsePage struct {
	Title   string
	Crumbs  []crumb
	Listing *files.Listing
}

type viewPage struct {
	Title  string
	Crumbs []crumb
	View   *files.View
	HTML   template.HTML
}

type searchPage struct {
	Title     string
	Crumbs    []crumb
	Query     string
	Path      string
	Recursive bool
	Results   *files.SearchResults
	Error     string
}

type errorPage struct {
	Title   string
	Crumbs  []crumb
	Status  int
	Message string
}

// render executes a page template into a buffer first so a template error
// never leaves a half-written page behind.
func (s *Server) render(w http.ResponseWriter, status int, name string, data any) {
	var buf bytes.Buffer
	if err := s.pages.ExecuteTemplate(&buf, name, data); err != nil {
		s.log.Error("rendering page", "template", name, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// renderError shows an error page for err.
func (s *Server) renderError(w http.ResponseWriter, err error) {
	status, msg := classify(err)
	if status == http.StatusInternalServerError {
		s.log.Error("request failed", "error", err)
	}
	s.render(w, status, "error.html", errorPage{
		Title:   http.StatusText(status),
		Crumbs:  crumbs(""),
		Status:  status,
		Message: msg,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.ok(w, "", payload{"version": version.Short()})
}

// handleBrowse lists a directory. A file path is redirected to its view
// (markdown) or raw text.
func (s *Server) handleBrowse(w http.ResponseWriter, r *http.Request) {
	rel := r.PathValue("path")
	l, err := s.svc.List(r.Context(), rel)
	if errors.Is(err, files.ErrNotDir) {
		target := "/raw/"
		if markdown.IsMarkdown(rel) {
			target = "/view/"
		}
		http.Redirect(w, r, target+pathURL(strings.Trim(rel, "/")), http.StatusFound)
		return
	}
	if err != nil {
		s.renderError(w, err)
		return
	}

	title := "Files"
	if l.Path != "" {
		title = l.Path
	}
	s.render(w, http.StatusOK, "files.html", browsePage{
		Title:   title,
		Crumbs:  crumbs(l.Path),
		Listing: l,
	})
}

// handleView renders a markdown file.
func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	v, err := s.svc.View(r.Context(), r.PathValue("path"))
	if err != nil {
		s.renderError(w, err)
		return
	}
	s.render(w, http.StatusOK, "view.html", viewPage{
		Title:  v.Title,
		Crumbs: crumbs(v.Path),
		View:   v,
		// Raw HTML in the source is dropped by the renderer unless the
		// operator enabled markdown.unsafe_html.
		HTML: template.HTML(v.HTML), //nolint:gosec
	})
}

// handleRaw returns a file's text.
func (s *Server) handleRaw(w http.ResponseWriter, r *http.Request) {
	content, err := s.svc.Raw(r.Context(), r.PathValue("path"))
	if err != nil {
		status, msg := classify(err)
		http.Error(w, msg, status)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	_, _ = w.Write([]byte(content))
}

// handleDownload streams a file as an attachment. Range requests and
// conditional GETs are handled by http.ServeContent.
func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	f, info, err := s.svc.Open(r.Context(), r.PathValue("path"))
	if err != nil {
		status, msg := classify(err)
		http.Error(w, msg, status)
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": info.Name()}))
	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
}

// handleSearchPage runs a search and renders the results server-side.
func (s *Server) handleSearchPage(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page := searchPage{
		Title:     "Search",
		Crumbs:    crumbs(""),
		Query:     q.Get("q"),
		Path:      q.Get("path"),
		Recursive: recursiveParam(q.Get("recursive")),
	}
	if strings.TrimSpace(page.Query) != "" {
		res, err := s.svc.Search(r.Context(), page.Query, page.Path, page.Recursive)
		if err != nil {
			_, page.Error = classify(err)
		} else {
			page.Results = res
		}
	}
	s.render(w, http.StatusOK, "search.html", page)
}

// recursiveParam parses the recursive query parameter, which defaults to
// true when absent or malformed.
func recursiveParam(v string) bool {
	if v == "" {
		return true
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return true
	}
	return b
}
