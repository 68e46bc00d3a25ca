// api.go implements the JSON API and the form actions used by the browser.
//
// Separated from pages.go because these handlers share one response shape
// (the JSON envelope from respond.go) and one audit rule: every change to
// the tree is written to the audit log under "http:{route}" with author
// "http". Reads are not audited; a busy browser would flood the log.

package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/jpl-au/mdfiles/internal/files"
	"github.com/jpl-au/mdfiles/internal/log"
)

// maxMultipartMemory is how much of an upload is held in memory before
// spilling to temporary files.
const maxMultipartMemory = 32 << 20

// author is recorded against every change made over HTTP.
const author = "http"

func (s *Server) handleAPIList(w http.ResponseWriter, r *http.Request) {
	l, err := s.svc.List(r.Context(), r.URL.Query().Get("path"))
	if err != nil {
		s.fail(w, err)
		return
	}
	s.ok(w, "", payload{
		"path":    l.Path,
		"parent":  l.Parent,
		"items":   l.Items,
		"skipped": l.Skipped,
	})
}

func (s *Server) handleAPIRead(w http.ResponseWriter, r *http.Request) {
	doc, err := s.svc.Read(r.Context(), r.URL.Query().Get("path"))
	if err != nil {
		s.fail(w, err)
		return
	}
	s.ok(w, "", payload{
		"path":     doc.Path,
		"metadata": doc.Metadata,
		"content":  doc.Body,
		"tags":     doc.Tags,
	})
}

// writeRequest is the body of POST /api/write.
type writeRequest struct {
	Content *string `json:"content"`
}

func (s *Server) handleAPIWrite(w http.ResponseWriter, r *http.Request) {
	p := r.URL.Query().Get("path")
	if p == "" {
		s.badRequest(w, "path is required")
		return
	}

	var req writeRequest
	body := http.MaxBytesReader(w, r.Body, s.maxBody)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			s.fail(w, fmt.Errorf("%w: request body exceeds %d bytes", files.ErrTooLarge, tooBig.Limit))
			return
		}
		s.badRequest(w, "invalid JSON body")
		return
	}
	if req.Content == nil {
		s.badRequest(w, "content is required")
		return
	}

	res, err := s.svc.Write(r.Context(), p, *req.Content)

	b := log.Event("http:write", "write").Author(author).Path(p)
	if err == nil {
		b.Resolved(res.Path).Detail("bytes", res.Bytes).Detail("created", res.Created)
	}
	b.Write(err)

	if err != nil {
		s.fail(w, err)
		return
	}
	s.ok(w, "File saved", payload{"path": res.Path, "bytes": res.Bytes, "created": res.Created})
}

func (s *Server) handleAPISearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := q.Get("q")
	if strings.TrimSpace(query) == "" {
		s.badRequest(w, "query is required")
		return
	}
	res, err := s.svc.Search(r.Context(), query, q.Get("path"), recursiveParam(q.Get("recursive")))
	if err != nil {
		s.fail(w, err)
		return
	}
	s.ok(w, "", payload{"results": res.Results, "skipped": res.Skipped})
}

// handleUpload stores every file in the "files" field into the directory
// named by "path". Empty parts (a form submitted with no file chosen) are
// ignored. The first failure stops the upload; files already stored stay.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		s.badRequest(w, "invalid multipart form")
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	dir := r.FormValue("path")
	var stored []files.WriteResult
	for _, fh := range r.MultipartForm.File["files"] {
		if fh.Size == 0 {
			continue
		}
		res, err := s.upload(r, dir, fh)

		b := log.Event("http:upload", "upload").Author(author).Path(dir).Detail("name", fh.Filename)
		if err == nil {
			b.Resolved(res.Path).Detail("bytes", res.Bytes)
		}
		b.Write(err)

		if err != nil {
			s.fail(w, err)
			return
		}
		stored = append(stored, res)
	}
	if len(stored) == 0 {
		s.badRequest(w, "no files uploaded")
		return
	}
	s.ok(w, fmt.Sprintf("%d file(s) uploaded", len(stored)), payload{"files": stored})
}

// upload opens one multipart part and hands it to the service.
func (s *Server) upload(r *http.Request, dir string, fh *multipart.FileHeader) (files.WriteResult, error) {
	f, err := fh.Open()
	if err != nil {
		return files.WriteResult{}, fmt.Errorf("opening upload: %w", err)
	}
	defer f.Close()
	return s.svc.Upload(r.Context(), dir, fh.Filename, f)
}

func (s *Server) handleMkdir(w http.ResponseWriter, r *http.Request) {
	dir, name := r.FormValue("path"), r.FormValue("name")
	if strings.TrimSpace(name) == "" {
		s.badRequest(w, "name is required")
		return
	}

	created, err := s.svc.Mkdir(r.Context(), dir, name)
	log.Event("http:mkdir", "mkdir").Author(author).Path(dir).Resolved(created).Detail("name", name).Write(err)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.ok(w, "Folder created", payload{"path": created})
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	p := r.FormValue("path")
	if p == "" {
		s.badRequest(w, "path is required")
		return
	}
	isDir, _ := strconv.ParseBool(r.FormValue("isDirectory"))

	err := s.svc.Delete(r.Context(), p, isDir)
	log.Event("http:delete", "delete").Author(author).Path(p).Detail("directory", isDir).Write(err)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.ok(w, "Deleted", nil)
}

func (s *Server) handleRename(w http.ResponseWriter, r *http.Request) {
	p, newName := r.FormValue("path"), r.FormValue("newName")
	if p == "" || strings.TrimSpace(newName) == "" {
		s.badRequest(w, "path and newName are required")
		return
	}

	renamed, err := s.svc.Rename(r.Context(), p, newName)
	log.Event("http:rename", "rename").Author(author).Path(p).Resolved(renamed).Write(err)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.ok(w, "Renamed", payload{"path": renamed})
}
