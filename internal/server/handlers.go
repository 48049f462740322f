package server

import (
	_ "crypto/sha256" // registers digest.SHA256
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"path"
	"strconv"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/opencontainers/go-digest"

	"github.com/esvolkov/ukase"
	"github.com/esvolkov/ukase/internal/filter"
)

func (s *Server) healthz(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, "ok\n")
}

// catchAll returns a catch-all parameter without its leading slash.
func catchAll(ps httprouter.Params, key string) string {
	return strings.TrimPrefix(ps.ByName(key), "/")
}

func (s *Server) getTemplate(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	s.serveTemplate(w, r, catchAll(ps, "name"))
}

func (s *Server) getUpload(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	s.serveTemplate(w, r, ukase.UploadPrefix+ps.ByName("name"))
}

func (s *Server) serveTemplate(w http.ResponseWriter, r *http.Request, name string) {
	src, err := s.loader.Resolve(name)
	if err != nil {
		s.writeLoaderError(w, r, err)
		return
	}
	w.Header().Set(HeaderResourceKind, string(src.Kind()))
	if src.Cleared() {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	content, err := src.Content()
	if err != nil {
		s.writeLoaderError(w, r, err)
		return
	}

	etag := strconv.Quote(digest.FromString(content).String())
	w.Header().Set("ETag", etag)
	if mod := src.LastModified(); !mod.IsZero() {
		w.Header().Set("Last-Modified", mod.UTC().Format(http.TimeFormat))
	}
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(len(content)))
	_, _ = io.WriteString(w, content)
}

func (s *Server) getResource(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	name := catchAll(ps, "name")
	data, err := s.loader.ResourceBytes(name)
	if err != nil {
		s.writeLoaderError(w, r, err)
		return
	}

	etag := strconv.Quote(digest.FromBytes(data).String())
	w.Header().Set("ETag", etag)
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("Content-Type", contentType(name, data))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	_, _ = w.Write(data)
}

func (s *Server) headResource(w http.ResponseWriter, _ *http.Request, ps httprouter.Params) {
	if !s.loader.HasResource(catchAll(ps, "name")) {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// listing is the JSON body of GET /resources.
type listing struct {
	Filter    string   `json:"filter,omitempty"`
	Resources []string `json:"resources"`
}

func (s *Server) listResources(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	f, err := filter.Compile(r.URL.Query().Get("filter"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	names := s.loader.ListResources(f.Predicate())
	if names == nil {
		names = []string{}
	}
	writeJSON(w, http.StatusOK, listing{Filter: f.String(), Resources: names})
}

func (s *Server) putUpload(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	name := ps.ByName("name")
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.maxUpload))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, r, http.StatusRequestEntityTooLarge, "upload exceeds "+strconv.FormatInt(tooLarge.Limit, 10)+" bytes")
			return
		}
		writeError(w, r, http.StatusBadRequest, "reading upload: "+err.Error())
		return
	}

	s.loader.Upload(name, string(body))
	s.log.Info("template uploaded",
		"request_id", RequestID(r.Context()),
		"name", name,
		"bytes", len(body),
	)
	w.Header().Set("Location", "/uploads/"+name)
	w.WriteHeader(http.StatusCreated)
}

func (s *Server) deleteUpload(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	name := ps.ByName("name")
	s.loader.ClearUpload(name)
	s.log.Info("upload cleared", "request_id", RequestID(r.Context()), "name", name)
	w.WriteHeader(http.StatusNoContent)
}

// statusFor maps loader errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, ukase.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ukase.ErrInvalidPath):
		return http.StatusBadRequest
	case errors.Is(err, ukase.ErrConfiguration):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeLoaderError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.log.Error("resource lookup failed",
			"request_id", RequestID(r.Context()),
			"path", r.URL.Path,
			"error", err,
		)
	}
	writeError(w, r, status, err.Error())
}

// errorBody is the JSON body of every error response.
type errorBody struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, status, errorBody{Error: msg, RequestID: RequestID(r.Context())})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

// contentType guesses the media type from the extension, then the content.
func contentType(name string, data []byte) string {
	if ct := mime.TypeByExtension(path.Ext(name)); ct != "" {
		return ct
	}
	return http.DetectContentType(data)
}
