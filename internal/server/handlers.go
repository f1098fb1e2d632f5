package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/brdgme/markup/pkg/buildinfo"
	"github.com/brdgme/markup/pkg/pipeline"
	"github.com/brdgme/markup/pkg/render"
)

// RenderRequest is the body of POST /render.
type RenderRequest struct {
	Template string   `json:"template"`
	Players  []string `json:"players,omitempty"`
	Format   string   `json:"format,omitempty"`
	Refresh  bool     `json:"refresh,omitempty"`
}

// RenderResponse is the JSON reply to POST /render.
type RenderResponse struct {
	Output   string `json:"output"`
	Format   string `json:"format"`
	CacheHit bool   `json:"cache_hit"`
}

// ParseRequest is the body of POST /parse.
type ParseRequest struct {
	Template    string   `json:"template"`
	Players     []string `json:"players,omitempty"`
	Transformed bool     `json:"transformed,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, buildinfo.Get())
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	var req RenderRequest
	if !decode(w, r, &req) {
		return
	}
	if req.Format == "" {
		req.Format = s.format
	}

	res, err := s.runner.Execute(r.Context(), pipeline.Options{
		Template: req.Template,
		Players:  req.Players,
		Format:   req.Format,
		Refresh:  req.Refresh,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	setCacheHeader(w, res.CacheHit)
	if res.Format == render.FormatHTML && acceptsHTML(r) {
		w.Header().Set("Content-Type", res.Format.ContentType())
		_, _ = w.Write(res.Output)
		return
	}
	writeJSON(w, http.StatusOK, RenderResponse{
		Output:   string(res.Output),
		Format:   string(res.Format),
		CacheHit: res.CacheHit,
	})
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	var req ParseRequest
	if !decode(w, r, &req) {
		return
	}

	data, hit, err := s.runner.Tree(r.Context(), pipeline.TreeOptions{
		Template:    req.Template,
		Players:     req.Players,
		Transformed: req.Transformed,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	setCacheHeader(w, hit)
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(data)
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		status := http.StatusBadRequest
		if _, ok := err.(*http.MaxBytesError); ok {
			status = http.StatusRequestEntityTooLarge
		}
		jsonError(w, "invalid request body: "+err.Error(), status)
		return false
	}
	return true
}

func acceptsHTML(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}

func setCacheHeader(w http.ResponseWriter, hit bool) {
	if hit {
		w.Header().Set("X-Cache", "HIT")
	} else {
		w.Header().Set("X-Cache", "MISS")
	}
}
