package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/soerensenkarl/DrawTruss/pkg/cache"
	"github.com/soerensenkarl/DrawTruss/pkg/errors"
	"github.com/soerensenkarl/DrawTruss/pkg/pipeline"
	"github.com/soerensenkarl/DrawTruss/pkg/sketch"
	"github.com/soerensenkarl/DrawTruss/pkg/store"
	"github.com/soerensenkarl/DrawTruss/pkg/truss"
)

// maxBodySize caps vectorize request bodies at 8 MiB. A hand-drawn
// sketch is a few kilobytes; anything near this limit is abuse.
const maxBodySize = 8 << 20

type vectorizeResponse struct {
	ID        string      `json:"id,omitempty"`
	GraphHash string      `json:"graph_hash"`
	Graph     truss.Graph `json:"graph"`
	Nodes     int         `json:"nodes"`
	Edges     int         `json:"edges"`
	Cached    bool        `json:"cached"`
}

// handleVectorize handles POST /api/v1/vectorize. The body is a sketch
// document, optionally extended with save/name fields:
//
//	{"strokes": [[[0,0],[100,100]]], "snap_radius": 10, "save": true, "name": "bridge"}
func (s *Server) handleVectorize(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		respondError(w, http.StatusBadRequest, "read request body")
		return
	}

	sk, err := sketch.ReadJSON(bytes.NewReader(body))
	if err != nil {
		respondCodedError(w, err)
		return
	}

	var meta struct {
		Save bool   `json:"save,omitempty"`
		Name string `json:"name,omitempty"`
	}
	_ = json.Unmarshal(body, &meta)

	opts := pipeline.Options{
		SnapRadius: sk.SnapRadius,
		Epsilon:    sk.Epsilon,
		Logger:     s.logger,
	}
	g, cached, err := s.runner.VectorizeWithCacheInfo(r.Context(), sk, opts)
	if err != nil {
		respondCodedError(w, err)
		return
	}

	resp := vectorizeResponse{
		Graph:  g,
		Nodes:  g.NodeCount(),
		Edges:  g.EdgeCount(),
		Cached: cached,
	}
	if data, err := truss.Marshal(g); err == nil {
		resp.GraphHash = cache.Hash(data)
	}

	if meta.Save {
		if s.store == nil {
			respondError(w, http.StatusNotImplemented, "graph persistence is not configured")
			return
		}
		rec, err := s.store.Save(r.Context(), store.Record{Name: meta.Name, Graph: g})
		if err != nil {
			respondCodedError(w, err)
			return
		}
		resp.ID = rec.ID
		respondJSON(w, http.StatusCreated, resp)
		return
	}

	respondJSON(w, http.StatusOK, resp)
}

// handleListGraphs handles GET /api/v1/graphs.
func (s *Server) handleListGraphs(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		respondError(w, http.StatusNotImplemented, "graph persistence is not configured")
		return
	}
	records, err := s.store.List(r.Context())
	if err != nil {
		respondCodedError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"graphs": records})
}

// handleGetGraph handles GET /api/v1/graphs/{graphID}. With a ?format=
// query parameter the stored graph is rendered instead of returned as
// a record.
func (s *Server) handleGetGraph(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		respondError(w, http.StatusNotImplemented, "graph persistence is not configured")
		return
	}
	id := chi.URLParam(r, "graphID")
	if err := errors.ValidateGraphID(id); err != nil {
		respondCodedError(w, err)
		return
	}

	rec, err := s.store.Get(r.Context(), id)
	if err != nil {
		respondCodedError(w, err)
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		respondJSON(w, http.StatusOK, rec)
		return
	}

	opts := pipeline.Options{
		Formats: []string{format},
		Style:   r.URL.Query().Get("style"),
		Labels:  r.URL.Query().Get("labels") == "true",
		Logger:  s.logger,
	}
	artifacts, err := s.runner.Render(r.Context(), rec.Graph, opts)
	if err != nil {
		respondCodedError(w, err)
		return
	}

	w.Header().Set("Content-Type", contentType(format))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(artifacts[format])
}

// handleDeleteGraph handles DELETE /api/v1/graphs/{graphID}.
func (s *Server) handleDeleteGraph(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		respondError(w, http.StatusNotImplemented, "graph persistence is not configured")
		return
	}
	id := chi.URLParam(r, "graphID")
	if err := errors.ValidateGraphID(id); err != nil {
		respondCodedError(w, err)
		return
	}
	if err := s.store.Delete(r.Context(), id); err != nil {
		respondCodedError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func contentType(format string) string {
	switch format {
	case pipeline.FormatSVG:
		return "image/svg+xml"
	case pipeline.FormatJSON:
		return "application/json"
	case pipeline.FormatDOT:
		return "text/vnd.graphviz"
	case pipeline.FormatPNG:
		return "image/png"
	default:
		return "application/octet-stream"
	}
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondCodedError maps a coded error onto an HTTP status and hides
// internal details behind its user message.
func respondCodedError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.ErrCodeGraphNotFound, errors.ErrCodeNotFound, errors.ErrCodeFileNotFound:
		status = http.StatusNotFound
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidSketch, errors.ErrCodeInvalidSnapRadius,
		errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidStyle, errors.ErrCodeInvalidPath:
		status = http.StatusBadRequest
	}
	respondError(w, status, errors.UserMessage(err))
}
