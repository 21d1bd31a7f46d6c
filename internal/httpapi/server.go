// Package httpapi exposes document generation over HTTP.
//
// One endpoint does the work: POST /generate accepts a config document
// (JSON, same schema as the CLI --config file) and responds with the
// generated archive. The server is stateless; every request is an
// independent generation run.
package httpapi

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	hwpxgen "github.com/alnah/go-hwpxgen"
)

// MaxConfigBytes caps the request body size.
const MaxConfigBytes = 4 << 20

// Generator renders a content model to archive bytes.
type Generator interface {
	GenerateBytes(ctx context.Context, doc *hwpxgen.Document) ([]byte, error)
}

// Server is the HTTP API server.
type Server struct {
	router chi.Router
	gen    Generator
	log    *log.Logger
	apiKey string
}

// NewServer creates and configures the HTTP server. An empty apiKey
// disables authentication.
func NewServer(gen Generator, logger *log.Logger, apiKey string) *Server {
	s := &Server{gen: gen, log: logger, apiKey: apiKey}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	r.Get("/health", s.handleHealth)

	r.Group(func(r chi.Router) {
		if s.apiKey != "" {
			r.Use(AuthMiddleware(s.apiKey))
		}
		r.Post("/generate", s.handleGenerate)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	genID := uuid.NewString()

	body, err := io.ReadAll(io.LimitReader(r.Body, MaxConfigBytes+1))
	if err != nil {
		writeError(w, http.StatusBadRequest, "reading request body failed")
		return
	}
	if len(body) > MaxConfigBytes {
		writeError(w, http.StatusRequestEntityTooLarge, "config exceeds size limit")
		return
	}

	doc, err := hwpxgen.BuildDocument(body)
	if err != nil {
		s.log.Warn("config rejected", "generation_id", genID, "err", err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	data, err := s.gen.GenerateBytes(r.Context(), doc)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, hwpxgen.ErrStyleNotFound) || errors.Is(err, hwpxgen.ErrConfigSchema) {
			status = http.StatusBadRequest
		}
		s.log.Error("generation failed", "generation_id", genID, "err", err)
		writeError(w, status, err.Error())
		return
	}

	s.log.Info("generated", "generation_id", genID, "bytes", len(data), "sections", len(doc.Sections))

	w.Header().Set("Content-Type", hwpxgen.Mimetype)
	w.Header().Set("Content-Disposition", `attachment; filename="document.hwpx"`)
	w.Header().Set("X-Generation-Id", genID)
	_, _ = w.Write(data)
}
