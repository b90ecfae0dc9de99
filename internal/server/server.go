// Package server exposes the recommendation engine and document pipeline
// over HTTP. Routing is gorilla/mux; concurrency across requests is the
// net/http server's, the handlers hold no mutable state.
package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/finadvisor/finadvisor/internal/llm"
	"github.com/finadvisor/finadvisor/internal/pipeline"
	"github.com/finadvisor/finadvisor/internal/recommend"
)

type Server struct {
	engine        *recommend.Engine
	pipeline      *pipeline.Pipeline
	adviser       llm.Adviser
	uploadTimeout time.Duration
	logger        *slog.Logger
}

func New(engine *recommend.Engine, p *pipeline.Pipeline, adviser llm.Adviser, uploadTimeout time.Duration, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if uploadTimeout <= 0 {
		uploadTimeout = 2 * time.Minute
	}
	return &Server{
		engine:        engine,
		pipeline:      p,
		adviser:       adviser,
		uploadTimeout: uploadTimeout,
		logger:        logger,
	}
}

// Router builds the route table.
func (s *Server) Router() http.Handler {
	r := mux.NewRouter()
	r.Use(corsMiddleware, s.loggingMiddleware)

	r.HandleFunc("/get_investment_options", s.handleRecommend).Methods(http.MethodPost, http.MethodOptions)
	r.HandleFunc("/upload_file", s.handleUpload).Methods(http.MethodPost, http.MethodOptions)
	r.HandleFunc("/ask", s.handleAsk).Methods(http.MethodPost, http.MethodOptions)
	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
