// Package http exposes tree rendering over HTTP.
//
// The server is stateless: every request carries a full tree definition
// (pkg/codec YAML, or JSON since YAML is a superset) and receives the
// rendered aggregate back. Nothing is stored between requests, which keeps
// the adapter free of session or persistence concerns.
package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/canopy"
	"github.com/aretw0/canopy/internal/logging"
	"github.com/aretw0/canopy/internal/presentation/graph"
	"github.com/aretw0/canopy/pkg/codec"
)

// maxBodyBytes caps tree definitions; a render response grows with the
// input, so unbounded bodies would let one request balloon memory.
const maxBodyBytes = 1 << 20

// Server handles tree rendering requests.
type Server struct {
	logger  *slog.Logger
	workers int
	metrics *metrics
}

// Option defines a functional option for configuring the Server.
type Option func(*Server)

// WithLogger sets a custom structured logger. The default discards logs.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithParallelism forwards the worker count to every render.
func WithParallelism(n int) Option {
	return func(s *Server) {
		s.workers = n
	}
}

// WithRegistry registers the server's metrics on reg instead of a private
// registry. Pass prometheus.DefaultRegisterer to share the process-wide
// registry.
func WithRegistry(reg prometheus.Registerer) Option {
	return func(s *Server) {
		s.metrics = newMetrics(reg)
	}
}

// RenderResponse is the JSON body returned by POST /render.
type RenderResponse struct {
	Result string       `json:"result"`
	Stats  canopy.Stats `json:"stats"`
}

// ErrorResponse is the JSON body returned on failures.
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewHandler creates the HTTP handler. Routes:
//
//	POST /render  tree definition -> rendered aggregate + stats
//	POST /graph   tree definition -> Mermaid flowchart (text/plain)
//	GET  /healthz liveness probe
//	GET  /metrics prometheus metrics
func NewHandler(opts ...Option) http.Handler {
	s := &Server{
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.metrics == nil {
		reg := prometheus.NewRegistry()
		s.metrics = newMetrics(reg)
	}

	r := chi.NewRouter()
	r.Post("/render", s.handleRender)
	r.Post("/graph", s.handleGraph)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.metrics.gatherer, promhttp.HandlerOpts{}))
	return r
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	tree, ok := s.decodeTree(w, r)
	if !ok {
		return
	}

	result := tree.Render()
	stats := tree.Stats()

	s.metrics.renders.Inc()
	s.metrics.renderNodes.Observe(float64(stats.Nodes))
	s.logger.Info("tree rendered", "nodes", stats.Nodes, "depth", stats.Depth)

	writeJSON(w, http.StatusOK, RenderResponse{Result: result, Stats: stats})
}

func (s *Server) handleGraph(w http.ResponseWriter, r *http.Request) {
	tree, ok := s.decodeTree(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(graph.GenerateMermaid(tree.Root())))
}

func (s *Server) decodeTree(w http.ResponseWriter, r *http.Request) (*canopy.Tree, bool) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "failed to read body"})
		return nil, false
	}

	root, err := codec.Decode(body)
	if err != nil {
		s.logger.Warn("rejected tree definition", "err", err)
		writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
		return nil, false
	}

	tree, err := canopy.New(root, canopy.WithLogger(s.logger), canopy.WithParallelism(s.workers))
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
		return nil, false
	}
	return tree, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "err", err)
	}
}
