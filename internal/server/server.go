// Package server implements the NetCanvas HTTP API.
//
// The API exposes the layout pipeline and the diagram store:
//
//	POST   /api/layout              compute a layout diff for a posted diagram
//	POST   /api/layout/drag         single-node collision check for drag ticks
//	GET    /api/diagrams            list stored diagrams
//	POST   /api/diagrams            create a diagram (ID minted server-side)
//	GET    /api/diagrams/{id}       fetch a diagram
//	PUT    /api/diagrams/{id}       replace a diagram
//	DELETE /api/diagrams/{id}       delete a diagram
//	POST   /api/diagrams/{id}/layout  lay out a stored diagram and persist it
//
// Errors are returned as JSON objects carrying pkg/errors codes:
//
//	{"error": {"code": "DIAGRAM_NOT_FOUND", "message": "..."}}
package server

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/netcanvas/netcanvas/pkg/config"
	"github.com/netcanvas/netcanvas/pkg/layout"
	"github.com/netcanvas/netcanvas/pkg/observability"
	"github.com/netcanvas/netcanvas/pkg/pipeline"
	"github.com/netcanvas/netcanvas/pkg/store"
)

// Server wires the layout pipeline, the diagram store, and the HTTP router.
type Server struct {
	runner   *pipeline.Runner
	store    store.Store
	logger   *log.Logger
	defaults config.LayoutConfig
	engine   layout.Engine
}

// New creates a server. The runner and store are required; defaults fill
// request options the client omitted.
func New(runner *pipeline.Runner, st store.Store, defaults config.LayoutConfig, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		runner:   runner,
		store:    st,
		logger:   logger,
		defaults: defaults,
	}
}

// SetEngine overrides the layered layout engine used for requests. When unset
// the pipeline's default engine applies.
func (s *Server) SetEngine(e layout.Engine) {
	s.engine = e
}

// Router builds the chi router with all routes registered.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.observe)

	r.Get("/healthz", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Post("/layout", s.handleLayout)
		r.Post("/layout/drag", s.handleDrag)

		r.Route("/diagrams", func(r chi.Router) {
			r.Get("/", s.handleListDiagrams)
			r.Post("/", s.handleCreateDiagram)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.handleGetDiagram)
				r.Put("/", s.handlePutDiagram)
				r.Delete("/", s.handleDeleteDiagram)
				r.Post("/layout", s.handleLayoutStored)
			})
		})
	})

	return r
}

// observe emits request/response events to the observability hooks and logs
// completed requests.
func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		observability.Server().OnRequest(req.Context(), req.Method, req.URL.Path)

		ww := middleware.NewWrapResponseWriter(w, req.ProtoMajor)
		next.ServeHTTP(ww, req)

		duration := time.Since(start)
		observability.Server().OnResponse(req.Context(), req.Method, req.URL.Path, ww.Status(), duration)
		s.logger.Debug("request",
			"method", req.Method,
			"path", req.URL.Path,
			"status", ww.Status(),
			"duration", duration.Round(time.Millisecond))
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, req *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
