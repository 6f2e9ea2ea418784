package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/netcanvas/netcanvas/pkg/diagram"
	"github.com/netcanvas/netcanvas/pkg/errors"
	"github.com/netcanvas/netcanvas/pkg/layout"
	"github.com/netcanvas/netcanvas/pkg/pipeline"
)

// =============================================================================
// Layout Endpoints
// =============================================================================

// layoutRequest is the body of POST /api/layout.
type layoutRequest struct {
	Diagram *diagram.Diagram `json:"diagram"`
	Options pipeline.Options `json:"options"`
}

// layoutResponse wraps a layout diff with cache info.
type layoutResponse struct {
	Result   layout.Result `json:"result"`
	CacheHit bool          `json:"cache_hit"`
}

// handleLayout computes a layout diff for a diagram posted in the request.
// The diagram is not persisted; the client merges the diff itself.
func (s *Server) handleLayout(w http.ResponseWriter, req *http.Request) {
	var body layoutRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request body"))
		return
	}
	if body.Diagram == nil {
		writeError(w, errors.New(errors.ErrCodeInvalidInput, "diagram is required"))
		return
	}

	opts := s.applyDefaults(body.Options)
	res, hit, err := s.runner.ApplyWithCacheInfo(req.Context(), body.Diagram, opts)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, layoutResponse{Result: res, CacheHit: hit})
}

// dragRequest is the body of POST /api/layout/drag: one pointer-move tick.
type dragRequest struct {
	Node    diagram.Node   `json:"node"`
	Others  []diagram.Node `json:"others"`
	Options struct {
		MinClearance     float64 `json:"min_clearance,omitempty"`
		MaxNudgeDistance float64 `json:"max_nudge_distance,omitempty"`
		DevicesOnly      bool    `json:"devices_only,omitempty"`
	} `json:"options"`
}

// dragResponse carries the corrected position, or null when the dragged
// node overlaps nothing.
type dragResponse struct {
	Position *diagram.Point `json:"position"`
}

// handleDrag runs the single-node collision check used during live drag.
// Clients call this on every pointer-move tick; any debouncing is theirs.
func (s *Server) handleDrag(w http.ResponseWriter, req *http.Request) {
	var body dragRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request body"))
		return
	}

	pos := layout.AvoidCollisionForDragged(body.Node, body.Others, layout.CollisionOptions{
		MinClearance:     body.Options.MinClearance,
		MaxNudgeDistance: body.Options.MaxNudgeDistance,
		DevicesOnly:      body.Options.DevicesOnly,
	})
	writeJSON(w, http.StatusOK, dragResponse{Position: pos})
}

// =============================================================================
// Diagram CRUD
// =============================================================================

func (s *Server) handleListDiagrams(w http.ResponseWriter, req *http.Request) {
	summaries, err := s.store.List(req.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summaries)
}

func (s *Server) handleCreateDiagram(w http.ResponseWriter, req *http.Request) {
	var d diagram.Diagram
	if err := json.NewDecoder(req.Body).Decode(&d); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode diagram"))
		return
	}
	if err := errors.ValidateDiagram(&d); err != nil {
		writeError(w, err)
		return
	}

	d.ID = uuid.NewString()
	if err := s.store.Put(req.Context(), &d); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, d)
}

func (s *Server) handleGetDiagram(w http.ResponseWriter, req *http.Request) {
	d, err := s.store.Get(req.Context(), chi.URLParam(req, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (s *Server) handlePutDiagram(w http.ResponseWriter, req *http.Request) {
	var d diagram.Diagram
	if err := json.NewDecoder(req.Body).Decode(&d); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode diagram"))
		return
	}
	d.ID = chi.URLParam(req, "id")
	if err := errors.ValidateDiagram(&d); err != nil {
		writeError(w, err)
		return
	}
	if err := s.store.Put(req.Context(), &d); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (s *Server) handleDeleteDiagram(w http.ResponseWriter, req *http.Request) {
	if err := s.store.Delete(req.Context(), chi.URLParam(req, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleLayoutStored lays out a stored diagram, persists the merged result,
// and returns the updated diagram.
func (s *Server) handleLayoutStored(w http.ResponseWriter, req *http.Request) {
	id := chi.URLParam(req, "id")

	d, err := s.store.Get(req.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	var opts pipeline.Options
	if req.ContentLength != 0 {
		if err := json.NewDecoder(req.Body).Decode(&opts); err != nil {
			writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode options"))
			return
		}
	}
	opts = s.applyDefaults(opts)

	res, err := s.runner.Apply(req.Context(), d, opts)
	if err != nil {
		writeError(w, err)
		return
	}

	d.ApplyPositions(res.Positions)
	d.ApplySizes(res.Sizes)
	if err := s.store.Put(req.Context(), d); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

// applyDefaults fills request options the client omitted from the server's
// configured layout defaults.
func (s *Server) applyDefaults(opts pipeline.Options) pipeline.Options {
	if opts.Direction == "" {
		opts.Direction = s.defaults.Direction
	}
	if opts.Tier == "" {
		opts.Tier = s.defaults.Tier
	}
	if opts.BaseUnit == 0 {
		opts.BaseUnit = s.defaults.BaseUnit
	}
	if opts.Padding == 0 {
		opts.Padding = s.defaults.Padding
	}
	opts.Logger = s.logger
	opts.Engine = s.engine
	return opts
}
