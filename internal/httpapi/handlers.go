package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"leafs-result-service/internal/poller"
	"leafs-result-service/internal/store"
)

// Handler wires HTTP routes to the result store.
type Handler struct {
	results  store.ResultStore
	logger   *slog.Logger
	statusFn func() poller.Status
}

// NewHandler constructs a Handler.
func NewHandler(results store.ResultStore, logger *slog.Logger, statusFn func() poller.Status) *Handler {
	return &Handler{
		results:  results,
		logger:   logger,
		statusFn: statusFn,
	}
}

// Health reports liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic based on poller health.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.statusFn == nil || h.statusFn().IsReady() {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	writeError(w, r, http.StatusServiceUnavailable, "poller has not completed a cycle", h.logger)
}

// ListResults returns every stored result, newest game first.
func (h *Handler) ListResults(w http.ResponseWriter, r *http.Request) {
	results, err := h.results.ListResults(r.Context())
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "result store unavailable", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"results": results}, h.logger)
}

// ListResultIDs returns the stored game ids.
func (h *Handler) ListResultIDs(w http.ResponseWriter, r *http.Request) {
	ids, err := h.results.ListResultIDs(r.Context())
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "result store unavailable", h.logger)
		return
	}
	if ids == nil {
		ids = []string{}
	}
	writeJSON(w, http.StatusOK, map[string][]string{"gameIds": ids}, h.logger)
}

// ResultByID returns a single stored result or 404.
func (h *Handler) ResultByID(w http.ResponseWriter, r *http.Request) {
	gameID := chi.URLParam(r, "gameID")
	if gameID == "" {
		writeError(w, r, http.StatusBadRequest, "invalid game id", h.logger)
		return
	}

	result, found, err := h.results.GetResult(r.Context(), gameID)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "result store unavailable", h.logger)
		return
	}
	if !found {
		writeError(w, r, http.StatusNotFound, "result not found", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, result, h.logger)
}
