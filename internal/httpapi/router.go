package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"leafs-result-service/internal/metrics"
)

// NewRouter registers the read-only API consumed by the rendering layer.
func NewRouter(handler *Handler, logger *slog.Logger, recorder *metrics.Recorder) http.Handler {
	r := chi.NewRouter()
	r.Use(RequestLogger(logger, recorder))

	r.Get("/health", handler.Health)
	r.Get("/ready", handler.Ready)
	r.Get("/results", handler.ListResults)
	r.Get("/results/ids", handler.ListResultIDs)
	r.Get("/results/{gameID}", handler.ResultByID)

	return r
}
