// Package server assembles the relay HTTP surface.
package server

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/iudanet/gophcollab/internal/server/handlers"
	"github.com/iudanet/gophcollab/internal/server/middleware"
	"github.com/iudanet/gophcollab/internal/server/storage"
)

// Deps - зависимости маршрутизатора
type Deps struct {
	Relay   handlers.Relay
	Store   storage.WorkspaceStorage
	Limiter *middleware.RateLimiter
	Logger  *slog.Logger
	Version string
}

// NewRouter регистрирует /ws и /api/v1/*. Health check не логируется и не
// ограничивается по частоте.
func NewRouter(d Deps) http.Handler {
	health := handlers.NewHealthHandler(d.Logger, d.Version)
	workspaces := handlers.NewWorkspaceHandler(d.Logger, d.Store)
	ws := handlers.NewWSHandler(d.Logger, d.Relay)

	r := mux.NewRouter()
	r.Use(middleware.Recovery(d.Logger), middleware.Logging(d.Logger, "/api/v1/health"))

	r.HandleFunc("/api/v1/health", health.Health).Methods(http.MethodGet)

	limited := r.NewRoute().Subrouter()
	if d.Limiter != nil {
		limited.Use(middleware.RateLimit(d.Limiter, d.Logger))
	}
	limited.HandleFunc("/api/v1/workspaces", workspaces.List).Methods(http.MethodGet)
	limited.HandleFunc("/ws", ws.Serve).Methods(http.MethodGet)

	return r
}
