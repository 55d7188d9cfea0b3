package handlers

import (
	"log/slog"
	"net/http"

	"github.com/iudanet/gophcollab/internal/server/storage"
	"github.com/iudanet/gophcollab/pkg/api"
)

// WorkspaceHandler отдает список сохраненных рабочих пространств
type WorkspaceHandler struct {
	logger  *slog.Logger
	storage storage.WorkspaceStorage
}

// NewWorkspaceHandler creates a new workspace listing handler
func NewWorkspaceHandler(logger *slog.Logger, storage storage.WorkspaceStorage) *WorkspaceHandler {
	return &WorkspaceHandler{
		logger:  logger,
		storage: storage,
	}
}

// List обрабатывает GET /api/v1/workspaces
func (h *WorkspaceHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.storage.ListWorkspaces(r.Context())
	if err != nil {
		h.logger.Error("Failed to list workspaces", "error", err)
		sendError(h.logger, w, "failed to list workspaces", http.StatusInternalServerError)
		return
	}

	resp := api.WorkspaceListResponse{Workspaces: make([]api.WorkspaceInfo, 0, len(list))}
	for _, ws := range list {
		resp.Workspaces = append(resp.Workspaces, api.WorkspaceInfo{
			ID:      ws.ID,
			Name:    ws.Name,
			Version: api.Int64(ws.Version),
		})
	}

	h.logger.Debug("Workspaces listed", "count", len(resp.Workspaces))
	sendJSON(h.logger, w, resp, http.StatusOK)
}
