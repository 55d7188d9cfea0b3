package storage

import (
	"context"

	"github.com/iudanet/gophcollab/internal/models"
)

//go:generate moq -out workspace_mock.go . WorkspaceStorage

// WorkspaceStorage defines interface for workspace snapshot persistence
type WorkspaceStorage interface {
	// SaveWorkspace creates or replaces the workspace snapshot.
	// CreatedAt of an existing workspace is preserved.
	SaveWorkspace(ctx context.Context, ws *models.Workspace) error

	// GetWorkspace retrieves a workspace by ID
	// Returns ErrWorkspaceNotFound if workspace doesn't exist
	GetWorkspace(ctx context.Context, id string) (*models.Workspace, error)

	// ListWorkspaces returns all workspaces ordered by ID
	// Returns empty slice if none exist
	ListWorkspaces(ctx context.Context) ([]*models.Workspace, error)
}
