package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/gophcollab/internal/models"
	"github.com/iudanet/gophcollab/internal/server/storage"
)

// SaveWorkspace creates or replaces a workspace snapshot
func (s *Storage) SaveWorkspace(ctx context.Context, ws *models.Workspace) error {
	segments := ws.Segments
	if segments == nil {
		segments = []models.Segment{}
	}
	rawSegments, err := json.Marshal(segments)
	if err != nil {
		return fmt.Errorf("failed to marshal segments: %w", err)
	}

	now := time.Now().UTC()
	if ws.CreatedAt.IsZero() {
		ws.CreatedAt = now
	}
	ws.UpdatedAt = now

	query := `
		INSERT INTO workspaces (id, name, text, segments, version, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			text = excluded.text,
			segments = excluded.segments,
			version = excluded.version,
			updated_at = excluded.updated_at
	`

	_, err = s.db.ExecContext(ctx, query,
		ws.ID,
		ws.Name,
		ws.Text,
		string(rawSegments),
		ws.Version,
		ws.CreatedAt,
		ws.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save workspace: %w", err)
	}

	return nil
}

// GetWorkspace retrieves a workspace by ID
func (s *Storage) GetWorkspace(ctx context.Context, id string) (*models.Workspace, error) {
	query := `
		SELECT id, name, text, segments, version, created_at, updated_at
		FROM workspaces
		WHERE id = ?
	`

	ws, err := scanWorkspace(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrWorkspaceNotFound
		}
		return nil, fmt.Errorf("failed to get workspace: %w", err)
	}

	return ws, nil
}

// ListWorkspaces returns all workspaces ordered by ID
func (s *Storage) ListWorkspaces(ctx context.Context) ([]*models.Workspace, error) {
	query := `
		SELECT id, name, text, segments, version, created_at, updated_at
		FROM workspaces
		ORDER BY id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list workspaces: %w", err)
	}
	defer rows.Close()

	list := make([]*models.Workspace, 0)
	for rows.Next() {
		ws, err := scanWorkspace(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan workspace: %w", err)
		}
		list = append(list, ws)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate workspaces: %w", err)
	}

	return list, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanWorkspace(row rowScanner) (*models.Workspace, error) {
	ws := &models.Workspace{}
	var rawSegments string

	if err := row.Scan(
		&ws.ID,
		&ws.Name,
		&ws.Text,
		&rawSegments,
		&ws.Version,
		&ws.CreatedAt,
		&ws.UpdatedAt,
	); err != nil {
		return nil, err
	}

	// Поврежденные сегменты не должны ломать загрузку документа
	if err := json.Unmarshal([]byte(rawSegments), &ws.Segments); err != nil {
		ws.Segments = nil
	}

	return ws, nil
}
