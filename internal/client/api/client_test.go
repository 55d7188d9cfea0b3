package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gophcollab/pkg/api"
)

// TestNewClient проверяет создание нового клиента
func TestNewClient(t *testing.T) {
	client := NewClient("http://localhost:8080/")

	assert.NotNil(t, client)
	assert.Equal(t, "http://localhost:8080", client.baseURL)
	assert.Equal(t, 30*time.Second, client.httpClient.Timeout)
}

func TestClient_ListWorkspaces(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/workspaces", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(api.WorkspaceListResponse{
			Workspaces: []api.WorkspaceInfo{
				{ID: "main", Name: "Main Workspace", Version: api.Int64(12)},
				{ID: "notes", Name: "Untitled Workspace"},
			},
		})
	}))
	defer server.Close()

	resp, err := NewClient(server.URL).ListWorkspaces(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Workspaces, 2)
	assert.Equal(t, "main", resp.Workspaces[0].ID)
	require.NotNil(t, resp.Workspaces[0].Version)
	assert.Equal(t, int64(12), *resp.Workspaces[0].Version)
	assert.Nil(t, resp.Workspaces[1].Version)
}

func TestClient_Health(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/health", r.URL.Path)
		_ = json.NewEncoder(w).Encode(api.HealthResponse{Status: "ok", Version: "1.2.3"})
	}))
	defer server.Close()

	resp, err := NewClient(server.URL).Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "1.2.3", resp.Version)
}

func TestClient_ServerErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
		status  int
	}{
		{
			name:    "error response",
			status:  http.StatusInternalServerError,
			body:    `{"error":"storage unavailable"}`,
			wantErr: "server error (500): storage unavailable",
		},
		{
			name:    "message wins over error",
			status:  http.StatusBadRequest,
			body:    `{"error":"bad request","message":"workspace id is invalid"}`,
			wantErr: "server error (400): workspace id is invalid",
		},
		{
			name:    "plain text body",
			status:  http.StatusBadGateway,
			body:    "upstream down",
			wantErr: "request failed with status 502: upstream down",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			_, err := NewClient(server.URL).ListWorkspaces(context.Background())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestClient_InvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{"))
	}))
	defer server.Close()

	_, err := NewClient(server.URL).Health(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode response")
}

func TestClient_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()

	_, err := NewClient(server.URL).Health(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "request failed")
}
