package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/iudanet/gophcollab/pkg/api"
)

//go:generate moq -out client_mock.go . ClientAPI

// ClientAPI описывает HTTP API сервера, используемое клиентом
type ClientAPI interface {
	// ListWorkspaces возвращает список рабочих пространств
	ListWorkspaces(ctx context.Context) (*api.WorkspaceListResponse, error)

	// Health проверяет доступность сервера
	Health(ctx context.Context) (*api.HealthResponse, error)
}

var _ ClientAPI = (*Client)(nil)

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient создает новый API клиент
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// ListWorkspaces получает список рабочих пространств
func (c *Client) ListWorkspaces(ctx context.Context) (*api.WorkspaceListResponse, error) {
	var resp api.WorkspaceListResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/workspaces", nil, &resp); err != nil {
		return nil, fmt.Errorf("list workspaces request failed: %w", err)
	}
	return &resp, nil
}

// Health выполняет health check сервера
func (c *Client) Health(ctx context.Context) (*api.HealthResponse, error) {
	var resp api.HealthResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/health", nil, &resp); err != nil {
		return nil, fmt.Errorf("health request failed: %w", err)
	}
	return &resp, nil
}

// doRequest выполняет HTTP запрос
func (c *Client) doRequest(ctx context.Context, method, path string, body, result any) error {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && (errResp.Error != "" || errResp.Message != "") {
			msg := errResp.Error
			if errResp.Message != "" {
				msg = errResp.Message
			}
			return fmt.Errorf("server error (%d): %s", resp.StatusCode, msg)
		}
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	// Декодируем успешный ответ
	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
