package api

// WorkspaceListResponse представляет ответ со списком рабочих пространств
type WorkspaceListResponse struct {
	Workspaces []WorkspaceInfo `json:"workspaces"`
}

// HealthResponse представляет ответ health check
type HealthResponse struct {
	Status  string `json:"status"`  // "ok"
	Version string `json:"version"` // версия сервера
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // описание ошибки
	Message string `json:"message,omitempty"` // дополнительное сообщение
}
