package storage

import "context"

//go:generate moq -out prefs_mock.go . PrefsStorage

// PrefsStorage хранит локальные настройки клиента между запусками.
// Читается один раз при инициализации соединения.
type PrefsStorage interface {
	// SaveDisplayName сохраняет последнее выбранное отображаемое имя
	SaveDisplayName(ctx context.Context, name string) error

	// GetDisplayName возвращает сохраненное имя или пустую строку
	GetDisplayName(ctx context.Context) (string, error)

	// SaveLastWorkspace сохраняет идентификатор последнего рабочего пространства
	SaveLastWorkspace(ctx context.Context, workspaceID string) error

	// GetLastWorkspace возвращает сохраненный идентификатор или пустую строку
	GetLastWorkspace(ctx context.Context) (string, error)
}
