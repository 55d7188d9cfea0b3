package validation

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	// MaxNameLen максимальная длина отображаемого имени в символах
	MaxNameLen = 32
	// DefaultWorkspaceID используется, если идентификатор пуст после очистки
	DefaultWorkspaceID = "main"
)

// workspaceIDForbidden matches everything outside [a-z0-9_-]
var workspaceIDForbidden = regexp.MustCompile(`[^a-z0-9_-]+`)

// SanitizeName схлопывает пробельные последовательности, обрезает края и
// ограничивает имя MaxNameLen символами.
func SanitizeName(name string) string {
	cleaned := strings.Join(strings.Fields(name), " ")
	runes := []rune(cleaned)
	if len(runes) > MaxNameLen {
		cleaned = strings.TrimSpace(string(runes[:MaxNameLen]))
	}
	return cleaned
}

// ValidateName проверяет, что после очистки от имени что-то осталось
func ValidateName(name string) error {
	if SanitizeName(name) == "" {
		return fmt.Errorf("name cannot be empty")
	}
	return nil
}

// SanitizeWorkspaceID приводит идентификатор к нижнему регистру и оставляет
// только a-z, 0-9, '_' и '-'. Пустой результат заменяется на "main".
func SanitizeWorkspaceID(id string) string {
	cleaned := workspaceIDForbidden.ReplaceAllString(strings.ToLower(id), "")
	if cleaned == "" {
		return DefaultWorkspaceID
	}
	return cleaned
}
