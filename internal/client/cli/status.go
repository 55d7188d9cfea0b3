package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Client Status ===")
	c.io.Println()

	name, err := c.prefs.GetDisplayName(ctx)
	if err != nil {
		return fmt.Errorf("failed to read display name: %w", err)
	}
	workspace, err := c.prefs.GetLastWorkspace(ctx)
	if err != nil {
		return fmt.Errorf("failed to read last workspace: %w", err)
	}

	c.io.Printf("Display name:   %s\n", orNotSet(name))
	c.io.Printf("Last workspace: %s\n", orNotSet(workspace))
	c.io.Printf("Server:         %s\n", c.opts.Server)

	// Недоступность сервера не ошибка команды
	health, err := c.apiClient.Health(ctx)
	if err != nil {
		c.io.Printf("Server status:  unreachable (%v)\n", err)
		return nil
	}
	c.io.Printf("Server status:  %s (version %s)\n", health.Status, health.Version)
	return nil
}

func orNotSet(s string) string {
	if s == "" {
		return "(not set)"
	}
	return s
}
