package cli

import (
	"context"
	"fmt"
	"strconv"
)

func (c *Cli) runWorkspaces(ctx context.Context) error {
	resp, err := c.apiClient.ListWorkspaces(ctx)
	if err != nil {
		return fmt.Errorf("failed to list workspaces: %w", err)
	}

	current, err := c.prefs.GetLastWorkspace(ctx)
	if err != nil {
		c.logger.Warn("Failed to read last workspace", "error", err)
	}

	if len(resp.Workspaces) == 0 {
		c.io.Println("No workspaces")
		return nil
	}

	c.io.Printf("  %-20s %-28s %s\n", "ID", "NAME", "VERSION")
	for _, ws := range resp.Workspaces {
		mark := " "
		if ws.ID == current {
			mark = "*"
		}
		version := "-"
		if ws.Version != nil {
			version = strconv.FormatInt(*ws.Version, 10)
		}
		c.io.Printf("%s %-20s %-28s %s\n", mark, ws.ID, ws.Name, version)
	}
	return nil
}
