package cli

import (
	"context"
	"errors"
	"fmt"
)

// ErrUnknownCommand is returned by Run for an unrecognized command.
var ErrUnknownCommand = errors.New("unknown command")

// Run executes one top-level command.
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "connect":
		return c.runConnect(ctx)
	case "status":
		return c.runStatus(ctx)
	case "name":
		return c.runName(ctx, args)
	case "workspace":
		return c.runWorkspace(ctx, args)
	case "workspaces":
		return c.runWorkspaces(ctx)
	default:
		PrintUsage(c.io)
		return fmt.Errorf("%w: %s", ErrUnknownCommand, command)
	}
}
