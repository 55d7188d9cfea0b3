package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/iudanet/gophcollab/internal/validation"
)

func (c *Cli) runName(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: gophcollab name <name>")
	}

	raw := strings.Join(args, " ")
	if err := validation.ValidateName(raw); err != nil {
		return fmt.Errorf("invalid name: %w", err)
	}
	name := validation.SanitizeName(raw)

	if err := c.prefs.SaveDisplayName(ctx, name); err != nil {
		return fmt.Errorf("failed to save display name: %w", err)
	}
	c.io.Printf("✓ Display name set to %q\n", name)
	return nil
}

func (c *Cli) runWorkspace(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: gophcollab workspace <id>")
	}

	id := validation.SanitizeWorkspaceID(args[0])
	if err := c.prefs.SaveLastWorkspace(ctx, id); err != nil {
		return fmt.Errorf("failed to save workspace: %w", err)
	}
	c.io.Printf("✓ Preferred workspace set to %q\n", id)
	return nil
}
