package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/gophcollab/internal/client/sync"
	"github.com/iudanet/gophcollab/internal/client/transport"
	"github.com/iudanet/gophcollab/internal/cursor"
	"github.com/iudanet/gophcollab/internal/validation"
	"github.com/iudanet/gophcollab/pkg/api"
)

// runConnect joins a workspace and edits it from stdin until input ends,
// the user quits or the transport gives up.
func (c *Cli) runConnect(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := c.applyOptionPrefs(ctx); err != nil {
		return err
	}
	workspace, err := c.resolveWorkspace(ctx)
	if err != nil {
		return err
	}

	loop := sync.NewLoop()
	var rec *sync.Reconciler

	client := transport.New(transport.Config{
		ServerURL:  c.opts.Server,
		Workspace:  workspace,
		MaxElapsed: c.opts.MaxElapsed,
	}, func(env api.Envelope) {
		msg, err := sync.DecodeInbound(env)
		if err != nil {
			c.logger.Warn("Skipping inbound frame", "event", env.Event, "error", err)
			return
		}
		loop.Post(func() { rec.Dispatch(ctx, msg) })
	}, c.logger)

	rec = sync.NewReconciler(client, c.prefs, cursor.SystemClock{}, loop, c.opts.Throttle, c.logger)
	if c.screen != nil {
		rec.Subscribe(c.screen.Draw)
	}

	c.logger.Info("Connecting", "server", c.opts.Server, "workspace", workspace)

	transportErr := make(chan error, 1)
	go func() {
		transportErr <- client.Run(ctx)
		cancel()
	}()
	go c.readInput(ctx, cancel, loop, rec)

	_ = loop.Run(ctx)

	if err := <-transportErr; err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("connection lost: %w", err)
	}
	return nil
}

// readInput feeds stdin lines into the loop. EOF ends the session.
//
// ReadLine cannot be interrupted, so when the session ends for another
// reason (transport gave up, ctx cancelled) this goroutine stays parked on
// stdin and exits with the next line or EOF. runConnect never waits for it,
// and the process exits right after in the CLI.
func (c *Cli) readInput(ctx context.Context, cancel context.CancelFunc, loop *sync.Loop, rec *sync.Reconciler) {
	for {
		line, err := c.io.ReadLine()
		if err != nil {
			cancel()
			return
		}
		if ctx.Err() != nil {
			return
		}
		loop.Post(func() {
			if !c.applyInput(ctx, rec, line) {
				cancel()
			}
		})
	}
}

// applyOptionPrefs persists a name and workspace given on the command line
// or in config, so the bootstrap does not re-announce stale preferences.
func (c *Cli) applyOptionPrefs(ctx context.Context) error {
	if c.opts.Name != "" {
		if err := validation.ValidateName(c.opts.Name); err != nil {
			return fmt.Errorf("invalid name: %w", err)
		}
		if err := c.prefs.SaveDisplayName(ctx, validation.SanitizeName(c.opts.Name)); err != nil {
			return fmt.Errorf("failed to save display name: %w", err)
		}
	}
	if c.opts.Workspace != "" {
		if err := c.prefs.SaveLastWorkspace(ctx, validation.SanitizeWorkspaceID(c.opts.Workspace)); err != nil {
			return fmt.Errorf("failed to save workspace: %w", err)
		}
	}
	return nil
}

// resolveWorkspace returns the last used workspace, or the default one.
func (c *Cli) resolveWorkspace(ctx context.Context) (string, error) {
	last, err := c.prefs.GetLastWorkspace(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to read last workspace: %w", err)
	}
	return validation.SanitizeWorkspaceID(last), nil
}
