// Package hub is the reference relay: a single goroutine owns every
// workspace and participant and serializes all edits.
package hub

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/iudanet/gophcollab/internal/segment"
	"github.com/iudanet/gophcollab/internal/server/storage"
	"github.com/iudanet/gophcollab/internal/validation"
	"github.com/iudanet/gophcollab/pkg/api"
)

type inbound struct {
	client *Client
	env    api.Envelope
}

// Hub serializes all relay state changes on the goroutine running Run.
type Hub struct {
	store        storage.WorkspaceStorage
	logger       *slog.Logger
	register     chan *Client
	unregister   chan *Client
	inbound      chan inbound
	done         chan struct{}
	clients      map[string]*Client
	workspaces   map[string]*workspace
	historyLimit int
	seq          uint64
}

// New creates a hub. historyLimit <= 0 selects DefaultHistoryLimit.
func New(store storage.WorkspaceStorage, historyLimit int, logger *slog.Logger) *Hub {
	if historyLimit <= 0 {
		historyLimit = DefaultHistoryLimit
	}
	return &Hub{
		store:        store,
		logger:       logger,
		historyLimit: historyLimit,
		register:     make(chan *Client),
		unregister:   make(chan *Client),
		inbound:      make(chan inbound),
		done:         make(chan struct{}),
		clients:      make(map[string]*Client),
		workspaces:   make(map[string]*workspace),
	}
}

// Load reads persisted workspaces and makes sure "main" exists. Call it
// before Run.
func (h *Hub) Load(ctx context.Context) error {
	list, err := h.store.ListWorkspaces(ctx)
	if err != nil {
		return fmt.Errorf("failed to load workspaces: %w", err)
	}
	for _, m := range list {
		h.workspaces[m.ID] = workspaceFromModel(m)
	}
	h.ensureWorkspace(ctx, validation.DefaultWorkspaceID)

	h.logger.Info("Workspaces loaded", "count", len(h.workspaces))
	return nil
}

// Run processes connections and frames until ctx is done. Every client
// channel is closed on return.
func (h *Hub) Run(ctx context.Context) error {
	defer close(h.done)

	for {
		select {
		case c := <-h.register:
			h.connect(ctx, c)
		case c := <-h.unregister:
			h.disconnect(c)
		case in := <-h.inbound:
			h.handle(ctx, in.client, in.env)
		case <-ctx.Done():
			for _, c := range h.clients {
				close(c.send)
			}
			h.clients = map[string]*Client{}
			return ctx.Err()
		}
	}
}

// Register joins c to its workspace.
func (h *Hub) Register(c *Client) {
	select {
	case h.register <- c:
	case <-h.done:
	}
}

// Unregister removes c. It is safe to call for an already dropped client.
func (h *Hub) Unregister(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// Receive queues a frame sent by c.
func (h *Hub) Receive(c *Client, env api.Envelope) {
	select {
	case h.inbound <- inbound{client: c, env: env}:
	case <-h.done:
	}
}

func (h *Hub) connect(ctx context.Context, c *Client) {
	ws := h.ensureWorkspace(ctx, c.workspace)

	used := make(map[string]bool, len(h.clients))
	for _, other := range h.clients {
		used[other.color] = true
	}
	c.color = pickColor(used, len(h.clients))
	c.name = fmt.Sprintf("Guest %d", len(h.clients)+1)
	h.seq++
	c.seq = h.seq
	h.clients[c.id] = c

	version := ws.version
	h.send(c, api.EventInit, api.InitPayload{
		ID:         c.id,
		Name:       c.name,
		Color:      c.color,
		Text:       ws.text,
		Segments:   segment.ToWire(ws.segments.List()),
		Users:      h.presence(ws.id),
		Workspaces: h.workspaceList(),
		Workspace:  ws.info(),
		Version:    &version,
	})
	h.broadcastPresence(ws.id)

	h.logger.Info("Participant connected",
		"id", c.id,
		"workspace", ws.id,
		"color", c.color,
		"participants", len(h.clients))
}

func (h *Hub) disconnect(c *Client) {
	if _, ok := h.clients[c.id]; !ok {
		return
	}
	delete(h.clients, c.id)
	close(c.send)

	h.broadcast(c.workspace, c.id, api.EventBye, api.ByePayload{ID: c.id})
	h.broadcastPresence(c.workspace)

	h.logger.Info("Participant disconnected", "id", c.id, "workspace", c.workspace)
}

func (h *Hub) handle(ctx context.Context, c *Client, env api.Envelope) {
	if _, ok := h.clients[c.id]; !ok {
		return
	}

	var err error
	switch env.Event {
	case api.EventEdit:
		err = h.handleEdit(ctx, c, env)
	case api.EventCursor:
		err = h.handleCursor(c, env)
	case api.EventSetName:
		err = h.handleSetName(c, env)
	case api.EventSwitchWorkspace:
		err = h.handleSwitch(ctx, c, env)
	default:
		err = fmt.Errorf("unknown event %q", env.Event)
	}
	if err != nil {
		h.logger.Warn("Dropping frame", "id", c.id, "event", env.Event, "error", err)
	}
}

func (h *Hub) handleEdit(ctx context.Context, c *Client, env api.Envelope) error {
	var req api.EditRequest
	if err := env.Decode(&req); err != nil {
		return err
	}

	ws := h.ensureWorkspace(ctx, c.workspace)
	change := ws.applyEdit(req, c.id, c.color, h.historyLimit)
	h.persist(ctx, ws)

	version := ws.version
	h.broadcast(ws.id, "", api.EventSync, api.SyncPayload{
		Text:     ws.text,
		Segments: segment.ToWire(ws.segments.List()),
		From:     c.id,
		Change:   &api.Change{Start: change.Start, OldEnd: change.OldEnd, NewEnd: change.NewEnd},
		Version:  &version,
	})
	return nil
}

func (h *Hub) handleCursor(c *Client, env api.Envelope) error {
	var req api.CursorRequest
	if err := env.Decode(&req); err != nil {
		return err
	}

	c.cursor = req.Pos
	h.broadcast(c.workspace, c.id, api.EventCursor, api.CursorPayload{
		ID:    c.id,
		Name:  c.name,
		Color: c.color,
		Pos:   req.Pos,
	})
	return nil
}

func (h *Hub) handleSetName(c *Client, env api.Envelope) error {
	var req api.SetNameRequest
	if err := env.Decode(&req); err != nil {
		return err
	}

	// Пустое имя после очистки оставляет прежнее
	if name := validation.SanitizeName(req.Name); name != "" {
		c.name = name
	}
	h.broadcastPresence(c.workspace)
	return nil
}

func (h *Hub) handleSwitch(ctx context.Context, c *Client, env api.Envelope) error {
	var req api.SwitchWorkspaceRequest
	if err := env.Decode(&req); err != nil {
		return err
	}

	target := validation.SanitizeWorkspaceID(req.Workspace)
	previous := c.workspace
	ws := h.ensureWorkspace(ctx, target)
	c.workspace = target

	version := ws.version
	text := ws.text
	h.send(c, api.EventWorkspaceSwitched, api.WorkspaceSwitchedPayload{
		Workspace:  ws.info(),
		Text:       &text,
		Segments:   segment.ToWire(ws.segments.List()),
		Users:      h.presence(target),
		Workspaces: h.workspaceList(),
		Version:    &version,
	})

	if previous != target {
		h.broadcastPresence(previous)
		h.broadcastPresence(target)
		h.logger.Info("Participant switched workspace", "id", c.id, "from", previous, "to", target)
	}
	return nil
}

// ensureWorkspace returns the in-memory workspace, loading or creating it.
// Storage failures are logged; the relay keeps serving from memory.
func (h *Hub) ensureWorkspace(ctx context.Context, id string) *workspace {
	if ws, ok := h.workspaces[id]; ok {
		return ws
	}

	m, err := h.store.GetWorkspace(ctx, id)
	switch {
	case err == nil:
		ws := workspaceFromModel(m)
		h.workspaces[id] = ws
		return ws
	case !errors.Is(err, storage.ErrWorkspaceNotFound):
		h.logger.Warn("Failed to load workspace", "workspace", id, "error", err)
	}

	ws := newWorkspace(id)
	h.workspaces[id] = ws
	h.persist(ctx, ws)
	h.logger.Info("Workspace created", "workspace", id)
	return ws
}

func (h *Hub) persist(ctx context.Context, ws *workspace) {
	m := ws.model()
	if err := h.store.SaveWorkspace(ctx, m); err != nil {
		h.logger.Warn("Failed to save workspace", "workspace", ws.id, "error", err)
		return
	}
	ws.createdAt = m.CreatedAt
}

// presence lists participants of a workspace in join order.
func (h *Hub) presence(workspaceID string) []api.User {
	members := h.members(workspaceID)
	users := make([]api.User, 0, len(members))
	for _, c := range members {
		users = append(users, api.User{ID: c.id, Name: c.name, Color: c.color})
	}
	return users
}

func (h *Hub) members(workspaceID string) []*Client {
	var out []*Client
	for _, c := range h.clients {
		if c.workspace == workspaceID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].seq < out[j].seq })
	return out
}

func (h *Hub) workspaceList() []api.WorkspaceInfo {
	ids := make([]string, 0, len(h.workspaces))
	for id := range h.workspaces {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	list := make([]api.WorkspaceInfo, 0, len(ids))
	for _, id := range ids {
		list = append(list, h.workspaces[id].info())
	}
	return list
}

func (h *Hub) broadcastPresence(workspaceID string) {
	h.broadcast(workspaceID, "", api.EventPresence, api.PresencePayload{Users: h.presence(workspaceID)})
}

// broadcast sends to every member of workspaceID except skipID. Members
// whose queue is full are disconnected afterwards.
func (h *Hub) broadcast(workspaceID, skipID, event string, payload any) {
	data, err := encode(event, payload)
	if err != nil {
		h.logger.Error("Failed to encode frame", "event", event, "error", err)
		return
	}

	var slow []*Client
	for _, c := range h.members(workspaceID) {
		if c.id == skipID {
			continue
		}
		if !h.enqueue(c, data) {
			slow = append(slow, c)
		}
	}
	for _, c := range slow {
		h.logger.Warn("Dropping slow participant", "id", c.id)
		h.disconnect(c)
	}
}

func (h *Hub) send(c *Client, event string, payload any) {
	data, err := encode(event, payload)
	if err != nil {
		h.logger.Error("Failed to encode frame", "event", event, "error", err)
		return
	}
	if !h.enqueue(c, data) {
		h.logger.Warn("Dropping slow participant", "id", c.id)
		h.disconnect(c)
	}
}

func (h *Hub) enqueue(c *Client, data []byte) bool {
	select {
	case c.send <- data:
		return true
	default:
		return false
	}
}

func encode(event string, payload any) ([]byte, error) {
	env, err := api.NewEnvelope(event, payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(env)
}
