package api

import (
	"encoding/json"
	"fmt"
)

// Inbound events (relay -> client)
const (
	EventInit              = "init"
	EventSync              = "sync"
	EventCursor            = "cur"
	EventBye               = "bye"
	EventPresence          = "presence"
	EventWorkspaceSwitched = "workspace_switched"
)

// Outbound events (client -> relay)
const (
	EventEdit            = "edit"
	EventSetName         = "set_name"
	EventSwitchWorkspace = "switch_workspace"
)

// Envelope представляет один кадр websocket: имя события и его данные.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// NewEnvelope кодирует payload в кадр с заданным событием.
func NewEnvelope(event string, payload any) (Envelope, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, fmt.Errorf("failed to marshal %s payload: %w", event, err)
	}
	return Envelope{Event: event, Data: data}, nil
}

// Decode распаковывает данные кадра в v.
func (e Envelope) Decode(v any) error {
	if len(e.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(e.Data, v); err != nil {
		return fmt.Errorf("failed to decode %s payload: %w", e.Event, err)
	}
	return nil
}

// User представляет участника в списке присутствия
type User struct {
	ID    string `json:"id"`    // идентификатор участника
	Name  string `json:"name"`  // отображаемое имя
	Color string `json:"color"` // цвет участника
}

// WorkspaceInfo описывает рабочее пространство
type WorkspaceInfo struct {
	Version *int64 `json:"version,omitempty"` // версия документа, если известна
	ID      string `json:"id"`                // идентификатор
	Name    string `json:"name"`              // отображаемое имя
}

// Change is the change descriptor attached to a sync broadcast.
type Change struct {
	Start  int `json:"start"`
	OldEnd int `json:"old_end"`
	NewEnd int `json:"new_end"`
}

// InitPayload is the full bootstrap sent on every (re)connection.
type InitPayload struct {
	Version    *int64          `json:"version,omitempty"`
	Workspace  WorkspaceInfo   `json:"workspace"`
	ID         string          `json:"id"`
	Color      string          `json:"color"`
	Name       string          `json:"name"`
	Text       string          `json:"text"`
	Segments   []Segment       `json:"segments"`
	Workspaces []WorkspaceInfo `json:"workspaces"`
	Users      []User          `json:"users"`
}

// SyncPayload is an accepted document update broadcast to the workspace.
type SyncPayload struct {
	Version  *int64    `json:"version,omitempty"`
	Change   *Change   `json:"change,omitempty"`
	From     string    `json:"from"`
	Text     string    `json:"text"`
	Segments []Segment `json:"segments"`
}

// CursorPayload is a peer caret update. Older relays send the color as "col".
type CursorPayload struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
	Col   string `json:"col,omitempty"`
	Pos   int    `json:"pos"`
}

// PeerColor returns the color regardless of which field carried it.
func (c CursorPayload) PeerColor() string {
	if c.Color != "" {
		return c.Color
	}
	return c.Col
}

// ByePayload announces a departed participant.
type ByePayload struct {
	ID string `json:"id"`
}

// PresencePayload carries the current roster of a workspace.
type PresencePayload struct {
	Users []User `json:"users"`
}

// WorkspaceSwitchedPayload confirms a workspace switch. Text is absent when
// the participant re-selected the workspace it was already in.
type WorkspaceSwitchedPayload struct {
	Version    *int64          `json:"version,omitempty"`
	Text       *string         `json:"text,omitempty"`
	Workspace  WorkspaceInfo   `json:"workspace"`
	Segments   []Segment       `json:"segments"`
	Workspaces []WorkspaceInfo `json:"workspaces"`
	Users      []User          `json:"users"`
}

// EditRange is the range sent with a local edit: s and e bound the inserted
// text in the new document, old_end bounds the replaced text in the old one.
type EditRange struct {
	OldEnd *int `json:"old_end,omitempty"`
	S      int  `json:"s"`
	E      int  `json:"e"`
}

// EditRequest is sent after every local text change.
type EditRequest struct {
	Version *int64    `json:"version,omitempty"` // версия, на которой основана правка
	Text    string    `json:"text"`
	Range   EditRange `json:"range"`
}

// CursorRequest is the local caret broadcast.
type CursorRequest struct {
	Pos int `json:"pos"`
}

// SetNameRequest changes the display name.
type SetNameRequest struct {
	Name string `json:"name"`
}

// SwitchWorkspaceRequest asks the relay to move the participant.
type SwitchWorkspaceRequest struct {
	Workspace string `json:"workspace"`
}

// Int64 returns a pointer to v.
func Int64(v int64) *int64 {
	return &v
}
