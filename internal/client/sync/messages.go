package sync

import (
	"errors"
	"fmt"

	"github.com/iudanet/gophcollab/pkg/api"
)

// ErrUnknownEvent is returned by DecodeInbound for events the client does not
// handle.
var ErrUnknownEvent = errors.New("unknown event")

// Inbound is one message from the relay. The concrete types below are the
// only implementations.
type Inbound interface {
	inbound()
}

type (
	// InitMsg is the full bootstrap sent on every (re)connection.
	InitMsg api.InitPayload
	// SyncMsg is an accepted document update.
	SyncMsg api.SyncPayload
	// CursorMsg is a peer caret update.
	CursorMsg api.CursorPayload
	// DepartureMsg names a participant that left.
	DepartureMsg api.ByePayload
	// PresenceMsg carries the workspace roster.
	PresenceMsg api.PresencePayload
	// WorkspaceSwitchedMsg confirms a workspace switch.
	WorkspaceSwitchedMsg api.WorkspaceSwitchedPayload
)

func (InitMsg) inbound()              {}
func (SyncMsg) inbound()              {}
func (CursorMsg) inbound()            {}
func (DepartureMsg) inbound()         {}
func (PresenceMsg) inbound()          {}
func (WorkspaceSwitchedMsg) inbound() {}

// DecodeInbound turns a wire envelope into a typed message.
func DecodeInbound(env api.Envelope) (Inbound, error) {
	switch env.Event {
	case api.EventInit:
		var p api.InitPayload
		if err := env.Decode(&p); err != nil {
			return nil, err
		}
		return InitMsg(p), nil
	case api.EventSync:
		var p api.SyncPayload
		if err := env.Decode(&p); err != nil {
			return nil, err
		}
		return SyncMsg(p), nil
	case api.EventCursor:
		var p api.CursorPayload
		if err := env.Decode(&p); err != nil {
			return nil, err
		}
		return CursorMsg(p), nil
	case api.EventBye:
		var p api.ByePayload
		if err := env.Decode(&p); err != nil {
			return nil, err
		}
		return DepartureMsg(p), nil
	case api.EventPresence:
		var p api.PresencePayload
		if err := env.Decode(&p); err != nil {
			return nil, err
		}
		return PresenceMsg(p), nil
	case api.EventWorkspaceSwitched:
		var p api.WorkspaceSwitchedPayload
		if err := env.Decode(&p); err != nil {
			return nil, err
		}
		return WorkspaceSwitchedMsg(p), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEvent, env.Event)
	}
}
