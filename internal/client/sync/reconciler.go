package sync

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/iudanet/gophcollab/internal/client/storage"
	"github.com/iudanet/gophcollab/internal/cursor"
	"github.com/iudanet/gophcollab/internal/diff"
	"github.com/iudanet/gophcollab/internal/models"
	"github.com/iudanet/gophcollab/internal/presence"
	"github.com/iudanet/gophcollab/internal/segment"
	"github.com/iudanet/gophcollab/internal/validation"
	"github.com/iudanet/gophcollab/pkg/api"
)

// Outcome describes what HandleSync did with an update.
type Outcome int

const (
	// OutcomeApplied: a remote edit replaced the local text
	OutcomeApplied Outcome = iota
	// OutcomeEcho: our own edit came back, only segments were adopted
	OutcomeEcho
	// OutcomeStale: the version went backward, nothing changed
	OutcomeStale
	// OutcomeDuplicate: the version was already accepted, nothing changed
	OutcomeDuplicate
)

func (o Outcome) String() string {
	switch o {
	case OutcomeApplied:
		return "applied"
	case OutcomeEcho:
		return "echo"
	case OutcomeStale:
		return "stale"
	case OutcomeDuplicate:
		return "duplicate"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Reconciler owns the client state and applies local and remote events to
// it. Methods must be called from a single goroutine, normally a Loop task.
type Reconciler struct {
	sender      Sender
	prefs       storage.PrefsStorage
	caret       *cursor.Broadcaster
	logger      *slog.Logger
	subscribers []func(State)
	state       State
	// accepted - версия снимка пришла от relay (init, sync или смена пространства)
	accepted acceptedVersion
}

// acceptedVersion is the last version taken from the relay and who sent it.
type acceptedVersion struct {
	from    string
	version int64
	ok      bool
}

// NewReconciler creates a reconciler. Caret broadcasts are throttled to one
// per interval using clock and sched.
func NewReconciler(sender Sender, prefs storage.PrefsStorage, clock cursor.Clock, sched cursor.Scheduler, interval time.Duration, logger *slog.Logger) *Reconciler {
	r := &Reconciler{
		sender: sender,
		prefs:  prefs,
		logger: logger,
		state: State{
			Peers:   models.Peers{},
			Metrics: models.ComputeMetrics(""),
		},
	}
	r.caret = cursor.NewBroadcaster(interval, clock, sched,
		func() int { return r.state.Selection.Caret() },
		func(pos int) { r.send(api.EventCursor, api.CursorRequest{Pos: pos}) },
	)
	return r
}

// Subscribe registers fn to receive a copy of the state after every change.
func (r *Reconciler) Subscribe(fn func(State)) {
	r.subscribers = append(r.subscribers, fn)
}

// View returns a deep copy of the current state.
func (r *Reconciler) View() State {
	return r.state.Clone()
}

// Dispatch routes an inbound message to its step.
func (r *Reconciler) Dispatch(ctx context.Context, msg Inbound) {
	switch m := msg.(type) {
	case InitMsg:
		r.HandleInit(ctx, api.InitPayload(m))
	case SyncMsg:
		r.HandleSync(api.SyncPayload(m))
	case CursorMsg:
		r.HandleCursor(api.CursorPayload(m))
	case DepartureMsg:
		r.HandleDeparture(api.ByePayload(m))
	case PresenceMsg:
		r.HandlePresence(api.PresencePayload(m))
	case WorkspaceSwitchedMsg:
		r.HandleWorkspaceSwitched(ctx, api.WorkspaceSwitchedPayload(m))
	default:
		r.logger.Warn("Unhandled inbound message", "type", fmt.Sprintf("%T", msg))
	}
}

// HandleInit applies the bootstrap. It is authoritative: every local
// segment, peer caret and version is discarded, including after a
// reconnection. Persisted preferences that disagree with what the relay
// assigned are re-announced.
func (r *Reconciler) HandleInit(ctx context.Context, p api.InitPayload) {
	textLen := diff.Len(p.Text)

	version := int64(0)
	switch {
	case p.Version != nil:
		version = *p.Version
	case p.Workspace.Version != nil:
		version = *p.Workspace.Version
	}

	r.state.Self = models.Participant{ID: p.ID, Name: p.Name, Color: p.Color}
	r.state.Snapshot = models.Snapshot{Text: p.Text, Version: version}
	r.state.Workspace = toWorkspaceRef(p.Workspace)
	r.state.Workspace.Version = &version
	r.state.Workspaces = toWorkspaceRefs(p.Workspaces)
	r.state.Segments = segment.ApplyRemoteSnapshot(segment.FromWire(p.Segments), textLen)
	r.state.Selection = r.state.Selection.Clamp(textLen)
	r.state.Metrics = models.ComputeMetrics(p.Text)
	r.state.Initialized = true
	r.accepted = acceptedVersion{version: version, ok: true}

	r.state.Roster = toParticipants(p.Users)
	r.state.Peers = models.Peers{}
	r.applyRoster()

	r.logger.Info("Session initialized",
		"id", p.ID,
		"workspace", r.state.Workspace.ID,
		"version", version,
		"peers", len(r.state.Peers))

	r.caret.Cancel()
	if r.state.Focused {
		r.caret.Schedule(true)
	}

	r.announcePrefs(ctx, p)
	r.notify()
}

func (r *Reconciler) announcePrefs(ctx context.Context, p api.InitPayload) {
	if r.prefs == nil {
		return
	}

	stored, err := r.prefs.GetDisplayName(ctx)
	if err != nil {
		r.logger.Warn("Failed to read display name", "error", err)
	}
	if name := validation.SanitizeName(stored); name != "" && name != p.Name {
		r.send(api.EventSetName, api.SetNameRequest{Name: name})
	}

	lastWS, err := r.prefs.GetLastWorkspace(ctx)
	if err != nil {
		r.logger.Warn("Failed to read last workspace", "error", err)
	}
	if lastWS != "" {
		if id := validation.SanitizeWorkspaceID(lastWS); id != p.Workspace.ID {
			r.send(api.EventSwitchWorkspace, api.SwitchWorkspaceRequest{Workspace: id})
		}
	}
}

// HandleSync applies an accepted document update.
//
//  1. A version below the local one is stale; a version equal to one already
//     accepted is a duplicate whatever its text, since local edits made
//     after it must survive. Neither changes anything.
//  2. An echo of our own edit only adopts the relay's segments.
//  3. Otherwise the effective change is recomputed by diffing the local text
//     against the incoming one, the selection is remapped while focused,
//     segments are replaced and peer carets rebased.
func (r *Reconciler) HandleSync(p api.SyncPayload) Outcome {
	local := r.state.Snapshot.Version
	next := local + 1
	if p.Version != nil {
		next = *p.Version
		if next < local {
			r.logger.Debug("Dropping stale update", "version", next, "local_version", local)
			return OutcomeStale
		}
		if next == local && r.accepted.ok && r.accepted.version == next {
			r.logger.Debug("Dropping duplicate update",
				"version", next,
				"from", p.From,
				"accepted_from", r.accepted.from)
			return OutcomeDuplicate
		}
	}

	r.state.Snapshot.Version = next
	r.accepted = acceptedVersion{from: p.From, version: next, ok: true}
	r.state.Workspace.Version = &next

	if p.From != "" && p.From == r.state.Self.ID {
		textLen := diff.Len(r.state.Snapshot.Text)
		r.state.Segments = segment.ApplyRemoteSnapshot(segment.FromWire(p.Segments), textLen)
		r.notify()
		return OutcomeEcho
	}

	change := r.effectiveChange(p)
	textLen := diff.Len(p.Text)

	if r.state.Focused {
		r.state.Selection = cursor.MapSelection(r.state.Selection, change, textLen)
	} else {
		r.state.Selection = r.state.Selection.Clamp(textLen)
	}

	r.state.Snapshot.Text = p.Text
	r.state.Segments = segment.ApplyRemoteSnapshot(segment.FromWire(p.Segments), textLen)
	r.state.Peers = cursor.Rebase(r.state.Peers, change, p.From, textLen)
	r.state.Metrics = models.ComputeMetrics(p.Text)

	r.notify()
	return OutcomeApplied
}

// effectiveChange diffs the local view against the incoming text. The
// relay's descriptor is used only when there is no local view yet.
func (r *Reconciler) effectiveChange(p api.SyncPayload) models.Change {
	if !r.state.Initialized && p.Change != nil {
		return models.Change{
			Start:  p.Change.Start,
			OldEnd: p.Change.OldEnd,
			NewEnd: p.Change.NewEnd,
		}.Sanitized()
	}
	return diff.Diff(r.state.Snapshot.Text, p.Text)
}

// HandleCursor records a peer caret.
func (r *Reconciler) HandleCursor(p api.CursorPayload) {
	update := models.PeerCursor{ID: p.ID, Name: p.Name, Color: p.PeerColor(), Pos: p.Pos}
	r.state.Peers = presence.Apply(r.state.Peers, update, r.state.Self.ID, diff.Len(r.state.Snapshot.Text))
	r.notify()
}

// HandleDeparture forgets a participant.
func (r *Reconciler) HandleDeparture(p api.ByePayload) {
	r.state.Peers = presence.Remove(r.state.Peers, p.ID)
	r.notify()
}

// HandlePresence reconciles the roster.
func (r *Reconciler) HandlePresence(p api.PresencePayload) {
	r.state.Roster = toParticipants(p.Users)
	r.applyRoster()
	r.notify()
}

func (r *Reconciler) applyRoster() {
	peers, self := presence.Reconcile(r.state.Self.ID, r.state.Roster, r.state.Peers)
	r.state.Peers = peers
	if self == nil {
		return
	}
	if self.Name != "" {
		r.state.Self.Name = self.Name
	}
	if self.Color != "" {
		r.state.Self.Color = self.Color
	}
}

// HandleWorkspaceSwitched is a hard reset: peers and segments are dropped and
// the new workspace is adopted wholesale, even if its text equals ours.
func (r *Reconciler) HandleWorkspaceSwitched(ctx context.Context, p api.WorkspaceSwitchedPayload) {
	if p.Text != nil {
		r.state.Snapshot.Text = *p.Text
		version := int64(0)
		switch {
		case p.Version != nil:
			version = *p.Version
		case p.Workspace.Version != nil:
			version = *p.Workspace.Version
		}
		r.state.Snapshot.Version = version
		r.accepted = acceptedVersion{version: version, ok: true}
	}
	text := r.state.Snapshot.Text
	textLen := diff.Len(text)

	if p.Workspace.ID != "" {
		r.state.Workspace.ID = p.Workspace.ID
	}
	if p.Workspace.Name != "" {
		r.state.Workspace.Name = p.Workspace.Name
	}
	version := r.state.Snapshot.Version
	r.state.Workspace.Version = &version
	if p.Workspaces != nil {
		r.state.Workspaces = toWorkspaceRefs(p.Workspaces)
	}

	r.state.Segments = segment.ApplyRemoteSnapshot(segment.FromWire(p.Segments), textLen)
	r.state.Peers = models.Peers{}
	r.state.Roster = toParticipants(p.Users)
	r.applyRoster()

	caret := models.ClampOffset(r.state.Selection.Caret(), textLen)
	r.state.Selection = models.Selection{Start: caret, End: caret, Direction: models.SelectionNone}
	r.state.Metrics = models.ComputeMetrics(text)

	if r.prefs != nil {
		if err := r.prefs.SaveLastWorkspace(ctx, r.state.Workspace.ID); err != nil {
			r.logger.Warn("Failed to save last workspace", "error", err)
		}
	}

	r.logger.Info("Workspace switched", "workspace", r.state.Workspace.ID, "version", version)

	r.caret.Schedule(true)
	r.notify()
}

// LocalEdit applies a committed local change: text is the whole new text and
// sel the selection after the edit.
func (r *Reconciler) LocalEdit(text string, sel models.Selection) {
	prev := r.state.Snapshot.Text
	if text == prev {
		r.SetSelection(sel)
		return
	}

	change := diff.Diff(prev, text)
	textLen := diff.Len(text)

	r.state.Snapshot.Text = text
	r.state.Selection = sel.Clamp(textLen)
	r.state.Segments = segment.ApplyLocalEdit(r.state.Segments, change, r.state.Self.Color, textLen)
	r.state.Peers = cursor.Rebase(r.state.Peers, change, r.state.Self.ID, textLen)
	r.state.Metrics = models.ComputeMetrics(text)

	oldEnd := change.OldEnd
	version := r.state.Snapshot.Version
	r.send(api.EventEdit, api.EditRequest{
		Text:    text,
		Range:   api.EditRange{S: change.Start, E: change.NewEnd, OldEnd: &oldEnd},
		Version: &version,
	})

	r.caret.Schedule(false)
	r.notify()
}

// SetSelection records a selection change made by keyboard or drag.
func (r *Reconciler) SetSelection(sel models.Selection) {
	r.state.Selection = sel.Clamp(diff.Len(r.state.Snapshot.Text))
	if r.state.Focused {
		r.caret.Schedule(false)
	}
	r.notify()
}

// Click records an explicit click or tap and sends the caret at once.
func (r *Reconciler) Click(sel models.Selection) {
	r.state.Selection = sel.Clamp(diff.Len(r.state.Snapshot.Text))
	r.caret.Schedule(true)
	r.notify()
}

// Focus marks the editor focused and sends the caret at once.
func (r *Reconciler) Focus() {
	r.state.Focused = true
	r.caret.Schedule(true)
	r.notify()
}

// Blur marks the editor unfocused and drops any pending caret broadcast.
func (r *Reconciler) Blur() {
	r.state.Focused = false
	r.caret.Cancel()
	r.notify()
}

// SetScroll records the view scroll offsets.
func (r *Reconciler) SetScroll(scroll models.Scroll) {
	r.state.Scroll = scroll
}

// SetName changes the display name, persists it and tells the relay.
func (r *Reconciler) SetName(ctx context.Context, name string) error {
	if err := validation.ValidateName(name); err != nil {
		return err
	}
	name = validation.SanitizeName(name)

	if r.prefs != nil {
		if err := r.prefs.SaveDisplayName(ctx, name); err != nil {
			r.logger.Warn("Failed to save display name", "error", err)
		}
	}

	r.state.Self.Name = name
	r.send(api.EventSetName, api.SetNameRequest{Name: name})
	r.notify()
	return nil
}

// SwitchWorkspace asks the relay to move us to another workspace. State is
// reset once the relay confirms with workspace_switched.
func (r *Reconciler) SwitchWorkspace(ctx context.Context, id string) {
	id = validation.SanitizeWorkspaceID(id)
	if r.prefs != nil {
		if err := r.prefs.SaveLastWorkspace(ctx, id); err != nil {
			r.logger.Warn("Failed to save last workspace", "error", err)
		}
	}
	r.send(api.EventSwitchWorkspace, api.SwitchWorkspaceRequest{Workspace: id})
}

// FlushCaret sends a pending caret broadcast now.
func (r *Reconciler) FlushCaret() {
	r.caret.Flush()
}

func (r *Reconciler) send(event string, payload any) {
	if err := r.sender.Send(event, payload); err != nil {
		r.logger.Warn("Failed to send event", "event", event, "error", err)
	}
}

func (r *Reconciler) notify() {
	for _, fn := range r.subscribers {
		fn(r.state.Clone())
	}
}
