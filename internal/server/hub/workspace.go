package hub

import (
	"time"
	"unicode/utf16"

	"github.com/iudanet/gophcollab/internal/diff"
	"github.com/iudanet/gophcollab/internal/models"
	"github.com/iudanet/gophcollab/internal/segment"
	"github.com/iudanet/gophcollab/pkg/api"
)

const (
	// DefaultHistoryLimit - сколько последних изменений хранится для перебазирования
	DefaultHistoryLimit = 500
	// DefaultText - текст нового рабочего пространства
	DefaultText = "# Collaborative Editor\n# Start typing to test real-time sync!\n\n"

	MainWorkspaceName = "Main Workspace"
	NewWorkspaceName  = "Untitled Workspace"
)

// historyEntry - примененное изменение, его автор и версия, которую оно породило
type historyEntry struct {
	author  string
	change  models.Change
	version int64
}

// workspace is the relay's authoritative copy of one document. It is owned
// by the hub goroutine.
type workspace struct {
	createdAt time.Time
	segments  *segment.Store
	id        string
	name      string
	text      string
	history   []historyEntry
	version   int64
}

func newWorkspace(id string) *workspace {
	name := NewWorkspaceName
	if id == "main" {
		name = MainWorkspaceName
	}
	return &workspace{
		id:       id,
		name:     name,
		text:     DefaultText,
		segments: segment.NewStore(nil, 0),
	}
}

func workspaceFromModel(m *models.Workspace) *workspace {
	name := m.Name
	if name == "" {
		name = NewWorkspaceName
	}
	return &workspace{
		id:        m.ID,
		name:      name,
		text:      m.Text,
		version:   m.Version,
		createdAt: m.CreatedAt,
		segments:  segment.NewStore(m.Segments, diff.Len(m.Text)),
	}
}

func (w *workspace) model() *models.Workspace {
	return &models.Workspace{
		ID:        w.id,
		Name:      w.name,
		Text:      w.text,
		Segments:  w.segments.List(),
		Version:   w.version,
		CreatedAt: w.createdAt,
	}
}

func (w *workspace) info() api.WorkspaceInfo {
	return api.WorkspaceInfo{ID: w.id, Name: w.name, Version: api.Int64(w.version)}
}

// applyEdit splices an edit into the document, recolors the edited span in
// the author's color and bumps the version. An edit based on an older
// version is first carried through every later change in the history made
// by someone else: the author's own later edits are already reflected in its
// offsets.
func (w *workspace) applyEdit(req api.EditRequest, author, color string, historyLimit int) models.Change {
	old := diff.Units(w.text)
	incoming := diff.Units(req.Text)

	// Вставленный фрагмент берется из присланного текста
	sliceStart := clamp(req.Range.S, 0, len(incoming))
	sliceEnd := clamp(req.Range.E, sliceStart, len(incoming))
	inserted := incoming[sliceStart:sliceEnd]

	start := req.Range.S
	var oldEnd int
	if req.Range.OldEnd != nil {
		oldEnd = *req.Range.OldEnd
	} else {
		// Без old_end восстанавливаем его по разнице длин
		oldEnd = start + max(0, len(old)-len(incoming)+len(inserted))
	}

	if req.Version != nil && *req.Version < w.version {
		for _, h := range w.history {
			if h.version <= *req.Version || h.author == author {
				continue
			}
			start = shiftPosition(start, h.change, false)
			oldEnd = shiftPosition(oldEnd, h.change, true)
		}
	}

	start = clamp(start, 0, len(old))
	oldEnd = clamp(oldEnd, start, len(old))

	next := make([]uint16, 0, len(old)-(oldEnd-start)+len(inserted))
	next = append(next, old[:start]...)
	next = append(next, inserted...)
	next = append(next, old[oldEnd:]...)

	change := models.Change{Start: start, OldEnd: oldEnd, NewEnd: start + len(inserted)}

	w.text = string(utf16.Decode(next))
	w.segments.Edit(change, color, len(next))
	w.version++

	w.history = append(w.history, historyEntry{author: author, change: change, version: w.version})
	if historyLimit > 0 && len(w.history) > historyLimit {
		w.history = append([]historyEntry(nil), w.history[len(w.history)-historyLimit:]...)
	}

	return change
}

// shiftPosition carries pos across change. A position inside the replaced
// range collapses to its start, or to the end of the replacement when
// treatEnd is set.
func shiftPosition(pos int, c models.Change, treatEnd bool) int {
	c = c.Sanitized()
	if pos <= c.Start {
		return pos
	}
	if pos >= c.OldEnd {
		return pos + c.Delta()
	}
	if treatEnd {
		return c.NewEnd
	}
	return c.Start
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
