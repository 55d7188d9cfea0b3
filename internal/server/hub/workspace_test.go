package hub

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gophcollab/internal/diff"
	"github.com/iudanet/gophcollab/internal/models"
	"github.com/iudanet/gophcollab/internal/segment"
	"github.com/iudanet/gophcollab/pkg/api"
)

const (
	red  = "#ef4444"
	blue = "#3b82f6"
)

func intPtr(v int) *int { return &v }

func workspaceWith(text string, version int64, segs []models.Segment) *workspace {
	ws := newWorkspace("test")
	ws.text = text
	ws.version = version
	ws.segments = segment.NewStore(segs, diff.Len(text))
	return ws
}

func edit(text string, s, e int, oldEnd *int, version *int64) api.EditRequest {
	return api.EditRequest{
		Text:    text,
		Range:   api.EditRange{S: s, E: e, OldEnd: oldEnd},
		Version: version,
	}
}

func TestNewWorkspace(t *testing.T) {
	main := newWorkspace("main")
	assert.Equal(t, MainWorkspaceName, main.name)
	assert.Equal(t, DefaultText, main.text)
	assert.Zero(t, main.version)
	assert.Zero(t, main.segments.Len())

	other := newWorkspace("notes")
	assert.Equal(t, NewWorkspaceName, other.name)
}

func TestWorkspace_ApplyEdit(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		wantText     string
		segments     []models.Segment
		wantSegments []models.Segment
		req          api.EditRequest
		wantChange   models.Change
	}{
		{
			name:         "insert",
			text:         "abc",
			req:          edit("aXbc", 1, 2, intPtr(1), api.Int64(0)),
			wantText:     "aXbc",
			wantChange:   models.Change{Start: 1, OldEnd: 1, NewEnd: 2},
			wantSegments: []models.Segment{{Color: blue, Start: 1, End: 2}},
		},
		{
			name:         "delete leaves no span",
			text:         "abc",
			req:          edit("ac", 1, 1, intPtr(2), api.Int64(0)),
			wantText:     "ac",
			wantChange:   models.Change{Start: 1, OldEnd: 2, NewEnd: 1},
			wantSegments: []models.Segment{},
		},
		{
			name:         "missing old_end on insert",
			text:         "abc",
			req:          edit("aXbc", 1, 2, nil, nil),
			wantText:     "aXbc",
			wantChange:   models.Change{Start: 1, OldEnd: 1, NewEnd: 2},
			wantSegments: []models.Segment{{Color: blue, Start: 1, End: 2}},
		},
		{
			name:         "missing old_end on replace",
			text:         "abc",
			req:          edit("aXc", 1, 2, nil, nil),
			wantText:     "aXc",
			wantChange:   models.Change{Start: 1, OldEnd: 2, NewEnd: 2},
			wantSegments: []models.Segment{{Color: blue, Start: 1, End: 2}},
		},
		{
			name:         "out of range is clamped",
			text:         "ab",
			req:          edit("abX", 10, 11, intPtr(10), api.Int64(0)),
			wantText:     "ab",
			wantChange:   models.Change{Start: 2, OldEnd: 2, NewEnd: 2},
			wantSegments: []models.Segment{},
		},
		{
			name:         "surrogate pair offsets",
			text:         "a😀",
			req:          edit("a😀b", 3, 4, intPtr(3), api.Int64(0)),
			wantText:     "a😀b",
			wantChange:   models.Change{Start: 3, OldEnd: 3, NewEnd: 4},
			wantSegments: []models.Segment{{Color: blue, Start: 3, End: 4}},
		},
		{
			name:         "edit inside foreign segment recolors it",
			text:         "hello",
			segments:     []models.Segment{{Color: red, Start: 0, End: 5}},
			req:          edit("heXllo", 2, 3, intPtr(2), api.Int64(0)),
			wantText:     "heXllo",
			wantChange:   models.Change{Start: 2, OldEnd: 2, NewEnd: 3},
			wantSegments: []models.Segment{{Color: blue, Start: 0, End: 6}},
		},
		{
			name:       "insert before foreign segment shifts it",
			text:       "hello",
			segments:   []models.Segment{{Color: red, Start: 0, End: 5}},
			req:        edit("Xhello", 0, 1, intPtr(0), api.Int64(0)),
			wantText:   "Xhello",
			wantChange: models.Change{Start: 0, OldEnd: 0, NewEnd: 1},
			wantSegments: []models.Segment{
				{Color: blue, Start: 0, End: 1},
				{Color: red, Start: 1, End: 6},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ws := workspaceWith(tt.text, 0, tt.segments)

			change := ws.applyEdit(tt.req, "bob", blue, DefaultHistoryLimit)

			assert.Equal(t, tt.wantChange, change)
			assert.Equal(t, tt.wantText, ws.text)
			assert.Equal(t, int64(1), ws.version)
			assert.Equal(t, tt.wantSegments, ws.segments.List())
			require.Len(t, ws.history, 1)
			assert.Equal(t, historyEntry{author: "bob", change: change, version: 1}, ws.history[0])
		})
	}
}

func TestWorkspace_ApplyEdit_RebasesStaleBase(t *testing.T) {
	t.Run("concurrent inserts", func(t *testing.T) {
		ws := workspaceWith("hello", 0, nil)

		// Оба клиента видели версию 0
		ws.applyEdit(edit("XXhello", 0, 2, intPtr(0), api.Int64(0)), "ann", red, DefaultHistoryLimit)
		change := ws.applyEdit(edit("hello!", 5, 6, intPtr(5), api.Int64(0)), "bob", blue, DefaultHistoryLimit)

		assert.Equal(t, "XXhello!", ws.text)
		assert.Equal(t, models.Change{Start: 7, OldEnd: 7, NewEnd: 8}, change)
		assert.Equal(t, int64(2), ws.version)
	})

	t.Run("overlapping replace collapses range", func(t *testing.T) {
		ws := workspaceWith("abcdef", 0, nil)

		ws.applyEdit(edit("aZef", 1, 2, intPtr(4), api.Int64(0)), "ann", red, DefaultHistoryLimit)
		change := ws.applyEdit(edit("abf", 2, 2, intPtr(5), api.Int64(0)), "bob", blue, DefaultHistoryLimit)

		assert.Equal(t, models.Change{Start: 1, OldEnd: 3, NewEnd: 1}, change)
		assert.Equal(t, "af", ws.text)
	})

	t.Run("author's own later edits are not rebased", func(t *testing.T) {
		ws := workspaceWith("abc", 0, nil)

		// Обе правки отправлены до эха первой, обе на версии 0
		ws.applyEdit(edit("Xabc", 0, 1, intPtr(0), api.Int64(0)), "ann", red, DefaultHistoryLimit)
		change := ws.applyEdit(edit("XaYbc", 2, 3, intPtr(2), api.Int64(0)), "ann", red, DefaultHistoryLimit)

		assert.Equal(t, "XaYbc", ws.text)
		assert.Equal(t, models.Change{Start: 2, OldEnd: 2, NewEnd: 3}, change)
	})

	t.Run("others' edits between own edits are rebased", func(t *testing.T) {
		ws := workspaceWith("abc", 0, nil)

		ws.applyEdit(edit("Xabc", 0, 1, intPtr(0), api.Int64(0)), "ann", red, DefaultHistoryLimit)
		ws.applyEdit(edit("XabcZZ", 4, 6, intPtr(4), api.Int64(1)), "bob", blue, DefaultHistoryLimit)
		change := ws.applyEdit(edit("XaYbc", 2, 3, intPtr(2), api.Int64(0)), "ann", red, DefaultHistoryLimit)

		assert.Equal(t, "XaYbcZZ", ws.text)
		assert.Equal(t, models.Change{Start: 2, OldEnd: 2, NewEnd: 3}, change)
	})

	t.Run("current base is not rebased", func(t *testing.T) {
		ws := workspaceWith("hello", 0, nil)

		ws.applyEdit(edit("XXhello", 0, 2, intPtr(0), api.Int64(0)), "ann", red, DefaultHistoryLimit)
		change := ws.applyEdit(edit("XXhello!", 7, 8, intPtr(7), api.Int64(1)), "bob", blue, DefaultHistoryLimit)

		assert.Equal(t, "XXhello!", ws.text)
		assert.Equal(t, models.Change{Start: 7, OldEnd: 7, NewEnd: 8}, change)
	})
}

func TestWorkspace_HistoryLimit(t *testing.T) {
	ws := workspaceWith("", 0, nil)

	for i := 0; i < 5; i++ {
		text := ws.text + "x"
		n := len(ws.text)
		ws.applyEdit(edit(text, n, n+1, intPtr(n), api.Int64(ws.version)), "bob", blue, 2)
	}

	assert.Equal(t, int64(5), ws.version)
	require.Len(t, ws.history, 2)
	assert.Equal(t, int64(4), ws.history[0].version)
	assert.Equal(t, int64(5), ws.history[1].version)
}

func TestShiftPosition(t *testing.T) {
	change := models.Change{Start: 2, OldEnd: 5, NewEnd: 3}

	tests := []struct {
		name     string
		pos      int
		want     int
		treatEnd bool
	}{
		{name: "before", pos: 1, want: 1},
		{name: "at start", pos: 2, want: 2},
		{name: "inside", pos: 4, want: 2},
		{name: "inside as end", pos: 4, treatEnd: true, want: 3},
		{name: "at old end", pos: 5, want: 3},
		{name: "after", pos: 9, want: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shiftPosition(tt.pos, change, tt.treatEnd))
		})
	}
}

func TestWorkspace_ModelRoundTrip(t *testing.T) {
	ws := workspaceWith("hello", 4, []models.Segment{{Color: red, Start: 0, End: 5}})
	ws.name = "Notes"

	m := ws.model()
	assert.Equal(t, "test", m.ID)
	assert.Equal(t, "Notes", m.Name)
	assert.Equal(t, int64(4), m.Version)

	back := workspaceFromModel(m)
	assert.Equal(t, ws.text, back.text)
	assert.Equal(t, ws.version, back.version)
	assert.Equal(t, ws.segments.List(), back.segments.List())
	assert.Empty(t, back.history)

	unnamed := workspaceFromModel(&models.Workspace{ID: "x"})
	assert.Equal(t, NewWorkspaceName, unnamed.name)
}

func TestPickColor(t *testing.T) {
	assert.Equal(t, Palette[0], pickColor(nil, 0))
	assert.Equal(t, Palette[1], pickColor(map[string]bool{Palette[0]: true}, 1))

	all := make(map[string]bool)
	for _, c := range Palette {
		all[c] = true
	}
	assert.Equal(t, Palette[len(Palette)%len(Palette)], pickColor(all, len(Palette)))
	assert.Equal(t, Palette[2], pickColor(all, len(Palette)+2))
}
