package cli

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gophcollab/internal/client/api"
	clientsync "github.com/iudanet/gophcollab/internal/client/sync"
	"github.com/iudanet/gophcollab/internal/cursor"
	"github.com/iudanet/gophcollab/internal/models"
	pkgapi "github.com/iudanet/gophcollab/pkg/api"
)

func TestParseInput(t *testing.T) {
	tests := []struct {
		line string
		want Input
	}{
		{line: "hello", want: Input{Kind: InputInsert, Arg: "hello"}},
		{line: "", want: Input{Kind: InputInsert, Arg: ""}},
		{line: "::colon", want: Input{Kind: InputInsert, Arg: ":colon"}},
		{line: ":name Ada Lovelace", want: Input{Kind: InputName, Arg: "Ada Lovelace"}},
		{line: ":ws  notes ", want: Input{Kind: InputWorkspace, Arg: "notes"}},
		{line: ":goto 12", want: Input{Kind: InputGoto, Arg: "12"}},
		{line: ":focus", want: Input{Kind: InputFocus}},
		{line: ":blur", want: Input{Kind: InputBlur}},
		{line: ":quit", want: Input{Kind: InputQuit}},
		{line: ":q", want: Input{Kind: InputQuit}},
		{line: ":bogus arg", want: Input{Kind: InputUnknown, Arg: "bogus"}},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseInput(tt.line))
		})
	}
}

type inputFixture struct {
	cli    *Cli
	rec    *clientsync.Reconciler
	sender *clientsync.SenderMock
	prefs  *prefsState
	out    interface{ String() string }
}

// newInputFixture builds a reconciler bootstrapped with text and a caret at 0.
func newInputFixture(t *testing.T, text string) *inputFixture {
	t.Helper()

	state := &prefsState{}
	prefs := memPrefs(state)
	sender := &clientsync.SenderMock{
		SendFunc: func(event string, payload any) error { return nil },
	}
	rec := clientsync.NewReconciler(sender, prefs, cursor.SystemClock{}, clientsync.NewLoop(), time.Hour, discardLogger())
	rec.HandleInit(context.Background(), pkgapi.InitPayload{
		ID:        "me",
		Name:      "Guest 1",
		Color:     "#ef4444",
		Text:      text,
		Version:   pkgapi.Int64(7),
		Workspace: pkgapi.WorkspaceInfo{ID: "main", Name: "Main Workspace"},
	})

	ioMock, out := scriptedIO()
	return &inputFixture{
		cli:    newTestCli(ioMock, prefs, &api.ClientAPIMock{}, Options{}),
		rec:    rec,
		sender: sender,
		prefs:  state,
		out:    out,
	}
}

func (f *inputFixture) sent(event string) []any {
	var out []any
	for _, call := range f.sender.SendCalls() {
		if call.Event == event {
			out = append(out, call.Payload)
		}
	}
	return out
}

func TestApplyInput_Insert(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		line      string
		wantText  string
		selection models.Selection
		wantRange pkgapi.EditRange
		wantCaret int
	}{
		{
			name:      "at caret",
			text:      "ab",
			selection: models.Selection{Start: 1, End: 1},
			line:      "X",
			wantText:  "aX\nb",
			wantRange: pkgapi.EditRange{S: 1, E: 3},
			wantCaret: 3,
		},
		{
			name:      "replaces backward selection",
			text:      "hello world",
			selection: models.Selection{Start: 11, End: 6, Direction: models.SelectionBackward},
			line:      "there",
			wantText:  "hello there\n",
			wantRange: pkgapi.EditRange{S: 6, E: 12},
			wantCaret: 12,
		},
		{
			name:      "empty line inserts newline",
			text:      "ab",
			selection: models.Selection{Start: 2, End: 2},
			line:      "",
			wantText:  "ab\n",
			wantRange: pkgapi.EditRange{S: 2, E: 3},
			wantCaret: 3,
		},
		{
			name:      "surrogate pair counts two units",
			text:      "",
			selection: models.Selection{},
			line:      "😀",
			wantText:  "😀\n",
			wantRange: pkgapi.EditRange{S: 0, E: 3},
			wantCaret: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newInputFixture(t, tt.text)
			f.rec.SetSelection(tt.selection)

			assert.True(t, f.cli.applyInput(context.Background(), f.rec, tt.line))

			edits := f.sent(pkgapi.EventEdit)
			require.Len(t, edits, 1)
			edit, ok := edits[0].(pkgapi.EditRequest)
			require.True(t, ok)
			assert.Equal(t, tt.wantText, edit.Text)
			assert.Equal(t, tt.wantRange.S, edit.Range.S)
			assert.Equal(t, tt.wantRange.E, edit.Range.E)
			require.NotNil(t, edit.Version)
			assert.Equal(t, int64(7), *edit.Version)

			view := f.rec.View()
			assert.Equal(t, tt.wantText, view.Snapshot.Text)
			assert.Equal(t, tt.wantCaret, view.Selection.Start)
			assert.Equal(t, tt.wantCaret, view.Selection.End)
		})
	}
}

func TestApplyInput_Commands(t *testing.T) {
	t.Run("name", func(t *testing.T) {
		f := newInputFixture(t, "")

		assert.True(t, f.cli.applyInput(context.Background(), f.rec, ":name  Ada   Lovelace"))

		names := f.sent(pkgapi.EventSetName)
		require.Len(t, names, 1)
		assert.Equal(t, pkgapi.SetNameRequest{Name: "Ada Lovelace"}, names[0])
		assert.Equal(t, "Ada Lovelace", f.prefs.name)
	})

	t.Run("blank name is reported", func(t *testing.T) {
		f := newInputFixture(t, "")

		assert.True(t, f.cli.applyInput(context.Background(), f.rec, ":name"))

		assert.Empty(t, f.sent(pkgapi.EventSetName))
		assert.Contains(t, f.out.String(), "Error:")
	})

	t.Run("workspace", func(t *testing.T) {
		f := newInputFixture(t, "")

		assert.True(t, f.cli.applyInput(context.Background(), f.rec, ":ws Design Notes"))

		switches := f.sent(pkgapi.EventSwitchWorkspace)
		require.Len(t, switches, 1)
		assert.Equal(t, pkgapi.SwitchWorkspaceRequest{Workspace: "designnotes"}, switches[0])
		assert.Equal(t, "designnotes", f.prefs.workspace)
	})

	t.Run("goto sends caret at once", func(t *testing.T) {
		f := newInputFixture(t, "hello")

		assert.True(t, f.cli.applyInput(context.Background(), f.rec, ":goto 3"))

		carets := f.sent(pkgapi.EventCursor)
		require.NotEmpty(t, carets)
		assert.Equal(t, pkgapi.CursorRequest{Pos: 3}, carets[len(carets)-1])
		assert.Equal(t, 3, f.rec.View().Selection.Caret())
	})

	t.Run("goto clamps", func(t *testing.T) {
		f := newInputFixture(t, "hello")

		f.cli.applyInput(context.Background(), f.rec, ":goto 99")
		assert.Equal(t, 5, f.rec.View().Selection.Caret())
	})

	t.Run("goto rejects garbage", func(t *testing.T) {
		f := newInputFixture(t, "hello")

		assert.True(t, f.cli.applyInput(context.Background(), f.rec, ":goto abc"))
		assert.Contains(t, f.out.String(), `invalid position "abc"`)
	})

	t.Run("focus and blur", func(t *testing.T) {
		f := newInputFixture(t, "")

		f.cli.applyInput(context.Background(), f.rec, ":focus")
		assert.True(t, f.rec.View().Focused)

		f.cli.applyInput(context.Background(), f.rec, ":blur")
		assert.False(t, f.rec.View().Focused)
	})

	t.Run("quit", func(t *testing.T) {
		f := newInputFixture(t, "")
		assert.False(t, f.cli.applyInput(context.Background(), f.rec, ":quit"))
	})

	t.Run("unknown", func(t *testing.T) {
		f := newInputFixture(t, "")

		assert.True(t, f.cli.applyInput(context.Background(), f.rec, ":bogus"))
		assert.Contains(t, f.out.String(), "Unknown command :bogus")
	})
}
