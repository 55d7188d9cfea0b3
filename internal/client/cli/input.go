package cli

import (
	"context"
	"strconv"
	"strings"

	"github.com/iudanet/gophcollab/internal/client/sync"
	"github.com/iudanet/gophcollab/internal/diff"
	"github.com/iudanet/gophcollab/internal/models"
)

// InputKind классифицирует строку, введенную во время сессии
type InputKind int

const (
	InputInsert InputKind = iota
	InputName
	InputWorkspace
	InputGoto
	InputFocus
	InputBlur
	InputQuit
	InputUnknown
)

// Input is one parsed line of session input.
type Input struct {
	Arg  string
	Kind InputKind
}

// ParseInput classifies a line. Lines not starting with ':' are text; a
// leading "::" escapes a literal colon.
func ParseInput(line string) Input {
	if !strings.HasPrefix(line, ":") {
		return Input{Kind: InputInsert, Arg: line}
	}
	if strings.HasPrefix(line, "::") {
		return Input{Kind: InputInsert, Arg: line[1:]}
	}

	cmd, arg, _ := strings.Cut(strings.TrimSpace(line[1:]), " ")
	arg = strings.TrimSpace(arg)

	switch cmd {
	case "name":
		return Input{Kind: InputName, Arg: arg}
	case "ws":
		return Input{Kind: InputWorkspace, Arg: arg}
	case "goto":
		return Input{Kind: InputGoto, Arg: arg}
	case "focus":
		return Input{Kind: InputFocus}
	case "blur":
		return Input{Kind: InputBlur}
	case "quit", "q":
		return Input{Kind: InputQuit}
	default:
		return Input{Kind: InputUnknown, Arg: cmd}
	}
}

// applyInput runs one line against the reconciler. It must be called on the
// reconciler's loop. It reports false when the session should end.
func (c *Cli) applyInput(ctx context.Context, rec *sync.Reconciler, line string) bool {
	in := ParseInput(line)

	switch in.Kind {
	case InputInsert:
		insertLine(rec, in.Arg)
	case InputName:
		if err := rec.SetName(ctx, in.Arg); err != nil {
			c.io.Printf("Error: %v\n", err)
		}
	case InputWorkspace:
		rec.SwitchWorkspace(ctx, in.Arg)
	case InputGoto:
		pos, err := strconv.Atoi(in.Arg)
		if err != nil {
			c.io.Printf("Error: invalid position %q\n", in.Arg)
			return true
		}
		rec.Click(models.Selection{Start: pos, End: pos, Direction: models.SelectionNone})
	case InputFocus:
		rec.Focus()
	case InputBlur:
		rec.Blur()
	case InputQuit:
		return false
	default:
		c.io.Printf("Unknown command :%s\n", in.Arg)
	}
	return true
}

// insertLine replaces the selection with text plus a newline and leaves the
// caret after the inserted text.
func insertLine(rec *sync.Reconciler, text string) {
	view := rec.View()
	lo, hi := view.Selection.Start, view.Selection.End
	if hi < lo {
		lo, hi = hi, lo
	}

	insert := text + "\n"
	next := diff.Splice(view.Snapshot.Text, lo, hi, insert)
	caret := models.ClampOffset(lo, diff.Len(view.Snapshot.Text)) + diff.Len(insert)

	rec.LocalEdit(next, models.Selection{Start: caret, End: caret, Direction: models.SelectionNone})
}
