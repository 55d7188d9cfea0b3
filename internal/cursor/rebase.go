// Package cursor tracks caret offsets: it rebases remote peers' carets through
// document changes and throttles broadcasting of the local caret.
package cursor

import "github.com/iudanet/gophcollab/internal/models"

// MapPosition moves pos through change. Offsets at or before Start stay put,
// offsets at or after OldEnd shift by the change delta, offsets inside the
// replaced range keep their distance from Start up to the inserted length.
// The result is clamped to [0,textLen].
func MapPosition(pos int, change models.Change, textLen int) int {
	c := change.Sanitized()

	var out int
	switch {
	case pos <= c.Start:
		out = pos
	case pos >= c.OldEnd:
		out = pos + c.Delta()
	default:
		rel := pos - c.Start
		if newLen := c.NewEnd - c.Start; rel > newLen {
			rel = newLen
		}
		out = c.Start + rel
	}

	return models.ClampOffset(out, textLen)
}

// MapSelection maps both selection endpoints and keeps the direction.
func MapSelection(sel models.Selection, change models.Change, textLen int) models.Selection {
	sel.Start = MapPosition(sel.Start, change, textLen)
	sel.End = MapPosition(sel.End, change, textLen)
	return sel
}

// Rebase returns a new peer map with every caret moved through change.
// The author's caret lands at the end of what they just typed. An author
// missing from peers is fine: every other caret is still rebased.
func Rebase(peers models.Peers, change models.Change, authorID string, textLen int) models.Peers {
	out := make(models.Peers, len(peers))
	for id, peer := range peers {
		if id == authorID {
			peer.Pos = models.ClampOffset(change.Sanitized().NewEnd, textLen)
		} else {
			peer.Pos = MapPosition(peer.Pos, change, textLen)
		}
		out[id] = peer
	}
	return out
}
