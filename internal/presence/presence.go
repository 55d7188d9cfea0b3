// Package presence reconciles the participant roster with the cached peer
// carets.
package presence

import "github.com/iudanet/gophcollab/internal/models"

// Reconcile rebuilds the peer map from roster. Known peers keep their caret
// and get refreshed identity, new peers start at offset 0 and peers missing
// from roster are dropped. The local participant is never stored as a peer;
// if it is listed, its roster entry is returned so the caller can adopt the
// name and color.
func Reconcile(selfID string, roster []models.Participant, known models.Peers) (models.Peers, *models.Participant) {
	out := make(models.Peers, len(roster))
	var self *models.Participant

	for _, p := range roster {
		if p.ID == "" {
			continue
		}
		if p.ID == selfID {
			entry := p
			self = &entry
			continue
		}

		prev := known[p.ID]
		out[p.ID] = models.PeerCursor{
			ID:    p.ID,
			Name:  firstNonEmpty(p.Name, prev.Name, models.PeerNameFallback),
			Color: firstNonEmpty(p.Color, prev.Color, models.DefaultPeerColor),
			Pos:   prev.Pos,
		}
	}

	return out, self
}

// Apply records a caret update. Updates about the local participant or
// without an id are ignored. The offset is clamped to [0,textLen].
func Apply(known models.Peers, update models.PeerCursor, selfID string, textLen int) models.Peers {
	if update.ID == "" || update.ID == selfID {
		return known
	}

	out := known.Clone()
	prev := known[update.ID]
	out[update.ID] = models.PeerCursor{
		ID:    update.ID,
		Name:  firstNonEmpty(update.Name, prev.Name, models.PeerNameFallback),
		Color: firstNonEmpty(update.Color, prev.Color, models.DefaultPeerColor),
		Pos:   models.ClampOffset(update.Pos, textLen),
	}
	return out
}

// Remove handles a departure notice.
func Remove(known models.Peers, id string) models.Peers {
	if _, ok := known[id]; !ok {
		return known
	}
	out := known.Clone()
	delete(out, id)
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
