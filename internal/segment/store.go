package segment

import "github.com/iudanet/gophcollab/internal/models"

// Store owns the current segment list of one document.
// It is not safe for concurrent use.
type Store struct {
	segs []models.Segment
}

// NewStore returns a store holding the normalized list.
func NewStore(list []models.Segment, textLen int) *Store {
	return &Store{segs: Normalize(list, textLen)}
}

// List returns a copy of the current segments.
func (s *Store) List() []models.Segment {
	out := make([]models.Segment, len(s.segs))
	copy(out, s.segs)
	return out
}

// Len returns the number of segments.
func (s *Store) Len() int {
	return len(s.segs)
}

// Replace adopts an authoritative list.
func (s *Store) Replace(list []models.Segment, textLen int) {
	s.segs = ApplyRemoteSnapshot(list, textLen)
}

// Edit applies a committed edit made by the owner of authorColor.
func (s *Store) Edit(change models.Change, authorColor string, textLen int) {
	s.segs = ApplyLocalEdit(s.segs, change, authorColor, textLen)
}

// Reset drops every segment.
func (s *Store) Reset() {
	s.segs = nil
}
