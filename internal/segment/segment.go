// Package segment maintains colored highlight ranges over a document.
package segment

import (
	"sort"

	"github.com/iudanet/gophcollab/internal/models"
)

// Normalize clamps every range into [0,textLen], drops empty ranges, sorts by
// (start,end) and merges left to right. Same-color ranges that overlap or touch
// are joined; when different colors overlap the earlier range is clipped at
// the start of the later one. The result never overlaps and Normalize is
// idempotent.
func Normalize(list []models.Segment, textLen int) []models.Segment {
	clamped := make([]models.Segment, 0, len(list))
	for _, seg := range list {
		seg.Start = models.ClampOffset(seg.Start, textLen)
		seg.End = models.ClampOffset(seg.End, textLen)
		if seg.End <= seg.Start {
			continue
		}
		clamped = append(clamped, seg)
	}

	sort.SliceStable(clamped, func(i, j int) bool {
		if clamped[i].Start != clamped[j].Start {
			return clamped[i].Start < clamped[j].Start
		}
		return clamped[i].End < clamped[j].End
	})

	out := make([]models.Segment, 0, len(clamped))
	for _, seg := range clamped {
		merged := false
		for len(out) > 0 {
			last := &out[len(out)-1]
			if last.Color == seg.Color {
				if seg.Start <= last.End {
					if seg.End > last.End {
						last.End = seg.End
					}
					merged = true
				}
				break
			}
			if seg.Start >= last.End {
				break
			}
			// later range wins the contested part
			last.End = seg.Start
			if last.End > last.Start {
				break
			}
			// обрезанный диапазон пуст: убираем и проверяем предыдущий
			out = out[:len(out)-1]
		}
		if !merged {
			out = append(out, seg)
		}
	}

	return out
}

// ApplyLocalEdit rewrites segments for a committed edit made by the author
// with authorColor. Segments ending at or before change.Start stay as they
// are, segments starting at or after change.OldEnd shift by the change delta.
// Every segment touching the replaced range is folded together with
// [Start,NewEnd) into one span owned by the author. textLen is the length of
// the text after the edit.
func ApplyLocalEdit(segs []models.Segment, change models.Change, authorColor string, textLen int) []models.Segment {
	c := change.Sanitized()
	delta := c.Delta()

	out := make([]models.Segment, 0, len(segs)+1)
	touched := false
	unionStart, unionEnd := c.Start, c.NewEnd

	for _, seg := range segs {
		if seg.End <= seg.Start {
			continue
		}
		switch {
		case seg.End <= c.Start:
			out = append(out, seg)
		case seg.Start >= c.OldEnd:
			seg.Start += delta
			seg.End += delta
			out = append(out, seg)
		default:
			touched = true
			if seg.Start < unionStart {
				unionStart = seg.Start
			}
			end := c.NewEnd
			if seg.End > c.OldEnd {
				end = seg.End + delta
			}
			if end > unionEnd {
				unionEnd = end
			}
		}
	}

	if touched || c.NewEnd > c.Start {
		out = append(out, models.Segment{Start: unionStart, End: unionEnd, Color: authorColor})
	}

	return Normalize(out, textLen)
}

// ApplyRemoteSnapshot replaces local segments with the authoritative list.
// Nothing local survives.
func ApplyRemoteSnapshot(list []models.Segment, textLen int) []models.Segment {
	return Normalize(list, textLen)
}
