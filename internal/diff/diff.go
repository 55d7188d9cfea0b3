// Package diff computes minimal change descriptors between two text snapshots.
//
// All offsets are UTF-16 code units, which is how browser participants index
// their strings. Text is kept as Go strings and converted on demand.
package diff

import (
	"unicode/utf16"

	"github.com/iudanet/gophcollab/internal/models"
)

// Diff returns the minimal change turning before into after using
// common-prefix and common-suffix trimming. Identical input yields the
// zero-width change at the end of the text.
func Diff(before, after string) models.Change {
	return DiffUnits(Units(before), Units(after))
}

// DiffUnits is Diff over already encoded text.
func DiffUnits(a, b []uint16) models.Change {
	p := 0
	for p < len(a) && p < len(b) && a[p] == b[p] {
		p++
	}
	// never split a surrogate pair
	if p > 0 && isHighSurrogate(a[p-1]) {
		p--
	}

	oldEnd := len(a)
	newEnd := len(b)
	for oldEnd > p && newEnd > p && a[oldEnd-1] == b[newEnd-1] {
		oldEnd--
		newEnd--
	}
	if oldEnd < len(a) && newEnd < len(b) && isLowSurrogate(a[oldEnd]) {
		oldEnd++
		newEnd++
	}

	return models.Change{Start: p, OldEnd: oldEnd, NewEnd: newEnd}
}

func isHighSurrogate(u uint16) bool {
	return u >= 0xd800 && u < 0xdc00
}

func isLowSurrogate(u uint16) bool {
	return u >= 0xdc00 && u < 0xe000
}

// Units encodes s as UTF-16 code units.
func Units(s string) []uint16 {
	return utf16.Encode([]rune(s))
}

// Len returns the length of s in UTF-16 code units.
func Len(s string) int {
	n := 0
	for _, r := range s {
		if r >= 0x10000 && r <= 0x10FFFF {
			n += 2
		} else {
			n++
		}
	}
	return n
}

// Slice returns s[start:end] measured in UTF-16 code units. Bounds are clamped.
func Slice(s string, start, end int) string {
	u := Units(s)
	start = models.ClampOffset(start, len(u))
	end = models.ClampOffset(end, len(u))
	if end <= start {
		return ""
	}
	return string(utf16.Decode(u[start:end]))
}

// Splice replaces [start,oldEnd) of s with insert, offsets in UTF-16 code units.
func Splice(s string, start, oldEnd int, insert string) string {
	u := Units(s)
	start = models.ClampOffset(start, len(u))
	oldEnd = models.ClampOffset(oldEnd, len(u))
	if oldEnd < start {
		oldEnd = start
	}

	out := make([]uint16, 0, len(u)-(oldEnd-start)+Len(insert))
	out = append(out, u[:start]...)
	out = append(out, Units(insert)...)
	out = append(out, u[oldEnd:]...)
	return string(utf16.Decode(out))
}
