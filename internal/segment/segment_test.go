package segment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gophcollab/internal/models"
)

const (
	red  = "#ef4444"
	blue = "#3b82f6"
)

func seg(start, end int, color string) models.Segment {
	return models.Segment{Start: start, End: end, Color: color}
}

// requireNormalized проверяет инварианты нормализованного списка
func requireNormalized(t *testing.T, list []models.Segment, textLen int) {
	t.Helper()
	for i, s := range list {
		require.GreaterOrEqual(t, s.Start, 0)
		require.LessOrEqual(t, s.End, textLen)
		require.Less(t, s.Start, s.End, "segment %d is empty", i)
		if i == 0 {
			continue
		}
		prev := list[i-1]
		require.LessOrEqual(t, prev.End, s.Start, "segments %d and %d overlap", i-1, i)
		if prev.Color == s.Color {
			require.Less(t, prev.End, s.Start, "same-color segments %d and %d touch", i-1, i)
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		in      []models.Segment
		want    []models.Segment
		textLen int
	}{
		{
			name:    "empty",
			in:      nil,
			want:    []models.Segment{},
			textLen: 10,
		},
		{
			name:    "clamps into text",
			in:      []models.Segment{seg(-5, 3, red), seg(8, 20, blue)},
			want:    []models.Segment{seg(0, 3, red), seg(8, 10, blue)},
			textLen: 10,
		},
		{
			name:    "drops empty and inverted",
			in:      []models.Segment{seg(5, 5, red), seg(7, 3, blue), seg(12, 15, red)},
			want:    []models.Segment{},
			textLen: 10,
		},
		{
			name:    "same color overlap is merged",
			in:      []models.Segment{seg(0, 5, red), seg(3, 8, red)},
			want:    []models.Segment{seg(0, 8, red)},
			textLen: 10,
		},
		{
			name:    "same color touching is merged",
			in:      []models.Segment{seg(0, 5, red), seg(5, 8, red)},
			want:    []models.Segment{seg(0, 8, red)},
			textLen: 10,
		},
		{
			name:    "different color overlap clips earlier tail",
			in:      []models.Segment{seg(0, 6, red), seg(4, 9, blue)},
			want:    []models.Segment{seg(0, 4, red), seg(4, 9, blue)},
			textLen: 10,
		},
		{
			name:    "different color adjacent is kept",
			in:      []models.Segment{seg(0, 4, red), seg(4, 9, blue)},
			want:    []models.Segment{seg(0, 4, red), seg(4, 9, blue)},
			textLen: 10,
		},
		{
			name:    "contained different color wins its range",
			in:      []models.Segment{seg(0, 10, red), seg(2, 4, blue)},
			want:    []models.Segment{seg(0, 2, red), seg(2, 4, blue)},
			textLen: 10,
		},
		{
			name:    "unsorted input",
			in:      []models.Segment{seg(6, 9, blue), seg(0, 3, red)},
			want:    []models.Segment{seg(0, 3, red), seg(6, 9, blue)},
			textLen: 10,
		},
		{
			name:    "clipped to empty is removed and neighbours merge",
			in:      []models.Segment{seg(0, 5, red), seg(5, 6, blue), seg(5, 9, red)},
			want:    []models.Segment{seg(0, 9, red)},
			textLen: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in, tt.textLen)
			assert.Equal(t, tt.want, got)
			requireNormalized(t, got, tt.textLen)
			assert.Equal(t, got, Normalize(got, tt.textLen), "normalize must be idempotent")
		})
	}
}

func TestNormalize_DoesNotMutateInput(t *testing.T) {
	in := []models.Segment{seg(0, 6, red), seg(4, 9, blue)}
	Normalize(in, 10)
	assert.Equal(t, []models.Segment{seg(0, 6, red), seg(4, 9, blue)}, in)
}

func TestNormalize_IdempotentOnGrid(t *testing.T) {
	colors := []string{red, blue, ""}
	var in []models.Segment
	for i := -2; i < 12; i += 3 {
		for j := i - 1; j < i+7; j += 2 {
			in = append(in, seg(i, j, colors[(i+j+6)%3]))
		}
	}

	once := Normalize(in, 10)
	requireNormalized(t, once, 10)
	assert.Equal(t, once, Normalize(once, 10))
}

func TestApplyLocalEdit(t *testing.T) {
	tests := []struct {
		name    string
		segs    []models.Segment
		want    []models.Segment
		change  models.Change
		textLen int
	}{
		{
			name:    "insert tags typed range",
			segs:    nil,
			change:  models.Change{Start: 5, OldEnd: 5, NewEnd: 11},
			want:    []models.Segment{seg(5, 11, red)},
			textLen: 11,
		},
		{
			name:    "before untouched and after shifted",
			segs:    []models.Segment{seg(0, 2, blue), seg(6, 8, blue)},
			change:  models.Change{Start: 3, OldEnd: 4, NewEnd: 5},
			want:    []models.Segment{seg(0, 2, blue), seg(3, 5, red), seg(7, 9, blue)},
			textLen: 10,
		},
		{
			name:    "partial overlap from the left collapses into author span",
			segs:    []models.Segment{seg(0, 4, blue)},
			change:  models.Change{Start: 2, OldEnd: 6, NewEnd: 3},
			want:    []models.Segment{seg(0, 3, red)},
			textLen: 8,
		},
		{
			name:    "partial overlap from the right keeps shifted tail",
			segs:    []models.Segment{seg(4, 10, blue)},
			change:  models.Change{Start: 2, OldEnd: 6, NewEnd: 3},
			want:    []models.Segment{seg(2, 7, red)},
			textLen: 10,
		},
		{
			name:    "pure deletion without touched segments",
			segs:    []models.Segment{seg(0, 2, blue), seg(8, 10, blue)},
			change:  models.Change{Start: 3, OldEnd: 5, NewEnd: 3},
			want:    []models.Segment{seg(0, 2, blue), seg(6, 8, blue)},
			textLen: 8,
		},
		{
			name:    "insert inside a segment",
			segs:    []models.Segment{seg(0, 10, blue)},
			change:  models.Change{Start: 4, OldEnd: 4, NewEnd: 6},
			want:    []models.Segment{seg(0, 12, red)},
			textLen: 12,
		},
		{
			name:    "typing after own segment extends it",
			segs:    []models.Segment{seg(0, 5, red)},
			change:  models.Change{Start: 5, OldEnd: 5, NewEnd: 11},
			want:    []models.Segment{seg(0, 11, red)},
			textLen: 11,
		},
		{
			name:    "insert at start of foreign segment shifts it",
			segs:    []models.Segment{seg(5, 8, blue)},
			change:  models.Change{Start: 5, OldEnd: 5, NewEnd: 7},
			want:    []models.Segment{seg(5, 7, red), seg(7, 10, blue)},
			textLen: 10,
		},
		{
			name:    "no-op change keeps segments",
			segs:    []models.Segment{seg(1, 3, blue)},
			change:  models.Change{Start: 4, OldEnd: 4, NewEnd: 4},
			want:    []models.Segment{seg(1, 3, blue)},
			textLen: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyLocalEdit(tt.segs, tt.change, red, tt.textLen)
			assert.Equal(t, tt.want, got)
			requireNormalized(t, got, tt.textLen)
		})
	}
}

func TestApplyRemoteSnapshot(t *testing.T) {
	got := ApplyRemoteSnapshot([]models.Segment{seg(3, 8, red), seg(0, 4, red), seg(9, 4, blue)}, 6)
	assert.Equal(t, []models.Segment{seg(0, 6, red)}, got)
}

func TestStore(t *testing.T) {
	s := NewStore([]models.Segment{seg(0, 3, blue)}, 5)
	require.Equal(t, 1, s.Len())

	s.Edit(models.Change{Start: 5, OldEnd: 5, NewEnd: 8}, red, 8)
	assert.Equal(t, []models.Segment{seg(0, 3, blue), seg(5, 8, red)}, s.List())

	list := s.List()
	list[0].Color = "mutated"
	assert.Equal(t, blue, s.List()[0].Color)

	s.Replace([]models.Segment{seg(1, 2, red)}, 8)
	assert.Equal(t, []models.Segment{seg(1, 2, red)}, s.List())

	s.Reset()
	assert.Empty(t, s.List())
}
