package models

import (
	"strings"
	"unicode/utf16"
)

// Snapshot представляет полный текст документа и его версию на сервере.
// Клиент хранит локальную копию и версию, которую он принял последней.
type Snapshot struct {
	Text    string `json:"text"`    // Text полный текст документа
	Version int64  `json:"version"` // Version монотонная версия, назначенная сервером
}

// Change is the minimal replacement descriptor: the substring [Start,OldEnd)
// of the old text was replaced by [Start,NewEnd) of the new text.
// Offsets are UTF-16 code units.
type Change struct {
	Start  int `json:"start"`
	OldEnd int `json:"old_end"`
	NewEnd int `json:"new_end"`
}

// Delta returns how much offsets at or after OldEnd move.
func (c Change) Delta() int {
	return (c.NewEnd - c.Start) - (c.OldEnd - c.Start)
}

// IsZero reports whether the change replaces nothing with nothing.
func (c Change) IsZero() bool {
	return c.Start == c.OldEnd && c.Start == c.NewEnd
}

// Valid checks 0 <= Start <= OldEnd and Start <= NewEnd.
func (c Change) Valid() bool {
	return c.Start >= 0 && c.Start <= c.OldEnd && c.Start <= c.NewEnd
}

// Sanitized returns a copy that satisfies Valid, clamping inverted bounds.
func (c Change) Sanitized() Change {
	if c.Start < 0 {
		c.Start = 0
	}
	if c.OldEnd < c.Start {
		c.OldEnd = c.Start
	}
	if c.NewEnd < c.Start {
		c.NewEnd = c.Start
	}
	return c
}

// Segment - подсвеченный диапазон документа, помеченный цветом автора.
type Segment struct {
	Color string `json:"color"` // Color токен цвета автора
	Start int    `json:"start"` // Start начало диапазона (включительно)
	End   int    `json:"end"`   // End конец диапазона (не включительно)
}

// Len returns the width of the segment, never negative.
func (s Segment) Len() int {
	if s.End <= s.Start {
		return 0
	}
	return s.End - s.Start
}

// WorkspaceRef identifies the active document session.
type WorkspaceRef struct {
	Version *int64 `json:"version,omitempty"`
	ID      string `json:"id"`
	Name    string `json:"name"`
}

// SelectionDirection mirrors the editor's selection direction.
type SelectionDirection string

const (
	SelectionForward  SelectionDirection = "forward"
	SelectionBackward SelectionDirection = "backward"
	SelectionNone     SelectionDirection = "none"
)

// Selection - локальное выделение (или каретка, если Start == End).
type Selection struct {
	Direction SelectionDirection `json:"direction"`
	Start     int                `json:"start"`
	End       int                `json:"end"`
}

// Caret returns the offset broadcast to peers. Like a textarea's
// selectionStart, it is the lower end of the selection.
func (s Selection) Caret() int {
	if s.End < s.Start {
		return s.End
	}
	return s.Start
}

// Clamp keeps both endpoints inside [0,textLen].
func (s Selection) Clamp(textLen int) Selection {
	s.Start = ClampOffset(s.Start, textLen)
	s.End = ClampOffset(s.End, textLen)
	return s
}

// Scroll holds opaque view scroll offsets preserved across remote updates.
type Scroll struct {
	Top  int `json:"top"`
	Left int `json:"left"`
}

// Metrics - производные метрики для статусной строки.
type Metrics struct {
	Lines int `json:"lines"`
	Words int `json:"words"`
	Chars int `json:"chars"`
}

// ComputeMetrics derives line, word and character counts from text.
// Chars counts UTF-16 code units so it agrees with every other offset.
func ComputeMetrics(text string) Metrics {
	m := Metrics{
		Chars: len(utf16.Encode([]rune(text))),
		Words: len(strings.Fields(text)),
		Lines: 1,
	}
	if text != "" {
		m.Lines = strings.Count(text, "\n") + 1
	}
	return m
}

// ClampOffset keeps pos inside [0,textLen].
func ClampOffset(pos, textLen int) int {
	if textLen < 0 {
		textLen = 0
	}
	if pos < 0 {
		return 0
	}
	if pos > textLen {
		return textLen
	}
	return pos
}
