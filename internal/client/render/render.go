// Package render paints reconciler state for a terminal: the document with
// author-colored segments, peer carets and a status line.
package render

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"unicode/utf16"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/iudanet/gophcollab/internal/client/sync"
	"github.com/iudanet/gophcollab/internal/models"
)

const (
	defaultWidth = 80
	caretMark    = "|"
	clearScreen  = "\x1b[H\x1b[2J"
)

// Renderer writes views to Out. Styled output uses ANSI colors and redraws
// the whole screen, plain output appends a text block per state.
type Renderer struct {
	Out    io.Writer
	lg     *lipgloss.Renderer
	Width  int
	Styled bool
}

// New picks styled output when w is a terminal and sizes the rule to it.
func New(w io.Writer) *Renderer {
	r := &Renderer{Out: w, Width: defaultWidth, lg: lipgloss.NewRenderer(w)}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		r.Styled = true
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			r.Width = width
		}
	}
	return r
}

// Draw renders view to Out. It matches the reconciler's subscriber signature.
func (r *Renderer) Draw(view sync.State) {
	out := r.Render(view)
	if r.Styled {
		out = clearScreen + out
	}
	_, _ = io.WriteString(r.Out, out)
}

// Render returns the textual picture of view.
func (r *Renderer) Render(view sync.State) string {
	var b strings.Builder

	b.WriteString(r.header(view))
	b.WriteByte('\n')
	b.WriteString(r.rule())
	b.WriteByte('\n')
	b.WriteString(r.body(view))
	b.WriteByte('\n')
	b.WriteString(r.rule())
	b.WriteByte('\n')
	b.WriteString(r.footer(view))

	return b.String()
}

func (r *Renderer) header(view sync.State) string {
	name := view.Workspace.Name
	if name == "" {
		name = view.Workspace.ID
	}
	if !view.Initialized {
		name = "connecting..."
	}

	line := fmt.Sprintf("%s  v%d  Words: %d  Lines: %d  Chars: %d",
		name, view.Snapshot.Version, view.Metrics.Words, view.Metrics.Lines, view.Metrics.Chars)
	if !r.Styled {
		return line
	}
	return r.lg.NewStyle().Bold(true).Render(line)
}

func (r *Renderer) rule() string {
	width := r.Width
	if width <= 0 {
		width = defaultWidth
	}
	return strings.Repeat("-", width)
}

// body walks the text in UTF-16 units, cutting it at every segment edge and
// peer caret, and paints each run.
func (r *Renderer) body(view sync.State) string {
	units := utf16.Encode([]rune(view.Snapshot.Text))
	peers := sortedPeers(view.Peers)

	cuts := map[int]struct{}{0: {}, len(units): {}}
	for _, seg := range view.Segments {
		cuts[models.ClampOffset(seg.Start, len(units))] = struct{}{}
		cuts[models.ClampOffset(seg.End, len(units))] = struct{}{}
	}
	carets := make(map[int][]models.PeerCursor)
	for _, p := range peers {
		pos := models.ClampOffset(p.Pos, len(units))
		cuts[pos] = struct{}{}
		carets[pos] = append(carets[pos], p)
	}

	points := make([]int, 0, len(cuts))
	for pos := range cuts {
		points = append(points, pos)
	}
	sort.Ints(points)

	var b strings.Builder
	for i, pos := range points {
		for _, p := range carets[pos] {
			b.WriteString(r.paint(caretMark, p.Color, true))
		}
		if i+1 == len(points) {
			break
		}
		run := string(utf16.Decode(units[pos:points[i+1]]))
		b.WriteString(r.paint(run, colorAt(view.Segments, pos), false))
	}
	return b.String()
}

func (r *Renderer) footer(view sync.State) string {
	var b strings.Builder

	self := view.Self.Name
	if self == "" {
		self = models.PeerNameFallback
	}
	fmt.Fprintf(&b, "you: %s", r.paint(self, view.Self.Color, false))
	if view.Focused {
		fmt.Fprintf(&b, " @%d", view.Selection.Caret())
	}
	b.WriteByte('\n')

	for _, p := range sortedPeers(view.Peers) {
		fmt.Fprintf(&b, "%s %s @%d\n", r.paint(caretMark, p.Color, true), p.Name, p.Pos)
	}
	return b.String()
}

// paint colors s when output is styled. Carets are bold so they stand out
// inside a segment of the same color.
func (r *Renderer) paint(s, color string, bold bool) string {
	if !r.Styled || color == "" || s == "" {
		return s
	}
	style := r.lg.NewStyle().Foreground(lipgloss.Color(color))
	if bold {
		style = style.Bold(true)
	}
	return style.Render(s)
}

// colorAt returns the color of the segment covering pos. Segments are
// normalized so at most one matches.
func colorAt(segs []models.Segment, pos int) string {
	for _, seg := range segs {
		if seg.Start <= pos && pos < seg.End {
			return seg.Color
		}
	}
	return ""
}

func sortedPeers(peers models.Peers) []models.PeerCursor {
	out := make([]models.PeerCursor, 0, len(peers))
	for _, p := range peers {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out
}
