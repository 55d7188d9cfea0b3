package hub

// Palette - цвета участников в порядке выдачи
var Palette = []string{"#ef4444", "#3b82f6", "#10b981", "#f59e0b", "#8b5cf6", "#ec4899", "#06b6d4"}

// pickColor prefers the first palette color nobody holds and falls back to
// cycling by participant count.
func pickColor(used map[string]bool, participants int) string {
	for _, c := range Palette {
		if !used[c] {
			return c
		}
	}
	return Palette[participants%len(Palette)]
}
