package models

const (
	// DefaultPeerColor используется, если у участника нет цвета
	DefaultPeerColor = "#3b82f6"
	// PeerNameFallback используется, если у участника нет имени
	PeerNameFallback = "Collaborator"
)

// Participant представляет запись в списке присутствия (roster).
type Participant struct {
	ID    string `json:"id"`    // ID идентификатор участника
	Name  string `json:"name"`  // Name отображаемое имя
	Color string `json:"color"` // Color цвет участника
}

// PeerCursor - последняя известная позиция каретки удаленного участника.
// Никогда не содержит локального участника.
type PeerCursor struct {
	ID    string `json:"id"`    // ID идентификатор участника
	Name  string `json:"name"`  // Name отображаемое имя
	Color string `json:"color"` // Color цвет каретки
	Pos   int    `json:"pos"`   // Pos смещение в текущем тексте (UTF-16)
}

// Peers keys peer cursors by participant id.
type Peers map[string]PeerCursor

// Clone returns an independent copy of the map.
func (p Peers) Clone() Peers {
	out := make(Peers, len(p))
	for id, peer := range p {
		out[id] = peer
	}
	return out
}
