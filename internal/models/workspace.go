package models

import "time"

// Workspace - документ рабочего пространства в том виде, как его хранит сервер.
type Workspace struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Text      string    `json:"text"`
	Segments  []Segment `json:"segments"`
	Version   int64     `json:"version"`
}
