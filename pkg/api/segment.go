package api

import "encoding/json"

// Segment is a highlight range as it travels on the wire. Bounds are kept as
// JSON numbers; a segment whose bounds are missing or not numbers is marked
// Malformed instead of failing the whole payload.
type Segment struct {
	Color     string  `json:"color"`
	Start     float64 `json:"start"`
	End       float64 `json:"end"`
	Malformed bool    `json:"-"`
}

// UnmarshalJSON never fails: anything that is not an object with numeric
// bounds becomes a Malformed segment.
func (s *Segment) UnmarshalJSON(b []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(b, &raw); err != nil || raw == nil {
		*s = Segment{Malformed: true}
		return nil
	}

	start, okStart := raw["start"].(float64)
	end, okEnd := raw["end"].(float64)
	color, _ := raw["color"].(string)

	*s = Segment{
		Color:     color,
		Start:     start,
		End:       end,
		Malformed: !okStart || !okEnd,
	}
	return nil
}
