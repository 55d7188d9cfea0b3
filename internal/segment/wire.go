package segment

import (
	"math"

	"github.com/iudanet/gophcollab/internal/models"
	"github.com/iudanet/gophcollab/pkg/api"
)

// maxBound keeps float to int conversion well defined.
const maxBound = 1 << 53

// FromWire converts wire segments, dropping the ones with missing or
// non-finite bounds and truncating fractional bounds. Inverted and
// out-of-range bounds are left for Normalize.
func FromWire(list []api.Segment) []models.Segment {
	out := make([]models.Segment, 0, len(list))
	for _, seg := range list {
		if seg.Malformed || !finite(seg.Start) || !finite(seg.End) {
			continue
		}
		out = append(out, models.Segment{
			Start: toOffset(seg.Start),
			End:   toOffset(seg.End),
			Color: seg.Color,
		})
	}
	return out
}

// ToWire converts normalized segments for broadcasting.
func ToWire(list []models.Segment) []api.Segment {
	out := make([]api.Segment, 0, len(list))
	for _, seg := range list {
		out = append(out, api.Segment{
			Start: float64(seg.Start),
			End:   float64(seg.End),
			Color: seg.Color,
		})
	}
	return out
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func toOffset(v float64) int {
	v = math.Trunc(v)
	if v > maxBound {
		v = maxBound
	}
	if v < -maxBound {
		v = -maxBound
	}
	return int(v)
}
