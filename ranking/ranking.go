package ranking

import (
	"math"
	"sort"
	"time"

	"github.com/sacavia/sacavia-api/geo"
	"github.com/sacavia/sacavia-api/schema"
	"github.com/sacavia/sacavia-api/utils"
)

// Ranked is a location along with its distance from the search origin.
// Distance is only meaningful when HasDistance is set.
type Ranked struct {
	Location    schema.Location
	Distance    float64
	HasDistance bool
}

// Wrap turns store results into ranked items without distances
func Wrap(locations []schema.Location) []Ranked {
	items := make([]Ranked, 0, len(locations))
	for _, l := range locations {
		items = append(items, Ranked{Location: l})
	}
	return items
}

// WithinRadius keeps the candidates located within radiusKm of origin and
// attaches their distance. Candidates without usable coordinates are
// dropped. The candidate order is preserved.
func WithinRadius(candidates []schema.Location, origin schema.Coordinates, radiusKm float64) []Ranked {
	items := make([]Ranked, 0, len(candidates))
	for _, l := range candidates {
		p, ok := l.Point()
		if !ok || !geo.ValidCoordinates(p) {
			continue
		}

		d := geo.Distance(origin, p)
		if d > radiusKm {
			continue
		}

		items = append(items, Ranked{
			Location:    l,
			Distance:    d,
			HasDistance: true,
		})
	}
	return items
}

// SortByDistance orders items nearest first. Items with equal distance keep
// their relative order.
func SortByDistance(items []Ranked) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Distance < items[j].Distance
	})
}

// FilterOpen keeps the items whose open state at now equals open. Each
// location is evaluated in its own timezone when it has one.
func FilterOpen(items []Ranked, open bool, now time.Time) []Ranked {
	filtered := make([]Ranked, 0, len(items))
	for _, item := range items {
		local := utils.LocalTime(now, item.Location.Timezone)
		if utils.IsOpen(item.Location.BusinessHours, local) == open {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// Paginate returns the items of a 1-based page. Pages past the end are
// empty.
func Paginate(items []Ranked, page, limit int) []Ranked {
	if page < 1 || limit < 1 {
		return []Ranked{}
	}

	start := (page - 1) * limit
	if start >= len(items) {
		return []Ranked{}
	}

	end := start + limit
	if end > len(items) {
		end = len(items)
	}

	return items[start:end]
}

// Pagination describes the position of a page within a result set
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	HasNext    bool  `json:"hasNext"`
	HasPrev    bool  `json:"hasPrev"`
}

func NewPagination(page, limit int, total int64) Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(limit)))
	}

	return Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}
