package ranking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sacavia/sacavia-api/schema"
)

var origin = schema.Coordinates{Latitude: 42.36, Longitude: -71.06}

func at(name string, lat, lng float64) schema.Location {
	return schema.Location{
		Name:        name,
		Coordinates: &schema.Coordinates{Latitude: lat, Longitude: lng},
	}
}

func names(items []Ranked) []string {
	result := make([]string, 0, len(items))
	for _, item := range items {
		result = append(result, item.Location.Name)
	}
	return result
}

func TestWithinRadius(t *testing.T) {
	lat := 43.0
	lng := -71.06

	candidates := []schema.Location{
		at("eight", origin.Latitude+0.07194571363, origin.Longitude),
		at("zero", origin.Latitude, origin.Longitude),
		{Name: "nowhere"},
		at("broken", 120, 0),
		{Name: "flat", Latitude: &lat, Longitude: &lng},
		at("three", origin.Latitude+0.02697964261, origin.Longitude),
	}

	items := WithinRadius(candidates, origin, 5)
	assert.Equal(t, []string{"zero", "three"}, names(items))
	assert.True(t, items[0].HasDistance)
	assert.Equal(t, 0.0, items[0].Distance)
	assert.InDelta(t, 3.0, items[1].Distance, 0.001)
}

func TestWithinRadiusInclusive(t *testing.T) {
	candidates := []schema.Location{at("three", origin.Latitude+0.02697964261, origin.Longitude)}

	assert.Len(t, WithinRadius(candidates, origin, 3.001), 1)
	assert.Len(t, WithinRadius(candidates, origin, 2.9), 0)
}

func TestSortByDistanceIsStable(t *testing.T) {
	items := []Ranked{
		{Location: schema.Location{Name: "far"}, Distance: 8, HasDistance: true},
		{Location: schema.Location{Name: "tie-a"}, Distance: 3, HasDistance: true},
		{Location: schema.Location{Name: "near"}, Distance: 0, HasDistance: true},
		{Location: schema.Location{Name: "tie-b"}, Distance: 3, HasDistance: true},
	}

	SortByDistance(items)
	assert.Equal(t, []string{"near", "tie-a", "tie-b", "far"}, names(items))
}

func TestFilterOpen(t *testing.T) {
	hours := []schema.BusinessHours{{Day: "Monday", Open: "09:00", Close: "17:00"}}
	items := Wrap([]schema.Location{
		{Name: "open", BusinessHours: hours},
		{Name: "unknown"},
		{Name: "shifted", BusinessHours: hours, Timezone: "GMT+8"},
	})

	// monday 10:00 UTC is monday 18:00 in GMT+8
	now := time.Date(2020, 6, 1, 10, 0, 0, 0, time.UTC)
	utcItems := make([]Ranked, len(items))
	for i, item := range items {
		if item.Location.Timezone == "" {
			item.Location.Timezone = "GMT+0"
		}
		utcItems[i] = item
	}

	assert.Equal(t, []string{"open"}, names(FilterOpen(utcItems, true, now)))
	assert.Equal(t, []string{"unknown", "shifted"}, names(FilterOpen(utcItems, false, now)))
}

func TestPaginate(t *testing.T) {
	items := Wrap([]schema.Location{{Name: "a"}, {Name: "b"}, {Name: "c"}, {Name: "d"}, {Name: "e"}})

	assert.Equal(t, []string{"a", "b"}, names(Paginate(items, 1, 2)))
	assert.Equal(t, []string{"c", "d"}, names(Paginate(items, 2, 2)))
	assert.Equal(t, []string{"e"}, names(Paginate(items, 3, 2)))
	assert.Len(t, Paginate(items, 4, 2), 0)
	assert.Len(t, Paginate(items, 0, 2), 0)
	assert.Len(t, Paginate(nil, 1, 20), 0)
}

func TestNewPagination(t *testing.T) {
	assert.Equal(t, Pagination{
		Page:       1,
		Limit:      20,
		Total:      2,
		TotalPages: 1,
		HasNext:    false,
		HasPrev:    false,
	}, NewPagination(1, 20, 2))

	p := NewPagination(2, 2, 5)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)

	p = NewPagination(3, 2, 5)
	assert.False(t, p.HasNext)

	p = NewPagination(1, 20, 0)
	assert.Equal(t, 0, p.TotalPages)
	assert.False(t, p.HasNext)
	assert.False(t, p.HasPrev)
}
