package format

import (
	"math"
	"strings"
	"time"

	"github.com/sacavia/sacavia-api/schema"
	"github.com/sacavia/sacavia-api/utils"
)

// Options carries the per-request context of the formatter
type Options struct {
	Now   time.Time
	Saved map[string]bool
}

type Image struct {
	ID  string `json:"id,omitempty"`
	URL string `json:"url"`
	Alt string `json:"alt,omitempty"`
}

type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Slug  string `json:"slug,omitempty"`
	Color string `json:"color,omitempty"`
}

// LocationResponse is the shape of a location returned to mobile clients
type LocationResponse struct {
	ID               string              `json:"id"`
	Name             string              `json:"name"`
	Slug             string              `json:"slug"`
	Description      string              `json:"description"`
	ShortDescription string              `json:"shortDescription"`
	FeaturedImage    *Image              `json:"featuredImage"`
	Categories       []Category          `json:"categories"`
	Address          string              `json:"address"`
	Coordinates      *schema.Coordinates `json:"coordinates"`
	PriceRange       string              `json:"priceRange,omitempty"`
	Rating           float64             `json:"rating"`
	ReviewCount      int64               `json:"reviewCount"`
	IsOpen           bool                `json:"isOpen"`
	TodayHours       string              `json:"todayHours,omitempty"`
	Distance         *float64            `json:"distance,omitempty"`
	IsVerified       bool                `json:"isVerified"`
	IsFeatured       bool                `json:"isFeatured"`
	IsSaved          bool                `json:"isSaved"`
	CreatedAt        time.Time           `json:"createdAt"`
	UpdatedAt        time.Time           `json:"updatedAt"`
}

// Address renders an address as a single line. Structured addresses are
// joined by spaces in street, city, state, zip, country order. String
// addresses are returned as stored.
func Address(a schema.Address) string {
	if !a.Structured() {
		return a.Formatted
	}

	parts := make([]string, 0, 5)
	for _, p := range []string{a.Street, a.City, a.State, a.Zip, a.Country} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}

	return strings.Join(parts, " ")
}

// Location shapes a stored location for the response. The open state is
// evaluated at opts.Now in the timezone of the location.
func Location(l schema.Location, distance *float64, opts Options) LocationResponse {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	isOpen, todayHours := utils.BusinessStatus(l.BusinessHours, utils.LocalTime(now, l.Timezone))

	r := LocationResponse{
		ID:               l.ID.Hex(),
		Name:             l.Name,
		Slug:             l.Slug,
		Description:      l.Description,
		ShortDescription: l.ShortDescription,
		FeaturedImage:    image(l.FeaturedImage()),
		Categories:       categories(l.Categories()),
		Address:          Address(l.Address()),
		PriceRange:       l.PriceRange,
		Rating:           l.AverageRating,
		ReviewCount:      l.ReviewCount,
		IsOpen:           isOpen,
		TodayHours:       todayHours,
		IsVerified:       l.IsVerified,
		IsFeatured:       l.IsFeatured,
		IsSaved:          opts.Saved[l.ID.Hex()],
		CreatedAt:        l.CreatedAt,
		UpdatedAt:        l.UpdatedAt,
	}

	if p, ok := l.Point(); ok {
		r.Coordinates = &p
	}

	if distance != nil {
		d := Kilometres(*distance)
		r.Distance = &d
	}

	return r
}

// Kilometres rounds a distance to two decimals
func Kilometres(d float64) float64 {
	return math.Round(d*100) / 100
}

func image(m schema.Media) *Image {
	if m.URL == "" && m.ID == "" {
		return nil
	}
	return &Image{
		ID:  m.ID,
		URL: m.URL,
		Alt: m.Alt,
	}
}

func categories(refs []schema.CategoryRef) []Category {
	result := make([]Category, 0, len(refs))
	for _, c := range refs {
		result = append(result, Category{
			ID:    c.ID,
			Name:  c.Name,
			Slug:  c.Slug,
			Color: c.Color,
		})
	}
	return result
}
