package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sacavia/sacavia-api/schema"
)

func decodeLocation(t *testing.T, doc bson.M) schema.Location {
	b, err := bson.Marshal(doc)
	assert.NoError(t, err)

	var l schema.Location
	assert.NoError(t, bson.Unmarshal(b, &l))
	return l
}

func TestAddressStructured(t *testing.T) {
	assert.Equal(t, "1 Main St Boston MA", Address(schema.Address{Street: "1 Main St", City: "Boston", State: "MA"}))
	assert.Equal(t, "1 Main St Boston MA 02108 US", Address(schema.Address{
		Street:  " 1 Main St ",
		City:    "Boston",
		State:   "MA",
		Zip:     "02108",
		Country: "US",
	}))
	assert.Equal(t, "Boston", Address(schema.Address{City: "Boston"}))
}

func TestAddressString(t *testing.T) {
	assert.Equal(t, "465 Huntington Ave, Boston", Address(schema.Address{Formatted: "465 Huntington Ave, Boston"}))
	assert.Equal(t, "", Address(schema.Address{}))
	assert.Equal(t, "  12 Pier Rd, Salem ", Address(schema.Address{Formatted: "  12 Pier Rd, Salem "}))
}

func TestLocation(t *testing.T) {
	id := primitive.NewObjectID()
	categoryID := primitive.NewObjectID()
	created := time.Date(2020, 5, 1, 0, 0, 0, 0, time.UTC)

	l := decodeLocation(t, bson.M{
		"_id":              id,
		"name":             "Harbor Cafe",
		"slug":             "harbor-cafe",
		"description":      "Espresso by the water",
		"shortDescription": "coffee",
		"status":           "published",
		"latitude":         42.36,
		"longitude":        -71.06,
		"address":          bson.M{"street": "1 Main St", "city": "Boston", "state": "MA"},
		"featuredImage":    bson.M{"_id": "img-1", "url": "https://cdn.example.com/cafe.jpg", "alt": "front"},
		"categories": bson.A{
			categoryID,
			bson.M{"_id": "food", "name": "Food", "color": "#ff0000"},
		},
		"priceRange":    "budget",
		"averageRating": 4.5,
		"reviewCount":   int64(12),
		"businessHours": bson.A{
			bson.M{"day": "Monday", "open": "09:00", "close": "17:00"},
		},
		"timezone":   "GMT+0",
		"isVerified": true,
		"createdAt":  created,
		"updatedAt":  created,
	})

	distance := 3.14159
	r := Location(l, &distance, Options{
		Now:   time.Date(2020, 6, 1, 10, 0, 0, 0, time.UTC),
		Saved: map[string]bool{id.Hex(): true},
	})

	assert.Equal(t, id.Hex(), r.ID)
	assert.Equal(t, "Harbor Cafe", r.Name)
	assert.Equal(t, "1 Main St Boston MA", r.Address)
	assert.Equal(t, &schema.Coordinates{Latitude: 42.36, Longitude: -71.06}, r.Coordinates)
	assert.Equal(t, &Image{ID: "img-1", URL: "https://cdn.example.com/cafe.jpg", Alt: "front"}, r.FeaturedImage)
	assert.Equal(t, []Category{
		{ID: categoryID.Hex()},
		{ID: "food", Name: "Food", Color: "#ff0000"},
	}, r.Categories)
	assert.Equal(t, 4.5, r.Rating)
	assert.Equal(t, int64(12), r.ReviewCount)
	assert.True(t, r.IsOpen)
	assert.Equal(t, "09:00 - 17:00", r.TodayHours)
	assert.Equal(t, 3.14, *r.Distance)
	assert.True(t, r.IsVerified)
	assert.False(t, r.IsFeatured)
	assert.True(t, r.IsSaved)
	assert.Equal(t, created, r.CreatedAt.UTC())
}

func TestLocationClosedAndUnsaved(t *testing.T) {
	l := decodeLocation(t, bson.M{
		"_id":           primitive.NewObjectID(),
		"name":          "Night Owl",
		"address":       "2 Side St",
		"featuredImage": "https://cdn.example.com/owl.jpg",
		"businessHours": bson.A{
			bson.M{"day": "Monday", "open": "09:00", "close": "17:00"},
		},
		"timezone": "GMT+0",
	})

	r := Location(l, nil, Options{Now: time.Date(2020, 6, 1, 18, 0, 0, 0, time.UTC)})
	assert.False(t, r.IsOpen)
	assert.Equal(t, "", r.TodayHours)
	assert.Nil(t, r.Distance)
	assert.False(t, r.IsSaved)
	assert.Equal(t, "2 Side St", r.Address)
	assert.Equal(t, &Image{URL: "https://cdn.example.com/owl.jpg"}, r.FeaturedImage)
}

func TestLocationMissingFields(t *testing.T) {
	l := decodeLocation(t, bson.M{
		"_id":           primitive.NewObjectID(),
		"name":          "Bare",
		"address":       int32(7),
		"featuredImage": bson.A{"x"},
	})

	var r LocationResponse
	assert.NotPanics(t, func() {
		r = Location(l, nil, Options{})
	})
	assert.Nil(t, r.Coordinates)
	assert.Nil(t, r.FeaturedImage)
	assert.Equal(t, "", r.Address)
	assert.Len(t, r.Categories, 0)
	assert.False(t, r.IsOpen)
}

func TestKilometres(t *testing.T) {
	assert.Equal(t, 3.0, Kilometres(2.999))
	assert.Equal(t, 0.0, Kilometres(0))
	assert.Equal(t, 12.35, Kilometres(12.345678))
}

func TestUser(t *testing.T) {
	id := primitive.NewObjectID()
	u := schema.User{
		ID:            id,
		Name:          "Ann",
		Username:      "ann",
		FollowerCount: 3,
	}

	r := User(u, map[string]bool{id.Hex(): true})
	assert.Equal(t, id.Hex(), r.ID)
	assert.True(t, r.IsFollowing)
	assert.Nil(t, r.ProfileImage)

	assert.False(t, User(u, nil).IsFollowing)
}

func TestEvent(t *testing.T) {
	lat, lng := 42.36, -71.06
	e := schema.Event{
		ID:        primitive.NewObjectID(),
		Name:      "Jazz Night",
		Latitude:  &lat,
		Longitude: &lng,
	}

	d := 1.234
	r := Event(e, &d)
	assert.Equal(t, 1.23, *r.Distance)
	assert.Equal(t, &schema.Coordinates{Latitude: lat, Longitude: lng}, r.Coordinates)

	assert.Nil(t, Event(schema.Event{}, nil).Coordinates)
}

func TestPost(t *testing.T) {
	b, err := bson.Marshal(bson.M{
		"_id":      primitive.NewObjectID(),
		"title":    "Best tacos",
		"author":   bson.M{"_id": "user-1", "name": "Ann"},
		"location": "loc-1",
		"image":    "upload-1",
	})
	assert.NoError(t, err)

	var p schema.Post
	assert.NoError(t, bson.Unmarshal(b, &p))

	r := Post(p)
	assert.Equal(t, "Best tacos", r.Title)
	assert.Equal(t, "user-1", r.AuthorID)
	assert.Equal(t, "loc-1", r.LocationID)
	assert.Equal(t, &Image{ID: "upload-1"}, r.Image)
}
