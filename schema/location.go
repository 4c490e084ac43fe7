package schema

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	LocationCollection = "locations"
)

// Coordinates is a latitude/longitude pair in degrees
type Coordinates struct {
	Latitude  float64 `json:"latitude" bson:"latitude"`
	Longitude float64 `json:"longitude" bson:"longitude"`
}

// BusinessHours is the opening schedule of a single weekday
type BusinessHours struct {
	Day    string `json:"day" bson:"day"`
	Open   string `json:"open,omitempty" bson:"open,omitempty"`
	Close  string `json:"close,omitempty" bson:"close,omitempty"`
	Closed bool   `json:"closed,omitempty" bson:"closed,omitempty"`
}

// Location is a place document as it is stored by the CMS. Records written
// under the earlier schema keep flat latitude/longitude fields, a plain
// string address and bare image urls, so those fields are kept raw and
// resolved by the accessor methods below.
type Location struct {
	ID               primitive.ObjectID `bson:"_id"`
	Name             string             `bson:"name"`
	Slug             string             `bson:"slug"`
	Description      string             `bson:"description"`
	ShortDescription string             `bson:"shortDescription"`
	Status           string             `bson:"status"`

	Coordinates *Coordinates `bson:"coordinates,omitempty"`
	Latitude    *float64     `bson:"latitude,omitempty"`
	Longitude   *float64     `bson:"longitude,omitempty"`

	RawCategories    []bson.RawValue `bson:"categories,omitempty"`
	RawAddress       bson.RawValue   `bson:"address,omitempty"`
	RawFeaturedImage bson.RawValue   `bson:"featuredImage,omitempty"`

	PriceRange    string          `bson:"priceRange"`
	AverageRating float64         `bson:"averageRating"`
	ReviewCount   int64           `bson:"reviewCount"`
	BusinessHours []BusinessHours `bson:"businessHours"`
	Timezone      string          `bson:"timezone,omitempty"`

	IsVerified bool `bson:"isVerified"`
	IsFeatured bool `bson:"isFeatured"`

	CreatedAt time.Time `bson:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

// Point resolves the coordinates of a location. The nested form is
// preferred over the flat latitude/longitude fields. An emptied nested
// group reads as 0,0 and gives way to the flat pair.
func (l Location) Point() (Coordinates, bool) {
	if l.Coordinates != nil && (l.Coordinates.Latitude != 0 || l.Coordinates.Longitude != 0) {
		return *l.Coordinates, true
	}

	if l.Latitude != nil && l.Longitude != nil {
		return Coordinates{
			Latitude:  *l.Latitude,
			Longitude: *l.Longitude,
		}, true
	}

	if l.Coordinates != nil {
		return *l.Coordinates, true
	}

	return Coordinates{}, false
}

func (l Location) Address() Address {
	return DecodeAddress(l.RawAddress)
}

func (l Location) FeaturedImage() Media {
	return DecodeMedia(l.RawFeaturedImage)
}

func (l Location) Categories() []CategoryRef {
	categories := make([]CategoryRef, 0, len(l.RawCategories))
	for _, raw := range l.RawCategories {
		if c := DecodeCategory(raw); c.ID != "" || c.Name != "" {
			categories = append(categories, c)
		}
	}
	return categories
}

// Address is either a single formatted string or a structured address
type Address struct {
	Formatted string

	Street  string
	City    string
	State   string
	Zip     string
	Country string
}

// Structured reports whether the address was stored as an object
func (a Address) Structured() bool {
	return a.Formatted == "" &&
		(a.Street != "" || a.City != "" || a.State != "" || a.Zip != "" || a.Country != "")
}

// DecodeAddress reads an address stored either as a string or as a
// street/city/state/zip/country document
func DecodeAddress(raw bson.RawValue) Address {
	switch raw.Type {
	case bsontype.String:
		s, _ := raw.StringValueOK()
		return Address{Formatted: s}
	case bsontype.EmbeddedDocument:
		var doc struct {
			Street     string `bson:"street"`
			City       string `bson:"city"`
			State      string `bson:"state"`
			Zip        string `bson:"zip"`
			PostalCode string `bson:"postalCode"`
			Country    string `bson:"country"`
		}
		if err := raw.Unmarshal(&doc); err != nil {
			return Address{}
		}

		a := Address{
			Street:  doc.Street,
			City:    doc.City,
			State:   doc.State,
			Zip:     doc.Zip,
			Country: doc.Country,
		}
		if a.Zip == "" {
			a.Zip = doc.PostalCode
		}
		return a
	}

	return Address{}
}

// Media is an image reference stored either as a url string, an
// unpopulated upload id, or a populated upload document
type Media struct {
	ID  string
	URL string
	Alt string
}

func DecodeMedia(raw bson.RawValue) Media {
	switch raw.Type {
	case bsontype.String:
		s, _ := raw.StringValueOK()
		if strings.Contains(s, "/") {
			return Media{URL: s}
		}
		return Media{ID: s}
	case bsontype.ObjectID:
		oid, _ := raw.ObjectIDOK()
		return Media{ID: oid.Hex()}
	case bsontype.EmbeddedDocument:
		var doc struct {
			ID  interface{} `bson:"_id"`
			URL string      `bson:"url"`
			Alt string      `bson:"alt"`
		}
		if err := raw.Unmarshal(&doc); err != nil {
			return Media{}
		}
		return Media{
			ID:  idString(doc.ID),
			URL: doc.URL,
			Alt: doc.Alt,
		}
	}

	return Media{}
}

// CategoryRef is a category relation, either a bare id or a populated
// category document
type CategoryRef struct {
	ID    string
	Name  string
	Slug  string
	Color string
}

func DecodeCategory(raw bson.RawValue) CategoryRef {
	switch raw.Type {
	case bsontype.String:
		s, _ := raw.StringValueOK()
		return CategoryRef{ID: s}
	case bsontype.ObjectID:
		oid, _ := raw.ObjectIDOK()
		return CategoryRef{ID: oid.Hex()}
	case bsontype.EmbeddedDocument:
		var doc struct {
			OID   interface{} `bson:"_id"`
			ID    interface{} `bson:"id"`
			Name  string      `bson:"name"`
			Slug  string      `bson:"slug"`
			Color string      `bson:"color"`
		}
		if err := raw.Unmarshal(&doc); err != nil {
			return CategoryRef{}
		}

		c := CategoryRef{
			ID:    idString(doc.OID),
			Name:  doc.Name,
			Slug:  doc.Slug,
			Color: doc.Color,
		}
		if c.ID == "" {
			c.ID = idString(doc.ID)
		}
		return c
	}

	return CategoryRef{}
}

// RelationID returns the id of a relation field whether it holds a bare id
// or a populated document
func RelationID(raw bson.RawValue) string {
	switch raw.Type {
	case bsontype.String:
		s, _ := raw.StringValueOK()
		return s
	case bsontype.ObjectID:
		oid, _ := raw.ObjectIDOK()
		return oid.Hex()
	case bsontype.EmbeddedDocument:
		var doc struct {
			OID interface{} `bson:"_id"`
			ID  interface{} `bson:"id"`
		}
		if err := raw.Unmarshal(&doc); err != nil {
			return ""
		}
		if id := idString(doc.OID); id != "" {
			return id
		}
		return idString(doc.ID)
	}

	return ""
}

func idString(v interface{}) string {
	switch id := v.(type) {
	case primitive.ObjectID:
		return id.Hex()
	case string:
		return id
	default:
		return ""
	}
}
