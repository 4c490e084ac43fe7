package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	EventCollection = "events"
)

// Event is a scheduled happening, optionally pinned to a location
type Event struct {
	ID          primitive.ObjectID `bson:"_id"`
	Name        string             `bson:"name"`
	Slug        string             `bson:"slug"`
	Description string             `bson:"description"`
	Status      string             `bson:"status"`
	Category    string             `bson:"category"`
	StartDate   time.Time          `bson:"startDate"`
	EndDate     *time.Time         `bson:"endDate,omitempty"`

	Coordinates *Coordinates `bson:"coordinates,omitempty"`
	Latitude    *float64     `bson:"latitude,omitempty"`
	Longitude   *float64     `bson:"longitude,omitempty"`

	RawImage      bson.RawValue `bson:"image,omitempty"`
	AttendeeCount int64         `bson:"attendeeCount"`
}

func (e Event) Point() (Coordinates, bool) {
	if e.Coordinates != nil {
		return *e.Coordinates, true
	}

	if e.Latitude != nil && e.Longitude != nil {
		return Coordinates{
			Latitude:  *e.Latitude,
			Longitude: *e.Longitude,
		}, true
	}

	return Coordinates{}, false
}

func (e Event) Image() Media {
	return DecodeMedia(e.RawImage)
}
