package geojson

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
	"unicode"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sacavia/sacavia-api/consts"
	"github.com/sacavia/sacavia-api/schema"
	"github.com/sacavia/sacavia-api/store"
)

type Geometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

type GeoFeature struct {
	Type       string                 `json:"type"`
	Properties map[string]interface{} `json:"properties"`
	Geometry   Geometry               `json:"geometry"`
}

type GeoJSON struct {
	Name     string       `json:"name"`
	Features []GeoFeature `json:"features"`
}

// ParseLocations converts the point features of a feature collection into
// published location documents. GeoJSON points are ordered longitude first.
func ParseLocations(r io.Reader, now time.Time) ([]interface{}, error) {
	var result GeoJSON
	if err := json.NewDecoder(r).Decode(&result); err != nil {
		return nil, err
	}

	locations := make([]interface{}, 0, len(result.Features))
	for i, f := range result.Features {
		if f.Geometry.Type != "Point" || len(f.Geometry.Coordinates) < 2 {
			return nil, fmt.Errorf("feature %d is not a point", i)
		}

		name := stringProperty(f.Properties, "name")
		if name == "" {
			return nil, fmt.Errorf("feature %d has no name", i)
		}

		slug := stringProperty(f.Properties, "slug")
		if slug == "" {
			slug = Slugify(name)
		}

		doc := bson.M{
			"_id":    primitive.NewObjectID(),
			"name":   name,
			"slug":   slug,
			"status": consts.StatusPublished,
			"coordinates": schema.Coordinates{
				Latitude:  f.Geometry.Coordinates[1],
				Longitude: f.Geometry.Coordinates[0],
			},
			"description": stringProperty(f.Properties, "description"),
			"createdAt":   now,
			"updatedAt":   now,
		}

		if address := stringProperty(f.Properties, "address"); address != "" {
			doc["address"] = address
		}
		if category := stringProperty(f.Properties, "category"); category != "" {
			doc["categories"] = bson.A{category}
		}
		if price := stringProperty(f.Properties, "priceRange"); price != "" {
			doc["priceRange"] = price
		}
		if tz := stringProperty(f.Properties, "timezone"); tz != "" {
			doc["timezone"] = tz
		}

		locations = append(locations, doc)
	}

	return locations, nil
}

// ImportLocations seeds the location collection from a geojson file.
// Features whose slug already exists are skipped.
func ImportLocations(client *mongo.Client, dbName, geoJSONFile string) (int, error) {
	file, err := os.Open(geoJSONFile)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	locations, err := ParseLocations(file, time.Now().UTC())
	if err != nil {
		return 0, err
	}

	if len(locations) == 0 {
		return 0, nil
	}

	c := client.Database(dbName).Collection(schema.LocationCollection)
	result, err := c.InsertMany(context.Background(), locations, options.InsertMany().SetOrdered(false))
	if err != nil {
		if errs, ok := err.(mongo.BulkWriteException); ok {
			for _, we := range errs.WriteErrors {
				if we.Code != store.DuplicateKeyCode {
					return 0, err
				}
			}
			return len(locations) - len(errs.WriteErrors), nil
		}
		return 0, err
	}

	return len(result.InsertedIDs), nil
}

// Slugify lower-cases a name and joins its alphanumeric runs with dashes
func Slugify(name string) string {
	words := strings.FieldsFunc(strings.ToLower(name), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	return strings.Join(words, "-")
}

func stringProperty(properties map[string]interface{}, key string) string {
	s, _ := properties[key].(string)
	return strings.TrimSpace(s)
}
