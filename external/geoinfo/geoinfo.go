package geoinfo

//go:generate mockgen -source=geoinfo.go -destination=../mocks/geoinfo.go -package=mocks

import (
	"context"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"googlemaps.github.io/maps"

	"github.com/sacavia/sacavia-api/schema"
)

const (
	logPrefix      = "geoinfo"
	defaultTimeout = 5 * time.Second
)

var (
	ErrPlaceNotFound = fmt.Errorf("place not found")
)

// GeoInfo - interface to resolve place names with google maps
type GeoInfo interface {
	Lookup(address string) (*schema.Coordinates, error)
}

type geocoder interface {
	Geocode(ctx context.Context, r *maps.GeocodingRequest) ([]maps.GeocodingResult, error)
}

type geoInfo struct {
	client geocoder
}

// Lookup resolves a free-text place into the coordinates of its best match
func (g geoInfo) Lookup(address string) (*schema.Coordinates, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, ErrPlaceNotFound
	}

	log.WithFields(log.Fields{
		"prefix":  logPrefix,
		"address": address,
	}).Info("query geo info")

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	results, err := g.client.Geocode(ctx, &maps.GeocodingRequest{Address: address})
	if err != nil {
		log.WithFields(log.Fields{
			"prefix":  logPrefix,
			"address": address,
			"error":   err,
		}).Error("geocode address")
		return nil, err
	}

	if len(results) == 0 {
		return nil, ErrPlaceNotFound
	}

	location := results[0].Geometry.Location
	return &schema.Coordinates{
		Latitude:  location.Lat,
		Longitude: location.Lng,
	}, nil
}

// New - new GeoInfo interface
func New(apiKey string) (GeoInfo, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"error":  err,
		}).Error("new map client")

		return nil, err
	}

	return &geoInfo{
		client: client,
	}, nil
}
