package api

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sacavia/sacavia-api/external/geoinfo"
	"github.com/sacavia/sacavia-api/geo"
	"github.com/sacavia/sacavia-api/schema"
)

// parseGeoPosition will parse latitude and longitude from the geo-position string
func parseGeoPosition(geoPosition string) (float64, float64, error) {
	positions := strings.Split(geoPosition, ";")

	if len(positions) != 2 {
		return 0, 0, fmt.Errorf("invalid geo-position value")
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(positions[0]), 64)
	if err != nil {
		return 0, 0, err
	}

	long, err := strconv.ParseFloat(strings.TrimSpace(positions[1]), 64)
	if err != nil {
		return 0, 0, err
	}

	return lat, long, nil
}

// resolveOrigin finds the search origin of a request. Explicit coordinates
// win over a place name, which wins over the Geo-Position header. A nil
// origin means the request is not geographic.
func (s *Server) resolveOrigin(c *gin.Context, p originParams) (*schema.Coordinates, error) {
	if p.Latitude != nil && p.Longitude != nil {
		return &schema.Coordinates{
			Latitude:  *p.Latitude,
			Longitude: *p.Longitude,
		}, nil
	}

	if near := strings.TrimSpace(p.Near); near != "" && s.geoClient != nil {
		return s.geoClient.Lookup(near)
	}

	if gp := c.GetHeader("Geo-Position"); gp != "" {
		lat, long, err := parseGeoPosition(gp)
		if err != nil {
			c.Error(err)
			return nil, nil
		}

		origin := schema.Coordinates{Latitude: lat, Longitude: long}
		if geo.ValidCoordinates(origin) {
			return &origin, nil
		}
	}

	return nil, nil
}

// originFailed answers a request whose origin could not be resolved and
// reports whether it did
func (s *Server) originFailed(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	if err == geoinfo.ErrPlaceNotFound {
		s.abortWithValidation(c, localize(c, "error.place_not_found"), err)
		return true
	}

	s.abortWithServerError(c, err)
	return true
}
