package geo

import (
	"math"

	"github.com/sacavia/sacavia-api/consts"
	"github.com/sacavia/sacavia-api/schema"
)

// Distance returns the great-circle distance in kilometres between two
// coordinates using the haversine formula
func Distance(a, b schema.Coordinates) float64 {
	lat1 := radians(a.Latitude)
	lat2 := radians(b.Latitude)
	dLat := radians(b.Latitude - a.Latitude)
	dLng := radians(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)

	return 2 * consts.EarthRadiusKm * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// ValidCoordinates checks that a coordinate pair lies within the valid
// latitude and longitude ranges
func ValidCoordinates(c schema.Coordinates) bool {
	if math.IsNaN(c.Latitude) || math.IsNaN(c.Longitude) {
		return false
	}

	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
