package service

import (
	"fmt"
	"math"

	"foodcart-api/internal/models"
)

const earthRadiusKm = 6371.0

// UnavailableDistance is shown when either address lacks resolved
// coordinates. A normal, displayable outcome rather than a failure.
const UnavailableDistance = "coordinates unavailable"

// DistanceResult is the outcome of a distance computation between two
// cached locations.
type DistanceResult struct {
	Km    float64
	Known bool
}

// Label renders the result for the order board.
func (r DistanceResult) Label() string {
	if !r.Known {
		return UnavailableDistance
	}
	return fmt.Sprintf("%.2f km", r.Km)
}

// DistanceBetween computes the great-circle distance between two locations,
// rounded to two decimal places. Either side missing coordinates yields an
// unknown result, never an error.
func DistanceBetween(a, b models.Location) DistanceResult {
	if a.Coords == nil || b.Coords == nil {
		return DistanceResult{}
	}
	km := haversineKm(a.Coords.Lat, a.Coords.Lon, b.Coords.Lat, b.Coords.Lon)
	return DistanceResult{Km: math.Round(km*100) / 100, Known: true}
}

// haversineKm returns the great-circle distance in kilometres between two
// points specified in decimal degrees.
func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := degreesToRadians(lat2 - lat1)
	dLon := degreesToRadians(lon2 - lon1)

	rLat1 := degreesToRadians(lat1)
	rLat2 := degreesToRadians(lat2)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rLat1)*math.Cos(rLat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}
