package services

import (
	"field-schedule-service/internal/domain"
	"math"
)

const (
	earthRadiusKm = 6371.0

	// Flat average speed of 40 km/h. No traffic or road network is modelled.
	AverageSpeedKmPerMin = 40.0 / 60.0
)

// DistanceKm returns the great-circle (haversine) distance between two points.
func DistanceKm(a, b domain.Coordinates) float64 {
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(a.Lat*math.Pi/180)*math.Cos(b.Lat*math.Pi/180)*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return earthRadiusKm * c
}

// TravelMinutes converts the distance between two points into driving minutes.
func TravelMinutes(a, b domain.Coordinates) float64 {
	return DistanceKm(a, b) / AverageSpeedKmPerMin
}
