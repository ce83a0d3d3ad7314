package geo

import "math"

const earthRadiusKm = 6371

// Distance returns the great-circle distance in kilometers between two
// coordinates, computed with the Haversine formula.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// EstimateTravelMinutes converts a distance into an ETA at the given average
// speed. Speeds at or below zero fall back to 20 km/h, the urban courier
// average used for zone ETAs.
func EstimateTravelMinutes(distanceKm, avgSpeedKmh float64) int {
	if avgSpeedKmh <= 0 {
		avgSpeedKmh = 20
	}
	return int(math.Ceil(distanceKm / avgSpeedKmh * 60))
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}
