package geo

import "math"

// EarthRadiusKm is the mean radius of a spherical Earth.
const EarthRadiusKm = 6371

// Radians converts an angle in degrees to radians.
func Radians(deg float64) float64 {
	return deg * (math.Pi / 180)
}

// Distance returns the great-circle distance in kilometres between two
// points given as latitude/longitude pairs in degrees, using the
// Haversine formula. Inputs are not validated; out-of-range coordinates
// propagate through the trigonometry.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := Radians(lat2 - lat1)
	dLon := Radians(lon2 - lon1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(Radians(lat1))*math.Cos(Radians(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return EarthRadiusKm * c
}
