package types

import "math"

// EarthRadiusKm is the mean Earth radius used by the haversine formula.
const EarthRadiusKm = 6371.0

// GeofenceRadiusDegrees is the proximity trigger radius for story
// notifications, roughly 1.1km at Himachal latitudes.
const GeofenceRadiusDegrees = 0.01

// HaversineKm returns the great-circle distance in kilometers between
// two coordinates. Used by the location radius search, where the filter
// boundary is in kilometers.
func HaversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180.0
	dLng := (lng2 - lng1) * math.Pi / 180.0

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180.0)*math.Cos(lat2*math.Pi/180.0)*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return EarthRadiusKm * c
}

// PlanarDegrees returns the planar Euclidean distance in coordinate
// degrees between two points. Used only for the geofence trigger, which
// compares against GeofenceRadiusDegrees; it is deliberately not the
// same metric as HaversineKm and the two must stay separate.
func PlanarDegrees(lat1, lng1, lat2, lng2 float64) float64 {
	return math.Sqrt(math.Pow(lat2-lat1, 2) + math.Pow(lng2-lng1, 2))
}
