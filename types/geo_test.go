package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineKm(t *testing.T) {
	// Shimla Ridge to Jakhoo Temple, roughly a kilometer apart.
	d := HaversineKm(31.1041, 77.1727, 31.1011, 77.1830)
	assert.InDelta(t, 1.04, d, 0.1)

	assert.Zero(t, HaversineKm(31.1048, 77.1734, 31.1048, 77.1734))
}

func TestHaversineKmSymmetric(t *testing.T) {
	a := HaversineKm(31.1041, 77.1727, 32.2396, 77.1887)
	b := HaversineKm(32.2396, 77.1887, 31.1041, 77.1727)
	assert.InDelta(t, a, b, 1e-9)
}

func TestPlanarDegrees(t *testing.T) {
	assert.InDelta(t, 0.005, PlanarDegrees(31.10, 77.17, 31.105, 77.17), 1e-9)
	// 3-4-5 triangle in degree space.
	assert.InDelta(t, 0.005, PlanarDegrees(31.0, 77.0, 31.003, 77.004), 1e-9)
}

func TestPlanarDegreesGeofenceBoundary(t *testing.T) {
	// Exactly on the radius still counts as inside for the geofence
	// comparisons, which reject only strictly greater distances.
	d := PlanarDegrees(31.10, 77.17, 31.11, 77.17)
	assert.InDelta(t, GeofenceRadiusDegrees, d, 1e-12)
	assert.False(t, d > GeofenceRadiusDegrees)
}
