package sensors

import (
	"math/rand"
	"time"
)

// StepSource reports the day's current step count. Real deployments
// would bridge a fitness API; the simulated source stands in for it.
type StepSource interface {
	Steps(now time.Time) int
}

// PositionSource reports the user's current coordinates.
type PositionSource interface {
	Position() (lat, lng float64)
}

// Shimla town center, the anchor for the simulated random walk.
const (
	baseLatitude  = 31.1048
	baseLongitude = 77.1734
)

const maxDailySteps = 15000

// SimulatedSteps ramps the step count with the hour of day toward 8k,
// with some jitter, capped at 15k.
type SimulatedSteps struct {
	rng *rand.Rand
}

func NewSimulatedSteps() *SimulatedSteps {
	return &SimulatedSteps{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (s *SimulatedSteps) Steps(now time.Time) int {
	base := int(float64(now.Hour()) / 24.0 * 8000)
	steps := base + s.rng.Intn(1000)
	if steps > maxDailySteps {
		steps = maxDailySteps
	}
	return steps
}

// SimulatedPosition wanders around the Shimla town center, far enough
// to drift in and out of story geofences.
type SimulatedPosition struct {
	rng *rand.Rand
}

func NewSimulatedPosition() *SimulatedPosition {
	return &SimulatedPosition{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (s *SimulatedPosition) Position() (float64, float64) {
	lat := baseLatitude + (s.rng.Float64()-0.5)*0.02
	lng := baseLongitude + (s.rng.Float64()-0.5)*0.02
	return lat, lng
}

// FixedPosition always reports the same coordinates, for tests.
type FixedPosition struct {
	Lat, Lng float64
}

func (f FixedPosition) Position() (float64, float64) { return f.Lat, f.Lng }

// FixedSteps always reports the same count, for tests.
type FixedSteps struct {
	Count int
}

func (f FixedSteps) Steps(time.Time) int { return f.Count }
