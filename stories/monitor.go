package stories

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/prithvi-path/api-go/gamification"
	"github.com/prithvi-path/api-go/models"
	"github.com/prithvi-path/api-go/sensors"
	"github.com/prithvi-path/api-go/store"
	"github.com/prithvi-path/api-go/types"
)

// Notification is a pending story-nearby prompt. One per user at a
// time; it stays pending until the user accepts or dismisses it.
type Notification struct {
	Story      models.CulturalStory `json:"story"`
	LocationID string               `json:"locationId"`
	Distance   float64              `json:"distance"` // degrees, planar
}

// Monitor watches user positions against story-bearing locations and
// surfaces unlock notifications. The geofence uses planar distance in
// degrees against a fixed radius, not the haversine kilometers of the
// radius search.
type Monitor struct {
	mu      sync.Mutex
	store   store.LocationStore
	ledgers *gamification.Registry
	pending map[string]*Notification
}

func NewMonitor(st store.LocationStore, ledgers *gamification.Registry) *Monitor {
	return &Monitor{store: st, ledgers: ledgers, pending: make(map[string]*Notification)}
}

// ScanProximity finds locations with a story the user has not unlocked
// within the geofence radius and keeps the closest as the user's
// pending notification. While a notification is pending it is returned
// unchanged; no new one is surfaced until it is dismissed or accepted.
func (m *Monitor) ScanProximity(ctx context.Context, userID string, lat, lng float64) (*Notification, error) {
	m.mu.Lock()
	if n := m.pending[userID]; n != nil {
		m.mu.Unlock()
		return n, nil
	}
	m.mu.Unlock()

	locations, err := m.store.ListLocations(ctx, store.LocationFilters{})
	if err != nil {
		return nil, err
	}

	ledger := m.ledgers.ForUser(userID)
	var nearest *Notification
	for _, loc := range locations {
		if loc.Story == nil || ledger.HasStory(loc.Story.ID) {
			continue
		}
		d := types.PlanarDegrees(lat, lng, loc.Latitude, loc.Longitude)
		if d > types.GeofenceRadiusDegrees {
			continue
		}
		if nearest == nil || d < nearest.Distance {
			nearest = &Notification{Story: *loc.Story, LocationID: loc.ID, Distance: d}
		}
	}
	if nearest == nil {
		return nil, nil
	}

	m.mu.Lock()
	// A concurrent scan may have surfaced one in the meantime.
	if n := m.pending[userID]; n != nil {
		m.mu.Unlock()
		return n, nil
	}
	m.pending[userID] = nearest
	m.mu.Unlock()
	return nearest, nil
}

// Pending returns the user's current notification, nil when none.
func (m *Monitor) Pending(userID string) *Notification {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pending[userID]
}

// Dismiss drops the pending notification. The story returns to locked
// with nothing retained; a later scan may surface it again.
func (m *Monitor) Dismiss(userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.pending, userID)
}

// Run drives periodic proximity scans for every active user from a
// position source until the context is done.
func (m *Monitor) Run(ctx context.Context, pos sensors.PositionSource, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			lat, lng := pos.Position()
			for _, userID := range m.ledgers.Users() {
				if _, err := m.ScanProximity(ctx, userID, lat, lng); err != nil {
					log.Printf("geofence scan failed for user %s: %v", userID, err)
				}
			}
		}
	}
}
