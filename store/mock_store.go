package store

import (
	"context"
	"sort"
	"sync"

	"github.com/prithvi-path/api-go/models"
)

// MockStore serves the fixed seed dataset from memory. It backs the
// degraded mode when the database is unreachable and the deterministic
// fixtures in tests.
type MockStore struct {
	mu        sync.RWMutex
	locations []models.EcoLocation
	checkins  []models.CheckIn
}

func NewMockStore() *MockStore {
	return &MockStore{locations: SeedLocations()}
}

// NewMockStoreWith serves a caller-supplied dataset, for tests.
func NewMockStoreWith(locations []models.EcoLocation) *MockStore {
	return &MockStore{locations: locations}
}

func (s *MockStore) FindLocationByID(_ context.Context, id string) (*models.EcoLocation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.locations {
		if s.locations[i].ID == id {
			loc := s.locations[i]
			return &loc, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MockStore) ListLocations(_ context.Context, filters LocationFilters) ([]models.EcoLocation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return applyFilters(s.locations, filters), nil
}

func (s *MockStore) CreateCheckin(_ context.Context, rec *models.CheckIn) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.checkins = append(s.checkins, *rec)
	return nil
}

func (s *MockStore) ListUserCheckins(_ context.Context, userID string) ([]models.CheckIn, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.CheckIn
	for _, c := range s.checkins {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	return out, nil
}
