package store

import (
	"context"
	"errors"
	"testing"

	"github.com/prithvi-path/api-go/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errDatabaseDown = errors.New("connection refused")

// failingStore simulates a primary whose backend is down.
type failingStore struct{}

func (failingStore) FindLocationByID(context.Context, string) (*models.EcoLocation, error) {
	return nil, errDatabaseDown
}

func (failingStore) ListLocations(context.Context, LocationFilters) ([]models.EcoLocation, error) {
	return nil, errDatabaseDown
}

func (failingStore) CreateCheckin(context.Context, *models.CheckIn) error {
	return errDatabaseDown
}

func (failingStore) ListUserCheckins(context.Context, string) ([]models.CheckIn, error) {
	return nil, errDatabaseDown
}

func TestFallbackServesMockWhenPrimaryFails(t *testing.T) {
	s := NewFallbackStore(failingStore{}, NewMockStore())
	ctx := context.Background()

	loc, err := s.FindLocationByID(ctx, "shimla-ridge-water")
	require.NoError(t, err)
	assert.Equal(t, "The Ridge Water Station", loc.Name)

	locations, err := s.ListLocations(ctx, LocationFilters{})
	require.NoError(t, err)
	assert.Len(t, locations, len(SeedLocations()))
}

func TestFallbackKeepsCheckinsInMemory(t *testing.T) {
	mock := NewMockStore()
	s := NewFallbackStore(failingStore{}, mock)
	ctx := context.Background()

	rec := models.CheckIn{ID: "c1", UserID: "user-1"}
	require.NoError(t, s.CreateCheckin(ctx, &rec))

	checkins, err := s.ListUserCheckins(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, checkins, 1)
}

func TestFallbackPassesThroughNotFound(t *testing.T) {
	// A clean miss on the primary is an answer, not a failure.
	s := NewFallbackStore(NewMockStoreWith(nil), NewMockStore())

	_, err := s.FindLocationByID(context.Background(), "shimla-ridge-water")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFallbackPrefersPrimary(t *testing.T) {
	custom := models.EcoLocation{ID: "primary-only", Name: "Primary Only"}
	s := NewFallbackStore(NewMockStoreWith([]models.EcoLocation{custom}), NewMockStore())

	loc, err := s.FindLocationByID(context.Background(), "primary-only")
	require.NoError(t, err)
	assert.Equal(t, "Primary Only", loc.Name)
}
