package store

import (
	"context"
	"testing"
	"time"

	"github.com/prithvi-path/api-go/models"
	"github.com/prithvi-path/api-go/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockStoreFindLocationByID(t *testing.T) {
	s := NewMockStore()

	loc, err := s.FindLocationByID(context.Background(), "shimla-jakhoo-temple")
	require.NoError(t, err)
	assert.Equal(t, "Jakhoo Temple Heritage Trail", loc.Name)
	require.NotNil(t, loc.Story)
	assert.Equal(t, "story-1", loc.Story.ID)

	_, err = s.FindLocationByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMockStoreTypeFilter(t *testing.T) {
	s := NewMockStore()

	locations, err := s.ListLocations(context.Background(), LocationFilters{Type: "cultural-heritage"})
	require.NoError(t, err)
	require.Len(t, locations, 3)
	for _, loc := range locations {
		assert.Equal(t, types.LocationCulturalHeritage, loc.Type)
	}

	// "all" and empty behave the same.
	all, err := s.ListLocations(context.Background(), LocationFilters{Type: "all"})
	require.NoError(t, err)
	unfiltered, err := s.ListLocations(context.Background(), LocationFilters{})
	require.NoError(t, err)
	assert.Len(t, all, len(unfiltered))
}

func TestMockStoreSearchFilter(t *testing.T) {
	s := NewMockStore()

	// Case-insensitive, matches name or address.
	byName, err := s.ListLocations(context.Background(), LocationFilters{Search: "TEMPLE"})
	require.NoError(t, err)
	assert.Len(t, byName, 2)

	byAddress, err := s.ListLocations(context.Background(), LocationFilters{Search: "manali"})
	require.NoError(t, err)
	assert.Len(t, byAddress, 2)

	none, err := s.ListLocations(context.Background(), LocationFilters{Search: "goa"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestMockStoreRadiusFilterInclusive(t *testing.T) {
	ref := models.EcoLocation{ID: "center", Name: "Center", Latitude: 31.0, Longitude: 77.0}
	edge := models.EcoLocation{ID: "edge", Name: "Edge", Latitude: 31.0, Longitude: 77.1}
	far := models.EcoLocation{ID: "far", Name: "Far", Latitude: 32.0, Longitude: 78.0}
	s := NewMockStoreWith([]models.EcoLocation{ref, edge, far})

	lat, lng := 31.0, 77.0
	radius := types.HaversineKm(lat, lng, edge.Latitude, edge.Longitude)

	locations, err := s.ListLocations(context.Background(), LocationFilters{Lat: &lat, Lng: &lng, Radius: &radius})
	require.NoError(t, err)

	ids := make([]string, len(locations))
	for i, loc := range locations {
		ids[i] = loc.ID
	}
	// A location exactly on the radius boundary is included.
	assert.ElementsMatch(t, []string{"center", "edge"}, ids)

	for _, loc := range locations {
		if loc.ID == "edge" {
			assert.InDelta(t, radius, loc.Distance, 1e-9)
		}
	}
}

func TestMockStoreRadiusNeedsAllThreeParams(t *testing.T) {
	s := NewMockStore()
	lat := 31.1041

	locations, err := s.ListLocations(context.Background(), LocationFilters{Lat: &lat})
	require.NoError(t, err)
	assert.Len(t, locations, len(SeedLocations()))
}

func TestMockStoreCheckinHistory(t *testing.T) {
	s := NewMockStore()
	ctx := context.Background()

	older := models.CheckIn{ID: "c1", UserID: "user-1", Timestamp: time.Now().Add(-time.Hour)}
	newer := models.CheckIn{ID: "c2", UserID: "user-1", Timestamp: time.Now()}
	other := models.CheckIn{ID: "c3", UserID: "user-2", Timestamp: time.Now()}
	require.NoError(t, s.CreateCheckin(ctx, &older))
	require.NoError(t, s.CreateCheckin(ctx, &newer))
	require.NoError(t, s.CreateCheckin(ctx, &other))

	checkins, err := s.ListUserCheckins(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, checkins, 2)
	assert.Equal(t, "c2", checkins[0].ID) // newest first
	assert.Equal(t, "c1", checkins[1].ID)
}
