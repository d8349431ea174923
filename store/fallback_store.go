package store

import (
	"context"
	"errors"
	"log"

	"github.com/prithvi-path/api-go/models"
)

// FallbackStore serves from the primary store and degrades to the
// in-memory dataset when the primary fails. The degradation is
// transparent: read paths never surface a transient primary error, and
// unknown-id lookups still return ErrNotFound.
type FallbackStore struct {
	Primary LocationStore
	Mock    *MockStore
}

func NewFallbackStore(primary LocationStore, mock *MockStore) *FallbackStore {
	return &FallbackStore{Primary: primary, Mock: mock}
}

func (s *FallbackStore) FindLocationByID(ctx context.Context, id string) (*models.EcoLocation, error) {
	loc, err := s.Primary.FindLocationByID(ctx, id)
	if err == nil || errors.Is(err, ErrNotFound) {
		return loc, err
	}
	log.Printf("location store: primary lookup failed, using mock dataset: %v", err)
	return s.Mock.FindLocationByID(ctx, id)
}

func (s *FallbackStore) ListLocations(ctx context.Context, filters LocationFilters) ([]models.EcoLocation, error) {
	locations, err := s.Primary.ListLocations(ctx, filters)
	if err == nil {
		return locations, nil
	}
	log.Printf("location store: primary list failed, using mock dataset: %v", err)
	return s.Mock.ListLocations(ctx, filters)
}

func (s *FallbackStore) CreateCheckin(ctx context.Context, rec *models.CheckIn) error {
	if err := s.Primary.CreateCheckin(ctx, rec); err != nil {
		// Check-in history is best-effort when the database is down;
		// the award itself lives on the ledger.
		log.Printf("location store: primary checkin write failed, keeping in memory: %v", err)
		return s.Mock.CreateCheckin(ctx, rec)
	}
	return nil
}

func (s *FallbackStore) ListUserCheckins(ctx context.Context, userID string) ([]models.CheckIn, error) {
	checkins, err := s.Primary.ListUserCheckins(ctx, userID)
	if err == nil {
		return checkins, nil
	}
	log.Printf("location store: primary history read failed, using mock dataset: %v", err)
	return s.Mock.ListUserCheckins(ctx, userID)
}
