package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/prithvi-path/api-go/models"
)

// GormStore is the postgres-backed location store. The catalog is small
// enough that list queries load it with actions and stories preloaded
// and apply the filter semantics in memory, keeping them identical to
// the mock store's.
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

// Ping reports whether the database is reachable right now.
func (s *GormStore) Ping(ctx context.Context) error {
	return s.DB.WithContext(ctx).Exec("SELECT 1").Error
}

// EnsureSeeded populates an empty locations table from the fixed
// dataset so a fresh database behaves like the in-memory one.
func (s *GormStore) EnsureSeeded(ctx context.Context) error {
	var count int64
	if err := s.DB.WithContext(ctx).Model(&models.EcoLocation{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	for _, loc := range SeedLocations() {
		if err := s.DB.WithContext(ctx).Create(&loc).Error; err != nil {
			return err
		}
	}
	for _, b := range SeedBadges() {
		if err := s.DB.WithContext(ctx).Create(&b).Error; err != nil {
			return err
		}
	}
	for _, e := range SeedEvents() {
		if err := s.DB.WithContext(ctx).Create(&e).Error; err != nil {
			return err
		}
	}
	return nil
}

func (s *GormStore) FindLocationByID(ctx context.Context, id string) (*models.EcoLocation, error) {
	var loc models.EcoLocation
	err := s.DB.WithContext(ctx).
		Preload("AvailableActions").
		Preload("Story").
		First(&loc, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &loc, nil
}

func (s *GormStore) ListLocations(ctx context.Context, filters LocationFilters) ([]models.EcoLocation, error) {
	var locations []models.EcoLocation
	if err := s.DB.WithContext(ctx).
		Preload("AvailableActions").
		Preload("Story").
		Find(&locations).Error; err != nil {
		return nil, err
	}
	return applyFilters(locations, filters), nil
}

func (s *GormStore) CreateCheckin(ctx context.Context, rec *models.CheckIn) error {
	return s.DB.WithContext(ctx).Create(rec).Error
}

func (s *GormStore) ListUserCheckins(ctx context.Context, userID string) ([]models.CheckIn, error) {
	var checkins []models.CheckIn
	err := s.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp DESC").
		Find(&checkins).Error
	return checkins, err
}
