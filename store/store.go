package store

import (
	"context"
	"errors"
	"strings"

	"github.com/prithvi-path/api-go/models"
	"github.com/prithvi-path/api-go/types"
)

// ErrNotFound is returned when a location id does not resolve.
var ErrNotFound = errors.New("location not found")

// LocationFilters narrows ListLocations results. The radius filter only
// applies when Lat, Lng and Radius are all present.
type LocationFilters struct {
	Type   string
	Search string
	Lat    *float64
	Lng    *float64
	Radius *float64 // kilometers
}

// LocationStore is the persistence collaborator consumed by the core.
// Implementations must not surface transient read failures to callers;
// the fallback wrapper handles degradation.
type LocationStore interface {
	FindLocationByID(ctx context.Context, id string) (*models.EcoLocation, error)
	ListLocations(ctx context.Context, filters LocationFilters) ([]models.EcoLocation, error)
	CreateCheckin(ctx context.Context, rec *models.CheckIn) error
	ListUserCheckins(ctx context.Context, userID string) ([]models.CheckIn, error)
}

// applyFilters implements the shared filter semantics: exact type match
// (skipped for "" or "all"), case-insensitive name/address substring
// search, and an inclusive haversine radius in kilometers.
func applyFilters(locations []models.EcoLocation, filters LocationFilters) []models.EcoLocation {
	filtered := make([]models.EcoLocation, 0, len(locations))
	for _, loc := range locations {
		if filters.Type != "" && filters.Type != "all" && string(loc.Type) != filters.Type {
			continue
		}
		if filters.Search != "" {
			s := strings.ToLower(filters.Search)
			if !strings.Contains(strings.ToLower(loc.Name), s) &&
				!strings.Contains(strings.ToLower(loc.Address), s) {
				continue
			}
		}
		if filters.Lat != nil && filters.Lng != nil && filters.Radius != nil {
			d := types.HaversineKm(*filters.Lat, *filters.Lng, loc.Latitude, loc.Longitude)
			if d > *filters.Radius {
				continue
			}
			loc.Distance = d
		}
		filtered = append(filtered, loc)
	}
	return filtered
}
