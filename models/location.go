package models

import (
	"time"

	"github.com/prithvi-path/api-go/types"
)

// EcoLocation is one entry in the eco-location catalog. Seeded once and
// mutated only through admin management or review aggregate updates.
type EcoLocation struct {
	ID            string             `json:"id" gorm:"primaryKey"`
	Name          string             `json:"name" gorm:"not null"`
	Type          types.LocationType `json:"type" gorm:"not null;type:varchar(30);index"`
	Latitude      float64            `json:"latitude" gorm:"not null;type:decimal(10,8)"`
	Longitude     float64            `json:"longitude" gorm:"not null;type:decimal(11,8)"`
	Address       string             `json:"address" gorm:"not null"`
	Description   string             `json:"description" gorm:"type:text"`
	EcoRating     int                `json:"ecoRating" gorm:"default:0;check:eco_rating between 0 and 5"`
	Image         string             `json:"image"`
	QRCode        string             `json:"qrCode" gorm:"not null"`
	AverageRating float64            `json:"averageRating" gorm:"default:0;type:decimal(3,2)"`
	TotalReviews  int                `json:"totalReviews" gorm:"default:0"`

	AvailableActions []EcoAction     `json:"availableActions" gorm:"foreignKey:LocationID"`
	Story            *CulturalStory  `json:"story,omitempty" gorm:"foreignKey:LocationID"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Populated by radius queries, never stored.
	Distance float64 `json:"distance,omitempty" gorm:"-"`
}

// EcoAction is one action a visitor can perform at a location.
type EcoAction struct {
	ID          string           `json:"id" gorm:"primaryKey"`
	LocationID  string           `json:"locationId" gorm:"not null;index"`
	Type        types.ActionType `json:"type" gorm:"not null;type:varchar(30)"`
	Points      int              `json:"points" gorm:"not null"`
	Icon        string           `json:"icon"`
	Description string           `json:"description"`
}

// ActionOfType returns the location's action with the given type, nil
// when the location does not offer it.
func (l *EcoLocation) ActionOfType(t types.ActionType) *EcoAction {
	for i := range l.AvailableActions {
		if l.AvailableActions[i].Type == t {
			return &l.AvailableActions[i]
		}
	}
	return nil
}
