package models

import (
	"time"

	"github.com/lib/pq"
)

// CulturalStory is narrative content tied to exactly one location.
// Unlock state is tracked per user on the ledger, never on this shared
// record.
type CulturalStory struct {
	ID         string         `json:"id" gorm:"primaryKey"`
	LocationID string         `json:"locationId" gorm:"not null;uniqueIndex"`
	Title      string         `json:"title" gorm:"not null"`
	Content    string         `json:"content" gorm:"type:text"`
	Images     pq.StringArray `json:"images" gorm:"type:text[]"`
	CreatedAt  time.Time      `json:"createdAt"`
}
