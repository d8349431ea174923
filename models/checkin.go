package models

import (
	"time"

	"github.com/lib/pq"
)

// CheckIn is one validated presence+action claim. Append-only; the
// per-user recent-activity view keeps only the most recent ten.
type CheckIn struct {
	ID                string         `json:"id" gorm:"primaryKey"`
	UserID            string         `json:"userId" gorm:"not null;index"`
	LocationID        string         `json:"locationId" gorm:"not null;index"`
	LocationName      string         `json:"locationName"`
	Action            string         `json:"action" gorm:"not null;type:varchar(30)"`
	ActionDescription string         `json:"actionDescription"`
	BasePoints        int            `json:"basePoints" gorm:"not null;default:0"`
	BonusPoints       int            `json:"bonusPoints" gorm:"not null;default:0"`
	TotalPoints       int            `json:"totalPoints" gorm:"not null;default:0"`
	BonusReasons      pq.StringArray `json:"bonusReasons" gorm:"type:text[]"`
	Latitude          float64        `json:"latitude" gorm:"type:decimal(10,8)"`
	Longitude         float64        `json:"longitude" gorm:"type:decimal(11,8)"`
	Address           string         `json:"address"`
	Region            string         `json:"region" gorm:"type:varchar(50)"`
	CheckinType       string         `json:"checkinType" gorm:"type:varchar(20)"`
	Timestamp         time.Time      `json:"timestamp" gorm:"not null;index"`
	CreatedAt         time.Time      `json:"createdAt"`
}
