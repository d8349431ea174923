package models

import "time"

// Review is one user rating of a location. The location carries the
// aggregate (average, count) so list queries avoid a join.
type Review struct {
	ID         uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	LocationID string    `json:"locationId" gorm:"not null;index"`
	UserID     string    `json:"userId" gorm:"not null"`
	UserName   string    `json:"userName"`
	Rating     int       `json:"rating" gorm:"not null;check:rating between 1 and 5"`
	Comment    string    `json:"comment" gorm:"type:text"`
	CreatedAt  time.Time `json:"createdAt"`
}
