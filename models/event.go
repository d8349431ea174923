package models

import "time"

// CommunityEvent is a browsable community activity (clean-up drive,
// heritage walk). Read-only for regular users.
type CommunityEvent struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	Title        string    `json:"title" gorm:"not null"`
	Description  string    `json:"description" gorm:"type:text"`
	Date         time.Time `json:"date" gorm:"not null;index"`
	Location     string    `json:"location"`
	Attendees    int       `json:"attendees" gorm:"default:0"`
	MaxAttendees *int      `json:"maxAttendees,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}
