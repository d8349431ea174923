package models

import "time"

// Badge is one entry in the global badge catalog. The catalog is
// immutable at runtime; which users hold a badge lives in UserBadge.
type Badge struct {
	ID          string `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"not null"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Criteria    string `json:"criteria"`
}

// UserBadge records a single user's one-way badge unlock.
type UserBadge struct {
	ID         uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID     string    `json:"userId" gorm:"not null;uniqueIndex:idx_user_badge"`
	BadgeID    string    `json:"badgeId" gorm:"not null;uniqueIndex:idx_user_badge"`
	UnlockedAt time.Time `json:"unlockedAt" gorm:"not null"`
}
