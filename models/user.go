package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type User struct {
	ID        string         `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at"`

	Name     string  `json:"name"`
	Email    string  `gorm:"uniqueIndex" json:"email"`
	Phone    *string `gorm:"uniqueIndex" json:"phone"`
	Password *string `json:"-"` // nil for google / guest accounts
	Avatar   string  `json:"avatar"`

	UserType   string  `gorm:"not null;default:user;type:varchar(10)" json:"userType"` // user | admin | guest
	AuthMethod string  `gorm:"type:varchar(10)" json:"authMethod"`                     // email | google | phone | guest
	GoogleID   *string `gorm:"uniqueIndex" json:"-"`
	SessionID  string  `json:"sessionId,omitempty"` // guest accounts only

	EcoPoints           int            `gorm:"default:0" json:"ecoPoints"`
	TotalBottlesSaved   int            `gorm:"default:0" json:"totalBottlesSaved"`
	TotalDistanceWalked float64        `gorm:"default:0" json:"totalDistanceWalked"` // km
	UnlockedStories     pq.StringArray `gorm:"type:text[]" json:"unlockedStories"`

	Badges        []UserBadge    `json:"badges" gorm:"foreignKey:UserID"`
	CheckIns      []CheckIn      `json:"checkIns" gorm:"foreignKey:UserID"`
	RefreshTokens []RefreshToken `json:"-" gorm:"foreignKey:UserID"`
}
