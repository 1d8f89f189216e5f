package models

import (
	"time"

	"github.com/google/uuid"
)

// Tier values gate the monthly posting quota.
const (
	TierFree     = "free"
	TierPremium  = "premium"
	TierBusiness = "business"
)

// User is an account holder. The APIKey doubles as the bearer credential
// and is never rotated once issued.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email        string    `gorm:"not null;size:255;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	APIKey       string    `gorm:"not null;size:36;uniqueIndex" json:"-"`
	Tier         string    `gorm:"size:20;default:'free'" json:"tier"`
	APICalls     int       `gorm:"default:0" json:"-"`
	MonthlyPosts int       `gorm:"default:0" json:"monthly_posts"`
	IsAdmin      bool      `gorm:"default:false" json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
