package models

import "github.com/google/uuid"

// PlatformToken holds one user's credential for one platform, encrypted
// at rest. Composite key: one token per (user, platform).
type PlatformToken struct {
	UserID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	Platform     string    `gorm:"size:30;primaryKey" json:"platform"`
	AccessToken  string    `gorm:"type:text;not null" json:"-"`
	RefreshToken string    `gorm:"type:text" json:"-"`
	Expiry       int64     `json:"expiry"`
}
