package models

import (
	"time"

	"github.com/google/uuid"
)

// Draft is staged, unpublished content. Drafts are owner-scoped, edits
// are new saves and there is no delete.
type Draft struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Platform  string    `gorm:"size:30;not null" json:"platform"`
	CreatedAt time.Time `json:"created_at"`
}
