package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	PostStatusPending          = "pending"
	PostStatusSuccess          = "success"
	PostStatusAwaitingApproval = "awaiting_approval"
)

// Post is one dispatch call: the content, the requested platform set and
// the per-platform outcome rows. Immutable after creation except delete.
// Status reflects only the approval flag, not per-platform outcomes.
type Post struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Content   string         `gorm:"type:text;not null" json:"content"`
	Platforms datatypes.JSON `json:"platforms"`
	Status    string         `gorm:"size:20;default:'pending'" json:"status"`
	Results   datatypes.JSON `json:"post_ids"`
	CreatedAt time.Time      `json:"created_at"`
}
