package services

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/postmuse/backend/internal/models"
	"gorm.io/gorm"
)

type DraftService struct {
	db *gorm.DB
}

func NewDraftService(db *gorm.DB) *DraftService {
	return &DraftService{db: db}
}

// Save stores a new draft. Edits are new saves; there is no
// update-in-place and no draft delete.
func (s *DraftService) Save(userID uuid.UUID, content, platform string) (uuid.UUID, error) {
	draft := models.Draft{
		ID:       uuid.New(),
		UserID:   userID,
		Content:  content,
		Platform: platform,
	}
	if err := s.db.Create(&draft).Error; err != nil {
		return uuid.Nil, fmt.Errorf("failed to save draft: %w", err)
	}
	return draft.ID, nil
}

// List returns the caller's drafts, newest first.
func (s *DraftService) List(userID uuid.UUID) ([]models.Draft, error) {
	var drafts []models.Draft
	if err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").Find(&drafts).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch drafts: %w", err)
	}
	return drafts, nil
}
