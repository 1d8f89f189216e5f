package services

import (
	"strings"

	"github.com/postmuse/backend/internal/dto"
	"github.com/postmuse/backend/internal/models"
	"gorm.io/gorm"
)

// BillingService applies subscription webhook events to user tiers.
type BillingService struct {
	db *gorm.DB
}

func NewBillingService(db *gorm.DB) *BillingService {
	return &BillingService{db: db}
}

var entitlementTiers = map[string]string{
	"premium":  models.TierPremium,
	"business": models.TierBusiness,
}

func (s *BillingService) HandleWebhookEvent(event *dto.BillingEvent) error {
	switch event.Type {
	case "INITIAL_PURCHASE", "RENEWAL", "PRODUCT_CHANGE":
		tier, ok := entitlementTiers[strings.ToLower(event.Entitlement)]
		if !ok {
			tier = models.TierPremium
		}
		return s.setTier(event.Email, tier)
	case "CANCELLATION", "EXPIRATION":
		return s.setTier(event.Email, models.TierFree)
	default:
		return nil
	}
}

func (s *BillingService) setTier(email, tier string) error {
	result := s.db.Model(&models.User{}).
		Where("email = ?", strings.ToLower(email)).
		Update("tier", tier)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}
