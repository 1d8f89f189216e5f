package vault

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/postmuse/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrTokenNotFound = errors.New("platform token not found")

// Token is a decrypted platform credential.
type Token struct {
	AccessToken  string
	RefreshToken string
	Expiry       int64
}

// TokenStore persists per-platform OAuth tokens, encrypted at rest.
type TokenStore struct {
	db     *gorm.DB
	cipher *Cipher
}

func NewTokenStore(db *gorm.DB, cipher *Cipher) *TokenStore {
	return &TokenStore{db: db, cipher: cipher}
}

// Save upserts the token for (user, platform).
func (s *TokenStore) Save(userID uuid.UUID, platform string, token Token) error {
	access, err := s.cipher.Encrypt(token.AccessToken)
	if err != nil {
		return fmt.Errorf("failed to encrypt access token: %w", err)
	}

	record := models.PlatformToken{
		UserID:      userID,
		Platform:    platform,
		AccessToken: access,
		Expiry:      token.Expiry,
	}
	if token.RefreshToken != "" {
		refresh, err := s.cipher.Encrypt(token.RefreshToken)
		if err != nil {
			return fmt.Errorf("failed to encrypt refresh token: %w", err)
		}
		record.RefreshToken = refresh
	}

	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "platform"}},
		UpdateAll: true,
	}).Create(&record).Error
}

// Token returns the decrypted token for (user, platform).
func (s *TokenStore) Token(userID uuid.UUID, platform string) (*Token, error) {
	var record models.PlatformToken
	err := s.db.Where("user_id = ? AND platform = ?", userID, platform).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTokenNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch platform token: %w", err)
	}

	access, err := s.cipher.Decrypt(record.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt access token: %w", err)
	}
	token := &Token{AccessToken: access, Expiry: record.Expiry}
	if record.RefreshToken != "" {
		refresh, err := s.cipher.Decrypt(record.RefreshToken)
		if err != nil {
			return nil, fmt.Errorf("failed to decrypt refresh token: %w", err)
		}
		token.RefreshToken = refresh
	}
	return token, nil
}
