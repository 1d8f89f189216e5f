package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/postmuse/backend/internal/config"
	"github.com/postmuse/backend/internal/dto"
	"github.com/postmuse/backend/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrInvalidAdminSecret = errors.New("invalid admin secret")
	ErrEmailTaken         = errors.New("user exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidAPIKey      = errors.New("invalid API key")
	ErrQuotaExceeded      = errors.New("free tier limit reached")
	ErrUserNotFound       = errors.New("user not found")
)

// Free-tier accounts are capped at this many posts per month.
const FreeTierMonthlyLimit = 20

type AuthService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewAuthService(db *gorm.DB, cfg *config.Config) *AuthService {
	return &AuthService{db: db, cfg: cfg}
}

// Register creates a user and returns the issued API key. Admin accounts
// require the process-wide admin secret.
func (s *AuthService) Register(req *dto.RegisterRequest) (string, error) {
	if err := validateRegistration(req, s.cfg.AdminSecret); err != nil {
		return "", err
	}

	email := strings.ToLower(req.Email)
	var existing models.User
	if err := s.db.Where("email = ?", email).First(&existing).Error; err == nil {
		return "", ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	tier := req.Tier
	if tier == "" {
		tier = models.TierFree
	}

	user := models.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		APIKey:       uuid.NewString(),
		Tier:         tier,
		IsAdmin:      req.IsAdmin,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return "", fmt.Errorf("failed to create user: %w", err)
	}

	return user.APIKey, nil
}

func validateRegistration(req *dto.RegisterRequest, adminSecret string) error {
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		return errors.New("valid email is required")
	}
	if req.Password == "" {
		return errors.New("password is required")
	}
	if req.Password != req.ConfirmPassword {
		return ErrPasswordMismatch
	}
	if req.IsAdmin && (adminSecret == "" || req.AdminSecret != adminSecret) {
		return ErrInvalidAdminSecret
	}
	return nil
}

// Login verifies credentials and returns the account's API key. There is
// no attempt limiting or lockout.
func (s *AuthService) Login(req *dto.LoginRequest) (string, error) {
	var user models.User
	if err := s.db.Where("email = ?", strings.ToLower(req.Email)).First(&user).Error; err != nil {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return user.APIKey, nil
}

// Authorize resolves a bearer credential to its user. The quota check is
// read-only; the monthly counter moves in the dispatch persist step, so a
// user can pass here, fail every platform and still be charged one post.
func (s *AuthService) Authorize(apiKey string) (*models.User, error) {
	if apiKey == "" {
		return nil, ErrInvalidAPIKey
	}
	var user models.User
	if err := s.db.Where("api_key = ?", apiKey).First(&user).Error; err != nil {
		return nil, ErrInvalidAPIKey
	}
	if user.Tier == models.TierFree && user.MonthlyPosts >= FreeTierMonthlyLimit {
		return nil, ErrQuotaExceeded
	}
	return &user, nil
}

// UserInfo re-reads the user row; the account may have vanished since
// authorization.
func (s *AuthService) UserInfo(userID uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return &user, nil
}
