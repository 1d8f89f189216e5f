package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/postmuse/backend/internal/dto"
	"github.com/postmuse/backend/internal/models"
	"github.com/postmuse/backend/internal/publisher"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrInvalidPlatform  = errors.New("invalid platforms")
	ErrTwitterForbidden = errors.New("twitter posting restricted to admin users")
	ErrPostNotFound     = errors.New("post not found")
)

type PostService struct {
	db       *gorm.DB
	registry *publisher.Registry
}

func NewPostService(db *gorm.DB, registry *publisher.Registry) *PostService {
	return &PostService{db: db, registry: registry}
}

// CreatePost dispatches content to every requested platform and persists
// the aggregate outcome.
//
// Platform validation is all-or-nothing, and so is the twitter admin
// gate: a non-admin requesting twitter aborts the entire call before any
// platform is reached. Runtime publish failures, by contrast, are
// isolated to their platform's result row. The admin flag is read fresh
// here, once, and threaded through the whole call.
func (s *PostService) CreatePost(ctx context.Context, userID uuid.UUID, req *dto.PostRequest) (*dto.PostResponse, error) {
	for _, platform := range req.Platforms {
		if !s.registry.Supported(platform) {
			return nil, ErrInvalidPlatform
		}
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if containsPlatform(req.Platforms, "twitter") && !user.IsAdmin {
		return nil, ErrTwitterForbidden
	}

	status := models.PostStatusSuccess
	if req.RequiresApproval {
		status = models.PostStatusAwaitingApproval
	}

	results := make([]publisher.Result, 0, len(req.Platforms))
	for _, platform := range req.Platforms {
		pub, _ := s.registry.Get(platform)
		result, err := pub.Publish(ctx, publisher.Request{
			UserID:    userID,
			Content:   req.Post,
			MediaURLs: req.MediaURLs,
		})
		if err != nil {
			result = publisher.ErrorResult(platform, err.Error())
		}
		results = append(results, result)
	}

	platformsJSON, resultsJSON, err := marshalDispatch(req.Platforms, results)
	if err != nil {
		return nil, fmt.Errorf("failed to encode dispatch records: %w", err)
	}
	post := models.Post{
		ID:        uuid.New(),
		UserID:    userID,
		Content:   req.Post,
		Platforms: platformsJSON,
		Status:    status,
		Results:   resultsJSON,
	}

	// One post row and exactly one counter tick per call, regardless of
	// how many platforms were targeted or how many failed.
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&post).Error; err != nil {
			return err
		}
		return tx.Model(&models.User{}).Where("id = ?", userID).
			UpdateColumn("monthly_posts", gorm.Expr("monthly_posts + 1")).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to persist post: %w", err)
	}

	return &dto.PostResponse{Status: status, ID: post.ID.String(), PostIDs: results}, nil
}

// DeletePost removes a post owned by the caller.
func (s *PostService) DeletePost(userID, postID uuid.UUID) error {
	var post models.Post
	err := s.db.Where("id = ? AND user_id = ?", postID, userID).First(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrPostNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to fetch post: %w", err)
	}
	return s.db.Delete(&post).Error
}

func containsPlatform(platforms []string, target string) bool {
	for _, p := range platforms {
		if p == target {
			return true
		}
	}
	return false
}

func marshalDispatch(platforms []string, results []publisher.Result) (datatypes.JSON, datatypes.JSON, error) {
	p, err := json.Marshal(platforms)
	if err != nil {
		return nil, nil, err
	}
	r, err := json.Marshal(results)
	if err != nil {
		return nil, nil, err
	}
	return datatypes.JSON(p), datatypes.JSON(r), nil
}
