package publisher

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/postmuse/backend/internal/config"
)

// TwitterPublisher posts tweets through the v2 API using the configured
// publishing account token. The admin gate runs before dispatch, so this
// client assumes the caller is already authorized.
type TwitterPublisher struct {
	baseURL string
	token   string
	client  *http.Client
}

func NewTwitterPublisher(cfg *config.Config) *TwitterPublisher {
	return &TwitterPublisher{
		baseURL: cfg.TwitterAPIURL,
		token:   cfg.TwitterAccessToken,
		client:  &http.Client{Timeout: cfg.PublishTimeout},
	}
}

type createTweetRequest struct {
	Text string `json:"text"`
}

type createTweetResponse struct {
	Data struct {
		ID string `json:"id"`
	} `json:"data"`
}

func (p *TwitterPublisher) Publish(ctx context.Context, req Request) (Result, error) {
	if p.token == "" {
		return Result{}, errors.New("twitter credentials not configured")
	}

	payload, err := json.Marshal(createTweetRequest{Text: req.Content})
	if err != nil {
		return Result{}, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/2/tweets", bytes.NewReader(payload))
	if err != nil {
		return Result{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+p.token)

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
		return Result{}, fmt.Errorf("twitter API error: status %d", resp.StatusCode)
	}

	var tweet createTweetResponse
	if err := json.Unmarshal(body, &tweet); err != nil {
		return Result{}, fmt.Errorf("failed to parse twitter response: %w", err)
	}
	if tweet.Data.ID == "" {
		return Result{}, errors.New("twitter response missing tweet id")
	}

	url := fmt.Sprintf("https://twitter.com/user/status/%s", tweet.Data.ID)
	return SuccessResult("twitter", tweet.Data.ID, url), nil
}
