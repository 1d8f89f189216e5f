package publisher

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// MockPublisher stands in for platforms without a real integration yet.
// It always succeeds with a synthesized id and URL.
type MockPublisher struct {
	platform string
}

func NewMockPublisher(platform string) *MockPublisher {
	return &MockPublisher{platform: platform}
}

func (p *MockPublisher) Publish(_ context.Context, _ Request) (Result, error) {
	id := uuid.NewString()
	url := fmt.Sprintf("https://%s.com/post/%s", p.platform, uuid.NewString())
	return SuccessResult(p.platform, id, url), nil
}
