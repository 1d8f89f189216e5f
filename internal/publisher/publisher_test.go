package publisher

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/postmuse/backend/internal/config"
	"github.com/postmuse/backend/internal/vault"
)

type fakeTokenSource struct {
	tokenFn func(userID uuid.UUID, platform string) (*vault.Token, error)
}

func (f *fakeTokenSource) Token(userID uuid.UUID, platform string) (*vault.Token, error) {
	if f.tokenFn != nil {
		return f.tokenFn(userID, platform)
	}
	return nil, vault.ErrTokenNotFound
}

func testConfig() *config.Config {
	return &config.Config{
		TwitterAPIURL:      "https://api.twitter.com",
		TwitterAccessToken: "test-token",
		InstagramAPIURL:    "https://graph.instagram.com",
		PublishTimeout:     5 * time.Second,
	}
}

func TestDefaultRegistryCoversAllPlatforms(t *testing.T) {
	r := NewDefaultRegistry(testConfig(), &fakeTokenSource{})

	for _, platform := range Platforms {
		if !r.Supported(platform) {
			t.Errorf("platform %q not registered", platform)
		}
	}
	if r.Supported("myspace") {
		t.Error("unknown platform reported as supported")
	}

	if pub, _ := r.Get("twitter"); pub != nil {
		if _, ok := pub.(*TwitterPublisher); !ok {
			t.Error("twitter is not wired to the twitter client")
		}
	}
	if pub, _ := r.Get("instagram"); pub != nil {
		if _, ok := pub.(*InstagramPublisher); !ok {
			t.Error("instagram is not wired to the instagram client")
		}
	}
	if pub, _ := r.Get("bluesky"); pub != nil {
		if _, ok := pub.(*MockPublisher); !ok {
			t.Error("bluesky is not wired to the mock client")
		}
	}
}

func TestMockPublisherAlwaysSucceeds(t *testing.T) {
	p := NewMockPublisher("linkedin")

	result, err := p.Publish(context.Background(), Request{UserID: uuid.New(), Content: "hello"})
	if err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if result.Platform != "linkedin" || result.Status != StatusSuccess {
		t.Errorf("unexpected result: %+v", result)
	}
	if result.ID == nil || *result.ID == "" {
		t.Error("mock result missing id")
	}
	if result.PostURL == nil || !strings.HasPrefix(*result.PostURL, "https://linkedin.com/post/") {
		t.Errorf("unexpected post url: %v", result.PostURL)
	}
}

func TestResultConstructors(t *testing.T) {
	ok := SuccessResult("reddit", "42", "https://reddit.com/post/42")
	if ok.Status != StatusSuccess || ok.Error != nil || *ok.ID != "42" {
		t.Errorf("unexpected success result: %+v", ok)
	}

	bad := ErrorResult("reddit", "boom")
	if bad.Status != StatusError || bad.ID != nil || *bad.Error != "boom" {
		t.Errorf("unexpected error result: %+v", bad)
	}
}
