package publisher

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/postmuse/backend/internal/config"
	"github.com/postmuse/backend/internal/vault"
)

func TestInstagramPublisherMissingToken(t *testing.T) {
	p := NewInstagramPublisher(
		&config.Config{InstagramAPIURL: "https://graph.instagram.com", PublishTimeout: time.Second},
		&fakeTokenSource{},
	)

	_, err := p.Publish(context.Background(), Request{UserID: uuid.New(), Content: "caption"})
	if err == nil {
		t.Fatal("expected error for missing token")
	}
	if !strings.Contains(err.Error(), "Instagram token") {
		t.Errorf("error %q does not mention the missing token", err)
	}
}

func TestInstagramPublisherSuccess(t *testing.T) {
	var gotQuery map[string][]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"media-123"}`))
	}))
	defer server.Close()

	tokens := &fakeTokenSource{
		tokenFn: func(userID uuid.UUID, platform string) (*vault.Token, error) {
			return &vault.Token{AccessToken: "ig-token"}, nil
		},
	}
	p := NewInstagramPublisher(
		&config.Config{InstagramAPIURL: server.URL, PublishTimeout: 5 * time.Second},
		tokens,
	)

	result, err := p.Publish(context.Background(), Request{
		UserID:    uuid.New(),
		Content:   "my caption",
		MediaURLs: []string{"https://cdn.example.com/pic.jpg"},
	})
	if err != nil {
		t.Fatalf("Publish: %v", err)
	}

	if got := gotQuery["access_token"]; len(got) != 1 || got[0] != "ig-token" {
		t.Errorf("access_token param = %v", got)
	}
	if got := gotQuery["caption"]; len(got) != 1 || got[0] != "my caption" {
		t.Errorf("caption param = %v", got)
	}
	if got := gotQuery["image_url"]; len(got) != 1 || got[0] != "https://cdn.example.com/pic.jpg" {
		t.Errorf("image_url param = %v", got)
	}
	if result.Status != StatusSuccess || result.ID == nil || *result.ID != "media-123" {
		t.Errorf("unexpected result: %+v", result)
	}
}

func TestInstagramPublisherSynthesizesID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	tokens := &fakeTokenSource{
		tokenFn: func(userID uuid.UUID, platform string) (*vault.Token, error) {
			return &vault.Token{AccessToken: "ig-token"}, nil
		},
	}
	p := NewInstagramPublisher(&config.Config{InstagramAPIURL: server.URL, PublishTimeout: time.Second}, tokens)

	result, err := p.Publish(context.Background(), Request{UserID: uuid.New(), Content: "caption"})
	if err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if result.ID == nil || *result.ID == "" {
		t.Error("expected a synthesized media id")
	}
}

func TestInstagramPublisherAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"expired token"}`, http.StatusBadRequest)
	}))
	defer server.Close()

	tokens := &fakeTokenSource{
		tokenFn: func(userID uuid.UUID, platform string) (*vault.Token, error) {
			return &vault.Token{AccessToken: "stale"}, nil
		},
	}
	p := NewInstagramPublisher(&config.Config{InstagramAPIURL: server.URL, PublishTimeout: time.Second}, tokens)

	if _, err := p.Publish(context.Background(), Request{UserID: uuid.New(), Content: "c"}); err == nil {
		t.Error("expected error on non-2xx response")
	}
}
