package publisher

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/postmuse/backend/internal/config"
)

func TestTwitterPublisherSuccess(t *testing.T) {
	var gotPath, gotAuth, gotText string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		var body struct {
			Text string `json:"text"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		gotText = body.Text

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"data":{"id":"1234567890"}}`))
	}))
	defer server.Close()

	p := NewTwitterPublisher(&config.Config{
		TwitterAPIURL:      server.URL,
		TwitterAccessToken: "tw-token",
		PublishTimeout:     5 * time.Second,
	})

	result, err := p.Publish(context.Background(), Request{UserID: uuid.New(), Content: "hello world"})
	if err != nil {
		t.Fatalf("Publish: %v", err)
	}

	if gotPath != "/2/tweets" {
		t.Errorf("got path %q, want /2/tweets", gotPath)
	}
	if gotAuth != "Bearer tw-token" {
		t.Errorf("got auth header %q", gotAuth)
	}
	if gotText != "hello world" {
		t.Errorf("got tweet text %q", gotText)
	}
	if result.Status != StatusSuccess || result.ID == nil || *result.ID != "1234567890" {
		t.Errorf("unexpected result: %+v", result)
	}
	if result.PostURL == nil || *result.PostURL != "https://twitter.com/user/status/1234567890" {
		t.Errorf("unexpected post url: %v", result.PostURL)
	}
}

func TestTwitterPublisherAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"rate limited"}`, http.StatusTooManyRequests)
	}))
	defer server.Close()

	p := NewTwitterPublisher(&config.Config{
		TwitterAPIURL:      server.URL,
		TwitterAccessToken: "tw-token",
		PublishTimeout:     5 * time.Second,
	})

	if _, err := p.Publish(context.Background(), Request{Content: "x"}); err == nil {
		t.Error("expected error on non-2xx response")
	}
}

func TestTwitterPublisherMissingCredentials(t *testing.T) {
	p := NewTwitterPublisher(&config.Config{PublishTimeout: time.Second})
	if _, err := p.Publish(context.Background(), Request{Content: "x"}); err == nil {
		t.Error("expected error when no token is configured")
	}
}
