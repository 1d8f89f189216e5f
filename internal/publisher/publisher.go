// Package publisher contains the per-platform publishing dispatch: one
// Publisher implementation per platform, selected through a Registry
// keyed on platform name.
package publisher

import (
	"context"

	"github.com/google/uuid"
	"github.com/postmuse/backend/internal/config"
	"github.com/postmuse/backend/internal/vault"
)

// Platforms is the fixed supported-platform set.
var Platforms = []string{
	"bluesky", "facebook", "gmb", "instagram", "linkedin", "pinterest",
	"reddit", "snapchat", "telegram", "tiktok", "threads", "twitter",
	"youtube",
}

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Result is the outcome of publishing to a single platform.
type Result struct {
	Platform string  `json:"platform"`
	Status   string  `json:"status"`
	ID       *string `json:"id"`
	PostURL  *string `json:"postUrl,omitempty"`
	Error    *string `json:"error,omitempty"`
}

// SuccessResult builds a success row for a platform.
func SuccessResult(platform, id, postURL string) Result {
	return Result{Platform: platform, Status: StatusSuccess, ID: &id, PostURL: &postURL}
}

// ErrorResult builds an error row for a platform. The dispatch loop uses
// it to isolate one platform's failure from the others.
func ErrorResult(platform, message string) Result {
	return Result{Platform: platform, Status: StatusError, Error: &message}
}

// Request carries one piece of content toward one platform.
type Request struct {
	UserID    uuid.UUID
	Content   string
	MediaURLs []string
}

// Publisher publishes content to one platform. A returned error is
// converted by the caller into an error Result for that platform only.
type Publisher interface {
	Publish(ctx context.Context, req Request) (Result, error)
}

// TokenSource resolves a user's stored credential for a platform.
// *vault.TokenStore is the production implementation.
type TokenSource interface {
	Token(userID uuid.UUID, platform string) (*vault.Token, error)
}

// Registry maps platform names to their publishers.
type Registry struct {
	publishers map[string]Publisher
}

func NewRegistry() *Registry {
	return &Registry{publishers: make(map[string]Publisher)}
}

func (r *Registry) Register(platform string, p Publisher) {
	r.publishers[platform] = p
}

func (r *Registry) Get(platform string) (Publisher, bool) {
	p, ok := r.publishers[platform]
	return p, ok
}

func (r *Registry) Supported(platform string) bool {
	_, ok := r.publishers[platform]
	return ok
}

// NewDefaultRegistry wires the full platform set: twitter and instagram
// get real clients, everything else a mock stand-in.
func NewDefaultRegistry(cfg *config.Config, tokens TokenSource) *Registry {
	r := NewRegistry()
	for _, platform := range Platforms {
		switch platform {
		case "twitter":
			r.Register(platform, NewTwitterPublisher(cfg))
		case "instagram":
			r.Register(platform, NewInstagramPublisher(cfg, tokens))
		default:
			r.Register(platform, NewMockPublisher(platform))
		}
	}
	return r
}
