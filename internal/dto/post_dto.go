package dto

import "github.com/postmuse/backend/internal/publisher"

// PostRequest mirrors the dashboard's payload. Scheduling and hashtag
// fields are accepted for compatibility but not all are acted upon.
type PostRequest struct {
	Post             string         `json:"post"`
	Platforms        []string       `json:"platforms"`
	MediaURLs        []string       `json:"mediaUrls,omitempty"`
	ShortURL         bool           `json:"shortUrl,omitempty"`
	AutoHashtag      bool           `json:"autoHashtag,omitempty"`
	AutoSchedule     bool           `json:"autoSchedule,omitempty"`
	Mentions         []string       `json:"mentions,omitempty"`
	Notes            string         `json:"notes,omitempty"`
	RequiresApproval bool           `json:"requiresApproval,omitempty"`
	Evergreen        map[string]int `json:"evergreen,omitempty"`
}

type PostResponse struct {
	Status  string             `json:"status"`
	ID      string             `json:"id"`
	PostIDs []publisher.Result `json:"postIds"`
}

type DeleteResponse struct {
	Status string `json:"status"`
}
