package dto

import "time"

type DraftRequest struct {
	Content  string `json:"content"`
	Platform string `json:"platform"`
}

type DraftResponse struct {
	Status string `json:"status"`
	ID     string `json:"id"`
}

type DraftItem struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Platform  string    `json:"platform"`
	CreatedAt time.Time `json:"created_at"`
}
