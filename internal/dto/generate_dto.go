package dto

type GenerateRequest struct {
	Topic     string   `json:"topic"`
	Tone      string   `json:"tone,omitempty"`
	Platforms []string `json:"platforms,omitempty"`
}

type GenerateResponse struct {
	Drafts map[string][]string `json:"drafts"`
}
