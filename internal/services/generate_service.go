package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/postmuse/backend/internal/config"
)

var ErrNoAIProvider = errors.New("no AI provider available")

// Default platforms the dashboard generates drafts for.
var defaultDraftPlatforms = []string{"twitter", "linkedin", "instagram"}

const draftsPerPlatform = 3

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type aiProvider struct {
	name   string
	apiURL string
	apiKey string
	model  string
}

// GenerateService produces platform-tailored post drafts from a topic,
// falling through the configured AI providers in order.
type GenerateService struct {
	cfg *config.Config
}

func NewGenerateService(cfg *config.Config) *GenerateService {
	return &GenerateService{cfg: cfg}
}

func (s *GenerateService) providers() []aiProvider {
	var out []aiProvider
	if s.cfg.GLMAPIKey != "" {
		out = append(out, aiProvider{"glm", s.cfg.GLMAPIURL, s.cfg.GLMAPIKey, s.cfg.GLMModel})
	}
	if s.cfg.DeepSeekAPIKey != "" {
		out = append(out, aiProvider{"deepseek", s.cfg.DeepSeekAPIURL, s.cfg.DeepSeekAPIKey, s.cfg.DeepSeekModel})
	}
	if s.cfg.OpenAIAPIKey != "" {
		out = append(out, aiProvider{"openai", s.cfg.OpenAIAPIURL, s.cfg.OpenAIAPIKey, s.cfg.OpenAIModel})
	}
	return out
}

// GenerateDrafts returns per-platform draft lists. Platforms defaults to
// the dashboard's twitter/linkedin/instagram set.
func (s *GenerateService) GenerateDrafts(topic, tone string, platforms []string) (map[string][]string, error) {
	providers := s.providers()
	if len(providers) == 0 {
		return nil, ErrNoAIProvider
	}
	if len(platforms) == 0 {
		platforms = defaultDraftPlatforms
	}

	drafts := make(map[string][]string, len(platforms))
	for _, platform := range platforms {
		prompt := buildPrompt(topic, tone, platform)

		var lines []string
		var lastErr error
		for _, p := range providers {
			content, err := s.complete(p, prompt)
			if err != nil {
				slog.Warn("draft generation provider failed", "provider", p.name, "platform", platform, "error", err)
				lastErr = err
				continue
			}
			lines = splitDrafts(content)
			break
		}
		if lines == nil {
			if lastErr != nil {
				return nil, fmt.Errorf("%w: %v", ErrNoAIProvider, lastErr)
			}
			return nil, ErrNoAIProvider
		}
		drafts[platform] = lines
	}
	return drafts, nil
}

func buildPrompt(topic, tone, platform string) string {
	if tone == "" {
		tone = "engaging"
	}
	return fmt.Sprintf(
		"You are a social media copywriter. Write %d distinct %s posts about %q in a %s tone, respecting the platform's length conventions. Return them as a numbered list, one post per line, with no extra commentary.",
		draftsPerPlatform, platform, topic, tone,
	)
}

func (s *GenerateService) complete(p aiProvider, prompt string) (string, error) {
	payload, err := json.Marshal(chatRequest{
		Model: p.model,
		Messages: []chatMessage{
			{Role: "user", Content: prompt},
		},
		Temperature: 0.7,
	})
	if err != nil {
		return "", err
	}

	timeout := s.cfg.AITimeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	req, err := http.NewRequest(http.MethodPost, p.apiURL, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("AI API error: status %d", resp.StatusCode)
	}

	var completion chatResponse
	if err := json.Unmarshal(body, &completion); err != nil {
		return "", err
	}
	if len(completion.Choices) == 0 {
		return "", errors.New("no response from AI")
	}
	return completion.Choices[0].Message.Content, nil
}

var draftNumbering = regexp.MustCompile(`^\d+\.\s*`)

// splitDrafts turns the model's numbered list into clean draft strings.
func splitDrafts(content string) []string {
	var drafts []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		line = draftNumbering.ReplaceAllString(line, "")
		if line == "" {
			continue
		}
		drafts = append(drafts, line)
		if len(drafts) == draftsPerPlatform {
			break
		}
	}
	return drafts
}
