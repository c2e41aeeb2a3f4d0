package summary

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

const anthropicDefaultURL = "https://api.anthropic.com/v1/messages"

// Anthropic is a minimal client for the messages API
type Anthropic struct {
	apiKey     string
	model      string
	url        string
	httpClient *http.Client
}

func NewAnthropic(apiKey string, timeout time.Duration) *Anthropic {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Anthropic{
		apiKey:     apiKey,
		model:      "claude-3-5-haiku-latest",
		url:        anthropicDefaultURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (a *Anthropic) Name() string { return "anthropic" }

// WithURL points the client at a different endpoint. Used in tests.
func (a *Anthropic) WithURL(url string) *Anthropic {
	a.url = url
	return a
}

func (a *Anthropic) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	payload := map[string]any{
		"model":      a.model,
		"max_tokens": 1000,
		"system":     systemPrompt,
		"messages": []map[string]string{
			{"role": "user", "content": userPrompt},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal anthropic payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("x-api-key", a.apiKey)
	req.Header.Set("anthropic-version", "2023-06-01")
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("call anthropic: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("anthropic responded with status %s", resp.Status)
	}

	var parsed struct {
		Content []struct {
			Text string `json:"text"`
		} `json:"content"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode anthropic response: %w", err)
	}

	if len(parsed.Content) == 0 {
		return "", errors.New("anthropic returned no content")
	}
	return parsed.Content[0].Text, nil
}
