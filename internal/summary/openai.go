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

const openAIDefaultURL = "https://api.openai.com/v1/chat/completions"

// OpenAI is a minimal client for the chat completions API
type OpenAI struct {
	apiKey     string
	model      string
	url        string
	httpClient *http.Client
}

func NewOpenAI(apiKey string, timeout time.Duration) *OpenAI {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &OpenAI{
		apiKey:     apiKey,
		model:      "gpt-4o-mini",
		url:        openAIDefaultURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (o *OpenAI) Name() string { return "openai" }

// WithURL points the client at a different endpoint. Used in tests.
func (o *OpenAI) WithURL(url string) *OpenAI {
	o.url = url
	return o
}

func (o *OpenAI) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	payload := map[string]any{
		"model": o.model,
		"messages": []map[string]string{
			{"role": "system", "content": systemPrompt},
			{"role": "user", "content": userPrompt},
		},
		"temperature": 0.7,
		"max_tokens":  1000,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal openai payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+o.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("call openai: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("openai responded with status %s", resp.Status)
	}

	var parsed struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode openai response: %w", err)
	}

	if len(parsed.Choices) == 0 {
		return "", errors.New("openai returned no choices")
	}
	return parsed.Choices[0].Message.Content, nil
}
