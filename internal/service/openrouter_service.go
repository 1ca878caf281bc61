package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/a2lab/schreibtrainer/config"
	"github.com/rs/zerolog/log"
)

// Bounded waits per call kind. A call that exceeds its bound is cancelled
// and the caller proceeds to the offline fallback; no retries.
const (
	GenerateTimeout = 12 * time.Second
	EvaluateTimeout = 15 * time.Second
	LookupTimeout   = 12 * time.Second
)

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatCompletionRequest struct {
	Model          string          `json:"model"`
	Messages       []ChatMessage   `json:"messages"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// OpenRouterService issues single chat-completion calls against the
// provider endpoint. Callers must check Available() first: with no API key
// the service never goes to the network and callers use the mock payloads.
type OpenRouterService interface {
	Available() bool
	ChatCompletion(ctx context.Context, model string, messages []ChatMessage, jsonMode bool, timeout time.Duration) (string, error)
}

type openRouterService struct {
	cfg    *config.Config
	client *http.Client
}

func NewOpenRouterService(cfg *config.Config) OpenRouterService {
	return &openRouterService{
		cfg:    cfg,
		client: &http.Client{},
	}
}

func (s *openRouterService) Available() bool {
	return s.cfg.OpenRouter.APIKey != ""
}

func (s *openRouterService) ChatCompletion(ctx context.Context, model string, messages []ChatMessage, jsonMode bool, timeout time.Duration) (string, error) {
	if !s.Available() {
		return "", fmt.Errorf("openrouter API key not configured")
	}

	reqBody := chatCompletionRequest{Model: model, Messages: messages}
	if jsonMode {
		reqBody.ResponseFormat = &responseFormat{Type: "json_object"}
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to encode chat completion request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.OpenRouter.BaseURL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build chat completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.cfg.OpenRouter.APIKey)
	req.Header.Set("HTTP-Referer", "http://localhost:3000")
	req.Header.Set("X-Title", "A2 Schreibtrainer (Local Dev)")

	resp, err := s.client.Do(req)
	if err != nil {
		log.Warn().Err(err).Str("model", model).Msg("OpenRouter error/timeout")
		return "", fmt.Errorf("chat completion call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		log.Warn().Int("status", resp.StatusCode).Str("body", string(body)).Str("model", model).Msg("OpenRouter non-OK")
		return "", fmt.Errorf("chat completion returned status %d", resp.StatusCode)
	}

	var parsed chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to decode chat completion response: %w", err)
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("chat completion returned no content")
	}
	return parsed.Choices[0].Message.Content, nil
}
