// Package llm is the optional external-model enhancer. It speaks the
// OpenAI-compatible chat completions wire format; any failure is reported as
// ErrUnavailable so callers can silently fall back to the rule-based answer.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/threerivers/guide/internal/config"
	"github.com/threerivers/guide/internal/domain"
	"github.com/threerivers/guide/internal/logger"
)

// ErrUnavailable wraps every enhancement failure: network errors, non-2xx
// statuses, malformed responses, rate-limit rejections, and timeouts.
var ErrUnavailable = fmt.Errorf("llm: enhancer unavailable")

const systemPrompt = "You are a helpful Pittsburgh local guide. Answer " +
	"questions about restaurants, events, neighborhoods, housing, jobs, and " +
	"activities in Pittsburgh. Keep answers under 300 words and use markdown " +
	"for lists."

// Client calls an OpenAI-compatible chat completions endpoint.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	maxHistory int
	httpClient *http.Client
	limiter    *rate.Limiter
	log        logger.Logger
}

// NewClient builds an enhancer from config. The caller is expected to skip
// construction entirely when no API key is configured.
func NewClient(cfg config.LLMConfig, log logger.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 8 * time.Second
	}
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 5
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		maxHistory: cfg.MaxHistory,
		httpClient: &http.Client{Timeout: timeout},
		limiter:    rate.NewLimiter(rate.Limit(rps), rps),
		log:        log,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Enhance sends the question plus recent conversation history to the model
// and returns its answer. One attempt, no retries.
func (c *Client) Enhance(ctx context.Context, question string, history []domain.Message) (string, error) {
	if !c.limiter.Allow() {
		return "", fmt.Errorf("%w: rate limited", ErrUnavailable)
	}

	messages := make([]chatMessage, 0, c.maxHistory+2)
	messages = append(messages, chatMessage{Role: "system", Content: systemPrompt})
	for _, m := range trimHistory(history, c.maxHistory) {
		messages = append(messages, chatMessage{Role: m.Role, Content: m.Content})
	}
	messages = append(messages, chatMessage{Role: "user", Content: question})

	body, err := json.Marshal(chatRequest{Model: c.model, Messages: messages})
	if err != nil {
		return "", fmt.Errorf("%w: marshal request: %v", ErrUnavailable, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: build request: %v", ErrUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", ErrUnavailable, err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("%w: empty choices", ErrUnavailable)
	}
	text := strings.TrimSpace(parsed.Choices[0].Message.Content)
	if text == "" {
		return "", fmt.Errorf("%w: empty answer", ErrUnavailable)
	}
	return text, nil
}

// trimHistory keeps the most recent n messages.
func trimHistory(history []domain.Message, n int) []domain.Message {
	if n <= 0 || len(history) <= n {
		return history
	}
	return history[len(history)-n:]
}
