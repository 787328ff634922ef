package openai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/menuwise/menu-intelligence-api/internal/generation"
)

// DefaultBaseURL is the production chat-completions API root.
const DefaultBaseURL = "https://api.openai.com/v1"

// systemInstruction pins the provider into the role the prompt template
// assumes. It is part of the fixed request shape, not user-modifiable.
const systemInstruction = "You are a professional restaurant menu copywriter. " +
	"Respond only with valid JSON."

// Config holds the settings for a chat-completions client.
type Config struct {
	// APIKey is the bearer credential. Must be non-empty; callers that have
	// no credential run in mock mode and never construct a client.
	APIKey string

	// BaseURL overrides DefaultBaseURL, mainly for tests and staging.
	BaseURL string

	// Timeout bounds each request. A timed-out call surfaces as ErrTransport.
	Timeout time.Duration

	// MaxTokens is the completion token ceiling sent with every request.
	MaxTokens int

	// Temperature is the sampling temperature sent with every request.
	Temperature float64
}

// Client calls an OpenAI-compatible chat-completions endpoint.
type Client struct {
	http        *resty.Client
	logger      *slog.Logger
	maxTokens   int
	temperature float64
}

var _ generation.Generator = (*Client)(nil)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type apiErrorBody struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// NewClient creates a chat-completions client from the given config.
func NewClient(cfg Config, logger *slog.Logger) (*Client, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: API key cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.MaxTokens <= 0 {
		return nil, fmt.Errorf("%w: max tokens must be positive", generation.ErrInvalidConfig)
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetAuthToken(cfg.APIKey).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json")

	return &Client{
		http:        httpClient,
		logger:      logger.With(slog.String("component", "openai_client")),
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
	}, nil
}

// Generate implements generation.Generator. It issues exactly one POST to
// /chat/completions and maps the outcome onto the classified error set.
func (c *Client) Generate(ctx context.Context, prompt string, model string) (string, error) {
	var (
		result chatResponse
		apiErr apiErrorBody
	)

	c.logger.DebugContext(ctx, "calling chat completions",
		slog.String("model", model),
		slog.Int("prompt_length", len(prompt)))

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(chatRequest{
			Model: model,
			Messages: []chatMessage{
				{Role: "system", Content: systemInstruction},
				{Role: "user", Content: prompt},
			},
			MaxTokens:   c.maxTokens,
			Temperature: c.temperature,
		}).
		SetResult(&result).
		SetError(&apiErr).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("%w: %v", generation.ErrTransport, err)
	}

	if resp.IsError() {
		return "", c.classifyStatus(ctx, resp.StatusCode(), model, apiErr)
	}

	if len(result.Choices) == 0 {
		return "", fmt.Errorf("%w: completion contained no choices", generation.ErrProviderUnavailable)
	}

	return strings.TrimSpace(result.Choices[0].Message.Content), nil
}

// classifyStatus maps a non-2xx provider response to a sentinel error.
func (c *Client) classifyStatus(ctx context.Context, status int, model string, body apiErrorBody) error {
	c.logger.WarnContext(ctx, "chat completions call failed",
		slog.Int("status", status),
		slog.String("model", model),
		slog.String("provider_error_type", body.Error.Type))

	switch status {
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", generation.ErrModelNotFound, model)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w (status %d)", generation.ErrRateLimited, status)
	default:
		return fmt.Errorf("%w (status %d)", generation.ErrProviderUnavailable, status)
	}
}
