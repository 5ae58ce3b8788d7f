// Package openai implementa textgen.Generator contra cualquier API
// compatible con OpenAI (/chat/completions).
package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"medication-reminder/internal/platform/httpclient"
	"medication-reminder/internal/platform/logger"
	"medication-reminder/internal/ports/textgen"

	"github.com/sony/gobreaker/v2"
)

var (
	ErrNotConfigured = errors.New("text generation not configured")
	ErrEmptyReply    = errors.New("text generation returned no choices")
)

type Config struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration

	// Breaker: fallas consecutivas para abrir y tiempo abierto antes de probar.
	MaxFailures uint32
	OpenTimeout time.Duration
}

type Client struct {
	http  *httpclient.Client
	model string
	cb    *gobreaker.CircuitBreaker[string]
	log   logger.Logger
}

var _ textgen.Generator = (*Client)(nil)

func New(cfg Config, log logger.Logger) (*Client, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" || strings.TrimSpace(cfg.Model) == "" {
		return nil, ErrNotConfigured
	}
	if log == nil {
		log = logger.Nop()
	}

	hc, err := httpclient.NewWithBaseURL(cfg.BaseURL, cfg.Timeout)
	if err != nil {
		return nil, err
	}
	hc.UserAgent = "medication-reminder"
	if key := strings.TrimSpace(cfg.APIKey); key != "" {
		hc.Headers = map[string]string{"Authorization": "Bearer " + key}
	}

	maxFailures := cfg.MaxFailures
	if maxFailures == 0 {
		maxFailures = 5
	}
	openTimeout := cfg.OpenTimeout
	if openTimeout <= 0 {
		openTimeout = 30 * time.Second
	}

	c := &Client{http: hc, model: cfg.Model, log: log}
	c.cb = gobreaker.NewCircuitBreaker[string](gobreaker.Settings{
		Name:        "textgen",
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     openTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		// Un request cancelado por el cliente no es culpa del upstream.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("circuit breaker state change", map[string]any{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			})
		},
	})
	return c, nil
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []message       `json:"messages"`
	Temperature    float64         `json:"temperature"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message      message `json:"message"`
		FinishReason string  `json:"finish_reason"`
	} `json:"choices"`
}

// Generate pide una respuesta en modo JSON y devuelve el contenido crudo.
// Con el breaker abierto falla inmediatamente sin llamar al upstream.
func (c *Client) Generate(ctx context.Context, req textgen.Request) (string, error) {
	out, err := c.cb.Execute(func() (string, error) {
		return c.complete(ctx, req)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return "", fmt.Errorf("text generation unavailable: %w", err)
	}
	return out, err
}

func (c *Client) complete(ctx context.Context, req textgen.Request) (string, error) {
	msgs := make([]message, 0, 2)
	if s := strings.TrimSpace(req.System); s != "" {
		msgs = append(msgs, message{Role: "system", Content: s})
	}
	msgs = append(msgs, message{Role: "user", Content: req.Prompt})

	body := chatRequest{
		Model:          c.model,
		Messages:       msgs,
		Temperature:    0.2,
		ResponseFormat: &responseFormat{Type: "json_object"},
	}

	start := time.Now()
	var resp chatResponse
	err := c.http.DoJSON(ctx, http.MethodPost, "/chat/completions", nil, body, &resp)
	fields := map[string]any{
		"model":       c.model,
		"duration_ms": time.Since(start).Milliseconds(),
	}
	if err != nil {
		fields["err"] = err
		c.log.Warn("text generation failed", fields)
		return "", err
	}
	c.log.Debug("text generation ok", fields)

	if len(resp.Choices) == 0 {
		return "", ErrEmptyReply
	}
	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", ErrEmptyReply
	}
	return content, nil
}
