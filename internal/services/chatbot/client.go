package chatbot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/arunsingh-creator/CodeBloom/pkg/http"
)

// ErrNotConfigured indicates no API key was provided at startup.
var ErrNotConfigured = errors.New("chatbot: api key not configured")

const (
	defaultBaseURL     = "https://api.groq.com/openai/v1"
	defaultModel       = "llama-3.1-8b-instant"
	defaultTemperature = 0.7
	defaultMaxTokens   = 500
	defaultTimeout     = 30 * time.Second
)

// Phrases that suggest the model drifted into prescriptive language. The
// disclaimer is appended whenever one appears.
var prescriptivePhrases = []string{"i diagnose", "you have", "you need to take"}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type completionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// ClientConfig holds connection settings for the completion API.
type ClientConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration
}

// Client talks to an OpenAI-compatible chat completion endpoint.
type Client struct {
	cfg  ClientConfig
	http *http.Client
}

// NewClient creates a completion client. A zero-value config falls back to
// the Groq defaults; an empty API key yields a client that reports itself
// as unconfigured rather than failing construction.
func NewClient(cfg ClientConfig) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.Temperature == 0 {
		cfg.Temperature = defaultTemperature
	}
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = defaultMaxTokens
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}

	return &Client{
		cfg:  cfg,
		http: http.NewClient(http.WithTimeout(cfg.Timeout)),
	}
}

// Configured reports whether an API key is available.
func (c *Client) Configured() bool {
	return c.cfg.APIKey != ""
}

// Complete sends the user message with the education system prompt and
// returns the model's reply. A disclaimer is appended when the reply
// contains prescriptive language.
func (c *Client) Complete(ctx context.Context, message string) (string, error) {
	if !c.Configured() {
		return "", ErrNotConfigured
	}

	req := completionRequest{
		Model: c.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: message},
		},
		Temperature: c.cfg.Temperature,
		MaxTokens:   c.cfg.MaxTokens,
	}

	var resp completionResponse
	err := c.http.SendAndParse(ctx, &http.RequestOptions{
		Method: http.MethodPost,
		URL:    c.cfg.BaseURL + "/chat/completions",
		Headers: map[string]string{
			"Authorization": "Bearer " + c.cfg.APIKey,
		},
		Body: req,
	}, &resp)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion: empty response")
	}

	reply := resp.Choices[0].Message.Content
	if containsAny(reply, prescriptivePhrases) {
		reply += disclaimerNote
	}

	return reply, nil
}
