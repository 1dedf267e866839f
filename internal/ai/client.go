// Package ai wraps the remote completion service behind a small client
// so the orchestrator can treat generation text as an opaque payload.
package ai

import (
	"context"
	"errors"
	"fmt"
	"log"

	openai "github.com/sashabaranov/go-openai"

	"sitegen_server/internal/ai/prompts"
	"sitegen_server/internal/types"
)

// CompletionClient produces the raw text for one site-generation request.
// Satisfied by *Client; the orchestrator takes the interface so tests can
// substitute a fake.
type CompletionClient interface {
	CompleteSite(ctx context.Context, settings types.Settings) (string, error)
}

// Client talks to an OpenAI-compatible completion endpoint (Groq by
// default).
type Client struct {
	client  *openai.Client
	modelID string
}

// NewClient builds a client for the given credential and endpoint.
// Returns nil when no credential is available; callers treat a nil client
// as "remote generation unavailable".
func NewClient(apiKey, baseURL, modelID string) *Client {
	if apiKey == "" {
		return nil
	}
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &Client{
		client:  openai.NewClientWithConfig(cfg),
		modelID: modelID,
	}
}

// CompleteSite sends the settings description to the completion service
// and returns the raw response text. Exactly one attempt is made; the
// caller decides what a failure means.
func (c *Client) CompleteSite(ctx context.Context, settings types.Settings) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: c.modelID,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: prompts.SystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompts.SiteGenerationPrompt(settings)},
		},
		Temperature: 0.2,
		MaxTokens:   4000,
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		log.Printf("Completion usage for empty response: %+v", resp.Usage)
		return "", errors.New("completion service returned empty response")
	}

	return resp.Choices[0].Message.Content, nil
}
