package llm

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/yatrika/service-planner/internal/domain/apperr"
)

const defaultModel = "gemini-2.5-pro"

// TextGenerator produces free text from a prompt. Satisfied by GeminiClient
// and by fakes in tests.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// GeminiClient wraps the Google GenAI SDK for travel-guide text generation.
type GeminiClient struct {
	client    *genai.Client
	modelName string
	logger    *zap.Logger
}

// NewGeminiClient creates a Gemini-backed text generator with an injected
// API key. An empty model name falls back to the default model.
func NewGeminiClient(ctx context.Context, apiKey, modelName string, logger *zap.Logger) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if modelName == "" {
		modelName = defaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &GeminiClient{
		client:    client,
		modelName: modelName,
		logger:    logger,
	}, nil
}

// GenerateText sends the prompt and returns the concatenated text parts of
// the first candidate.
func (c *GeminiClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.modelName, genai.Text(prompt), nil)
	if err != nil {
		return "", apperr.NewUpstreamError("text generation failed", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", apperr.NewUpstreamError("text generation returned no candidates", nil)
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part.Text != "" {
			sb.WriteString(part.Text)
		}
	}
	if sb.Len() == 0 {
		return "", apperr.NewUpstreamError("text generation returned empty content", nil)
	}

	c.logger.Debug("generated travel guide text",
		zap.String("model", c.modelName),
		zap.Int("length", sb.Len()),
	)
	return sb.String(), nil
}
