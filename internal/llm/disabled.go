package llm

import (
	"context"

	"github.com/yatrika/service-planner/internal/domain/apperr"
)

// Disabled is a TextGenerator used when no Gemini API key is configured.
// Every call fails with a validation error naming the missing key.
type Disabled struct{}

// GenerateText always fails.
func (Disabled) GenerateText(context.Context, string) (string, error) {
	return "", apperr.NewValidationError("guide generation is disabled: GEMINI_API_KEY is not configured")
}
