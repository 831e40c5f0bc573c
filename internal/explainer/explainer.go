package explainer

import (
	"context"
	"errors"

	"github.com/opositest/backend/internal/domain/question"
)

// Explainer produces a short explanation of why a question's correct answer
// is correct. Implementations may call an LLM or return canned results (for
// tests).
type Explainer interface {
	Explain(ctx context.Context, q question.Question, userAnswer question.Letter, apiKey string) (string, error)
}

// Sentinel causes for failed explanation calls. Callers match them with
// errors.Is to pick a user-facing message; everything else is an unknown
// failure.
var (
	ErrNoAPIKey   = errors.New("no API key configured")
	ErrInvalidKey = errors.New("API key rejected")
	ErrRateLimit  = errors.New("rate limit exceeded")
	ErrBadRequest = errors.New("malformed request")
)
