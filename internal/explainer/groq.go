package explainer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/opositest/backend/internal/domain/question"
)

// GroqExplainer asks an OpenAI-compatible chat endpoint (Groq by default)
// for a short, exam-oriented explanation in Spanish.
type GroqExplainer struct {
	url    string       // e.g. "https://api.groq.com/openai"
	model  string       // e.g. "llama3-8b-8192"
	client *http.Client // reused across calls
}

// Compile-time check: *GroqExplainer satisfies the Explainer interface.
var _ Explainer = (*GroqExplainer)(nil)

// ExplainError wraps a failed explanation call so the caller can tell a
// rejected key from a transient outage.
type ExplainError struct {
	Reason  string
	Status  int
	Wrapped error
}

func (e *ExplainError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("explanation failed: %s: %v", e.Reason, e.Wrapped)
	}
	return fmt.Sprintf("explanation failed: %s", e.Reason)
}

func (e *ExplainError) Unwrap() error {
	return e.Wrapped
}

// NewGroqExplainer creates an explainer that calls the given endpoint.
func NewGroqExplainer(url, model string) *GroqExplainer {
	return &GroqExplainer{
		url:   url,
		model: model,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

const systemPrompt = `Eres un preparador de oposiciones español que da explicaciones ULTRA-CONCISAS. Máximo 80 palabras por respuesta. Siempre incluye la base legal específica (artículo, ley) al inicio. Formato: "📚 [Base legal] - [Explicación breve]". Sin párrafos largos, directo al grano.`

// Explain requests one explanation. A single attempt: explanations are a
// nicety, a failed call is reported, not retried.
func (g *GroqExplainer) Explain(ctx context.Context, q question.Question, userAnswer question.Letter, apiKey string) (string, error) {
	if apiKey == "" {
		return "", &ExplainError{Reason: "no key configured", Wrapped: ErrNoAPIKey}
	}

	reqBody := chatRequest{
		Model: g.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: buildPrompt(q, userAnswer)},
		},
		MaxTokens:   150,
		Temperature: 0.1,
		Stream:      false,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", &ExplainError{Reason: "failed to marshal request", Wrapped: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.url+"/v1/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", &ExplainError{Reason: "failed to create request", Wrapped: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return "", &ExplainError{Reason: "request failed", Wrapped: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", statusError(resp.StatusCode)
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", &ExplainError{Reason: "failed to decode response", Wrapped: err}
	}

	if len(chatResp.Choices) == 0 || chatResp.Choices[0].Message.Content == "" {
		return "", &ExplainError{Reason: "response contained no content"}
	}

	return chatResp.Choices[0].Message.Content, nil
}

// statusError maps the interesting HTTP statuses onto sentinel causes.
func statusError(status int) *ExplainError {
	e := &ExplainError{Reason: fmt.Sprintf("endpoint returned status %d", status), Status: status}
	switch status {
	case http.StatusUnauthorized:
		e.Wrapped = ErrInvalidKey
	case http.StatusTooManyRequests:
		e.Wrapped = ErrRateLimit
	case http.StatusBadRequest:
		e.Wrapped = ErrBadRequest
	}
	return e
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
	Stream      bool          `json:"stream"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// buildPrompt asks for the legal basis first, then why the correct option is
// right and, when the user missed, why their pick is wrong.
func buildPrompt(q question.Question, userAnswer question.Letter) string {
	thirdPoint := "Concepto clave"
	if userAnswer != q.Answer {
		thirdPoint = fmt.Sprintf("Por qué %s es incorrecta", userAnswer)
	}

	return fmt.Sprintf(`Eres un experto preparador de oposiciones. Proporciona una explicación BREVE y CONCISA:

PREGUNTA: %s
TEMA: %s

OPCIONES:
A) %s
B) %s
C) %s
D) %s

RESPUESTA CORRECTA: %s
TU RESPUESTA: %s

Explica en MÁXIMO 80 palabras:
1. Base legal (artículo/ley específica)
2. Por qué %s es correcta
3. %s

Formato: "📚 [Base legal] - [Explicación breve]"
Ejemplo: "📚 Art. 103 CE - La Administración sirve con objetividad los intereses generales..."

Respuesta CONCISA:`,
		q.Text, q.Topic,
		q.Options[0], q.Options[1], q.Options[2], q.Options[3],
		q.Answer, userAnswer, q.Answer, thirdPoint)
}
