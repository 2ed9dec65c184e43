// Package gemini implements the generation.Generator interface against
// Google's Gemini API.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"text/template"

	"google.golang.org/genai"

	"github.com/brianhe1/smartcards-ai/internal/config"
	"github.com/brianhe1/smartcards-ai/internal/domain"
	"github.com/brianhe1/smartcards-ai/internal/generation"
)

// defaultPromptTemplate instructs the model to return the exact JSON shape
// parsed by responseSchema. A file configured via LLMConfig takes precedence.
const defaultPromptTemplate = `You are a flashcard creator.
Create exactly {{.Count}} flashcards about the following topic:

{{.Topic}}

Both front and back should be one sentence long and may use markdown.
Return ONLY valid JSON in the following format, with no surrounding text:
{"flashcards": [{"front": "...", "back": "..."}]}`

// Generator implements generation.Generator using the Gemini API.
type Generator struct {
	logger         *slog.Logger
	client         *genai.Client
	model          string
	promptTemplate *template.Template
}

// Ensure Generator implements the generation.Generator interface
var _ generation.Generator = (*Generator)(nil)

// NewGenerator creates a Generator from the LLM configuration. The context
// is used for client initialization only; each generation call carries its
// own context.
func NewGenerator(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*Generator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}

	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	templateText := defaultPromptTemplate
	if cfg.PromptTemplatePath != "" {
		content, err := os.ReadFile(cfg.PromptTemplatePath)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to read prompt template from %s: %v",
				generation.ErrInvalidConfig, cfg.PromptTemplatePath, err)
		}
		templateText = string(content)
	}

	promptTemplate, err := template.New("flashcards").Parse(templateText)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse prompt template: %v",
			generation.ErrInvalidConfig, err)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v",
			generation.ErrInvalidConfig, err)
	}

	return &Generator{
		logger:         logger,
		client:         client,
		model:          cfg.ModelName,
		promptTemplate: promptTemplate,
	}, nil
}

// GenerateCards implements generation.Generator.GenerateCards
// It performs one request/response round trip against the Gemini API and
// parses the JSON payload into card contents, preserving the model's order.
func (g *Generator) GenerateCards(ctx context.Context, topic string, count int) ([]domain.CardContent, error) {
	prompt, err := g.buildPrompt(topic, count)
	if err != nil {
		return nil, err
	}

	g.logger.InfoContext(ctx, "Calling Gemini API",
		"model", g.model,
		"topic_length", len(topic),
		"count", count)

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		g.logger.ErrorContext(ctx, "Gemini API call failed", "error", err)
		return nil, fmt.Errorf("%w: %v", generation.ErrGenerationFailed, err)
	}

	cards, err := g.parseResponse(resp, count)
	if err != nil {
		g.logger.WarnContext(ctx, "Gemini response rejected", "error", err)
		return nil, err
	}

	g.logger.InfoContext(ctx, "Gemini API call successful", "cards", len(cards))
	return cards, nil
}

// buildPrompt validates the inputs and renders the prompt template.
func (g *Generator) buildPrompt(topic string, count int) (string, error) {
	if strings.TrimSpace(topic) == "" {
		return "", generation.ErrEmptyTopic
	}
	if count <= 0 {
		return "", generation.ErrInvalidCount
	}

	var buf bytes.Buffer
	if err := g.promptTemplate.Execute(&buf, promptData{Topic: topic, Count: count}); err != nil {
		return "", fmt.Errorf("failed to execute prompt template: %w", err)
	}
	return buf.String(), nil
}

// parseResponse extracts and validates the card list from a model response.
// If the model over-generates, the list is truncated to count; a short list
// is passed through as-is and left to the caller to judge.
func (g *Generator) parseResponse(resp *genai.GenerateContentResponse, count int) ([]domain.CardContent, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("%w: no content generated", generation.ErrInvalidResponse)
	}

	candidate := resp.Candidates[0]
	if candidate.FinishReason == genai.FinishReasonSafety {
		return nil, fmt.Errorf("%w: finish reason %s", generation.ErrContentBlocked, candidate.FinishReason)
	}
	if candidate.Content == nil {
		return nil, fmt.Errorf("%w: empty content in response", generation.ErrInvalidResponse)
	}

	var text strings.Builder
	for _, part := range candidate.Content.Parts {
		if part != nil {
			text.WriteString(part.Text)
		}
	}

	return parseCardsJSON(text.String(), count)
}

// parseCardsJSON decodes the {"flashcards": [...]} document, tolerating a
// markdown code fence around it, and validates every card.
func parseCardsJSON(raw string, count int) ([]domain.CardContent, error) {
	raw = stripCodeFence(raw)

	var parsed responseSchema
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, fmt.Errorf("%w: failed to parse JSON response: %v", generation.ErrInvalidResponse, err)
	}

	if len(parsed.Flashcards) == 0 {
		return nil, fmt.Errorf("%w: no flashcards in response", generation.ErrInvalidResponse)
	}

	if len(parsed.Flashcards) > count {
		parsed.Flashcards = parsed.Flashcards[:count]
	}

	cards := make([]domain.CardContent, 0, len(parsed.Flashcards))
	for i, c := range parsed.Flashcards {
		content := domain.CardContent{Front: c.Front, Back: c.Back}
		if err := content.Validate(); err != nil {
			return nil, fmt.Errorf("%w: card %d: %v", generation.ErrInvalidResponse, i, err)
		}
		cards = append(cards, content)
	}

	return cards, nil
}

// stripCodeFence removes a surrounding ```json ... ``` fence if present.
// Models frequently wrap JSON output in one despite instructions not to.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
