package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/jmcandrew/stevedore/pkg/formatting"
)

// System is the gateway contract: one single-shot remote call per
// operation, no retry, no cancellation beyond ctx. The gateway never
// mutates document state; applying results is the caller's job.
type System interface {
	Invoke(ctx context.Context, kind Kind, content string) (*Result, error)
}

// Options configures the remote inference client.
type Options struct {
	Token      string
	BaseURL    string
	Model      string
	AuditModel string
	MaxTokens  int
}

type gateway struct {
	client     *openai.Client
	model      string
	auditModel string
	maxTokens  int
	logger     *slog.Logger
}

// New creates a gateway backed by an OpenAI-compatible chat completion
// endpoint.
func New(opts Options, logger *slog.Logger) System {
	cfg := openai.DefaultConfig(opts.Token)
	if opts.BaseURL != "" {
		cfg.BaseURL = opts.BaseURL
	}

	return &gateway{
		client:     openai.NewClientWithConfig(cfg),
		model:      opts.Model,
		auditModel: opts.AuditModel,
		maxTokens:  opts.MaxTokens,
		logger:     logger.With("system", "analysis"),
	}
}

type extractionResponse struct {
	Summary         string   `json:"summary"`
	ConfidenceScore int      `json:"confidence_score"`
	Entities        []Entity `json:"entities"`
}

type auditResponse struct {
	Summary         string   `json:"summary"`
	ConfidenceScore int      `json:"confidence_score"`
	Risks           []string `json:"risks"`
}

type intelligenceResponse struct {
	Summary string   `json:"summary"`
	Sources []string `json:"sources"`
}

func (g *gateway) Invoke(ctx context.Context, kind Kind, content string) (*Result, error) {
	system, user, err := Prompts(kind, content)
	if err != nil {
		return nil, err
	}

	raw, err := g.complete(ctx, g.modelFor(kind), system, user)
	if err != nil {
		g.logger.Error("gateway call failed", "kind", kind, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrAnalysisFailed, err)
	}

	result, err := g.normalize(kind, raw)
	if err != nil {
		g.logger.Error("gateway response malformed", "kind", kind, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrAnalysisFailed, err)
	}

	g.logger.Info(
		"analysis complete",
		"kind", kind,
		"confidence", result.ConfidenceScore,
	)
	return result, nil
}

func (g *gateway) modelFor(kind Kind) string {
	if kind == KindDeepAudit && g.auditModel != "" {
		return g.auditModel
	}
	return g.model
}

func (g *gateway) complete(ctx context.Context, model, system, user string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: model,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
	}

	// Reasoning model families reject MaxTokens
	if strings.HasPrefix(model, "o1") || strings.HasPrefix(model, "o3") ||
		strings.HasPrefix(model, "o4") || strings.HasPrefix(model, "gpt-5") {
		req.MaxCompletionTokens = g.maxTokens
	} else {
		req.MaxTokens = g.maxTokens
	}

	resp, err := g.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

func (g *gateway) normalize(kind Kind, raw string) (*Result, error) {
	switch kind {
	case KindQuickExtraction:
		body, err := formatting.ParseJSON[extractionResponse](raw)
		if err != nil {
			return nil, err
		}
		if body.Summary == "" {
			return nil, fmt.Errorf("extraction response missing summary")
		}
		return NewExtractionResult(body.Summary, body.ConfidenceScore, body.Entities), nil

	case KindDeepAudit:
		body, err := formatting.ParseJSON[auditResponse](raw)
		if err != nil {
			return nil, err
		}
		if body.Summary == "" {
			return nil, fmt.Errorf("audit response missing summary")
		}
		return NewAuditResult(body.Summary, body.ConfidenceScore, body.Risks), nil

	case KindMarketContext:
		body, err := formatting.ParseJSON[intelligenceResponse](raw)
		if err != nil {
			return nil, err
		}
		summary := body.Summary
		if summary == "" {
			summary = "Market context analysis complete."
		}
		return NewIntelligenceResult(summary, body.Sources), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrInvalidKind, kind)
}
