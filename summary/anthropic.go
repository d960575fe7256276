package summary

import (
	"context"
	"fmt"
	"os"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	anthropicopt "github.com/anthropics/anthropic-sdk-go/option"

	"github.com/jonwraymond/policyops/secret"
)

const (
	anthropicDefaultModel     = "claude-3-5-haiku-latest"
	anthropicDefaultMaxTokens = 1024
)

// AnthropicConfig configures the Anthropic summarization backend.
type AnthropicConfig struct {
	// Model is the messages model to use. Default: claude-3-5-haiku-latest.
	Model string

	// MaxTokens bounds the completion length. Default: 1024.
	MaxTokens int

	// APIKey authenticates against the API. Accepts a literal key or
	// a secret reference ("${VAR}" or "secretref:env:VAR").
	// Default: $ANTHROPIC_API_KEY.
	APIKey string
}

// AnthropicSummarizer summarizes policies through the Anthropic
// Messages API.
type AnthropicSummarizer struct {
	client    *anthropic.Client
	model     string
	maxTokens int
}

var _ Summarizer = (*AnthropicSummarizer)(nil)

// NewAnthropicSummarizer creates the backend. A missing API key is a
// construction error so misconfiguration never reaches the pipeline.
func NewAnthropicSummarizer(config AnthropicConfig) (*AnthropicSummarizer, error) {
	if config.Model == "" {
		config.Model = anthropicDefaultModel
	}
	if config.MaxTokens <= 0 {
		config.MaxTokens = anthropicDefaultMaxTokens
	}
	if config.APIKey == "" {
		config.APIKey = os.Getenv("ANTHROPIC_API_KEY")
	}
	if config.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	key, err := secret.Resolve(context.Background(), config.APIKey)
	if err != nil {
		return nil, fmt.Errorf("summary: resolve Anthropic API key: %w", err)
	}
	client := anthropic.NewClient(anthropicopt.WithAPIKey(key))
	return &AnthropicSummarizer{
		client:    &client,
		model:     config.Model,
		maxTokens: config.MaxTokens,
	}, nil
}

// Summarize performs a single-turn message exchange over the policy text.
func (s *AnthropicSummarizer) Summarize(ctx context.Context, policyText string) (string, error) {
	msg, err := s.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(s.model),
		MaxTokens: int64(s.maxTokens),
		System: []anthropic.TextBlockParam{
			{Text: summarizePrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(policyText)),
		},
	})
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, block := range msg.Content {
		if tb, ok := block.AsAny().(anthropic.TextBlock); ok {
			b.WriteString(tb.Text)
		}
	}
	out := strings.TrimSpace(b.String())
	if out == "" {
		return "", ErrEmptyCompletion
	}
	return out, nil
}
