package summary

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/jonwraymond/policyops/secret"
)

const openAIDefaultModel = "gpt-4o-mini"

const summarizePrompt = "Summarize the following company security policy for " +
	"support agents. Keep every concrete rule, threshold, and approval " +
	"requirement; drop boilerplate. Answer in plain prose."

// OpenAIConfig configures the OpenAI summarization backend.
type OpenAIConfig struct {
	// Model is the chat model to use. Default: gpt-4o-mini.
	Model string

	// APIKey authenticates against the API. Accepts a literal key or
	// a secret reference ("${VAR}" or "secretref:env:VAR").
	// Default: $OPENAI_API_KEY.
	APIKey string
}

// OpenAISummarizer summarizes policies through the OpenAI chat API.
type OpenAISummarizer struct {
	client *openai.Client
	model  string
}

var _ Summarizer = (*OpenAISummarizer)(nil)

// NewOpenAISummarizer creates the backend. A missing API key is a
// construction error so misconfiguration never reaches the pipeline.
func NewOpenAISummarizer(config OpenAIConfig) (*OpenAISummarizer, error) {
	if config.Model == "" {
		config.Model = openAIDefaultModel
	}
	if config.APIKey == "" {
		config.APIKey = os.Getenv("OPENAI_API_KEY")
	}
	if config.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	key, err := secret.Resolve(context.Background(), config.APIKey)
	if err != nil {
		return nil, fmt.Errorf("summary: resolve OpenAI API key: %w", err)
	}
	return &OpenAISummarizer{
		client: openai.NewClient(key),
		model:  config.Model,
	}, nil
}

// Summarize performs a single-turn chat completion over the policy text.
func (s *OpenAISummarizer) Summarize(ctx context.Context, policyText string) (string, error) {
	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: summarizePrompt},
			{Role: openai.ChatMessageRoleUser, Content: policyText},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}
	out := strings.TrimSpace(resp.Choices[0].Message.Content)
	if out == "" {
		return "", ErrEmptyCompletion
	}
	return out, nil
}
