package summary

import (
	"errors"
	"testing"
)

func TestNewOpenAISummarizer(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	if _, err := NewOpenAISummarizer(OpenAIConfig{}); !errors.Is(err, ErrMissingAPIKey) {
		t.Errorf("error = %v, want ErrMissingAPIKey", err)
	}

	s, err := NewOpenAISummarizer(OpenAIConfig{APIKey: "test-key"})
	if err != nil {
		t.Fatalf("NewOpenAISummarizer() error = %v", err)
	}
	if s.model != openAIDefaultModel {
		t.Errorf("model = %q, want default %q", s.model, openAIDefaultModel)
	}
}

func TestNewOpenAISummarizer_KeyFromEnv(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "env-key")

	if _, err := NewOpenAISummarizer(OpenAIConfig{}); err != nil {
		t.Errorf("NewOpenAISummarizer() error = %v, want the env key to satisfy construction", err)
	}
}

func TestNewOpenAISummarizer_SecretRefKey(t *testing.T) {
	t.Setenv("POLICYOPS_OPENAI_KEY", "resolved-key")

	if _, err := NewOpenAISummarizer(OpenAIConfig{APIKey: "secretref:env:POLICYOPS_OPENAI_KEY"}); err != nil {
		t.Errorf("NewOpenAISummarizer() error = %v, want the reference to resolve", err)
	}
	if _, err := NewOpenAISummarizer(OpenAIConfig{APIKey: "${POLICYOPS_UNSET_KEY}"}); err == nil {
		t.Error("an unresolvable key reference should fail construction")
	}
}

func TestNewAnthropicSummarizer(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")

	if _, err := NewAnthropicSummarizer(AnthropicConfig{}); !errors.Is(err, ErrMissingAPIKey) {
		t.Errorf("error = %v, want ErrMissingAPIKey", err)
	}

	s, err := NewAnthropicSummarizer(AnthropicConfig{APIKey: "test-key"})
	if err != nil {
		t.Fatalf("NewAnthropicSummarizer() error = %v", err)
	}
	if s.model != anthropicDefaultModel {
		t.Errorf("model = %q, want default %q", s.model, anthropicDefaultModel)
	}
	if s.maxTokens != anthropicDefaultMaxTokens {
		t.Errorf("maxTokens = %d, want default %d", s.maxTokens, anthropicDefaultMaxTokens)
	}
}
