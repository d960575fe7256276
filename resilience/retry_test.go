package resilience

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestNewRetry(t *testing.T) {
	r := NewRetry(RetryConfig{})

	if r.config.MaxAttempts != 3 {
		t.Errorf("MaxAttempts = %d, want 3", r.config.MaxAttempts)
	}
	if r.config.InitialDelay != 100*time.Millisecond {
		t.Errorf("InitialDelay = %v, want 100ms", r.config.InitialDelay)
	}
	if r.config.MaxDelay != 30*time.Second {
		t.Errorf("MaxDelay = %v, want 30s", r.config.MaxDelay)
	}
	if r.config.Multiplier != 2.0 {
		t.Errorf("Multiplier = %f, want 2.0", r.config.Multiplier)
	}
}

func TestRetry_SuccessOnFirstAttempt(t *testing.T) {
	r := NewRetry(RetryConfig{MaxAttempts: 3})

	attempts := 0
	err := r.Execute(context.Background(), "op", func(ctx context.Context) error {
		attempts++
		return nil
	})

	if err != nil {
		t.Errorf("Execute() error = %v", err)
	}
	if attempts != 1 {
		t.Errorf("attempts = %d, want 1", attempts)
	}
}

func TestRetry_SuccessOnRetry(t *testing.T) {
	r := NewRetry(RetryConfig{
		MaxAttempts:  3,
		InitialDelay: time.Millisecond,
		Jitter:       false,
	})

	attempts := 0
	testErr := errors.New("test error")

	err := r.Execute(context.Background(), "op", func(ctx context.Context) error {
		attempts++
		if attempts < 3 {
			return testErr
		}
		return nil
	})

	if err != nil {
		t.Errorf("Execute() error = %v", err)
	}
	if attempts != 3 {
		t.Errorf("attempts = %d, want 3", attempts)
	}
}

func TestRetry_ExhaustedAttemptsTagsLabel(t *testing.T) {
	r := NewRetry(RetryConfig{
		MaxAttempts:  3,
		InitialDelay: time.Millisecond,
		Jitter:       false,
	})

	attempts := 0
	testErr := errors.New("persistent error")

	err := r.Execute(context.Background(), "policy-summarization", func(ctx context.Context) error {
		attempts++
		return testErr
	})

	if !errors.Is(err, testErr) {
		t.Errorf("Execute() error = %v, want wrapped %v", err, testErr)
	}
	if !strings.Contains(err.Error(), "policy-summarization") {
		t.Errorf("final error should carry the label, got %v", err)
	}
	if attempts != 3 {
		t.Errorf("attempts = %d, want 3", attempts)
	}
}

func TestRetry_BlindToErrorType(t *testing.T) {
	// Permanent-looking errors are retried identically to transient ones.
	r := NewRetry(RetryConfig{
		MaxAttempts:  3,
		InitialDelay: time.Millisecond,
		Jitter:       false,
	})

	attempts := 0
	err := r.Execute(context.Background(), "op", func(ctx context.Context) error {
		attempts++
		return errors.New("invalid input")
	})

	if err == nil {
		t.Fatal("Execute() should fail after exhausting attempts")
	}
	if attempts != 3 {
		t.Errorf("attempts = %d, want 3 (blind retry must not short-circuit)", attempts)
	}
}

func TestRetry_RetryIfStopsEarly(t *testing.T) {
	permanent := errors.New("permanent")
	r := NewRetry(RetryConfig{
		MaxAttempts:  5,
		InitialDelay: time.Millisecond,
		Jitter:       false,
		RetryIf: func(err error) bool {
			return !errors.Is(err, permanent)
		},
	})

	attempts := 0
	err := r.Execute(context.Background(), "op", func(ctx context.Context) error {
		attempts++
		return permanent
	})

	if !errors.Is(err, permanent) {
		t.Errorf("Execute() error = %v, want wrapped %v", err, permanent)
	}
	if attempts != 1 {
		t.Errorf("attempts = %d, want 1", attempts)
	}
}

func TestRetry_OnRetryCallback(t *testing.T) {
	type retryEvent struct {
		label   string
		attempt int
	}
	var events []retryEvent

	r := NewRetry(RetryConfig{
		MaxAttempts:  3,
		InitialDelay: time.Millisecond,
		Jitter:       false,
		OnRetry: func(label string, attempt int, err error, delay time.Duration) {
			events = append(events, retryEvent{label: label, attempt: attempt})
		},
	})

	_ = r.Execute(context.Background(), "fetch", func(ctx context.Context) error {
		return errors.New("fail")
	})

	if len(events) != 2 {
		t.Fatalf("OnRetry called %d times, want 2", len(events))
	}
	for i, ev := range events {
		if ev.label != "fetch" {
			t.Errorf("event %d label = %q, want %q", i, ev.label, "fetch")
		}
		if ev.attempt != i+1 {
			t.Errorf("event %d attempt = %d, want %d", i, ev.attempt, i+1)
		}
	}
}

func TestRetry_ContextCancellation(t *testing.T) {
	r := NewRetry(RetryConfig{
		MaxAttempts:  10,
		InitialDelay: 100 * time.Millisecond,
	})

	ctx, cancel := context.WithCancel(context.Background())

	attempts := 0
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	err := r.Execute(ctx, "op", func(ctx context.Context) error {
		attempts++
		return errors.New("fail")
	})

	if !errors.Is(err, context.Canceled) {
		t.Errorf("Execute() error = %v, want context.Canceled", err)
	}
	if attempts >= 10 {
		t.Errorf("attempts = %d, cancellation should stop retries early", attempts)
	}
}

func TestRetry_CalculateDelay(t *testing.T) {
	tests := []struct {
		name     string
		strategy BackoffStrategy
		attempt  int
		want     time.Duration
	}{
		{"constant attempt 1", BackoffConstant, 1, 100 * time.Millisecond},
		{"constant attempt 3", BackoffConstant, 3, 100 * time.Millisecond},
		{"linear attempt 1", BackoffLinear, 1, 100 * time.Millisecond},
		{"linear attempt 3", BackoffLinear, 3, 300 * time.Millisecond},
		{"exponential attempt 1", BackoffExponential, 1, 100 * time.Millisecond},
		{"exponential attempt 3", BackoffExponential, 3, 400 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRetry(RetryConfig{
				InitialDelay: 100 * time.Millisecond,
				Strategy:     tt.strategy,
				Jitter:       false,
			})
			got := r.calculateDelay(tt.attempt)
			if got != tt.want {
				t.Errorf("calculateDelay(%d) = %v, want %v", tt.attempt, got, tt.want)
			}
		})
	}
}

func TestRetry_DelayCappedAtMax(t *testing.T) {
	r := NewRetry(RetryConfig{
		InitialDelay: time.Second,
		MaxDelay:     2 * time.Second,
		Strategy:     BackoffExponential,
		Jitter:       false,
	})

	if got := r.calculateDelay(10); got != 2*time.Second {
		t.Errorf("calculateDelay(10) = %v, want capped 2s", got)
	}
}
