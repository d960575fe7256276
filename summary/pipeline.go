package summary

import (
	"context"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/jonwraymond/policyops/cache"
	"github.com/jonwraymond/policyops/observe"
	"github.com/jonwraymond/policyops/resilience"
	"github.com/jonwraymond/policyops/tenant"
	"github.com/jonwraymond/policyops/textutil"
)

// Summary tiers, in degradation order.
const (
	TierAI           = "ai"
	TierHeuristic    = "heuristic"
	TierRawTruncated = "raw_truncated"
)

const (
	// DefaultMaxModelInputChars bounds the policy text sent to the model.
	DefaultMaxModelInputChars = 24000

	// DefaultModelTimeout bounds each model attempt.
	DefaultModelTimeout = 30 * time.Second

	// DefaultFetchTimeout bounds each policy fetch attempt.
	DefaultFetchTimeout = 10 * time.Second

	// DefaultRawFallbackChars bounds the last-resort raw excerpt.
	DefaultRawFallbackChars = 6000
)

// RawFallbackHeader opens the last-resort summary so consumers can
// tell a degraded result from a real one.
const RawFallbackHeader = "COMPANY POLICY (fallback, truncated raw text)"

// Config configures the summary Service.
type Config struct {
	// Store fetches raw policy documents. Required.
	Store PolicyStore

	// Model is the AI summarization backend. Optional: when nil the
	// pipeline starts at the heuristic tier.
	Model Summarizer

	// Cache holds computed summaries per tenant. Default: a fresh
	// in-memory cache with a one-hour TTL.
	Cache *cache.SummaryCache

	// Heuristic is the fallback extractor. Default: defaults applied.
	Heuristic *HeuristicSummarizer

	// MaxModelInputChars bounds model input. Default: 24000.
	MaxModelInputChars int

	// ModelTimeout bounds each model attempt. Default: 30s.
	ModelTimeout time.Duration

	// FetchTimeout bounds each policy fetch attempt. Default: 10s.
	FetchTimeout time.Duration

	// MaxAttempts is the attempt ceiling for both external calls,
	// including the first. Default: 3.
	MaxAttempts int

	// RawFallbackChars bounds the Tier-3 raw excerpt. Default: 6000.
	RawFallbackChars int

	// Logger, Metrics, and Tracer default to noops.
	Logger  observe.Logger
	Metrics observe.Metrics
	Tracer  observe.Tracer
}

// Service computes, caches, and serves tenant policy summaries.
//
// Contract: PolicySummary always returns a string. Failures downstream
// of the caller degrade through the tiers instead of propagating.
type Service struct {
	store     PolicyStore
	model     Summarizer
	cache     *cache.SummaryCache
	heuristic *HeuristicSummarizer

	modelExec *resilience.Executor
	fetchExec *resilience.Executor

	maxModelInput    int
	rawFallbackChars int

	logger  observe.Logger
	metrics observe.Metrics
	tracer  observe.Tracer

	// group coalesces concurrent recomputations per tenant so a cold
	// cache does not fan out into parallel model calls.
	group singleflight.Group
}

// NewService creates the Service with defaults applied.
func NewService(config Config) (*Service, error) {
	if config.Store == nil {
		return nil, ErrMissingStore
	}
	if config.Cache == nil {
		config.Cache = cache.NewSummaryCache(cache.Config{})
	}
	if config.Heuristic == nil {
		config.Heuristic = NewHeuristicSummarizer(HeuristicConfig{})
	}
	if config.MaxModelInputChars <= 0 {
		config.MaxModelInputChars = DefaultMaxModelInputChars
	}
	if config.ModelTimeout <= 0 {
		config.ModelTimeout = DefaultModelTimeout
	}
	if config.FetchTimeout <= 0 {
		config.FetchTimeout = DefaultFetchTimeout
	}
	if config.RawFallbackChars <= 0 {
		config.RawFallbackChars = DefaultRawFallbackChars
	}
	if config.Logger == nil {
		config.Logger = observe.NewNoopLogger()
	}
	if config.Metrics == nil {
		config.Metrics = observe.NewNoopMetrics()
	}
	if config.Tracer == nil {
		config.Tracer = observe.NewNoopTracer()
	}

	logger := config.Logger.WithComponent("summary")
	retryConfig := resilience.RetryConfig{
		MaxAttempts: config.MaxAttempts,
		OnRetry: func(label string, attempt int, err error, delay time.Duration) {
			logger.Warn(context.Background(), "retrying after failure",
				observe.Field{Key: "operation", Value: label},
				observe.Field{Key: "attempt", Value: attempt},
				observe.Field{Key: "error", Value: err.Error()},
				observe.Field{Key: "delay_ms", Value: delay.Milliseconds()},
			)
		},
	}

	return &Service{
		store:     config.Store,
		model:     config.Model,
		cache:     config.Cache,
		heuristic: config.Heuristic,
		modelExec: resilience.NewExecutor(
			resilience.WithRetry(resilience.NewRetry(retryConfig)),
			resilience.WithTimeout(config.ModelTimeout),
		),
		fetchExec: resilience.NewExecutor(
			resilience.WithRetry(resilience.NewRetry(retryConfig)),
			resilience.WithTimeout(config.FetchTimeout),
		),
		maxModelInput:    config.MaxModelInputChars,
		rawFallbackChars: config.RawFallbackChars,
		logger:           logger,
		metrics:          config.Metrics,
		tracer:           config.Tracer,
	}, nil
}

// PolicySummary returns the tenant's policy summary.
//
// A valid cached entry is returned without any external call. On a
// miss the summary is recomputed through the tiers and cached when a
// tenant identity was resolved; without an identity the result is
// returned for this call only. Concurrent misses for the same tenant
// share one recomputation.
func (s *Service) PolicySummary(ctx context.Context) string {
	tenantID, hasIdentity := tenant.Resolve(ctx)

	if hasIdentity {
		if entry, ok := s.cache.Get(tenantID); ok {
			s.metrics.RecordCacheLookup(ctx, true)
			return entry.Summary
		}
		s.metrics.RecordCacheLookup(ctx, false)

		// Followers observe the leader's result; the leader's ctx
		// drives the shared computation.
		v, _, _ := s.group.Do(tenantID, func() (any, error) {
			return s.compute(ctx, tenantID), nil
		})
		summary, _ := v.(string)
		return summary
	}

	s.metrics.RecordCacheLookup(ctx, false)
	return s.compute(ctx, "")
}

// ClearCache drops every cached summary. Idempotent.
func (s *Service) ClearCache() {
	s.cache.ClearAll()
}

// CacheStats reports the cache state for the tenant resolved from ctx.
func (s *Service) CacheStats(ctx context.Context) cache.Stats {
	tenantID, _ := tenant.Resolve(ctx)
	return s.cache.Stats(tenantID)
}

func (s *Service) compute(ctx context.Context, tenantID string) string {
	ctx, span := s.tracer.StartSpan(ctx, observe.StageMeta{Stage: "summarize", Tenant: tenantID})
	defer s.tracer.EndSpan(span, nil)

	raw, err := s.fetchPolicy(ctx, tenantID)
	if err != nil {
		s.logger.Warn(ctx, "policy fetch failed, returning empty summary",
			observe.Field{Key: "tenant", Value: tenantID},
			observe.Field{Key: "error", Value: err.Error()},
		)
		return ""
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		// A missing policy is not cached: the tenant may get one
		// before the TTL would have lapsed.
		return ""
	}

	start := time.Now()
	candidate, tier, modelErr := s.summarize(ctx, raw)
	s.metrics.RecordSummary(ctx, tier, time.Since(start), modelErr)
	s.logger.Info(ctx, "policy summary computed",
		observe.Field{Key: "tenant", Value: tenantID},
		observe.Field{Key: "tier", Value: tier},
		observe.Field{Key: "summary_chars", Value: len(candidate)},
	)

	if tenantID != "" {
		s.cache.Put(tenantID, candidate)
	}
	return candidate
}

func (s *Service) fetchPolicy(ctx context.Context, tenantID string) (string, error) {
	var (
		mu  sync.Mutex
		raw string
	)
	err := s.fetchExec.Execute(ctx, "fetch-policy", func(ctx context.Context) error {
		text, err := s.store.FetchRawPolicy(ctx, tenantID)
		if err != nil {
			return err
		}
		mu.Lock()
		raw = text
		mu.Unlock()
		return nil
	})
	if err != nil {
		return "", err
	}
	mu.Lock()
	defer mu.Unlock()
	return raw, nil
}

// summarize runs the degradation tiers over a non-empty policy. It
// cannot fail: the last tier is a pure transformation of raw.
func (s *Service) summarize(ctx context.Context, raw string) (candidate, tier string, modelErr error) {
	if s.model != nil {
		bounded := textutil.Truncate(raw, s.maxModelInput, "policy text")

		// The timeout abandons slow attempts; their late results may
		// land after Execute returns, hence the mutex.
		var (
			mu  sync.Mutex
			out string
		)
		err := s.modelExec.Execute(ctx, "summarize-policy", func(ctx context.Context) error {
			text, err := s.model.Summarize(ctx, bounded)
			if err != nil {
				return err
			}
			text = strings.TrimSpace(text)
			if text == "" {
				return ErrEmptyCompletion
			}
			mu.Lock()
			out = text
			mu.Unlock()
			return nil
		})
		if err == nil {
			mu.Lock()
			defer mu.Unlock()
			return out, TierAI, nil
		}
		modelErr = err
		s.logger.Warn(ctx, "model summarization failed, degrading",
			observe.Field{Key: "error", Value: err.Error()},
		)
	}

	if extract := strings.TrimSpace(s.heuristic.Summarize(raw)); extract != "" {
		return extract, TierHeuristic, modelErr
	}

	fallback := RawFallbackHeader + "\n\n" +
		textutil.Truncate(raw, s.rawFallbackChars, "policy text")
	return fallback, TierRawTruncated, modelErr
}
