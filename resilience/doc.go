// Package resilience provides retry and timeout combinators for
// external calls.
//
// Every call that leaves the process (summarization models, policy
// fetches) is wrapped in a Timeout, which enforces a hard wall-clock
// deadline, and a Retry, which re-attempts failures with bounded
// backoff. The two can be composed through an Executor:
//
//	executor := resilience.NewExecutor(
//	    resilience.WithRetry(resilience.NewRetry(resilience.RetryConfig{
//	        MaxAttempts:  3,
//	        InitialDelay: 100 * time.Millisecond,
//	    })),
//	    resilience.WithTimeout(30*time.Second),
//	)
//
//	err := executor.Execute(ctx, "policy-summarization", func(ctx context.Context) error {
//	    return callModel(ctx)
//	})
//
// Retries are blind to error type: transient and permanent failures
// are retried identically up to the attempt ceiling. Callers that need
// to exempt an error class can set RetryConfig.RetryIf.
package resilience
