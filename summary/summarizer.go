package summary

import "context"

// Summarizer produces a prose summary of a policy document.
//
// Contract: implementations return the summary text or an error; they
// never block past ctx cancellation. Callers bound the input size and
// wrap the call in retry and timeout, so implementations stay simple
// single-shot clients.
type Summarizer interface {
	Summarize(ctx context.Context, policyText string) (string, error)
}
