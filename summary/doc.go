// Package summary produces tenant policy summaries through a tiered
// degradation pipeline.
//
// The Service resolves the tenant from the request context, serves a
// valid cached summary when one exists, and otherwise recomputes: an
// AI summarizer first, a heuristic section extractor when the model is
// unavailable or slow, and finally a truncated slice of the raw policy
// text. The last tier has no external dependency, which is what lets
// PolicySummary promise a string on every call instead of an error.
//
// Model backends live here too: OpenAI and Anthropic clients behind
// the Summarizer interface, plus the PolicyStore abstraction over the
// upstream policy document source.
package summary
