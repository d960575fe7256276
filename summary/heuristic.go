package summary

import (
	"strings"

	"github.com/jonwraymond/policyops/textutil"
)

const (
	// DefaultMaxSections is how many leading policy sections the
	// heuristic keeps.
	DefaultMaxSections = 5

	// DefaultExcerptChars bounds each kept section.
	DefaultExcerptChars = 1200
)

const heuristicHeader = "COMPANY POLICY (key sections, not a full summary)"

// HeuristicConfig configures the section extractor.
type HeuristicConfig struct {
	// MaxSections is the number of leading sections to keep.
	// Default: 5.
	MaxSections int

	// ExcerptChars bounds each section excerpt. Default: 1200.
	ExcerptChars int
}

// HeuristicSummarizer extracts the leading sections of a policy
// document as a stand-in when model summarization is unavailable.
//
// Contract: Summarize never fails. Malformed input yields at worst an
// empty string, which the pipeline treats as "fall through to the raw
// fallback".
type HeuristicSummarizer struct {
	maxSections  int
	excerptChars int
}

// NewHeuristicSummarizer creates the extractor with defaults applied.
func NewHeuristicSummarizer(config HeuristicConfig) *HeuristicSummarizer {
	if config.MaxSections <= 0 {
		config.MaxSections = DefaultMaxSections
	}
	if config.ExcerptChars <= 0 {
		config.ExcerptChars = DefaultExcerptChars
	}
	return &HeuristicSummarizer{
		maxSections:  config.MaxSections,
		excerptChars: config.ExcerptChars,
	}
}

// Summarize splits the policy on horizontal-rule lines ("---" alone on
// a line), keeps the first few sections, bounds each excerpt, and
// prepends a header disclosing that this is an extract.
func (h *HeuristicSummarizer) Summarize(fullText string) string {
	trimmed := strings.TrimSpace(fullText)
	if trimmed == "" {
		return ""
	}

	var sections []string
	var current []string
	flush := func() {
		section := strings.TrimSpace(strings.Join(current, "\n"))
		current = current[:0]
		if section != "" {
			sections = append(sections, section)
		}
	}
	for _, line := range strings.Split(trimmed, "\n") {
		if strings.TrimSpace(line) == "---" {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()

	if len(sections) == 0 {
		return ""
	}
	if len(sections) > h.maxSections {
		sections = sections[:h.maxSections]
	}

	var b strings.Builder
	b.WriteString(heuristicHeader)
	for _, section := range sections {
		b.WriteString("\n\n")
		b.WriteString(textutil.Truncate(section, h.excerptChars, "policy section"))
	}
	return b.String()
}
