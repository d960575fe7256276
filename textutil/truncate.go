package textutil

import (
	"fmt"
	"strings"
)

// Truncate bounds input to maxChars characters.
//
// The input is trimmed of surrounding whitespace first. If the trimmed
// text fits within maxChars it is returned unchanged. Otherwise the
// first maxChars characters are kept (trimmed again) and a marker line
// naming the label and the budget is appended.
//
// Truncate is pure and deterministic; truncating an already-truncated
// string with the same budget is a no-op.
func Truncate(input string, maxChars int, label string) string {
	trimmed := strings.TrimSpace(input)
	if maxChars <= 0 {
		return trimmed
	}
	if len(trimmed) <= maxChars {
		return trimmed
	}

	// Already carries our marker for this label and budget; re-truncating
	// must be a no-op.
	if strings.HasSuffix(trimmed, TruncationMarker(label, maxChars)) {
		return trimmed
	}

	head := strings.TrimSpace(trimmed[:maxChars])
	return head + "\n" + TruncationMarker(label, maxChars)
}

// TruncationMarker returns the marker line appended to truncated text.
func TruncationMarker(label string, maxChars int) string {
	return fmt.Sprintf("[TRUNCATED: %s exceeded %d characters]", label, maxChars)
}
