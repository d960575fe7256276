package cache

import (
	"errors"
	"strings"
	"time"
)

// MaxKeyLength is the maximum allowed length for a tenant key.
const MaxKeyLength = 512

// Sentinel errors for cache operations.
var (
	ErrInvalidKey = errors.New("cache: key is invalid")
	ErrKeyTooLong = errors.New("cache: key exceeds max length")
)

// Stats reasons for entries that cannot be reported.
const (
	// ReasonIdentityUnavailable is reported when no tenant identity
	// could be resolved for the request.
	ReasonIdentityUnavailable = "identity unavailable"

	// ReasonNotCached is reported when the tenant has no valid entry.
	ReasonNotCached = "not cached"
)

// Entry is a cached policy summary for one tenant.
type Entry struct {
	// Summary is the cached text artifact. It may be AI-derived, a
	// heuristic excerpt, or truncated raw policy text.
	Summary string

	// CreatedAt is when the entry was produced.
	CreatedAt time.Time

	// ExpiresAt is CreatedAt plus the cache TTL. An entry is valid
	// iff now is before ExpiresAt.
	ExpiresAt time.Time
}

// Valid reports whether the entry is still usable at the given time.
func (e Entry) Valid(now time.Time) bool {
	return now.Before(e.ExpiresAt)
}

// Stats is a read-only diagnostic view of one tenant's cache state.
type Stats struct {
	// Cached reports whether a valid entry exists.
	Cached bool `json:"cached"`

	// Reason explains the absence of an entry when Cached is false.
	Reason string `json:"reason,omitempty"`

	// IsValid mirrors the TTL check at observation time.
	IsValid bool `json:"is_valid,omitempty"`

	// AgeMinutes is how long ago the entry was produced.
	AgeMinutes float64 `json:"age_minutes,omitempty"`

	// ExpiresInMinutes is how long until the entry expires.
	ExpiresInMinutes float64 `json:"expires_in_minutes,omitempty"`

	// SummaryLength is the character length of the cached summary.
	SummaryLength int `json:"summary_length,omitempty"`
}

// ValidateKey checks if a key is valid for caching.
func ValidateKey(key string) error {
	if key == "" || strings.TrimSpace(key) == "" {
		return ErrInvalidKey
	}
	if len(key) > MaxKeyLength {
		return ErrKeyTooLong
	}
	// Reject keys with newlines or carriage returns
	if strings.ContainsAny(key, "\n\r") {
		return ErrInvalidKey
	}
	return nil
}
