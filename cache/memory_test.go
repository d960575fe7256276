package cache

import (
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"
)

// fakeClock is a manually-advanced clock for simulating TTL expiry.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestSummaryCache_GetPutClear(t *testing.T) {
	c := NewSummaryCache(Config{})

	// Get on empty cache
	if _, ok := c.Get("company-1"); ok {
		t.Error("Get on empty cache should return ok=false")
	}

	// Put then Get
	c.Put("company-1", "Summary")
	entry, ok := c.Get("company-1")
	if !ok {
		t.Fatal("Get after Put should return ok=true")
	}
	if entry.Summary != "Summary" {
		t.Errorf("Summary = %q, want %q", entry.Summary, "Summary")
	}
	if !entry.ExpiresAt.Equal(entry.CreatedAt.Add(DefaultTTL)) {
		t.Errorf("ExpiresAt = %v, want CreatedAt + %v", entry.ExpiresAt, DefaultTTL)
	}

	// ClearAll empties and is idempotent
	c.ClearAll()
	if _, ok := c.Get("company-1"); ok {
		t.Error("Get after ClearAll should return ok=false")
	}
	c.ClearAll()
	if c.Len() != 0 {
		t.Errorf("Len after double ClearAll = %d, want 0", c.Len())
	}
}

func TestSummaryCache_PutOverwrites(t *testing.T) {
	c := NewSummaryCache(Config{})

	c.Put("company-1", "old")
	c.Put("company-1", "new")

	entry, ok := c.Get("company-1")
	if !ok {
		t.Fatal("Get should return ok=true")
	}
	if entry.Summary != "new" {
		t.Errorf("Summary = %q, want %q", entry.Summary, "new")
	}
	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1", c.Len())
	}
}

func TestSummaryCache_TTLExpiry(t *testing.T) {
	clock := newFakeClock()
	c := NewSummaryCache(Config{TTL: time.Hour, Clock: clock.Now})

	c.Put("company-1", "Summary")

	// Still valid just before expiry
	clock.Advance(59 * time.Minute)
	if _, ok := c.Get("company-1"); !ok {
		t.Error("entry should still be valid at 59 minutes")
	}

	// Expired past the TTL
	clock.Advance(2 * time.Minute)
	if _, ok := c.Get("company-1"); ok {
		t.Error("entry should be expired at 61 minutes")
	}

	// Lazy deletion removed the entry
	if c.Len() != 0 {
		t.Errorf("Len after expired Get = %d, want 0 (lazy delete)", c.Len())
	}
}

func TestSummaryCache_ExpiryBoundary(t *testing.T) {
	clock := newFakeClock()
	c := NewSummaryCache(Config{TTL: time.Hour, Clock: clock.Now})

	c.Put("company-1", "Summary")

	// Valid iff now < expiresAt: exactly at the boundary is invalid.
	clock.Advance(time.Hour)
	if _, ok := c.Get("company-1"); ok {
		t.Error("entry at exactly expiresAt should be invalid")
	}
}

func TestSummaryCache_TenantIsolation(t *testing.T) {
	c := NewSummaryCache(Config{})

	c.Put("company-1", "S1")
	c.Put("company-2", "S2")

	// Reads in either order see their own tenant's value.
	if entry, _ := c.Get("company-2"); entry.Summary != "S2" {
		t.Errorf("company-2 summary = %q, want %q", entry.Summary, "S2")
	}
	if entry, _ := c.Get("company-1"); entry.Summary != "S1" {
		t.Errorf("company-1 summary = %q, want %q", entry.Summary, "S1")
	}

	// Overwriting one tenant never changes the other.
	c.Put("company-1", "S1-updated")
	if entry, _ := c.Get("company-2"); entry.Summary != "S2" {
		t.Errorf("company-2 summary after company-1 write = %q, want %q", entry.Summary, "S2")
	}
}

func TestSummaryCache_InvalidKeysNotStored(t *testing.T) {
	c := NewSummaryCache(Config{})

	c.Put("", "anonymous result")
	c.Put("   ", "whitespace key")
	c.Put("bad\nkey", "newline key")

	if c.Len() != 0 {
		t.Errorf("Len = %d, want 0 (invalid keys must not be stored)", c.Len())
	}
}

func TestSummaryCache_Stats(t *testing.T) {
	clock := newFakeClock()
	c := NewSummaryCache(Config{TTL: time.Hour, Clock: clock.Now})

	// Identity unavailable is distinct from not cached.
	stats := c.Stats("")
	if stats.Cached || stats.Reason != ReasonIdentityUnavailable {
		t.Errorf("Stats(\"\") = %+v, want reason %q", stats, ReasonIdentityUnavailable)
	}

	stats = c.Stats("company-1")
	if stats.Cached || stats.Reason != ReasonNotCached {
		t.Errorf("Stats on missing tenant = %+v, want reason %q", stats, ReasonNotCached)
	}

	c.Put("company-1", "Summary")
	clock.Advance(30 * time.Minute)

	stats = c.Stats("company-1")
	if !stats.Cached || !stats.IsValid {
		t.Fatalf("Stats = %+v, want cached and valid", stats)
	}
	if stats.AgeMinutes != 30 {
		t.Errorf("AgeMinutes = %v, want 30", stats.AgeMinutes)
	}
	if stats.ExpiresInMinutes != 30 {
		t.Errorf("ExpiresInMinutes = %v, want 30", stats.ExpiresInMinutes)
	}
	if stats.SummaryLength != len("Summary") {
		t.Errorf("SummaryLength = %d, want %d", stats.SummaryLength, len("Summary"))
	}
}

func TestSummaryCache_StatsDoesNotMutate(t *testing.T) {
	clock := newFakeClock()
	c := NewSummaryCache(Config{TTL: time.Hour, Clock: clock.Now})

	c.Put("company-1", "Summary")
	clock.Advance(2 * time.Hour)

	// Expired entry reports not cached but stays until a Get evicts it.
	stats := c.Stats("company-1")
	if stats.Cached {
		t.Errorf("Stats on expired entry = %+v, want cached=false", stats)
	}
	if stats.Reason != ReasonNotCached {
		t.Errorf("Reason = %q, want %q", stats.Reason, ReasonNotCached)
	}
	if c.Len() != 1 {
		t.Errorf("Len after Stats = %d, want 1 (Stats must not mutate)", c.Len())
	}
}

func TestSummaryCache_ConcurrentAccess(t *testing.T) {
	c := NewSummaryCache(Config{})

	const numGoroutines = 50
	const opsPerGoroutine = 500

	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()
			tenantKey := fmt.Sprintf("company-%d", id%5)
			for j := 0; j < opsPerGoroutine; j++ {
				switch j % 4 {
				case 0:
					c.Put(tenantKey, strings.Repeat("s", j%100))
				case 1:
					_, _ = c.Get(tenantKey)
				case 2:
					_ = c.Stats(tenantKey)
				case 3:
					_ = c.Len()
				}
			}
		}(i)
	}

	wg.Wait()
}

func TestValidateKey(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		wantErr error
	}{
		{"valid key", "company-1", nil},
		{"empty key", "", ErrInvalidKey},
		{"whitespace key", "   ", ErrInvalidKey},
		{"newline in key", "a\nb", ErrInvalidKey},
		{"carriage return in key", "a\rb", ErrInvalidKey},
		{"too long", strings.Repeat("k", MaxKeyLength+1), ErrKeyTooLong},
		{"max length ok", strings.Repeat("k", MaxKeyLength), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateKey(tt.key); err != tt.wantErr {
				t.Errorf("ValidateKey(%q) = %v, want %v", tt.key, err, tt.wantErr)
			}
		})
	}
}
