package cache

import (
	"strings"
	"testing"
)

func BenchmarkSummaryCache_Get(b *testing.B) {
	c := NewSummaryCache(Config{})
	c.Put("company-1", strings.Repeat("s", 2048))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Get("company-1")
	}
}

func BenchmarkSummaryCache_Put(b *testing.B) {
	c := NewSummaryCache(Config{})
	summary := strings.Repeat("s", 2048)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Put("company-1", summary)
	}
}

func BenchmarkSummaryCache_GetParallel(b *testing.B) {
	c := NewSummaryCache(Config{})
	c.Put("company-1", strings.Repeat("s", 2048))

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			c.Get("company-1")
		}
	})
}
