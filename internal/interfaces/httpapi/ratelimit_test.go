package httpapi

import (
	"fmt"
	"testing"
	"time"
)

func TestIPRateLimiter_PerIPBuckets(t *testing.T) {
	t.Parallel()

	limiter := NewIPRateLimiter(1, 2)
	now := time.Date(2024, 9, 18, 10, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	if !limiter.Allow("10.0.0.1") || !limiter.Allow("10.0.0.1") {
		t.Fatalf("expected burst of 2 to be allowed")
	}
	if limiter.Allow("10.0.0.1") {
		t.Fatalf("expected third request to be limited")
	}
	if !limiter.Allow("10.0.0.2") {
		t.Fatalf("expected a different IP to have its own bucket")
	}

	now = now.Add(time.Second)
	if !limiter.Allow("10.0.0.1") {
		t.Fatalf("expected a token to refill after one second")
	}
}

func TestIPRateLimiter_PrunesIdleEntries(t *testing.T) {
	t.Parallel()

	limiter := NewIPRateLimiter(1, 1)
	now := time.Date(2024, 9, 18, 10, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	for i := 0; i <= limiterCleanupThreshold; i++ {
		limiter.Allow(fmt.Sprintf("10.0.%d.%d", i/256, i%256))
	}

	now = now.Add(limiterMaxIdleAge + time.Minute)
	limiter.Allow("192.0.2.1")
	if got := limiter.size(); got != 1 {
		t.Fatalf("expected idle entries to be pruned, got %d entries", got)
	}
}

func TestNormalizeIP(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"203.0.113.7:51000":       "203.0.113.7",
		" 198.51.100.1, 10.0.0.1": "198.51.100.1",
		"[2001:db8::1]:443":       "2001:db8::1",
		"not-an-ip":               "",
	}
	for in, want := range cases {
		if got := normalizeIP(in); got != want {
			t.Fatalf("normalizeIP(%q)=%q want %q", in, got, want)
		}
	}
}
