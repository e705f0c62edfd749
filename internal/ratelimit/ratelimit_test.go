package ratelimit

import (
	"testing"
	"time"
)

func TestAllowRequestPerClient(t *testing.T) {
	rl := NewRateLimiter(2, 100, true)

	if !rl.AllowRequest("a") || !rl.AllowRequest("a") {
		t.Fatal("first two requests should pass")
	}
	if rl.AllowRequest("a") {
		t.Error("third request in the same minute should be rejected")
	}
	// A different client has its own window.
	if !rl.AllowRequest("b") {
		t.Error("other clients should not share the window")
	}
}

func TestDisabledLimiterAllowsEverything(t *testing.T) {
	rl := NewRateLimiter(1, 1, false)
	for i := 0; i < 10; i++ {
		if !rl.AllowRequest("a") {
			t.Fatal("disabled limiter rejected a request")
		}
	}
}

func TestSweepEvictsIdleClients(t *testing.T) {
	rl := NewRateLimiter(10, 100, true)
	rl.AllowRequest("idle")
	rl.AllowRequest("active")

	if len(rl.clients) != 2 {
		t.Fatalf("clients = %d, want 2", len(rl.clients))
	}

	// An hour later only clients with fresh requests survive.
	rl.mu.Lock()
	rl.clients["active"].hourWindow = append(rl.clients["active"].hourWindow, time.Now().Add(90*time.Minute))
	rl.sweep(time.Now().Add(61 * time.Minute))
	rl.mu.Unlock()

	if _, ok := rl.clients["idle"]; ok {
		t.Error("idle client not evicted")
	}
	if _, ok := rl.clients["active"]; !ok {
		t.Error("active client evicted")
	}
}

func TestStatsAndReset(t *testing.T) {
	rl := NewRateLimiter(5, 100, true)
	rl.AllowRequest("a")
	rl.AllowRequest("a")

	stats := rl.GetStats("a")
	if stats.RequestsLastMinute != 2 || stats.RemainingThisMinute != 3 {
		t.Errorf("stats = %+v", stats)
	}

	rl.Reset()
	if stats := rl.GetStats("a"); stats.RequestsLastMinute != 0 {
		t.Errorf("after reset: %+v", stats)
	}
}
