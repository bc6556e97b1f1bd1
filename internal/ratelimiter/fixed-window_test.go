package ratelimiter

import (
	"testing"
	"time"
)

func TestFixedWindowLimiter(t *testing.T) {
	rl := NewFixedWindowLimiter(3, time.Hour)

	for i := 0; i < 3; i++ {
		if ok, _ := rl.Allow("10.0.0.1"); !ok {
			t.Fatalf("request %d: expected to be allowed", i+1)
		}
	}

	ok, retry := rl.Allow("10.0.0.1")
	if ok {
		t.Fatal("4th request: expected to be rejected")
	}
	if retry != time.Hour {
		t.Errorf("retry after = %v, want %v", retry, time.Hour)
	}

	if ok, _ := rl.Allow("10.0.0.2"); !ok {
		t.Error("other client: expected to be allowed")
	}
}

func TestFixedWindowLimiterResets(t *testing.T) {
	rl := NewFixedWindowLimiter(1, 20*time.Millisecond)

	if ok, _ := rl.Allow("10.0.0.1"); !ok {
		t.Fatal("first request: expected to be allowed")
	}
	if ok, _ := rl.Allow("10.0.0.1"); ok {
		t.Fatal("second request: expected to be rejected")
	}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
		if ok, _ := rl.Allow("10.0.0.1"); ok {
			return
		}
	}
	t.Fatal("counter was never reset after the window elapsed")
}
