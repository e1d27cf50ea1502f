package worker

import (
	"context"
	"testing"
	"time"
)

func TestLimiter_AllowWithinBurst(t *testing.T) {
	l := NewLimiter(1, 2)

	if !l.Allow("https://example.com/a") {
		t.Error("Expected first request to be allowed")
	}
	if !l.Allow("https://example.com/b") {
		t.Error("Expected second request within burst to be allowed")
	}
	if l.Allow("https://example.com/c") {
		t.Error("Expected third request to exceed burst")
	}
}

func TestLimiter_DomainsAreIndependent(t *testing.T) {
	l := NewLimiter(1, 1)

	if !l.Allow("https://one.example/a") {
		t.Error("Expected first domain to be allowed")
	}
	if !l.Allow("https://two.example/a") {
		t.Error("Expected second domain to have its own budget")
	}
	if l.Allow("https://one.example/b") {
		t.Error("Expected first domain budget to be spent")
	}
}

func TestLimiter_SetDomainRate(t *testing.T) {
	l := NewLimiter(1, 1)
	l.SetDomainRate("fast.example", 1000, 100)

	for i := 0; i < 50; i++ {
		if !l.Allow("https://fast.example/x") {
			t.Fatalf("Expected raised burst to admit request %d", i)
		}
	}
}

func TestLimiter_WaitHonorsContext(t *testing.T) {
	l := NewLimiter(0.01, 1)

	// Spend the burst.
	if !l.Allow("https://slow.example/a") {
		t.Fatal("Expected initial request to be allowed")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if err := l.Wait(ctx, "https://slow.example/b"); err == nil {
		t.Error("Expected Wait to fail when the context expires first")
	}
}

func TestLimiter_InvalidURL(t *testing.T) {
	l := NewLimiter(1, 1)
	if l.Allow("://bad url") {
		t.Error("Expected invalid URL to be rejected")
	}
}
