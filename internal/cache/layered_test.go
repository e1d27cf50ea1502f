package cache

import (
	"bytes"
	"testing"
	"time"
)

func TestKey_StableAndPrefixed(t *testing.T) {
	k1 := Key("https://example.com/article")
	k2 := Key("https://example.com/article")
	if k1 != k2 {
		t.Error("Expected identical keys for identical URLs")
	}
	if Key("https://example.com/other") == k1 {
		t.Error("Expected distinct keys for distinct URLs")
	}
	if len(k1) <= len("keyscan:v1:") {
		t.Errorf("Unexpected key format: %q", k1)
	}
}

func TestMemory_RoundTrip(t *testing.T) {
	c := NewMemory(time.Minute, time.Minute)

	if _, found := c.Get("missing"); found {
		t.Error("Expected miss for unknown key")
	}

	if err := c.Set("k", []byte("payload"), time.Minute); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	got, found := c.Get("k")
	if !found || !bytes.Equal(got, []byte("payload")) {
		t.Errorf("Expected payload, got %q (found=%v)", got, found)
	}

	if err := c.Delete("k"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if _, found := c.Get("k"); found {
		t.Error("Expected miss after delete")
	}
}

func TestDisk_RoundTripAndExpiry(t *testing.T) {
	c := NewDisk(t.TempDir(), time.Minute)

	if err := c.Set("k", []byte("payload"), time.Minute); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	got, found := c.Get("k")
	if !found || !bytes.Equal(got, []byte("payload")) {
		t.Errorf("Expected payload, got %q (found=%v)", got, found)
	}

	// Entries already past their deadline read as misses.
	if err := c.Set("stale", []byte("old"), -time.Second); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if _, found := c.Get("stale"); found {
		t.Error("Expected expired entry to miss")
	}
}

func TestLayered_PromotesDiskHits(t *testing.T) {
	dir := t.TempDir()
	c := NewLayered(time.Minute, dir, time.Minute)

	// Seed only the disk layer.
	disk := NewDisk(dir, time.Minute)
	if err := disk.Set("k", []byte("payload"), time.Minute); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	got, found := c.Get("k")
	if !found || !bytes.Equal(got, []byte("payload")) {
		t.Fatalf("Expected disk hit through layered cache, got %q (found=%v)", got, found)
	}

	// The hit is now served from memory even if the disk copy goes away.
	if err := disk.Delete("k"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if _, found := c.Get("k"); !found {
		t.Error("Expected promoted entry in memory layer")
	}
}
