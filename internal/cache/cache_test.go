package cache

import (
	"bytes"
	"context"
	"testing"
	"time"
)

func TestMemoryGetSet(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	if _, ok, err := m.Get(ctx, "missing"); ok || err != nil {
		t.Errorf("empty cache must miss cleanly, got ok=%v err=%v", ok, err)
	}

	if err := m.Set(ctx, "k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	got, ok, err := m.Get(ctx, "k")
	if err != nil || !ok {
		t.Fatalf("expected a hit, got ok=%v err=%v", ok, err)
	}
	if !bytes.Equal(got, []byte("v")) {
		t.Errorf("expected v, got %q", got)
	}
}

func TestMemoryExpiry(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	now := time.Now()
	m.now = func() time.Time { return now }

	if err := m.Set(ctx, "k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	now = now.Add(30 * time.Second)
	if _, ok, _ := m.Get(ctx, "k"); !ok {
		t.Error("entry must survive within its TTL")
	}

	now = now.Add(time.Minute)
	if _, ok, _ := m.Get(ctx, "k"); ok {
		t.Error("entry must expire after its TTL")
	}
}

func TestMemoryOverwriteRefreshesTTL(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	now := time.Now()
	m.now = func() time.Time { return now }

	m.Set(ctx, "k", []byte("old"), time.Minute)
	now = now.Add(50 * time.Second)
	m.Set(ctx, "k", []byte("new"), time.Minute)

	now = now.Add(30 * time.Second)
	got, ok, _ := m.Get(ctx, "k")
	if !ok {
		t.Fatal("overwrite must refresh the expiry")
	}
	if !bytes.Equal(got, []byte("new")) {
		t.Errorf("expected new, got %q", got)
	}
}

func TestMemorySweepsExpiredOnWrite(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	now := time.Now()
	m.now = func() time.Time { return now }

	m.Set(ctx, "stale", []byte("x"), time.Second)
	now = now.Add(time.Minute)
	m.Set(ctx, "fresh", []byte("y"), time.Minute)

	m.mu.RLock()
	_, staleHeld := m.entries["stale"]
	m.mu.RUnlock()
	if staleHeld {
		t.Error("expired entries must be swept on write")
	}
}
