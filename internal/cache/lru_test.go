package cache

import (
	"context"
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func (f *fakeClock) now() time.Time { return f.t }

func TestLRUExpiry(t *testing.T) {
	clock := &fakeClock{t: time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC)}
	c := NewLRUCache[string](10, time.Minute).WithClock(clock.now)

	c.Set("a", "alice")
	if v, ok := c.Get("a"); !ok || v != "alice" {
		t.Fatalf("expected hit, got %q %v", v, ok)
	}

	clock.t = clock.t.Add(2 * time.Minute)
	if _, ok := c.Get("a"); ok {
		t.Fatalf("expected entry to expire")
	}
	if c.Size() != 0 {
		t.Fatalf("expired entry should be removed on read")
	}
}

func TestLRUEvictsOldest(t *testing.T) {
	c := NewLRUCache[int](2, time.Hour)
	c.Set("a", 1)
	c.Set("b", 2)
	c.Get("a")
	c.Set("c", 3)

	if _, ok := c.Get("b"); ok {
		t.Fatalf("least recently used entry should be evicted")
	}
	if _, ok := c.Get("a"); !ok {
		t.Fatalf("recently used entry should survive")
	}
}

func TestLRUDelete(t *testing.T) {
	c := NewLRUCache[int](2, time.Hour)
	c.Set("a", 1)
	if !c.Delete("a") {
		t.Fatalf("expected delete to report presence")
	}
	if c.Delete("a") {
		t.Fatalf("second delete should report absence")
	}
}

func TestManagerCleansRegisteredCaches(t *testing.T) {
	clock := &fakeClock{t: time.Now()}
	c := NewLRUCache[int](10, time.Second).WithClock(clock.now)
	c.Set("a", 1)
	c.Set("b", 2)

	m := NewManager()
	m.Register("sessions", c)

	if n := m.CleanOnce(); n != 0 {
		t.Fatalf("nothing should be expired yet, cleaned %d", n)
	}
	clock.t = clock.t.Add(time.Minute)
	if n := m.CleanOnce(); n != 2 {
		t.Fatalf("expected 2 cleaned, got %d", n)
	}
}

func TestManagerRunStopsOnCancel(t *testing.T) {
	m := NewManager()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- m.Run(ctx, time.Millisecond) }()
	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatalf("Run did not return after cancel")
	}
}
