package cache

import (
	"context"
	"testing"
	"time"
)

func TestMemory(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("set then get", func(t *testing.T) {
		m := NewMemory()
		if err := m.Set(ctx, "k", []byte("v"), time.Minute); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		value, ok, err := m.Get(ctx, "k")
		if err != nil || !ok {
			t.Fatalf("expected hit, got ok=%v err=%v", ok, err)
		}
		if string(value) != "v" {
			t.Fatalf("expected v, got %s", value)
		}
	})

	t.Run("expired entries miss", func(t *testing.T) {
		m := NewMemory()
		now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		m.now = func() time.Time { return now }
		if err := m.Set(ctx, "k", []byte("v"), time.Minute); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		now = now.Add(2 * time.Minute)
		_, ok, err := m.Get(ctx, "k")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if ok {
			t.Fatal("expected expired entry to miss")
		}
	})

	t.Run("delete removes the entry", func(t *testing.T) {
		m := NewMemory()
		if err := m.Set(ctx, "k", []byte("v"), time.Minute); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if err := m.Delete(ctx, "k"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if _, ok, _ := m.Get(ctx, "k"); ok {
			t.Fatal("expected miss after delete")
		}
	})

	t.Run("stored values are isolated from callers", func(t *testing.T) {
		m := NewMemory()
		value := []byte("abc")
		if err := m.Set(ctx, "k", value, time.Minute); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		value[0] = 'x'
		got, _, _ := m.Get(ctx, "k")
		if string(got) != "abc" {
			t.Fatalf("expected abc, got %s", got)
		}
	})
}
