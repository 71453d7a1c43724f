package cache

import (
	"testing"
	"time"
)

func TestStore_SetGetExpire(t *testing.T) {
	s := New()

	if _, ok := s.Get("missing"); ok {
		t.Fatalf("expected miss on empty store")
	}

	s.Set("k", "v", 50*time.Millisecond)
	v, ok := s.Get("k")
	if !ok || v.(string) != "v" {
		t.Fatalf("want hit with v, got %v %v", v, ok)
	}

	time.Sleep(60 * time.Millisecond)
	if _, ok := s.Get("k"); ok {
		t.Fatalf("expected lazy eviction after TTL")
	}
	if s.Len() != 0 {
		t.Fatalf("expired entry should be deleted on read, len=%d", s.Len())
	}
}

func TestKey_Deterministic(t *testing.T) {
	a := Key("/checks/ssl", map[string]string{"domain": "example.com", "deep": "1"})
	b := Key("/checks/ssl", map[string]string{"deep": "1", "domain": "example.com"})
	if a != b {
		t.Fatalf("keys differ: %q vs %q", a, b)
	}
	if a != "/checks/ssl?deep=1&domain=example.com" {
		t.Fatalf("unexpected key: %q", a)
	}
	if Key("/health", nil) != "/health" {
		t.Fatalf("param-less key should be the route itself")
	}
}
