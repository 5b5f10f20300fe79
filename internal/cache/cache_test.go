package cache

import (
	"testing"
	"time"
)

func TestSetAndGet(t *testing.T) {
	c := New()
	c.Set("key", "value", time.Minute)

	got, ok := c.Get("key")
	if !ok {
		t.Fatal("expected cache hit")
	}
	if got != "value" {
		t.Errorf("Get = %v, want value", got)
	}
}

func TestGetMissing(t *testing.T) {
	c := New()
	if _, ok := c.Get("absent"); ok {
		t.Error("expected miss for absent key")
	}
}

func TestExpiredEntryIsEvicted(t *testing.T) {
	c := New()
	c.Set("key", "value", -time.Second)

	if _, ok := c.Get("key"); ok {
		t.Error("expected miss for expired entry")
	}
	if c.Len() != 0 {
		t.Errorf("expired entry should be deleted on read, Len = %d", c.Len())
	}
}

func TestOverwriteRefreshesValue(t *testing.T) {
	c := New()
	c.Set("key", "old", time.Minute)
	c.Set("key", "new", time.Minute)

	got, _ := c.Get("key")
	if got != "new" {
		t.Errorf("Get = %v, want new", got)
	}
}
