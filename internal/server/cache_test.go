package server

import (
	"testing"
	"time"

	"github.com/fovesdk/fove-go/internal/output"
)

func TestStatusCache_WithinTTL(t *testing.T) {
	c := NewStatusCache(time.Minute)
	collects := 0
	collect := func() output.StatusResult {
		collects++
		return output.StatusResult{HardwareConnected: true}
	}

	first := c.Get(collect)
	second := c.Get(collect)
	if collects != 1 {
		t.Errorf("collected %d times, want 1", collects)
	}
	if !first.HardwareConnected || !second.HardwareConnected {
		t.Error("cached result lost data")
	}
}

func TestStatusCache_Invalidate(t *testing.T) {
	c := NewStatusCache(time.Minute)
	collects := 0
	collect := func() output.StatusResult {
		collects++
		return output.StatusResult{}
	}

	c.Get(collect)
	c.Invalidate()
	c.Get(collect)
	if collects != 2 {
		t.Errorf("collected %d times, want 2 after invalidation", collects)
	}
}

func TestStatusCache_Disabled(t *testing.T) {
	c := NewStatusCache(0)
	collects := 0
	collect := func() output.StatusResult {
		collects++
		return output.StatusResult{}
	}

	c.Get(collect)
	c.Get(collect)
	if collects != 2 {
		t.Errorf("collected %d times, want 2 with caching disabled", collects)
	}
}

func TestStatusCache_Expiry(t *testing.T) {
	c := NewStatusCache(10 * time.Millisecond)
	collects := 0
	collect := func() output.StatusResult {
		collects++
		return output.StatusResult{}
	}

	c.Get(collect)
	time.Sleep(20 * time.Millisecond)
	c.Get(collect)
	if collects != 2 {
		t.Errorf("collected %d times, want 2 after expiry", collects)
	}
}
