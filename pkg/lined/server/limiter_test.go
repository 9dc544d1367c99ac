package server

import (
	"sync"
	"testing"
)

func TestNewConnectionLimiter(t *testing.T) {
	maxConns := 10
	limiter := NewConnectionLimiter(maxConns)

	if limiter == nil {
		t.Fatal("NewConnectionLimiter returned nil")
	}

	if limiter.Available() != maxConns {
		t.Errorf("Expected %d available slots, got %d", maxConns, limiter.Available())
	}
}

func TestLimiterAcquireReleaseCycle(t *testing.T) {
	limiter := NewConnectionLimiter(5)

	if !limiter.Acquire() {
		t.Fatal("Failed to acquire slot when limiter is empty")
	}

	if limiter.Available() != 4 {
		t.Errorf("Expected 4 available slots, got %d", limiter.Available())
	}

	limiter.Release()

	if limiter.Available() != 5 {
		t.Errorf("Expected 5 available slots after release, got %d", limiter.Available())
	}
}

func TestLimiterEnforcement(t *testing.T) {
	maxConns := 3
	limiter := NewConnectionLimiter(maxConns)

	for i := 0; i < maxConns; i++ {
		if !limiter.Acquire() {
			t.Fatalf("Failed to acquire slot %d/%d", i+1, maxConns)
		}
	}

	if limiter.Acquire() {
		t.Error("Acquire succeeded when limit was reached")
	}

	limiter.Release()

	if !limiter.Acquire() {
		t.Error("Failed to acquire after releasing a slot")
	}
}

func TestLimiterConcurrentAcquireRelease(t *testing.T) {
	maxConns := 5
	limiter := NewConnectionLimiter(maxConns)
	iterations := 100

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < iterations; j++ {
				if limiter.Acquire() {
					limiter.Release()
				}
			}
		}()
	}

	wg.Wait()

	if limiter.Available() != maxConns {
		t.Errorf("Expected %d available slots, got %d", maxConns, limiter.Available())
	}
}
