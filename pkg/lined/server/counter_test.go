package server

import (
	"sync"
	"testing"
)

func TestActiveCounterSequence(t *testing.T) {
	var c ActiveCounter

	if c.Count() != 0 {
		t.Fatalf("Expected initial count 0, got %d", c.Count())
	}

	if got := c.Inc(); got != 1 {
		t.Errorf("Expected 1 after Inc, got %d", got)
	}
	if got := c.Inc(); got != 2 {
		t.Errorf("Expected 2 after second Inc, got %d", got)
	}
	if got := c.Dec(); got != 1 {
		t.Errorf("Expected 1 after Dec, got %d", got)
	}
	if got := c.Dec(); got != 0 {
		t.Errorf("Expected 0 after second Dec, got %d", got)
	}
}

func TestActiveCounterConcurrent(t *testing.T) {
	var c ActiveCounter
	numGoroutines := 50
	iterations := 200

	var wg sync.WaitGroup
	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < iterations; j++ {
				if got := c.Inc(); got < 1 {
					t.Errorf("Counter observed below 1 after Inc: %d", got)
				}
				if got := c.Dec(); got < 0 {
					t.Errorf("Counter observed negative after Dec: %d", got)
				}
			}
		}()
	}

	wg.Wait()

	if c.Count() != 0 {
		t.Errorf("Expected count 0 after balanced Inc/Dec, got %d", c.Count())
	}
}
