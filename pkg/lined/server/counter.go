package server

import "sync"

// ActiveCounter tracks the number of connections currently inside their
// handler loop. It has its own mutex, independent of the pool's queue lock.
type ActiveCounter struct {
	mu    sync.Mutex
	count int
}

// Inc increments the counter and returns the new value.
func (c *ActiveCounter) Inc() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.count++
	return c.count
}

// Dec decrements the counter and returns the new value.
func (c *ActiveCounter) Dec() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.count--
	return c.count
}

// Count returns the current value.
func (c *ActiveCounter) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count
}
