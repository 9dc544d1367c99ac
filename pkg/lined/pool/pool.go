// Package pool implements a fixed-size worker pool draining a FIFO task queue.
package pool

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/tbxark/lined/pkg/lined/common"
)

// Task is a unit of deferred work. Execute runs it on a worker. Discard
// releases the task's resources without running it; the pool calls it for
// tasks still queued at shutdown, and callers must call it themselves when
// Submit fails.
type Task struct {
	Execute func()
	Discard func()
}

// Pool is a fixed-size worker pool. Workers start tasks in FIFO submission
// order; completion order across workers is unspecified. The queue is
// unbounded unless a capacity was given at construction.
type Pool struct {
	mu       sync.Mutex
	cond     *sync.Cond
	queue    []Task
	shutdown bool

	size     int
	capacity int
	wg       sync.WaitGroup
	logger   *zap.Logger
}

// New creates a pool with size workers, all started immediately.
// A queueCapacity of 0 leaves the task queue unbounded; a positive value
// makes Submit fail with ErrQueueFull once that many tasks are waiting.
func New(size, queueCapacity int, logger *zap.Logger) (*Pool, error) {
	if size <= 0 {
		return nil, fmt.Errorf("pool size must be positive, got %d", size)
	}
	if queueCapacity < 0 {
		return nil, fmt.Errorf("queue capacity must be non-negative, got %d", queueCapacity)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	p := &Pool{
		size:     size,
		capacity: queueCapacity,
		logger:   logger,
	}
	p.cond = sync.NewCond(&p.mu)

	p.wg.Add(size)
	for i := 0; i < size; i++ {
		go p.worker(i)
	}

	logger.Info("Worker pool created", zap.Int("workers", size))
	return p, nil
}

// worker dequeues and runs tasks until the shutdown flag is observed. The
// flag is re-checked on every wakeup, so a worker woken after shutdown never
// dequeues a task that the drain step is about to discard.
func (p *Pool) worker(id int) {
	defer p.wg.Done()

	for {
		p.mu.Lock()
		for len(p.queue) == 0 && !p.shutdown {
			p.cond.Wait()
		}
		if p.shutdown {
			p.mu.Unlock()
			p.logger.Debug("Worker exiting", zap.Int("worker", id))
			return
		}

		task := p.queue[0]
		p.queue = p.queue[1:]
		p.mu.Unlock()

		task.Execute()
	}
}

// Submit appends task to the queue tail and wakes one waiting worker. The
// pool takes ownership of the task only on success; on error the caller
// still owns it and must discard it itself.
func (p *Pool) Submit(task Task) error {
	if task.Execute == nil {
		return fmt.Errorf("task has no execute function")
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.shutdown {
		return common.ErrPoolClosed
	}
	if p.capacity > 0 && len(p.queue) >= p.capacity {
		return common.ErrQueueFull
	}

	p.queue = append(p.queue, task)
	p.cond.Signal()
	return nil
}

// Shutdown sets the shutdown flag, wakes all waiting workers, blocks until
// every worker has exited, then discards still-queued tasks without
// executing them. Workers that are mid-task finish that task first, so
// Shutdown blocks for as long as in-flight work runs.
func (p *Pool) Shutdown() {
	p.mu.Lock()
	alreadyDown := p.shutdown
	p.shutdown = true
	p.cond.Broadcast()
	p.mu.Unlock()

	p.wg.Wait()

	if alreadyDown {
		return
	}

	p.mu.Lock()
	discarded := p.queue
	p.queue = nil
	p.mu.Unlock()

	for _, task := range discarded {
		if task.Discard != nil {
			task.Discard()
		}
	}
	if len(discarded) > 0 {
		p.logger.Info("Discarded queued tasks at shutdown", zap.Int("count", len(discarded)))
	}
	p.logger.Info("Worker pool stopped", zap.Int("workers", p.size))
}

// Size returns the number of workers.
func (p *Pool) Size() int {
	return p.size
}

// QueueLength returns the number of tasks waiting to be dequeued.
func (p *Pool) QueueLength() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.queue)
}
