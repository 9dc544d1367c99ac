// Package server implements the TCP acceptor, per-connection handling, and
// the graceful shutdown sequence.
package server

import (
	"context"
	"fmt"
	"net"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tbxark/lined/pkg/lined/config"
	"github.com/tbxark/lined/pkg/lined/pool"
)

// Server accepts connections and dispatches each one to a fixed worker pool.
// A connection occupies one worker for its whole lifetime.
type Server struct {
	cfg      *config.Config
	active   *ActiveCounter
	limiter  *ConnectionLimiter
	throttle *acceptThrottle
	logger   *zap.Logger

	mu   sync.Mutex
	addr net.Addr
}

// NewServer creates a new Server.
func NewServer(cfg *config.Config, logger *zap.Logger) *Server {
	return &Server{
		cfg:      cfg,
		active:   &ActiveCounter{},
		limiter:  NewConnectionLimiter(cfg.MaxConnections),
		throttle: newAcceptThrottle(cfg.AcceptRate),
		logger:   logger,
	}
}

// Addr returns the bound listen address once Start has created the listener,
// nil before that. With port 0 this reports the assigned port.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addr
}

// ActiveClients returns the current active-connection count.
func (s *Server) ActiveClients() int {
	return s.active.Count()
}

// Start listens on the configured port and runs the accept loop until ctx is
// cancelled or accepting fails. Before returning it always drains the worker
// pool: in-flight connections finish on their own terms, queued ones are
// closed without ever reaching a handler. A handler blocked on a silent peer
// therefore blocks shutdown until that peer disconnects.
func (s *Server) Start(ctx context.Context) error {
	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", s.cfg.Port))
	if err != nil {
		return fmt.Errorf("failed to listen on port %d: %w", s.cfg.Port, err)
	}
	defer func() {
		_ = listener.Close()
	}()

	s.mu.Lock()
	s.addr = listener.Addr()
	s.mu.Unlock()

	workers, err := pool.New(s.cfg.ThreadPoolSize, s.cfg.QueueSize, s.logger)
	if err != nil {
		return fmt.Errorf("failed to create worker pool: %w", err)
	}
	defer workers.Shutdown()

	s.logger.Info("Server listening",
		zap.String("address", listener.Addr().String()),
		zap.Int("workers", s.cfg.ThreadPoolSize),
		zap.Int("max_connections", s.cfg.MaxConnections))

	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case <-ctx.Done():
			s.logger.Info("Shutting down server")
			_ = listener.Close()
		case <-done:
		}
	}()

	for {
		conn, err := listener.Accept()
		if err != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
				return fmt.Errorf("accept failed: %w", err)
			}
		}

		remote := conn.RemoteAddr().String()

		if !s.throttle.Allow() {
			s.logger.Warn("Accept rate exceeded, dropping connection",
				zap.String("remote_addr", remote))
			_ = conn.Close()
			continue
		}

		if !s.limiter.Acquire() {
			s.logger.Warn("Connection limit reached, dropping connection",
				zap.String("remote_addr", remote))
			_ = conn.Close()
			continue
		}

		task := s.newConnTask(conn)
		if err := workers.Submit(task); err != nil {
			s.logger.Error("Failed to submit connection task",
				zap.String("remote_addr", remote),
				zap.Error(err))
			task.Discard()
			continue
		}
	}
}

// newConnTask wraps conn into a pool task. Discard covers the two paths
// where the handler never runs: a failed submit and the shutdown drain. Both
// Execute and Discard release the connection slot exactly once.
func (s *Server) newConnTask(conn net.Conn) pool.Task {
	connID := uuid.New().String()
	return pool.Task{
		Execute: func() {
			defer s.limiter.Release()
			handleConnection(conn, connID, s.active, s.logger)
		},
		Discard: func() {
			_ = conn.Close()
			s.limiter.Release()
		},
	}
}
