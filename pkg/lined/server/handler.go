package server

import (
	"bufio"
	"errors"
	"io"
	"net"

	"go.uber.org/zap"

	"github.com/tbxark/lined/pkg/lined/protocol"
)

// handleConnection runs the per-connection read-dispatch-write loop inside a
// worker. It owns conn: every exit path closes the socket and decrements the
// active counter exactly once.
func handleConnection(conn net.Conn, connID string, active *ActiveCounter, logger *zap.Logger) {
	remote := conn.RemoteAddr().String()

	count := active.Inc()
	logger.Info("Client connected",
		zap.String("conn_id", connID),
		zap.String("remote_addr", remote),
		zap.Int("active", count))

	defer func() {
		_ = conn.Close()
		remaining := active.Dec()
		logger.Debug("Connection closed",
			zap.String("conn_id", connID),
			zap.String("remote_addr", remote),
			zap.Int("active", remaining))
	}()

	reader := bufio.NewReaderSize(conn, protocol.MaxLineLength)
	for {
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			if errors.Is(err, io.EOF) {
				logger.Info("Client disconnected",
					zap.String("conn_id", connID),
					zap.String("remote_addr", remote))
			} else {
				logger.Error("Read failed",
					zap.String("conn_id", connID),
					zap.String("remote_addr", remote),
					zap.Error(err))
			}
			return
		}

		response, disconnect := protocol.Process(line, active.Count())

		if _, werr := conn.Write([]byte(response)); werr != nil {
			logger.Error("Write failed",
				zap.String("conn_id", connID),
				zap.String("remote_addr", remote),
				zap.Error(werr))
			return
		}

		if disconnect {
			logger.Info("Client requested disconnect",
				zap.String("conn_id", connID),
				zap.String("remote_addr", remote))
			return
		}

		if err != nil {
			// A partial final line was served; nothing more will arrive.
			return
		}
	}
}
