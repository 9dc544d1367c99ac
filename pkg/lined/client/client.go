// Package client implements the one-shot companion client: connect, send a
// single command line, print the single response line.
package client

import (
	"bufio"
	"fmt"
	"net"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

// Client sends one command to the server and returns the response line.
type Client struct {
	ServerAddr  string        // Address of the server
	DialTimeout time.Duration // Total time budget for connection attempts
	Logger      *zap.Logger   // Logger instance, may be nil
}

// Run dials the server, sends command with a trailing newline, and reads one
// newline-terminated response. Dialing is retried with exponential backoff
// until DialTimeout has elapsed.
func (c *Client) Run(command string) (string, error) {
	conn, err := c.dial()
	if err != nil {
		return "", fmt.Errorf("failed to connect to %s: %w", c.ServerAddr, err)
	}
	defer func() {
		_ = conn.Close()
	}()

	if _, err := fmt.Fprintf(conn, "%s\n", command); err != nil {
		return "", fmt.Errorf("failed to send command: %w", err)
	}

	response, err := bufio.NewReader(conn).ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	return response, nil
}

func (c *Client) dial() (net.Conn, error) {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 100 * time.Millisecond
	policy.MaxElapsedTime = c.DialTimeout

	return backoff.RetryWithData(func() (net.Conn, error) {
		conn, err := net.Dial("tcp", c.ServerAddr)
		if err != nil {
			if c.Logger != nil {
				c.Logger.Debug("Dial failed, retrying",
					zap.String("server", c.ServerAddr),
					zap.Error(err))
			}
			return nil, err
		}
		return conn, nil
	}, policy)
}
