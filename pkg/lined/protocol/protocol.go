// Package protocol implements the line-oriented command protocol. Process is
// a pure function from a request line to a response line plus a disconnect
// flag, so it can be tested without any networking.
package protocol

import (
	"fmt"
	"strings"
	"time"
)

// MaxLineLength bounds the per-connection read buffer.
const MaxLineLength = 4096

const timeLayout = "2006-01-02 15:04:05"

// Process executes one request line and returns the response plus a flag
// telling the caller to close the connection after writing it. One trailing
// "\n" or "\r\n" is stripped before matching. activeClients is the current
// active-connection count reported by STATS.
func Process(line string, activeClients int) (response string, disconnect bool) {
	cmd := strings.TrimSuffix(line, "\n")
	cmd = strings.TrimSuffix(cmd, "\r")

	switch {
	case cmd == "PING":
		return "PONG\n", false
	case cmd == "TIME":
		return time.Now().Format(timeLayout) + "\n", false
	case strings.HasPrefix(cmd, "ECHO "):
		return strings.TrimPrefix(cmd, "ECHO ") + "\n", false
	case cmd == "STATS":
		return fmt.Sprintf("Active clients: %d\n", activeClients), false
	case cmd == "QUIT":
		return "Goodbye\n", true
	}
	return "ERROR: Unknown command\n", false
}
