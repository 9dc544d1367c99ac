package protocol

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcess(t *testing.T) {
	tests := []struct {
		name           string
		line           string
		activeClients  int
		wantResponse   string
		wantDisconnect bool
	}{
		{"ping", "PING\n", 1, "PONG\n", false},
		{"ping with crlf", "PING\r\n", 1, "PONG\n", false},
		{"ping without newline", "PING", 1, "PONG\n", false},
		{"echo", "ECHO hello world\n", 1, "hello world\n", false},
		{"echo preserves inner spacing", "ECHO  a  b \n", 1, " a  b \n", false},
		{"echo empty text", "ECHO \n", 1, "\n", false},
		{"echo without space is unknown", "ECHO\n", 1, "ERROR: Unknown command\n", false},
		{"stats", "STATS\n", 3, "Active clients: 3\n", false},
		{"stats zero", "STATS\n", 0, "Active clients: 0\n", false},
		{"quit", "QUIT\n", 1, "Goodbye\n", true},
		{"unknown", "FOO\n", 1, "ERROR: Unknown command\n", false},
		{"lowercase is unknown", "ping\n", 1, "ERROR: Unknown command\n", false},
		{"empty line", "\n", 1, "ERROR: Unknown command\n", false},
		{"ping with trailing space is unknown", "PING \n", 1, "ERROR: Unknown command\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			response, disconnect := Process(tt.line, tt.activeClients)
			assert.Equal(t, tt.wantResponse, response)
			assert.Equal(t, tt.wantDisconnect, disconnect)
		})
	}
}

func TestProcessTime(t *testing.T) {
	before := time.Now().Add(-2 * time.Second)

	response, disconnect := Process("TIME\n", 1)
	require.False(t, disconnect)
	require.NotEmpty(t, response)
	assert.Equal(t, byte('\n'), response[len(response)-1])

	parsed, err := time.ParseInLocation(timeLayout, response[:len(response)-1], time.Local)
	require.NoError(t, err)

	after := time.Now().Add(2 * time.Second)
	assert.True(t, parsed.After(before) && parsed.Before(after),
		"TIME response %q outside expected window", response)
}
