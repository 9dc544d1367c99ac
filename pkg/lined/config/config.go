// Package config loads server configuration from a plain KEY=VALUE file.
package config

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// DefaultPath is the config file used when none is given on the command line.
const DefaultPath = "config.txt"

// Config holds server configuration.
type Config struct {
	Port           int    `validate:"required,min=1,max=65535"`
	ThreadPoolSize int    `validate:"required,min=1"`
	MaxConnections int    `validate:"required,min=1"`
	LogLevel       string `validate:"oneof=DEBUG INFO ERROR"`
	LogFile        string
	// QueueSize bounds the worker pool's task queue; 0 keeps it unbounded.
	QueueSize int `validate:"min=0"`
	// AcceptRate limits accepted connections per second; 0 disables the limit.
	AcceptRate float64 `validate:"min=0"`
}

var validate = validator.New()

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Port:           8080,
		ThreadPoolSize: 4,
		MaxConnections: 100,
		LogLevel:       "INFO",
	}
}

// Load reads path and overlays recognized keys onto the defaults. Blank
// lines and lines starting with '#' are skipped; unrecognized keys are
// ignored. Unrecognized LOG_LEVEL values fall back to INFO.
func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	cfg := Default()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		switch key {
		case "PORT":
			cfg.Port, err = parseInt(key, value)
		case "THREAD_POOL_SIZE":
			cfg.ThreadPoolSize, err = parseInt(key, value)
		case "MAX_CONNECTIONS":
			cfg.MaxConnections, err = parseInt(key, value)
		case "LOG_LEVEL":
			cfg.LogLevel = parseLogLevel(value)
		case "LOG_FILE":
			cfg.LogFile = value
		case "QUEUE_SIZE":
			cfg.QueueSize, err = parseInt(key, value)
		case "ACCEPT_RATE":
			cfg.AcceptRate, err = parseFloat(key, value)
		}
		if err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return cfg, nil
}

func parseInt(key, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s: %w", key, err)
	}
	return n, nil
}

func parseFloat(key, value string) (float64, error) {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s: %w", key, err)
	}
	return f, nil
}

func parseLogLevel(value string) string {
	switch value {
	case "DEBUG", "INFO", "ERROR":
		return value
	}
	return "INFO"
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	return nil
}
