package validation

import (
	"fmt"
	"time"

	"github.com/iwvelando/mortgage-payoff/pkg/constants"
	"go.uber.org/zap/zapcore"
)

// ValidateLogLevel checks that level is empty or a level zap understands.
func ValidateLogLevel(level string) error {
	if level == "" {
		return nil
	}
	if _, err := zapcore.ParseLevel(level); err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return nil
}

// ValidateLogFormat checks that the log encoding is json, console or empty.
func ValidateLogFormat(format string) error {
	switch format {
	case "", "json", "console":
		return nil
	}
	return fmt.Errorf("expected log format of json or console, got %s", format)
}

// ValidateSessionBackend checks the session store settings of the server.
// The Redis address is only required when the redis backend is selected.
func ValidateSessionBackend(backend, redisAddr, ttl string) error {
	switch backend {
	case "", constants.SessionBackendMemory:
	case constants.SessionBackendRedis:
		if redisAddr == "" {
			return fmt.Errorf("session backend %s requires redisAddr", backend)
		}
	default:
		return fmt.Errorf("expected session backend of %s or %s, got %s",
			constants.SessionBackendMemory, constants.SessionBackendRedis, backend)
	}

	if ttl == "" {
		return nil
	}
	d, err := time.ParseDuration(ttl)
	if err != nil {
		return fmt.Errorf("invalid session ttl %q: %w", ttl, err)
	}
	if d < 0 {
		return fmt.Errorf("session ttl %q must not be negative", ttl)
	}
	return nil
}
