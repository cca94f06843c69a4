package validation

import (
	"testing"
)

func TestValidateLogLevel(t *testing.T) {
	tests := []struct {
		level     string
		expectErr bool
	}{
		{"", false},
		{"debug", false},
		{"info", false},
		{"warn", false},
		{"error", false},
		{"verbose", true},
		{"trace", true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			err := ValidateLogLevel(tt.level)
			if tt.expectErr && err == nil {
				t.Errorf("ValidateLogLevel(%q) expected error but got none", tt.level)
			}
			if !tt.expectErr && err != nil {
				t.Errorf("ValidateLogLevel(%q) unexpected error = %v", tt.level, err)
			}
		})
	}
}

func TestValidateLogFormat(t *testing.T) {
	for _, format := range []string{"", "json", "console"} {
		if err := ValidateLogFormat(format); err != nil {
			t.Errorf("ValidateLogFormat(%q) unexpected error = %v", format, err)
		}
	}
	for _, format := range []string{"text", "JSON", "logfmt"} {
		if err := ValidateLogFormat(format); err == nil {
			t.Errorf("ValidateLogFormat(%q) expected error but got none", format)
		}
	}
}

func TestValidateSessionBackend(t *testing.T) {
	tests := []struct {
		name      string
		backend   string
		redisAddr string
		ttl       string
		expectErr bool
	}{
		{
			name:    "Default backend",
			backend: "",
		},
		{
			name:    "Memory backend with ttl",
			backend: "memory",
			ttl:     "24h",
		},
		{
			name:      "Redis backend with address",
			backend:   "redis",
			redisAddr: "localhost:6379",
			ttl:       "30m",
		},
		{
			name:      "Redis backend without address",
			backend:   "redis",
			expectErr: true,
		},
		{
			name:      "Unknown backend",
			backend:   "memcached",
			expectErr: true,
		},
		{
			name:      "Malformed ttl",
			backend:   "memory",
			ttl:       "one day",
			expectErr: true,
		},
		{
			name:      "Negative ttl",
			backend:   "memory",
			ttl:       "-1h",
			expectErr: true,
		},
		{
			name:    "Zero ttl keeps sessions forever",
			backend: "memory",
			ttl:     "0s",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSessionBackend(tt.backend, tt.redisAddr, tt.ttl)
			if tt.expectErr && err == nil {
				t.Errorf("ValidateSessionBackend() expected error but got none")
			}
			if !tt.expectErr && err != nil {
				t.Errorf("ValidateSessionBackend() unexpected error = %v", err)
			}
		})
	}
}
