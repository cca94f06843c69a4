package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iwvelando/mortgage-payoff/internal/config"
	"go.uber.org/zap/zapcore"
)

func TestBuildConfig(t *testing.T) {
	tests := []struct {
		name          string
		config        config.LoggingConfig
		override      string
		expectLevel   zapcore.Level
		expectEncoder string
		expectErr     bool
	}{
		{
			name:          "Defaults",
			expectLevel:   zapcore.InfoLevel,
			expectEncoder: "json",
		},
		{
			name:          "Console debug",
			config:        config.LoggingConfig{Level: "debug", Format: "console"},
			expectLevel:   zapcore.DebugLevel,
			expectEncoder: "console",
		},
		{
			name:          "Override wins",
			config:        config.LoggingConfig{Level: "debug"},
			override:      "error",
			expectLevel:   zapcore.ErrorLevel,
			expectEncoder: "json",
		},
		{
			name:          "Warning alias",
			config:        config.LoggingConfig{Level: "warning"},
			expectLevel:   zapcore.WarnLevel,
			expectEncoder: "json",
		},
		{
			name:      "Invalid level",
			config:    config.LoggingConfig{Level: "loud"},
			expectErr: true,
		},
		{
			name:      "Invalid format",
			config:    config.LoggingConfig{Format: "xml"},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := buildConfig(tt.config, tt.override)
			if tt.expectErr {
				if err == nil {
					t.Errorf("buildConfig() expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("buildConfig() error = %v", err)
			}
			if cfg.Level.Level() != tt.expectLevel {
				t.Errorf("level = %s, expected %s", cfg.Level.Level(), tt.expectLevel)
			}
			if cfg.Encoding != tt.expectEncoder {
				t.Errorf("encoding = %s, expected %s", cfg.Encoding, tt.expectEncoder)
			}
		})
	}
}

func TestNewWritesToOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "payoff.log")

	logger, err := New(config.LoggingConfig{Level: "info", Format: "json", OutputFile: path}, "")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	logger.Info("calculation finished")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "calculation finished") {
		t.Errorf("log file missing entry: %s", data)
	}
}
