package main

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_Levels(t *testing.T) {
	tests := []struct {
		level     string
		debug     bool
		info      bool
		warnLevel bool
	}{
		{"", false, true, true},
		{"debug", true, true, true},
		{"INFO", false, true, true},
		{"warn", false, false, true},
		{"error", false, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logger, err := newLogger(&bytes.Buffer{}, tt.level)
			require.NoError(t, err)

			ctx := context.Background()
			assert.Equal(t, tt.debug, logger.Enabled(ctx, slog.LevelDebug))
			assert.Equal(t, tt.info, logger.Enabled(ctx, slog.LevelInfo))
			assert.Equal(t, tt.warnLevel, logger.Enabled(ctx, slog.LevelWarn))
		})
	}
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	_, err := newLogger(&bytes.Buffer{}, "verbose")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"verbose"`)
}

func TestNewLogger_WritesAttributes(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(&buf, "info")
	require.NoError(t, err)

	logger.Info("results complete", "sources", 3)
	assert.Contains(t, buf.String(), "results complete")
	assert.Contains(t, buf.String(), "sources=3")
}

func TestPrintError(t *testing.T) {
	var buf bytes.Buffer
	printError(&buf, errors.New("config not found"))
	assert.Contains(t, buf.String(), "config not found")
}
