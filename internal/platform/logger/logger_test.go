package logger_test

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkpost/blog-api/internal/config"
	"github.com/inkpost/blog-api/internal/platform/logger"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.ServerConfig
	}{
		{name: "json info", cfg: config.ServerConfig{LogLevel: "info", LogFormat: "json"}},
		{name: "text debug", cfg: config.ServerConfig{LogLevel: "debug", LogFormat: "text"}},
		{name: "invalid level falls back", cfg: config.ServerConfig{LogLevel: "loud", LogFormat: "json"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := logger.Setup(tt.cfg)
			require.NoError(t, err)
			require.NotNil(t, log)
			assert.Same(t, log, slog.Default())
		})
	}
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	// Empty context falls back to the process default.
	assert.Same(t, slog.Default(), logger.FromContext(context.Background()))

	attached := slog.New(slog.NewTextHandler(os.Stderr, nil))
	ctx := logger.WithLogger(context.Background(), attached)
	assert.Same(t, attached, logger.FromContext(ctx))
}

func TestFromContextOrDefault(t *testing.T) {
	t.Parallel()

	def := slog.New(slog.NewTextHandler(os.Stderr, nil))
	assert.Same(t, def, logger.FromContextOrDefault(context.Background(), def))

	attached := slog.New(slog.NewTextHandler(os.Stderr, nil))
	ctx := logger.WithLogger(context.Background(), attached)
	assert.Same(t, attached, logger.FromContextOrDefault(ctx, def))
}
