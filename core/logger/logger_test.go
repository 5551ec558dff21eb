package logger_test

import (
	"net/http/httptest"
	"testing"

	"sync-actions/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     logger.Config
		enabled zapcore.Level
		wantErr bool
	}{
		{"Production JSON", logger.Config{Level: "info", Format: "json"}, zapcore.InfoLevel, false},
		{"Development Console", logger.Config{Level: "debug", Format: "console"}, zapcore.DebugLevel, false},
		{"Warn", logger.Config{Level: "warn"}, zapcore.WarnLevel, false},
		{"Invalid Level", logger.Config{Level: "loud"}, zapcore.InfoLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := logger.New(&tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, l.Core().Enabled(tt.enabled))
			assert.False(t, l.Core().Enabled(tt.enabled-1))
		})
	}
}

func TestWithRayID(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	base := zap.New(core)

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		logger.WithRayID(base, c).Info("without")
		c.Locals(logger.RayIDKey, "abc-123")
		logger.WithRayID(base, c).Info("with")
		return nil
	})

	_, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Empty(t, entries[0].ContextMap())
	assert.Equal(t, "abc-123", entries[1].ContextMap()["ray_id"])
}
