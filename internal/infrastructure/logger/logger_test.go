package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNewWithOutput_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(Config{Level: "info", Format: "json", ServiceName: "trippulse-test"}, &buf)

	log.Info().Msg("offer batch generated")

	entry := decodeLine(t, &buf)
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "offer batch generated", entry["message"])
	assert.Equal(t, "trippulse-test", entry["service"])
	assert.NotEmpty(t, entry["time"])
}

func TestNewWithOutput_ConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(Config{Level: "info", Format: "console"}, &buf)

	log.Info().Msg("server started")

	assert.Contains(t, buf.String(), "server started")
	assert.Contains(t, buf.String(), "INF")
}

func TestNewWithOutput_LevelFiltering(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		logDebug  bool
		shouldLog bool
	}{
		{"debug at debug level", "debug", true, true},
		{"debug at info level", "info", true, false},
		{"info at warn level", "warn", false, false},
		{"info at info level", "info", false, true},
		{"invalid level falls back to info", "loud", false, true},
		{"empty level falls back to info", "", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := NewWithOutput(Config{Level: tt.level, Format: "json"}, &buf)

			if tt.logDebug {
				log.Debug().Msg("x")
			} else {
				log.Info().Msg("x")
			}

			assert.Equal(t, tt.shouldLog, buf.Len() > 0)
		})
	}
}

func TestNewWithOutput_WithCaller(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(Config{Level: "info", Format: "json", EnableCaller: true}, &buf)

	log.Info().Msg("with caller")

	entry := decodeLine(t, &buf)
	assert.Contains(t, entry["caller"], "logger_test.go")
}

func TestLogger_Component(t *testing.T) {
	var buf bytes.Buffer
	zl := NewWithOutput(DefaultConfig(), &buf).Component("offer_search")

	zl.Warn().Int("offers", 7).Msg("served cached batch")

	entry := decodeLine(t, &buf)
	assert.Equal(t, "offer_search", entry["component"])
	assert.Equal(t, float64(7), entry["offers"])
	assert.Equal(t, "trippulse-api", entry["service"])
}

func TestInit(t *testing.T) {
	original, originalZL := Global, zlog.Logger
	t.Cleanup(func() {
		Global = original
		zlog.Logger = originalZL
	})

	log := Init(Config{Level: "warn", Format: "json", ServiceName: "trippulse-api"})

	require.NotNil(t, log)
	assert.Same(t, log, Global)
	assert.Equal(t, zerolog.WarnLevel, zlog.Logger.GetLevel())
}
