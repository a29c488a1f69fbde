package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONWithComponent(t *testing.T) {
	var buf bytes.Buffer
	l := Component(New(Config{Level: "debug", Format: "json", Out: &buf}), "api")

	l.Debug().Str("path", "/health").Msg("request")

	var ev map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &ev))
	assert.Equal(t, "debug", ev["level"])
	assert.Equal(t, "api", ev["component"])
	assert.Equal(t, "/health", ev["path"])
	assert.Equal(t, "request", ev["message"])
	assert.Contains(t, ev, "time")
}

func TestNew_LevelFallback(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "loud", Format: "json", Out: &buf})
	assert.Equal(t, zerolog.InfoLevel, l.GetLevel())

	l.Debug().Msg("hidden")
	assert.Zero(t, buf.Len())
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "info", Format: "console", Out: &buf})
	l.Info().Msg("hello")
	assert.Contains(t, buf.String(), "hello")
	assert.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
}
