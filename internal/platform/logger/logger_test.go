package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, Debug, ParseLevel("DEBUG"))
	assert.Equal(t, Info, ParseLevel(""))
	assert.Equal(t, Warn, ParseLevel("warning"))
	assert.Equal(t, Error, ParseLevel(" error "))
	assert.Equal(t, Info, ParseLevel("verbose"))
}

func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, ParseFormat("JSON"))
	assert.Equal(t, FormatText, ParseFormat("pretty"))
}

func TestZapLogger_WithMergesFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := FromZap(zap.New(core)).With(map[string]any{"request_id": "r-1"})

	l.Info("saved", map[string]any{"medication_id": "m-1", "": "ignored", "err": errors.New("boom")})

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "saved", entry.Message)

	ctx := entry.ContextMap()
	assert.Equal(t, "r-1", ctx["request_id"])
	assert.Equal(t, "m-1", ctx["medication_id"])
	assert.Equal(t, "boom", ctx["err"])
	assert.NotContains(t, ctx, "")
}

func TestZapLogger_RespectsLevel(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	l := FromZap(zap.New(core))

	l.Debug("hidden", nil)
	l.Info("hidden", nil)
	l.Warn("shown", nil)

	assert.Equal(t, 1, logs.Len())
}
