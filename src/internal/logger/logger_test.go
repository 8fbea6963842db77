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

func observe(t *testing.T, level zapcore.Level) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(level)
	restore := zap.ReplaceGlobals(zap.New(core))
	t.Cleanup(restore)
	return logs
}

func TestInfoWritesMaskedFields(t *testing.T) {
	logs := observe(t, zapcore.InfoLevel)

	Info("account service open account request", Fields{
		"owner":    "Andres",
		"password": "hunter2",
	})

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "account service open account request", entries[0].Message)

	ctx := entries[0].ContextMap()
	assert.Equal(t, "Andres", ctx["owner"])
	assert.Equal(t, "******", ctx["password"])
}

func TestErrorAddsErrorField(t *testing.T) {
	logs := observe(t, zapcore.InfoLevel)

	Error("account service withdraw failed", errors.New("Insufficient funds"), Fields{"owner": "Andres"})

	entries := logs.FilterMessage("account service withdraw failed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	assert.Equal(t, "Insufficient funds", entries[0].ContextMap()["error"])
}

func TestDebugFilteredByLevel(t *testing.T) {
	logs := observe(t, zapcore.InfoLevel)

	Debug("hidden", nil)
	assert.Zero(t, logs.Len())
}

func TestRedactNested(t *testing.T) {
	payload := map[string]any{
		"owner": "Jhon Doe",
		"auth": map[string]any{
			"api-key": "abc",
			"Token":   "def",
		},
		"items": []any{map[string]any{"secret": "x", "amount": "500"}},
	}

	got, ok := Redact(payload).(map[string]any)
	require.True(t, ok)

	auth := got["auth"].(map[string]any)
	assert.Equal(t, "******", auth["api-key"])
	assert.Equal(t, "******", auth["Token"])

	item := got["items"].([]any)[0].(map[string]any)
	assert.Equal(t, "******", item["secret"])
	assert.Equal(t, "500", item["amount"])
	assert.Equal(t, "Jhon Doe", got["owner"])
}

func TestRedactKeyVariants(t *testing.T) {
	for _, key := range []string{"API_KEY", " api key ", "Api-Key", "PassWord"} {
		assert.True(t, isSensitiveKey(key), key)
	}
	assert.False(t, isSensitiveKey("owner"))
}

func TestRedactStruct(t *testing.T) {
	got, ok := Redact(struct {
		Owner  string `json:"owner"`
		Secret string `json:"secret"`
	}{Owner: "Andres", Secret: "s3cr3t"}).(map[string]any)
	require.True(t, ok)

	assert.Equal(t, map[string]any{"owner": "Andres", "secret": "******"}, got)
}

func TestRedactUnmarshalable(t *testing.T) {
	assert.Equal(t, "<unavailable>", Redact(make(chan int)))
}

func TestInitRejectsUnknownLevel(t *testing.T) {
	err := Init("loud")
	assert.Error(t, err)
}

func TestInitReplacesGlobals(t *testing.T) {
	prev := zap.L()
	t.Cleanup(func() { zap.ReplaceGlobals(prev) })

	require.NoError(t, Init("warn"))
	assert.NotSame(t, prev, zap.L())
	assert.False(t, zap.L().Core().Enabled(zapcore.InfoLevel))
	assert.True(t, zap.L().Core().Enabled(zapcore.WarnLevel))
}
