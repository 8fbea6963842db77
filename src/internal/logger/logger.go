package logger

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Fields map[string]any

const (
	masked      = "******"
	unavailable = "<unavailable>"
)

var keyNormalizer = strings.NewReplacer("-", "", "_", "", " ", "")

var sensitiveKeys = map[string]struct{}{
	"password": {},
	"secret":   {},
	"token":    {},
	"apikey":   {},
}

// Init replaces zap's global logger with a JSON logger writing to stderr at
// the given level.
func Init(level string) error {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return fmt.Errorf("parse log level %q: %w", level, err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.DisableStacktrace = true

	l, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}

	zap.ReplaceGlobals(l)
	return nil
}

func Sync() {
	_ = zap.L().Sync()
}

func Debug(message string, fields Fields) {
	zap.L().Debug(message, zapFields(fields)...)
}

func Info(message string, fields Fields) {
	zap.L().Info(message, zapFields(fields)...)
}

func Error(message string, err error, fields Fields) {
	zf := zapFields(fields)
	if err != nil {
		zf = append(zf, zap.Error(err))
	}

	zap.L().Error(message, zf...)
}

// Redact returns payload in its generic JSON form with the value of every
// sensitive key masked, at any depth. Payloads that cannot be encoded come
// back as a placeholder.
func Redact(payload any) any {
	raw, err := json.Marshal(payload)
	if err != nil {
		return unavailable
	}

	var tree any
	if err := json.Unmarshal(raw, &tree); err != nil {
		return unavailable
	}

	mask(tree)
	return tree
}

func zapFields(fields Fields) []zap.Field {
	if len(fields) == 0 {
		return nil
	}

	redacted, ok := Redact(fields).(map[string]any)
	if !ok {
		return []zap.Field{zap.String("fields", unavailable)}
	}

	keys := make([]string, 0, len(redacted))
	for key := range redacted {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	out := make([]zap.Field, 0, len(keys))
	for _, key := range keys {
		out = append(out, zap.Any(key, redacted[key]))
	}

	return out
}

// mask overwrites sensitive values in place. The tree is freshly decoded, so
// nothing else holds a reference to it.
func mask(node any) {
	switch typed := node.(type) {
	case map[string]any:
		for key, inner := range typed {
			if isSensitiveKey(key) {
				typed[key] = masked
			} else {
				mask(inner)
			}
		}
	case []any:
		for _, item := range typed {
			mask(item)
		}
	}
}

func isSensitiveKey(key string) bool {
	_, ok := sensitiveKeys[keyNormalizer.Replace(strings.ToLower(strings.TrimSpace(key)))]
	return ok
}
