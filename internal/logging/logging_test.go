package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_TextAndJSON(t *testing.T) {
	var text bytes.Buffer
	New(Config{Level: "debug", Output: &text}).With(String("stage", "loops")).
		Debug(context.Background(), "stage done", Int("applied", 2), Err(errors.New("boom")))
	assert.Contains(t, text.String(), "level=DEBUG")
	assert.Contains(t, text.String(), "stage=loops")
	assert.Contains(t, text.String(), "applied=2")
	assert.Contains(t, text.String(), "error=boom")

	var js bytes.Buffer
	New(Config{Format: "JSON", Output: &js}).Info(context.Background(), "hello", Bool("ok", true))
	assert.Contains(t, js.String(), `"level":"INFO"`)
	assert.Contains(t, js.String(), `"ok":true`)
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "warn", Output: &buf})
	l.Info(context.Background(), "hidden")
	l.Warn(context.Background(), "shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"WARNING": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"chatty":  slog.LevelInfo,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestContextHelpers(t *testing.T) {
	assert.Equal(t, Noop(), FromContext(context.Background()))
	//nolint:staticcheck // nil context is part of the contract
	assert.Equal(t, Noop(), FromContext(nil))

	var buf bytes.Buffer
	l := New(Config{Output: &buf})
	ctx := ContextWithLogger(context.Background(), l)
	FromContext(ctx).Info(ctx, "via context")
	assert.Contains(t, buf.String(), "via context")

	assert.Equal(t, Noop(), FromContext(ContextWithLogger(context.Background(), nil)))
	assert.Equal(t, Noop(), OrNoop(nil))
}

func TestConfigFromEnv(t *testing.T) {
	base := Config{Level: "warn", Format: "text"}

	t.Setenv(EnvLevel, "")
	t.Setenv(EnvFormat, "")
	assert.Equal(t, base, ConfigFromEnv(base))

	t.Setenv(EnvLevel, "debug")
	t.Setenv(EnvFormat, "json")
	got := ConfigFromEnv(base)
	assert.Equal(t, "debug", got.Level)
	assert.Equal(t, "json", got.Format)
	assert.Equal(t, "warn", base.Level, "base is copied")
}
