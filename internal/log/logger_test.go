package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{"", LevelInfo},
		{" warn ", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
	}
	for _, c := range cases {
		got, err := ParseLevel(c.in)
		require.NoError(t, err, c.in)
		assert.Equal(t, c.want, got, c.in)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestLevelString(t *testing.T) {
	for _, l := range []Level{LevelDebug, LevelInfo, LevelWarn, LevelError} {
		parsed, err := ParseLevel(l.String())
		require.NoError(t, err)
		assert.Equal(t, l, parsed)
	}
	assert.Equal(t, "level(9)", Level(9).String())
}

func TestLoggerFiltersByLevel(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewWithCore(core, LevelWarn)

	l.Debug("hidden")
	l.Info("hidden")
	l.Warn("shown", zap.Int("n", 3))
	l.Error("shown too")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "shown", entries[0].Message)
	assert.Equal(t, int64(3), entries[0].ContextMap()["n"])
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
}

func TestLoggerSetLevel(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewWithCore(core, LevelError)
	assert.Equal(t, LevelError, l.GetLevel())

	l.Info("before")
	l.SetLevel(LevelDebug)
	assert.Equal(t, LevelDebug, l.GetLevel())
	l.Debug("after")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "after", logs.All()[0].Message)
}

func TestLoggerWithSharesLevel(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	parent := NewWithCore(core, LevelInfo)
	child := parent.With(zap.String("dist", "sphere"))

	child.Debug("dropped")
	parent.SetLevel(LevelDebug)
	child.Debug("kept")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "sphere", logs.All()[0].ContextMap()["dist"])
}

func TestNewBuildsStderrLogger(t *testing.T) {
	l := New(LevelInfo)
	require.NotNil(t, l)
	assert.Equal(t, LevelInfo, l.GetLevel())
	l.Info("started")
}
