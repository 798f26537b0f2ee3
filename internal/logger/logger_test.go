package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInitialize(t *testing.T) {
	restore := Replace(zap.NewNop())
	defer restore()

	for _, lvl := range []string{"debug", "info", "warn", "error"} {
		t.Run(lvl, func(t *testing.T) {
			require.NoError(t, Initialize(lvl))

			want, _ := zapcore.ParseLevel(lvl)
			assert.True(t, Log.Desugar().Core().Enabled(want))
			assert.False(t, Log.Desugar().Core().Enabled(want-1))
		})
	}

	assert.Error(t, Initialize("loud"))
}

func TestReplace(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	restore := Replace(zap.New(core))

	Log.Infow("query", "args", []any{"alice"}, "error", nil)
	restore()
	Log.Infow("dropped")

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "query", entry.Message)
	assert.Contains(t, entry.ContextMap(), "args")
}

func TestSync_NopLogger(t *testing.T) {
	restore := Replace(zap.NewNop())
	defer restore()

	assert.NotPanics(t, Sync)
}
