package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	t.Parallel()

	logger, err := New("warn", "console")
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))

	_, err = New("loud", "json")
	assert.Error(t, err)
}

func TestPrintfAdapter(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.InfoLevel)
	adapter := NewPrintfAdapter(zap.New(core), true)

	adapter.Printf("applied %d migrations\n", 3)

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "applied 3 migrations", logs.All()[0].Message)
	assert.True(t, adapter.Verbose())
}
