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
	for _, tc := range []struct {
		level string
		json  bool
		want  zapcore.Level
	}{
		{"debug", true, zapcore.DebugLevel},
		{"info", false, zapcore.InfoLevel},
		{"error", true, zapcore.ErrorLevel},
	} {
		t.Run(tc.level, func(t *testing.T) {
			l, err := New(tc.level, tc.json)
			require.NoError(t, err)
			assert.True(t, l.Core().Enabled(tc.want))
			assert.False(t, l.Core().Enabled(tc.want-1))
		})
	}
}

func TestNew_BadLevel(t *testing.T) {
	_, err := New("chatty", true)
	assert.Error(t, err)
}

func TestStage(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	done := Stage(zap.New(core), "trace")
	done(zap.Int("contours", 3))

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "stage done", entry.Message)
	fields := entry.ContextMap()
	assert.Equal(t, "trace", fields["stage"])
	assert.EqualValues(t, 3, fields["contours"])
	assert.Contains(t, fields, "elapsed")
}
