package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		env       string
		level     string
		json      bool
		wantErr   bool
		wantLevel zapcore.Level
	}{
		{name: "development default level", env: "development", wantLevel: zapcore.DebugLevel},
		{name: "production default level", env: "production", wantLevel: zapcore.InfoLevel},
		{name: "level override", env: "development", level: "warn", wantLevel: zapcore.WarnLevel},
		{name: "json output in development", env: "dev", json: true, level: "info", wantLevel: zapcore.InfoLevel},
		{name: "unknown environment", env: "staging-eu", wantErr: true},
		{name: "invalid level", env: "development", level: "loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(tt.env, tt.level, tt.json)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, l.Core().Enabled(tt.wantLevel))
			if tt.wantLevel > zapcore.DebugLevel {
				assert.False(t, l.Core().Enabled(tt.wantLevel-1))
			}
		})
	}
}

func TestContextLogger(t *testing.T) {
	assert.NotNil(t, FromContext(context.Background()))

	l := zap.NewExample()
	ctx := ContextWithLogger(context.Background(), l)
	assert.Same(t, l, FromContext(ctx))
}
