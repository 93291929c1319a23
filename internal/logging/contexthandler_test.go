package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/myrjola/detectivequest/internal/logging"
	"github.com/stretchr/testify/require"
)

func TestContextHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, slog.LevelDebug)

	ctx := logging.WithAttrs(context.Background(), slog.String("room", "Hall de Entrada"))
	left := logging.WithAttrs(ctx, slog.String("room", "Cozinha"))
	right := logging.WithAttrs(ctx, slog.String("direction", "right"))

	logger.DebugContext(left, "entered room")
	require.Contains(t, buf.String(), "room=\"Hall de Entrada\"")
	require.Contains(t, buf.String(), "room=Cozinha")
	buf.Reset()

	logger.DebugContext(right, "entered room")
	require.NotContains(t, buf.String(), "Cozinha", "sibling context leaked attributes")
	require.Contains(t, buf.String(), "direction=right")
}

func TestContextHandler_DerivedLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, slog.LevelDebug).With("source", "Game")

	ctx := logging.WithAttrs(context.Background(), slog.String("accused", "Mordomo"))
	logger.InfoContext(ctx, "case closed")
	require.Contains(t, buf.String(), "source=Game")
	require.Contains(t, buf.String(), "accused=Mordomo")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		level   string
		want    slog.Level
		wantErr bool
	}{
		{level: "debug", want: slog.LevelDebug},
		{level: "INFO", want: slog.LevelInfo},
		{level: " warn ", want: slog.LevelWarn},
		{level: "error", want: slog.LevelError},
		{level: "loud", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			got, err := logging.ParseLevel(tt.level)
			if tt.wantErr {
				require.ErrorIs(t, err, logging.ErrUnknownLevel)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}
