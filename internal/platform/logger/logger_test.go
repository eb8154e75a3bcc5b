package logger

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	require.Equal(t, zerolog.DebugLevel, parseLevel("DEBUG"))
	require.Equal(t, zerolog.WarnLevel, parseLevel("warning"))
	require.Equal(t, zerolog.Disabled, parseLevel("off"))
	require.Equal(t, zerolog.InfoLevel, parseLevel("nonsense"))
}

func TestWithRequest(t *testing.T) {
	ctx := WithRequest(context.Background(), "req-1")
	require.Equal(t, "req-1", ctx.Value(keyRequestID))

	same := WithRequest(context.Background(), "")
	require.Nil(t, same.Value(keyRequestID))

	require.NotNil(t, C(ctx))
	require.NotNil(t, Named("records"))
}
