package tools

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClockTool() *TimestampTool {
	return &TimestampTool{now: func() time.Time {
		return time.Date(2025, 6, 1, 12, 30, 45, 0, time.UTC)
	}}
}

func TestTimestampTool_DefaultFormat(t *testing.T) {
	out, err := fixedClockTool().Call(context.Background(), map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, "2025-06-01 12:30:45", out)
}

func TestTimestampTool_ISOFormat(t *testing.T) {
	out, err := fixedClockTool().Call(context.Background(), map[string]any{"format": "iso"})
	require.NoError(t, err)
	assert.Equal(t, "2025-06-01T12:30:45Z", out)
}

func TestTimestampTool_UnixFormat(t *testing.T) {
	out, err := fixedClockTool().Call(context.Background(), map[string]any{"format": "unix"})
	require.NoError(t, err)
	assert.Equal(t, "1748781045", out)
}

func TestTimestampTool_UnknownFormatFallsBack(t *testing.T) {
	out, err := fixedClockTool().Call(context.Background(), map[string]any{"format": "martian"})
	require.NoError(t, err)
	assert.Equal(t, "2025-06-01 12:30:45", out)
}

func TestTimestampTool_Declaration(t *testing.T) {
	tt := NewTimestampTool()
	assert.Equal(t, "TimestampTool", tt.Name())

	params := tt.Parameters()
	require.Len(t, params, 1)
	assert.Equal(t, "format", params[0].Name)
	assert.False(t, params[0].Required)
	assert.Equal(t, "default", params[0].Default)
}
