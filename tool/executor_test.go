package tool

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/agentroute/core"
)

func newExecutorWith(t *testing.T, tools ...Tool) *Executor {
	t.Helper()
	r := NewRegistry()
	require.NoError(t, r.RegisterAll(tools...))
	return NewExecutor(r)
}

func TestExecutor_Success(t *testing.T) {
	e := newExecutorWith(t, &stubTool{
		name: "EchoTool",
		parameters: []Parameter{
			{Name: "text", Type: "string", Required: true},
		},
		fn: func(_ context.Context, args map[string]any) (string, error) {
			return args["text"].(string), nil
		},
	})

	result, err := e.Execute(context.Background(), core.Action{
		Tool:       "EchoTool",
		Parameters: map[string]any{"text": "hello"},
	})
	assert.NoError(t, err)
	assert.Equal(t, "EchoTool", result.ToolName)
	assert.Equal(t, "hello", result.Output)
	assert.False(t, result.Timestamp.IsZero())
}

func TestExecutor_UnknownTool(t *testing.T) {
	e := newExecutorWith(t)

	_, err := e.Execute(context.Background(), core.Action{Tool: "ghost"})
	assert.Error(t, err)
	var nfErr *NotFoundError
	assert.True(t, errors.As(err, &nfErr))
	assert.Equal(t, "ghost", nfErr.Name)
}

func TestExecutor_MissingRequiredParameter(t *testing.T) {
	e := newExecutorWith(t, &stubTool{
		name: "WifiQR",
		parameters: []Parameter{
			{Name: "ssid", Type: "string", Required: true},
			{Name: "password", Type: "string", Required: false},
		},
	})

	_, err := e.Execute(context.Background(), core.Action{
		Tool:       "WifiQR",
		Parameters: map[string]any{"password": "secret"},
	})
	assert.Error(t, err)
	var mpErr *MissingParameterError
	require.True(t, errors.As(err, &mpErr))
	assert.Equal(t, "WifiQR", mpErr.Tool)
	assert.Equal(t, "ssid", mpErr.Parameter)
}

func TestExecutor_FillsDeclaredDefaults(t *testing.T) {
	var seen map[string]any
	e := newExecutorWith(t, &stubTool{
		name: "TimestampTool",
		parameters: []Parameter{
			{Name: "format", Type: "string", Required: false, Default: "default"},
		},
		fn: func(_ context.Context, args map[string]any) (string, error) {
			seen = args
			return "ok", nil
		},
	})

	_, err := e.Execute(context.Background(), core.Action{Tool: "TimestampTool"})
	assert.NoError(t, err)
	assert.Equal(t, "default", seen["format"])
}

func TestExecutor_ExtraParametersPassThrough(t *testing.T) {
	var seen map[string]any
	e := newExecutorWith(t, &stubTool{
		name: "NewsTool",
		parameters: []Parameter{
			{Name: "category", Type: "string", Required: false},
		},
		fn: func(_ context.Context, args map[string]any) (string, error) {
			seen = args
			return "ok", nil
		},
	})

	_, err := e.Execute(context.Background(), core.Action{
		Tool:       "NewsTool",
		Parameters: map[string]any{"category": "tech", "country": "de"},
	})
	assert.NoError(t, err)
	assert.Equal(t, "de", seen["country"])
}

func TestExecutor_DoesNotMutateActionParameters(t *testing.T) {
	e := newExecutorWith(t, &stubTool{
		name: "TimestampTool",
		parameters: []Parameter{
			{Name: "format", Type: "string", Required: false, Default: "default"},
		},
	})

	params := map[string]any{}
	_, err := e.Execute(context.Background(), core.Action{Tool: "TimestampTool", Parameters: params})
	assert.NoError(t, err)
	assert.NotContains(t, params, "format")
}

func TestExecutor_WrapsToolFailure(t *testing.T) {
	cause := errors.New("upstream down")
	e := newExecutorWith(t, &stubTool{
		name: "NewsTool",
		fn: func(context.Context, map[string]any) (string, error) {
			return "", cause
		},
	})

	_, err := e.Execute(context.Background(), core.Action{Tool: "NewsTool"})
	assert.Error(t, err)
	var execErr *ExecutionError
	require.True(t, errors.As(err, &execErr))
	assert.Equal(t, "NewsTool", execErr.Tool)
	assert.True(t, errors.Is(err, cause))
}

func TestExecutor_RecoversToolPanic(t *testing.T) {
	e := newExecutorWith(t, &stubTool{
		name: "Bomb",
		fn: func(context.Context, map[string]any) (string, error) {
			panic("kaboom")
		},
	})

	_, err := e.Execute(context.Background(), core.Action{Tool: "Bomb"})
	assert.Error(t, err)
	var execErr *ExecutionError
	require.True(t, errors.As(err, &execErr))
	assert.Contains(t, execErr.Cause.Error(), "kaboom")
}

func TestExecutor_CancelledContext(t *testing.T) {
	e := newExecutorWith(t, &stubTool{name: "EchoTool"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.Execute(ctx, core.Action{Tool: "EchoTool"})
	assert.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}
