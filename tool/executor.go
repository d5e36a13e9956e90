package tool

import (
	"context"
	"fmt"
	"time"

	"github.com/hupe1980/agentroute/core"
	"github.com/hupe1980/agentroute/logging"
)

// ExecutorOptions configures an Executor.
type ExecutorOptions struct {
	Logger logging.Logger
}

// Executor performs stage-2 dispatch: it resolves an action's tool through
// the registry, validates the model-supplied arguments against the tool's
// declared parameters and invokes the tool, normalizing every failure into
// one of the typed errors in this package.
//
// Validation is deliberately forgiving of model formatting drift: unknown
// extra parameters are passed through untouched, and declared defaults are
// filled in for absent optional parameters. Only a missing required
// parameter rejects the invocation.
type Executor struct {
	registry *Registry
	logger   logging.Logger
}

// NewExecutor constructs an Executor bound to a registry.
func NewExecutor(registry *Registry, optFns ...func(o *ExecutorOptions)) *Executor {
	opts := ExecutorOptions{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Executor{registry: registry, logger: opts.Logger}
}

// Execute runs the tool named by the action and returns its textual result.
//
// Error semantics:
//
//	unknown tool               -> *NotFoundError
//	absent required parameter  -> *MissingParameterError
//	tool body failure or panic -> *ExecutionError (cause wrapped)
//
// The executor itself performs no side effects beyond this dispatch.
func (e *Executor) Execute(ctx context.Context, action core.Action) (core.ToolResult, error) {
	t, err := e.registry.Get(action.Tool)
	if err != nil {
		e.logger.Warn("executor.tool.unknown", "tool", action.Tool)
		return core.ToolResult{}, err
	}

	args := make(map[string]any, len(action.Parameters))
	for k, v := range action.Parameters {
		args[k] = v
	}

	for _, p := range t.Parameters() {
		if _, ok := args[p.Name]; ok {
			continue
		}
		if p.Required {
			e.logger.Warn("executor.validation.missing", "tool", t.Name(), "parameter", p.Name)
			return core.ToolResult{}, &MissingParameterError{Tool: t.Name(), Parameter: p.Name}
		}
		if p.Default != nil {
			args[p.Name] = p.Default
		}
	}

	start := time.Now()
	output, err := e.call(ctx, t, args)
	if err != nil {
		e.logger.Error("executor.tool.error", "tool", t.Name(), "error", err.Error())
		return core.ToolResult{}, &ExecutionError{Tool: t.Name(), Cause: err}
	}

	e.logger.Info("executor.tool.success", "tool", t.Name(), "duration_ms", time.Since(start).Milliseconds())

	return core.ToolResult{
		ToolName:  t.Name(),
		Output:    output,
		Timestamp: time.Now().UTC(),
	}, nil
}

// call invokes the tool body with panic recovery so a misbehaving tool
// surfaces as an error instead of tearing down the agent run.
func (e *Executor) call(ctx context.Context, t Tool, args map[string]any) (output string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return t.Call(ctx, args)
}
