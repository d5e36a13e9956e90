package agent

import (
	"context"
	"fmt"

	"github.com/hupe1980/agentroute/core"
	"github.com/hupe1980/agentroute/logging"
	"github.com/hupe1980/agentroute/memory"
	"github.com/hupe1980/agentroute/model"
	"github.com/hupe1980/agentroute/parser"
	"github.com/hupe1980/agentroute/router"
	"github.com/hupe1980/agentroute/tool"
)

// Options configures an Agent instance.
type Options struct {
	// Registry is the shared tool catalog. A fresh empty registry is created
	// when none is supplied.
	Registry *tool.Registry
	// Memory holds this agent's conversation history. Created with default
	// capacities when nil; the agent owns it either way.
	Memory *memory.ConversationMemory
	// Router overrides the default stage-1 classifier.
	Router *router.QueryRouter
	// SystemMessage replaces the built-in tool-enabled system prompt. The
	// literal "{tools}" is substituted with the rendered tool menu.
	SystemMessage string
	// Temperature for open conversation and synthesis calls.
	Temperature float64
	// ToolTemperature for the structured tool-call generation. Kept low for
	// more consistent tool selection.
	ToolTemperature float64
	// MaxHistoryTurns bounds how many recent turns accompany each prompt.
	MaxHistoryTurns int
	// RecentToolResults bounds how many tool outputs are offered as context
	// on the direct-answer path.
	RecentToolResults int
	Logger            logging.Logger
}

// Agent is the orchestrator driving the two-stage protocol for one
// conversational session. It exclusively owns its memory; the registry is
// shared and read-mostly. Concurrent Run calls against the same Agent are
// not serialized but cannot corrupt memory, whose appends are atomic.
type Agent struct {
	name     string
	model    model.Model
	registry *tool.Registry
	mem      *memory.ConversationMemory
	router   *router.QueryRouter
	parser   *parser.OutputParser
	executor *tool.Executor
	opts     Options
}

// New creates an agent with sensible defaults: an empty registry, memory
// with default capacities, a low-temperature router on the same gateway,
// 0.7 conversation temperature and 0.2 tool-call temperature.
func New(name string, m model.Model, optFns ...func(o *Options)) *Agent {
	opts := Options{
		Temperature:       0.7,
		ToolTemperature:   0.2,
		MaxHistoryTurns:   10,
		RecentToolResults: 2,
		Logger:            logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Registry == nil {
		opts.Registry = tool.NewRegistry()
	}
	if opts.Memory == nil {
		opts.Memory = memory.NewConversationMemory()
	}
	if opts.Router == nil {
		opts.Router = router.NewQueryRouter(m, func(o *router.Options) {
			o.Logger = opts.Logger
		})
	}

	return &Agent{
		name:     name,
		model:    m,
		registry: opts.Registry,
		mem:      opts.Memory,
		router:   opts.Router,
		parser:   parser.NewOutputParser(),
		executor: tool.NewExecutor(opts.Registry, func(o *tool.ExecutorOptions) {
			o.Logger = opts.Logger
		}),
		opts: opts,
	}
}

// Name returns the agent's display name.
func (a *Agent) Name() string { return a.name }

// Registry returns the shared tool catalog.
func (a *Agent) Registry() *tool.Registry { return a.registry }

// Memory returns the agent's conversation memory.
func (a *Agent) Memory() *memory.ConversationMemory { return a.mem }

// RegisterTool adds a tool to the agent's registry.
func (a *Agent) RegisterTool(t tool.Tool) error {
	return a.registry.Register(t)
}

// RegisterTools adds multiple tools, stopping at the first failure.
func (a *Agent) RegisterTools(tools ...tool.Tool) error {
	return a.registry.RegisterAll(tools...)
}

// Run processes one user query end to end and returns the assistant
// answer. It never returns routing, parse or tool errors — every internal
// failure degrades to an explanatory answer. The error result is non-nil
// only when ctx is already cancelled before any work happens.
//
// Per call: exactly one user turn and one assistant turn are appended to
// memory, and zero or one tool results.
func (a *Agent) Run(ctx context.Context, query string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	runID := core.NewID()
	a.opts.Logger.Info("agent.run.start", "agent", a.name, "run", runID)

	// The user turn is recorded before anything can fail so even degraded
	// turns keep their context.
	a.mem.AddTurn(core.RoleUser, query)

	decision := a.router.Route(ctx, query, a.registry.List())
	a.opts.Logger.Info(
		"agent.routing.decision",
		"run", runID,
		"use_tool", decision.UseTool,
		"tool", decision.ToolName,
		"reasoning", decision.Reasoning,
	)

	var answer string
	if decision.UseTool {
		answer = a.runWithTool(ctx, runID, query, decision)
	} else {
		answer = a.runDirect(ctx, runID, query)
	}

	a.mem.AddTurn(core.RoleAssistant, answer)
	a.opts.Logger.Info("agent.run.complete", "agent", a.name, "run", runID)

	return answer, nil
}

// runDirect handles the DirectAnswer branch: one gateway call over the
// plain conversation history, with recent tool outputs offered as context.
func (a *Agent) runDirect(ctx context.Context, runID, query string) string {
	system := conversationalSystemMessage + buildToolContext(a.mem.RecentToolResults(a.opts.RecentToolResults))

	resp, err := a.model.Generate(ctx, model.Request{
		System:      system,
		Prompt:      query,
		History:     a.history(),
		Temperature: a.opts.Temperature,
	})
	if err != nil {
		a.opts.Logger.Error("agent.gateway.error", "run", runID, "stage", "direct", "error", err.Error())
		return degradedAnswer(err)
	}
	return resp.Text
}

// runWithTool drives ToolDecision -> ToolExecuting -> ToolSynthesis. The
// router's suggestion is only a hint: the model picks the final tool from
// the full menu, and any stage failure degrades gracefully.
func (a *Agent) runWithTool(ctx context.Context, runID, query string, decision core.RoutingDecision) string {
	system := buildToolSystemMessage(a.opts.SystemMessage, a.registry.Specifications())
	if spec, err := a.registry.Specification(decision.ToolName); err == nil {
		system = buildToolDirective(spec) + "\n\n" + system
	}

	resp, err := a.model.Generate(ctx, model.Request{
		System:      system,
		Prompt:      query,
		Temperature: a.opts.ToolTemperature,
	})
	if err != nil {
		a.opts.Logger.Error("agent.gateway.error", "run", runID, "stage", "tool_decision", "error", err.Error())
		return degradedAnswer(err)
	}

	action, err := a.parser.ParseAction(resp.Text)
	if err != nil {
		// The model answered in prose instead of a tool call; treat its text
		// as the direct answer rather than surfacing a parse error.
		a.opts.Logger.Warn("agent.action.unparseable", "run", runID)
		return resp.Text
	}

	result, err := a.executor.Execute(ctx, *action)
	if err != nil {
		a.opts.Logger.Warn("agent.tool.failed", "run", runID, "tool", action.Tool, "error", err.Error())
		return a.explainFailure(ctx, runID, query, err)
	}

	a.mem.AddToolResult(result.ToolName, result.Output)

	return a.synthesize(ctx, runID, query, result)
}

// synthesize issues the final gateway call turning raw tool output into a
// user-facing answer. If that call fails the raw output is still returned
// in a readable envelope so the tool work is never wasted.
func (a *Agent) synthesize(ctx context.Context, runID, query string, result core.ToolResult) string {
	resp, err := a.model.Generate(ctx, model.Request{
		Prompt:      buildSynthesisPrompt(query, result),
		History:     a.history(),
		Temperature: a.opts.Temperature,
	})
	if err != nil {
		a.opts.Logger.Error("agent.gateway.error", "run", runID, "stage", "synthesis", "error", err.Error())
		return fmt.Sprintf("Here is what %s returned: %s", result.ToolName, result.Output)
	}
	return resp.Text
}

// explainFailure converts a tool failure into an explanatory answer. A
// second failure (the gateway being down too) falls back to a static
// explanation carrying the failure detail.
func (a *Agent) explainFailure(ctx context.Context, runID, query string, cause error) string {
	resp, err := a.model.Generate(ctx, model.Request{
		Prompt:      buildFailureSynthesisPrompt(query, cause),
		Temperature: a.opts.Temperature,
	})
	if err != nil {
		a.opts.Logger.Error("agent.gateway.error", "run", runID, "stage", "failure_synthesis", "error", err.Error())
		return fmt.Sprintf("I tried to use a tool to answer that, but it did not work (%v). Please try again later.", cause)
	}
	return resp.Text
}

// history returns the bounded recent conversation as gateway messages.
func (a *Agent) history() []model.Message {
	turns := a.mem.RecentTurns(a.opts.MaxHistoryTurns)
	messages := make([]model.Message, 0, len(turns))
	for _, t := range turns {
		messages = append(messages, model.Message{Role: t.Role, Content: t.Content})
	}
	return messages
}

func degradedAnswer(cause error) string {
	return fmt.Sprintf("I ran into a problem reaching the language model (%v). Please try again in a moment.", cause)
}
