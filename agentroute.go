// Package agentroute provides a high-level façade over the agent, router,
// tool and memory packages for building tool-routing LLM assistants. Most
// applications interact with this package by:
//  1. Creating an AgentRoute via New() with a model gateway
//  2. Registering one or more tools
//  3. Calling Run() per user query
//
// The façade delegates orchestration to agent.Agent while keeping setup
// ergonomics concise. All defaults are safe for local development and
// testing; production deployments typically supply a structured logger and
// tuned memory capacities.
package agentroute

import (
	"context"

	"github.com/hupe1980/agentroute/agent"
	"github.com/hupe1980/agentroute/logging"
	"github.com/hupe1980/agentroute/memory"
	"github.com/hupe1980/agentroute/model"
	"github.com/hupe1980/agentroute/router"
	"github.com/hupe1980/agentroute/tool"
)

// Options configures the AgentRoute instance.
type Options struct {
	// Name is the agent's display name used in logs.
	Name string
	// Registry overrides the default empty registry, allowing several
	// agents to share one catalog.
	Registry *tool.Registry
	// StrictRegistration makes duplicate tool names an error instead of
	// last-write-wins. Only consulted when Registry is nil.
	StrictRegistration bool
	// SystemMessage overrides the tool-enabled system prompt. The literal
	// "{tools}" is substituted with the rendered tool menu.
	SystemMessage string
	// MaxTurns bounds conversation memory (default 20 entries).
	MaxTurns int
	// MaxToolResults bounds the tool result log (default 10 entries).
	MaxToolResults int
	// Temperature for conversation and synthesis calls.
	Temperature float64
	// ToolTemperature for structured tool-call generation.
	ToolTemperature float64
	// RouterTemperature for the stage-1 classification call.
	RouterTemperature float64
	// Logger (defaults to NoOp logger if nil).
	Logger logging.Logger
}

// AgentRoute is the high-level façade aggregating the registry and the
// orchestrating agent.
type AgentRoute struct {
	registry *tool.Registry
	agent    *agent.Agent
}

// New creates a new AgentRoute instance with optional overrides. Any unset
// collaborator is initialized with an in-memory default.
func New(m model.Model, optFns ...func(o *Options)) *AgentRoute {
	opts := Options{
		Name:              "Assistant",
		MaxTurns:          20,
		MaxToolResults:    10,
		Temperature:       0.7,
		ToolTemperature:   0.2,
		RouterTemperature: 0.1,
		Logger:            logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	registry := opts.Registry
	if registry == nil {
		registry = tool.NewRegistry(func(o *tool.RegistryOptions) {
			o.Strict = opts.StrictRegistration
		})
	}

	mem := memory.NewConversationMemory(func(o *memory.Options) {
		o.MaxTurns = opts.MaxTurns
		o.MaxToolResults = opts.MaxToolResults
	})

	qr := router.NewQueryRouter(m, func(o *router.Options) {
		o.Temperature = opts.RouterTemperature
		o.Logger = opts.Logger
	})

	a := agent.New(opts.Name, m, func(o *agent.Options) {
		o.Registry = registry
		o.Memory = mem
		o.Router = qr
		o.SystemMessage = opts.SystemMessage
		o.Temperature = opts.Temperature
		o.ToolTemperature = opts.ToolTemperature
		o.Logger = opts.Logger
	})

	return &AgentRoute{registry: registry, agent: a}
}

// RegisterTool adds a tool to the shared catalog.
func (a *AgentRoute) RegisterTool(t tool.Tool) error {
	return a.registry.Register(t)
}

// RegisterTools adds multiple tools, stopping at the first failure.
func (a *AgentRoute) RegisterTools(tools ...tool.Tool) error {
	return a.registry.RegisterAll(tools...)
}

// Run processes one user query end to end and returns the assistant answer.
func (a *AgentRoute) Run(ctx context.Context, query string) (string, error) {
	return a.agent.Run(ctx, query)
}

// Agent exposes the underlying orchestrator.
func (a *AgentRoute) Agent() *agent.Agent { return a.agent }

// Registry exposes the shared tool catalog.
func (a *AgentRoute) Registry() *tool.Registry { return a.registry }
