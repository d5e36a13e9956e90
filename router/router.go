package router

import (
	"context"
	"fmt"
	"strings"

	"github.com/hupe1980/agentroute/core"
	"github.com/hupe1980/agentroute/logging"
	"github.com/hupe1980/agentroute/model"
	"github.com/hupe1980/agentroute/parser"
	"github.com/hupe1980/agentroute/tool"
)

// Options configures a QueryRouter.
type Options struct {
	// Temperature for the classification call. Kept low so routing stays
	// near-deterministic for the same query.
	Temperature float64
	Logger      logging.Logger
}

// QueryRouter decides tool-use vs. direct-answer for a query. The menu
// shown to the model carries only each tool's name and description — not
// the full parameter schema — to bias toward a fast, cheap classification.
type QueryRouter struct {
	model  model.Model
	parser *parser.OutputParser
	opts   Options
}

// NewQueryRouter constructs a router backed by the given gateway.
func NewQueryRouter(m model.Model, optFns ...func(o *Options)) *QueryRouter {
	opts := Options{
		Temperature: 0.1,
		Logger:      logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &QueryRouter{model: m, parser: parser.NewOutputParser(), opts: opts}
}

// Route classifies the query against the available tools.
//
// Fallback policy (documented contract): if the gateway fails, the response
// is unparseable, or the suggested tool name matches nothing in the menu,
// Route returns use_tool=false with the cause recorded in Reasoning. A
// mismatched-but-well-formed decision is not retried; it falls open
// immediately like a parse failure.
func (r *QueryRouter) Route(ctx context.Context, query string, tools []tool.Tool) core.RoutingDecision {
	if len(tools) == 0 {
		return core.RoutingDecision{UseTool: false, Reasoning: "no tools registered"}
	}

	prompt := r.buildPrompt(query, tools)

	resp, err := r.model.Generate(ctx, model.Request{
		Prompt:      prompt,
		Temperature: r.opts.Temperature,
	})
	if err != nil {
		r.opts.Logger.Warn("router.gateway.error", "error", err.Error())
		return core.RoutingDecision{UseTool: false, Reasoning: fmt.Sprintf("routing unavailable, answering directly: %v", err)}
	}

	decision, err := r.parser.ParseDecision(resp.Text)
	if err != nil {
		r.opts.Logger.Warn("router.parse.error", "error", err.Error())
		return core.RoutingDecision{UseTool: false, Reasoning: "router response was not parseable, answering directly"}
	}

	if !decision.UseTool {
		if decision.Reasoning == "" {
			decision.Reasoning = "query does not require a tool"
		}
		return *decision
	}

	matched, ok := matchTool(decision.ToolName, tools)
	if !ok {
		r.opts.Logger.Warn("router.tool.mismatch", "suggested", decision.ToolName)
		return core.RoutingDecision{
			UseTool:   false,
			Reasoning: fmt.Sprintf("router suggested unknown tool %q, answering directly", decision.ToolName),
		}
	}

	decision.ToolName = matched
	if decision.Reasoning == "" {
		decision.Reasoning = fmt.Sprintf("query matches the %s tool", matched)
	}

	r.opts.Logger.Info("router.decision", "use_tool", true, "tool", matched)

	return *decision
}

// matchTool resolves a suggested name against the menu case-insensitively,
// returning the declared name so downstream lookups stay exact.
func matchTool(name string, tools []tool.Tool) (string, bool) {
	if name == "" {
		return "", false
	}
	for _, t := range tools {
		if strings.EqualFold(t.Name(), name) {
			return t.Name(), true
		}
	}
	return "", false
}

// buildPrompt renders the terse classification prompt: tool menu, a few
// worked examples and the fixed-shape decision format.
func (r *QueryRouter) buildPrompt(query string, tools []tool.Tool) string {
	var menu strings.Builder
	for _, t := range tools {
		menu.WriteString(tool.NewSpecification(t).MenuLine())
		menu.WriteString("\n")
	}

	return fmt.Sprintf(`You are a query router that determines if a user query should be handled using specialized tools.

Available tools:
%s
EXAMPLES:
1. User query: "What time is it now?"
Decision: {"use_tool": true, "tool_name": "TimestampTool", "reasoning": "This query asks for the current time."}

2. User query: "Tell me about the history of Rome."
Decision: {"use_tool": false, "tool_name": null, "reasoning": "General knowledge question that needs no real-time data or specialized tools."}

3. User query: "I'm feeling sad today."
Decision: {"use_tool": false, "tool_name": null, "reasoning": "Conversational statement that requires empathy, not a tool."}

User query: %q

Should this query be handled using one of the available tools? If so, which tool is most appropriate?
Respond with a JSON object in the following format:
{
"use_tool": true/false,
"tool_name": "ToolName or null if no tool needed",
"reasoning": "Brief explanation of your decision"
}`, menu.String(), query)
}
