package agent

import (
	"fmt"
	"strings"

	"github.com/hupe1980/agentroute/core"
	"github.com/hupe1980/agentroute/tool"
)

// toolsPlaceholder is substituted with the rendered tool menu inside a
// custom system message.
const toolsPlaceholder = "{tools}"

const conversationalSystemMessage = `You are a helpful, friendly AI assistant. Provide informative, thoughtful responses to the user's questions.`

// buildToolSystemMessage renders the tool-enabled system prompt: the full
// specification of every registered tool plus the structured call format
// the model must answer in. Specifications render in registration order so
// the prompt is stable for a given registry state.
func buildToolSystemMessage(custom string, specs []*tool.Specification) string {
	var menu strings.Builder
	for _, s := range specs {
		menu.WriteString(s.PromptText())
	}

	if custom != "" {
		return strings.ReplaceAll(custom, toolsPlaceholder, menu.String())
	}

	return fmt.Sprintf(`You are a helpful AI assistant with access to specialized tools.

Available tools:
%s
WHEN TO USE TOOLS:
- Use tools ONLY when the user's question specifically requires their functionality
- For general conversation, questions, or advice, DO NOT use tools

TOOL USAGE FORMAT:
When you need to use a tool, respond ONLY with the following JSON format:
`+"```json"+`
{
"tool": "tool_name",
"parameters": {
"param1": "value1"
}
}
`+"```"+`
`, menu.String())
}

// buildToolDirective renders the directive prepended to the system prompt
// when the router suggested a specific tool, nudging the model toward a
// single well-formed call for that tool.
func buildToolDirective(spec *tool.Specification) string {
	var params strings.Builder
	params.WriteString("{")
	for i, p := range spec.Parameters {
		if i > 0 {
			params.WriteString(", ")
		}
		fmt.Fprintf(&params, "%q: <%s>", p.Name, p.Type)
	}
	params.WriteString("}")

	return fmt.Sprintf(`IMPORTANT: The user's query likely requires the %s tool.
If it does, respond ONLY with the following JSON format to use it:

`+"```json"+`
{
"tool": %q,
"parameters": %s
}
`+"```"+`
Do not include any other text or explanations around the JSON.`, spec.Name, spec.Name, params.String())
}

// buildSynthesisPrompt renders the final call that turns raw tool output
// into a user-facing answer.
func buildSynthesisPrompt(query string, result core.ToolResult) string {
	return fmt.Sprintf(`The user asked: %q
I've retrieved the following information:
%s

Please provide a helpful response to the user's query using this information.`, query, result.Output)
}

// buildFailureSynthesisPrompt renders the explanatory call used when a tool
// invocation failed; the failure detail becomes context rather than an
// error surfaced to the user.
func buildFailureSynthesisPrompt(query string, cause error) string {
	return fmt.Sprintf(`The user asked: %q
I tried to use a tool to answer but it did not work: %v

Please explain the limitation to the user briefly and help as far as possible without the tool.`, query, cause)
}

// buildToolContext renders recent tool results as supplementary context for
// direct answers, so a follow-up question can refer to what a tool just
// returned.
func buildToolContext(results []core.ToolResult) string {
	if len(results) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n\nRecent information from tools that may be relevant:\n")
	for _, r := range results {
		output := r.Output
		if len(output) > 200 {
			output = output[:200] + "..."
		}
		fmt.Fprintf(&b, "- From %s: %s\n", r.ToolName, output)
	}
	return b.String()
}
