package parser

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/hupe1980/agentroute/core"
)

// UnparseableError reports that no recovery strategy could extract a JSON
// object from the model output. Raw carries the original text for
// diagnostics and for graceful-degradation paths that fall back to treating
// the output as plain prose.
type UnparseableError struct {
	Raw string
}

func (e *UnparseableError) Error() string {
	return fmt.Sprintf("no parseable JSON object in model output (%d bytes)", len(e.Raw))
}

// OutputParser converts raw language model text into structured objects
// with best-effort recovery. It is stateless and safe for concurrent use.
type OutputParser struct{}

// NewOutputParser constructs an OutputParser.
func NewOutputParser() *OutputParser {
	return &OutputParser{}
}

// ParseJSON attempts, in order:
//
//	(a) parse the whole trimmed text as a JSON object
//	(b) parse the first balanced {...} span
//	(c) parse the contents of the first fenced code block
//
// Each stage swallows its own parse failure; only when every strategy is
// exhausted does ParseJSON fail, with *UnparseableError carrying the
// original text. Leading and trailing commentary around the payload is
// tolerated by construction.
func (p *OutputParser) ParseJSON(text string) (map[string]any, error) {
	trimmed := strings.TrimSpace(text)

	if obj, ok := tryUnmarshal(trimmed); ok {
		return obj, nil
	}

	if span, ok := balancedSpan(trimmed); ok {
		if obj, ok := tryUnmarshal(span); ok {
			return obj, nil
		}
	}

	if fenced, ok := fencedBlock(trimmed); ok {
		if obj, ok := tryUnmarshal(fenced); ok {
			return obj, nil
		}
	}

	return nil, &UnparseableError{Raw: text}
}

// ParseAction recovers a tool invocation from model output. On top of the
// ParseJSON chain it adds a last-resort scavenging pass that pulls the
// "tool" and "parameters" fields out of structurally broken JSON, which
// keeps minor model formatting damage from discarding an otherwise clear
// tool call.
func (p *OutputParser) ParseAction(text string) (*core.Action, error) {
	obj, err := p.ParseJSON(text)
	if err == nil {
		if action, ok := actionFromMap(obj); ok {
			return action, nil
		}
	}

	if action, ok := scavengeAction(text); ok {
		return action, nil
	}

	return nil, &UnparseableError{Raw: text}
}

// ParseDecision recovers a stage-1 routing decision object.
func (p *OutputParser) ParseDecision(text string) (*core.RoutingDecision, error) {
	obj, err := p.ParseJSON(text)
	if err != nil {
		return nil, err
	}

	decision := &core.RoutingDecision{}
	if v, ok := obj["use_tool"].(bool); ok {
		decision.UseTool = v
	}
	if v, ok := obj["tool_name"].(string); ok {
		decision.ToolName = v
	}
	if v, ok := obj["reasoning"].(string); ok {
		decision.Reasoning = v
	}
	return decision, nil
}

func tryUnmarshal(candidate string) (map[string]any, bool) {
	candidate = strings.TrimSpace(candidate)
	if candidate == "" || candidate[0] != '{' {
		return nil, false
	}
	var obj map[string]any
	if err := json.Unmarshal([]byte(candidate), &obj); err != nil {
		return nil, false
	}
	return obj, true
}

// fencedBlock extracts the contents of the first ``` fenced block,
// skipping an optional language marker such as "json" on the opening line.
func fencedBlock(text string) (string, bool) {
	const fence = "```"

	start := strings.Index(text, fence)
	if start == -1 {
		return "", false
	}
	rest := text[start+len(fence):]

	// Drop the language marker line if the fence is not immediately
	// followed by the payload.
	if nl := strings.IndexByte(rest, '\n'); nl != -1 {
		head := strings.TrimSpace(rest[:nl])
		if head != "" && !strings.ContainsAny(head, "{[") {
			rest = rest[nl+1:]
		}
	}

	end := strings.Index(rest, fence)
	if end == -1 {
		return strings.TrimSpace(rest), true
	}
	return strings.TrimSpace(rest[:end]), true
}

// balancedSpan returns the first {...} span with balanced braces,
// respecting braces inside JSON string literals.
func balancedSpan(text string) (string, bool) {
	start := strings.IndexByte(text, '{')
	if start == -1 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		}
	}
	return "", false
}

// scavengeAction pulls tool/parameters fields out of a brace span that did
// not survive strict parsing. gjson tolerates trailing damage that
// encoding/json rejects.
func scavengeAction(text string) (*core.Action, bool) {
	span, ok := balancedSpan(text)
	if !ok {
		span = text
	}

	name := gjson.Get(span, "tool")
	if !name.Exists() || name.Type != gjson.String || name.String() == "" {
		return nil, false
	}

	action := &core.Action{Tool: name.String(), Parameters: map[string]any{}}
	if params := gjson.Get(span, "parameters"); params.IsObject() {
		for k, v := range params.Map() {
			action.Parameters[k] = v.Value()
		}
	}
	return action, true
}

func actionFromMap(obj map[string]any) (*core.Action, bool) {
	name, ok := obj["tool"].(string)
	if !ok || name == "" {
		return nil, false
	}

	action := &core.Action{Tool: name, Parameters: map[string]any{}}
	if params, ok := obj["parameters"].(map[string]any); ok {
		action.Parameters = params
	}
	return action, true
}
