package tool

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Specification is the deterministic rendering of a tool shown to the
// language model: name, description and the ordered parameter declarations.
// Both the router and the agent embed these renderings into prompts, so the
// shape must round-trip parameter names and types losslessly and stay
// byte-stable across calls for a given registry state.
type Specification struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Parameters  []Parameter `json:"parameters"`
}

// NewSpecification snapshots a tool into its LLM-facing specification.
func NewSpecification(t Tool) *Specification {
	params := t.Parameters()
	cp := make([]Parameter, len(params))
	copy(cp, params)
	return &Specification{
		Name:        t.Name(),
		Description: t.Description(),
		Parameters:  cp,
	}
}

// JSONSchema renders the parameter declarations as a minimal JSON-Schema
// object of the shape model providers expect for function calling.
func (s *Specification) JSONSchema() map[string]any {
	properties := make(map[string]any, len(s.Parameters))
	required := make([]string, 0, len(s.Parameters))
	for _, p := range s.Parameters {
		prop := map[string]any{"type": p.Type}
		if p.Description != "" {
			prop["description"] = p.Description
		}
		properties[p.Name] = prop
		if p.Required {
			required = append(required, p.Name)
		}
	}

	schema := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

// PromptText renders the specification as the plain-text block embedded in
// tool-enabled system prompts. Parameters appear in declaration order.
func (s *Specification) PromptText() string {
	var b strings.Builder
	fmt.Fprintf(&b, "- %s: %s\n", s.Name, s.Description)
	if len(s.Parameters) == 0 {
		b.WriteString("  Parameters: none\n")
		return b.String()
	}
	b.WriteString("  Parameters:\n")
	for _, p := range s.Parameters {
		optional := ""
		if !p.Required {
			optional = " (optional)"
		}
		fmt.Fprintf(&b, "    - %s: %s%s", p.Name, p.Type, optional)
		if p.Description != "" {
			fmt.Fprintf(&b, " - %s", p.Description)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// MenuLine renders the terse one-line form used by the stage-1 router menu.
func (s *Specification) MenuLine() string {
	return fmt.Sprintf("- %s: %s", s.Name, s.Description)
}

// MarshalText renders the specification as indented JSON. Handy for example
// payloads inside prompts and for debugging.
func (s *Specification) MarshalText() ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}
