package core

import (
	"time"

	"github.com/google/uuid"
)

// Conversation roles used throughout the module. Only user and assistant
// turns are recorded in conversation memory; tool output is tracked in a
// separate log (see ToolResult).
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is a single conversational exchange entry. Immutable after creation.
type Turn struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// ToolResult captures the textual output of a completed tool invocation.
// Owned by conversation memory once recorded; never mutated afterwards.
type ToolResult struct {
	ToolName  string    `json:"tool_name"`
	Output    string    `json:"output"`
	Timestamp time.Time `json:"timestamp"`
}

// RoutingDecision is the stage-1 classification produced once per query.
// It is ephemeral: the agent acts on it immediately and does not persist it.
// ToolName is a hint, not a binding choice; the stage-2 model call makes the
// final selection from the full tool menu.
type RoutingDecision struct {
	UseTool   bool   `json:"use_tool"`
	ToolName  string `json:"tool_name,omitempty"`
	Reasoning string `json:"reasoning"`
}

// Action is a structured tool invocation recovered from model output.
// Parameters carry loosely-typed values (string/number/bool/object) exactly
// as the model supplied them; validation against the tool's declared
// parameter spec happens at dispatch time.
type Action struct {
	Tool       string         `json:"tool"`
	Parameters map[string]any `json:"parameters"`
}

// NewID returns a fresh UUID string used to correlate runs, model calls and
// tool invocations in logs.
func NewID() string {
	return uuid.NewString()
}
