package tool

import "context"

// Parameter declares a single named argument a tool accepts. The slice
// returned by Tool.Parameters is ordered; that order is preserved in every
// rendered specification so prompts stay byte-stable across calls.
type Parameter struct {
	Name        string `json:"name"`
	Type        string `json:"type"` // string, integer, number, boolean, object
	Description string `json:"description,omitempty"`
	Required    bool   `json:"required"`
	Default     any    `json:"default,omitempty"`
}

// Tool defines the interface for extending the agent with external
// capabilities such as API calls, local computations or side effects.
//
// The name is the registry key (compared case-insensitively), the
// description is shown to the language model during routing and tool
// selection, and the parameter list drives both prompt rendering and
// pre-dispatch validation.
type Tool interface {
	// Name returns the unique identifier for this tool.
	Name() string

	// Description returns a human-readable description of what this tool
	// does. It is provided to the LLM to help it decide when to use the tool.
	Description() string

	// Parameters returns the ordered declaration of accepted arguments.
	Parameters() []Parameter

	// Call executes the tool with already-validated arguments and returns a
	// textual result. Implementations must honor ctx cancellation on any
	// blocking I/O.
	Call(ctx context.Context, args map[string]any) (string, error)
}
