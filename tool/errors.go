package tool

import "fmt"

// NotFoundError is returned when a tool name has no registry entry.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("tool %q not found", e.Name)
}

// DuplicateError is returned by a strict-mode registry when a name is
// registered twice. In the default last-write-wins mode it is never produced.
type DuplicateError struct {
	Name string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("tool %q is already registered", e.Name)
}

// MissingParameterError is returned when a required parameter declared by
// the tool's spec is absent from the supplied arguments.
type MissingParameterError struct {
	Tool      string
	Parameter string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("tool %q: missing required parameter %q", e.Tool, e.Parameter)
}

// ExecutionError wraps any failure raised by a tool body (or a panic caught
// during dispatch) so a single failing tool never aborts the agent run.
type ExecutionError struct {
	Tool  string
	Cause error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("tool %q execution failed: %v", e.Tool, e.Cause)
}

// Unwrap exposes the underlying cause for errors.Is / errors.As chains.
func (e *ExecutionError) Unwrap() error {
	return e.Cause
}
