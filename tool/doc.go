// Package tool implements the capability catalog and dispatch subsystem:
// the Tool interface, an ordered case-insensitive Registry, deterministic
// specification rendering for LLM-facing tool menus, and an Executor that
// validates model-supplied arguments before invoking a tool and wraps every
// failure into a typed, recoverable error.
//
// Tool implementations should:
//   - Provide clear, descriptive names and descriptions
//   - Declare every accepted parameter with type and required flag
//   - Handle errors gracefully and return them rather than panic
//   - Be safe for concurrent use
package tool
