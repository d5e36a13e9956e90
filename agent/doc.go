// Package agent contains the orchestrator that ties the router, parser,
// executor and conversation memory together into the two-stage protocol:
//
//	Idle -> Routing -> DirectAnswer                          -> Idle
//	Idle -> Routing -> ToolDecision -> ToolExecuting
//	                                -> ToolSynthesis         -> Idle
//
// Every failure inside a run degrades to a valid assistant answer; the
// caller always receives a string, never a routing, parse or tool error.
// Exactly one user turn and one assistant turn are recorded per run, and
// at most one tool result.
package agent
