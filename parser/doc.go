// Package parser recovers structured decision and action objects from
// free-form language model text. Models do not reliably emit valid JSON, so
// parsing is an explicit ordered fallback chain rather than a single parse:
// whole text, then the first fenced code block, then the first balanced
// brace span, then field scavenging. Exhaustion of all strategies is a
// first-class recoverable error (UnparseableError), never a crash.
package parser
