// Package tools bundles the built-in tool implementations: current
// timestamp, news headlines (real NewsAPI client plus a canned mock),
// QR code generation and Gmail sending. Each is a thin I/O wrapper around
// its external service; all decision logic lives in the agent packages.
package tools
