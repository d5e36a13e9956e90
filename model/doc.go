// Package model defines the language model gateway abstraction the agent
// and router generate text through, plus a deterministic MockModel for
// tests and examples. Provider adapters live in sub-packages (openai,
// anthropic, googleai) so callers only pay for the SDKs they import.
package model
