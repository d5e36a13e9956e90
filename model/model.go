package model

import (
	"context"
	"fmt"
	"sync"
)

// Message is a single role-tagged entry of conversation history handed to
// the gateway.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request captures one normalized generation call. History is ordered
// oldest-first; Prompt, when set, is the current user input and is appended
// after the history unless it already terminates it. Temperature must be
// honored by adapters: the agent uses a distinctly lower setting for
// tool-decision calls than for open conversation.
type Request struct {
	System      string    `json:"system,omitempty"`
	Prompt      string    `json:"prompt,omitempty"`
	History     []Message `json:"history,omitempty"`
	Temperature float64   `json:"temperature"`
}

// Messages flattens the request into the ordered message list providers
// consume: optional system message, history, then the prompt (skipped when
// it duplicates the trailing user message, which happens when callers pass
// a history that already contains the current input).
func (r Request) Messages() []Message {
	messages := make([]Message, 0, len(r.History)+2)
	if r.System != "" {
		messages = append(messages, Message{Role: "system", Content: r.System})
	}
	messages = append(messages, r.History...)
	if r.Prompt != "" {
		if n := len(r.History); n == 0 || r.History[n-1].Role != "user" || r.History[n-1].Content != r.Prompt {
			messages = append(messages, Message{Role: "user", Content: r.Prompt})
		}
	}
	return messages
}

// Usage captures token accounting when the provider reports it.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Response is the final text produced for a Request.
type Response struct {
	Text  string `json:"text"`
	Usage *Usage `json:"usage,omitempty"`
}

// Info contains metadata about a model implementation.
type Info struct {
	Name     string `json:"name"`
	Provider string `json:"provider"` // "openai", "anthropic", "googleai", "mock"
}

// Model is the minimal gateway interface required to drive generation.
// Failure modes (rate limits, auth, network) are opaque to callers; the
// agent treats any error as the recoverable fallback path.
type Model interface {
	Generate(ctx context.Context, req Request) (*Response, error)

	// Info returns information about the model implementation.
	Info() Info
}

// MockModel is a lightweight in-memory Model useful for tests and examples.
// Responses are resolved in order of precedence: a scripted queue consumed
// FIFO, an exact prompt match, then a generic echo. Every request is
// recorded for assertions.
type MockModel struct {
	mu        sync.Mutex
	info      Info
	responses map[string]string
	queue     []string
	err       error
	calls     []Request
}

// NewMockModel constructs a MockModel.
func NewMockModel(name string) *MockModel {
	return &MockModel{
		info:      Info{Name: name, Provider: "mock"},
		responses: make(map[string]string),
	}
}

// AddResponse registers a deterministic canned completion for an exact prompt.
func (m *MockModel) AddResponse(prompt, response string) *MockModel {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses[prompt] = response
	return m
}

// Enqueue appends scripted completions consumed in order, ahead of any
// prompt matching. Useful for multi-call agent scenarios.
func (m *MockModel) Enqueue(responses ...string) *MockModel {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queue = append(m.queue, responses...)
	return m
}

// FailWith makes every subsequent Generate call return err.
func (m *MockModel) FailWith(err error) *MockModel {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
	return m
}

// Calls returns a copy of every request seen so far.
func (m *MockModel) Calls() []Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]Request, len(m.calls))
	copy(cp, m.calls)
	return cp
}

// Generate implements Model.
func (m *MockModel) Generate(ctx context.Context, req Request) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, req)

	if m.err != nil {
		return nil, m.err
	}
	if len(m.queue) > 0 {
		text := m.queue[0]
		m.queue = m.queue[1:]
		return &Response{Text: text}, nil
	}
	if text, ok := m.responses[req.Prompt]; ok {
		return &Response{Text: text}, nil
	}
	return &Response{Text: fmt.Sprintf("Mock response to: %s", req.Prompt)}, nil
}

// Info implements Model.
func (m *MockModel) Info() Info { return m.info }
