package memory

import (
	"sync"
	"time"

	"github.com/hupe1980/agentroute/core"
)

// Options configures a ConversationMemory. Capacities are fixed at
// construction and never mutated afterwards.
type Options struct {
	// MaxTurns bounds the turn log (user + assistant entries combined).
	MaxTurns int
	// MaxToolResults bounds the tool result log independently.
	MaxToolResults int
}

// ConversationMemory holds the bounded history of one agent session. A
// single append is indivisible with respect to concurrent appends; no
// append is ever lost or duplicated. Reads return defensive copies.
type ConversationMemory struct {
	mu             sync.Mutex
	turns          []core.Turn
	toolResults    []core.ToolResult
	maxTurns       int
	maxToolResults int
	now            func() time.Time
}

// NewConversationMemory constructs an empty memory. Defaults: 20 turns
// (ten exchanges) and 10 tool results.
func NewConversationMemory(optFns ...func(o *Options)) *ConversationMemory {
	opts := Options{MaxTurns: 20, MaxToolResults: 10}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.MaxTurns < 1 {
		opts.MaxTurns = 1
	}
	if opts.MaxToolResults < 1 {
		opts.MaxToolResults = 1
	}
	return &ConversationMemory{
		maxTurns:       opts.MaxTurns,
		maxToolResults: opts.MaxToolResults,
		now:            time.Now,
	}
}

// AddTurn appends a conversation turn with the current timestamp, evicting
// the oldest turn once capacity is exceeded.
func (m *ConversationMemory) AddTurn(role, content string) core.Turn {
	turn := core.Turn{Role: role, Content: content, Timestamp: m.now().UTC()}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.turns = append(m.turns, turn)
	if len(m.turns) > m.maxTurns {
		m.turns = append(m.turns[:0:0], m.turns[len(m.turns)-m.maxTurns:]...)
	}
	return turn
}

// AddToolResult appends a tool result with the current timestamp under the
// same FIFO eviction policy as turns, on its own capacity.
func (m *ConversationMemory) AddToolResult(toolName, output string) core.ToolResult {
	result := core.ToolResult{ToolName: toolName, Output: output, Timestamp: m.now().UTC()}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.toolResults = append(m.toolResults, result)
	if len(m.toolResults) > m.maxToolResults {
		m.toolResults = append(m.toolResults[:0:0], m.toolResults[len(m.toolResults)-m.maxToolResults:]...)
	}
	return result
}

// Turns returns a copy of the full turn log, oldest first.
func (m *ConversationMemory) Turns() []core.Turn {
	m.mu.Lock()
	defer m.mu.Unlock()

	cp := make([]core.Turn, len(m.turns))
	copy(cp, m.turns)
	return cp
}

// RecentTurns returns the last n turns (or fewer if the history is shorter)
// in chronological order.
func (m *ConversationMemory) RecentTurns(n int) []core.Turn {
	m.mu.Lock()
	defer m.mu.Unlock()

	if n > len(m.turns) {
		n = len(m.turns)
	}
	if n <= 0 {
		return nil
	}
	cp := make([]core.Turn, n)
	copy(cp, m.turns[len(m.turns)-n:])
	return cp
}

// RecentToolResults returns the last n tool results in chronological order.
func (m *ConversationMemory) RecentToolResults(n int) []core.ToolResult {
	m.mu.Lock()
	defer m.mu.Unlock()

	if n > len(m.toolResults) {
		n = len(m.toolResults)
	}
	if n <= 0 {
		return nil
	}
	cp := make([]core.ToolResult, n)
	copy(cp, m.toolResults[len(m.toolResults)-n:])
	return cp
}

// TurnCount returns the number of retained turns.
func (m *ConversationMemory) TurnCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.turns)
}

// ToolResultCount returns the number of retained tool results.
func (m *ConversationMemory) ToolResultCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.toolResults)
}

// Clear wipes both logs. Capacities are unaffected.
func (m *ConversationMemory) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.turns = nil
	m.toolResults = nil
}
