package router

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/agentroute/model"
	"github.com/hupe1980/agentroute/tool"
)

func menuTools() []tool.Tool {
	return []tool.Tool{
		tool.NewFunctionTool("TimestampTool", "Get the current date and time", nil, nil),
		tool.NewFunctionTool("NewsTool", "Get today's top news headlines", nil, nil),
	}
}

func TestRoute_NoToolsRegistered(t *testing.T) {
	mock := model.NewMockModel("mock")
	r := NewQueryRouter(mock)

	decision := r.Route(context.Background(), "What time is it?", nil)
	assert.False(t, decision.UseTool)
	assert.Equal(t, "no tools registered", decision.Reasoning)
	// No gateway call is made without a menu.
	assert.Empty(t, mock.Calls())
}

func TestRoute_ToolDecision(t *testing.T) {
	mock := model.NewMockModel("mock").Enqueue(
		`{"use_tool": true, "tool_name": "TimestampTool", "reasoning": "The user asks for the current time."}`,
	)
	r := NewQueryRouter(mock)

	decision := r.Route(context.Background(), "What time is it?", menuTools())
	assert.True(t, decision.UseTool)
	assert.Equal(t, "TimestampTool", decision.ToolName)
	assert.Equal(t, "The user asks for the current time.", decision.Reasoning)
}

func TestRoute_DirectDecision(t *testing.T) {
	mock := model.NewMockModel("mock").Enqueue(
		`{"use_tool": false, "tool_name": null, "reasoning": "Conversational statement."}`,
	)
	r := NewQueryRouter(mock)

	decision := r.Route(context.Background(), "I'm feeling sad today.", menuTools())
	assert.False(t, decision.UseTool)
	assert.Equal(t, "Conversational statement.", decision.Reasoning)
}

func TestRoute_CaseInsensitiveMatchReturnsDeclaredName(t *testing.T) {
	mock := model.NewMockModel("mock").Enqueue(
		`{"use_tool": true, "tool_name": "newstool", "reasoning": "Headlines requested."}`,
	)
	r := NewQueryRouter(mock)

	decision := r.Route(context.Background(), "Any tech news?", menuTools())
	assert.True(t, decision.UseTool)
	assert.Equal(t, "NewsTool", decision.ToolName)
}

func TestRoute_UnknownToolFallsOpen(t *testing.T) {
	mock := model.NewMockModel("mock").Enqueue(
		`{"use_tool": true, "tool_name": "WeatherTool", "reasoning": "Weather requested."}`,
	)
	r := NewQueryRouter(mock)

	decision := r.Route(context.Background(), "Will it rain?", menuTools())
	assert.False(t, decision.UseTool)
	assert.Contains(t, decision.Reasoning, `unknown tool "WeatherTool"`)
}

func TestRoute_UnparseableResponseFallsOpen(t *testing.T) {
	mock := model.NewMockModel("mock").Enqueue("I think you should use a tool here.")
	r := NewQueryRouter(mock)

	decision := r.Route(context.Background(), "What time is it?", menuTools())
	assert.False(t, decision.UseTool)
	assert.Contains(t, decision.Reasoning, "not parseable")
}

func TestRoute_GatewayErrorFallsOpen(t *testing.T) {
	mock := model.NewMockModel("mock").FailWith(errors.New("rate limited"))
	r := NewQueryRouter(mock)

	decision := r.Route(context.Background(), "What time is it?", menuTools())
	assert.False(t, decision.UseTool)
	assert.Contains(t, decision.Reasoning, "rate limited")
}

func TestRoute_FillsDefaultReasoning(t *testing.T) {
	mock := model.NewMockModel("mock").Enqueue(
		`{"use_tool": true, "tool_name": "NewsTool"}`,
	)
	r := NewQueryRouter(mock)

	decision := r.Route(context.Background(), "Any news?", menuTools())
	assert.True(t, decision.UseTool)
	assert.NotEmpty(t, decision.Reasoning)
}

func TestRoute_PromptCarriesMenuAndQuery(t *testing.T) {
	mock := model.NewMockModel("mock").Enqueue(
		`{"use_tool": false, "tool_name": null, "reasoning": "n/a"}`,
	)
	r := NewQueryRouter(mock, func(o *Options) { o.Temperature = 0.05 })

	r.Route(context.Background(), "Tell me about Rome.", menuTools())

	calls := mock.Calls()
	require.Len(t, calls, 1)
	assert.Contains(t, calls[0].Prompt, "- TimestampTool: Get the current date and time")
	assert.Contains(t, calls[0].Prompt, "- NewsTool: Get today's top news headlines")
	assert.Contains(t, calls[0].Prompt, `"Tell me about Rome."`)
	assert.Equal(t, 0.05, calls[0].Temperature)
}
