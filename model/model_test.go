package model

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequest_Messages(t *testing.T) {
	req := Request{
		System: "You are helpful.",
		Prompt: "What time is it?",
		History: []Message{
			{Role: "user", Content: "Hello"},
			{Role: "assistant", Content: "Hi!"},
		},
	}

	messages := req.Messages()
	require.Len(t, messages, 4)
	assert.Equal(t, "system", messages[0].Role)
	assert.Equal(t, "user", messages[1].Role)
	assert.Equal(t, "assistant", messages[2].Role)
	assert.Equal(t, Message{Role: "user", Content: "What time is it?"}, messages[3])
}

func TestRequest_MessagesDedupsTrailingPrompt(t *testing.T) {
	req := Request{
		Prompt: "What time is it?",
		History: []Message{
			{Role: "assistant", Content: "Hi!"},
			{Role: "user", Content: "What time is it?"},
		},
	}

	messages := req.Messages()
	require.Len(t, messages, 2)
	assert.Equal(t, "What time is it?", messages[1].Content)
}

func TestRequest_MessagesPromptOnly(t *testing.T) {
	messages := Request{Prompt: "Hello"}.Messages()
	require.Len(t, messages, 1)
	assert.Equal(t, "user", messages[0].Role)
}

func TestMockModel_QueuePrecedesPromptMatch(t *testing.T) {
	m := NewMockModel("mock").
		AddResponse("Hello", "matched").
		Enqueue("queued-1", "queued-2")

	resp, err := m.Generate(context.Background(), Request{Prompt: "Hello"})
	require.NoError(t, err)
	assert.Equal(t, "queued-1", resp.Text)

	resp, err = m.Generate(context.Background(), Request{Prompt: "Hello"})
	require.NoError(t, err)
	assert.Equal(t, "queued-2", resp.Text)

	// Queue drained, exact match applies.
	resp, err = m.Generate(context.Background(), Request{Prompt: "Hello"})
	require.NoError(t, err)
	assert.Equal(t, "matched", resp.Text)
}

func TestMockModel_EchoFallback(t *testing.T) {
	m := NewMockModel("mock")

	resp, err := m.Generate(context.Background(), Request{Prompt: "anything"})
	require.NoError(t, err)
	assert.Equal(t, "Mock response to: anything", resp.Text)
}

func TestMockModel_FailWith(t *testing.T) {
	boom := errors.New("boom")
	m := NewMockModel("mock").FailWith(boom)

	_, err := m.Generate(context.Background(), Request{Prompt: "hi"})
	assert.ErrorIs(t, err, boom)
}

func TestMockModel_RecordsCalls(t *testing.T) {
	m := NewMockModel("mock")

	_, err := m.Generate(context.Background(), Request{Prompt: "one", Temperature: 0.1})
	require.NoError(t, err)
	_, err = m.Generate(context.Background(), Request{Prompt: "two", Temperature: 0.7})
	require.NoError(t, err)

	calls := m.Calls()
	require.Len(t, calls, 2)
	assert.Equal(t, "one", calls[0].Prompt)
	assert.Equal(t, 0.7, calls[1].Temperature)
}

func TestMockModel_CancelledContext(t *testing.T) {
	m := NewMockModel("mock")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := m.Generate(ctx, Request{Prompt: "hi"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, m.Calls())
}

func TestMockModel_Info(t *testing.T) {
	m := NewMockModel("scripted")
	assert.Equal(t, Info{Name: "scripted", Provider: "mock"}, m.Info())
}
