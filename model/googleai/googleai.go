// Package googleai adapts Google's Gemini API (generative-ai-go) to the
// generic model.Model gateway interface.
package googleai

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/hupe1980/agentroute/model"
)

// Options configures the Gemini model adapter.
type Options struct {
	Model  string
	APIKey string
}

// Model wraps the Gemini API behind the generic model.Model interface.
type Model struct {
	client *genai.Client
	opts   Options
}

var _ model.Model = (*Model)(nil)

// NewModel creates a new Gemini model. The API key is required because the
// genai client does not read it from the environment on its own.
func NewModel(ctx context.Context, optFns ...func(o *Options)) (*Model, error) {
	opts := Options{Model: "gemini-1.5-flash"}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.APIKey == "" {
		return nil, fmt.Errorf("googleai: API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(opts.APIKey))
	if err != nil {
		return nil, fmt.Errorf("googleai: failed to create client: %w", err)
	}
	return &Model{client: client, opts: opts}, nil
}

// Close releases the underlying client connection.
func (m *Model) Close() error {
	return m.client.Close()
}

// Generate implements model.Model. A fresh GenerativeModel is derived per
// call so the per-request temperature never races concurrent calls.
func (m *Model) Generate(ctx context.Context, req model.Request) (*model.Response, error) {
	gm := m.client.GenerativeModel(m.opts.Model)
	gm.SetTemperature(float32(req.Temperature))
	if req.System != "" {
		gm.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(req.System)}}
	}

	history, last := splitMessages(req)
	chat := gm.StartChat()
	chat.History = history

	resp, err := chat.SendMessage(ctx, genai.Text(last))
	if err != nil {
		return nil, fmt.Errorf("googleai api error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("googleai: no candidates returned")
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			b.WriteString(string(txt))
		}
	}

	out := &model.Response{Text: b.String()}
	if resp.UsageMetadata != nil {
		out.Usage = &model.Usage{
			PromptTokens:     int(resp.UsageMetadata.PromptTokenCount),
			CompletionTokens: int(resp.UsageMetadata.CandidatesTokenCount),
			TotalTokens:      int(resp.UsageMetadata.TotalTokenCount),
		}
	}
	return out, nil
}

// Info implements model.Model.
func (m *Model) Info() model.Info {
	return model.Info{Name: m.opts.Model, Provider: "googleai"}
}

// splitMessages converts the normalized request into Gemini chat history
// plus the final message to send. Gemini has no system role in history and
// names the assistant role "model".
func splitMessages(req model.Request) ([]*genai.Content, string) {
	var conversational []model.Message
	for _, msg := range req.Messages() {
		if msg.Role == "system" {
			continue
		}
		conversational = append(conversational, msg)
	}
	if len(conversational) == 0 {
		return nil, ""
	}

	last := conversational[len(conversational)-1]
	history := make([]*genai.Content, 0, len(conversational)-1)
	for _, msg := range conversational[:len(conversational)-1] {
		role := "user"
		if msg.Role == "assistant" {
			role = "model"
		}
		history = append(history, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(msg.Content)},
		})
	}
	return history, last.Content
}
