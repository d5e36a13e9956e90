package tools

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"

	gmail "google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"

	"github.com/hupe1980/agentroute/tool"
)

// GmailTool sends email through the Gmail REST API. It expects an already
// authorized HTTP client (OAuth consent flows are the application's
// concern, not the tool's).
type GmailTool struct {
	svc *gmail.Service
}

var _ tool.Tool = (*GmailTool)(nil)

// NewGmailTool constructs a GmailTool from an authorized client.
func NewGmailTool(ctx context.Context, client *http.Client) (*GmailTool, error) {
	svc, err := gmail.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("gmail: failed to create service: %w", err)
	}
	return &GmailTool{svc: svc}, nil
}

// NewGmailToolFromService constructs a GmailTool from an existing service.
// Useful for tests with a service bound to a stub endpoint.
func NewGmailToolFromService(svc *gmail.Service) *GmailTool {
	return &GmailTool{svc: svc}
}

// Name implements tool.Tool.
func (t *GmailTool) Name() string { return "GmailTool" }

// Description implements tool.Tool.
func (t *GmailTool) Description() string {
	return "Send emails using the Gmail API"
}

// Parameters implements tool.Tool.
func (t *GmailTool) Parameters() []tool.Parameter {
	return []tool.Parameter{
		{Name: "to", Type: "string", Description: "Recipient email address", Required: true},
		{Name: "subject", Type: "string", Description: "Email subject line", Required: true},
		{Name: "body", Type: "string", Description: "Email body content", Required: true},
		{Name: "cc", Type: "string", Description: "CC recipients (comma-separated)", Required: false},
		{Name: "bcc", Type: "string", Description: "BCC recipients (comma-separated)", Required: false},
	}
}

// Call implements tool.Tool.
func (t *GmailTool) Call(ctx context.Context, args map[string]any) (string, error) {
	to, _ := args["to"].(string)
	subject, _ := args["subject"].(string)
	body, _ := args["body"].(string)
	cc, _ := args["cc"].(string)
	bcc, _ := args["bcc"].(string)

	var b strings.Builder
	fmt.Fprintf(&b, "To: %s\r\n", to)
	if cc != "" {
		fmt.Fprintf(&b, "Cc: %s\r\n", cc)
	}
	if bcc != "" {
		fmt.Fprintf(&b, "Bcc: %s\r\n", bcc)
	}
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n\r\n")
	b.WriteString(body)

	msg := &gmail.Message{
		Raw: base64.URLEncoding.EncodeToString([]byte(b.String())),
	}

	sent, err := t.svc.Users.Messages.Send("me", msg).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("gmail: failed to send: %w", err)
	}
	return fmt.Sprintf("Email sent successfully! Message ID: %s", sent.Id), nil
}
