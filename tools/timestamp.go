package tools

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hupe1980/agentroute/tool"
)

// TimestampTool reports the current date and time in a selectable format.
type TimestampTool struct {
	now func() time.Time
}

var _ tool.Tool = (*TimestampTool)(nil)

// NewTimestampTool constructs a TimestampTool using the wall clock.
func NewTimestampTool() *TimestampTool {
	return &TimestampTool{now: time.Now}
}

// Name implements tool.Tool.
func (t *TimestampTool) Name() string { return "TimestampTool" }

// Description implements tool.Tool.
func (t *TimestampTool) Description() string {
	return "Get the current date and time"
}

// Parameters implements tool.Tool.
func (t *TimestampTool) Parameters() []tool.Parameter {
	return []tool.Parameter{
		{
			Name:        "format",
			Type:        "string",
			Description: "The format for the timestamp (default, iso, unix)",
			Required:    false,
			Default:     "default",
		},
	}
}

// Call implements tool.Tool.
func (t *TimestampTool) Call(_ context.Context, args map[string]any) (string, error) {
	format, _ := args["format"].(string)
	now := t.now()

	switch strings.ToLower(format) {
	case "iso":
		return now.Format(time.RFC3339), nil
	case "unix":
		return fmt.Sprintf("%d", now.Unix()), nil
	default:
		return now.Format("2006-01-02 15:04:05"), nil
	}
}
