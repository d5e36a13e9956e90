package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/hupe1980/agentroute/tool"
)

const defaultNewsAPIURL = "https://newsapi.org/v2/top-headlines"

const (
	defaultHeadlineLimit = 5
	maxHeadlineLimit     = 10
)

var newsParameters = []tool.Parameter{
	{
		Name:        "query",
		Type:        "string",
		Description: "Search term or keywords to find specific news",
		Required:    false,
	},
	{
		Name:        "category",
		Type:        "string",
		Description: "News category (business, entertainment, general, health, science, sports, technology)",
		Required:    false,
	},
	{
		Name:        "limit",
		Type:        "integer",
		Description: "Number of news items to return (default: 5, max: 10)",
		Required:    false,
	},
}

// NewsToolOptions configures a NewsTool.
type NewsToolOptions struct {
	// BaseURL overrides the NewsAPI endpoint. Used by tests.
	BaseURL string
	// HTTPClient overrides the default client with its 20s timeout.
	HTTPClient *http.Client
}

// NewsTool fetches top headlines from NewsAPI (https://newsapi.org).
type NewsTool struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

var _ tool.Tool = (*NewsTool)(nil)

// NewNewsTool constructs a NewsTool. The API key is required.
func NewNewsTool(apiKey string, optFns ...func(o *NewsToolOptions)) (*NewsTool, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("news: API key cannot be empty")
	}

	opts := NewsToolOptions{
		BaseURL:    defaultNewsAPIURL,
		HTTPClient: &http.Client{Timeout: 20 * time.Second},
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	return &NewsTool{apiKey: apiKey, baseURL: opts.BaseURL, client: opts.HTTPClient}, nil
}

// Name implements tool.Tool.
func (t *NewsTool) Name() string { return "NewsTool" }

// Description implements tool.Tool.
func (t *NewsTool) Description() string {
	return "Get today's top news headlines by category or keyword"
}

// Parameters implements tool.Tool.
func (t *NewsTool) Parameters() []tool.Parameter { return newsParameters }

// Call implements tool.Tool.
func (t *NewsTool) Call(ctx context.Context, args map[string]any) (string, error) {
	query, _ := args["query"].(string)
	category, _ := args["category"].(string)
	limit := intArg(args, "limit", defaultHeadlineLimit)
	if limit > maxHeadlineLimit {
		limit = maxHeadlineLimit
	}
	if limit < 1 {
		limit = defaultHeadlineLimit
	}

	params := url.Values{}
	params.Set("apiKey", t.apiKey)
	params.Set("pageSize", strconv.Itoa(limit))
	params.Set("language", "en")
	if query != "" {
		params.Set("q", query)
	}
	if category != "" {
		params.Set("category", category)
	} else {
		params.Set("country", "us")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("news: failed to build request: %w", err)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("news: request failed: %w", err)
	}
	defer resp.Body.Close()

	var payload struct {
		Status   string `json:"status"`
		Message  string `json:"message"`
		Articles []struct {
			Title       string `json:"title"`
			URL         string `json:"url"`
			PublishedAt string `json:"publishedAt"`
			Source      struct {
				Name string `json:"name"`
			} `json:"source"`
		} `json:"articles"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("news: failed to decode response: %w", err)
	}
	if resp.StatusCode != http.StatusOK || payload.Status != "ok" {
		return "", fmt.Errorf("news: API error: %s", payload.Message)
	}
	if len(payload.Articles) == 0 {
		return "No news articles found for the given criteria", nil
	}

	var b strings.Builder
	b.WriteString("Today's Headlines:\n\n")
	for i, article := range payload.Articles {
		if i >= limit {
			break
		}
		source := article.Source.Name
		if source == "" {
			source = "Unknown Source"
		}
		fmt.Fprintf(&b, "%d. %s\n   Source: %s | Published: %s\n   URL: %s\n\n",
			i+1, article.Title, source, article.PublishedAt, article.URL)
	}
	return strings.TrimRight(b.String(), "\n"), nil
}

// MockNewsTool returns canned headlines. Useful for offline demos and for
// exercising the tool pipeline in tests without network access.
type MockNewsTool struct{}

var _ tool.Tool = (*MockNewsTool)(nil)

// NewMockNewsTool constructs a MockNewsTool.
func NewMockNewsTool() *MockNewsTool { return &MockNewsTool{} }

// Name implements tool.Tool.
func (t *MockNewsTool) Name() string { return "MockNewsTool" }

// Description implements tool.Tool.
func (t *MockNewsTool) Description() string {
	return "Get today's top news headlines by category or keyword (canned demo data)"
}

// Parameters implements tool.Tool.
func (t *MockNewsTool) Parameters() []tool.Parameter { return newsParameters }

// Call implements tool.Tool.
func (t *MockNewsTool) Call(_ context.Context, args map[string]any) (string, error) {
	category, _ := args["category"].(string)
	if category == "" {
		category = "general"
	}
	return fmt.Sprintf(`Today's Headlines:

1. Sample %s headline one
   Source: Example Times | Published: 2025-01-01T09:00:00Z
2. Sample %s headline two
   Source: Demo Daily | Published: 2025-01-01T08:30:00Z`, category, category), nil
}

// intArg reads a numeric argument tolerating the loose typing of
// LLM-supplied values (JSON numbers decode as float64, some models emit
// strings).
func intArg(args map[string]any, key string, fallback int) int {
	switch v := args[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
